// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/klshell/msolid"
	"github.com/cpmech/klshell/shp"
)

// error kinds
var (
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrNotSupported       = errors.New("operation not supported")
	ErrNotInitialized     = errors.New("element is not initialised")
	ErrStaleStrains       = errors.New("stresses were not updated for the given displacements")
)

// Phase tags the life cycle of an element
//
//  Uninitialized → Initialized ⇄ {StrainsUpdated, StateCommitted}
type Phase int

// phases
const (
	Uninitialized Phase = iota
	Initialized
	StrainsUpdated
	StateCommitted
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case StrainsUpdated:
		return "strains-updated"
	case StateCommitted:
		return "state-committed"
	}
	return "unknown"
}

// TangentMode selects the terms included in the stiffness matrix
type TangentMode int

const (
	// TangentMaterial includes only the material part (modified Newton; linear convergence)
	TangentMaterial TangentMode = iota

	// TangentFull adds the stress dependent (geometric) part (full Newton; quadratic convergence)
	TangentFull
)

// ParseTangentMode converts "material" or "full" into a TangentMode
func ParseTangentMode(key string) (TangentMode, error) {
	switch key {
	case "", "material":
		return TangentMaterial, nil
	case "full":
		return TangentFull, nil
	}
	return TangentMaterial, chk.Err("tangent mode %q is invalid. use \"material\" or \"full\"", key)
}

func (m TangentMode) String() string {
	if m == TangentFull {
		return "full"
	}
	return "material"
}

// OutIpData is an auxiliary structure to transfer data from integration points (IP) to output routines.
type OutIpData struct {
	Eid  int                       // id of element that owns this ip
	Ip   int                       // index of ip in element
	X    []float64                 // reference coordinates
	Calc func() map[string]float64 // [nkeys] function to calculate secondary values
}

// Elem defines what structural elements must calculate for a nonlinear solver
//  Note: vectors and matrices are ordered with 3 translational dofs per control point
type Elem interface {

	// information and initialisation
	Id() int                  // returns the element Id
	SetEqs(eqs [][]int) error // sets equation numbers; eqs[cp][dir] < 0 means fixed

	// called for each iteration
	StiffnessMatrix() (K *mat.Dense, err error)               // tangent stiffness [3n][3n]
	CalculateStresses(u, du []float64) (err error)            // strain/stress update
	CalculateForces(u, du []float64) (f []float64, err error) // internal forces [3n]
	SaveMaterialState()                                       // commits material states

	// output
	OutIpsData() (data []*OutIpData) // returns the ips and the functions to calculate secondary values

	// unsupported by structural shells without dynamics
	MassMatrix() (*mat.Dense, error)
	DampingMatrix() (*mat.Dense, error)
	AccelerationForces(acc []float64) ([]float64, error)
	ForcesForLogging() ([]float64, error)
}

// ElemSurfLoader defines elements that compute equivalent forces of surface loads
type ElemSurfLoader interface {
	CalculateSurfacePressure(p float64) (*SurfLoad, error)                 // pressure along the unit normal
	CalculateSurfaceDistributedLoad(dir int, q float64) (*SurfLoad, error) // load along a global direction
}

// ElemData holds element options
type ElemData struct {
	Type    string      // element type; e.g. "kls"
	Thick   float64     // thickness
	Nu, Nv  int         // number of integration points along u and v; 0 means degree+1
	Nzeta   int         // number of points across the thickness; 0 means 3
	Tangent TangentMode // stiffness matrix terms
}

// NewElem returns a new element from its type
func NewElem(eid int, patch *shp.Patch, span shp.Span, model msolid.ShellModel, edat *ElemData) (ele Elem, err error) {
	allocator, ok := eallocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, id=%d}", edat.Type, eid)
	}
	return allocator(eid, patch, span, model, edat)
}

// eallocators holds all available elements; elemType => eallocator
var eallocators = make(map[string]func(eid int, patch *shp.Patch, span shp.Span, model msolid.ShellModel, edat *ElemData) (Elem, error))
