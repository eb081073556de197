// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements material models for thin shells
/*
 *  strains and stresses are given in the curvilinear basis of the reference mid-surface:
 *
 *     ε = {ε11, ε22, 2ε12}   (covariant, engineering shear)
 *     σ = {σ11, σ22, σ12}    (contravariant)
 *     D = dσ/dε              [3][3]
 *
 *  the reference frame {g1, g2, g3} is set once by the element before any update
 */
package msolid

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/gosl/chk"
)

// ErrUpdateFailed is returned (wrapped) by models that cannot update stresses for given strains
var ErrUpdateFailed = errors.New("material update failed")

// Prms holds material parameters; name => value
type Prms map[string]float64

// ShellModel defines the interface for material models at thickness integration points
type ShellModel interface {
	Init(prms Prms) error        // initialises model and allocates state
	Clone() ShellModel           // returns an independent copy with the same parameters and state
	SetFrame(g1, g2, g3 r3.Vec)  // sets the reference tangent/normal frame
	Update(ε []float64) error    // updates stresses and tangent for new (total) strains
	D() *mat.Dense               // returns the current tangent [3][3]; must not be modified
	Sig() []float64              // returns the current stresses [3]; must not be modified
	SaveState()                  // commits the current state as the converged one
	RestoreState()               // discards the current state and returns to the committed one
	GetState() (sta, bkp *State) // returns the current and the committed states
}

// New returns a new (uninitialised) model
func New(name string) (model ShellModel, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// GetModel allocates and initialises a model
func GetModel(name string, prms Prms) (model ShellModel, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	err = model.Init(prms)
	if err != nil {
		return nil, chk.Err("cannot initialise model %q:\n%v", name, err)
	}
	return
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() ShellModel{}
