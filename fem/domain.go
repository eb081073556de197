// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/inp"
	"github.com/cpmech/klshell/shp"
)

// Domain holds the elements of all knot spans of one patch and their equation numbers.
// Elements are evaluated independently; no global system is assembled
type Domain struct {
	Case  *inp.Case  // input data
	Patch *shp.Patch // geometry
	Elems []Elem     // [nspans] elements
	Cids  [][]int    // [nspans][ncp] control points of each element
	Eqs   [][]int    // [ncp][3] equation numbers; -1 means fixed
	Ny    int        // number of equations
	Verb  bool       // verbose
}

// StepResult holds element results of one step
type StepResult struct {
	Eid   int        // element id
	Fint  []float64  // internal forces
	K     *mat.Dense // stiffness matrix
	Knorm float64    // Frobenius norm of K
}

// NewDomain allocates elements and sets equation numbers
func NewDomain(c *inp.Case, verbose bool) (o *Domain, err error) {

	// patch and material template
	o = &Domain{Case: c, Verb: verbose}
	o.Patch, err = c.GetPatch()
	if err != nil {
		return nil, chk.Err("cannot allocate patch:\n%v", err)
	}
	mdl, err := c.GetModel()
	if err != nil {
		return nil, err
	}
	tangent, err := ParseTangentMode(c.Elem.Tangent)
	if err != nil {
		return nil, err
	}
	edat := &ElemData{Type: c.Elem.Type, Thick: c.Elem.Thick, Nu: c.Elem.Nu, Nv: c.Elem.Nv, Nzeta: c.Elem.Nzeta, Tangent: tangent}

	// equation numbers
	fixed := c.Fixed()
	o.Eqs = make([][]int, len(o.Patch.Ctrl))
	for k := range o.Eqs {
		o.Eqs[k] = make([]int, 3)
		for i := 0; i < 3; i++ {
			if fixed[k][i] {
				o.Eqs[k][i] = -1
				continue
			}
			o.Eqs[k][i] = o.Ny
			o.Ny++
		}
	}

	// elements
	for eid, span := range o.Patch.Spans() {
		ele, e := NewElem(eid, o.Patch, span, mdl, edat)
		if e != nil {
			return nil, e
		}
		cids := o.Patch.IndBasis(span)
		eqs := make([][]int, len(cids))
		for m, cid := range cids {
			eqs[m] = o.Eqs[cid]
		}
		if err = ele.SetEqs(eqs); err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, ele)
		o.Cids = append(o.Cids, cids)
	}
	if o.Verb {
		io.Pf("> %d elements, %d equations\n", len(o.Elems), o.Ny)
	}
	return
}

// ElemLoads computes the equivalent forces of the surface loads of each element
func (o *Domain) ElemLoads() (loads [][]*SurfLoad, err error) {
	loads = make([][]*SurfLoad, len(o.Elems))
	for e, ele := range o.Elems {
		sl, ok := ele.(ElemSurfLoader)
		if !ok {
			return nil, chk.Err("element %d cannot compute surface loads", ele.Id())
		}
		if o.Case.Loads.Pressure != 0 {
			res, err := sl.CalculateSurfacePressure(o.Case.Loads.Pressure)
			if err != nil {
				return nil, err
			}
			loads[e] = append(loads[e], res)
		}
		for _, dl := range o.Case.Loads.Distributed {
			res, err := sl.CalculateSurfaceDistributedLoad(dl.Dir, dl.Q)
			if err != nil {
				return nil, err
			}
			loads[e] = append(loads[e], res)
		}
	}
	return
}

// ElemDispl returns the displacements of element e for the prescribed field scaled by factor
func (o *Domain) ElemDispl(e int, factor float64) (u []float64) {
	u = make([]float64, 3*len(o.Cids[e]))
	if len(o.Case.Steps.Displ) == 0 {
		return
	}
	for m, cid := range o.Cids[e] {
		for i := 0; i < 3; i++ {
			u[3*m+i] = factor * o.Case.Steps.Displ[cid][i]
		}
	}
	return
}

// Initialise computes the reference configuration of all elements
func (o *Domain) Initialise() (err error) {
	for _, ele := range o.Elems {
		if _, err = ele.StiffnessMatrix(); err != nil {
			return
		}
	}
	return
}

// Step updates all elements for the prescribed displacements scaled by factor and commits the
// material states if every element succeeds
func (o *Domain) Step(factor float64) (res []*StepResult, err error) {
	for e, ele := range o.Elems {
		u := o.ElemDispl(e, factor)
		if err = ele.CalculateStresses(u, nil); err != nil {
			return nil, err
		}
	}
	for e, ele := range o.Elems {
		var r StepResult
		r.Eid = ele.Id()
		if r.Fint, err = ele.CalculateForces(o.ElemDispl(e, factor), nil); err != nil {
			return nil, err
		}
		if r.K, err = ele.StiffnessMatrix(); err != nil {
			return nil, err
		}
		r.Knorm = mat.Norm(r.K, 2)
		res = append(res, &r)
	}
	for _, ele := range o.Elems {
		ele.SaveMaterialState()
	}
	return
}
