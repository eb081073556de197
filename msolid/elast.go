// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/gosl/chk"
)

// LinElast implements isotropic linear elasticity under plane stress written in the
// curvilinear basis of the reference mid-surface
//
//  C^{αβγδ} = E/(1-ν²) [ ν A^{αβ} A^{γδ} + ½(1-ν) (A^{αγ} A^{βδ} + A^{αδ} A^{βγ}) ]
//
//  where A^{αβ} is the contravariant metric of the reference frame
type LinElast struct {

	// parameters
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient

	// contravariant metric {A^11, A^22, A^12}
	Acon [3]float64

	// state
	Sta *State     // current state
	Bkp *State     // committed state
	C   *mat.Dense // [3][3] elastic tangent
}

// add model to factory
func init() {
	allocators["elast"] = func() ShellModel { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms Prms) (err error) {
	o.E, o.Nu = -1, 0
	for name, v := range prms {
		switch name {
		case "E":
			o.E = v
		case "nu":
			o.Nu = v
		default:
			return chk.Err("parameter %q is not available in 'elast' model", name)
		}
	}
	if err = o.check(); err != nil {
		return
	}
	o.Sta = NewState(3, 0)
	o.Bkp = NewState(3, 0)
	o.C = mat.NewDense(3, 3, nil)
	o.setMetric(1, 1, 0)
	return
}

// Clone returns an independent copy
func (o *LinElast) Clone() ShellModel {
	p := o.clone()
	return &p
}

// SetFrame sets the reference frame and recomputes the elastic tangent
func (o *LinElast) SetFrame(g1, g2, g3 r3.Vec) {
	a11 := r3.Dot(g1, g1)
	a22 := r3.Dot(g2, g2)
	a12 := r3.Dot(g1, g2)
	det := a11*a22 - a12*a12
	if det <= 0 {
		chk.Panic("cannot set frame of 'elast' model: metric is singular. det=%g", det)
	}
	o.setMetric(a22/det, a11/det, -a12/det)
}

// Update updates stresses for new strains
func (o *LinElast) Update(ε []float64) (err error) {
	copy(o.Sta.Eps, ε)
	o.stress(o.Sta.Sig, ε, 1)
	return
}

// D returns the tangent
func (o *LinElast) D() *mat.Dense { return o.C }

// Sig returns the current stresses
func (o *LinElast) Sig() []float64 { return o.Sta.Sig }

// SaveState commits the current state
func (o *LinElast) SaveState() { o.Bkp.Set(o.Sta) }

// RestoreState returns to the committed state
func (o *LinElast) RestoreState() { o.Sta.Set(o.Bkp) }

// GetState returns the current and the committed states
func (o *LinElast) GetState() (sta, bkp *State) { return o.Sta, o.Bkp }

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func (o *LinElast) check() error {
	if o.E <= 0 {
		return chk.Err("Young's modulus must be positive. E=%g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("Poisson's coefficient must be in (-1, 0.5). nu=%g is invalid", o.Nu)
	}
	return nil
}

// clone copies parameters and allocates new state
func (o *LinElast) clone() (p LinElast) {
	p.E, p.Nu, p.Acon = o.E, o.Nu, o.Acon
	p.Sta = o.Sta.GetCopy()
	p.Bkp = o.Bkp.GetCopy()
	p.C = mat.DenseCopyOf(o.C)
	return
}

// setMetric sets the contravariant metric and computes C
func (o *LinElast) setMetric(A11, A22, A12 float64) {
	o.Acon = [3]float64{A11, A22, A12}
	k := o.E / (1 - o.Nu*o.Nu)
	ν := o.Nu
	c00 := k * A11 * A11
	c01 := k * (ν*A11*A22 + (1-ν)*A12*A12)
	c02 := k * A11 * A12
	c11 := k * A22 * A22
	c12 := k * A22 * A12
	c22 := k * ((1-ν)*A11*A22 + (1+ν)*A12*A12) / 2
	o.C.Set(0, 0, c00)
	o.C.Set(0, 1, c01)
	o.C.Set(0, 2, c02)
	o.C.Set(1, 0, c01)
	o.C.Set(1, 1, c11)
	o.C.Set(1, 2, c12)
	o.C.Set(2, 0, c02)
	o.C.Set(2, 1, c12)
	o.C.Set(2, 2, c22)
}

// stress computes σ := α C ε
func (o *LinElast) stress(σ, ε []float64, α float64) {
	for i := 0; i < 3; i++ {
		σ[i] = 0
		for j := 0; j < 3; j++ {
			σ[i] += α * o.C.At(i, j) * ε[j]
		}
	}
}
