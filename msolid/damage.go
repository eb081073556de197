// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/gosl/chk"
)

// Damage implements isotropic scalar damage with exponential softening
//
//  σ = (1 - d) C ε
//  κ = max(κ_committed, εeq)   with   εeq = sqrt(ε·C·ε / E)
//  d = 1 - (κ0/κ) exp(-(κ-κ0)/κf)   if κ > κ0
//
//  Note: 1) D is the secant tangent (1-d) C
//        2) Alp = {κ, d}
type Damage struct {
	LinElast

	// parameters
	K0   float64 // κ0: damage threshold
	Kf   float64 // κf: softening parameter
	Dmax float64 // critical damage; updates leading to d >= Dmax fail

	// scratchpad
	Dsec *mat.Dense // [3][3] secant tangent
	σe   []float64  // effective (undamaged) stresses
}

// add model to factory
func init() {
	allocators["damage"] = func() ShellModel { return new(Damage) }
}

// Init initialises model
func (o *Damage) Init(prms Prms) (err error) {
	o.E, o.Nu = -1, 0
	o.K0, o.Kf, o.Dmax = -1, -1, 0.99
	for name, v := range prms {
		switch name {
		case "E":
			o.E = v
		case "nu":
			o.Nu = v
		case "k0":
			o.K0 = v
		case "kf":
			o.Kf = v
		case "dmax":
			o.Dmax = v
		default:
			return chk.Err("parameter %q is not available in 'damage' model", name)
		}
	}
	if err = o.check(); err != nil {
		return
	}
	if o.K0 <= 0 || o.Kf <= 0 {
		return chk.Err("damage parameters k0 and kf must be positive. k0=%g, kf=%g are invalid", o.K0, o.Kf)
	}
	if o.Dmax <= 0 || o.Dmax >= 1 {
		return chk.Err("critical damage must be in (0, 1). dmax=%g is invalid", o.Dmax)
	}
	o.Sta = NewState(3, 2)
	o.Bkp = NewState(3, 2)
	o.C = mat.NewDense(3, 3, nil)
	o.setMetric(1, 1, 0)
	o.Dsec = mat.DenseCopyOf(o.C)
	o.σe = make([]float64, 3)
	return
}

// Clone returns an independent copy
func (o *Damage) Clone() ShellModel {
	p := &Damage{LinElast: o.LinElast.clone(), K0: o.K0, Kf: o.Kf, Dmax: o.Dmax}
	p.Dsec = mat.DenseCopyOf(o.Dsec)
	p.σe = make([]float64, 3)
	return p
}

// Update updates stresses for new strains starting from the committed state
func (o *Damage) Update(ε []float64) (err error) {

	// equivalent strain
	o.stress(o.σe, ε, 1)
	energy := 0.0
	for i := 0; i < 3; i++ {
		energy += ε[i] * o.σe[i]
	}
	εeq := math.Sqrt(math.Max(energy, 0) / o.E)

	// damage
	κ := math.Max(o.Bkp.Alp[0], εeq)
	d := 0.0
	if κ > o.K0 {
		d = 1 - (o.K0/κ)*math.Exp(-(κ-o.K0)/o.Kf)
	}
	if d >= o.Dmax {
		return fmt.Errorf("%w: damage d=%g reached critical value %g (κ=%g)", ErrUpdateFailed, d, o.Dmax, κ)
	}

	// stresses and tangent
	copy(o.Sta.Eps, ε)
	for i := 0; i < 3; i++ {
		o.Sta.Sig[i] = (1 - d) * o.σe[i]
	}
	o.Sta.Alp[0], o.Sta.Alp[1] = κ, d
	o.Dsec.Scale(1-d, o.C)
	return
}

// RestoreState returns to the committed state and recomputes the secant tangent
func (o *Damage) RestoreState() {
	o.Sta.Set(o.Bkp)
	o.Dsec.Scale(1-o.Sta.Alp[1], o.C)
}

// D returns the secant tangent
func (o *Damage) D() *mat.Dense { return o.Dsec }

// SetFrame sets the reference frame and recomputes the tangents
func (o *Damage) SetFrame(g1, g2, g3 r3.Vec) {
	o.LinElast.SetFrame(g1, g2, g3)
	o.Dsec.Scale(1-o.Sta.Alp[1], o.C)
}
