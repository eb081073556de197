// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"
)

// IntegratedConstitutive integrates the material tangents bound to mid-surface point ip
//
//  Cm = Σ D w       (membrane)
//  Cb = Σ D w ζ²    (bending)
//  Cc = Σ D w ζ     (coupling)
func (o *ElemShell) IntegratedConstitutive(ip int) (Cm, Cb, Cc *mat.Dense) {
	Cm = mat.NewDense(3, 3, nil)
	Cb = mat.NewDense(3, 3, nil)
	Cc = mat.NewDense(3, 3, nil)
	for k := o.Toff[ip]; k < o.Toff[ip+1]; k++ {
		ζ, w := o.Tps[k].Zeta, o.Tps[k].W
		D := o.Mdls[k].D()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				d := D.At(i, j) * w
				Cm.Set(i, j, Cm.At(i, j)+d)
				Cc.Set(i, j, Cc.At(i, j)+d*ζ)
				Cb.Set(i, j, Cb.At(i, j)+d*ζ*ζ)
			}
		}
	}
	return
}

// IntegratedStresses integrates the material stresses bound to mid-surface point ip
//
//  N = Σ σ w        (membrane forces)
//  M = -Σ σ w ζ     (bending moments)
func (o *ElemShell) IntegratedStresses(ip int) (N, M []float64) {
	N = make([]float64, 3)
	M = make([]float64, 3)
	for k := o.Toff[ip]; k < o.Toff[ip+1]; k++ {
		ζ, w := o.Tps[k].Zeta, o.Tps[k].W
		σ := o.Mdls[k].Sig()
		for i := 0; i < 3; i++ {
			N[i] += σ[i] * w
			M[i] -= σ[i] * w * ζ
		}
	}
	return
}
