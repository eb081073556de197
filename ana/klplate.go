// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
)

// KLPlate implements closed-form results of Kirchhoff-Love plates made of isotropic linear
// elastic material under plane stress
//
//      z ^   t
//        |  ↕ ________________
//        | /                 /
//        |/________________ /  ---> x
//
//  membrane:  N = t C ε
//  bending:   M = t³/12 C κ
type KLPlate struct {
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
	th float64 // thickness
}

// Init initialises this structure
func (o *KLPlate) Init(prms map[string]float64) {

	// default values
	o.E = 1e5
	o.ν = 0.3
	o.th = 0.1

	// parameters
	for name, v := range prms {
		switch name {
		case "E":
			o.E = v
		case "nu":
			o.ν = v
		case "t":
			o.th = v
		default:
			chk.Panic("KLPlate: parameter %q is not available", name)
		}
	}
}

// C returns the plane-stress elastic matrix
func (o KLPlate) C() *mat.Dense {
	k := o.E / (1 - o.ν*o.ν)
	return mat.NewDense(3, 3, []float64{
		k, k * o.ν, 0,
		k * o.ν, k, 0,
		0, 0, k * (1 - o.ν) / 2,
	})
}

// Dm returns the membrane constitutive matrix C t
func (o KLPlate) Dm() *mat.Dense {
	D := o.C()
	D.Scale(o.th, D)
	return D
}

// Db returns the bending constitutive matrix C t³/12
func (o KLPlate) Db() *mat.Dense {
	D := o.C()
	D.Scale(o.th*o.th*o.th/12, D)
	return D
}

// Stiffness returns the linear stiffness matrix of a flat plate lying on the xy-plane
//
//  Input: Cartesian derivatives of shape functions indexed by [node][point] and area weights dA
//   Nx, Ny        -- ∂N/∂x, ∂N/∂y
//   Nxx, Nyy, Nxy -- ∂²N/∂x², ∂²N/∂y², ∂²N/∂x∂y
//
//  Output: K [3n][3n] with dofs {ux, uy, w} per node
func (o KLPlate) Stiffness(Nx, Ny, Nxx, Nyy, Nxy [][]float64, dA []float64) *mat.Dense {
	n := len(Nx)
	K := mat.NewDense(3*n, 3*n, nil)
	Bm := mat.NewDense(3, 3*n, nil)
	Bb := mat.NewDense(3, 3*n, nil)
	Dm, Db := o.Dm(), o.Db()
	var tm, tb, km, kb mat.Dense
	for p, da := range dA {
		for k := 0; k < n; k++ {
			Bm.Set(0, 3*k, Nx[k][p])
			Bm.Set(1, 3*k+1, Ny[k][p])
			Bm.Set(2, 3*k, Ny[k][p])
			Bm.Set(2, 3*k+1, Nx[k][p])
			Bb.Set(0, 3*k+2, -Nxx[k][p])
			Bb.Set(1, 3*k+2, -Nyy[k][p])
			Bb.Set(2, 3*k+2, -2*Nxy[k][p])
		}
		tm.Mul(Dm, Bm)
		km.Mul(Bm.T(), &tm)
		tb.Mul(Db, Bb)
		kb.Mul(Bb.T(), &tb)
		km.Add(&km, &kb)
		km.Scale(da, &km)
		K.Add(K, &km)
	}
	return K
}

// StretchForce returns the resultant edge force of a strip with width w stretched by the
// displacement gradient e along x and restrained along y (2nd Piola-Kirchhoff stress pushed
// forward by the stretch 1+e)
func (o KLPlate) StretchForce(e, w float64) float64 {
	k := o.E / (1 - o.ν*o.ν)
	εgl := e + e*e/2
	return k * o.th * εgl * (1 + e) * w
}
