// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// unit vectors
var eunit = [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}

// addGeoStiff adds the stress dependent part of the tangent at ip to K
//
//  K_rs += coef [ N : ∂²ε/∂u_r∂u_s  +  m : ∂²b/∂u_r∂u_s ]     with m = -M
//
//  where b_αβ = gαβ · a3 and a3 is the current unit normal
func (o *ElemShell) addGeoStiff(K *mat.Dense, ip int, g *SurfGeom, N, M []float64, coef float64) {

	// first variations of a3 for each dof: ā = g1 × g2, J = ‖ā‖
	n := o.Nu
	J := g.J1
	a3 := g.G3
	abr := make([]r3.Vec, n) // ∂ā/∂u_r
	Jr := make([]float64, n) // ∂J/∂u_r
	a3r := make([]r3.Vec, n) // ∂a3/∂u_r
	for r := 0; r < n; r++ {
		k, i := r/3, r%3
		abr[r] = r3.Add(r3.Scale(o.B.N1[k][ip], r3.Cross(eunit[i], g.G2)), r3.Scale(o.B.N2[k][ip], r3.Cross(g.G1, eunit[i])))
		Jr[r] = r3.Dot(a3, abr[r])
		a3r[r] = r3.Scale(1/J, r3.Sub(abr[r], r3.Scale(Jr[r], a3)))
	}

	// resultants
	m := [3]float64{-M[0], -M[1], -2 * M[2]}
	gab := [3]r3.Vec{g.G11, g.G22, g.G12}
	comp := func(v r3.Vec, i int) float64 {
		switch i {
		case 0:
			return v.X
		case 1:
			return v.Y
		}
		return v.Z
	}

	// second variations
	for r := 0; r < n; r++ {
		a, i := r/3, r%3
		n1a, n2a := o.B.N1[a][ip], o.B.N2[a][ip]
		nab := [3]float64{o.B.N11[a][ip], o.B.N22[a][ip], o.B.N12[a][ip]}
		for s := 0; s < n; s++ {
			b, j := s/3, s%3
			n1b, n2b := o.B.N1[b][ip], o.B.N2[b][ip]
			nbb := [3]float64{o.B.N11[b][ip], o.B.N22[b][ip], o.B.N12[b][ip]}

			// membrane
			val := 0.0
			if i == j {
				val = N[0]*n1a*n1b + N[1]*n2a*n2b + N[2]*(n1a*n2b+n1b*n2a)
			}

			// ∂²ā/∂u_r∂u_s, ∂²J/∂u_r∂u_s and ∂²a3/∂u_r∂u_s
			abrs := r3.Scale(n1a*n2b-n1b*n2a, r3.Cross(eunit[i], eunit[j]))
			Jrs := (r3.Dot(abr[r], abr[s])-Jr[r]*Jr[s])/J + r3.Dot(a3, abrs)
			a3rs := r3.Scale(1/J, abrs)
			a3rs = r3.Sub(a3rs, r3.Scale(1/(J*J), r3.Add(r3.Scale(Jr[s], abr[r]), r3.Scale(Jr[r], abr[s]))))
			a3rs = r3.Add(a3rs, r3.Scale((2*Jr[r]*Jr[s]/J-Jrs)/J, a3))

			// bending
			for α := 0; α < 3; α++ {
				brs := nab[α]*comp(a3r[s], i) + nbb[α]*comp(a3r[r], j) + r3.Dot(gab[α], a3rs)
				val += m[α] * brs
			}
			K.Set(r, s, K.At(r, s)+coef*val)
		}
	}
}
