// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/klshell/shp"
)

// MembraneB computes the membrane strain-displacement matrix Bm [3][3n] at ip
//
//  row 0: N1 g1
//  row 1: N2 g2
//  row 2: N2 g1 + N1 g2
//
//  Note: g must correspond to the current configuration
func MembraneB(Bm *mat.Dense, b *shp.Basis, ip int, g *SurfGeom) {
	for k := 0; k < b.Ncp(); k++ {
		n1, n2 := b.N1[k][ip], b.N2[k][ip]
		setBlock(Bm, 0, k, r3.Scale(n1, g.G1))
		setBlock(Bm, 1, k, r3.Scale(n2, g.G2))
		setBlock(Bm, 2, k, r3.Add(r3.Scale(n2, g.G1), r3.Scale(n1, g.G2)))
	}
}

// BendingB computes the bending strain-displacement matrix Bb [3][3n] at ip. Each block is
//
//  -Nαβ g3 + (1/J1) [ N1 (gαβ × g2) + N2 (g1 × gαβ) + (g3 · gαβ) (N1 (g2 × g3) + N2 (g3 × g1)) ]
//
//  with αβ = {11, 22, 12}; the twist row is doubled
func BendingB(Bb *mat.Dense, b *shp.Basis, ip int, g *SurfGeom) {
	g2g3 := r3.Cross(g.G2, g.G3)
	g3g1 := r3.Cross(g.G3, g.G1)
	gab := [3]r3.Vec{g.G11, g.G22, g.G12}
	fac := [3]float64{1, 1, 2}
	for k := 0; k < b.Ncp(); k++ {
		n1, n2 := b.N1[k][ip], b.N2[k][ip]
		nab := [3]float64{b.N11[k][ip], b.N22[k][ip], b.N12[k][ip]}
		dn := r3.Add(r3.Scale(n1, g2g3), r3.Scale(n2, g3g1))
		for row := 0; row < 3; row++ {
			v := r3.Add(r3.Scale(n1, r3.Cross(gab[row], g.G2)), r3.Scale(n2, r3.Cross(g.G1, gab[row])))
			v = r3.Add(v, r3.Scale(r3.Dot(g.G3, gab[row]), dn))
			v = r3.Add(r3.Scale(-nab[row], g.G3), r3.Scale(1/g.J1, v))
			setBlock(Bb, row, k, r3.Scale(fac[row], v))
		}
	}
}

// setBlock sets the 3 columns of control point k in row
func setBlock(B *mat.Dense, row, k int, v r3.Vec) {
	B.Set(row, 3*k, v.X)
	B.Set(row, 3*k+1, v.Y)
	B.Set(row, 3*k+2, v.Z)
}
