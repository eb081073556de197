// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gosl_gm

package shp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
)

// toGm converts patch into a gosl NURBS surface
func toGm(o *Patch) (b *gm.Nurbs) {
	b = gm.NewNurbs(2, []int{o.P, o.Q}, [][]float64{o.U, o.V})
	verts := make([][]float64, len(o.Ctrl))
	ctrls := make([]int, len(o.Ctrl))
	for k, c := range o.Ctrl {
		verts[k] = []float64{c.X[0], c.X[1], c.X[2], c.W}
		ctrls[k] = k
	}
	b.SetControl(verts, ctrls)
	return
}

// Test_gm01 needs the native libraries linked by gosl/la; run with:
//
//  go test -tags gosl_gm ./shp
func Test_gm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gm01. spans, indices and surface derivatives versus gosl/gm")

	s := 0.7071067811865476
	multi, err := NewPatch(2, 2, []float64{0, 0, 0, 0.3, 0.3, 1, 1, 1}, []float64{0, 0, 0, 0.5, 1, 1, 1}, [][]float64{
		{0, 0, 0, 1}, {1, 0, 0.2, 1}, {2, 0, 0, s}, {3, 0, 0.1, 1}, {4, 0, 0, 1},
		{0, 1, 0.3, 1}, {1, 1, 0, 1}, {2, 1, 0.5, 1}, {3, 1, 0, 0.8}, {4, 1, 0.2, 1},
		{0, 2, 0, 1}, {1, 2, 0.1, 1}, {2, 2, 0, 1}, {3, 2, 0.4, 1}, {4, 2, 0, 1},
		{0, 3, 0, 1}, {1, 3, 0, s}, {2, 3, 0.2, 1}, {3, 3, 0, 1}, {4, 3, 0.3, 1},
	})
	require.NoError(tst, err)

	for name, o := range map[string]*Patch{"A": get_patch_A(tst), "cylinder": get_patch_cylinder(tst), "multi": multi} {
		b := toGm(o)

		// spans and local control points
		elems := b.Elements()
		spans := o.Spans()
		chk.Int(tst, name+": number of spans", len(spans), len(elems))
		for e, span := range spans {
			chk.Ints(tst, name+": span", []int{span.I, span.I + 1, span.J, span.J + 1}, elems[e])
			chk.Ints(tst, name+": ids", o.IndBasis(span), b.IndBasis(elems[e]))
			umin, umax, vmin, vmax := o.SpanLimits(span)
			chk.Array(tst, name+": limits", 1e-17, []float64{umin, umax, vmin, vmax},
				[]float64{b.U(0, elems[e][0]), b.U(0, elems[e][1]), b.U(1, elems[e][2]), b.U(1, elems[e][3])})

			// point and derivatives at integration points
			ips := IpsSurface(o, span, 0, 0)
			bas, err := o.CalcBasis(span, ips)
			require.NoError(tst, err)
			ctrl := o.ElemCtrl(span)
			for ip, p := range ips {
				x, x1, x2 := make([]float64, 3), make([]float64, 3), make([]float64, 3)
				x11, x22, x12 := make([]float64, 3), make([]float64, 3), make([]float64, 3)
				for k, c := range ctrl {
					for d := 0; d < 3; d++ {
						x[d] += bas.N[k][ip] * c.X[d]
						x1[d] += bas.N1[k][ip] * c.X[d]
						x2[d] += bas.N2[k][ip] * c.X[d]
						x11[d] += bas.N11[k][ip] * c.X[d]
						x22[d] += bas.N22[k][ip] * c.X[d]
						x12[d] += bas.N12[k][ip] * c.X[d]
					}
				}
				y, y1, y2 := make([]float64, 3), make([]float64, 3), make([]float64, 3)
				y11, y22, y12 := make([]float64, 3), make([]float64, 3), make([]float64, 3)
				b.PointAndDerivs(y, y1, y2, nil, y11, y22, nil, y12, nil, nil, []float64{p.R, p.S}, 3)
				msg := io.Sf("%s: span %d ip %d: ", name, e, ip)
				chk.Array(tst, msg+"x", 1e-13, x, y)
				chk.Array(tst, msg+"g1", 1e-12, x1, y1)
				chk.Array(tst, msg+"g2", 1e-12, x2, y2)
				chk.Array(tst, msg+"g11", 1e-11, x11, y11)
				chk.Array(tst, msg+"g22", 1e-11, x22, y22)
				chk.Array(tst, msg+"g12", 1e-11, x12, y12)
			}
		}
	}
}
