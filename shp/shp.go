// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements NURBS surface patches, basis tables and integration points
package shp

import (
	"github.com/cpmech/gosl/chk"
)

// CtrlPoint holds a weighted control point
type CtrlPoint struct {
	X    [3]float64 // coordinates
	Ksi  float64    // parametric coordinate along u (Greville abscissa)
	Heta float64    // parametric coordinate along v (Greville abscissa)
	W    float64    // NURBS weight
}

// Span holds the knot indices of a non-empty knot span: U[I] < U[I+1] and V[J] < V[J+1]
type Span struct {
	I, J int
}

// Patch holds a NURBS surface
//  Note: control points are ordered with the u index running fastest
type Patch struct {
	P, Q int         // degrees along u and v
	U, V []float64   // knot vectors
	Nu   int         // number of control points along u
	Nv   int         // number of control points along v
	Ctrl []CtrlPoint // [Nu*Nv] control net
}

// NewPatch returns a new patch after checking the consistency of knots and control net
//  verts -- [Nu*Nv][4] {x, y, z, weight} with u running fastest
func NewPatch(p, q int, U, V []float64, verts [][]float64) (o *Patch, err error) {
	if p < 1 || q < 1 {
		return nil, chk.Err("degrees must be at least one. p=%d, q=%d", p, q)
	}
	o = &Patch{P: p, Q: q, U: U, V: V}
	o.Nu = len(U) - p - 1
	o.Nv = len(V) - q - 1
	if o.Nu < p+1 || o.Nv < q+1 {
		return nil, chk.Err("knot vectors are too short for degrees (%d,%d): len(U)=%d, len(V)=%d", p, q, len(U), len(V))
	}
	if err = checkKnots(U); err != nil {
		return nil, err
	}
	if err = checkKnots(V); err != nil {
		return nil, err
	}
	if len(verts) != o.Nu*o.Nv {
		return nil, chk.Err("number of control points must be %d×%d=%d. %d is incorrect", o.Nu, o.Nv, o.Nu*o.Nv, len(verts))
	}
	ksi := greville(U, p, o.Nu)
	heta := greville(V, q, o.Nv)
	o.Ctrl = make([]CtrlPoint, len(verts))
	for k, v := range verts {
		if len(v) < 3 {
			return nil, chk.Err("control point %d must have at least 3 coordinates", k)
		}
		w := 1.0
		if len(v) > 3 {
			w = v[3]
		}
		if w <= 0 {
			return nil, chk.Err("weight of control point %d must be positive. w=%g is invalid", k, w)
		}
		o.Ctrl[k] = CtrlPoint{X: [3]float64{v[0], v[1], v[2]}, Ksi: ksi[k%o.Nu], Heta: heta[k/o.Nu], W: w}
	}
	return
}

// Spans returns all non-empty knot spans, u running fastest
func (o *Patch) Spans() (spans []Span) {
	for j := o.Q; j < o.Nv; j++ {
		if o.V[j] >= o.V[j+1] {
			continue
		}
		for i := o.P; i < o.Nu; i++ {
			if o.U[i] >= o.U[i+1] {
				continue
			}
			spans = append(spans, Span{i, j})
		}
	}
	return
}

// IndBasis returns the ids of control points with support on span, u running fastest
func (o *Patch) IndBasis(span Span) (ids []int) {
	ids = make([]int, 0, (o.P+1)*(o.Q+1))
	for b := span.J - o.Q; b <= span.J; b++ {
		for a := span.I - o.P; a <= span.I; a++ {
			ids = append(ids, a+b*o.Nu)
		}
	}
	return
}

// SpanLimits returns the parametric limits of span
func (o *Patch) SpanLimits(span Span) (umin, umax, vmin, vmax float64) {
	return o.U[span.I], o.U[span.I+1], o.V[span.J], o.V[span.J+1]
}

// ElemCtrl returns copies of the control points with support on span
func (o *Patch) ElemCtrl(span Span) (x []CtrlPoint) {
	ids := o.IndBasis(span)
	x = make([]CtrlPoint, len(ids))
	for k, id := range ids {
		x[k] = o.Ctrl[id]
	}
	return
}

// checkKnots checks that knots are non-decreasing
func checkKnots(knots []float64) error {
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return chk.Err("knots must be non-decreasing. knots=%v", knots)
		}
	}
	return nil
}

// greville computes the Greville abscissae of n basis functions of degree p
func greville(knots []float64, p, n int) (g []float64) {
	g = make([]float64, n)
	for i := 0; i < n; i++ {
		for k := 1; k <= p; k++ {
			g[i] += knots[i+k]
		}
		g[i] /= float64(p)
	}
	return
}
