// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/klshell/shp"
)

// MINJ1 is the smallest admissible area-scale factor relative to ‖g1‖‖g2‖; i.e. the sine of the
// angle between the tangent vectors
const MINJ1 = 1e-10

// SurfGeom holds the differential geometry of the mid-surface at one integration point
type SurfGeom struct {
	G1, G2        r3.Vec  // tangent vectors ∂x/∂u and ∂x/∂v
	G11, G22, G12 r3.Vec  // curvature vectors ∂²x/∂u², ∂²x/∂v², ∂²x/∂u∂v
	A3            r3.Vec  // g1 × g2
	G3            r3.Vec  // unit normal
	J1            float64 // area-scale factor ‖g1 × g2‖
}

// Metric returns the covariant metric components {a11, a22, a12}
func (o *SurfGeom) Metric() [3]float64 {
	return [3]float64{r3.Dot(o.G1, o.G1), r3.Dot(o.G2, o.G2), r3.Dot(o.G1, o.G2)}
}

// Curvature returns the curvature tensor components {b11, b22, b12}
func (o *SurfGeom) Curvature() [3]float64 {
	return [3]float64{r3.Dot(o.G11, o.G3), r3.Dot(o.G22, o.G3), r3.Dot(o.G12, o.G3)}
}

// GeomError reports a degenerate mid-surface at an integration point
type GeomError struct {
	Eid int     // element id; -1 if unknown
	Ip  int     // integration point index
	J1  float64 // area-scale factor found
	Min float64 // smallest admissible J1 at this point
}

func (e *GeomError) Error() string {
	return fmt.Sprintf("element %d, ip %d: area-scale factor J1=%g is below %g", e.Eid, e.Ip, e.J1, e.Min)
}

// Unwrap makes errors.Is(err, ErrDegenerateGeometry) hold
func (e *GeomError) Unwrap() error { return ErrDegenerateGeometry }

// CalcSurfGeom computes tangent and curvature vectors, the unit normal and J1 at integration point ip
//  x -- control points of the element, ordered as the basis tables
func CalcSurfGeom(x []shp.CtrlPoint, b *shp.Basis, ip int) (g SurfGeom, err error) {
	for k, p := range x {
		X := r3.Vec{X: p.X[0], Y: p.X[1], Z: p.X[2]}
		g.G1 = r3.Add(g.G1, r3.Scale(b.N1[k][ip], X))
		g.G2 = r3.Add(g.G2, r3.Scale(b.N2[k][ip], X))
		g.G11 = r3.Add(g.G11, r3.Scale(b.N11[k][ip], X))
		g.G22 = r3.Add(g.G22, r3.Scale(b.N22[k][ip], X))
		g.G12 = r3.Add(g.G12, r3.Scale(b.N12[k][ip], X))
	}
	g.A3 = r3.Cross(g.G1, g.G2)
	g.J1 = r3.Norm(g.A3)
	jmin := MINJ1 * r3.Norm(g.G1) * r3.Norm(g.G2)
	if !(g.J1 > 0 && g.J1 >= jmin) {
		return SurfGeom{}, &GeomError{Eid: -1, Ip: ip, J1: g.J1, Min: jmin}
	}
	g.G3 = r3.Scale(1/g.J1, g.A3)
	return
}
