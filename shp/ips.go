// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds a mid-surface integration point in parametric coordinates
//  Note: W already includes the parametric area of the span
type Ipoint struct {
	R float64 // u coordinate
	S float64 // v coordinate
	W float64 // weight
}

// ThickPoint holds a through-thickness integration point
type ThickPoint struct {
	Zeta float64 // thickness coordinate in [-t/2, t/2]
	W    float64 // weight; sum of weights equals the thickness
}

// IpsSurface returns nu×nv Gauss-Legendre points over span, u running fastest
//  Note: nu <= 0 or nv <= 0 selects degree+1 points along that direction
func IpsSurface(o *Patch, span Span, nu, nv int) (ips []Ipoint) {
	if nu <= 0 {
		nu = o.P + 1
	}
	if nv <= 0 {
		nv = o.Q + 1
	}
	umin, umax, vmin, vmax := o.SpanLimits(span)
	xu, wu := legendre(nu, umin, umax)
	xv, wv := legendre(nv, vmin, vmax)
	ips = make([]Ipoint, 0, nu*nv)
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			ips = append(ips, Ipoint{R: xu[i], S: xv[j], W: wu[i] * wv[j]})
		}
	}
	return
}

// IpsThickness returns n Gauss-Legendre points over [-t/2, t/2]
func IpsThickness(thickness float64, n int) (tps []ThickPoint) {
	if thickness <= 0 {
		chk.Panic("thickness must be positive. t=%g is invalid", thickness)
	}
	if n < 1 {
		chk.Panic("number of thickness points must be at least one. n=%d is invalid", n)
	}
	x, w := legendre(n, -thickness/2, thickness/2)
	tps = make([]ThickPoint, n)
	for i := range tps {
		tps[i] = ThickPoint{Zeta: x[i], W: w[i]}
	}
	return
}

// legendre returns n Gauss-Legendre locations and weights over [min, max]
func legendre(n int, min, max float64) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, min, max)
	return
}
