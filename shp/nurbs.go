// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
)

// Basis holds NURBS basis functions and derivatives of one element
//  Note: all tables are indexed by [control point][integration point]
type Basis struct {
	N   [][]float64 // values
	N1  [][]float64 // ∂N/∂u
	N2  [][]float64 // ∂N/∂v
	N11 [][]float64 // ∂²N/∂u²
	N22 [][]float64 // ∂²N/∂v²
	N12 [][]float64 // ∂²N/∂u∂v
}

// NewBasis allocates basis tables
func NewBasis(ncp, nip int) (o *Basis) {
	alloc := func() [][]float64 {
		m := make([][]float64, ncp)
		for i := range m {
			m[i] = make([]float64, nip)
		}
		return m
	}
	return &Basis{alloc(), alloc(), alloc(), alloc(), alloc(), alloc()}
}

// Ncp returns the number of control points
func (o *Basis) Ncp() int { return len(o.N) }

// Nip returns the number of integration points
func (o *Basis) Nip() int {
	if len(o.N) == 0 {
		return 0
	}
	return len(o.N[0])
}

// CalcBasis computes the rational basis tables of span at the given integration points
func (o *Patch) CalcBasis(span Span, ips []Ipoint) (b *Basis, err error) {
	ncp := (o.P + 1) * (o.Q + 1)
	b = NewBasis(ncp, len(ips))
	for idx, ip := range ips {
		err = o.calcAt(b, idx, span, ip.R, ip.S)
		if err != nil {
			return nil, err
		}
	}
	return
}

// EvalBasis computes the rational basis at a single parametric point of span
func (o *Patch) EvalBasis(span Span, u, v float64) (b *Basis, err error) {
	b = NewBasis((o.P+1)*(o.Q+1), 1)
	err = o.calcAt(b, 0, span, u, v)
	return
}

// calcAt computes column idx of basis tables
func (o *Patch) calcAt(b *Basis, idx int, span Span, u, v float64) (err error) {

	// check range
	umin, umax, vmin, vmax := o.SpanLimits(span)
	if u < umin || u > umax || v < vmin || v > vmax {
		return chk.Err("cannot compute NURBS basis outside span: (u,v)=(%g,%g), urange=[%g,%g], vrange=[%g,%g]", u, v, umin, umax, vmin, vmax)
	}

	// B-spline functions and derivatives up to second order
	du := dersBasisFuns(span.I, u, o.P, 2, o.U)
	dv := dersBasisFuns(span.J, v, o.Q, 2, o.V)

	// weighted sums
	var W, W1, W2, W11, W22, W12 float64
	k := 0
	for bj := 0; bj <= o.Q; bj++ {
		for ai := 0; ai <= o.P; ai++ {
			w := o.Ctrl[(span.I-o.P+ai)+(span.J-o.Q+bj)*o.Nu].W
			b.N[k][idx] = du[0][ai] * dv[0][bj] * w
			b.N1[k][idx] = du[1][ai] * dv[0][bj] * w
			b.N2[k][idx] = du[0][ai] * dv[1][bj] * w
			b.N11[k][idx] = du[2][ai] * dv[0][bj] * w
			b.N22[k][idx] = du[0][ai] * dv[2][bj] * w
			b.N12[k][idx] = du[1][ai] * dv[1][bj] * w
			W += b.N[k][idx]
			W1 += b.N1[k][idx]
			W2 += b.N2[k][idx]
			W11 += b.N11[k][idx]
			W22 += b.N22[k][idx]
			W12 += b.N12[k][idx]
			k++
		}
	}

	// quotient rule
	for k = 0; k < len(b.N); k++ {
		R := b.N[k][idx] / W
		R1 := (b.N1[k][idx] - R*W1) / W
		R2 := (b.N2[k][idx] - R*W2) / W
		b.N11[k][idx] = (b.N11[k][idx] - 2*R1*W1 - R*W11) / W
		b.N22[k][idx] = (b.N22[k][idx] - 2*R2*W2 - R*W22) / W
		b.N12[k][idx] = (b.N12[k][idx] - R1*W2 - R2*W1 - R*W12) / W
		b.N[k][idx] = R
		b.N1[k][idx] = R1
		b.N2[k][idx] = R2
	}
	return
}

// dersBasisFuns computes the non-vanishing B-spline functions of degree p at u and their
// derivatives up to order n (Piegl & Tiller, algorithm A2.3)
//  Output: ders[k][j] is the k-th derivative of function i-p+j
func dersBasisFuns(i int, u float64, p, n int, knots []float64) (ders [][]float64) {

	// functions and knot differences
	ndu := alloc(p+1, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	ndu[0][0] = 1.0
	for j := 1; j <= p; j++ {
		left[j] = u - knots[i+1-j]
		right[j] = knots[i+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	// values
	ders = alloc(n+1, p+1)
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	// derivatives
	ncol := p + 1
	if n+1 > ncol {
		ncol = n + 1
	}
	a := alloc(2, ncol)
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1.0
		for k := 1; k <= n; k++ {
			d := 0.0
			rk, pk := r-k, p-k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1, j2 := 1, k-1
			if rk < -1 {
				j1 = -rk
			}
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	// multiply through by the correct factors
	fac := float64(p)
	for k := 1; k <= n; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= fac
		}
		fac *= float64(p - k)
	}
	return
}

func alloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}
