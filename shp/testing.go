// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/cpmech/gosl/io"
)

// CheckPartitionOfUnity checks that basis values sum up to one and derivatives sum up to zero
func CheckPartitionOfUnity(tst *testing.T, b *Basis, tol float64) {
	for idx := 0; idx < b.Nip(); idx++ {
		var s, s1, s2, s11, s22, s12 float64
		for k := 0; k < b.Ncp(); k++ {
			s += b.N[k][idx]
			s1 += b.N1[k][idx]
			s2 += b.N2[k][idx]
			s11 += b.N11[k][idx]
			s22 += b.N22[k][idx]
			s12 += b.N12[k][idx]
		}
		if math.Abs(s-1) > tol {
			tst.Errorf("ip %d: sum of N = %v != 1", idx, s)
		}
		for i, d := range []float64{s1, s2, s11, s22, s12} {
			if math.Abs(d) > tol {
				tst.Errorf("ip %d: sum of derivative %d = %v != 0", idx, i, d)
			}
		}
	}
}

// CheckBasisDerivs compares analytical first and second derivatives with central differences
func CheckBasisDerivs(tst *testing.T, o *Patch, span Span, u, v, tol float64, verbose bool) {

	// analytical
	ana, err := o.EvalBasis(span, u, v)
	if err != nil {
		tst.Errorf("EvalBasis failed:\n%v", err)
		return
	}

	// numerical derivative of column k of table "get" along u (dir=0) or v (dir=1)
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-5}
	deriv := func(k, dir int, get func(b *Basis) [][]float64) float64 {
		x0 := u
		if dir == 1 {
			x0 = v
		}
		return fd.Derivative(func(t float64) float64 {
			uu, vv := u, v
			if dir == 0 {
				uu = t
			} else {
				vv = t
			}
			b, e := o.EvalBasis(span, uu, vv)
			if e != nil {
				tst.Errorf("EvalBasis failed:\n%v", e)
				return 0
			}
			return get(b)[k][0]
		}, x0, settings)
	}

	N := func(b *Basis) [][]float64 { return b.N }
	N1 := func(b *Basis) [][]float64 { return b.N1 }
	N2 := func(b *Basis) [][]float64 { return b.N2 }
	for k := 0; k < ana.Ncp(); k++ {
		checks := []struct {
			key string
			ana float64
			num float64
		}{
			{"N1", ana.N1[k][0], deriv(k, 0, N)},
			{"N2", ana.N2[k][0], deriv(k, 1, N)},
			{"N11", ana.N11[k][0], deriv(k, 0, N1)},
			{"N22", ana.N22[k][0], deriv(k, 1, N2)},
			{"N12", ana.N12[k][0], deriv(k, 1, N1)},
		}
		for _, c := range checks {
			if verbose {
				io.Pf("  %s[%d] @ (%5.2f,%5.2f) = %23.15e (num: %23.15e)\n", c.key, k, u, v, c.ana, c.num)
			}
			if math.Abs(c.ana-c.num) > tol {
				tst.Errorf("%s[%d] failed with err = %g\n", c.key, k, math.Abs(c.ana-c.num))
			}
		}
	}
}
