// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_ips01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips01. surface points")

	o := get_patch_A(tst)
	for _, span := range o.Spans() {
		ips := IpsSurface(o, span, 0, 0)
		chk.Int(tst, "len(ips)", len(ips), 6)
		umin, umax, vmin, vmax := o.SpanLimits(span)
		sum := 0.0
		for _, ip := range ips {
			assert.True(tst, ip.R > umin && ip.R < umax)
			assert.True(tst, ip.S > vmin && ip.S < vmax)
			sum += ip.W
		}
		chk.Float64(tst, "area", 1e-15, sum, (umax-umin)*(vmax-vmin))
	}
	chk.Int(tst, "nip", len(IpsSurface(o, o.Spans()[0], 4, 3)), 12)
}

func Test_ips02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips02. thickness points")

	t := 0.3
	for n := 1; n <= 5; n++ {
		tps := IpsThickness(t, n)
		var s0, s1, s2 float64
		for _, p := range tps {
			assert.True(tst, p.Zeta > -t/2 && p.Zeta < t/2)
			s0 += p.W
			s1 += p.W * p.Zeta
			s2 += p.W * p.Zeta * p.Zeta
		}
		io.Pforan("n=%d: Σw=%v Σwζ=%v Σwζ²=%v\n", n, s0, s1, s2)
		chk.Float64(tst, "∫dζ", 1e-15, s0, t)
		chk.Float64(tst, "∫ζdζ", 1e-15, s1, 0)
		if n > 1 {
			chk.Float64(tst, "∫ζ²dζ", 1e-15, s2, t*t*t/12)
		}
	}
	assert.Panics(tst, func() { IpsThickness(0, 3) })
}
