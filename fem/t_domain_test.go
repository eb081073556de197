// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/inp"
)

const stripCase = `
title: "Strip with two spans"
patch:
  p: 2
  q: 1
  U: [0, 0, 0, 0.5, 1, 1, 1]
  V: [0, 0, 1, 1]
  verts:
    - [0.0, 0, 0]
    - [0.5, 0, 0]
    - [1.5, 0, 0]
    - [2.0, 0, 0]
    - [0.0, 1, 0]
    - [0.5, 1, 0]
    - [1.5, 1, 0]
    - [2.0, 1, 0]
elem:
  thick: 0.2
  tangent: full
material:
  prms: {E: 1000, nu: 0.25}
supports:
  - {cp: 0, dirs: [0, 1, 2]}
  - {cp: 4, dirs: [0, 1, 2]}
loads:
  distributed:
    - {dir: 2, q: -1}
steps:
  displ: [[0,0,0], [0.001,0,0], [0.003,0,0], [0.004,0,0], [0,0,0], [0.001,0,0], [0.003,0,0], [0.004,0,0]]
  factors: [1]
`

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01")

	var c inp.Case
	require.NoError(tst, c.Parse([]byte(stripCase)))
	dom, err := NewDomain(&c, chk.Verbose)
	require.NoError(tst, err)
	chk.Int(tst, "len(dom.Elems)", len(dom.Elems), 2)
	chk.Int(tst, "dom.Ny", dom.Ny, 18)
	chk.Ints(tst, "dom.Eqs[0]", dom.Eqs[0], []int{-1, -1, -1})
	chk.Ints(tst, "dom.Eqs[1]", dom.Eqs[1], []int{0, 1, 2})
	chk.Ints(tst, "dom.Cids[1]", dom.Cids[1], []int{1, 2, 3, 5, 6, 7})

	// loads: total = q × area; fixed control points take their share out
	loads, err := dom.ElemLoads()
	require.NoError(tst, err)
	total, skipped := 0.0, 0.0
	for _, ll := range loads {
		for _, l := range ll {
			for _, v := range l.F {
				total += v
			}
			for _, s := range l.Skipped {
				assert.Equal(tst, SkipFixed, s.Reason)
				skipped += s.Value
			}
		}
	}
	io.Pforan("total = %v, skipped = %v\n", total, skipped)
	chk.Float64(tst, "total+skipped", 1e-12, total+skipped, -2.0)
	assert.True(tst, skipped < 0)

	// uniform stretch; ux = 0.002 x
	require.NoError(tst, dom.Initialise())
	res, err := dom.Step(1)
	require.NoError(tst, err)
	require.Equal(tst, 2, len(res))
	for e, r := range res {
		shell := dom.Elems[e].(*ElemShell)
		assert.Equal(tst, StateCommitted, shell.Phase)
		for ip := range shell.Ips {
			chk.Float64(tst, "ε11/A11", 1e-12, shell.Emem[ip][0]/shell.RefMet[ip][0], 0.002+0.002*0.002/2)
		}
		assert.True(tst, r.Knorm > 0)
	}
}
