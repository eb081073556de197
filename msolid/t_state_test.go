// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01")

	state0 := NewState(3, 2)
	io.Pforan("state0 = %+v\n", state0)
	chk.Array(tst, "state0.Sig", 1e-17, state0.Sig, []float64{0, 0, 0})
	chk.Array(tst, "state0.Alp", 1e-17, state0.Alp, []float64{0, 0})

	state0.Sig[0] = 10.0
	state0.Sig[1] = 11.0
	state0.Sig[2] = 12.0
	state0.Eps[2] = 1.0
	state0.Alp[0] = 20.0

	state1 := NewState(3, 2)
	state1.Set(state0)
	io.Pforan("state1 = %+v\n", state1)
	chk.Array(tst, "state1.Sig", 1e-17, state1.Sig, []float64{10, 11, 12})
	chk.Array(tst, "state1.Eps", 1e-17, state1.Eps, []float64{0, 0, 1})
	chk.Array(tst, "state1.Alp", 1e-17, state1.Alp, []float64{20, 0})

	state2 := state1.GetCopy()
	state1.Sig[0] = -1
	chk.Array(tst, "state2.Sig", 1e-17, state2.Sig, []float64{10, 11, 12})
	chk.Array(tst, "state2.Alp", 1e-17, state2.Alp, []float64{20, 0})

	state3 := NewState(3, 0)
	assert.Nil(tst, state3.Alp)
	assert.Nil(tst, state3.GetCopy().Alp)
}
