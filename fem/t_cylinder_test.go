// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/klshell/ana"
	"github.com/cpmech/klshell/msolid"
)

func Test_cylinder01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cylinder01. quarter cylinder under internal pressure")

	// closed-form solution
	R, L, th, E, ν, P := 1.0, 2.0, 0.01, 1e6, 0.3, 1.0
	var sol ana.PressCylin
	sol.Init(map[string]float64{"R": R, "t": th, "E": E, "nu": ν})
	w := sol.ElastRadialU(P)
	io.Pforan("hoop force = %v  radial displacement = %v\n", sol.HoopForce(P), w)

	// element over the whole patch
	patch := get_cylinder(tst, R, L)
	mdl, err := msolid.GetModel("elast", msolid.Prms{"E": E, "nu": ν})
	require.NoError(tst, err)
	o, err := NewElemShell(0, patch, patch.Spans()[0], mdl, &ElemData{Thick: th, Nu: 6, Nv: 6})
	require.NoError(tst, err)
	eqs := make([][]int, o.Ncp)
	for k := range eqs {
		eqs[k] = []int{3 * k, 3*k + 1, 3*k + 2}
	}
	require.NoError(tst, o.SetEqs(eqs))
	require.NoError(tst, o.InitRefConfig())

	// uniform radial expansion with restrained axial displacements
	u := make([]float64, o.Nu)
	for k, p := range o.X0 {
		u[3*k] = w * p.X[0] / R
		u[3*k+1] = w * p.X[1] / R
	}
	require.NoError(tst, o.CalculateStresses(u, u))
	fint, err := o.CalculateForces(u, u)
	require.NoError(tst, err)

	// g1 × g2 points outwards
	load, err := o.CalculateSurfacePressure(P)
	require.NoError(tst, err)
	require.Empty(tst, load.Skipped)

	// radial dofs only: edge control points carry hoop reactions along the tangent
	var fmax float64
	for _, v := range load.F {
		fmax = math.Max(fmax, math.Abs(v))
	}
	for k := 0; k < o.Ncp; k++ {
		a := k % 3
		dirs := []int{0, 1}
		if a == 0 {
			dirs = []int{0}
		}
		if a == 2 {
			dirs = []int{1}
		}
		for _, i := range dirs {
			r := 3*k + i
			io.Pf("cp=%d i=%d fint=%13.6e fext=%13.6e\n", k, i, fint[r], load.F[r])
			chk.Float64(tst, io.Sf("cp %d dir %d", k, i), 1e-3*fmax, fint[r], load.F[r])
		}
	}
}
