// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/inp"
)

func Test_cmd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd01. run and check example case")

	var c inp.Case
	require.NoError(tst, c.Parse([]byte(exampleCase)))
	res, err := runCase(&c, 3, chk.Verbose)
	require.NoError(tst, err)
	chk.Int(tst, "res.Nsteps()", res.Nsteps(), 2)

	require.NoError(tst, c.Parse([]byte(exampleCase)))
	assert.NoError(tst, checkCase(&c, 1e-6, chk.Verbose))
}

func Test_cmd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd02. material failure")

	data := `
elem: {thick: 0.1}
patch: {p: 1, q: 1, U: [0, 0, 1, 1], V: [0, 0, 1, 1], verts: [[0,0,0], [1,0,0], [0,1,0], [1,1,0]]}
material: {model: damage, prms: {E: 1000, nu: 0.3, k0: 1e-3, kf: 1e-3}}
steps:
  displ: [[0,0,0], [0.002,0,0], [0,0,0], [0.002,0,0]]
  factors: [0.5, 1]
`
	var c inp.Case
	require.NoError(tst, c.Parse([]byte(data)))
	res, err := runCase(&c, 0, chk.Verbose)
	require.NoError(tst, err)
	_, d, err := res.MaxAbs(1, "alp1")
	require.NoError(tst, err)
	io.Pforan("max damage = %v\n", d)
	assert.True(tst, d > 0 && d < 1)

	// damage reaches the critical value; cutting the step cannot help
	require.NoError(tst, c.Parse([]byte(data)))
	c.Steps.Factors = []float64{1, 3}
	_, err = runCase(&c, 3, chk.Verbose)
	io.Pforan("err = %v\n", err)
	assert.Error(tst, err)
	assert.Contains(tst, err.Error(), "material update failed")

	// command line
	fn := filepath.Join(tst.TempDir(), "plate.yaml")
	require.NoError(tst, os.WriteFile(fn, []byte(exampleCase), 0644))
	rfn := filepath.Join(tst.TempDir(), "results.yaml")
	rootCmd.SetArgs([]string{"run", "-c", fn, "-o", rfn})
	assert.NoError(tst, Execute())
	assert.FileExists(tst, rfn)
	rootCmd.SetArgs([]string{"check", "-c", fn, "--tol", "1e-5"})
	assert.NoError(tst, Execute())
	rootCmd.SetArgs([]string{"run", "-c", ""})
	assert.Error(tst, Execute())
}

func Test_cmd03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd03. example files")

	fns, err := filepath.Glob("../examples/*.yaml")
	require.NoError(tst, err)
	require.NotEmpty(tst, fns)
	for _, fn := range fns {
		io.Pforan("file = %v\n", fn)
		c, err := inp.ReadCase(fn)
		require.NoError(tst, err)
		res, err := runCase(c, 3, chk.Verbose)
		require.NoError(tst, err, fn)
		assert.Equal(tst, len(c.Steps.Factors), res.Nsteps(), fn)
		c, err = inp.ReadCase(fn)
		require.NoError(tst, err)
		assert.NoError(tst, checkCase(c, 1e-5, chk.Verbose), fn)
	}
}
