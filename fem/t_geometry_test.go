// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/msolid"
	"github.com/cpmech/klshell/shp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// get_plate returns a flat Lx×Ly plate on the xy-plane with one Bézier span of degrees (p,q)
func get_plate(tst *testing.T, p, q int, Lx, Ly float64) *shp.Patch {
	knots := func(d int) (k []float64) {
		for i := 0; i <= d; i++ {
			k = append(k, 0)
		}
		for i := 0; i <= d; i++ {
			k = append(k, 1)
		}
		return
	}
	var verts [][]float64
	for b := 0; b <= q; b++ {
		for a := 0; a <= p; a++ {
			verts = append(verts, []float64{Lx * float64(a) / float64(p), Ly * float64(b) / float64(q), 0, 1})
		}
	}
	o, err := shp.NewPatch(p, q, knots(p), knots(q), verts)
	require.NoError(tst, err)
	return o
}

// get_cylinder returns a quarter of a cylinder with radius R and length L along z
func get_cylinder(tst *testing.T, R, L float64) *shp.Patch {
	s := math.Sqrt2 / 2
	verts := [][]float64{
		{R, 0, 0, 1}, {R, R, 0, s}, {0, R, 0, 1},
		{R, 0, L / 2, 1}, {R, R, L / 2, s}, {0, R, L / 2, 1},
		{R, 0, L, 1}, {R, R, L, s}, {0, R, L, 1},
	}
	o, err := shp.NewPatch(2, 2, []float64{0, 0, 0, 1, 1, 1}, []float64{0, 0, 0, 1, 1, 1}, verts)
	require.NoError(tst, err)
	return o
}

// get_elem returns an element over the first span of patch with linear elastic material
func get_elem(tst *testing.T, patch *shp.Patch, edat *ElemData) *ElemShell {
	mdl, err := msolid.GetModel("elast", msolid.Prms{"E": 1000, "nu": 0.3})
	require.NoError(tst, err)
	o, err := NewElemShell(7, patch, patch.Spans()[0], mdl, edat)
	require.NoError(tst, err)
	return o
}

func Test_geometry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry01. cylinder")

	R := 2.0
	o := get_elem(tst, get_cylinder(tst, R, 3), &ElemData{Thick: 0.1})
	for ip := range o.Ips {
		g, err := CalcSurfGeom(o.X0, o.B, ip)
		require.NoError(tst, err)

		// unit normal is radial
		x := r3.Vec{}
		for k, p := range o.X0 {
			x = r3.Add(x, r3.Scale(o.B.N[k][ip], r3.Vec{X: p.X[0], Y: p.X[1], Z: p.X[2]}))
		}
		radial := r3.Unit(r3.Vec{X: x.X, Y: x.Y})
		io.Pforan("ip=%d g3=%v radial=%v J1=%v\n", ip, g.G3, radial, g.J1)
		chk.Float64(tst, "|g3·r|", 1e-12, math.Abs(r3.Dot(g.G3, radial)), 1.0)
		chk.Float64(tst, "|g3|", 1e-14, r3.Norm(g.G3), 1.0)
		chk.Float64(tst, "g3·g1", 1e-13, r3.Dot(g.G3, g.G1), 0.0)
		chk.Float64(tst, "g3·g2", 1e-13, r3.Dot(g.G3, g.G2), 0.0)

		// curvature: b11 / a11 = ±1/R along the circumference; straight along z
		a, b := g.Metric(), g.Curvature()
		chk.Float64(tst, "b11/a11", 1e-12, math.Abs(b[0]/a[0]), 1/R)
		chk.Float64(tst, "b22", 1e-12, b[1], 0.0)
		chk.Float64(tst, "b12", 1e-12, b[2], 0.0)
	}
}

func Test_geometry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry02. degenerate")

	// all control points on a line
	verts := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	patch, err := shp.NewPatch(1, 1, []float64{0, 0, 1, 1}, []float64{0, 0, 1, 1}, verts)
	require.NoError(tst, err)
	o := get_elem(tst, patch, &ElemData{Thick: 0.1})

	g, err := CalcSurfGeom(o.X0, o.B, 0)
	assert.True(tst, errors.Is(err, ErrDegenerateGeometry))
	assert.Equal(tst, SurfGeom{}, g)

	K, err := o.StiffnessMatrix()
	io.Pforan("err = %v\n", err)
	assert.Nil(tst, K)
	assert.True(tst, errors.Is(err, ErrDegenerateGeometry))
	var ge *GeomError
	require.True(tst, errors.As(err, &ge))
	chk.Int(tst, "ge.Eid", ge.Eid, 7)
	chk.Int(tst, "ge.Ip", ge.Ip, 0)
	assert.Equal(tst, Uninitialized, o.Phase)
	chk.Int(tst, "o.NinitRef", o.NinitRef, 0)

	// collapsing a valid element
	o = get_elem(tst, get_plate(tst, 1, 1, 1, 1), &ElemData{Thick: 0.1})
	_, err = o.StiffnessMatrix()
	require.NoError(tst, err)
	u := make([]float64, o.Nu)
	for k, p := range o.X0 {
		u[3*k], u[3*k+1] = -p.X[0], -p.X[1]
	}
	err = o.CalculateStresses(u, nil)
	assert.True(tst, errors.Is(err, ErrDegenerateGeometry))
	_, err = o.CalculateForces(u, nil)
	assert.True(tst, errors.Is(err, ErrStaleStrains))
}

func Test_geometry03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geometry03. scale independence")

	// micrometre plate
	for _, L := range []float64{1e-6, 1, 1e6} {
		o := get_elem(tst, get_plate(tst, 1, 1, L, L), &ElemData{Thick: L / 10})
		_, err := o.StiffnessMatrix()
		require.NoError(tst, err)
		g, err := CalcSurfGeom(o.X0, o.B, 0)
		require.NoError(tst, err)
		chk.Float64(tst, io.Sf("J1/L² @ L=%g", L), 1e-14, g.J1/(L*L), 1)
		chk.Float64(tst, "g3z", 1e-15, g.G3.Z, 1)
	}

	// sliver with an angle of 1e-12 between tangents
	for _, L := range []float64{1, 1e6} {
		verts := [][]float64{{0, 0, 0}, {L, 0, 0}, {L, 1e-12 * L, 0}, {2 * L, 1e-12 * L, 0}}
		patch, err := shp.NewPatch(1, 1, []float64{0, 0, 1, 1}, []float64{0, 0, 1, 1}, verts)
		require.NoError(tst, err)
		o := get_elem(tst, patch, &ElemData{Thick: 0.1})
		_, err = CalcSurfGeom(o.X0, o.B, 0)
		io.Pforan("L=%g: err = %v\n", L, err)
		assert.True(tst, errors.Is(err, ErrDegenerateGeometry))
	}
}

func Test_bmatrix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bmatrix01. derivatives of strains")

	o := get_elem(tst, get_cylinder(tst, 1, 2), &ElemData{Thick: 0.1})
	_, err := o.StiffnessMatrix()
	require.NoError(tst, err)

	// some displacements
	u0 := make([]float64, o.Nu)
	for r := range u0 {
		u0[r] = 0.05 * math.Sin(float64(r+1))
	}

	// strains at ip as a function of u
	for ip := range o.Ips {
		strains := func(y, u []float64) {
			o.U = u
			x := o.CurrentCtrlPoints()
			g, e := CalcSurfGeom(x, o.B, ip)
			require.NoError(tst, e)
			ε, κ := o.strains(ip, &g)
			copy(y, ε[:])
			copy(y[3:], κ[:])
		}
		J := mat.NewDense(6, o.Nu, nil)
		fd.Jacobian(J, strains, u0, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})

		// analytical
		o.U = u0
		g, e := CalcSurfGeom(o.CurrentCtrlPoints(), o.B, ip)
		require.NoError(tst, e)
		MembraneB(o.bm, o.B, ip, &g)
		BendingB(o.bb, o.B, ip, &g)
		for i := 0; i < 3; i++ {
			for r := 0; r < o.Nu; r++ {
				chk.Float64(tst, io.Sf("Bm[%d][%d] @ ip %d", i, r, ip), 1e-7, o.bm.At(i, r), J.At(i, r))
				chk.Float64(tst, io.Sf("Bb[%d][%d] @ ip %d", i, r, ip), 1e-7, o.bb.At(i, r), -J.At(3+i, r))
			}
		}
	}
}
