// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/gosl/chk"
)

// SkipReason tells why a load component was left out of a load vector
type SkipReason int

// skip reasons
const (
	SkipFixed      SkipReason = iota // dof has a prescribed value
	SkipUnnumbered                   // dof was never given an equation number
)

func (r SkipReason) String() string {
	if r == SkipFixed {
		return "fixed"
	}
	return "unnumbered"
}

// SkippedDof holds a load component that was not added to F
type SkippedDof struct {
	Cp     int        // local control point index
	Dir    int        // direction: 0, 1 or 2
	Value  float64    // load left out
	Reason SkipReason // why
}

// SurfLoad holds the equivalent forces of a surface load
type SurfLoad struct {
	F       map[int]float64 // equation number => force
	Skipped []SkippedDof    // components at dofs without free equations
}

// CalculateSurfacePressure computes the forces of a pressure p acting along the reference unit
// normal g3 (positive p pushes along +g3)
func (o *ElemShell) CalculateSurfacePressure(p float64) (res *SurfLoad, err error) {
	fe := make([]float64, o.Nu)
	for ip := range o.Ips {
		g, e := o.refGeom(ip)
		if e != nil {
			return nil, e
		}
		coef := p * g.J1 * o.Ips[ip].W
		for k := 0; k < o.Ncp; k++ {
			v := r3.Scale(coef*o.B.N[k][ip], g.G3)
			fe[3*k] += v.X
			fe[3*k+1] += v.Y
			fe[3*k+2] += v.Z
		}
	}
	return o.surfLoad(fe), nil
}

// CalculateSurfaceDistributedLoad computes the forces of a load with intensity q per unit of
// reference area acting along the global direction dir (0, 1 or 2)
func (o *ElemShell) CalculateSurfaceDistributedLoad(dir int, q float64) (res *SurfLoad, err error) {
	if dir < 0 || dir > 2 {
		return nil, chk.Err("element %d: direction of distributed load must be 0, 1 or 2. %d is invalid", o.Eid, dir)
	}
	fe := make([]float64, o.Nu)
	for ip := range o.Ips {
		g, e := o.refGeom(ip)
		if e != nil {
			return nil, e
		}
		coef := q * g.J1 * o.Ips[ip].W
		for k := 0; k < o.Ncp; k++ {
			fe[3*k+dir] += coef * o.B.N[k][ip]
		}
	}
	return o.surfLoad(fe), nil
}

// refGeom returns the reference geometry at ip; cached values are used after initialisation
func (o *ElemShell) refGeom(ip int) (SurfGeom, error) {
	if o.RefGeom != nil {
		return o.RefGeom[ip], nil
	}
	return o.surfGeom(o.X0, ip)
}

// surfLoad maps local forces to equations; zero components are ignored
func (o *ElemShell) surfLoad(fe []float64) (res *SurfLoad) {
	res = &SurfLoad{F: make(map[int]float64)}
	for r, v := range fe {
		k, i := r/3, r%3
		switch {
		case v == 0:
			continue
		case o.numbered == nil || !o.numbered[r]:
			res.Skipped = append(res.Skipped, SkippedDof{Cp: k, Dir: i, Value: v, Reason: SkipUnnumbered})
		case o.Umap[r] < 0:
			res.Skipped = append(res.Skipped, SkippedDof{Cp: k, Dir: i, Value: v, Reason: SkipFixed})
		default:
			res.F[o.Umap[r]] += v
		}
	}
	return
}
