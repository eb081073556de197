// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/cpmech/klshell/shp"
)

// CurrentCtrlPoints returns new control points at the reference positions plus the last
// assigned displacements. Parametric coordinates and weights are unchanged
func (o *ElemShell) CurrentCtrlPoints() (x []shp.CtrlPoint) {
	x = make([]shp.CtrlPoint, len(o.X0))
	copy(x, o.X0)
	if o.U == nil {
		return
	}
	for k := range x {
		for i := 0; i < 3; i++ {
			x[k].X[i] += o.U[3*k+i]
		}
	}
	return
}

// InitRefConfig computes and caches the reference geometry at all integration points and
// sets the frame of all material models. It runs once; later calls do nothing
func (o *ElemShell) InitRefConfig() (err error) {
	if o.Phase != Uninitialized {
		return
	}
	geo := make([]SurfGeom, len(o.Ips))
	for ip := range o.Ips {
		geo[ip], err = o.surfGeom(o.X0, ip)
		if err != nil {
			return
		}
	}
	o.RefGeom = geo
	o.RefMet = make([][3]float64, len(geo))
	o.RefCur = make([][3]float64, len(geo))
	for ip := range geo {
		o.RefMet[ip] = geo[ip].Metric()
		o.RefCur[ip] = geo[ip].Curvature()
		for k := o.Toff[ip]; k < o.Toff[ip+1]; k++ {
			o.Mdls[k].SetFrame(geo[ip].G1, geo[ip].G2, geo[ip].G3)
		}
	}
	o.NinitRef++
	o.Phase = Initialized
	return
}

// surfGeom computes the geometry at ip and tags degenerate points with the element id
func (o *ElemShell) surfGeom(x []shp.CtrlPoint, ip int) (g SurfGeom, err error) {
	g, err = CalcSurfGeom(x, o.B, ip)
	var ge *GeomError
	if errors.As(err, &ge) {
		ge.Eid = o.Eid
	}
	return
}
