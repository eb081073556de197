// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of element results along a sequence of steps
package out

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/klshell/fem"
)

// Results holds integration points data and the values recorded at each step
type Results struct {
	Dom       *fem.Domain            // FE domain
	Ipoints   []*fem.OutIpData       // all integration points. ipid == index in Ipoints
	Eid2ips   [][]int                // [nelems][nip] maps element id to index in Ipoints
	Ipkeys    []string               // all ip keys, sorted
	Factors   []float64              // [nsteps] recorded load factors
	Vals      [][]map[string]float64 // [nsteps][nipts] values at ips
	KnotDispl [][][4][3]float64      // [nsteps][nelems] displacements at the corners of spans

	tree *kdtree.Tree // ip locations
}

// KnotDisplacer defines elements that compute the displacements at the corners of their spans
type KnotDisplacer interface {
	KnotDisplacements(u []float64) (d [4][3]float64, err error)
}

// Start collects the integration points of all elements of dom
func Start(dom *fem.Domain) (o *Results) {
	o = &Results{Dom: dom}
	o.Eid2ips = make([][]int, len(dom.Elems))
	for e, ele := range dom.Elems {
		dat := ele.OutIpsData()
		ids := make([]int, len(dat))
		for i, d := range dat {
			ids[i] = len(o.Ipoints)
			o.Ipoints = append(o.Ipoints, d)
		}
		o.Eid2ips[e] = ids
	}
	o.tree = newIpTree(o.Ipoints)
	return
}

// Record stores the current values at all integration points and the knot displacements for
// the prescribed displacements scaled by factor
func (o *Results) Record(factor float64) (err error) {
	vals := make([]map[string]float64, len(o.Ipoints))
	keys := make(map[string]bool)
	for ipid, d := range o.Ipoints {
		vals[ipid] = d.Calc()
		if vals[ipid] == nil {
			return chk.Err("element %d, ip %d: results are not available", d.Eid, d.Ip)
		}
		for key := range vals[ipid] {
			keys[key] = true
		}
	}
	knots := make([][4][3]float64, len(o.Dom.Elems))
	for e, ele := range o.Dom.Elems {
		kd, ok := ele.(KnotDisplacer)
		if !ok {
			continue
		}
		if knots[e], err = kd.KnotDisplacements(o.Dom.ElemDispl(e, factor)); err != nil {
			return
		}
	}
	o.Factors = append(o.Factors, factor)
	o.Vals = append(o.Vals, vals)
	o.KnotDispl = append(o.KnotDispl, knots)
	for _, key := range o.Ipkeys {
		keys[key] = true
	}
	o.Ipkeys = o.Ipkeys[:0]
	for key := range keys {
		o.Ipkeys = append(o.Ipkeys, key)
	}
	sort.Strings(o.Ipkeys)
	return
}

// Nsteps returns the number of recorded steps
func (o *Results) Nsteps() int { return len(o.Factors) }
