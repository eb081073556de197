// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/cpmech/klshell/fem"
)

// Locator defines interface for locating integration points
type Locator interface {
	Locate(o *Results) []int // returns ipids
}

// At implements locator of the integration point nearest to {x, y, z}
type At []float64

// P implements [element][integrationPoint] locator
//  Note: negative integration points ids means all integration points of element
type P [][]int

// All implements locator of all integration points
type All struct{}

// Locate finds points
func (l At) Locate(o *Results) []int {
	if len(l) != 3 || o.tree == nil {
		return nil
	}
	c, _ := o.tree.Nearest(ipPoint{x: [3]float64{l[0], l[1], l[2]}, id: -1})
	if c == nil {
		return nil
	}
	return []int{c.(ipPoint).id}
}

// Locate finds points
func (l P) Locate(o *Results) (res []int) {
	for _, pair := range l {
		if len(pair) != 2 || pair[0] < 0 || pair[0] >= len(o.Eid2ips) {
			continue
		}
		ids := o.Eid2ips[pair[0]]
		if pair[1] < 0 {
			res = append(res, ids...)
			continue
		}
		if pair[1] < len(ids) {
			res = append(res, ids[pair[1]])
		}
	}
	return
}

// Locate finds points
func (l All) Locate(o *Results) (res []int) {
	res = make([]int, len(o.Ipoints))
	for i := range res {
		res[i] = i
	}
	return
}

// ipPoint is an integration point stored in the k-d tree of Results
type ipPoint struct {
	x  [3]float64
	id int // ipid
}

func (p ipPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.x[d] - c.(ipPoint).x[d]
}

func (p ipPoint) Dims() int { return 3 }

func (p ipPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(ipPoint)
	dx, dy, dz := p.x[0]-q.x[0], p.x[1]-q.x[1], p.x[2]-q.x[2]
	return dx*dx + dy*dy + dz*dz
}

// ipPoints implements kdtree.Interface
type ipPoints []ipPoint

func (p ipPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p ipPoints) Len() int                              { return len(p) }
func (p ipPoints) Pivot(d kdtree.Dim) int                { return ipPlane{ipPoints: p, Dim: d}.Pivot() }
func (p ipPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// ipPlane sorts ipPoints along one dimension
type ipPlane struct {
	kdtree.Dim
	ipPoints
}

func (p ipPlane) Less(i, j int) bool {
	a, b := p.ipPoints[i], p.ipPoints[j]
	if a.x[p.Dim] == b.x[p.Dim] {
		return a.id < b.id
	}
	return a.x[p.Dim] < b.x[p.Dim]
}
func (p ipPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p ipPlane) Slice(start, end int) kdtree.SortSlicer {
	p.ipPoints = p.ipPoints[start:end]
	return p
}
func (p ipPlane) Swap(i, j int) { p.ipPoints[i], p.ipPoints[j] = p.ipPoints[j], p.ipPoints[i] }

// newIpTree builds the k-d tree of integration points
func newIpTree(ipoints []*fem.OutIpData) *kdtree.Tree {
	if len(ipoints) == 0 {
		return nil
	}
	pts := make(ipPoints, len(ipoints))
	for i, d := range ipoints {
		pts[i] = ipPoint{id: i}
		copy(pts[i].x[:], d.X)
	}
	return kdtree.New(pts, false)
}
