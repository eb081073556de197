// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"

	"github.com/ghodss/yaml"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Series returns the values of key along all recorded steps at the ips found by loc
//  Output: vals[nsteps][nipids]
func (o *Results) Series(key string, loc Locator) (ipids []int, vals [][]float64, err error) {
	ipids = loc.Locate(o)
	if len(ipids) < 1 {
		return nil, nil, chk.Err("cannot locate integration points with %v", loc)
	}
	vals = make([][]float64, o.Nsteps())
	for tidx, step := range o.Vals {
		vals[tidx] = make([]float64, len(ipids))
		for i, ipid := range ipids {
			v, ok := step[ipid][key]
			if !ok {
				return nil, nil, chk.Err("key %q is not available at ip %d", key, ipid)
			}
			vals[tidx][i] = v
		}
	}
	return
}

// MaxAbs returns the largest absolute value of key at step tidx and where it happens
func (o *Results) MaxAbs(tidx int, key string) (ipid int, val float64, err error) {
	if tidx < 0 || tidx >= o.Nsteps() {
		return -1, 0, chk.Err("step index %d is out of range", tidx)
	}
	ipid = -1
	for i, m := range o.Vals[tidx] {
		v, ok := m[key]
		if !ok {
			continue
		}
		if ipid < 0 || math.Abs(v) > math.Abs(val) {
			ipid, val = i, v
		}
	}
	if ipid < 0 {
		return -1, 0, chk.Err("key %q is not available", key)
	}
	return
}

// Print prints the largest values of each key at the last step and the knot displacements
func (o *Results) Print() {
	if o.Nsteps() == 0 {
		return
	}
	tidx := o.Nsteps() - 1
	io.Pf("\nresults at factor = %g\n", o.Factors[tidx])
	io.Pf("%6s%6s%6s%23s\n", "key", "eid", "ip", "max|val|")
	for _, key := range o.Ipkeys {
		ipid, val, err := o.MaxAbs(tidx, key)
		if err != nil {
			continue
		}
		d := o.Ipoints[ipid]
		io.Pf("%6s%6d%6d%23.15e\n", key, d.Eid, d.Ip, val)
	}
	for e, knots := range o.KnotDispl[tidx] {
		io.Pf("element %d: knot displacements = %v\n", e, knots)
	}
}

// record is the data of one step written to files
type record struct {
	Factor    float64         `json:"factor"`
	Ips       []ipRecord      `json:"ips"`
	KnotDispl [][4][3]float64 `json:"knotDispl"`
}

// ipRecord is the data of one integration point written to files
type ipRecord struct {
	Eid  int                `json:"eid"`
	Ip   int                `json:"ip"`
	X    []float64          `json:"x"`
	Vals map[string]float64 `json:"vals"`
}

// Save writes all recorded steps to a YAML file
func (o *Results) Save(fn string) (err error) {
	recs := make([]record, o.Nsteps())
	for tidx := range recs {
		recs[tidx].Factor = o.Factors[tidx]
		recs[tidx].KnotDispl = o.KnotDispl[tidx]
		for ipid, d := range o.Ipoints {
			recs[tidx].Ips = append(recs[tidx].Ips, ipRecord{Eid: d.Eid, Ip: d.Ip, X: d.X, Vals: o.Vals[tidx][ipid]})
		}
	}
	b, err := yaml.Marshal(recs)
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	if err = os.WriteFile(fn, b, 0644); err != nil {
		return chk.Err("cannot write results file <%s>:\n%v", fn, err)
	}
	return
}
