// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// keys of secondary values at integration points
var (
	OutKeysN = []string{"N11", "N22", "N12"} // membrane forces
	OutKeysM = []string{"M11", "M22", "M12"} // bending moments
	OutKeysE = []string{"e11", "e22", "e12"} // membrane strains
	OutKeysK = []string{"k11", "k22", "k12"} // bending strains
)

// OutIpsData returns the integration points and the functions to calculate secondary values:
// membrane forces and moments, strains and the largest internal variables across the thickness.
// The functions return nil before the reference configuration is available
func (o *ElemShell) OutIpsData() (data []*OutIpData) {
	data = make([]*OutIpData, len(o.Ips))
	for idx := range o.Ips {
		ip := idx
		x := make([]float64, 3)
		for k, p := range o.X0 {
			for i := 0; i < 3; i++ {
				x[i] += o.B.N[k][ip] * p.X[i]
			}
		}
		calc := func() map[string]float64 {
			if o.Phase == Uninitialized {
				return nil
			}
			res := make(map[string]float64)
			N, M := o.IntegratedStresses(ip)
			for i := 0; i < 3; i++ {
				res[OutKeysN[i]] = N[i]
				res[OutKeysM[i]] = M[i]
				res[OutKeysE[i]] = o.Emem[ip][i]
				res[OutKeysK[i]] = o.Ebend[ip][i]
			}
			for k := o.Toff[ip]; k < o.Toff[ip+1]; k++ {
				sta, _ := o.Mdls[k].GetState()
				for i, α := range sta.Alp {
					key := io.Sf("alp%d", i)
					if v, ok := res[key]; ok {
						res[key] = math.Max(v, α)
						continue
					}
					res[key] = α
				}
			}
			return res
		}
		data[idx] = &OutIpData{Eid: o.Eid, Ip: ip, X: x, Calc: calc}
	}
	return
}
