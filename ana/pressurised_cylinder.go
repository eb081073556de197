// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
)

// PressCylin implements the membrane solution to a thin-walled cylinder under internal
// pressure P with axial strains restrained (plane strain)
//
//               , - - ,
//           , '    ↑    ' ,
//         ,   ↖    |    ↗   ,
//        ,         |         ,
//       ,  ←-------+-------→  ,   R: mid-surface radius
//        ,         |    R    ,    t: wall thickness
//         ,   ↙    |    ↘   ,
//           ,      ↓     , '
//             ' - , ,  '
type PressCylin struct {
	R  float64 // mid-surface radius
	th float64 // wall thickness
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *PressCylin) Init(prms map[string]float64) {

	// default values
	o.R = 1.0
	o.th = 0.01
	o.E = 210000
	o.ν = 0.3

	// parameters
	for name, v := range prms {
		switch name {
		case "R":
			o.R = v
		case "t":
			o.th = v
		case "E":
			o.E = v
		case "nu":
			o.ν = v
		default:
			chk.Panic("PressCylin: parameter %q is not available", name)
		}
	}
}

// HoopForce returns the circumferential membrane force per unit of length
func (o PressCylin) HoopForce(P float64) float64 {
	return P * o.R
}

// Stresses returns the circumferential and axial stresses
func (o PressCylin) Stresses(P float64) (σθ, σz float64) {
	σθ = P * o.R / o.th
	σz = o.ν * σθ
	return
}

// ElastRadialU returns the radial displacement of the mid-surface
func (o PressCylin) ElastRadialU(P float64) float64 {
	σθ, _ := o.Stresses(P)
	return σθ * (1 - o.ν*o.ν) * o.R / o.E
}
