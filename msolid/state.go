// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the data of one material point
type State struct {
	Sig []float64 // σ: current stresses [nsig]
	Eps []float64 // ε: strains leading to Sig [nsig]
	Alp []float64 // α: internal variables [nalp]
}

// NewState allocates a state structure
func NewState(nsig, nalp int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	state.Eps = make([]float64, nsig)
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.Eps, other.Eps)
	copy(o.Alp, other.Alp)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp))
	other.Set(o)
	return other
}
