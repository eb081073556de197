// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/klshell/msolid"
	"github.com/cpmech/klshell/shp"
)

// ElemShell implements a nonlinear isogeometric Kirchhoff-Love shell element defined over one
// knot span of a NURBS patch. Unknowns are the 3 displacements of each control point
type ElemShell struct {

	// basic data
	Eid     int             // element id
	Patch   *shp.Patch      // patch; read only
	Span    shp.Span        // knot span
	X0      []shp.CtrlPoint // [ncp] reference control points (copies)
	Ncp     int             // number of control points
	Nu      int             // total number of unknowns = 3 * ncp
	Thick   float64         // thickness
	Tangent TangentMode     // terms in stiffness matrix

	// integration points
	Ips  []shp.Ipoint     // [nip] mid-surface integration points
	B    *shp.Basis       // basis tables at Ips
	Tps  []shp.ThickPoint // [ntp] thickness points of all mid-surface points
	Tmid []int            // [ntp] mid-surface point of each thickness point
	Toff []int            // [nip+1] thickness points of ip are Tps[Toff[ip]:Toff[ip+1]]

	// material models aligned with Tps
	Mdls []msolid.ShellModel

	// reference configuration; read only after initialisation
	RefGeom  []SurfGeom   // [nip] geometry
	RefMet   [][3]float64 // [nip] metric {A11, A22, A12}
	RefCur   [][3]float64 // [nip] curvature {B11, B22, B12}
	NinitRef int          // number of times the reference configuration was computed

	// state
	Phase Phase        // life cycle tag
	U     []float64    // [nu] last assigned total displacements
	Usig  []float64    // [nu] displacements leading to current stresses; nil if none
	Emem  [][3]float64 // [nip] membrane strains {ε11, ε22, 2ε12}
	Ebend [][3]float64 // [nip] bending strains {κ11, κ22, 2κ12}

	// committed strains
	ememBkp  [][3]float64
	ebendBkp [][3]float64

	// equations
	Umap     []int  // [nu] equation numbers; negative means fixed
	numbered []bool // [nu] whether an equation number was assigned

	// scratchpad
	bm *mat.Dense // [3][nu] membrane B matrix
	bb *mat.Dense // [3][nu] bending B matrix
}

// register element
func init() {
	eallocators["kls"] = func(eid int, patch *shp.Patch, span shp.Span, model msolid.ShellModel, edat *ElemData) (Elem, error) {
		o, err := NewElemShell(eid, patch, span, model, edat)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// NewElemShell returns a new shell element over span with one clone of model per thickness point
func NewElemShell(eid int, patch *shp.Patch, span shp.Span, model msolid.ShellModel, edat *ElemData) (o *ElemShell, err error) {

	// check input
	if model == nil {
		return nil, chk.Err("element %d: material model must be given", eid)
	}
	if edat.Thick <= 0 {
		return nil, chk.Err("element %d: thickness must be positive. t=%g is invalid", eid, edat.Thick)
	}
	if span.I < patch.P || span.I >= patch.Nu || span.J < patch.Q || span.J >= patch.Nv {
		return nil, chk.Err("element %d: span %v is out of range", eid, span)
	}
	if umin, umax, vmin, vmax := patch.SpanLimits(span); umin >= umax || vmin >= vmax {
		return nil, chk.Err("element %d: span %v is empty", eid, span)
	}

	// basic data
	o = new(ElemShell)
	o.Eid = eid
	o.Patch = patch
	o.Span = span
	o.X0 = patch.ElemCtrl(span)
	o.Ncp = len(o.X0)
	o.Nu = 3 * o.Ncp
	o.Thick = edat.Thick
	o.Tangent = edat.Tangent

	// mid-surface integration points and basis
	o.Ips = shp.IpsSurface(patch, span, edat.Nu, edat.Nv)
	o.B, err = patch.CalcBasis(span, o.Ips)
	if err != nil {
		return nil, chk.Err("element %d: cannot compute basis:\n%v", eid, err)
	}

	// thickness points and models
	nzeta := edat.Nzeta
	if nzeta <= 0 {
		nzeta = 3
	}
	tz := shp.IpsThickness(o.Thick, nzeta)
	nip := len(o.Ips)
	o.Tps = make([]shp.ThickPoint, 0, nip*nzeta)
	o.Tmid = make([]int, 0, nip*nzeta)
	o.Mdls = make([]msolid.ShellModel, 0, nip*nzeta)
	o.Toff = make([]int, nip+1)
	for ip := 0; ip < nip; ip++ {
		o.Toff[ip] = len(o.Tps)
		for _, tp := range tz {
			o.Tps = append(o.Tps, tp)
			o.Tmid = append(o.Tmid, ip)
			o.Mdls = append(o.Mdls, model.Clone())
		}
	}
	o.Toff[nip] = len(o.Tps)

	// scratchpad
	o.Emem = make([][3]float64, nip)
	o.Ebend = make([][3]float64, nip)
	o.ememBkp = make([][3]float64, nip)
	o.ebendBkp = make([][3]float64, nip)
	o.bm = mat.NewDense(3, o.Nu, nil)
	o.bb = mat.NewDense(3, o.Nu, nil)
	return
}

// Id returns the element id
func (o *ElemShell) Id() int { return o.Eid }

// SetEqs sets equation numbers
//  eqs -- [ncp][≤3] equation numbers of {ux, uy, uz}; negative means fixed; missing means unnumbered
func (o *ElemShell) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != o.Ncp {
		return chk.Err("element %d: number of rows in eqs must be %d. %d is incorrect", o.Eid, o.Ncp, len(eqs))
	}
	o.Umap = make([]int, o.Nu)
	o.numbered = make([]bool, o.Nu)
	for m := 0; m < o.Ncp; m++ {
		if len(eqs[m]) > 3 {
			return chk.Err("element %d: control point %d has %d equations; at most 3 are allowed", o.Eid, m, len(eqs[m]))
		}
		for i := 0; i < 3; i++ {
			r := i + m*3
			o.Umap[r] = -1
			if i < len(eqs[m]) {
				o.Umap[r] = eqs[m][i]
				o.numbered[r] = true
			}
		}
	}
	return
}

// StiffnessMatrix computes the tangent stiffness matrix at the last assigned displacements.
// The first call computes the reference configuration
func (o *ElemShell) StiffnessMatrix() (K *mat.Dense, err error) {

	// initialisation
	err = o.InitRefConfig()
	if err != nil {
		return
	}

	// for each integration point
	x := o.CurrentCtrlPoints()
	K = mat.NewDense(o.Nu, o.Nu, nil)
	var t1, t2, tmp, kip, kaux mat.Dense
	for ip := range o.Ips {

		// current geometry and B matrices
		g, e := o.surfGeom(x, ip)
		if e != nil {
			return nil, e
		}
		MembraneB(o.bm, o.B, ip, &g)
		BendingB(o.bb, o.B, ip, &g)

		// material part: Bmᵗ(Cm Bm - Cc Bb) + Bbᵗ(Cb Bb - Cc Bm)
		coef := o.RefGeom[ip].J1 * o.Ips[ip].W
		Cm, Cb, Cc := o.IntegratedConstitutive(ip)
		t1.Mul(Cm, o.bm)
		tmp.Mul(Cc, o.bb)
		t1.Sub(&t1, &tmp)
		t2.Mul(Cb, o.bb)
		tmp.Mul(Cc, o.bm)
		t2.Sub(&t2, &tmp)
		kip.Mul(o.bm.T(), &t1)
		kaux.Mul(o.bb.T(), &t2)
		kip.Add(&kip, &kaux)
		kip.Scale(coef, &kip)
		K.Add(K, &kip)

		// geometric part
		if o.Tangent == TangentFull {
			N, M := o.IntegratedStresses(ip)
			o.addGeoStiff(K, ip, &g, N, M, coef)
		}
	}
	return
}

// CalculateStresses updates strains and stresses of all material points for total displacements u
//  Note: du is not used; models update from their committed state
func (o *ElemShell) CalculateStresses(u, du []float64) (err error) {

	// check
	if o.Phase == Uninitialized {
		return fmt.Errorf("element %d: cannot update stresses: %w", o.Eid, ErrNotInitialized)
	}
	if err = o.setU(u); err != nil {
		return
	}
	o.Usig = nil

	// on failure, all points go back to the committed state
	defer func() {
		if err != nil {
			copy(o.Emem, o.ememBkp)
			copy(o.Ebend, o.ebendBkp)
			for _, m := range o.Mdls {
				m.RestoreState()
			}
			if o.Phase == StrainsUpdated {
				o.Phase = StateCommitted
			}
		}
	}()

	// for each integration point
	x := o.CurrentCtrlPoints()
	ε := make([]float64, 3)
	for ip := range o.Ips {

		// mid-surface strains
		g, e := o.surfGeom(x, ip)
		if e != nil {
			return e
		}
		o.Emem[ip], o.Ebend[ip] = o.strains(ip, &g)

		// material points
		em, kb := o.Emem[ip], o.Ebend[ip]
		for k := o.Toff[ip]; k < o.Toff[ip+1]; k++ {
			ζ := o.Tps[k].Zeta
			for i := 0; i < 3; i++ {
				ε[i] = em[i] + ζ*kb[i]
			}
			err = o.Mdls[k].Update(ε)
			if err != nil {
				return fmt.Errorf("element %d, ip %d, thickness point %d: %w", o.Eid, ip, k-o.Toff[ip], err)
			}
		}
	}
	o.Usig = make([]float64, o.Nu)
	copy(o.Usig, o.U)
	o.Phase = StrainsUpdated
	return
}

// CalculateForces computes the internal forces at total displacements u using the stresses of
// the last CalculateStresses, which must have been called with the same u
func (o *ElemShell) CalculateForces(u, du []float64) (f []float64, err error) {

	// check
	if o.Phase == Uninitialized {
		return nil, fmt.Errorf("element %d: cannot compute forces: %w", o.Eid, ErrNotInitialized)
	}
	if len(u) != o.Nu {
		return nil, chk.Err("element %d: length of displacements must be %d. %d is incorrect", o.Eid, o.Nu, len(u))
	}
	if o.Usig == nil || !floats.Equal(u, o.Usig) {
		return nil, fmt.Errorf("element %d: cannot compute forces: %w", o.Eid, ErrStaleStrains)
	}
	if err = o.setU(u); err != nil {
		return
	}

	// for each integration point
	x := o.CurrentCtrlPoints()
	f = make([]float64, o.Nu)
	for ip := range o.Ips {
		g, e := o.surfGeom(x, ip)
		if e != nil {
			return nil, e
		}
		MembraneB(o.bm, o.B, ip, &g)
		BendingB(o.bb, o.B, ip, &g)
		N, M := o.IntegratedStresses(ip)
		coef := o.RefGeom[ip].J1 * o.Ips[ip].W
		for r := 0; r < o.Nu; r++ {
			for i := 0; i < 3; i++ {
				f[r] += coef * (o.bm.At(i, r)*N[i] + o.bb.At(i, r)*M[i])
			}
		}
	}
	return
}

// SaveMaterialState commits the state of all material points; it does nothing unless the
// stresses have been updated since the last commit
func (o *ElemShell) SaveMaterialState() {
	if o.Phase != StrainsUpdated {
		return
	}
	for _, m := range o.Mdls {
		m.SaveState()
	}
	copy(o.ememBkp, o.Emem)
	copy(o.ebendBkp, o.Ebend)
	o.Phase = StateCommitted
}

// MassMatrix is not supported
func (o *ElemShell) MassMatrix() (*mat.Dense, error) {
	return nil, fmt.Errorf("element %d: mass matrix: %w", o.Eid, ErrNotSupported)
}

// DampingMatrix is not supported
func (o *ElemShell) DampingMatrix() (*mat.Dense, error) {
	return nil, fmt.Errorf("element %d: damping matrix: %w", o.Eid, ErrNotSupported)
}

// AccelerationForces is not supported
func (o *ElemShell) AccelerationForces(acc []float64) ([]float64, error) {
	return nil, fmt.Errorf("element %d: acceleration forces: %w", o.Eid, ErrNotSupported)
}

// ForcesForLogging is not supported
func (o *ElemShell) ForcesForLogging() ([]float64, error) {
	return nil, fmt.Errorf("element %d: forces for logging: %w", o.Eid, ErrNotSupported)
}

// KnotDisplacements interpolates u at the corners of the knot span
//  Output: d[corner] = {ux, uy, uz} with corners (u0,v0), (u1,v0), (u1,v1), (u0,v1)
func (o *ElemShell) KnotDisplacements(u []float64) (d [4][3]float64, err error) {
	if len(u) != o.Nu {
		return d, chk.Err("element %d: length of displacements must be %d. %d is incorrect", o.Eid, o.Nu, len(u))
	}
	umin, umax, vmin, vmax := o.Patch.SpanLimits(o.Span)
	corners := [4][2]float64{{umin, vmin}, {umax, vmin}, {umax, vmax}, {umin, vmax}}
	for c, rs := range corners {
		b, e := o.Patch.EvalBasis(o.Span, rs[0], rs[1])
		if e != nil {
			return d, e
		}
		for k := 0; k < o.Ncp; k++ {
			for i := 0; i < 3; i++ {
				d[c][i] += b.N[k][0] * u[3*k+i]
			}
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// setU stores a copy of the total displacements
func (o *ElemShell) setU(u []float64) error {
	if len(u) != o.Nu {
		return chk.Err("element %d: length of displacements must be %d. %d is incorrect", o.Eid, o.Nu, len(u))
	}
	if o.U == nil {
		o.U = make([]float64, o.Nu)
	}
	copy(o.U, u)
	return nil
}

// strains computes membrane and bending strains at ip from current geometry g
func (o *ElemShell) strains(ip int, g *SurfGeom) (ε, κ [3]float64) {
	a, b := g.Metric(), g.Curvature()
	A, B := o.RefMet[ip], o.RefCur[ip]
	ε = [3]float64{(a[0] - A[0]) / 2, (a[1] - A[1]) / 2, a[2] - A[2]}
	κ = [3]float64{b[0] - B[0], b[1] - B[1], 2 * (b[2] - B[2])}
	return
}
