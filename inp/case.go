// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) case file
package inp

import (
	"os"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/msolid"
	"github.com/cpmech/klshell/shp"
)

// PatchData holds a NURBS surface
type PatchData struct {
	P     int         `json:"p"`     // degree along u
	Q     int         `json:"q"`     // degree along v
	U     []float64   `json:"U"`     // knots along u
	V     []float64   `json:"V"`     // knots along v
	Verts [][]float64 `json:"verts"` // control points {x, y, z[, weight]}; u running fastest
}

// ElemData holds element options
type ElemData struct {
	Type    string  `json:"type"`    // element type; default = "kls"
	Thick   float64 `json:"thick"`   // thickness
	Nu      int     `json:"nu"`      // integration points along u; 0 means degree+1
	Nv      int     `json:"nv"`      // integration points along v; 0 means degree+1
	Nzeta   int     `json:"nzeta"`   // integration points across thickness; 0 means 3
	Tangent string  `json:"tangent"` // "material" or "full"
}

// MatData holds material data
type MatData struct {
	Name  string             `json:"name"`  // model name; e.g. "elast"
	Model string             `json:"model"` // key in msolid database; default = "elast"
	Prms  map[string]float64 `json:"prms"`  // parameters
}

// Support holds prescribed (fixed) directions of a control point
type Support struct {
	Cp   int   `json:"cp"`   // control point id in patch
	Dirs []int `json:"dirs"` // fixed directions: 0, 1 or 2
}

// DistLoad holds a load distributed over the reference surface
type DistLoad struct {
	Dir int     `json:"dir"` // direction: 0, 1 or 2
	Q   float64 `json:"q"`   // intensity per unit of area
}

// LoadData holds surface loads applied to all elements
type LoadData struct {
	Pressure    float64    `json:"pressure"`    // pressure along the unit normal
	Distributed []DistLoad `json:"distributed"` // distributed loads
}

// StepData holds prescribed displacements of control points scaled by factors
type StepData struct {
	Displ   [][]float64 `json:"displ"`   // [ncp][3] displacements of control points
	Factors []float64   `json:"factors"` // multipliers of Displ; one per step
}

// Case holds all data of a shell case
type Case struct {
	Title    string    `json:"title"`    // title
	Patch    PatchData `json:"patch"`    // geometry
	Elem     ElemData  `json:"elem"`     // element options
	Material MatData   `json:"material"` // material
	Supports []Support `json:"supports"` // fixed dofs
	Loads    LoadData  `json:"loads"`    // surface loads
	Steps    StepData  `json:"steps"`    // prescribed displacements
}

// ReadCase reads and checks a case file
func ReadCase(fnpath string) (o *Case, err error) {
	data, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read case file %q:\n%v", fnpath, err)
	}
	o = new(Case)
	if err = o.Parse(data); err != nil {
		return nil, chk.Err("cannot parse case file %q:\n%v", fnpath, err)
	}
	return
}

// Parse decodes YAML data, sets defaults and checks the case
func (o *Case) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, o); err != nil {
		return
	}
	o.SetDefault()
	return o.Check()
}

// SetDefault sets default values
func (o *Case) SetDefault() {
	if o.Elem.Type == "" {
		o.Elem.Type = "kls"
	}
	if o.Elem.Tangent == "" {
		o.Elem.Tangent = "material"
	}
	if o.Material.Model == "" {
		o.Material.Model = "elast"
	}
	if o.Material.Name == "" {
		o.Material.Name = o.Material.Model
	}
}

// Check checks data that does not depend on other packages
func (o *Case) Check() error {
	if o.Elem.Thick <= 0 {
		return chk.Err("thickness must be positive. thick=%g is invalid", o.Elem.Thick)
	}
	ncp := len(o.Patch.Verts)
	for _, s := range o.Supports {
		if s.Cp < 0 || s.Cp >= ncp {
			return chk.Err("support at control point %d is out of range; ncp=%d", s.Cp, ncp)
		}
		for _, d := range s.Dirs {
			if d < 0 || d > 2 {
				return chk.Err("support at control point %d has invalid direction %d", s.Cp, d)
			}
		}
	}
	for _, l := range o.Loads.Distributed {
		if l.Dir < 0 || l.Dir > 2 {
			return chk.Err("distributed load has invalid direction %d", l.Dir)
		}
	}
	if len(o.Steps.Factors) > 0 && len(o.Steps.Displ) != ncp {
		return chk.Err("number of prescribed displacements must be equal to the number of control points. %d != %d", len(o.Steps.Displ), ncp)
	}
	for k, d := range o.Steps.Displ {
		if len(d) != 3 {
			return chk.Err("prescribed displacement of control point %d must have 3 components", k)
		}
	}
	return nil
}

// GetPatch allocates the NURBS patch
func (o *Case) GetPatch() (*shp.Patch, error) {
	return shp.NewPatch(o.Patch.P, o.Patch.Q, o.Patch.U, o.Patch.V, o.Patch.Verts)
}

// GetModel allocates and initialises the material template
func (o *Case) GetModel() (msolid.ShellModel, error) {
	return msolid.GetModel(o.Material.Model, msolid.Prms(o.Material.Prms))
}

// Fixed returns the fixed directions of control points; cp => [3]bool
func (o *Case) Fixed() (fixed map[int][3]bool) {
	fixed = make(map[int][3]bool)
	for _, s := range o.Supports {
		f := fixed[s.Cp]
		for _, d := range s.Dirs {
			f[d] = true
		}
		fixed[s.Cp] = f
	}
	return
}

// Print prints a summary of the case
func (o *Case) Print() {
	io.Pf("\"%s\"\t\t= Title\n", o.Title)
	io.Pf("(%d,%d)\t\t\t= Degrees\n", o.Patch.P, o.Patch.Q)
	io.Pf("%d\t\t\t= Control points\n", len(o.Patch.Verts))
	io.Pf("%g\t\t\t= Thickness\n", o.Elem.Thick)
	io.Pf("[%s]\t\t= Tangent\n", o.Elem.Tangent)
	io.Pf("[%s]\t\t= Material model\n", o.Material.Model)
	keys := make([]string, 0, len(o.Material.Prms))
	for k := range o.Material.Prms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		io.Pf("Prms[%s] = %v\n", key, o.Material.Prms[key])
	}
	io.Pf("%d\t\t\t= Supports\n", len(o.Supports))
	io.Pf("%d\t\t\t= Steps\n", len(o.Steps.Factors))
}
