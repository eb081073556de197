// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/fem"
	"github.com/cpmech/klshell/inp"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the elements of a case: symmetry, rigid body motions and tangent",
	Long: `Check the elements of a case at the displacements of the last step: the stiffness matrix must be
symmetric, a rigid translation must not produce forces and, with the full tangent, the stiffness
must match central differences of the internal forces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer startProfile()()
		c, err := readCase(cmd)
		if err != nil {
			return err
		}
		tol, _ := cmd.Flags().GetFloat64("tol")
		return checkCase(c, tol, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	caseFlag(CheckCmd)
	CheckCmd.Flags().Float64("tol", 1e-6, "relative tolerance")
}

// checkCase checks all elements of c
func checkCase(c *inp.Case, tol float64, verbose bool) (err error) {
	dom, err := fem.NewDomain(c, verbose)
	if err != nil {
		return
	}
	if err = dom.Initialise(); err != nil {
		return
	}
	factor := 0.0
	if n := len(c.Steps.Factors); n > 0 {
		factor = c.Steps.Factors[n-1]
	}
	nfail := 0
	for e, ele := range dom.Elems {
		u := dom.ElemDispl(e, factor)
		msgs, err := checkElem(ele, u, tol, c.Elem.Tangent == "full")
		if err != nil {
			return err
		}
		for _, m := range msgs {
			io.PfRed("element %d: %s\n", ele.Id(), m)
		}
		if len(msgs) > 0 {
			nfail++
		} else if verbose {
			io.Pf("element %d: OK\n", ele.Id())
		}
	}
	if nfail > 0 {
		return chk.Err("%d of %d elements failed", nfail, len(dom.Elems))
	}
	io.Pf("all %d elements passed\n", len(dom.Elems))
	return
}

// checkElem returns the failed checks of one element at displacements u
func checkElem(ele fem.Elem, u []float64, tol float64, full bool) (failed []string, err error) {

	// symmetry
	if err = ele.CalculateStresses(u, nil); err != nil {
		return
	}
	K, err := ele.StiffnessMatrix()
	if err != nil {
		return
	}
	knorm := mat.Norm(K, math.Inf(1))
	var diff mat.Dense
	diff.Sub(K, K.T())
	if r := mat.Norm(&diff, math.Inf(1)) / knorm; r > tol {
		failed = append(failed, io.Sf("stiffness is not symmetric: relative difference = %g", r))
	}

	// tangent
	if full {
		nu := len(u)
		Knum := mat.NewDense(nu, nu, nil)
		var e error
		fd.Jacobian(Knum, func(y, x []float64) {
			if e != nil {
				return
			}
			if e = ele.CalculateStresses(x, nil); e != nil {
				return
			}
			var f []float64
			f, e = ele.CalculateForces(x, nil)
			copy(y, f)
		}, u, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})
		if e != nil {
			return nil, e
		}
		diff.Sub(K, Knum)
		if r := mat.Norm(&diff, math.Inf(1)) / knorm; r > tol {
			failed = append(failed, io.Sf("tangent does not match numerical derivatives: relative difference = %g", r))
		}
	}

	// rigid translation
	t := make([]float64, len(u))
	for r := range t {
		t[r] = float64(r%3 + 1)
	}
	if err = ele.CalculateStresses(t, nil); err != nil {
		return
	}
	f, err := ele.CalculateForces(t, nil)
	if err != nil {
		return
	}
	if r := floats.Norm(f, math.Inf(1)) / knorm; r > tol {
		failed = append(failed, io.Sf("rigid translation gives forces: ‖f‖/‖K‖ = %g", r))
	}
	return
}
