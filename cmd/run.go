// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/klshell/fem"
	"github.com/cpmech/klshell/inp"
	"github.com/cpmech/klshell/msolid"
	"github.com/cpmech/klshell/out"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate all elements of a case for the prescribed displacement steps",
	Long: `Evaluate all elements of a case: equivalent forces of surface loads, then, for each step,
stress update, internal forces and stiffness. Steps whose material update fails are cut in halves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer startProfile()()
		c, err := readCase(cmd)
		if err != nil {
			return err
		}
		res, err := runCase(c, viper.GetInt("maxcuts"), viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		res.Print()
		if fn := viper.GetString("output"); fn != "" {
			return res.Save(fn)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	caseFlag(RunCmd)
	RunCmd.Flags().StringP("tangent", "t", "", "stiffness terms: \"material\" or \"full\"; overrides the case file")
	RunCmd.Flags().IntP("maxcuts", "m", 5, "max number of cuts of a step after material failures")
	viper.BindPFlag("tangent", RunCmd.Flags().Lookup("tangent"))
	RunCmd.Flags().StringP("output", "o", "", "YAML file to write the results at integration points")
	viper.BindPFlag("maxcuts", RunCmd.Flags().Lookup("maxcuts"))
	viper.BindPFlag("output", RunCmd.Flags().Lookup("output"))
}

// readCase reads the case given by the flags of cmd
func readCase(cmd *cobra.Command) (c *inp.Case, err error) {
	fn, _ := cmd.Flags().GetString("caseFile")
	if fn == "" {
		io.Pf("Example file:%s\n", exampleCase)
		return nil, chk.Err("must supply a case file (-c, --caseFile)")
	}
	c, err = inp.ReadCase(fn)
	if err != nil {
		return
	}
	if t := viper.GetString("tangent"); t != "" {
		c.Elem.Tangent = t
	}
	if viper.GetBool("verbose") {
		c.Print()
	}
	return
}

// runCase evaluates all elements of c and records the results of each step
func runCase(c *inp.Case, maxcuts int, verbose bool) (res *out.Results, err error) {

	// domain
	dom, err := fem.NewDomain(c, verbose)
	if err != nil {
		return
	}

	// loads
	loads, err := dom.ElemLoads()
	if err != nil {
		return
	}
	dirs := eqDirs(dom)
	var total [3]float64
	nskip := 0
	for e, ll := range loads {
		for _, l := range ll {
			for eq, v := range l.F {
				total[dirs[eq]] += v
			}
			for _, s := range l.Skipped {
				nskip++
				if verbose {
					io.Pf("element %d: load at control point %d, direction %d was skipped (%v)\n", e, s.Cp, s.Dir, s.Reason)
				}
			}
		}
	}
	io.Pf("resultant of surface loads on free dofs = %v (%d components skipped)\n", total, nskip)

	// steps
	if err = dom.Initialise(); err != nil {
		return
	}
	res = out.Start(dom)
	prev := 0.0
	for _, target := range c.Steps.Factors {
		factor, ncuts := target, 0
		for {
			sres, e := dom.Step(factor)
			if e == nil {
				printStep(factor, sres)
				if err = res.Record(factor); err != nil {
					return nil, err
				}
				prev = factor
				if factor == target {
					break
				}
				factor = target
				continue
			}
			if !errors.Is(e, msolid.ErrUpdateFailed) || ncuts >= maxcuts {
				return nil, chk.Err("step with factor %g failed:\n%v", factor, e)
			}
			ncuts++
			factor = prev + (factor-prev)/2
			io.Pforan("material update failed; cutting step to factor %g\n", factor)
		}
	}
	return
}

// eqDirs maps equation numbers to directions
func eqDirs(dom *fem.Domain) (dirs map[int]int) {
	dirs = make(map[int]int, dom.Ny)
	for _, row := range dom.Eqs {
		for i, eq := range row {
			if eq >= 0 {
				dirs[eq] = i
			}
		}
	}
	return
}

// printStep prints the results of one step
func printStep(factor float64, res []*fem.StepResult) {
	io.Pf("\nfactor = %g\n", factor)
	io.Pf("%6s%23s%23s\n", "eid", "‖f‖", "‖K‖")
	for _, r := range res {
		io.Pf("%6d%23.15e%23.15e\n", r.Eid, floats.Norm(r.Fint, 2), r.Knorm)
	}
}
