// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "klshell",
	Short: "Nonlinear isogeometric Kirchhoff-Love shell elements",
	Long: `klshell evaluates nonlinear NURBS Kirchhoff-Love shell elements described by a YAML case:
stiffness matrices, internal forces, stress updates and equivalent forces of surface loads.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.klshell.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show messages")
	rootCmd.PersistentFlags().String("profile", "", "write a CPU profile to this directory")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			chk.Panic("cannot find home directory:\n%v", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".klshell")
	}
	viper.SetEnvPrefix("KLSHELL")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		io.Pf("using config file: %s\n", viper.ConfigFileUsed())
	}
}

// startProfile starts CPU profiling if requested; the returned function stops it
func startProfile() (stop func()) {
	dir := viper.GetString("profile")
	if dir == "" {
		return func() {}
	}
	return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop
}

// caseFlag adds the case file flag to c
func caseFlag(c *cobra.Command) {
	c.Flags().StringP("caseFile", "c", "", "YAML case file")
}

const exampleCase = `
########################################
title: "Square plate"
patch:
  p: 1
  q: 1
  U: [0, 0, 1, 1]
  V: [0, 0, 1, 1]
  verts: [[0,0,0], [1,0,0], [0,1,0], [1,1,0]]
elem: {thick: 0.1, tangent: full}
material: {model: elast, prms: {E: 1000, nu: 0.3}}
supports: [{cp: 0, dirs: [0, 1, 2]}]
loads: {pressure: -1}
steps:
  displ: [[0,0,0], [0.001,0,0], [0,0,0], [0.001,0,0]]
  factors: [0.5, 1]
########################################
`
