// Copyright 2018 The zipper team Authors
// This file is part of the z0 library.
//
// The z0 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The z0 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the z0 library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var configFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:          "faucet",
	Short:        "faucet runs asset issuance transactions against a local ledger",
	Long:         `faucet runs asset issuance transactions against a local ledger`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			if err := applyConfigFile(cmd.Flags(), configFile); err != nil {
				return err
			}
		}
		return setUpConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// applyConfigFile loads file over the defaults and re-applies the flags
// given on the command line, so flags take precedence.
func applyConfigFile(flags *pflag.FlagSet, file string) error {
	values := make(map[string]string)
	slices := make(map[string][]string)
	flags.Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			slices[f.Name] = sv.GetSlice()
		} else {
			values[f.Name] = f.Value.String()
		}
	})
	if err := loadConfig(file, faucetCfg); err != nil {
		return err
	}
	for name, value := range values {
		if err := flags.Set(name, value); err != nil {
			return err
		}
	}
	// Set appends to slice flags, restore them whole instead.
	for name, items := range slices {
		if err := flags.Lookup(name).Value.(pflag.SliceValue).Replace(items); err != nil {
			return err
		}
	}
	log.Debug("Loaded config file", "file", file, "overrides", len(values)+len(slices))
	return nil
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "TOML configuration file")
	RootCmd.PersistentFlags().StringVarP(&nodeConfig.DataDir, "datadir", "d", nodeConfig.DataDir, "Data directory for the ledger database (empty for an in-memory ledger)")

	// logging
	RootCmd.PersistentFlags().BoolVar(&logConfig.PrintOrigins, "debug", false, "Prepends log messages with call-site location (file and line number)")
	RootCmd.PersistentFlags().IntVar(&logConfig.Level, "level", logConfig.Level, "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail")
	RootCmd.PersistentFlags().StringVar(&logConfig.Vmodule, "vmodule", "", "Per-module verbosity: comma-separated list of <pattern>=<level> (e.g. kernel/*=5,core=4)")
	RootCmd.PersistentFlags().StringVar(&logConfig.BacktraceAt, "backtrace", "", "Request a stack trace at a specific logging statement (e.g. \"executor.go:71\")")
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
