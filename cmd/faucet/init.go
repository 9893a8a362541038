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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/luozexuan/miden-base/core"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [genesisPath]",
	Short: "Bootstrap and initialize a new ledger from a genesis file",
	Long:  `Bootstrap and initialize a new ledger from a genesis file, or from the default genesis if none is given`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return initGenesis(args)
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}

// initGenesis will initialise the given JSON format genesis file and commit
// it to the ledger, or fail hard if it can't succeed.
func initGenesis(args []string) error {
	if len(args) == 1 {
		genesis, err := readGenesis(args[0])
		if err != nil {
			return err
		}
		hostConfig.Genesis = genesis
	}
	if nodeConfig.DataDir == "" {
		return errors.New("init needs a data directory")
	}
	stack, h, err := makeHost()
	if err != nil {
		return err
	}
	defer stack.Stop()

	fmt.Printf("Successfully wrote genesis state, hash=%s\n", h.GenesisHash().Hex())
	return nil
}

func readGenesis(genesisPath string) (*core.Genesis, error) {
	if len(genesisPath) == 0 {
		return nil, errors.New("must supply path to genesis JSON file")
	}
	file, err := os.Open(genesisPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis file: %v", err)
	}
	defer file.Close()

	genesis := new(core.Genesis)
	if err := json.NewDecoder(file).Decode(genesis); err != nil {
		return nil, fmt.Errorf("invalid genesis file: %v", err)
	}
	return genesis, nil
}

// defaultDataDir is the default data directory to use for the databases and other
// persistence requirements.
func defaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := homeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, "Library", "Faucet")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "Faucet")
		} else {
			return filepath.Join(home, ".faucet")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
