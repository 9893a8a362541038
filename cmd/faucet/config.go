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

	"github.com/luozexuan/miden-base/config"
	"github.com/luozexuan/miden-base/host"
	"github.com/luozexuan/miden-base/node"
	"github.com/spf13/cobra"
)

type faucetConfig struct {
	Node *node.Config
	Host *host.Config
	Log  *config.LogConfig
}

var dumpConfigCmd = &cobra.Command{
	Use:   "dumpconfig",
	Short: "Show configuration values",
	Long:  `Show the effective configuration, config file and flags applied, as TOML`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dumpConfig(faucetCfg)
	},
}

func dumpConfig(cfg *faucetConfig) error {
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func init() {
	RootCmd.AddCommand(dumpConfigCmd)
}

// makeHost starts a node running the host service.
func makeHost() (*node.Node, *host.Host, error) {
	stack := node.New(nodeConfig)
	if err := stack.Register(func(ctx *node.ServiceContext) (node.Service, error) {
		return host.New(ctx, hostConfig)
	}); err != nil {
		return nil, nil, err
	}
	if err := stack.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start node: %v", err)
	}
	var h *host.Host
	if err := stack.Service(&h); err != nil {
		stack.Stop()
		return nil, nil, err
	}
	return stack, h, nil
}
