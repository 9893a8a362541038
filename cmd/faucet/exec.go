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
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/luozexuan/miden-base/types"
	"github.com/spf13/cobra"
)

var (
	execAccount     string
	execNonce       uint64
	execInputs      []string
	execProgramFile string
	execDump        bool
)

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec [program]",
	Short: "Execute a transaction program for an account",
	Long: `Execute a transaction program for an account and print its receipt.

Input assets are given as <faucet>:<amount> for fungible faucets and as
<faucet>:<data> for non-fungible faucets, data being 0x-prefixed hex or
plain text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execTransaction(args, cmd.Flags().Changed("nonce"))
	},
}

func init() {
	RootCmd.AddCommand(execCmd)
	execCmd.Flags().StringVarP(&execAccount, "account", "a", "", "Executing account id")
	execCmd.Flags().Uint64Var(&execNonce, "nonce", 0, "Transaction nonce (defaults to the account's next nonce)")
	execCmd.Flags().StringArrayVarP(&execInputs, "input", "i", nil, "Input asset, repeatable")
	execCmd.Flags().StringVarP(&execProgramFile, "file", "f", "", "Read the program from a file")
	execCmd.Flags().BoolVar(&execDump, "dump", false, "Dump the full receipt instead of JSON")
	execCmd.Flags().Int64Var(&hostConfig.RunLimit, "runlimit", hostConfig.RunLimit, "Maximum cycles a program may use")
	execCmd.MarkFlagRequired("account")
}

func execTransaction(args []string, explicitNonce bool) error {
	account, err := types.ParseAccountID(execAccount)
	if err != nil {
		return err
	}
	var inputs []types.Asset
	for _, s := range execInputs {
		a, err := parseAsset(s)
		if err != nil {
			return err
		}
		inputs = append(inputs, a)
	}
	program, err := readProgram(args)
	if err != nil {
		return err
	}

	stack, h, err := makeHost()
	if err != nil {
		return err
	}
	defer stack.Stop()

	nonce := execNonce
	if !explicitNonce {
		if nonce, err = h.Nonce(account); err != nil {
			return err
		}
	}
	receipt, err := h.Execute(types.NewTransaction(account, nonce, inputs, program))
	if err != nil {
		return err
	}
	if execDump {
		spew.Dump(receipt)
		return nil
	}
	out, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readProgram(args []string) ([]byte, error) {
	switch {
	case execProgramFile != "" && len(args) > 0:
		return nil, errors.New("program given both inline and as a file")
	case execProgramFile != "":
		return os.ReadFile(execProgramFile)
	case len(args) > 0:
		return []byte(args[0]), nil
	}
	return nil, errors.New("no program given")
}

// parseAsset parses <faucet>:<amount> or <faucet>:<data>, depending on the
// faucet kind.
func parseAsset(s string) (types.Asset, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return types.Asset{}, fmt.Errorf("invalid asset %q, want <faucet>:<value>", s)
	}
	faucet, err := types.ParseAccountID(parts[0])
	if err != nil {
		return types.Asset{}, err
	}
	switch faucet.Type() {
	case types.FungibleFaucet:
		amount, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return types.Asset{}, fmt.Errorf("invalid amount %q: %v", parts[1], err)
		}
		return types.NewFungibleAsset(faucet, amount)
	case types.NonFungibleFaucet:
		data := []byte(parts[1])
		if strings.HasPrefix(parts[1], "0x") {
			if data, err = hexutil.Decode(parts[1]); err != nil {
				return types.Asset{}, fmt.Errorf("invalid asset data %q: %v", parts[1], err)
			}
		}
		return types.NewNonFungibleAsset(faucet, data)
	}
	return types.Asset{}, fmt.Errorf("account %s is not a faucet", faucet)
}
