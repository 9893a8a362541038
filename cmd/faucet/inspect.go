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

	"github.com/ethereum/go-ethereum/common"
	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/host"
	"github.com/luozexuan/miden-base/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect the ledger",
	Long:  `Inspect faucets, assets, receipts and the genesis of the ledger`,
}

var inspectFaucetCmd = &cobra.Command{
	Use:   "faucet <id>",
	Short: "Show a faucet and its issuance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHost(func(h *host.Host) error { return inspectFaucet(h, args[0]) })
	},
}

var inspectAssetCmd = &cobra.Command{
	Use:   "asset <faucet>:<value>",
	Short: "Show the word of an asset and whether it has been issued",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHost(func(h *host.Host) error { return inspectAsset(h, args[0]) })
	},
}

var inspectReceiptCmd = &cobra.Command{
	Use:   "receipt <txhash>",
	Short: "Show the stored receipt of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHost(func(h *host.Host) error {
			receipt := h.Receipt(common.HexToHash(args[0]))
			if receipt == nil {
				return errors.New("receipt not found")
			}
			return printJSON(receipt)
		})
	},
}

var inspectGenesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Show the committed genesis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHost(func(h *host.Host) error {
			genesis, err := h.Genesis()
			if err != nil {
				return err
			}
			fmt.Println("Hash:", h.GenesisHash().Hex())
			return printJSON(genesis)
		})
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.AddCommand(inspectFaucetCmd, inspectAssetCmd, inspectReceiptCmd, inspectGenesisCmd)
}

func withHost(fn func(*host.Host) error) error {
	stack, h, err := makeHost()
	if err != nil {
		return err
	}
	defer stack.Stop()
	return fn(h)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// formatAmount renders amount base units with the faucet's decimals.
func formatAmount(amount uint64, decimals uint64) string {
	return decimal.New(int64(amount), -int32(decimals)).String()
}

func inspectFaucet(h *host.Host, id string) error {
	faucet, err := types.ParseAccountID(id)
	if err != nil {
		return err
	}
	ledger := h.Ledger()
	info, err := ledger.FaucetInfo(faucet)
	if err != nil {
		return err
	}
	fmt.Println("Faucet:", faucet)
	fmt.Println("Type:", faucet.Type())
	fmt.Println("Name:", info.Name)
	fmt.Println("Symbol:", info.Symbol)
	if faucet.Type() == types.FungibleFaucet {
		total, err := ledger.TotalIssuance(faucet)
		if err != nil {
			return err
		}
		fmt.Println("Decimals:", info.Decimals)
		fmt.Printf("Total issuance: %s %s\n", formatAmount(total, info.Decimals), info.Symbol)
		fmt.Printf("Max supply: %s %s\n", formatAmount(info.MaxSupply, info.Decimals), info.Symbol)
	} else {
		fmt.Println("Issuance policy:", info.Policy)
	}
	return nil
}

func inspectAsset(h *host.Host, s string) error {
	a, err := parseAsset(s)
	if err != nil {
		return err
	}
	fmt.Println("Asset:", a)
	fmt.Println("Word:", types.Word(a))
	if a.IsFungible() {
		return nil
	}
	issued, err := h.Ledger().IsIssued(a)
	if errors.Is(err, asset.ErrFaucetNotFound) {
		issued, err = false, nil
	}
	if err != nil {
		return err
	}
	fmt.Println("Issued:", issued)
	return nil
}
