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

// Package gateway is the caller side of the privilege boundary. Account
// code uses it to request the faucet procedures of the kernel. The
// gateway holds no state: every call resolves the procedure offset, lays
// out the frame and forwards kernel aborts unchanged.
package gateway

import (
	"github.com/luozexuan/miden-base/kernel"
	"github.com/luozexuan/miden-base/params"
	"github.com/luozexuan/miden-base/types"
	"github.com/luozexuan/miden-base/vm"
)

// Mint consumes the asset word on top of s and leaves the minted asset
// in its place.
//
// Stack: [ASSET, ...] -> [ASSET, ...]
func Mint(gw vm.KernelGateway, s *vm.Stack) error {
	return syscall(gw, s, kernel.MintAsset)
}

// Burn consumes the asset word on top of s and leaves the burned asset
// in its place.
//
// Stack: [ASSET, ...] -> [ASSET, ...]
func Burn(gw vm.KernelGateway, s *vm.Stack) error {
	return syscall(gw, s, kernel.BurnAsset)
}

// GetTotalIssuance pushes the total issuance of the executing fungible
// faucet.
//
// Stack: [...] -> [total_issuance, ...]
func GetTotalIssuance(gw vm.KernelGateway, s *vm.Stack) error {
	return syscall(gw, s, kernel.GetTotalFungibleIssuance)
}

// IsNonFungibleIssued consumes the asset word on top of s and pushes 1 if
// the executing faucet has issued it, 0 otherwise.
//
// Stack: [ASSET, ...] -> [is_issued, ...]
func IsNonFungibleIssued(gw vm.KernelGateway, s *vm.Stack) error {
	return syscall(gw, s, kernel.IsNonFungibleIssued)
}

func syscall(gw vm.KernelGateway, s *vm.Stack, proc string) error {
	inputs, outputs := kernel.ProcArity(proc)
	return vm.Syscall(gw, s, kernel.ProcOffset(proc), inputs, outputs)
}

// MintAsset mints a and returns the asset handed back by the kernel.
func MintAsset(gw vm.KernelGateway, a types.Asset) (types.Asset, error) {
	return assetCall(gw, kernel.MintAsset, a)
}

// BurnAsset burns a and returns the asset handed back by the kernel.
func BurnAsset(gw vm.KernelGateway, a types.Asset) (types.Asset, error) {
	return assetCall(gw, kernel.BurnAsset, a)
}

// TotalIssuance returns the total issuance of the executing fungible faucet.
func TotalIssuance(gw vm.KernelGateway) (uint64, error) {
	out, err := vm.Invoke(gw, kernel.ProcOffset(kernel.GetTotalFungibleIssuance), nil, 1)
	if err != nil {
		return 0, err
	}
	return uint64(out[0]), nil
}

// NonFungibleIssued reports whether the executing faucet has issued a.
func NonFungibleIssued(gw vm.KernelGateway, a types.Asset) (bool, error) {
	out, err := vm.Invoke(gw, kernel.ProcOffset(kernel.IsNonFungibleIssued), wordOperands(types.Word(a)), 1)
	if err != nil {
		return false, err
	}
	return out[0] == 1, nil
}

func assetCall(gw vm.KernelGateway, proc string, a types.Asset) (types.Asset, error) {
	out, err := vm.Invoke(gw, kernel.ProcOffset(proc), wordOperands(types.Word(a)), params.WordSize)
	if err != nil {
		return types.Asset{}, err
	}
	return types.Asset(types.Word{out[3], out[2], out[1], out[0]}), nil
}

// wordOperands lays w out the way PushWord leaves it: element 3 on top.
func wordOperands(w types.Word) []types.Felt {
	return []types.Felt{w[3], w[2], w[1], w[0]}
}
