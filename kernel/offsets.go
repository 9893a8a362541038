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

package kernel

import "fmt"

// Kernel procedure names.
const (
	MintAsset                = "mint_asset"
	BurnAsset                = "burn_asset"
	GetTotalFungibleIssuance = "get_total_fungible_issuance"
	IsNonFungibleIssued      = "is_non_fungible_issued"
)

// procOffsets is the offset table of kernel version params.KernelVersion.
// Offsets index the dispatch table and must not be reordered within a
// kernel version.
var procOffsets = map[string]uint64{
	MintAsset:                0,
	BurnAsset:                1,
	GetTotalFungibleIssuance: 2,
	IsNonFungibleIssued:      3,
}

// ProcOffset returns the dispatch offset of the named procedure. Asking for
// an unknown procedure is a linking error and panics.
func ProcOffset(name string) uint64 {
	offset, ok := procOffsets[name]
	if !ok {
		panic(fmt.Sprintf("kernel: unknown procedure %q", name))
	}
	return offset
}

// LookupProcOffset is like ProcOffset but reports unknown names instead of
// panicking.
func LookupProcOffset(name string) (uint64, bool) {
	offset, ok := procOffsets[name]
	return offset, ok
}

// ProcName returns the name of the procedure at offset.
func ProcName(offset uint64) (string, bool) {
	for name, o := range procOffsets {
		if o == offset {
			return name, true
		}
	}
	return "", false
}
