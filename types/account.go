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

package types

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AccountType is encoded in bits 60-61 of an account id.
type AccountType uint8

const (
	// RegularAccountImmutableCode regular account whose code cannot change
	RegularAccountImmutableCode AccountType = iota
	// RegularAccountUpdatableCode regular account whose code can be upgraded
	RegularAccountUpdatableCode
	// FungibleFaucet faucet issuing a single fungible asset class
	FungibleFaucet
	// NonFungibleFaucet faucet issuing unique assets
	NonFungibleFaucet
)

const (
	accountTypeShift = 60
	accountSeedMask  = uint64(1)<<accountTypeShift - 1
)

func (t AccountType) String() string {
	switch t {
	case RegularAccountImmutableCode:
		return "regular-immutable"
	case RegularAccountUpdatableCode:
		return "regular-updatable"
	case FungibleFaucet:
		return "fungible-faucet"
	case NonFungibleFaucet:
		return "non-fungible-faucet"
	}
	return "unknown"
}

// AccountID identifies an account. It is a single field element whose
// bits 60-61 hold the account type; bit 63 is always clear.
type AccountID Felt

// NewAccountID builds an id of the given type from the low 60 bits of seed.
func NewAccountID(typ AccountType, seed uint64) AccountID {
	return AccountID(uint64(typ&0x3)<<accountTypeShift | seed&accountSeedMask)
}

// ParseAccountID parses a decimal or 0x-prefixed hex account id.
func ParseAccountID(s string) (AccountID, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q: %v", s, err)
	}
	id := AccountID(v)
	if !id.Valid() {
		return 0, fmt.Errorf("invalid account id %q: high bit set", s)
	}
	return id, nil
}

// Type returns the account type encoded in id.
func (id AccountID) Type() AccountType {
	return AccountType(uint64(id) >> accountTypeShift & 0x3)
}

// Valid reports whether id is well formed.
func (id AccountID) Valid() bool { return uint64(id)>>63 == 0 }

// IsFaucet reports whether id belongs to a faucet account of either kind.
func (id AccountID) IsFaucet() bool {
	t := id.Type()
	return t == FungibleFaucet || t == NonFungibleFaucet
}

// Felt returns id as a stack element.
func (id AccountID) Felt() Felt { return Felt(id) }

// Bytes returns the 8 byte big-endian encoding of id.
func (id AccountID) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func (id AccountID) String() string { return hexutil.EncodeUint64(uint64(id)) }

// MarshalText implements encoding.TextMarshaler.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(input []byte) error {
	v, err := ParseAccountID(string(input))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
