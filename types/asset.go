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

// Package types contains the data types shared by the kernel, the ledger
// and the stack machine.
package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/luozexuan/miden-base/params"
)

// ErrMalformedAsset is wrapped by every well-formedness failure.
var ErrMalformedAsset = errors.New("malformed asset")

// nonFungibleTagMask clears the type bits of element 3 of a non-fungible
// asset so it can never be mistaken for a fungible faucet id.
const nonFungibleTagMask = uint64(1)<<accountTypeShift - 1

// Asset is an opaque four element descriptor.
//
// Fungible layout:     [amount, 0, 0, faucet_id]
// Non-fungible layout: [d0, faucet_id, d2, d3]
//
// The kind is decided by element 3: a fungible faucet id there marks a
// fungible asset, anything else is read as non-fungible.
type Asset Word

// NewFungibleAsset returns an asset carrying amount units issued by faucet.
func NewFungibleAsset(faucet AccountID, amount uint64) (Asset, error) {
	if !faucet.Valid() || faucet.Type() != FungibleFaucet {
		return Asset{}, fmt.Errorf("%w: %s is not a fungible faucet", ErrMalformedAsset, faucet)
	}
	if amount > params.MaxFungibleAmount {
		return Asset{}, fmt.Errorf("%w: amount %d exceeds %d", ErrMalformedAsset, amount, params.MaxFungibleAmount)
	}
	return Asset{Felt(amount), 0, 0, faucet.Felt()}, nil
}

// NewNonFungibleAsset derives the unique asset identified by data under faucet.
func NewNonFungibleAsset(faucet AccountID, data []byte) (Asset, error) {
	if !faucet.Valid() || faucet.Type() != NonFungibleFaucet {
		return Asset{}, fmt.Errorf("%w: %s is not a non-fungible faucet", ErrMalformedAsset, faucet)
	}
	w := wordFromHash(crypto.Keccak256Hash(faucet.Bytes(), data))
	w[1] = faucet.Felt()
	w[3] = Felt(uint64(w[3]) & nonFungibleTagMask)
	return Asset(w), nil
}

// MustFungibleAsset is like NewFungibleAsset but panics on error.
func MustFungibleAsset(faucet AccountID, amount uint64) Asset {
	a, err := NewFungibleAsset(faucet, amount)
	if err != nil {
		panic(err)
	}
	return a
}

// MustNonFungibleAsset is like NewNonFungibleAsset but panics on error.
func MustNonFungibleAsset(faucet AccountID, data []byte) Asset {
	a, err := NewNonFungibleAsset(faucet, data)
	if err != nil {
		panic(err)
	}
	return a
}

// IsFungible reports whether a uses the fungible layout.
func (a Asset) IsFungible() bool {
	id := AccountID(a[3])
	return id.Valid() && id.Type() == FungibleFaucet
}

// IsNonFungible reports whether a uses the non-fungible layout.
func (a Asset) IsNonFungible() bool { return !a.IsFungible() }

// FaucetID returns the id of the faucet embedded in a.
func (a Asset) FaucetID() AccountID {
	if a.IsFungible() {
		return AccountID(a[3])
	}
	return AccountID(a[1])
}

// Amount returns the amount of a fungible asset and 0 otherwise.
func (a Asset) Amount() uint64 {
	if a.IsFungible() {
		return uint64(a[0])
	}
	return 0
}

// Validate checks the structural well-formedness of a.
func (a Asset) Validate() error {
	if !Word(a).Valid() {
		return fmt.Errorf("%w: non-canonical element in %s", ErrMalformedAsset, Word(a))
	}
	if a.IsFungible() {
		if a[1] != 0 || a[2] != 0 {
			return fmt.Errorf("%w: fungible padding not zero", ErrMalformedAsset)
		}
		if uint64(a[0]) > params.MaxFungibleAmount {
			return fmt.Errorf("%w: amount %d exceeds %d", ErrMalformedAsset, uint64(a[0]), params.MaxFungibleAmount)
		}
		return nil
	}
	faucet := AccountID(a[1])
	if !faucet.Valid() || faucet.Type() != NonFungibleFaucet {
		return fmt.Errorf("%w: %s is not a non-fungible faucet", ErrMalformedAsset, faucet)
	}
	if uint64(a[3])&^nonFungibleTagMask != 0 {
		return fmt.Errorf("%w: non-fungible tag bits set", ErrMalformedAsset)
	}
	return nil
}

// Word returns the raw word of a.
func (a Asset) Word() Word { return Word(a) }

// Key returns the ledger key of a non-fungible asset.
func (a Asset) Key() common.Hash { return Word(a).Hash() }

func (a Asset) String() string {
	if a.IsFungible() {
		return fmt.Sprintf("fungible(faucet=%s amount=%d)", a.FaucetID(), a.Amount())
	}
	return fmt.Sprintf("non-fungible(faucet=%s word=%s)", a.FaucetID(), Word(a))
}
