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
	"errors"
	"fmt"
	"sort"

	"github.com/luozexuan/miden-base/params"
)

var (
	// ErrInsufficientAsset fungible balance lower than requested
	ErrInsufficientAsset = errors.New("insufficient asset amount")
	// ErrAssetNotFound non-fungible asset not held
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDuplicateAsset non-fungible asset already held
	ErrDuplicateAsset = errors.New("asset already present")
	// ErrVaultOverflow fungible balance would exceed MaxFungibleAmount
	ErrVaultOverflow = errors.New("asset amount overflow")
)

// Vault holds the assets available to a transaction.
type Vault struct {
	fungible    map[AccountID]uint64
	nonFungible map[Word]struct{}
}

// NewVault returns a vault holding assets.
func NewVault(assets ...Asset) (*Vault, error) {
	v := &Vault{
		fungible:    make(map[AccountID]uint64),
		nonFungible: make(map[Word]struct{}),
	}
	for _, a := range assets {
		if err := v.Add(a); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Add deposits a into the vault.
func (v *Vault) Add(a Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsFungible() {
		faucet := a.FaucetID()
		balance := v.fungible[faucet]
		if a.Amount() > params.MaxFungibleAmount-balance {
			return fmt.Errorf("%w: %s", ErrVaultOverflow, faucet)
		}
		v.fungible[faucet] = balance + a.Amount()
		return nil
	}
	if _, ok := v.nonFungible[Word(a)]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAsset, a)
	}
	v.nonFungible[Word(a)] = struct{}{}
	return nil
}

// Remove withdraws a from the vault.
func (v *Vault) Remove(a Asset) error {
	if a.IsFungible() {
		faucet := a.FaucetID()
		balance := v.fungible[faucet]
		if balance < a.Amount() {
			return fmt.Errorf("%w: have %d of %s, need %d", ErrInsufficientAsset, balance, faucet, a.Amount())
		}
		if balance == a.Amount() {
			delete(v.fungible, faucet)
		} else {
			v.fungible[faucet] = balance - a.Amount()
		}
		return nil
	}
	if _, ok := v.nonFungible[Word(a)]; !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, a)
	}
	delete(v.nonFungible, Word(a))
	return nil
}

// Has reports whether the vault can cover a.
func (v *Vault) Has(a Asset) bool {
	if a.IsFungible() {
		return v.fungible[a.FaucetID()] >= a.Amount()
	}
	_, ok := v.nonFungible[Word(a)]
	return ok
}

// Balance returns the fungible amount held for faucet.
func (v *Vault) Balance(faucet AccountID) uint64 { return v.fungible[faucet] }

// Len returns the number of distinct entries in the vault.
func (v *Vault) Len() int { return len(v.fungible) + len(v.nonFungible) }

// Assets returns the vault content, fungible assets first, each group in
// ascending order.
func (v *Vault) Assets() []Asset {
	fungible := make([]Asset, 0, len(v.fungible))
	for faucet, amount := range v.fungible {
		fungible = append(fungible, Asset{Felt(amount), 0, 0, faucet.Felt()})
	}
	sort.Slice(fungible, func(i, j int) bool { return fungible[i][3] < fungible[j][3] })

	nonFungible := make([]Asset, 0, len(v.nonFungible))
	for w := range v.nonFungible {
		nonFungible = append(nonFungible, Asset(w))
	}
	sort.Slice(nonFungible, func(i, j int) bool { return lessWord(Word(nonFungible[i]), Word(nonFungible[j])) })

	return append(fungible, nonFungible...)
}

// Copy returns an independent copy of v.
func (v *Vault) Copy() *Vault {
	cpy := &Vault{
		fungible:    make(map[AccountID]uint64, len(v.fungible)),
		nonFungible: make(map[Word]struct{}, len(v.nonFungible)),
	}
	for k, amount := range v.fungible {
		cpy.fungible[k] = amount
	}
	for k := range v.nonFungible {
		cpy.nonFungible[k] = struct{}{}
	}
	return cpy
}

func lessWord(a, b Word) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
