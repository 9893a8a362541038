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
	"testing"

	"github.com/luozexuan/miden-base/params"
)

func TestVaultFungible(t *testing.T) {
	v, err := NewVault(MustFungibleAsset(fungibleFaucet, 60), MustFungibleAsset(fungibleFaucet, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Balance(fungibleFaucet) != 100 {
		t.Fatalf("balance %d, want 100", v.Balance(fungibleFaucet))
	}
	if !v.Has(MustFungibleAsset(fungibleFaucet, 100)) {
		t.Error("vault does not cover its full balance")
	}
	if v.Has(MustFungibleAsset(fungibleFaucet, 101)) {
		t.Error("vault covers more than its balance")
	}
	if err := v.Remove(MustFungibleAsset(fungibleFaucet, 101)); !errors.Is(err, ErrInsufficientAsset) {
		t.Errorf("over-withdraw: err %v", err)
	}
	if err := v.Remove(MustFungibleAsset(fungibleFaucet, 100)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if v.Len() != 0 {
		t.Errorf("vault not empty after full withdraw: %d entries", v.Len())
	}

	full, _ := NewVault(MustFungibleAsset(fungibleFaucet, params.MaxFungibleAmount))
	if err := full.Add(MustFungibleAsset(fungibleFaucet, 1)); !errors.Is(err, ErrVaultOverflow) {
		t.Errorf("overflow: err %v", err)
	}
}

func TestVaultNonFungible(t *testing.T) {
	nft := MustNonFungibleAsset(nonFungibleFaucet, []byte{42})
	v, err := NewVault(nft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Add(nft); !errors.Is(err, ErrDuplicateAsset) {
		t.Errorf("duplicate add: err %v", err)
	}
	cpy := v.Copy()
	if err := v.Remove(nft); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if v.Has(nft) {
		t.Error("asset still held after removal")
	}
	if !cpy.Has(nft) {
		t.Error("copy shares state with the original")
	}
	if err := v.Remove(nft); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("second remove: err %v", err)
	}
}

func TestVaultAssetsOrder(t *testing.T) {
	other := NewAccountID(FungibleFaucet, 2)
	nft := MustNonFungibleAsset(nonFungibleFaucet, []byte{1})
	v, _ := NewVault(nft, MustFungibleAsset(fungibleFaucet, 3), MustFungibleAsset(other, 4))

	assets := v.Assets()
	if len(assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(assets))
	}
	if assets[0].FaucetID() != other || assets[1].FaucetID() != fungibleFaucet {
		t.Errorf("fungible assets out of order: %v", assets)
	}
	if assets[2] != nft {
		t.Errorf("last asset %s, want %s", assets[2], nft)
	}
	if err := v.Add(Asset{1, 2, 3, 4}); !errors.Is(err, ErrMalformedAsset) {
		t.Errorf("malformed add: err %v", err)
	}
}
