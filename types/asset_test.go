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

var (
	fungibleFaucet    = NewAccountID(FungibleFaucet, 7)
	nonFungibleFaucet = NewAccountID(NonFungibleFaucet, 3)
	regularAccount    = NewAccountID(RegularAccountUpdatableCode, 11)
)

func TestAccountIDType(t *testing.T) {
	tests := []struct {
		id       AccountID
		typ      AccountType
		isFaucet bool
	}{
		{fungibleFaucet, FungibleFaucet, true},
		{nonFungibleFaucet, NonFungibleFaucet, true},
		{regularAccount, RegularAccountUpdatableCode, false},
		{NewAccountID(RegularAccountImmutableCode, 1), RegularAccountImmutableCode, false},
	}
	for _, test := range tests {
		if test.id.Type() != test.typ {
			t.Errorf("%s: type %v, want %v", test.id, test.id.Type(), test.typ)
		}
		if test.id.IsFaucet() != test.isFaucet {
			t.Errorf("%s: IsFaucet %v, want %v", test.id, test.id.IsFaucet(), test.isFaucet)
		}
		if !test.id.Valid() {
			t.Errorf("%s: not valid", test.id)
		}
		parsed, err := ParseAccountID(test.id.String())
		if err != nil {
			t.Fatalf("%s: parse failed: %v", test.id, err)
		}
		if parsed != test.id {
			t.Errorf("parse(%s) = %s", test.id, parsed)
		}
	}
	if _, err := ParseAccountID("0x8000000000000000"); err == nil {
		t.Error("id with high bit set parsed without error")
	}
}

func TestFungibleAsset(t *testing.T) {
	a, err := NewFungibleAsset(fungibleFaucet, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.IsFungible() || a.IsNonFungible() {
		t.Fatalf("asset %s not fungible", a)
	}
	if a.FaucetID() != fungibleFaucet {
		t.Errorf("faucet id %s, want %s", a.FaucetID(), fungibleFaucet)
	}
	if a.Amount() != 100 {
		t.Errorf("amount %d, want 100", a.Amount())
	}
	if a != (Asset{100, 0, 0, fungibleFaucet.Felt()}) {
		t.Errorf("layout %s", Word(a))
	}
	if err := a.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}

	if _, err := NewFungibleAsset(nonFungibleFaucet, 1); !errors.Is(err, ErrMalformedAsset) {
		t.Errorf("fungible asset of non-fungible faucet: err %v", err)
	}
	if _, err := NewFungibleAsset(fungibleFaucet, params.MaxFungibleAmount+1); !errors.Is(err, ErrMalformedAsset) {
		t.Errorf("amount above max: err %v", err)
	}
}

func TestNonFungibleAsset(t *testing.T) {
	a, err := NewNonFungibleAsset(nonFungibleFaucet, []byte{42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.IsFungible() {
		t.Fatalf("asset %s read as fungible", a)
	}
	if a.FaucetID() != nonFungibleFaucet {
		t.Errorf("faucet id %s, want %s", a.FaucetID(), nonFungibleFaucet)
	}
	if a.Amount() != 0 {
		t.Errorf("amount %d, want 0", a.Amount())
	}
	if err := a.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
	b := MustNonFungibleAsset(nonFungibleFaucet, []byte{42})
	if a != b {
		t.Errorf("derivation not deterministic: %s != %s", a, b)
	}
	c := MustNonFungibleAsset(nonFungibleFaucet, []byte{43})
	if a == c {
		t.Errorf("different data derived the same asset %s", a)
	}
	if _, err := NewNonFungibleAsset(fungibleFaucet, []byte{42}); !errors.Is(err, ErrMalformedAsset) {
		t.Errorf("non-fungible asset of fungible faucet: err %v", err)
	}
}

func TestAssetValidate(t *testing.T) {
	nft := MustNonFungibleAsset(nonFungibleFaucet, []byte("x"))
	tests := []struct {
		name  string
		asset Asset
		ok    bool
	}{
		{"fungible", MustFungibleAsset(fungibleFaucet, 5), true},
		{"fungible zero amount", MustFungibleAsset(fungibleFaucet, 0), true},
		{"fungible padding", Asset{5, 1, 0, fungibleFaucet.Felt()}, false},
		{"fungible amount too large", Asset{Felt(params.MaxFungibleAmount + 1), 0, 0, fungibleFaucet.Felt()}, false},
		{"non-canonical element", Asset{Felt(params.FieldModulus), 0, 0, fungibleFaucet.Felt()}, false},
		{"non-fungible", nft, true},
		{"non-fungible regular id", Asset{nft[0], regularAccount.Felt(), nft[2], nft[3]}, false},
		{"non-fungible tag bits", Asset{nft[0], nft[1], nft[2], Felt(uint64(nft[3]) | 1<<63)}, false},
		{"empty word", Asset{}, false},
	}
	for _, test := range tests {
		err := test.asset.Validate()
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if !test.ok && !errors.Is(err, ErrMalformedAsset) {
			t.Errorf("%s: err %v, want ErrMalformedAsset", test.name, err)
		}
	}
}
