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

package rawdb

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/luozexuan/miden-base/types"
)

func TestGenesisStorage(t *testing.T) {
	db := memorydb.New()
	if hash := ReadGenesisHash(db); hash != (common.Hash{}) {
		t.Fatalf("fresh database has genesis %x", hash)
	}
	hash := common.HexToHash("0x01")
	WriteGenesisHash(db, hash)
	WriteGenesisJSON(db, hash, []byte(`{"faucets":[]}`))
	if got := ReadGenesisHash(db); got != hash {
		t.Errorf("genesis hash %x, want %x", got, hash)
	}
	if got := string(ReadGenesisJSON(db, hash)); got != `{"faucets":[]}` {
		t.Errorf("genesis json %s", got)
	}
}

func TestReceiptStorage(t *testing.T) {
	db := memorydb.New()
	faucet := types.NewAccountID(types.FungibleFaucet, 7)
	receipt := types.NewReceipt(common.HexToHash("0xabcd"), false, 42)
	receipt.Minted = []types.Asset{types.MustFungibleAsset(faucet, 10)}
	receipt.Stack = []types.Felt{1, 2}

	if ReadReceipt(db, receipt.TxHash) != nil {
		t.Fatal("receipt found in empty database")
	}
	WriteReceipt(db, receipt)
	stored := ReadReceipt(db, receipt.TxHash)
	if stored == nil {
		t.Fatal("stored receipt not found")
	}
	if !reflect.DeepEqual(stored.Minted, receipt.Minted) || !reflect.DeepEqual(stored.Stack, receipt.Stack) || stored.CyclesUsed != 42 {
		t.Errorf("receipt mismatch:\nhave %s\nwant %s", spew.Sdump(stored), spew.Sdump(receipt))
	}
}
