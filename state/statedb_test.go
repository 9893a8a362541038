// Copyright 2018 The zipper Authors
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

package state

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/luozexuan/miden-base/types"
)

func newtridb() Database {
	return NewDatabase(memorydb.New())
}

func TestSetGetAccount(t *testing.T) {
	state := New(newtridb())
	for i := 0; i < 4; i++ {
		addr := types.NewAccountID(types.FungibleFaucet, uint64(i))
		for j := 0; j < 3; j++ {
			key := "at" + strconv.Itoa(i) + strconv.Itoa(j)
			value := []byte("account" + strconv.Itoa(i) + strconv.Itoa(j))
			state.SetAccount(addr, key, value)
		}
	}
	for i := 0; i < 4; i++ {
		addr := types.NewAccountID(types.FungibleFaucet, uint64(i))
		for j := 0; j < 3; j++ {
			key := "at" + strconv.Itoa(i) + strconv.Itoa(j)
			want := []byte("account" + strconv.Itoa(i) + strconv.Itoa(j))
			if got := state.GetAccount(addr, key); !bytes.Equal(got, want) {
				t.Errorf("%s/%s = %q, want %q", addr, key, got, want)
			}
		}
	}
	if got := state.GetAccount(types.NewAccountID(types.FungibleFaucet, 9), "at00"); got != nil {
		t.Errorf("unset key returned %q", got)
	}
}

func TestSnapshotRevert(t *testing.T) {
	state := New(newtridb())
	addr := types.NewAccountID(types.NonFungibleFaucet, 1)

	state.SetAccount(addr, "k", []byte("v0"))
	outer := state.Snapshot()
	state.SetAccount(addr, "k", []byte("v1"))
	state.SetAccount(addr, "other", []byte("x"))
	inner := state.Snapshot()
	state.SetAccount(addr, "k", []byte("v2"))

	state.RevertToSnapshot(inner)
	if got := state.GetAccount(addr, "k"); string(got) != "v1" {
		t.Errorf("after inner revert k = %q, want v1", got)
	}
	state.RevertToSnapshot(outer)
	if got := state.GetAccount(addr, "k"); string(got) != "v0" {
		t.Errorf("after outer revert k = %q, want v0", got)
	}
	if got := state.GetAccount(addr, "other"); got != nil {
		t.Errorf("after outer revert other = %q, want unset", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("reverting an invalidated snapshot did not panic")
		}
	}()
	state.RevertToSnapshot(inner)
}

func TestCommit(t *testing.T) {
	db := memorydb.New()
	tridb := NewDatabase(db)
	addr := types.NewAccountID(types.FungibleFaucet, 7)

	state := New(tridb)
	state.SetAccount(addr, "keep", []byte("1"))
	state.SetAccount(addr, "drop", []byte("2"))
	if err := state.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if has, _ := db.Has(accountKey(addr, "keep")); !has {
		t.Fatal("committed entry missing from disk")
	}

	// A revert after commit cannot reach committed data.
	id := state.Snapshot()
	state.SetAccount(addr, "drop", nil)
	state.RevertToSnapshot(id)
	if got := state.GetAccount(addr, "drop"); string(got) != "2" {
		t.Errorf("drop = %q, want 2", got)
	}

	state.SetAccount(addr, "drop", nil)
	if err := state.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if has, _ := db.Has(accountKey(addr, "drop")); has {
		t.Error("deleted entry still on disk")
	}

	cpy := New(tridb)
	if got := cpy.GetAccount(addr, "keep"); string(got) != "1" {
		t.Errorf("fresh state reads keep = %q, want 1", got)
	}
	if got := cpy.GetAccount(addr, "drop"); got != nil {
		t.Errorf("fresh state reads drop = %q, want unset", got)
	}
}

func TestUncommittedInvisible(t *testing.T) {
	tridb := newtridb()
	addr := types.NewAccountID(types.FungibleFaucet, 1)
	a := New(tridb)
	a.SetAccount(addr, "k", []byte("v"))
	if got := New(tridb).GetAccount(addr, "k"); got != nil {
		t.Errorf("uncommitted write visible to another state: %q", got)
	}
}
