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

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/state"
	"github.com/luozexuan/miden-base/types"
	"github.com/luozexuan/miden-base/vm"
)

var (
	fungibleFaucet    = types.NewAccountID(types.FungibleFaucet, 7)
	nonFungibleFaucet = types.NewAccountID(types.NonFungibleFaucet, 3)
	regularAccount    = types.NewAccountID(types.RegularAccountUpdatableCode, 1)
)

func newTestLedger(t *testing.T, policy asset.IssuancePolicy) *asset.Ledger {
	t.Helper()
	l := asset.NewLedger(state.New(state.NewDatabase(memorydb.New())))
	if err := l.SetupFaucet(fungibleFaucet, &asset.FaucetInfo{Symbol: "TST", MaxSupply: 1000}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetupFaucet(nonFungibleFaucet, &asset.FaucetInfo{Symbol: "ART", Policy: policy}); err != nil {
		t.Fatal(err)
	}
	return l
}

func call(k *Kernel, name string, inputs ...types.Felt) ([]types.Felt, error) {
	_, outputs := ProcArity(name)
	return vm.Invoke(k, ProcOffset(name), inputs, outputs)
}

// wordInputs lays w out top-first, element 3 on top.
func wordInputs(w types.Word) []types.Felt {
	return []types.Felt{w[3], w[2], w[1], w[0]}
}

func wantAbort(t *testing.T, err error, kind AbortKind) {
	t.Helper()
	abortErr, ok := AsAbort(err)
	if !ok || abortErr.Kind != kind {
		t.Fatalf("want %s abort, got %s", kind, spew.Sdump(err))
	}
}

func TestOffsets(t *testing.T) {
	for name, want := range map[string]uint64{
		MintAsset:                0,
		BurnAsset:                1,
		GetTotalFungibleIssuance: 2,
		IsNonFungibleIssued:      3,
	} {
		if got := ProcOffset(name); got != want {
			t.Errorf("%s: offset %d, want %d", name, got, want)
		}
		if back, ok := ProcName(want); !ok || back != name {
			t.Errorf("offset %d: name %q", want, back)
		}
	}
	if _, ok := LookupProcOffset("create_note"); ok {
		t.Error("unknown procedure resolved")
	}
	defer func() {
		if recover() == nil {
			t.Error("ProcOffset did not panic on unknown name")
		}
	}()
	ProcOffset("create_note")
}

func TestFungibleScenario(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	if err := ledger.Issue(fungibleFaucet, 900); err != nil {
		t.Fatal(err)
	}
	ctx := NewContext(fungibleFaucet, ledger, nil)
	k := New(ctx)

	out, err := call(k, GetTotalFungibleIssuance)
	if err != nil || len(out) != 1 || out[0] != 900 {
		t.Fatalf("issuance: %v %v", out, err)
	}
	_, err = call(k, MintAsset, wordInputs(types.Word(types.MustFungibleAsset(fungibleFaucet, 150)))...)
	wantAbort(t, err, SupplyViolation)

	a := types.MustFungibleAsset(fungibleFaucet, 100)
	out, err = call(k, MintAsset, wordInputs(types.Word(a))...)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if got := wordInputs(types.Word(a)); out[0] != got[0] || out[3] != got[3] {
		t.Errorf("mint returned %v, want %v", out, got)
	}
	out, _ = call(k, GetTotalFungibleIssuance)
	if out[0] != 1000 {
		t.Errorf("issuance after mint %d, want 1000", out[0])
	}
	if minted := ctx.Minted(); len(minted) != 1 || minted[0] != a {
		t.Errorf("minted %v", minted)
	}
}

func TestBurnFungible(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	if err := ledger.Issue(fungibleFaucet, 500); err != nil {
		t.Fatal(err)
	}
	inputs, _ := types.NewVault(types.MustFungibleAsset(fungibleFaucet, 200))
	ctx := NewContext(fungibleFaucet, ledger, inputs)
	k := New(ctx)

	_, err := call(k, BurnAsset, wordInputs(types.Word(types.MustFungibleAsset(fungibleFaucet, 300)))...)
	wantAbort(t, err, UnavailableBurnTarget)

	if _, err := call(k, BurnAsset, wordInputs(types.Word(types.MustFungibleAsset(fungibleFaucet, 150)))...); err != nil {
		t.Fatalf("burn: %v", err)
	}
	if total, _ := ledger.TotalIssuance(fungibleFaucet); total != 350 {
		t.Errorf("issuance %d, want 350", total)
	}
	if bal := inputs.Balance(fungibleFaucet); bal != 50 {
		t.Errorf("input balance %d, want 50", bal)
	}
}

func TestBurnBeyondIssuance(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	if err := ledger.Issue(fungibleFaucet, 10); err != nil {
		t.Fatal(err)
	}
	inputs, _ := types.NewVault(types.MustFungibleAsset(fungibleFaucet, 50))
	k := New(NewContext(fungibleFaucet, ledger, inputs))
	_, err := call(k, BurnAsset, wordInputs(types.Word(types.MustFungibleAsset(fungibleFaucet, 50)))...)
	wantAbort(t, err, SupplyViolation)
	if bal := inputs.Balance(fungibleFaucet); bal != 50 {
		t.Errorf("input balance changed to %d", bal)
	}
}

func TestNonFungibleScenario(t *testing.T) {
	for _, policy := range []asset.IssuancePolicy{asset.Circulating, asset.Historical} {
		ledger := newTestLedger(t, policy)
		a := types.MustNonFungibleAsset(nonFungibleFaucet, []byte{42})
		inputs, _ := types.NewVault()
		ctx := NewContext(nonFungibleFaucet, ledger, inputs)
		k := New(ctx)

		if out, err := call(k, IsNonFungibleIssued, wordInputs(types.Word(a))...); err != nil || out[0] != 0 {
			t.Fatalf("%s: issued before mint: %v %v", policy, out, err)
		}
		if _, err := call(k, MintAsset, wordInputs(types.Word(a))...); err != nil {
			t.Fatalf("%s: mint: %v", policy, err)
		}
		if out, _ := call(k, IsNonFungibleIssued, wordInputs(types.Word(a))...); out[0] != 1 {
			t.Errorf("%s: not issued after mint", policy)
		}
		_, err := call(k, MintAsset, wordInputs(types.Word(a))...)
		wantAbort(t, err, DuplicateIssuance)

		_, err = call(k, BurnAsset, wordInputs(types.Word(a))...)
		wantAbort(t, err, UnavailableBurnTarget)

		if err := inputs.Add(a); err != nil {
			t.Fatal(err)
		}
		if _, err := call(k, BurnAsset, wordInputs(types.Word(a))...); err != nil {
			t.Fatalf("%s: burn: %v", policy, err)
		}
		out, _ := call(k, IsNonFungibleIssued, wordInputs(types.Word(a))...)
		_, remint := call(k, MintAsset, wordInputs(types.Word(a))...)
		switch policy {
		case asset.Circulating:
			if out[0] != 0 {
				t.Errorf("circulating: still issued after burn")
			}
			if remint != nil {
				t.Errorf("circulating: re-mint failed: %v", remint)
			}
		case asset.Historical:
			if out[0] != 1 {
				t.Errorf("historical: not issued after burn")
			}
			wantAbort(t, remint, DuplicateIssuance)
		}
	}
}

func TestContextViolations(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	fungible := wordInputs(types.Word(types.MustFungibleAsset(fungibleFaucet, 1)))
	nft := wordInputs(types.Word(types.MustNonFungibleAsset(nonFungibleFaucet, []byte{1})))
	unregistered := types.NewAccountID(types.FungibleFaucet, 8)

	tests := []struct {
		account types.AccountID
		proc    string
		inputs  []types.Felt
	}{
		{regularAccount, MintAsset, fungible},
		{regularAccount, BurnAsset, fungible},
		{regularAccount, GetTotalFungibleIssuance, nil},
		{regularAccount, IsNonFungibleIssued, nft},
		{nonFungibleFaucet, GetTotalFungibleIssuance, nil},
		{fungibleFaucet, IsNonFungibleIssued, nft},
		{unregistered, GetTotalFungibleIssuance, nil},
	}
	for i, tt := range tests {
		k := New(NewContext(tt.account, ledger, nil))
		_, err := call(k, tt.proc, tt.inputs...)
		abortErr, ok := AsAbort(err)
		if !ok || abortErr.Kind != ContextViolation {
			t.Errorf("test %d (%s by %s): err %v", i, tt.proc, tt.account, err)
		}
	}
}

func TestIdentityEnforcement(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	otherFungible := types.NewAccountID(types.FungibleFaucet, 9)
	otherNonFungible := types.NewAccountID(types.NonFungibleFaucet, 9)
	foreignCoin := types.MustFungibleAsset(otherFungible, 5)
	foreignArt := types.MustNonFungibleAsset(otherNonFungible, []byte{42})
	inputs, _ := types.NewVault(foreignCoin, foreignArt)

	tests := []struct {
		account types.AccountID
		proc    string
		asset   types.Asset
	}{
		{fungibleFaucet, MintAsset, foreignCoin},
		{fungibleFaucet, BurnAsset, foreignCoin},
		{nonFungibleFaucet, MintAsset, foreignArt},
		{nonFungibleFaucet, BurnAsset, foreignArt},
		{nonFungibleFaucet, IsNonFungibleIssued, foreignArt},
	}
	for i, tt := range tests {
		k := New(NewContext(tt.account, ledger, inputs))
		_, err := call(k, tt.proc, wordInputs(types.Word(tt.asset))...)
		if !errors.Is(err, ErrIdentityMismatch) {
			t.Errorf("test %d (%s): err %v", i, tt.proc, err)
		}
	}
	if inputs.Len() != 2 {
		t.Errorf("inputs touched by aborted burns: %v", inputs.Assets())
	}
}

func TestMalformedAsset(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	k := New(NewContext(fungibleFaucet, ledger, nil))
	bad := types.Word(types.MustFungibleAsset(fungibleFaucet, 1))
	bad[1] = 1
	_, err := call(k, MintAsset, wordInputs(bad)...)
	wantAbort(t, err, MalformedAsset)

	nk := New(NewContext(nonFungibleFaucet, ledger, nil))
	_, err = call(nk, IsNonFungibleIssued, wordInputs(types.Word(types.MustFungibleAsset(fungibleFaucet, 1)))...)
	wantAbort(t, err, MalformedAsset)
}

func TestAbortErrorIs(t *testing.T) {
	err := abort(SupplyViolation, MintAsset, "over by %d", 1)
	if !errors.Is(err, ErrSupplyViolation) || errors.Is(err, ErrDuplicateIssuance) {
		t.Errorf("Is mismatch for %v", err)
	}
	want := "kernel abort in mint_asset: supply violation: over by 1"
	if err.Error() != want {
		t.Errorf("message %q, want %q", err.Error(), want)
	}
}

func TestInvokePanics(t *testing.T) {
	ledger := newTestLedger(t, asset.Circulating)
	k := New(NewContext(fungibleFaucet, ledger, nil))
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: no panic", name)
			}
		}()
		fn()
	}
	mustPanic("unknown offset", func() {
		var frame vm.Frame
		frame[0] = 99
		k.Invoke(99, &frame)
	})
	mustPanic("misaligned", func() {
		var frame vm.Frame
		k.Invoke(ProcOffset(GetTotalFungibleIssuance), &frame)
	})
	mustPanic("dirty padding", func() {
		var frame vm.Frame
		frame[0] = types.Felt(ProcOffset(GetTotalFungibleIssuance))
		frame[5] = 1
		k.Invoke(ProcOffset(GetTotalFungibleIssuance), &frame)
	})
	mustPanic("re-entry", func() {
		k.active = true
		defer func() { k.active = false }()
		call(k, GetTotalFungibleIssuance)
	})
}
