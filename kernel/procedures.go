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

	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/types"
	"github.com/luozexuan/miden-base/vm"
)

// executingFaucet checks that the transaction runs for a registered faucet.
func (c *Context) executingFaucet(proc string) (types.AccountID, error) {
	if !c.account.Valid() || !c.account.IsFaucet() {
		return 0, abort(ContextViolation, proc, "account %s is a %s", c.account, c.account.Type())
	}
	if !c.ledger.Exists(c.account) {
		return 0, abort(ContextViolation, proc, "faucet %s not registered", c.account)
	}
	return c.account, nil
}

// checkAsset validates a and binds it to the executing faucet.
func (c *Context) checkAsset(proc string, faucet types.AccountID, a types.Asset) error {
	if err := a.Validate(); err != nil {
		return abort(MalformedAsset, proc, "%v", err)
	}
	if a.FaucetID() != faucet {
		return abort(IdentityMismatch, proc, "asset issued by %s, executing faucet %s", a.FaucetID(), faucet)
	}
	if a.IsFungible() != (faucet.Type() == types.FungibleFaucet) {
		return abort(ContextViolation, proc, "%s asset for %s", kindOf(a), faucet.Type())
	}
	return nil
}

func kindOf(a types.Asset) string {
	if a.IsFungible() {
		return "fungible"
	}
	return "non-fungible"
}

// ledgerAbort translates a ledger rule violation into an abort. Errors that
// are not rule violations, such as storage failures, pass through.
func ledgerAbort(proc string, err error) error {
	var kind AbortKind
	switch {
	case errors.Is(err, asset.ErrSupplyExceeded), errors.Is(err, asset.ErrBurnExceedsIssuance):
		kind = SupplyViolation
	case errors.Is(err, asset.ErrAlreadyIssued):
		kind = DuplicateIssuance
	case errors.Is(err, asset.ErrNotCirculating):
		kind = UnavailableBurnTarget
	case errors.Is(err, asset.ErrFaucetNotFound), errors.Is(err, asset.ErrWrongFaucetKind), errors.Is(err, asset.ErrNotFaucet):
		kind = ContextViolation
	default:
		return err
	}
	return abort(kind, proc, "%v", err)
}

func mintAsset(ctx *Context, frame *vm.Frame) error {
	a := types.Asset(frame.Word(0))
	faucet, err := ctx.executingFaucet(MintAsset)
	if err != nil {
		return err
	}
	if err := ctx.checkAsset(MintAsset, faucet, a); err != nil {
		return err
	}
	if a.IsFungible() {
		err = ctx.ledger.Issue(faucet, a.Amount())
	} else {
		err = ctx.ledger.IssueNonFungible(a)
	}
	if err != nil {
		return ledgerAbort(MintAsset, err)
	}
	ctx.minted = append(ctx.minted, a)

	*frame = vm.Frame{}
	frame.SetWord(0, types.Word(a))
	return nil
}

func burnAsset(ctx *Context, frame *vm.Frame) error {
	a := types.Asset(frame.Word(0))
	faucet, err := ctx.executingFaucet(BurnAsset)
	if err != nil {
		return err
	}
	if err := ctx.checkAsset(BurnAsset, faucet, a); err != nil {
		return err
	}
	if !ctx.inputs.Has(a) {
		return abort(UnavailableBurnTarget, BurnAsset, "%s not among transaction inputs", a)
	}
	if a.IsFungible() {
		err = ctx.ledger.Retract(faucet, a.Amount())
	} else {
		err = ctx.ledger.RetireNonFungible(a)
	}
	if err != nil {
		return ledgerAbort(BurnAsset, err)
	}
	if err := ctx.inputs.Remove(a); err != nil {
		return err
	}
	ctx.burned = append(ctx.burned, a)

	*frame = vm.Frame{}
	frame.SetWord(0, types.Word(a))
	return nil
}

func getTotalFungibleIssuance(ctx *Context, frame *vm.Frame) error {
	faucet, err := ctx.executingFaucet(GetTotalFungibleIssuance)
	if err != nil {
		return err
	}
	if faucet.Type() != types.FungibleFaucet {
		return abort(ContextViolation, GetTotalFungibleIssuance, "account %s is a %s", faucet, faucet.Type())
	}
	total, err := ctx.ledger.TotalIssuance(faucet)
	if err != nil {
		return ledgerAbort(GetTotalFungibleIssuance, err)
	}
	*frame = vm.Frame{}
	frame[0] = types.Felt(total)
	return nil
}

func isNonFungibleIssued(ctx *Context, frame *vm.Frame) error {
	a := types.Asset(frame.Word(0))
	faucet, err := ctx.executingFaucet(IsNonFungibleIssued)
	if err != nil {
		return err
	}
	if faucet.Type() != types.NonFungibleFaucet {
		return abort(ContextViolation, IsNonFungibleIssued, "account %s is a %s", faucet, faucet.Type())
	}
	if err := a.Validate(); err != nil {
		return abort(MalformedAsset, IsNonFungibleIssued, "%v", err)
	}
	if a.IsFungible() {
		return abort(MalformedAsset, IsNonFungibleIssued, "%s is not non-fungible", a)
	}
	if a.FaucetID() != faucet {
		return abort(IdentityMismatch, IsNonFungibleIssued, "asset issued by %s, executing faucet %s", a.FaucetID(), faucet)
	}
	issued, err := ctx.ledger.IsIssued(a)
	if err != nil {
		return ledgerAbort(IsNonFungibleIssued, err)
	}
	*frame = vm.Frame{}
	if issued {
		frame[0] = 1
	}
	return nil
}
