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

package asset

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/types"
)

func recordKey(a types.Asset) string {
	return nftPrefix + string(a.Key().Bytes())
}

func (l *Ledger) nonFungibleInfo(a types.Asset) (*FaucetInfo, error) {
	faucet := a.FaucetID()
	if faucet.Type() != types.NonFungibleFaucet {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongFaucetKind, faucet, faucet.Type())
	}
	return l.FaucetInfo(faucet)
}

func (l *Ledger) record(a types.Asset) (uint64, error) {
	return l.getUint(a.FaucetID(), recordKey(a))
}

// IsIssued reports whether a counts as issued under its faucet's policy:
// only circulating assets for Circulating, every asset ever minted for
// Historical.
func (l *Ledger) IsIssued(a types.Asset) (bool, error) {
	if _, err := l.nonFungibleInfo(a); err != nil {
		return false, err
	}
	rec, err := l.record(a)
	if err != nil {
		return false, err
	}
	return rec != recordNone, nil
}

// IsCirculating reports whether a was minted and not burned since.
func (l *Ledger) IsCirculating(a types.Asset) (bool, error) {
	if _, err := l.nonFungibleInfo(a); err != nil {
		return false, err
	}
	rec, err := l.record(a)
	if err != nil {
		return false, err
	}
	return rec == recordCirculating, nil
}

// IssueNonFungible records a as issued and circulating.
func (l *Ledger) IssueNonFungible(a types.Asset) error {
	if _, err := l.nonFungibleInfo(a); err != nil {
		return err
	}
	rec, err := l.record(a)
	if err != nil {
		return err
	}
	if rec != recordNone {
		return fmt.Errorf("%w: %s", ErrAlreadyIssued, a)
	}
	if err := l.setUint(a.FaucetID(), recordKey(a), recordCirculating); err != nil {
		return err
	}
	log.Trace("Issued non-fungible asset", "faucet", a.FaucetID(), "asset", types.Word(a))
	return nil
}

// RetireNonFungible takes a out of circulation. Under Circulating the
// record is dropped, under Historical it is kept as retired.
func (l *Ledger) RetireNonFungible(a types.Asset) error {
	info, err := l.nonFungibleInfo(a)
	if err != nil {
		return err
	}
	rec, err := l.record(a)
	if err != nil {
		return err
	}
	if rec != recordCirculating {
		return fmt.Errorf("%w: %s", ErrNotCirculating, a)
	}
	next := recordNone
	if info.Policy == Historical {
		next = recordRetired
	}
	if err := l.setUint(a.FaucetID(), recordKey(a), next); err != nil {
		return err
	}
	log.Trace("Retired non-fungible asset", "faucet", a.FaucetID(), "asset", types.Word(a), "policy", info.Policy)
	return nil
}
