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

func (l *Ledger) fungibleInfo(faucet types.AccountID) (*FaucetInfo, error) {
	if faucet.Type() != types.FungibleFaucet {
		return nil, fmt.Errorf("%w: %s is a %s", ErrWrongFaucetKind, faucet, faucet.Type())
	}
	return l.FaucetInfo(faucet)
}

// TotalIssuance returns the amount of faucet's asset currently issued.
func (l *Ledger) TotalIssuance(faucet types.AccountID) (uint64, error) {
	if _, err := l.fungibleInfo(faucet); err != nil {
		return 0, err
	}
	return l.getUint(faucet, issuanceKey)
}

// Issue raises the total issuance of faucet by amount.
func (l *Ledger) Issue(faucet types.AccountID, amount uint64) error {
	info, err := l.fungibleInfo(faucet)
	if err != nil {
		return err
	}
	total, err := l.getUint(faucet, issuanceKey)
	if err != nil {
		return err
	}
	if amount > info.MaxSupply || total > info.MaxSupply-amount {
		return fmt.Errorf("%w: %d issued, %d requested, max %d", ErrSupplyExceeded, total, amount, info.MaxSupply)
	}
	if err := l.setUint(faucet, issuanceKey, total+amount); err != nil {
		return err
	}
	log.Trace("Issued fungible asset", "faucet", faucet, "amount", amount, "total", total+amount)
	return nil
}

// Retract lowers the total issuance of faucet by amount.
func (l *Ledger) Retract(faucet types.AccountID, amount uint64) error {
	if _, err := l.fungibleInfo(faucet); err != nil {
		return err
	}
	total, err := l.getUint(faucet, issuanceKey)
	if err != nil {
		return err
	}
	if amount > total {
		return fmt.Errorf("%w: %d issued, %d requested", ErrBurnExceedsIssuance, total, amount)
	}
	if err := l.setUint(faucet, issuanceKey, total-amount); err != nil {
		return err
	}
	log.Trace("Retracted fungible asset", "faucet", faucet, "amount", amount, "total", total-amount)
	return nil
}
