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

// Package asset keeps the issuance ledger of faucet accounts: the total
// issuance of fungible faucets and the issued-asset records of non-fungible
// faucets. Callers are expected to enforce identity and context checks; the
// ledger only guards its own invariants.
package asset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/luozexuan/miden-base/params"
	"github.com/luozexuan/miden-base/types"
)

// IssuancePolicy decides what a burn does to a non-fungible asset's
// issuance record.
type IssuancePolicy uint64

const (
	// Circulating drops the record on burn, so the asset may be minted again.
	Circulating IssuancePolicy = iota
	// Historical keeps a retired record on burn, so the asset stays issued forever.
	Historical
)

func (p IssuancePolicy) String() string {
	switch p {
	case Circulating:
		return "circulating"
	case Historical:
		return "historical"
	}
	return fmt.Sprintf("policy(%d)", uint64(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p IssuancePolicy) MarshalText() ([]byte, error) {
	if p != Circulating && p != Historical {
		return nil, fmt.Errorf("unknown issuance policy %d", uint64(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *IssuancePolicy) UnmarshalText(text []byte) error {
	policy, err := ParseIssuancePolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// ParseIssuancePolicy parses the textual form of a policy.
func ParseIssuancePolicy(s string) (IssuancePolicy, error) {
	switch s {
	case "", "circulating":
		return Circulating, nil
	case "historical":
		return Historical, nil
	}
	return 0, fmt.Errorf("unknown issuance policy %q", s)
}

var (
	ErrNotFaucet           = errors.New("account is not a faucet")
	ErrFaucetExists        = errors.New("faucet already registered")
	ErrFaucetNotFound      = errors.New("faucet not registered")
	ErrSupplyExceeded      = errors.New("total issuance would exceed max supply")
	ErrBurnExceedsIssuance = errors.New("burn amount exceeds total issuance")
	ErrAlreadyIssued       = errors.New("non-fungible asset already issued")
	ErrNotCirculating      = errors.New("non-fungible asset not in circulation")
	ErrWrongFaucetKind     = errors.New("operation does not match faucet kind")
)

var (
	infoKey     = "info"
	issuanceKey = "issuance"
	nonceKey    = "nonce"
	nftPrefix   = "nft"
)

// Issuance record states of a non-fungible asset.
const (
	recordNone uint64 = iota
	recordCirculating
	recordRetired
)

// FaucetInfo is the registration record of a faucet.
type FaucetInfo struct {
	Name      string         `json:"name"`
	Symbol    string         `json:"symbol"`
	Decimals  uint64         `json:"decimals"`
	MaxSupply uint64         `json:"maxSupply"`
	Policy    IssuancePolicy `json:"policy"`
}

// Ledger reads and mutates faucet issuance state.
type Ledger struct {
	db StateDB
}

// NewLedger creates a ledger over db.
func NewLedger(db StateDB) *Ledger {
	return &Ledger{db}
}

// RegisterFaucet registers faucet from a JSON encoded FaucetInfo.
func (l *Ledger) RegisterFaucet(faucet types.AccountID, desc string) error {
	var info FaucetInfo
	if err := json.Unmarshal([]byte(desc), &info); err != nil {
		return err
	}
	return l.SetupFaucet(faucet, &info)
}

// SetupFaucet registers faucet with info. Registration happens once.
func (l *Ledger) SetupFaucet(faucet types.AccountID, info *FaucetInfo) error {
	if !faucet.Valid() || !faucet.IsFaucet() {
		return fmt.Errorf("%w: %s", ErrNotFaucet, faucet)
	}
	if len(l.db.GetAccount(faucet, infoKey)) != 0 {
		return fmt.Errorf("%w: %s", ErrFaucetExists, faucet)
	}
	if info.MaxSupply > params.MaxFungibleAmount {
		return fmt.Errorf("max supply %d of %s exceeds %d", info.MaxSupply, faucet, params.MaxFungibleAmount)
	}
	b := new(bytes.Buffer)
	if err := rlp.Encode(b, info); err != nil {
		return err
	}
	l.db.SetAccount(faucet, infoKey, b.Bytes())
	log.Debug("Registered faucet", "faucet", faucet, "type", faucet.Type(), "symbol", info.Symbol, "max", info.MaxSupply)
	return nil
}

// FaucetInfo returns the registration record of faucet.
func (l *Ledger) FaucetInfo(faucet types.AccountID) (*FaucetInfo, error) {
	enc := l.db.GetAccount(faucet, infoKey)
	if len(enc) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFaucetNotFound, faucet)
	}
	info := new(FaucetInfo)
	if err := rlp.DecodeBytes(enc, info); err != nil {
		return nil, fmt.Errorf("faucet %s: %v", faucet, err)
	}
	return info, nil
}

// Exists reports whether faucet has been registered.
func (l *Ledger) Exists(faucet types.AccountID) bool {
	return len(l.db.GetAccount(faucet, infoKey)) != 0
}

func (l *Ledger) getUint(account types.AccountID, key string) (uint64, error) {
	enc := l.db.GetAccount(account, key)
	if len(enc) == 0 {
		return 0, nil
	}
	var v uint64
	if err := rlp.DecodeBytes(enc, &v); err != nil {
		return 0, fmt.Errorf("account %s key %q: %v", account, key, err)
	}
	return v, nil
}

func (l *Ledger) setUint(account types.AccountID, key string, v uint64) error {
	if v == 0 {
		l.db.SetAccount(account, key, nil)
		return nil
	}
	enc, err := rlp.EncodeToBytes(v)
	if err != nil {
		return err
	}
	l.db.SetAccount(account, key, enc)
	return nil
}

// Nonce returns the number of transactions account has executed.
func (l *Ledger) Nonce(account types.AccountID) (uint64, error) {
	return l.getUint(account, nonceKey)
}

// SetNonce updates the transaction count of account.
func (l *Ledger) SetNonce(account types.AccountID, nonce uint64) error {
	return l.setUint(account, nonceKey, nonce)
}
