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

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/kernel"
	"github.com/luozexuan/miden-base/processor"
	"github.com/luozexuan/miden-base/rawdb"
	"github.com/luozexuan/miden-base/state"
	"github.com/luozexuan/miden-base/types"
)

var (
	// ErrNonceTooLow is returned if the nonce of a transaction is lower than
	// the one of its account, i.e. it was executed already.
	ErrNonceTooLow = errors.New("nonce too low")

	// ErrNonceTooHigh is returned if the nonce of a transaction is higher
	// than the next one expected for its account.
	ErrNonceTooHigh = errors.New("nonce too high")
)

// ApplyTransaction runs tx against statedb. A transaction that aborts or
// fails inside its program yields a failed receipt and leaves statedb as
// it was before the call, apart from the account nonce which is bumped
// either way. The error is reserved for transactions that cannot run at
// all and for storage failures.
func ApplyTransaction(statedb *state.StateDB, tx *types.Transaction, runLimit int64) (*types.Receipt, error) {
	prog, err := processor.Assemble(string(tx.Program()))
	if err != nil {
		return nil, fmt.Errorf("invalid program: %v", err)
	}
	inputs, err := types.NewVault(tx.Inputs()...)
	if err != nil {
		return nil, fmt.Errorf("invalid inputs: %v", err)
	}
	ledger := asset.NewLedger(statedb)
	nonce, err := ledger.Nonce(tx.Account())
	if err != nil {
		return nil, err
	}
	switch {
	case tx.Nonce() < nonce:
		return nil, fmt.Errorf("%w: account %s at %d, transaction %d", ErrNonceTooLow, tx.Account(), nonce, tx.Nonce())
	case tx.Nonce() > nonce:
		return nil, fmt.Errorf("%w: account %s at %d, transaction %d", ErrNonceTooHigh, tx.Account(), nonce, tx.Nonce())
	}

	snap := statedb.Snapshot()
	ctx := kernel.NewContext(tx.Account(), ledger, inputs)
	res, err := processor.Run(prog, kernel.New(ctx), nil, runLimit)

	receipt := types.NewReceipt(tx.Hash(), err != nil, res.CyclesUsed)
	receipt.Stack = res.Stack.Items()
	if err != nil {
		statedb.RevertToSnapshot(snap)
		if abortErr, ok := kernel.AsAbort(err); ok {
			receipt.Abort = abortErr.Kind.String()
		}
		receipt.Reason = err.Error()
	} else {
		receipt.Minted = ctx.Minted()
		receipt.Burned = ctx.Burned()
	}
	if err := ledger.SetNonce(tx.Account(), nonce+1); err != nil {
		return nil, err
	}
	return receipt, statedb.Error()
}

// Executor applies transactions one at a time and persists their effects.
type Executor struct {
	db       state.Database
	runLimit int64
	mu       sync.Mutex
}

// NewExecutor creates an executor over db. A runLimit of zero selects the
// default run limit.
func NewExecutor(db state.Database, runLimit int64) *Executor {
	return &Executor{db: db, runLimit: runLimit}
}

// Execute applies tx, commits its ledger changes and stores its receipt.
// A failed transaction only commits the bump of its account nonce.
func (e *Executor) Execute(tx *types.Transaction) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	statedb := state.New(e.db)
	receipt, err := ApplyTransaction(statedb, tx, e.runLimit)
	if err != nil {
		return nil, err
	}
	if err := statedb.Commit(); err != nil {
		return nil, err
	}
	rawdb.WriteReceipt(e.db.DiskDB(), receipt)
	if receipt.Failed() {
		log.Info("Transaction failed", "hash", receipt.TxHash, "account", tx.Account(), "abort", receipt.Abort, "reason", receipt.Reason)
	} else {
		log.Info("Transaction executed", "hash", receipt.TxHash, "account", tx.Account(), "minted", len(receipt.Minted), "burned", len(receipt.Burned), "cycles", receipt.CyclesUsed)
	}
	return receipt, nil
}

// Nonce returns the nonce the next transaction of account must carry.
func (e *Executor) Nonce(account types.AccountID) (uint64, error) {
	return e.Ledger().Nonce(account)
}

// Ledger returns a read view of the committed ledger.
func (e *Executor) Ledger() *asset.Ledger {
	return asset.NewLedger(state.New(e.db))
}

// Receipt returns the stored receipt of the transaction with the given
// hash, nil if unknown.
func (e *Executor) Receipt(txHash common.Hash) *types.Receipt {
	return rawdb.ReadReceipt(e.db.DiskDB(), txHash)
}
