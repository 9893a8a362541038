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

// Package host implements the faucet ledger service: it owns the ledger
// database, commits the genesis and executes transactions.
package host

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/core"
	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/node"
	"github.com/luozexuan/miden-base/state"
	"github.com/luozexuan/miden-base/types"
)

// LedgerDatabase is the name of the ledger database inside the data directory.
const LedgerDatabase = "ledgerdata"

// Host implements the faucet ledger service.
type Host struct {
	config      *Config
	ledgerDb    ethdb.KeyValueStore
	stateCache  state.Database
	executor    *core.Executor
	genesisHash common.Hash
}

// New opens the ledger database, commits or checks the genesis and
// prepares the executor.
func New(ctx *node.ServiceContext, config *Config) (*Host, error) {
	cfg, _ := json.Marshal(config)
	log.Debug("Host config", "config", string(cfg))

	ledgerDb, err := CreateDB(ctx, config, LedgerDatabase)
	if err != nil {
		return nil, err
	}
	stateCache := state.NewDatabase(ledgerDb)
	if config.StateCache > 0 {
		stateCache = state.NewDatabaseWithCache(ledgerDb, config.StateCache)
	}
	hash, err := core.SetupGenesis(stateCache, config.Genesis)
	if err != nil {
		ledgerDb.Close()
		return nil, err
	}
	log.Info("Initialised ledger", "genesis", hash)

	return &Host{
		config:      config,
		ledgerDb:    ledgerDb,
		stateCache:  stateCache,
		executor:    core.NewExecutor(stateCache, config.RunLimit),
		genesisHash: hash,
	}, nil
}

// Start implements node.Service.
func (h *Host) Start() error {
	log.Info("Faucet host started")
	return nil
}

// Stop implements node.Service, closing the ledger database.
func (h *Host) Stop() error {
	return h.ledgerDb.Close()
}

// GenesisHash returns the hash of the committed genesis.
func (h *Host) GenesisHash() common.Hash { return h.genesisHash }

// Execute runs tx and persists its outcome.
func (h *Host) Execute(tx *types.Transaction) (*types.Receipt, error) {
	return h.executor.Execute(tx)
}

// Nonce returns the nonce the next transaction of account must carry.
func (h *Host) Nonce(account types.AccountID) (uint64, error) {
	return h.executor.Nonce(account)
}

// Receipt returns the stored receipt of a transaction.
func (h *Host) Receipt(txHash common.Hash) *types.Receipt {
	return h.executor.Receipt(txHash)
}

// Ledger returns a read view of the committed ledger.
func (h *Host) Ledger() *asset.Ledger { return h.executor.Ledger() }

// Genesis returns the committed genesis specification.
func (h *Host) Genesis() (*core.Genesis, error) {
	g, _, err := core.ReadGenesis(h.stateCache)
	return g, err
}

// CreateDB creates the ledger database.
func CreateDB(ctx *node.ServiceContext, config *Config, name string) (ethdb.KeyValueStore, error) {
	return ctx.OpenDatabase(name, config.DatabaseCache, config.DatabaseHandles)
}
