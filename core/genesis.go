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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/params"
	"github.com/luozexuan/miden-base/rawdb"
	"github.com/luozexuan/miden-base/state"
	"github.com/luozexuan/miden-base/types"
)

var errGenesisKernelVersion = errors.New("genesis built for another kernel version")

// GenesisFaucet is a faucet registered at genesis together with the
// issuance it starts with.
type GenesisFaucet struct {
	ID       types.AccountID  `json:"id"`
	Info     asset.FaucetInfo `json:"info"`
	Issuance uint64           `json:"issuance,omitempty"`
	Issued   []hexutil.Bytes  `json:"issued,omitempty"` // data of pre-issued non-fungible assets
}

// Genesis specifies the initial ledger: the faucets known from the start,
// their fungible issuance and the non-fungible assets they already issued.
type Genesis struct {
	KernelVersion uint64          `json:"kernelVersion"`
	ExtraData     hexutil.Bytes   `json:"extraData"`
	Faucets       []GenesisFaucet `json:"faucets"`
}

// GenesisMismatchError is raised when trying to overwrite an existing
// genesis with an incompatible one.
type GenesisMismatchError struct {
	Stored, New common.Hash
}

func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("database already contains an incompatible genesis (have %x, new %x)", e.Stored[:8], e.New[:8])
}

// SetupGenesis commits genesis if db holds none yet, otherwise checks that
// genesis matches the stored one. A nil genesis selects the default on an
// empty database and accepts whatever is stored otherwise.
func SetupGenesis(db state.Database, genesis *Genesis) (common.Hash, error) {
	if genesis != nil && genesis.KernelVersion != params.KernelVersion {
		return common.Hash{}, fmt.Errorf("%w: have %d, want %d", errGenesisKernelVersion, genesis.KernelVersion, params.KernelVersion)
	}
	stored := rawdb.ReadGenesisHash(db.DiskDB())
	if (stored == common.Hash{}) {
		if genesis == nil {
			log.Info("Writing default genesis")
			genesis = DefaultGenesis()
		} else {
			log.Info("Writing custom genesis")
		}
		return genesis.Commit(db)
	}
	if genesis != nil {
		hash := genesis.Hash()
		if hash != stored {
			return hash, &GenesisMismatchError{stored, hash}
		}
	}
	return stored, nil
}

// Hash returns the keccak256 hash of the rlp encoded genesis.
func (g *Genesis) Hash() common.Hash {
	enc, err := rlp.EncodeToBytes(g)
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(enc)
}

// ToLedger applies the genesis to a fresh state over db without
// committing it.
func (g *Genesis) ToLedger(db state.Database) (*state.StateDB, error) {
	statedb := state.New(db)
	ledger := asset.NewLedger(statedb)
	for _, f := range g.Faucets {
		info := f.Info
		if err := ledger.SetupFaucet(f.ID, &info); err != nil {
			return nil, err
		}
		if f.Issuance > 0 {
			if err := ledger.Issue(f.ID, f.Issuance); err != nil {
				return nil, fmt.Errorf("genesis faucet %s: %v", f.ID, err)
			}
		}
		for _, data := range f.Issued {
			a, err := types.NewNonFungibleAsset(f.ID, data)
			if err != nil {
				return nil, fmt.Errorf("genesis faucet %s: %v", f.ID, err)
			}
			if err := ledger.IssueNonFungible(a); err != nil {
				return nil, fmt.Errorf("genesis faucet %s: %v", f.ID, err)
			}
		}
	}
	return statedb, nil
}

// Commit writes the genesis ledger and the genesis record to db in a
// single batch.
func (g *Genesis) Commit(db state.Database) (common.Hash, error) {
	statedb, err := g.ToLedger(db)
	if err != nil {
		return common.Hash{}, err
	}
	enc, err := json.Marshal(g)
	if err != nil {
		return common.Hash{}, err
	}
	hash := g.Hash()
	records := make(recordBatch)
	rawdb.WriteGenesisJSON(records, hash, enc)
	rawdb.WriteGenesisHash(records, hash)
	if err := statedb.CommitWith(records); err != nil {
		return common.Hash{}, err
	}
	log.Info("Committed genesis", "hash", hash, "faucets", len(g.Faucets))
	return hash, nil
}

// recordBatch collects raw database writes to be committed with the ledger.
type recordBatch map[string][]byte

func (b recordBatch) Put(key []byte, value []byte) error {
	b[string(key)] = common.CopyBytes(value)
	return nil
}

func (b recordBatch) Delete(key []byte) error {
	b[string(key)] = nil
	return nil
}

// ReadGenesis loads the committed genesis from db.
func ReadGenesis(db state.Database) (*Genesis, common.Hash, error) {
	hash := rawdb.ReadGenesisHash(db.DiskDB())
	if (hash == common.Hash{}) {
		return nil, hash, errors.New("no genesis committed")
	}
	genesis := new(Genesis)
	if err := json.Unmarshal(rawdb.ReadGenesisJSON(db.DiskDB(), hash), genesis); err != nil {
		return nil, hash, fmt.Errorf("invalid stored genesis: %v", err)
	}
	return genesis, hash, nil
}

// Default faucet accounts.
var (
	DefaultFungibleFaucet    = types.NewAccountID(types.FungibleFaucet, 1)
	DefaultNonFungibleFaucet = types.NewAccountID(types.NonFungibleFaucet, 1)
)

// DefaultGenesis returns the genesis of a development ledger with one
// faucet of each kind.
func DefaultGenesis() *Genesis {
	return &Genesis{
		KernelVersion: params.KernelVersion,
		ExtraData:     []byte("Faucet Genesis"),
		Faucets: []GenesisFaucet{
			{
				ID:   DefaultFungibleFaucet,
				Info: asset.FaucetInfo{Name: "Polygon Token", Symbol: "POL", Decimals: 8, MaxSupply: 1_000_000_000_00000000},
			},
			{
				ID:   DefaultNonFungibleFaucet,
				Info: asset.FaucetInfo{Name: "Collectibles", Symbol: "ART", Policy: asset.Historical},
			},
		},
	}
}
