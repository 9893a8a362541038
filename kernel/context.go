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
	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/core/asset"
	"github.com/luozexuan/miden-base/types"
)

// Context is the state a kernel procedure runs against: the account the
// transaction executes for, the faucet ledger and the assets supplied as
// transaction inputs. One Context lives for one transaction.
type Context struct {
	account types.AccountID
	ledger  *asset.Ledger
	inputs  *types.Vault

	minted []types.Asset
	burned []types.Asset

	log log.Logger
}

// NewContext creates the execution context of a transaction run by account.
// A nil inputs vault means no assets were supplied.
func NewContext(account types.AccountID, ledger *asset.Ledger, inputs *types.Vault) *Context {
	if inputs == nil {
		inputs, _ = types.NewVault()
	}
	return &Context{
		account: account,
		ledger:  ledger,
		inputs:  inputs,
		log:     log.New("account", account),
	}
}

// Account returns the executing account.
func (c *Context) Account() types.AccountID { return c.account }

// Ledger returns the faucet ledger.
func (c *Context) Ledger() *asset.Ledger { return c.ledger }

// Inputs returns the remaining transaction input assets.
func (c *Context) Inputs() *types.Vault { return c.inputs }

// Minted returns the assets minted so far, in order.
func (c *Context) Minted() []types.Asset { return append([]types.Asset(nil), c.minted...) }

// Burned returns the assets burned so far, in order.
func (c *Context) Burned() []types.Asset { return append([]types.Asset(nil), c.burned...) }
