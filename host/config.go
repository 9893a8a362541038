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

package host

import (
	"github.com/luozexuan/miden-base/core"
	"github.com/luozexuan/miden-base/params"
)

// Config contains the configuration of the faucet host service.
type Config struct {
	// The genesis to commit on first start. Nil selects the default genesis
	// on an empty database.
	Genesis *core.Genesis `toml:",omitempty"`

	// Database options
	DatabaseCache   int
	DatabaseHandles int `toml:"-"`

	// StateCache is the number of ledger entries kept in the read cache.
	StateCache int

	// RunLimit bounds the cycles a single transaction program may use.
	RunLimit int64
}

// DefaultConfig contains default settings for the host service.
var DefaultConfig = Config{
	DatabaseCache:   16,
	DatabaseHandles: 16,
	StateCache:      4096,
	RunLimit:        params.DefaultRunLimit,
}
