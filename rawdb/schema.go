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

// Package rawdb contains the low level accessors of the faucet database.
package rawdb

import "github.com/ethereum/go-ethereum/common"

var (
	// genesisHashKey tracks the hash of the committed genesis.
	genesisHashKey = []byte("GenesisHash")

	genesisPrefix = []byte("G") // genesisPrefix + hash -> genesis json
	receiptPrefix = []byte("r") // receiptPrefix + tx hash -> receipt rlp
)

func genesisKey(hash common.Hash) []byte {
	return append(append([]byte{}, genesisPrefix...), hash.Bytes()...)
}

func receiptKey(txHash common.Hash) []byte {
	return append(append([]byte{}, receiptPrefix...), txHash.Bytes()...)
}
