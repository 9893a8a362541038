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

package rawdb

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/types"
)

// ReadGenesisHash retrieves the hash of the committed genesis, or the zero
// hash if none was committed.
func ReadGenesisHash(db ethdb.KeyValueReader) common.Hash {
	data, _ := db.Get(genesisHashKey)
	if len(data) == 0 {
		return common.Hash{}
	}
	return common.BytesToHash(data)
}

// WriteGenesisHash stores the hash of the committed genesis.
func WriteGenesisHash(db ethdb.KeyValueWriter, hash common.Hash) {
	if err := db.Put(genesisHashKey, hash.Bytes()); err != nil {
		log.Crit("Failed to store genesis hash", "err", err)
	}
}

// ReadGenesisJSON retrieves the genesis specification committed under hash.
func ReadGenesisJSON(db ethdb.KeyValueReader, hash common.Hash) []byte {
	data, _ := db.Get(genesisKey(hash))
	return data
}

// WriteGenesisJSON stores the genesis specification committed under hash.
func WriteGenesisJSON(db ethdb.KeyValueWriter, hash common.Hash, data []byte) {
	if err := db.Put(genesisKey(hash), data); err != nil {
		log.Crit("Failed to store genesis", "err", err)
	}
}

// ReadReceipt retrieves the receipt of the transaction with the given hash.
func ReadReceipt(db ethdb.KeyValueReader, txHash common.Hash) *types.Receipt {
	data, _ := db.Get(receiptKey(txHash))
	if len(data) == 0 {
		return nil
	}
	receipt := new(types.Receipt)
	if err := receipt.DecodeRLP(data); err != nil {
		log.Error("Invalid receipt RLP", "hash", txHash, "err", err)
		return nil
	}
	return receipt
}

// WriteReceipt stores a transaction receipt keyed by its transaction hash.
func WriteReceipt(db ethdb.KeyValueWriter, receipt *types.Receipt) {
	data, err := receipt.EncodeRLP()
	if err != nil {
		log.Crit("Failed to encode receipt", "err", err)
	}
	if err := db.Put(receiptKey(receipt.TxHash), data); err != nil {
		log.Crit("Failed to store receipt", "err", err)
	}
}
