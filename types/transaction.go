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

package types

import (
	"encoding/json"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Transaction runs one program in the context of one account, with a set
// of assets supplied as transaction inputs.
type Transaction struct {
	data txdata

	// caches
	hash atomic.Value
	size atomic.Value
}

type txdata struct {
	Account AccountID `json:"account"`
	Nonce   uint64    `json:"nonce"`
	Inputs  []Asset   `json:"inputs"`
	Program []byte    `json:"program"`
}

// NewTransaction initialize transaction
func NewTransaction(account AccountID, nonce uint64, inputs []Asset, program []byte) *Transaction {
	d := txdata{
		Account: account,
		Nonce:   nonce,
		Inputs:  make([]Asset, len(inputs)),
		Program: common.CopyBytes(program),
	}
	copy(d.Inputs, inputs)
	return &Transaction{data: d}
}

// Account returns the executing account.
func (tx *Transaction) Account() AccountID { return tx.data.Account }

// Nonce returns the sequence number of the transaction among those of its
// account.
func (tx *Transaction) Nonce() uint64 { return tx.data.Nonce }

// Inputs returns a copy of the input assets.
func (tx *Transaction) Inputs() []Asset {
	inputs := make([]Asset, len(tx.data.Inputs))
	copy(inputs, tx.data.Inputs)
	return inputs
}

// Program returns the program source.
func (tx *Transaction) Program() []byte { return common.CopyBytes(tx.data.Program) }

// EncodeRLP returns the rlp encoding of tx.
func (tx *Transaction) EncodeRLP() ([]byte, error) {
	return rlp.EncodeToBytes(&tx.data)
}

// DecodeRLP fills tx from its rlp encoding.
func (tx *Transaction) DecodeRLP(data []byte) error {
	var dec txdata
	if err := rlp.DecodeBytes(data, &dec); err != nil {
		return err
	}
	*tx = Transaction{data: dec}
	tx.size.Store(common.StorageSize(len(data)))
	return nil
}

// MarshalJSON encodes tx as JSON.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(&tx.data)
}

// UnmarshalJSON decodes tx from JSON.
func (tx *Transaction) UnmarshalJSON(input []byte) error {
	var dec txdata
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	*tx = Transaction{data: dec}
	return nil
}

// Hash hashes the RLP encoding of tx.
// It uniquely identifies the transaction.
func (tx *Transaction) Hash() common.Hash {
	if hash := tx.hash.Load(); hash != nil {
		return hash.(common.Hash)
	}
	enc, err := tx.EncodeRLP()
	if err != nil {
		panic(err)
	}
	v := crypto.Keccak256Hash(enc)
	tx.hash.Store(v)
	return v
}

// Size returns the true RLP encoded storage size of the transaction.
func (tx *Transaction) Size() common.StorageSize {
	if size := tx.size.Load(); size != nil {
		return size.(common.StorageSize)
	}
	enc, err := tx.EncodeRLP()
	if err != nil {
		panic(err)
	}
	s := common.StorageSize(len(enc))
	tx.size.Store(s)
	return s
}
