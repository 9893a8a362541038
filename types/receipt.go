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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

const (
	// ReceiptStatusFailed is the status code of a transaction if execution failed.
	ReceiptStatusFailed = uint64(0)

	// ReceiptStatusSuccessful is the status code of a transaction if execution succeeded.
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt represents the results of a transaction.
type Receipt struct {
	TxHash     common.Hash `json:"transactionHash"`
	Status     uint64      `json:"status"`
	Abort      string      `json:"abort"`
	Reason     string      `json:"reason"`
	Stack      []Felt      `json:"stack"`
	Minted     []Asset     `json:"minted"`
	Burned     []Asset     `json:"burned"`
	CyclesUsed uint64      `json:"cyclesUsed"`
}

// NewReceipt creates a barebone transaction receipt.
func NewReceipt(txHash common.Hash, failed bool, cyclesUsed uint64) *Receipt {
	r := &Receipt{TxHash: txHash, CyclesUsed: cyclesUsed}
	if failed {
		r.Status = ReceiptStatusFailed
	} else {
		r.Status = ReceiptStatusSuccessful
	}
	return r
}

// Failed reports whether the transaction was aborted.
func (r *Receipt) Failed() bool { return r.Status == ReceiptStatusFailed }

// EncodeRLP returns the rlp encoding of r.
func (r *Receipt) EncodeRLP() ([]byte, error) {
	return rlp.EncodeToBytes(r)
}

// DecodeRLP fills r from its rlp encoding.
func (r *Receipt) DecodeRLP(data []byte) error {
	return rlp.DecodeBytes(data, r)
}

// Size returns the approximate memory used by all internal contents
func (r *Receipt) Size() common.StorageSize {
	bytes, _ := r.EncodeRLP()
	return common.StorageSize(len(bytes))
}

// Receipts is a wrapper around a Receipt array.
type Receipts []*Receipt

// Len returns the number of receipts in this list.
func (r Receipts) Len() int { return len(r) }

// GetRlp returns the RLP encoding of one receipt from the list.
func (r Receipts) GetRlp(i int) []byte {
	bytes, err := rlp.EncodeToBytes(r[i])
	if err != nil {
		panic(err)
	}
	return bytes
}
