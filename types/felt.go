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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/luozexuan/miden-base/params"
)

// Felt is a single operand stack element. Valid values are strictly below
// params.FieldModulus.
type Felt uint64

// Valid reports whether f is a canonical field element.
func (f Felt) Valid() bool { return uint64(f) < params.FieldModulus }

// NewFelt returns v as a field element, rejecting non-canonical values.
func NewFelt(v uint64) (Felt, error) {
	if v >= params.FieldModulus {
		return 0, fmt.Errorf("value %d is not a canonical field element", v)
	}
	return Felt(v), nil
}

// feltFromBytes reduces 8 big-endian bytes into the field.
func feltFromBytes(b []byte) Felt {
	return Felt(binary.BigEndian.Uint64(b) % params.FieldModulus)
}

// Word is a group of four field elements. When a word is pushed onto the
// operand stack element 0 goes first, so element 3 ends up on top.
type Word [params.WordSize]Felt

// EmptyWord is the all-zero word.
var EmptyWord = Word{}

// Valid reports whether every element of w is canonical.
func (w Word) Valid() bool {
	for _, f := range w {
		if !f.Valid() {
			return false
		}
	}
	return true
}

// Bytes returns the 32 byte big-endian encoding of w.
func (w Word) Bytes() []byte {
	b := make([]byte, 8*params.WordSize)
	for i, f := range w {
		binary.BigEndian.PutUint64(b[8*i:], uint64(f))
	}
	return b
}

// Hash returns keccak256 over the byte encoding of w.
func (w Word) Hash() common.Hash {
	return crypto.Keccak256Hash(w.Bytes())
}

func (w Word) String() string {
	parts := make([]string, len(w))
	for i, f := range w {
		parts[i] = fmt.Sprintf("%d", uint64(f))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// wordFromHash reduces a 32 byte digest into a word.
func wordFromHash(h common.Hash) Word {
	var w Word
	for i := range w {
		w[i] = feltFromBytes(h[8*i : 8*i+8])
	}
	return w
}
