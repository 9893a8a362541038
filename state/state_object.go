// Copyright 2018 The zipper Authors
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

package state

import (
	"bytes"

	"github.com/luozexuan/miden-base/types"
)

// accountPrefix + account id + key -> value
var accountPrefix = []byte("a")

func accountKey(addr types.AccountID, key string) []byte {
	k := make([]byte, 0, len(accountPrefix)+8+len(key))
	k = append(k, accountPrefix...)
	k = append(k, addr.Bytes()...)
	return append(k, key...)
}

// stateObject holds the ledger entries of one account that were touched by
// the current StateDB.
type stateObject struct {
	address types.AccountID
	db      *StateDB

	cacheAccount map[string][]byte // entries read from, or committed to, the database
	dirtyAccount map[string][]byte // entries modified since the last commit
}

func newObject(db *StateDB, address types.AccountID) *stateObject {
	return &stateObject{
		db:           db,
		address:      address,
		cacheAccount: make(map[string][]byte),
		dirtyAccount: make(map[string][]byte),
	}
}

// GetAccount returns the current value of key, nil if unset.
func (s *stateObject) GetAccount(db Database, key string) []byte {
	if value, dirty := s.dirtyAccount[key]; dirty {
		return value
	}
	if value, cached := s.cacheAccount[key]; cached {
		return value
	}
	value, err := db.Get(accountKey(s.address, key))
	if err != nil {
		s.db.setError(err)
		return nil
	}
	s.cacheAccount[key] = value
	return value
}

// SetAccount updates key, recording the previous value in the journal.
func (s *stateObject) SetAccount(db Database, key string, value []byte) {
	prev := s.GetAccount(db, key)
	if bytes.Equal(prev, value) {
		return
	}
	prevDirty, wasDirty := s.dirtyAccount[key]
	s.db.journal.append(accountChange{
		account:  s.address,
		key:      key,
		prev:     prevDirty,
		wasDirty: wasDirty,
	})
	s.dirtyAccount[key] = copyBytes(value)
}

// collect moves the dirty entries into changes and the clean cache.
func (s *stateObject) collect(changes map[string][]byte) {
	for key, value := range s.dirtyAccount {
		changes[string(accountKey(s.address, key))] = value
		s.cacheAccount[key] = value
	}
	s.dirtyAccount = make(map[string][]byte)
}
