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

// Package state provides the journaled key/value view of the ledger that a
// transaction executes against.
package state

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/log"
	"github.com/luozexuan/miden-base/types"
)

type revision struct {
	id           int
	journalIndex int
}

// StateDB buffers ledger writes on top of a Database. Writes can be rolled
// back to any snapshot and are only persisted by Commit.
type StateDB struct {
	db           Database
	stateObjects map[types.AccountID]*stateObject

	// DB error.
	// State objects are used by the ledger, which is unable to deal with
	// database-level errors. The first error is memoized here and returned
	// by Commit.
	dbErr error

	journal        *journal
	validRevisions []revision
	nextRevisionID int
}

// New creates a new state view over db.
func New(db Database) *StateDB {
	return &StateDB{
		db:           db,
		stateObjects: make(map[types.AccountID]*stateObject),
		journal:      new(journal),
	}
}

func (s *StateDB) setError(err error) {
	if s.dbErr == nil {
		s.dbErr = err
	}
}

// Error returns the first database error encountered, if any.
func (s *StateDB) Error() error { return s.dbErr }

// Database returns the backing database.
func (s *StateDB) Database() Database { return s.db }

func (s *StateDB) getStateObject(addr types.AccountID) *stateObject {
	obj := s.stateObjects[addr]
	if obj == nil {
		obj = newObject(s, addr)
		s.stateObjects[addr] = obj
	}
	return obj
}

// GetAccount returns the value stored under key for addr, nil if unset.
func (s *StateDB) GetAccount(addr types.AccountID, key string) []byte {
	return s.getStateObject(addr).GetAccount(s.db, key)
}

// SetAccount stores value under key for addr. An empty value deletes the key.
func (s *StateDB) SetAccount(addr types.AccountID, key string, value []byte) {
	s.getStateObject(addr).SetAccount(s.db, key, value)
}

// Snapshot returns an identifier for the current revision of the state.
func (s *StateDB) Snapshot() int {
	id := s.nextRevisionID
	s.nextRevisionID++
	s.validRevisions = append(s.validRevisions, revision{id, s.journal.length()})
	return id
}

// RevertToSnapshot reverts all state changes made since the given revision.
func (s *StateDB) RevertToSnapshot(revid int) {
	// Find the snapshot in the stack of valid snapshots.
	idx := sort.Search(len(s.validRevisions), func(i int) bool {
		return s.validRevisions[i].id >= revid
	})
	if idx == len(s.validRevisions) || s.validRevisions[idx].id != revid {
		panic(fmt.Errorf("revision id %v cannot be reverted", revid))
	}
	snapshot := s.validRevisions[idx].journalIndex

	// Replay the journal to undo changes and remove invalidated snapshots
	s.journal.revert(s, snapshot)
	s.validRevisions = s.validRevisions[:idx]
}

// Commit writes every pending change to the database.
func (s *StateDB) Commit() error {
	return s.CommitWith(nil)
}

// CommitWith writes every pending change to the database in one batch with
// the raw records, keyed outside the ledger key space.
func (s *StateDB) CommitWith(records map[string][]byte) error {
	if s.dbErr != nil {
		return s.dbErr
	}
	changes := make(map[string][]byte, len(records))
	for k, v := range records {
		changes[k] = v
	}
	for _, obj := range s.stateObjects {
		obj.collect(changes)
	}
	s.journal = new(journal)
	s.validRevisions = s.validRevisions[:0]
	if len(changes) == 0 {
		return nil
	}
	if err := s.db.Write(changes); err != nil {
		return err
	}
	log.Debug("Committed ledger state", "entries", len(changes))
	return nil
}
