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

import "github.com/luozexuan/miden-base/types"

// journalEntry is a modification entry in the state change journal that can
// be reverted on demand.
type journalEntry interface {
	revert(*StateDB)
}

// journal contains the list of state modifications applied since the last
// commit, in order.
type journal struct {
	entries []journalEntry
}

func (j *journal) append(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

// revert undoes every entry at or after snapshot, newest first.
func (j *journal) revert(statedb *StateDB, snapshot int) {
	for i := len(j.entries) - 1; i >= snapshot; i-- {
		j.entries[i].revert(statedb)
	}
	j.entries = j.entries[:snapshot]
}

func (j *journal) length() int { return len(j.entries) }

type accountChange struct {
	account  types.AccountID
	key      string
	prev     []byte
	wasDirty bool
}

func (ch accountChange) revert(s *StateDB) {
	obj := s.getStateObject(ch.account)
	if ch.wasDirty {
		obj.dirtyAccount[ch.key] = ch.prev
	} else {
		delete(obj.dirtyAccount, ch.key)
	}
}
