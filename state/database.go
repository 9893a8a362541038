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

package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/ethdb"
	lru "github.com/hashicorp/golang-lru"
)

// Number of recently read ledger entries kept in memory.
const defaultCacheSize = 4096

// Database wraps access to the persistent key/value store backing the
// ledger, with a read cache shared by every StateDB opened on it.
type Database interface {
	// Get returns the value stored under key, or nil when absent.
	Get(key []byte) ([]byte, error)
	// Write applies a set of changes atomically. A nil value deletes the key.
	Write(changes map[string][]byte) error
	// DiskDB returns the underlying store.
	DiskDB() ethdb.KeyValueStore
}

// NewDatabase creates a backing store for state with the default cache size.
func NewDatabase(db ethdb.KeyValueStore) Database {
	return NewDatabaseWithCache(db, defaultCacheSize)
}

// NewDatabaseWithCache creates a backing store for state caching up to
// size entries.
func NewDatabaseWithCache(db ethdb.KeyValueStore, size int) Database {
	cache, err := lru.New(size)
	if err != nil {
		panic(fmt.Sprintf("state: bad cache size %d: %v", size, err))
	}
	return &cachingDB{db: db, cache: cache}
}

type cachingDB struct {
	db    ethdb.KeyValueStore
	cache *lru.Cache
}

func (c *cachingDB) Get(key []byte) ([]byte, error) {
	if v, ok := c.cache.Get(string(key)); ok {
		return copyBytes(v.([]byte)), nil
	}
	has, err := c.db.Has(key)
	if err != nil {
		return nil, err
	}
	var value []byte
	if has {
		if value, err = c.db.Get(key); err != nil {
			return nil, err
		}
	}
	// A Write racing this read may have cached a newer value already.
	c.cache.ContainsOrAdd(string(key), copyBytes(value))
	return value, nil
}

func (c *cachingDB) Write(changes map[string][]byte) error {
	batch := c.db.NewBatch()
	for k, v := range changes {
		var err error
		if len(v) == 0 {
			err = batch.Delete([]byte(k))
		} else {
			err = batch.Put([]byte(k), v)
		}
		if err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		// The batch may be partially applied, drop everything it touched.
		for k := range changes {
			c.cache.Remove(k)
		}
		return err
	}
	for k, v := range changes {
		c.cache.Add(k, copyBytes(v))
	}
	return nil
}

func (c *cachingDB) DiskDB() ethdb.KeyValueStore { return c.db }

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}
