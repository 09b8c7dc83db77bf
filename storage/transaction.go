// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/peerdata/fault"
)

type transaction struct {
	sync.Mutex
	database *Database
	batch    *leveldb.Batch
	cache    Cache
	ended    bool
}

func newTransaction(database *Database) *transaction {
	return &transaction{
		database: database,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

// Put - stage a key/value pair
func (t *transaction) Put(bucket Bucket, key []byte, value []byte) error {
	if !bucket.valid() {
		return fault.ErrInvalidBucket
	}
	t.Lock()
	defer t.Unlock()
	if t.ended {
		return fault.ErrTransactionAlreadyEnded
	}

	prefixedKey := bucket.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.cache.Set(dbPut, string(prefixedKey), stored)
	t.batch.Put(prefixedKey, stored)
	return nil
}

// Delete - stage a removal
func (t *transaction) Delete(bucket Bucket, key []byte) error {
	if !bucket.valid() {
		return fault.ErrInvalidBucket
	}
	t.Lock()
	defer t.Unlock()
	if t.ended {
		return fault.ErrTransactionAlreadyEnded
	}

	prefixedKey := bucket.prefixKey(key)
	t.cache.Set(dbDelete, string(prefixedKey), nil)
	t.batch.Delete(prefixedKey)
	return nil
}

// Get - staged value if any, otherwise the stored one
func (t *transaction) Get(bucket Bucket, key []byte) (Element, error) {
	if !bucket.valid() {
		return Element{}, fault.ErrInvalidBucket
	}
	t.Lock()
	defer t.Unlock()
	if t.ended {
		return Element{}, fault.ErrTransactionAlreadyEnded
	}

	value, op, found := t.cache.Get(string(bucket.prefixKey(key)))
	if found {
		if dbDelete == op {
			return Element{}, fault.ErrKeyNotFound
		}
		e := newElement(bucket.prefixKey(key), value)
		return e, nil
	}
	return t.database.Get(bucket, key)
}

// Has - staged state if any, otherwise the stored one
func (t *transaction) Has(bucket Bucket, key []byte) (bool, error) {
	if !bucket.valid() {
		return false, fault.ErrInvalidBucket
	}
	t.Lock()
	defer t.Unlock()
	if t.ended {
		return false, fault.ErrTransactionAlreadyEnded
	}

	_, op, found := t.cache.Get(string(bucket.prefixKey(key)))
	if found {
		return dbPut == op, nil
	}
	return t.database.Has(bucket, key)
}

// Commit - write all staged changes as a single batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()
	if t.ended {
		return fault.ErrTransactionAlreadyEnded
	}
	t.ended = true
	defer t.finish()

	t.database.RLock()
	defer t.database.RUnlock()
	if nil == t.database.db {
		return fault.ErrDatabaseIsNotSet
	}
	err := t.database.db.Write(t.batch, nil)
	return errors.Wrap(err, "commit")
}

// Abort - discard all staged changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	if t.ended {
		return
	}
	t.ended = true
	t.finish()
}

func (t *transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.database.release()
}
