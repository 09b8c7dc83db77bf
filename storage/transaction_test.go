// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/peerdata/fault"
)

func TestTransactionCommit(t *testing.T) {
	db := setupTestDatabase(t)

	tx, err := db.Begin()
	assert.Nil(t, err, "begin error")

	assert.Nil(t, tx.Put(PeersByAddress, []byte("a"), []byte("one")), "put error")
	assert.Nil(t, tx.Put(PeersByRecency, []byte("r"), []byte("a")), "put error")

	// visible inside, not outside
	e, err := tx.Get(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "transaction get error")
	assert.Equal(t, []byte("a"), e.Key, "wrong key")
	assert.Equal(t, []byte("one"), e.Value, "wrong value")

	found, err := db.Has(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "uncommitted write visible")

	assert.Nil(t, tx.Commit(), "commit error")

	found, err = db.Has(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "has error")
	assert.True(t, found, "committed write not visible")
	found, err = db.Has(PeersByRecency, []byte("r"))
	assert.Nil(t, err, "has error")
	assert.True(t, found, "committed write not visible")
}

func TestTransactionAbort(t *testing.T) {
	db := setupTestDatabase(t)

	tx, err := db.Begin()
	assert.Nil(t, err, "begin error")
	assert.Nil(t, tx.Put(PeersByAddress, []byte("a"), []byte("one")), "put error")
	tx.Abort()

	found, err := db.Has(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "aborted write visible")

	// abort twice is harmless
	tx.Abort()
}

func TestTransactionDeleteHidesStored(t *testing.T) {
	db := setupTestDatabase(t)
	assert.Nil(t, db.Put(PeersByAddress, []byte("a"), []byte("one")), "put error")

	tx, err := db.Begin()
	assert.Nil(t, err, "begin error")
	defer tx.Abort()

	assert.Nil(t, tx.Delete(PeersByAddress, []byte("a")), "delete error")

	_, err = tx.Get(PeersByAddress, []byte("a"))
	assert.Equal(t, fault.ErrKeyNotFound, err, "deleted key readable")

	found, err := tx.Has(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "has error")
	assert.False(t, found, "deleted key present")

	// put after delete restores
	assert.Nil(t, tx.Put(PeersByAddress, []byte("a"), []byte("two")), "put error")
	e, err := tx.Get(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("two"), e.Value, "wrong value")
}

func TestTransactionFallsThrough(t *testing.T) {
	db := setupTestDatabase(t)
	assert.Nil(t, db.Put(PeersByAddress, []byte("a"), []byte("one")), "put error")

	tx, err := db.Begin()
	assert.Nil(t, err, "begin error")
	defer tx.Abort()

	found, err := tx.Has(PeersByAddress, []byte("a"))
	assert.Nil(t, err, "has error")
	assert.True(t, found, "stored key not seen")

	_, err = tx.Get(PeersByAddress, []byte("b"))
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong error")
}

func TestTransactionSingleUse(t *testing.T) {
	db := setupTestDatabase(t)

	tx, err := db.Begin()
	assert.Nil(t, err, "begin error")

	_, err = db.Begin()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second transaction started")

	assert.Nil(t, tx.Commit(), "commit error")

	assert.Equal(t, fault.ErrTransactionAlreadyEnded, tx.Commit(), "commit after end")
	assert.Equal(t, fault.ErrTransactionAlreadyEnded, tx.Put(PeersByAddress, []byte("a"), nil), "put after end")
	_, err = tx.Get(PeersByAddress, []byte("a"))
	assert.Equal(t, fault.ErrTransactionAlreadyEnded, err, "get after end")

	// released for reuse
	tx, err = db.Begin()
	assert.Nil(t, err, "begin after commit error")
	tx.Abort()
}

func TestTransactionCommitClosed(t *testing.T) {
	db, err := OpenMemory()
	assert.Nil(t, err, "open error")

	tx, err := db.Begin()
	assert.Nil(t, err, "begin error")
	assert.Nil(t, tx.Put(PeersByAddress, []byte("a"), []byte("one")), "put error")

	assert.Nil(t, db.Close(), "close error")
	assert.Equal(t, fault.ErrDatabaseIsNotSet, tx.Commit(), "commit on closed database")
}
