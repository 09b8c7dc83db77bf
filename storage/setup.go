// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/peerdata/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - a LevelDB database holding all buckets
type Database struct {
	sync.RWMutex
	db    *leveldb.DB
	inUse bool
}

var _ Store = (*Database)(nil)

// Open - open up a database file, creating it if necessary
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, errors.Wrapf(err, "open: %q", name)
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that only lives in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, errors.Wrap(err, "open memory")
	}
	return setup(db, ReadWrite)
}

// check the version and tag an empty database
func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	return &Database{
		db: db,
	}, nil
}

// Close - close the database connection
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()
	if nil == d.db {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// return:
//   version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// Begin - start the single write transaction
func (d *Database) Begin() (Transaction, error) {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if d.inUse {
		return nil, fault.ErrTransactionInUse
	}
	d.inUse = true

	return newTransaction(d), nil
}

// called by a transaction on commit or abort
func (d *Database) release() {
	d.Lock()
	d.inUse = false
	d.Unlock()
}
