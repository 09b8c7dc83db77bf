// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/peerdata/fault"
)

// Put - store a key/value bytes pair to the database
func (d *Database) Put(bucket Bucket, key []byte, value []byte) error {
	if !bucket.valid() {
		return fault.ErrInvalidBucket
	}
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.ErrDatabaseIsNotSet
	}
	err := d.db.Put(bucket.prefixKey(key), value, nil)
	return errors.Wrapf(err, "put: %s", bucket)
}

// Delete - remove a key from the database
func (d *Database) Delete(bucket Bucket, key []byte) error {
	if !bucket.valid() {
		return fault.ErrInvalidBucket
	}
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.ErrDatabaseIsNotSet
	}
	err := d.db.Delete(bucket.prefixKey(key), nil)
	return errors.Wrapf(err, "delete: %s", bucket)
}

// Get - read a value for a given key
func (d *Database) Get(bucket Bucket, key []byte) (Element, error) {
	if !bucket.valid() {
		return Element{}, fault.ErrInvalidBucket
	}
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return Element{}, fault.ErrDatabaseIsNotSet
	}
	value, err := d.db.Get(bucket.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return Element{}, fault.ErrKeyNotFound
	}
	if nil != err {
		return Element{}, errors.Wrapf(err, "get: %s", bucket)
	}

	dataKey := make([]byte, len(key))
	copy(dataKey, key)
	return Element{
		Key:   dataKey,
		Value: value,
	}, nil
}

// Has - check if a key exists
func (d *Database) Has(bucket Bucket, key []byte) (bool, error) {
	if !bucket.valid() {
		return false, fault.ErrInvalidBucket
	}
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return false, fault.ErrDatabaseIsNotSet
	}
	found, err := d.db.Has(bucket.prefixKey(key), nil)
	if nil != err {
		return false, errors.Wrapf(err, "has: %s", bucket)
	}
	return found, nil
}
