// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/bitmark-inc/peerdata/fault"
)

// scan direction
const (
	forward = iota
	reverse
)

// run f on each element of the bucket whose key starts with prefix,
// stopping early when f returns false
func (d *Database) scan(bucket Bucket, prefix []byte, direction int, f func(key []byte, value []byte) bool) error {
	if !bucket.valid() {
		return fault.ErrInvalidBucket
	}

	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.ErrDatabaseIsNotSet
	}

	iter := d.db.NewIterator(bucket.keyRange(prefix), nil)
	defer iter.Release()

	var step func(iterator.Iterator) bool
	var ok bool
	if reverse == direction {
		ok = iter.Last()
		step = func(i iterator.Iterator) bool { return i.Prev() }
	} else {
		ok = iter.First()
		step = func(i iterator.Iterator) bool { return i.Next() }
	}

iterating:
	for ; ok; ok = step(iter) {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		if !f(iter.Key(), iter.Value()) {
			break iterating
		}
	}
	return errors.Wrapf(iter.Error(), "scan: %s", bucket)
}

// Count - number of elements in a bucket
func (d *Database) Count(bucket Bucket) (uint32, error) {
	n := uint32(0)
	err := d.scan(bucket, nil, forward, func(key []byte, value []byte) bool {
		if math.MaxUint32 == n {
			return false
		}
		n += 1
		return true
	})
	return n, err
}

// List - keys in ascending order, skipping the first skip keys
func (d *Database) List(bucket Bucket, skip uint32, count uint32) ([][]byte, error) {
	return d.list(bucket, skip, count, forward)
}

// ListReverse - keys in descending order, skipping the first skip keys
func (d *Database) ListReverse(bucket Bucket, skip uint32, count uint32) ([][]byte, error) {
	return d.list(bucket, skip, count, reverse)
}

func (d *Database) list(bucket Bucket, skip uint32, count uint32, direction int) ([][]byte, error) {
	if 0 == count {
		return nil, fault.ErrInvalidCount
	}

	keys := make([][]byte, 0, min(count, 100))
	n := uint32(0)
	err := d.scan(bucket, nil, direction, func(key []byte, value []byte) bool {
		n += 1
		if n <= skip {
			return true
		}
		keys = append(keys, newElement(key, nil).Key)
		return uint32(len(keys)) < count
	})
	if nil != err {
		return nil, err
	}
	return keys, nil
}

// Prefix - all elements whose key starts with prefix, in ascending order
func (d *Database) Prefix(bucket Bucket, prefix []byte) ([]Element, error) {
	results := make([]Element, 0, 1)
	err := d.scan(bucket, prefix, forward, func(key []byte, value []byte) bool {
		results = append(results, newElement(key, value))
		return true
	})
	if nil != err {
		return nil, err
	}
	return results, nil
}
