// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Bucket - a named partition of the database, identified by its key prefix
type Bucket byte

// exported buckets - keep prefixes unique
const (
	PeersByAddress Bucket = 'A'
	PeersByRecency Bucket = 'R'
)

var bucketNames = map[Bucket]string{
	PeersByAddress: "peers-by-address",
	PeersByRecency: "peers-by-recency",
}

// String - name of the bucket
func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "unknown"
}

func (b Bucket) valid() bool {
	_, ok := bucketNames[b]
	return ok
}

// prepend the prefix onto the key
func (b Bucket) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = byte(b)
	return append(prefixedKey, key...)
}

// all keys of the bucket starting with prefix
func (b Bucket) keyRange(prefix []byte) *ldb_util.Range {
	return ldb_util.BytesPrefix(b.prefixKey(prefix))
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// copy out of an iterator, removing the bucket prefix
func newElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
