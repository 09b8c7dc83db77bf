// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/bitmark-inc/peerdata/storage Store,Transaction

// Reader - point lookups
type Reader interface {
	Get(Bucket, []byte) (Element, error)
	Has(Bucket, []byte) (bool, error)
}

// Writer - modifications
type Writer interface {
	Put(Bucket, []byte, []byte) error
	Delete(Bucket, []byte) error
}

// Scanner - ordered access to a whole bucket
type Scanner interface {
	Count(Bucket) (uint32, error)
	List(Bucket, uint32, uint32) ([][]byte, error)
	ListReverse(Bucket, uint32, uint32) ([][]byte, error)
	Prefix(Bucket, []byte) ([]Element, error)
}

// Handle - the full set of bucket operations
type Handle interface {
	Reader
	Writer
	Scanner
}

// Store - a handle that can also stage atomic writes
type Store interface {
	Handle
	Begin() (Transaction, error)
	Close() error
}

// Transaction - writes staged across any number of buckets and
// applied together by Commit
//
// reads see the staged writes; after Commit or Abort the
// transaction cannot be used again
type Transaction interface {
	Reader
	Writer
	Commit() error
	Abort()
}
