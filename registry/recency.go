// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/storage"
	"github.com/bitmark-inc/peerdata/timestamp"
)

// RecencyKeyLength - last seen followed by the tie-breaker
const (
	tieBreakerLength = 4
	RecencyKeyLength = timestamp.Length + tieBreakerLength
)

// last seen ++ random
func (r *Registry) newRecencyKey(lastSeen timestamp.Timestamp) ([]byte, error) {
	key := make([]byte, RecencyKeyLength)
	copy(key, lastSeen.Bytes())
	_, err := io.ReadFull(r.random, key[timestamp.Length:])
	if nil != err {
		return nil, errors.Wrap(err, "recency tie-breaker")
	}
	return key, nil
}

// timestamp part of a recency key
func recencyTime(key []byte) []byte {
	return key[:timestamp.Length]
}

// find the recency key for an address among those sharing its
// last seen time
func (r *Registry) findRecencyKey(lastSeen timestamp.Timestamp, addressKey []byte) ([]byte, error) {
	elements, err := r.store.Prefix(storage.PeersByRecency, lastSeen.Bytes())
	if nil != err {
		return nil, err
	}
	for _, e := range elements {
		if address.KeyLength == len(e.Value) && bytes.Equal(e.Value, addressKey) {
			return e.Key, nil
		}
	}
	return nil, fault.ErrRecencyNotFound
}
