// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"encoding/json"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/timestamp"
)

// RecordLength - size of the binary form
const RecordLength = address.Length + timestamp.Length

// Record - a peer and the last time it was seen online
type Record struct {
	Address  address.Address
	LastSeen timestamp.Timestamp
}

// New - a record seen now
func New(a address.Address) *Record {
	return &Record{
		Address:  a,
		LastSeen: timestamp.Now(),
	}
}

// Check - last seen must not be before the epoch or after the
// validation time
func (r *Record) Check(now timestamp.Timestamp) error {
	if !r.LastSeen.IsValid() || r.LastSeen.After(now) {
		return fault.ErrInvalidTime
	}
	return nil
}

// Equal - all fields match
func (r *Record) Equal(other *Record) bool {
	return r.Address == other.Address && r.LastSeen == other.LastSeen
}

// Key - the by-address index key
func (r *Record) Key() []byte {
	return r.Address.Key()
}

// Bytes - the 14 byte binary form
func (r *Record) Bytes() []byte {
	buffer := make([]byte, 0, RecordLength)
	buffer = append(buffer, r.Address.Bytes()...)
	return append(buffer, r.LastSeen.Bytes()...)
}

// RecordFromBytes - decode and validate against now
func RecordFromBytes(buffer []byte, now timestamp.Timestamp) (*Record, error) {
	if RecordLength != len(buffer) {
		return nil, fault.ErrInvalidLength
	}

	a, err := address.FromBytes(buffer[:address.Length])
	if nil != err {
		return nil, err
	}
	ts, err := timestamp.FromBytes(buffer[address.Length:])
	if nil != err {
		return nil, err
	}

	r := &Record{
		Address:  a,
		LastSeen: ts,
	}
	if err := r.Check(now); nil != err {
		return nil, err
	}
	return r, nil
}

type jsonRecord struct {
	Address  address.Address     `json:"address"`
	LastSeen timestamp.Timestamp `json:"lastSeen"`
}

// MarshalJSON - diagnostic form
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRecord{
		Address:  r.Address,
		LastSeen: r.LastSeen,
	})
}

// UnmarshalJSON - diagnostic form
//
// no time check is made here, callers validate with Check
func (r *Record) UnmarshalJSON(s []byte) error {
	var j jsonRecord
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}
	r.Address = j.Address
	r.LastSeen = j.LastSeen
	return nil
}
