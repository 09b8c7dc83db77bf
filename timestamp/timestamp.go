// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package timestamp - fixed width seconds timestamp
//
// stored on the wire and in the database as 8 byte big endian
// seconds since the Unix epoch, so byte order matches time order
package timestamp

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/bitmark-inc/peerdata/fault"
)

// Length - number of bytes in the binary form
const Length = 8

// Timestamp - seconds since the Unix epoch
type Timestamp int64

// Clock - source of the current time for validation
type Clock func() Timestamp

// Now - the current time truncated to seconds
func Now() Timestamp {
	return Timestamp(time.Now().Unix())
}

// FromTime - convert a time.Time, which must not be before the epoch
func FromTime(t time.Time) (Timestamp, error) {
	ts := Timestamp(t.Unix())
	if !ts.IsValid() {
		return 0, fault.ErrInvalidTime
	}
	return ts, nil
}

// IsValid - true if the binary form can be decoded
func (ts Timestamp) IsValid() bool {
	return ts >= 0
}

// Time - convert to a UTC time.Time
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// After - true if ts is strictly later than other
func (ts Timestamp) After(other Timestamp) bool {
	return ts > other
}

// Add - offset by a duration, truncated to seconds
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return ts + Timestamp(d/time.Second)
}

// Bytes - 8 byte big endian form
func (ts Timestamp) Bytes() []byte {
	buffer := make([]byte, Length)
	binary.BigEndian.PutUint64(buffer, uint64(ts))
	return buffer
}

// FromBytes - decode the 8 byte big endian form
func FromBytes(buffer []byte) (Timestamp, error) {
	if Length != len(buffer) {
		return 0, fault.ErrInvalidLength
	}
	n := binary.BigEndian.Uint64(buffer)
	if n > math.MaxInt64 {
		return 0, fault.ErrInvalidTime
	}
	return Timestamp(n), nil
}

// String - RFC 3339 for the fmt package (for %s)
func (ts Timestamp) String() string {
	return ts.Time().Format(time.RFC3339)
}

// MarshalText - RFC 3339 text
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText - parse RFC 3339 text
func (ts *Timestamp) UnmarshalText(s []byte) error {
	t, err := time.Parse(time.RFC3339, string(s))
	if nil != err {
		return err
	}
	n, err := FromTime(t)
	if nil != err {
		return err
	}
	*ts = n
	return nil
}
