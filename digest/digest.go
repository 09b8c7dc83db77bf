// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - 64 byte SHA3-512 digest
//
// identifies transactions and data blobs on the wire
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/peerdata/fault"
)

// Length - number of bytes in the digest
const Length = 64

// Digest - type for a digest
type Digest [Length]byte

// New - create a digest from a byte slice
//
// SHA3-512 Hash
func New(record []byte) Digest {
	return Digest(sha3.Sum512(record))
}

// Bytes - convert a binary digest to byte slice
func (d Digest) Bytes() []byte {
	return d[:]
}

// IsZero - true if no byte is set
func (d Digest) IsZero() bool {
	return Digest{} == d
}

// String - hex string for use by the fmt package (for %s)
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (d Digest) GoString() string {
	return "<SHA3-512:" + hex.EncodeToString(d[:]) + ">"
}

// MarshalText - convert digest to hex text
func (d Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (d *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrInvalidLength
	}
	_, err := hex.Decode(d[:], s)
	return err
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(d *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidLength
	}
	copy(d[:], buffer)
	return nil
}
