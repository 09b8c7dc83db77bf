// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package data - opaque data blob exchanged between peers
//
// the binary form is a CBOR array: [checksum, payload]
// where checksum is the SHA3-512 digest of the payload
package data

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/peerdata/digest"
	"github.com/bitmark-inc/peerdata/fault"
)

// MinimumLength - size of the binary form of an empty payload
//
// array header(1) ++ byte string header(2) ++ checksum(64) ++ empty byte string(1)
const MinimumLength = 1 + 2 + digest.Length + 1

// Data - a blob and its checksum
type Data struct {
	_        struct{} `cbor:",toarray"`
	Checksum digest.Digest
	Payload  []byte
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if nil != err {
		panic(err)
	}
}

// New - create a blob from a payload
func New(payload []byte) *Data {
	p := make([]byte, len(payload))
	copy(p, payload)
	return &Data{
		Checksum: digest.New(p),
		Payload:  p,
	}
}

// Check - the checksum must match the payload
func (d *Data) Check() error {
	if digest.New(d.Payload) != d.Checksum {
		return fault.ErrChecksumMismatch
	}
	return nil
}

// Equal - compare checksum and payload
func (d *Data) Equal(other *Data) bool {
	return d.Checksum == other.Checksum && bytes.Equal(d.Payload, other.Payload)
}

// Bytes - the binary form
func (d *Data) Bytes() ([]byte, error) {
	if err := d.Check(); nil != err {
		return nil, err
	}
	payload := d.Payload
	if nil == payload {
		payload = []byte{}
	}
	return encMode.Marshal(&Data{
		Checksum: d.Checksum,
		Payload:  payload,
	})
}

// FromBytes - decode and verify the binary form
func FromBytes(buffer []byte) (*Data, error) {
	if len(buffer) < MinimumLength {
		return nil, fault.ErrInvalidLength
	}
	d := &Data{}
	if err := decMode.Unmarshal(buffer, d); nil != err {
		return nil, err
	}
	if nil == d.Payload {
		d.Payload = []byte{}
	}
	if err := d.Check(); nil != err {
		return nil, err
	}
	return d, nil
}
