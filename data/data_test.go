// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/peerdata/data"
	"github.com/bitmark-inc/peerdata/fault"
)

func TestMinimumLength(t *testing.T) {
	buffer, err := data.New(nil).Bytes()
	require.Nil(t, err, "encode error")
	assert.Equal(t, data.MinimumLength, len(buffer), "empty blob size")

	d, err := data.FromBytes(buffer)
	require.Nil(t, err, "decode error")
	assert.Equal(t, 0, len(d.Payload), "payload not empty")
}

func TestRoundTrip(t *testing.T) {
	d := data.New([]byte("the quick brown fox"))

	buffer, err := d.Bytes()
	require.Nil(t, err, "encode error")

	back, err := data.FromBytes(buffer)
	require.Nil(t, err, "decode error")
	assert.True(t, d.Equal(back), "blob differs after round trip")
}

func TestChecksumMismatch(t *testing.T) {
	d := data.New([]byte("payload"))
	d.Payload[0] = 'P'

	_, err := d.Bytes()
	assert.Equal(t, fault.ErrChecksumMismatch, err, "encoded a corrupt blob")
}

func TestCorruptBuffer(t *testing.T) {
	buffer, err := data.New([]byte("payload")).Bytes()
	require.Nil(t, err, "encode error")

	// flip a payload byte
	corrupt := append([]byte{}, buffer...)
	corrupt[len(corrupt)-1] ^= 0xff
	_, err = data.FromBytes(corrupt)
	assert.Equal(t, fault.ErrChecksumMismatch, err, "accepted corrupt payload")

	_, err = data.FromBytes(buffer[:data.MinimumLength-1])
	assert.Equal(t, fault.ErrInvalidLength, err, "accepted short buffer")

	_, err = data.FromBytes(append(buffer, 0x00))
	assert.NotNil(t, err, "accepted trailing byte")

	_, err = data.FromBytes(buffer[:len(buffer)-1])
	assert.NotNil(t, err, "accepted truncated buffer")
}
