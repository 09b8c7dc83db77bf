// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/peerdata/data"
	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/message"
)

func encode(t *testing.T, m message.Message) []byte {
	buffer, err := m.Bytes()
	require.Nil(t, err, "bytes error")
	return buffer
}

func TestPeekMethod(t *testing.T) {
	m, err := message.PeekMethod([]byte{0, 0, 0, 3, 9, 9})
	assert.Nil(t, err, "peek error")
	assert.Equal(t, message.MethodGetData, m, "wrong method")
	assert.Equal(t, "GetData", m.String(), "wrong name")

	_, err = message.PeekMethod([]byte{0, 0, 3})
	assert.Equal(t, fault.ErrInvalidLength, err, "short buffer")

	for _, b := range [][]byte{{0, 0, 0, 0}, {0, 0, 0, 5}, {1, 0, 0, 0}} {
		_, err = message.PeekMethod(b)
		assert.Equal(t, fault.ErrInvalidMethod, err, "method: %x", b)
	}
}

func TestUnpackRequest(t *testing.T) {
	tests := []message.Message{
		message.NewListPeersRequest(10),
		message.NewListDataRequest(transactionID),
		message.NewGetDataRequest(transactionID),
	}

	for i, m := range tests {
		decoded, err := message.UnpackRequest(encode(t, m))
		require.Nil(t, err, "%d: unpack error", i)
		assert.IsType(t, m, decoded, "%d: wrong type", i)
		assert.Equal(t, m, decoded, "%d: round trip", i)
	}

	errorFrame := encode(t, message.NewErrorResponse(message.MethodGetData, "x"))
	_, err := message.UnpackRequest(errorFrame)
	assert.Equal(t, fault.ErrInvalidMethod, err, "error response as request")
}

func TestUnpackResponse(t *testing.T) {
	tests := []message.Message{
		message.NewListPeersResponse(makePeers(t, 3)),
		message.NewListDataResponse(makeItems("one", "two")),
		message.NewGetDataResponse(data.New([]byte("one"))),
		message.NewErrorResponse(message.MethodListData, "not found"),
	}

	for i, m := range tests {
		decoded, err := message.UnpackResponse(encode(t, m), now)
		require.Nil(t, err, "%d: unpack error", i)
		assert.IsType(t, m, decoded, "%d: wrong type", i)
		assert.Equal(t, encode(t, m), encode(t, decoded), "%d: not byte identical", i)
	}

	// decode failures return no message at all
	decoded, err := message.UnpackResponse([]byte{0, 0, 0, 2, 0, 0, 0, 1}, now)
	assert.Equal(t, fault.ErrInvalidLength, err, "wrong error")
	assert.Nil(t, decoded, "partial message")
}

func TestCodecConcurrent(t *testing.T) {
	items := makeItems("alpha", "beta", "gamma")
	expected := encode(t, message.NewListDataResponse(items))

	var g errgroup.Group
	for i := 0; i < 16; i += 1 {
		g.Go(func() error {
			for j := 0; j < 100; j += 1 {
				buffer, err := message.NewListDataResponse(items).Bytes()
				if nil != err {
					return err
				}
				res, err := message.UnpackResponse(buffer, now)
				if nil != err {
					return err
				}
				again, err := res.Bytes()
				if nil != err {
					return err
				}
				if string(expected) != string(again) {
					return fault.ErrChecksumMismatch
				}
			}
			return nil
		})
	}
	assert.Nil(t, g.Wait(), "concurrent codec error")
}
