// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/message"
)

func TestErrorResponse(t *testing.T) {
	res := message.NewErrorResponse(message.MethodGetData, "no such data")

	buffer, err := res.Bytes()
	require.Nil(t, err, "bytes error")
	assert.Equal(t, 8+len(res.Text), len(buffer), "wrong length")
	assert.Equal(t, uint32(message.MethodError), binary.BigEndian.Uint32(buffer), "method not first")
	assert.Equal(t, uint32(message.MethodGetData), binary.BigEndian.Uint32(buffer[4:]), "request method not second")

	decoded, err := message.ErrorResponseFromBytes(buffer)
	require.Nil(t, err, "decode error")
	assert.Equal(t, res, decoded, "round trip")
}

func TestErrorResponseTextLimit(t *testing.T) {
	res := message.NewErrorResponse(message.MethodListData, strings.Repeat("x", 20))
	_, err := res.Bytes()
	assert.Nil(t, err, "20 bytes rejected")

	res.Text = strings.Repeat("x", 21)
	err = res.Check()
	assert.Equal(t, fault.ErrMessageTooLong, err, "21 bytes accepted")
	assert.True(t, fault.IsErrLength(err), "wrong error class")
	_, err = res.Bytes()
	assert.Equal(t, fault.ErrMessageTooLong, err, "21 bytes encoded")
}

func TestErrorResponseDecodeLimit(t *testing.T) {
	frame := func(text string) []byte {
		buffer := make([]byte, 8, 8+len(text))
		binary.BigEndian.PutUint32(buffer, uint32(message.MethodError))
		binary.BigEndian.PutUint32(buffer[4:], uint32(message.MethodListPeers))
		return append(buffer, text...)
	}

	// longer than could be encoded, still within the frame
	res, err := message.ErrorResponseFromBytes(frame(strings.Repeat("y", 36)))
	require.Nil(t, err, "44 bytes rejected")
	assert.Equal(t, 36, len(res.Text), "wrong text")

	_, err = message.ErrorResponseFromBytes(frame(strings.Repeat("y", 37)))
	assert.Equal(t, fault.ErrInvalidLength, err, "45 bytes accepted")

	_, err = message.ErrorResponseFromBytes(frame("")[:7])
	assert.Equal(t, fault.ErrInvalidLength, err, "7 bytes accepted")

	_, err = message.ErrorResponseFromBytes(frame("\xff\xfe"))
	assert.Equal(t, fault.ErrInvalidUTF8, err, "invalid text accepted")
}

func TestErrorResponseMethods(t *testing.T) {
	res := message.NewErrorResponse(message.MethodGetData, "failed")
	res.Method = message.MethodGetData
	assert.Equal(t, fault.ErrInvalidMethod, res.Check(), "wrong method")

	for _, m := range []message.Method{message.MethodError, message.Method(99)} {
		res := message.NewErrorResponse(m, "failed")
		assert.Equal(t, fault.ErrInvalidMethod, res.Check(), "request method: %s", m)
	}
}

func TestErrorResponseUndecodedRequest(t *testing.T) {
	_, err := message.PeekMethod([]byte{0, 0})
	require.NotNil(t, err, "short frame accepted")

	res := message.NewErrorResponseFromError(message.MethodUnknown, err)
	require.Nil(t, res.Check(), "check error")

	buffer, err := res.Bytes()
	require.Nil(t, err, "encode error")
	assert.Equal(t, []byte{0, 0, 0, 4, 0, 0, 0, 0}, buffer[:8], "wrong header")

	back, err := message.ErrorResponseFromBytes(buffer)
	require.Nil(t, err, "decode error")
	assert.Equal(t, message.MethodUnknown, back.RequestMethod, "wrong request method")
	assert.Equal(t, res.Text, back.Text, "wrong text")
}

func TestErrorResponseFromError(t *testing.T) {
	res := message.NewErrorResponseFromError(message.MethodGetData, fault.ErrPeerNotFound)
	assert.Equal(t, "peer not found", res.Text, "short text changed")
	assert.Nil(t, res.Check(), "check error")

	res = message.NewErrorResponseFromError(message.MethodGetData, errors.New("a"+strings.Repeat("é", 10)))
	assert.Equal(t, "a"+strings.Repeat("é", 9), res.Text, "rune split")
	assert.Nil(t, res.Check(), "check error")
}
