// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/message"
	"github.com/bitmark-inc/peerdata/peer"
	"github.com/bitmark-inc/peerdata/timestamp"
)

const now = timestamp.Timestamp(1600000000)

func makePeers(t *testing.T, n int) []*peer.Record {
	peers := make([]*peer.Record, 0, n)
	for i := 0; i < n; i += 1 {
		a, err := address.New(net.IPv4(192, 168, 1, byte(i+1)), uint16(2000+i))
		require.Nil(t, err, "address error")
		peers = append(peers, &peer.Record{
			Address:  a,
			LastSeen: now - timestamp.Timestamp(i),
		})
	}
	return peers
}

func TestListPeersRequest(t *testing.T) {
	req := message.NewListPeersRequest(25)

	buffer, err := req.Bytes()
	require.Nil(t, err, "bytes error")
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 25}, buffer, "wrong encoding")

	decoded, err := message.ListPeersRequestFromBytes(buffer)
	require.Nil(t, err, "decode error")
	assert.Equal(t, req, decoded, "round trip")

	_, err = message.ListPeersRequestFromBytes(buffer[:7])
	assert.Equal(t, fault.ErrInvalidLength, err, "short buffer")

	for _, count := range []uint32{0, message.MaximumPeerCount + 1} {
		_, err = message.NewListPeersRequest(count).Bytes()
		assert.Equal(t, fault.ErrInvalidCount, err, "count: %d", count)
	}
}

func TestListPeersResponse(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		peers := makePeers(t, n)
		res := message.NewListPeersResponse(peers)

		buffer, err := res.Bytes()
		require.Nil(t, err, "%d: bytes error", n)
		assert.Equal(t, 8+14*n, len(buffer), "%d: wrong length", n)

		decoded, err := message.ListPeersResponseFromBytes(buffer, now)
		require.Nil(t, err, "%d: decode error", n)
		require.Equal(t, n, len(decoded.Peers), "%d: wrong number of peers", n)
		for i, p := range peers {
			assert.True(t, p.Equal(decoded.Peers[i]), "%d: peer %d differs", n, i)
		}
	}
}

func TestListPeersResponseInvalid(t *testing.T) {
	peers := makePeers(t, 2)
	buffer, err := message.NewListPeersResponse(peers).Bytes()
	require.Nil(t, err, "bytes error")

	_, err = message.ListPeersResponseFromBytes(buffer[:len(buffer)-1], now)
	assert.Equal(t, fault.ErrInvalidLength, err, "truncated")

	_, err = message.ListPeersResponseFromBytes(append(buffer, 0), now)
	assert.Equal(t, fault.ErrInvalidLength, err, "trailing byte")

	// the first peer was seen at now
	_, err = message.ListPeersResponseFromBytes(buffer, now-1)
	assert.Equal(t, fault.ErrInvalidTime, err, "future peer accepted")

	res := message.NewListPeersResponse(peers)
	res.Count = 1
	assert.Equal(t, fault.ErrCountMismatch, res.Check(), "count mismatch")
}
