// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"net"
	"testing"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/fault"
)

func TestBytes(t *testing.T) {
	a, err := address.Parse("10.1.2.3:8333")
	require.Nil(t, err, "parse error")

	expected := []byte{10, 1, 2, 3, 0x20, 0x8d}
	assert.Equal(t, expected, a.Bytes(), "wrong bytes")
	assert.Equal(t, []byte{10, 1, 2, 3}, a.Key(), "wrong key")

	back, err := address.FromBytes(expected)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, a, back, "wrong address")
	assert.Equal(t, "10.1.2.3:8333", back.String(), "wrong string")
}

func TestFromBytesInvalidLength(t *testing.T) {
	for _, n := range []int{0, 4, 5, 7, 14} {
		_, err := address.FromBytes(make([]byte, n))
		assert.Equal(t, fault.ErrInvalidLength, err, "length %d accepted", n)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"1.2.3.4",
		"1.2.3.4:65536",
		"1.2.3.4:port",
		"host.example:80",
		"[::1]:80",
	}
	for _, s := range tests {
		_, err := address.Parse(s)
		assert.NotNil(t, err, "accepted: %q", s)
	}
}

func TestKeys(t *testing.T) {
	key, err := address.KeyFromIP(net.ParseIP("192.168.0.1"))
	assert.Nil(t, err, "key error")
	assert.Equal(t, []byte{192, 168, 0, 1}, key, "wrong key")

	ip, err := address.IPFromKey(key)
	assert.Nil(t, err, "ip error")
	assert.True(t, ip.Equal(net.ParseIP("192.168.0.1")), "wrong ip: %s", ip)

	_, err = address.KeyFromIP(net.ParseIP("2001:db8::1"))
	assert.Equal(t, fault.ErrNotIPv4, err, "accepted IPv6")

	_, err = address.IPFromKey([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidLength, err, "accepted short key")
}

func TestMultiaddr(t *testing.T) {
	a, err := address.Parse("1.2.3.4:1234")
	require.Nil(t, err, "parse error")

	m, err := a.Multiaddr()
	require.Nil(t, err, "multiaddr error")
	assert.Equal(t, "/ip4/1.2.3.4/tcp/1234", m.String(), "wrong multiaddr")

	back, err := address.FromMultiaddr(m)
	assert.Nil(t, err, "from multiaddr error")
	assert.Equal(t, a, back, "wrong address")

	m6, _ := ma.NewMultiaddr("/ip6/5555:6666:7777:8888::/tcp/5678")
	_, err = address.FromMultiaddr(m6)
	assert.Equal(t, fault.ErrNotIPv4, err, "accepted IPv6 multiaddr")
}

func TestText(t *testing.T) {
	var a address.Address
	err := a.UnmarshalText([]byte("127.0.0.1:2136"))
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, uint16(2136), a.Port, "wrong port")

	text, err := a.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, "127.0.0.1:2136", string(text), "wrong text")
}
