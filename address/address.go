// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - IPv4 peer address
//
// binary form is the 4 IP octets ++ big endian 2 byte port
package address

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"

	ma "github.com/multiformats/go-multiaddr"

	"github.com/bitmark-inc/peerdata/fault"
)

// sizes of the binary forms
const (
	KeyLength = net.IPv4len
	Length    = KeyLength + 2
)

// Address - IPv4 address and port
type Address struct {
	IP   [KeyLength]byte
	Port uint16
}

// New - create from an IP and port, the IP must be IPv4
func New(ip net.IP, port uint16) (Address, error) {
	key, err := KeyFromIP(ip)
	if nil != err {
		return Address{}, err
	}
	a := Address{Port: port}
	copy(a.IP[:], key)
	return a, nil
}

// Parse - decode "a.b.c.d:port"
func Parse(s string) (Address, error) {
	host, portText, err := net.SplitHostPort(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	port, err := strconv.ParseUint(portText, 10, 16)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return Address{}, fault.ErrInvalidAddress
	}
	return New(ip, uint16(port))
}

// FromMultiaddr - decode /ip4/a.b.c.d/tcp/port
func FromMultiaddr(m ma.Multiaddr) (Address, error) {
	host, err := m.ValueForProtocol(ma.P_IP4)
	if nil != err {
		return Address{}, fault.ErrNotIPv4
	}
	portText, err := m.ValueForProtocol(ma.P_TCP)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	return Parse(net.JoinHostPort(host, portText))
}

// Multiaddr - encode as /ip4/a.b.c.d/tcp/port
func (a Address) Multiaddr() (ma.Multiaddr, error) {
	return ma.NewMultiaddr(fmt.Sprintf("/ip4/%s/tcp/%d", a.NetIP(), a.Port))
}

// NetIP - the IP as a net.IP
func (a Address) NetIP() net.IP {
	return net.IPv4(a.IP[0], a.IP[1], a.IP[2], a.IP[3]).To4()
}

// Key - the 4 IP octets used to index peers
func (a Address) Key() []byte {
	key := make([]byte, KeyLength)
	copy(key, a.IP[:])
	return key
}

// KeyFromIP - the 4 octet key for an IPv4 address
func KeyFromIP(ip net.IP) ([]byte, error) {
	ip4 := ip.To4()
	if nil == ip4 {
		return nil, fault.ErrNotIPv4
	}
	key := make([]byte, KeyLength)
	copy(key, ip4)
	return key, nil
}

// IPFromKey - reverse of KeyFromIP
func IPFromKey(key []byte) (net.IP, error) {
	if KeyLength != len(key) {
		return nil, fault.ErrInvalidLength
	}
	return net.IPv4(key[0], key[1], key[2], key[3]).To4(), nil
}

// Bytes - 6 byte binary form
func (a Address) Bytes() []byte {
	buffer := make([]byte, Length)
	copy(buffer, a.IP[:])
	binary.BigEndian.PutUint16(buffer[KeyLength:], a.Port)
	return buffer
}

// FromBytes - decode the 6 byte binary form
func FromBytes(buffer []byte) (Address, error) {
	if Length != len(buffer) {
		return Address{}, fault.ErrInvalidLength
	}
	a := Address{
		Port: binary.BigEndian.Uint16(buffer[KeyLength:]),
	}
	copy(a.IP[:], buffer[:KeyLength])
	return a, nil
}

// String - "a.b.c.d:port" for the fmt package (for %s)
func (a Address) String() string {
	return net.JoinHostPort(a.NetIP().String(), strconv.Itoa(int(a.Port)))
}

// MarshalText - "a.b.c.d:port"
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - parse "a.b.c.d:port"
func (a *Address) UnmarshalText(s []byte) error {
	parsed, err := Parse(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
