// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/binary"

	"github.com/bitmark-inc/peerdata/fault"
)

// Method - the operation a message belongs to
type Method uint32

// method codes
const (
	MethodUnknown   Method = 0
	MethodListPeers Method = 1
	MethodListData  Method = 2
	MethodGetData   Method = 3
	MethodError     Method = 4
)

// MethodLength - size of the method field
const MethodLength = 4

var methodNames = map[Method]string{
	MethodUnknown:   "Unknown",
	MethodListPeers: "ListPeers",
	MethodListData:  "ListData",
	MethodGetData:   "GetData",
	MethodError:     "Error",
}

// String - name of the method
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "Unknown"
}

// IsRequest - true for methods a peer may ask for
func (m Method) IsRequest() bool {
	switch m {
	case MethodListPeers, MethodListData, MethodGetData:
		return true
	default:
		return false
	}
}

// PeekMethod - read the method of an encoded message
func PeekMethod(buffer []byte) (Method, error) {
	if len(buffer) < MethodLength {
		return MethodUnknown, fault.ErrInvalidLength
	}
	m := readMethod(buffer, methodOffset)
	if _, ok := methodNames[m]; !ok || MethodUnknown == m {
		return MethodUnknown, fault.ErrInvalidMethod
	}
	return m, nil
}

func readMethod(buffer []byte, offset int) Method {
	return Method(binary.BigEndian.Uint32(buffer[offset:]))
}

func putMethod(buffer []byte, offset int, m Method) {
	binary.BigEndian.PutUint32(buffer[offset:], uint32(m))
}

// verify the method field of a message
func checkMethod(actual Method, expected Method) error {
	if expected != actual {
		return fault.ErrInvalidMethod
	}
	return nil
}

// MarshalText - method name for JSON output
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
