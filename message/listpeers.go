// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/binary"

	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/peer"
	"github.com/bitmark-inc/peerdata/timestamp"
)

// ListPeersRequest - ask for the most recently seen peers
type ListPeersRequest struct {
	Method Method
	Count  uint32
}

// NewListPeersRequest - request for up to count peers
func NewListPeersRequest(count uint32) *ListPeersRequest {
	return &ListPeersRequest{
		Method: MethodListPeers,
		Count:  count,
	}
}

// Check - method must be ListPeers and count in 1..MaximumPeerCount
func (req *ListPeersRequest) Check() error {
	if err := checkMethod(req.Method, MethodListPeers); nil != err {
		return err
	}
	if 0 == req.Count || req.Count > MaximumPeerCount {
		return fault.ErrInvalidCount
	}
	return nil
}

// Bytes - the 8 byte binary form
func (req *ListPeersRequest) Bytes() ([]byte, error) {
	if err := req.Check(); nil != err {
		return nil, err
	}
	buffer := make([]byte, ListPeersRequestLength)
	putMethod(buffer, methodOffset, req.Method)
	binary.BigEndian.PutUint32(buffer[countOffset:], req.Count)
	return buffer, nil
}

// ListPeersRequestFromBytes - decode the 8 byte binary form
func ListPeersRequestFromBytes(buffer []byte) (*ListPeersRequest, error) {
	if ListPeersRequestLength != len(buffer) {
		return nil, fault.ErrInvalidLength
	}
	req := &ListPeersRequest{
		Method: readMethod(buffer, methodOffset),
		Count:  binary.BigEndian.Uint32(buffer[countOffset:]),
	}
	if err := req.Check(); nil != err {
		return nil, err
	}
	return req, nil
}

// ListPeersResponse - peer records, most recently seen first
type ListPeersResponse struct {
	Method Method
	Count  uint32
	Peers  []*peer.Record
}

// NewListPeersResponse - response carrying records in order
func NewListPeersResponse(peers []*peer.Record) *ListPeersResponse {
	return &ListPeersResponse{
		Method: MethodListPeers,
		Count:  uint32(len(peers)),
		Peers:  peers,
	}
}

// Check - method must be ListPeers and count must match the records
//
// record times are checked against the clock when decoding
func (res *ListPeersResponse) Check() error {
	if err := checkMethod(res.Method, MethodListPeers); nil != err {
		return err
	}
	if int(res.Count) != len(res.Peers) {
		return fault.ErrCountMismatch
	}
	if res.Count > MaximumPeerCount {
		return fault.ErrInvalidCount
	}
	for _, p := range res.Peers {
		if nil == p {
			return fault.ErrInvalidStructPointer
		}
	}
	return nil
}

// Bytes - method ++ count ++ records
func (res *ListPeersResponse) Bytes() ([]byte, error) {
	if err := res.Check(); nil != err {
		return nil, err
	}
	buffer := make([]byte, itemsOffset, listPeersResponseLength(res.Count))
	putMethod(buffer, methodOffset, res.Method)
	binary.BigEndian.PutUint32(buffer[countOffset:], res.Count)
	for _, p := range res.Peers {
		buffer = append(buffer, p.Bytes()...)
	}
	return buffer, nil
}

// ListPeersResponseFromBytes - decode and reject records seen after now
func ListPeersResponseFromBytes(buffer []byte, now timestamp.Timestamp) (*ListPeersResponse, error) {
	if len(buffer) < minimumListLength {
		return nil, fault.ErrInvalidLength
	}

	res := &ListPeersResponse{
		Method: readMethod(buffer, methodOffset),
		Count:  binary.BigEndian.Uint32(buffer[countOffset:]),
	}
	if res.Count > MaximumPeerCount {
		return nil, fault.ErrInvalidCount
	}
	if listPeersResponseLength(res.Count) != len(buffer) {
		return nil, fault.ErrInvalidLength
	}

	res.Peers = make([]*peer.Record, 0, res.Count)
	for n := itemsOffset; n < len(buffer); n += peer.RecordLength {
		p, err := peer.RecordFromBytes(buffer[n:n+peer.RecordLength], now)
		if nil != err {
			return nil, err
		}
		res.Peers = append(res.Peers, p)
	}

	if err := res.Check(); nil != err {
		return nil, err
	}
	return res, nil
}
