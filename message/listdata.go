// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/peerdata/data"
	"github.com/bitmark-inc/peerdata/digest"
	"github.com/bitmark-inc/peerdata/fault"
)

// ListDataRequest - ask for the blobs attached to a transaction
type ListDataRequest struct {
	Method        Method
	TransactionID digest.Digest
}

// NewListDataRequest - request for one transaction
func NewListDataRequest(transactionID digest.Digest) *ListDataRequest {
	return &ListDataRequest{
		Method:        MethodListData,
		TransactionID: transactionID,
	}
}

// Check - method must be ListData
func (req *ListDataRequest) Check() error {
	return checkMethod(req.Method, MethodListData)
}

// Bytes - the 108 byte binary form
func (req *ListDataRequest) Bytes() ([]byte, error) {
	if err := req.Check(); nil != err {
		return nil, err
	}
	buffer := make([]byte, ListDataRequestLength)
	putMethod(buffer, methodOffset, req.Method)
	copy(buffer[transactionIDOffset:], req.TransactionID[:])
	return buffer, nil
}

// ListDataRequestFromBytes - decode the 108 byte binary form
func ListDataRequestFromBytes(buffer []byte) (*ListDataRequest, error) {
	if ListDataRequestLength != len(buffer) {
		return nil, fault.ErrInvalidLength
	}

	for _, b := range buffer[reservedOffset:transactionIDOffset] {
		if 0 != b {
			return nil, fault.ErrReservedNotZero
		}
	}

	req := &ListDataRequest{
		Method: readMethod(buffer, methodOffset),
	}
	err := digest.FromBytes(&req.TransactionID, buffer[transactionIDOffset:])
	if nil != err {
		return nil, err
	}

	if err := req.Check(); nil != err {
		return nil, err
	}
	return req, nil
}

// ListDataResponse - the blobs attached to a transaction
type ListDataResponse struct {
	Method Method
	Count  uint32
	Items  []*data.Data
}

// NewListDataResponse - response carrying items in order
func NewListDataResponse(items []*data.Data) *ListDataResponse {
	return &ListDataResponse{
		Method: MethodListData,
		Count:  uint32(len(items)),
		Items:  items,
	}
}

// Check - method must be ListData and count must match the items
func (res *ListDataResponse) Check() error {
	if err := checkMethod(res.Method, MethodListData); nil != err {
		return err
	}
	if int(res.Count) != len(res.Items) {
		return fault.ErrCountMismatch
	}
	for _, item := range res.Items {
		if nil == item {
			return fault.ErrInvalidStructPointer
		}
		if err := item.Check(); nil != err {
			return err
		}
	}
	return nil
}

// Bytes - method ++ count ++ each item as size ++ blob
func (res *ListDataResponse) Bytes() ([]byte, error) {
	if err := res.Check(); nil != err {
		return nil, err
	}

	buffer := make([]byte, itemsOffset, 256)
	putMethod(buffer, methodOffset, res.Method)
	binary.BigEndian.PutUint32(buffer[countOffset:], res.Count)

	size := make([]byte, sizeLength)
	for _, item := range res.Items {
		blob, err := item.Bytes()
		if nil != err {
			return nil, err
		}
		if uint64(len(blob)) > math.MaxUint32 {
			return nil, fault.ErrMessageTooLong
		}
		binary.BigEndian.PutUint32(size, uint32(len(blob)))
		buffer = append(buffer, size...)
		buffer = append(buffer, blob...)
	}
	return buffer, nil
}

// ListDataResponseFromBytes - decode the variable length binary form
//
// the whole buffer must be consumed by exactly count items
func ListDataResponseFromBytes(buffer []byte) (*ListDataResponse, error) {
	if len(buffer) < minimumListLength {
		return nil, fault.ErrInvalidLength
	}

	res := &ListDataResponse{
		Method: readMethod(buffer, methodOffset),
		Count:  binary.BigEndian.Uint32(buffer[countOffset:]),
	}

	// every item needs at least its size field
	if uint64(res.Count) > uint64(len(buffer)-itemsOffset)/sizeLength {
		return nil, fault.ErrInvalidLength
	}

	blobs, err := splitItems(buffer[itemsOffset:], res.Count)
	if nil != err {
		return nil, err
	}

	res.Items = make([]*data.Data, 0, len(blobs))
	for _, blob := range blobs {
		item, err := data.FromBytes(blob)
		if nil != err {
			return nil, err
		}
		res.Items = append(res.Items, item)
	}

	if err := res.Check(); nil != err {
		return nil, err
	}
	return res, nil
}

// cut a variable section into count size prefixed items
func splitItems(buffer []byte, count uint32) ([][]byte, error) {
	items := make([][]byte, 0, count)
	n := 0
	for i := uint32(0); i < count; i += 1 {
		if len(buffer)-n < sizeLength {
			return nil, fault.ErrInvalidLength
		}
		size := uint64(binary.BigEndian.Uint32(buffer[n:]))
		n += sizeLength

		if uint64(len(buffer)-n) < size {
			return nil, fault.ErrInvalidLength
		}
		items = append(items, buffer[n:n+int(size)])
		n += int(size)
	}
	if len(buffer) != n {
		return nil, fault.ErrInvalidLength
	}
	return items, nil
}
