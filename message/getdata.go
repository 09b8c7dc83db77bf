// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/peerdata/data"
	"github.com/bitmark-inc/peerdata/digest"
	"github.com/bitmark-inc/peerdata/fault"
)

// GetDataRequest - ask for one blob by its checksum
type GetDataRequest struct {
	Method   Method
	Checksum digest.Digest
}

// NewGetDataRequest - request for one blob
func NewGetDataRequest(checksum digest.Digest) *GetDataRequest {
	return &GetDataRequest{
		Method:   MethodGetData,
		Checksum: checksum,
	}
}

// Check - method must be GetData
func (req *GetDataRequest) Check() error {
	return checkMethod(req.Method, MethodGetData)
}

// Bytes - the 68 byte binary form
func (req *GetDataRequest) Bytes() ([]byte, error) {
	if err := req.Check(); nil != err {
		return nil, err
	}
	buffer := make([]byte, GetDataRequestLength)
	putMethod(buffer, methodOffset, req.Method)
	copy(buffer[checksumOffset:], req.Checksum[:])
	return buffer, nil
}

// GetDataRequestFromBytes - decode the 68 byte binary form
func GetDataRequestFromBytes(buffer []byte) (*GetDataRequest, error) {
	if GetDataRequestLength != len(buffer) {
		return nil, fault.ErrInvalidLength
	}

	req := &GetDataRequest{
		Method: readMethod(buffer, methodOffset),
	}
	err := digest.FromBytes(&req.Checksum, buffer[checksumOffset:])
	if nil != err {
		return nil, err
	}

	if err := req.Check(); nil != err {
		return nil, err
	}
	return req, nil
}

// GetDataResponse - a single blob
type GetDataResponse struct {
	Method Method
	Item   *data.Data
}

// NewGetDataResponse - response carrying one blob
func NewGetDataResponse(item *data.Data) *GetDataResponse {
	return &GetDataResponse{
		Method: MethodGetData,
		Item:   item,
	}
}

// Check - method must be GetData and the blob must be intact
func (res *GetDataResponse) Check() error {
	if err := checkMethod(res.Method, MethodGetData); nil != err {
		return err
	}
	if nil == res.Item {
		return fault.ErrInvalidStructPointer
	}
	return res.Item.Check()
}

// Bytes - method ++ blob
func (res *GetDataResponse) Bytes() ([]byte, error) {
	if err := res.Check(); nil != err {
		return nil, err
	}
	blob, err := res.Item.Bytes()
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, blobOffset, blobOffset+len(blob))
	putMethod(buffer, methodOffset, res.Method)
	return append(buffer, blob...), nil
}

// GetDataResponseFromBytes - decode method ++ blob
func GetDataResponseFromBytes(buffer []byte) (*GetDataResponse, error) {
	if len(buffer) < MinimumGetDataResponseLength {
		return nil, fault.ErrInvalidLength
	}

	item, err := data.FromBytes(buffer[blobOffset:])
	if nil != err {
		return nil, err
	}

	res := &GetDataResponse{
		Method: readMethod(buffer, methodOffset),
		Item:   item,
	}
	if err := res.Check(); nil != err {
		return nil, err
	}
	return res, nil
}
