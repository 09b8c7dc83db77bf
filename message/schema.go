// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/peerdata/data"
	"github.com/bitmark-inc/peerdata/digest"
	"github.com/bitmark-inc/peerdata/peer"
)

// every message
const (
	methodOffset = 0
	countLength  = 4
	sizeLength   = 4
)

// ListDataRequest
const (
	reservedOffset        = methodOffset + MethodLength
	reservedLength        = 40
	transactionIDOffset   = reservedOffset + reservedLength
	ListDataRequestLength = transactionIDOffset + digest.Length
)

// ListDataResponse and ListPeersResponse
const (
	countOffset       = methodOffset + MethodLength
	itemsOffset       = countOffset + countLength
	minimumListLength = itemsOffset
)

// GetDataRequest
const (
	checksumOffset       = methodOffset + MethodLength
	GetDataRequestLength = checksumOffset + digest.Length
)

// GetDataResponse
const (
	blobOffset                   = methodOffset + MethodLength
	MinimumGetDataResponseLength = blobOffset + data.MinimumLength
)

// ErrorResponse
const (
	requestMethodOffset        = methodOffset + MethodLength
	textOffset                 = requestMethodOffset + MethodLength
	MaximumErrorTextLength     = 20
	MaximumErrorResponseLength = 44
)

// ListPeersRequest
const (
	ListPeersRequestLength = countOffset + countLength
	MaximumPeerCount       = 100
)

// size of a ListPeersResponse carrying n records
func listPeersResponseLength(n uint32) int {
	return itemsOffset + int(n)*peer.RecordLength
}

// Message - a value that can be validated and encoded
type Message interface {
	Check() error
	Bytes() ([]byte, error)
}
