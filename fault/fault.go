// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrChecksumMismatch        = RecordError("checksum mismatch")
	ErrCountMismatch           = LengthError("count does not match items")
	ErrDatabaseIsNotSet        = ProcessError("database is not set")
	ErrInvalidAddress          = InvalidError("invalid address")
	ErrInvalidBucket           = InvalidError("invalid bucket")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidLength           = LengthError("invalid length")
	ErrInvalidMethod           = InvalidError("invalid method")
	ErrInvalidRecencyKey       = LengthError("invalid recency key")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidTime             = InvalidError("invalid time")
	ErrInvalidUTF8             = InvalidError("invalid utf-8 text")
	ErrKeyNotFound             = NotFoundError("key not found")
	ErrMessageTooLong          = LengthError("message too long")
	ErrNotIPv4                 = InvalidError("not an IPv4 address")
	ErrPeerAlreadyFound        = ExistsError("peer already found")
	ErrPeerNotFound            = NotFoundError("peer not found")
	ErrRecencyKeyExists        = ExistsError("recency key already found")
	ErrRecencyNotFound         = NotFoundError("recency entry not found")
	ErrReservedNotZero         = InvalidError("reserved bytes are not zero")
	ErrTransactionAlreadyEnded = ProcessError("transaction already ended")
	ErrTransactionInUse        = ProcessError("transaction already in use")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping

func IsErrExists(e error) bool {
	var t ExistsError
	return errors.As(e, &t)
}

func IsErrInvalid(e error) bool {
	var t InvalidError
	return errors.As(e, &t)
}

func IsErrLength(e error) bool {
	var t LengthError
	return errors.As(e, &t)
}

func IsErrNotFound(e error) bool {
	var t NotFoundError
	return errors.As(e, &t)
}

func IsErrProcess(e error) bool {
	var t ProcessError
	return errors.As(e, &t)
}

func IsErrRecord(e error) bool {
	var t RecordError
	return errors.As(e, &t)
}
