// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/peerdata/fault"
)

// ErrorResponse - report a failed request to the peer that sent it
//
// RequestMethod is MethodUnknown when the request frame could not be
// decoded far enough to read its method
type ErrorResponse struct {
	Method        Method
	RequestMethod Method
	Text          string
}

// NewErrorResponse - error reply to a request
func NewErrorResponse(requestMethod Method, text string) *ErrorResponse {
	return &ErrorResponse{
		Method:        MethodError,
		RequestMethod: requestMethod,
		Text:          text,
	}
}

// NewErrorResponseFromError - error reply carrying as much of the
// error text as fits
func NewErrorResponseFromError(requestMethod Method, err error) *ErrorResponse {
	return NewErrorResponse(requestMethod, truncateText(strings.ToValidUTF8(err.Error(), "?"), MaximumErrorTextLength))
}

// Check - method, request method and text length must be valid
func (res *ErrorResponse) Check() error {
	return res.check(MaximumErrorTextLength)
}

// decoding accepts any text that fits the frame
func (res *ErrorResponse) check(maximumText int) error {
	if err := checkMethod(res.Method, MethodError); nil != err {
		return err
	}
	if MethodUnknown != res.RequestMethod && !res.RequestMethod.IsRequest() {
		return fault.ErrInvalidMethod
	}
	if len(res.Text) > maximumText {
		return fault.ErrMessageTooLong
	}
	if !utf8.ValidString(res.Text) {
		return fault.ErrInvalidUTF8
	}
	return nil
}

// Bytes - method ++ request method ++ text
func (res *ErrorResponse) Bytes() ([]byte, error) {
	if err := res.Check(); nil != err {
		return nil, err
	}
	buffer := make([]byte, textOffset, textOffset+len(res.Text))
	putMethod(buffer, methodOffset, res.Method)
	putMethod(buffer, requestMethodOffset, res.RequestMethod)
	return append(buffer, res.Text...), nil
}

// ErrorResponseFromBytes - decode at most 44 bytes
func ErrorResponseFromBytes(buffer []byte) (*ErrorResponse, error) {
	if len(buffer) < textOffset || len(buffer) > MaximumErrorResponseLength {
		return nil, fault.ErrInvalidLength
	}

	res := &ErrorResponse{
		Method:        readMethod(buffer, methodOffset),
		RequestMethod: readMethod(buffer, requestMethodOffset),
		Text:          string(buffer[textOffset:]),
	}
	if err := res.check(MaximumErrorResponseLength - textOffset); nil != err {
		return nil, err
	}
	return res, nil
}

// cut s to at most n bytes without splitting a rune
func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n -= 1
	}
	return s[:n]
}
