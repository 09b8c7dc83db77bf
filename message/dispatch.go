// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/timestamp"
)

// UnpackRequest - decode a request of whatever type its method selects
func UnpackRequest(buffer []byte) (Message, error) {
	method, err := PeekMethod(buffer)
	if nil != err {
		return nil, err
	}

	switch method {
	case MethodListPeers:
		m, err := ListPeersRequestFromBytes(buffer)
		if nil != err {
			return nil, err
		}
		return m, nil
	case MethodListData:
		m, err := ListDataRequestFromBytes(buffer)
		if nil != err {
			return nil, err
		}
		return m, nil
	case MethodGetData:
		m, err := GetDataRequestFromBytes(buffer)
		if nil != err {
			return nil, err
		}
		return m, nil
	default:
		return nil, fault.ErrInvalidMethod
	}
}

// UnpackResponse - decode a response of whatever type its method selects
//
// now is the validation time for any peer records carried
func UnpackResponse(buffer []byte, now timestamp.Timestamp) (Message, error) {
	method, err := PeekMethod(buffer)
	if nil != err {
		return nil, err
	}

	switch method {
	case MethodListPeers:
		m, err := ListPeersResponseFromBytes(buffer, now)
		if nil != err {
			return nil, err
		}
		return m, nil
	case MethodListData:
		m, err := ListDataResponseFromBytes(buffer)
		if nil != err {
			return nil, err
		}
		return m, nil
	case MethodGetData:
		m, err := GetDataResponseFromBytes(buffer)
		if nil != err {
			return nil, err
		}
		return m, nil
	case MethodError:
		m, err := ErrorResponseFromBytes(buffer)
		if nil != err {
			return nil, err
		}
		return m, nil
	default:
		return nil, fault.ErrInvalidMethod
	}
}
