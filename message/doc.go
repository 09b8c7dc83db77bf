// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message encodes and decodes the peer data exchange messages
//
// Every message starts with a 4 byte big endian method, followed by
// fixed fields at fixed offsets and then any variable section in
// which each item carries its own 4 byte size.
//
//   ListDataRequest    method ++ reserved(40) ++ transaction id(64)     108 bytes
//   ListDataResponse   method ++ count ++ count × (size ++ blob)        at least 8 bytes
//   GetDataRequest     method ++ checksum(64)                           68 bytes
//   GetDataResponse    method ++ blob                                   at least 72 bytes
//   ErrorResponse      method ++ request method ++ UTF-8 text           at most 44 bytes
//   ListPeersRequest   method ++ count                                  8 bytes
//   ListPeersResponse  method ++ count ++ count × peer record(14)       8 + 14 × count bytes
//
// A decoder receives exactly the bytes of one message. Nothing is
// decoded partially: any failure returns only an error.
package message
