// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer - a known network peer
//
// binary form (14 bytes):
//
//   address(6) = IPv4 octets(4) ++ big endian port(2)
//   last seen(8) = big endian seconds
//
// the JSON form is for inspection only and is not wire compatible
package peer
