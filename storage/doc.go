// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// maintain separate buckets of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of buckets.
// Each bucket is defined by a prefix byte that is prepended to every
// key stored in it.
//
//
// Notes:
// 1. each separate bucket has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. last seen    = big endian uint64 seconds (8 bytes)
// 4. octets       = IPv4 address (4 bytes)
// 5. random       = big endian uint32 tie-breaker (4 bytes)
//
// Peers:
//
//   A ++ octets                - peers by address
//                                data: peer record (14 bytes)
//   R ++ last seen ++ random   - peers by recency
//                                data: octets
//
// Database:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
//
// Writes to several buckets are made atomic by staging them in a
// Transaction and committing a single LevelDB batch.
package storage
