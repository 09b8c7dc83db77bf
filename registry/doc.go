// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry keeps the set of known peers in two indices
//
// The by-address index holds one record per peer IPv4 address. The
// by-recency index is ordered by last seen time followed by a random
// tie-breaker and points back to the by-address key, so the most
// recently seen peers come first from a reverse scan.
//
// Every change to both indices is committed as a single storage
// transaction. The registry itself does no locking; callers must
// serialise mutations.
package registry
