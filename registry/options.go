// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"io"

	"github.com/bitmark-inc/peerdata/timestamp"
)

// Option - configure a Registry
type Option func(*Registry)

// WithClock - time source for record validation
func WithClock(clock timestamp.Clock) Option {
	return func(r *Registry) {
		r.clock = clock
	}
}

// WithRandom - source of the recency tie-breaker
func WithRandom(random io.Reader) Option {
	return func(r *Registry) {
		r.random = random
	}
}
