// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"net"
	"os"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/peer"
	"github.com/bitmark-inc/peerdata/registry"
	"github.com/bitmark-inc/peerdata/storage"
	"github.com/bitmark-inc/peerdata/timestamp"
)

const (
	dir = "testing"
	now = timestamp.Timestamp(1600000000)
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	goleak.VerifyTestMain(m,
		goleak.IgnoreCurrent(),
		goleak.IgnoreTopFunction("github.com/syndtr/goleveldb/leveldb.(*DB).mpoolDrain"),
		goleak.IgnoreTopFunction("github.com/syndtr/goleveldb/leveldb.(*DB).compactionError"),
		goleak.Cleanup(func(rc int) {
			teardownTestLogger()
			os.Exit(rc)
		}),
	)
}

func fixedClock() timestamp.Timestamp {
	return now
}

// deterministic tie-breakers: 00 01 02 03, 04 05 06 07, ...
type sequence struct {
	n byte
}

func (s *sequence) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s.n
		s.n += 1
	}
	return len(p), nil
}

// every tie-breaker is zero
type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func setupTestStore(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory error: %s", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func setupTestRegistry(t *testing.T) (*registry.Registry, *storage.Database) {
	db := setupTestStore(t)
	return registry.New(db, registry.WithClock(fixedClock), registry.WithRandom(&sequence{})), db
}

// a record for 10.0.0.n seen age before now
func makeRecord(t *testing.T, n byte, age time.Duration) *peer.Record {
	a, err := address.New(net.IPv4(10, 0, 0, n), 8333)
	if nil != err {
		t.Fatalf("address error: %s", err)
	}
	return &peer.Record{
		Address:  a,
		LastSeen: now.Add(-age),
	}
}

// the by-recency key the registry would make for the i'th random read
func recencyKey(lastSeen timestamp.Timestamp, i byte) []byte {
	key := lastSeen.Bytes()
	return append(key, 4*i, 4*i+1, 4*i+2, 4*i+3)
}
