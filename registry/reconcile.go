// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/peer"
	"github.com/bitmark-inc/peerdata/storage"
)

// Repair - counts of the changes made by Reconcile
type Repair struct {
	Orphaned uint32 // recency entries pointing at a missing address
	Stale    uint32 // recency entries with the wrong time, or a second entry for an address
	Restored uint32 // addresses given a new recency entry
}

// Changed - true if anything was repaired
func (rp Repair) Changed() bool {
	return 0 != rp.Orphaned || 0 != rp.Stale || 0 != rp.Restored
}

// String - summary for logs
func (rp Repair) String() string {
	return fmt.Sprintf("orphaned: %d  stale: %d  restored: %d", rp.Orphaned, rp.Stale, rp.Restored)
}

// Reconcile - restore the one to one mapping between the indices
//
// needed for stores written by something that updated the two
// indices separately and was interrupted between the writes
func (r *Registry) Reconcile() (Repair, error) {
	repair := Repair{}

	addressElements, err := r.store.Prefix(storage.PeersByAddress, nil)
	if nil != err {
		return repair, err
	}
	recencyElements, err := r.store.Prefix(storage.PeersByRecency, nil)
	if nil != err {
		return repair, err
	}

	now := r.clock()
	records := make(map[string]*peer.Record, len(addressElements))
	for _, e := range addressElements {
		record, err := peer.RecordFromBytes(e.Value, now)
		if nil != err {
			return repair, errors.Wrapf(err, "stored peer: %x", e.Key)
		}
		records[string(e.Key)] = record
	}

	tx, err := r.store.Begin()
	if nil != err {
		return repair, err
	}
	defer tx.Abort()

	pointed := make(map[string]struct{}, len(recencyElements))
	for _, e := range recencyElements {
		record, ok := records[string(e.Value)]
		switch {
		case !ok:
			r.log.Warnf("reconcile: recency: %x  missing address: %x", e.Key, e.Value)
			repair.Orphaned += 1

		case !bytes.Equal(recencyTime(e.Key), record.LastSeen.Bytes()):
			r.log.Warnf("reconcile: recency: %x  wrong time for: %s", e.Key, record.Address)
			repair.Stale += 1

		default:
			if _, seen := pointed[string(e.Value)]; seen {
				r.log.Warnf("reconcile: recency: %x  duplicate for: %s", e.Key, record.Address)
				repair.Stale += 1
				break
			}
			pointed[string(e.Value)] = struct{}{}
			continue
		}

		err := tx.Delete(storage.PeersByRecency, e.Key)
		if nil != err {
			return Repair{}, err
		}
	}

	for key, record := range records {
		if _, ok := pointed[key]; ok {
			continue
		}

		recencyKey, err := r.newRecencyKey(record.LastSeen)
		if nil != err {
			return Repair{}, err
		}
		found, err := tx.Has(storage.PeersByRecency, recencyKey)
		if nil != err {
			return Repair{}, err
		}
		if found {
			return Repair{}, fault.ErrRecencyKeyExists
		}
		err = tx.Put(storage.PeersByRecency, recencyKey, record.Key())
		if nil != err {
			return Repair{}, err
		}
		r.log.Warnf("reconcile: restored recency for: %s", record.Address)
		repair.Restored += 1
	}

	if !repair.Changed() {
		return repair, nil
	}

	err = tx.Commit()
	if nil != err {
		return Repair{}, err
	}

	r.log.Infof("reconcile: %s", repair)
	return repair, nil
}
