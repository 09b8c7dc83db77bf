// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"crypto/rand"
	"io"
	"net"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/peerdata/address"
	"github.com/bitmark-inc/peerdata/fault"
	"github.com/bitmark-inc/peerdata/peer"
	"github.com/bitmark-inc/peerdata/storage"
	"github.com/bitmark-inc/peerdata/timestamp"
)

// Registry - peers indexed by address and by recency
type Registry struct {
	log    *logger.L
	store  storage.Store
	clock  timestamp.Clock
	random io.Reader
}

// New - a registry over an open store
func New(store storage.Store, options ...Option) *Registry {
	r := &Registry{
		log:    logger.New("registry"),
		store:  store,
		clock:  timestamp.Now,
		random: rand.Reader,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// ExistsByAddress - true if the peer is known
func (r *Registry) ExistsByAddress(ip net.IP) (bool, error) {
	key, err := address.KeyFromIP(ip)
	if nil != err {
		return false, err
	}
	return r.store.Has(storage.PeersByAddress, key)
}

// ExistsByRecencyKey - true if the recency index has the key
func (r *Registry) ExistsByRecencyKey(key []byte) (bool, error) {
	if RecencyKeyLength != len(key) {
		return false, fault.ErrInvalidRecencyKey
	}
	return r.store.Has(storage.PeersByRecency, key)
}

// CountByAddress - number of peers in the by-address index
func (r *Registry) CountByAddress() (uint32, error) {
	return r.store.Count(storage.PeersByAddress)
}

// CountByRecency - number of entries in the by-recency index
func (r *Registry) CountByRecency() (uint32, error) {
	return r.store.Count(storage.PeersByRecency)
}

// ListByAddress - records in ascending address order
func (r *Registry) ListByAddress(skip uint32, count uint32) ([]*peer.Record, error) {
	keys, err := r.store.List(storage.PeersByAddress, skip, count)
	if nil != err {
		return nil, err
	}

	now := r.clock()
	records := make([]*peer.Record, 0, len(keys))
	for _, key := range keys {
		record, err := r.read(r.store, key, now)
		if nil != err {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// ListByRecency - addresses, most recently seen first
func (r *Registry) ListByRecency(skip uint32, count uint32) ([]net.IP, error) {
	keys, err := r.store.ListReverse(storage.PeersByRecency, skip, count)
	if nil != err {
		return nil, err
	}

	ips := make([]net.IP, 0, len(keys))
	for _, key := range keys {
		e, err := r.store.Get(storage.PeersByRecency, key)
		if nil != err {
			return nil, err
		}
		ip, err := address.IPFromKey(e.Value)
		if nil != err {
			return nil, err
		}
		ips = append(ips, ip)
	}
	return ips, nil
}

// Get - the record for an address
func (r *Registry) Get(ip net.IP) (*peer.Record, error) {
	key, err := address.KeyFromIP(ip)
	if nil != err {
		return nil, err
	}
	return r.read(r.store, key, r.clock())
}

// Create - add a new peer to both indices
func (r *Registry) Create(record *peer.Record) error {
	if err := record.Check(r.clock()); nil != err {
		return err
	}

	tx, err := r.store.Begin()
	if nil != err {
		return err
	}
	defer tx.Abort()

	err = r.create(tx, record)
	if nil != err {
		return err
	}
	err = tx.Commit()
	if nil != err {
		return err
	}

	r.log.Debugf("create: %s  last seen: %s", record.Address, record.LastSeen)
	return nil
}

// Update - replace a known peer's record
func (r *Registry) Update(record *peer.Record) error {
	now := r.clock()
	if err := record.Check(now); nil != err {
		return err
	}

	tx, err := r.store.Begin()
	if nil != err {
		return err
	}
	defer tx.Abort()

	stored, err := r.read(tx, record.Key(), now)
	if nil != err {
		return err
	}
	err = r.remove(tx, stored)
	if nil != err {
		return err
	}
	err = r.create(tx, record)
	if nil != err {
		return err
	}
	err = tx.Commit()
	if nil != err {
		return err
	}

	r.log.Debugf("update: %s  last seen: %s -> %s", record.Address, stored.LastSeen, record.LastSeen)
	return nil
}

// Delete - remove a peer from both indices
func (r *Registry) Delete(record *peer.Record) error {
	tx, err := r.store.Begin()
	if nil != err {
		return err
	}
	defer tx.Abort()

	stored, err := r.read(tx, record.Key(), r.clock())
	if nil != err {
		return err
	}
	err = r.remove(tx, stored)
	if nil != err {
		return err
	}
	err = tx.Commit()
	if nil != err {
		return err
	}

	r.log.Debugf("delete: %s", stored.Address)
	return nil
}

// decode a stored by-address record
func (r *Registry) read(reader storage.Reader, key []byte, now timestamp.Timestamp) (*peer.Record, error) {
	e, err := reader.Get(storage.PeersByAddress, key)
	if fault.ErrKeyNotFound == err {
		return nil, fault.ErrPeerNotFound
	}
	if nil != err {
		return nil, err
	}
	return peer.RecordFromBytes(e.Value, now)
}

// stage both index entries of a new record
func (r *Registry) create(tx storage.Transaction, record *peer.Record) error {
	key := record.Key()

	found, err := tx.Has(storage.PeersByAddress, key)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrPeerAlreadyFound
	}

	recencyKey, err := r.newRecencyKey(record.LastSeen)
	if nil != err {
		return err
	}
	found, err = tx.Has(storage.PeersByRecency, recencyKey)
	if nil != err {
		return err
	}
	if found {
		return fault.ErrRecencyKeyExists
	}

	err = tx.Put(storage.PeersByAddress, key, record.Bytes())
	if nil != err {
		return err
	}
	return tx.Put(storage.PeersByRecency, recencyKey, key)
}

// stage removal of both index entries of a stored record
func (r *Registry) remove(tx storage.Transaction, stored *peer.Record) error {
	key := stored.Key()

	recencyKey, err := r.findRecencyKey(stored.LastSeen, key)
	if nil != err {
		return err
	}

	err = tx.Delete(storage.PeersByRecency, recencyKey)
	if nil != err {
		return err
	}
	return tx.Delete(storage.PeersByAddress, key)
}
