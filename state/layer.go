// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"bytes"
	"slices"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/database/kvstore"
	"golang.org/x/exp/maps"
)

// Layer is an in-memory overlay of pending writes, indexed by the address
// owning the written keys. Deletions are recorded as tombstones shadowing
// any value in lower layers.
type Layer struct {
	accounts map[common.Address]map[string]kvstore.Entry
}

func NewLayer() *Layer {
	return &Layer{accounts: map[common.Address]map[string]kvstore.Entry{}}
}

// Get looks up the pending entry for the given key. The boolean result is
// false if this layer holds no entry for the key, in which case lower layers
// need to be consulted. A found entry may be a tombstone.
func (l *Layer) Get(address common.Address, key []byte) (kvstore.Entry, bool) {
	entry, found := l.accounts[address][string(key)]
	return entry, found
}

func (l *Layer) Put(address common.Address, key []byte, value []byte) {
	l.set(address, key, kvstore.Value(bytes.Clone(value)))
}

func (l *Layer) Delete(address common.Address, key []byte) {
	l.set(address, key, kvstore.Tombstone())
}

func (l *Layer) set(address common.Address, key []byte, entry kvstore.Entry) {
	slots, found := l.accounts[address]
	if !found {
		slots = map[string]kvstore.Entry{}
		l.accounts[address] = slots
	}
	slots[string(key)] = entry
}

// Merge applies all entries of the given layer on top of this layer.
func (l *Layer) Merge(other *Layer) {
	for address, slots := range other.accounts {
		for key, entry := range slots {
			l.set(address, []byte(key), entry)
		}
	}
}

// Len returns the number of pending entries, tombstones included.
func (l *Layer) Len() int {
	res := 0
	for _, slots := range l.accounts {
		res += len(slots)
	}
	return res
}

// Addresses returns the addresses with pending entries in ascending order.
func (l *Layer) Addresses() []common.Address {
	res := maps.Keys(l.accounts)
	slices.SortFunc(res, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}

func (l *Layer) Clear() {
	l.accounts = map[common.Address]map[string]kvstore.Entry{}
}

// batch converts the content of this layer into a single batch over the root
// key space, placing the entries of each address in the address' namespace.
func (l *Layer) batch() kvstore.Batch {
	res := make(kvstore.Batch, l.Len())
	for address, slots := range l.accounts {
		namespace := common.NamespaceOf(address)
		for key, entry := range slots {
			res[string(namespace[:])+key] = entry
		}
	}
	return res
}
