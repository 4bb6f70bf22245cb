// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package kvstore

import (
	"context"
	"io"

	"github.com/0xsoniclabs/scorestate/common"
)

const (
	ErrClosed = common.ConstError("store is closed")
)

// Store is an ordered byte-key/value store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value stored for the given key. The boolean result is
	// false if there is no such key. An empty value is a valid value and is
	// reported as found.
	Get(key []byte) ([]byte, bool, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error

	// Apply writes all entries of the batch atomically. Either all or none of
	// the updates become visible, also in case of a crash. An empty batch is
	// a no-op.
	Apply(batch Batch) error

	// Namespace returns a handle to a sub-space of this store in which all
	// keys are implicitly prefixed by the given prefix. Closing the returned
	// handle does not affect this store.
	Namespace(prefix []byte) Store

	// Export writes all key/value pairs of this handle's key space to out.
	// It returns the number of exported entries.
	Export(ctx context.Context, out io.Writer) (int, error)
	// Import reads a stream produced by Export and applies it as a single
	// batch. It returns the number of imported entries.
	Import(in io.Reader) (int, error)

	// Close releases the handle. Closing a handle twice is a no-op. Any
	// further operation on a closed handle fails with ErrClosed.
	Close() error
}

// Entry is an update of a single key within a Batch. An entry with Deleted
// set removes the key, any other entry sets it to Value.
type Entry struct {
	Value   []byte
	Deleted bool
}

// Value creates an entry setting a key to the given value.
func Value(value []byte) Entry {
	return Entry{Value: value}
}

// Tombstone creates an entry deleting a key.
func Tombstone() Entry {
	return Entry{Deleted: true}
}

// Batch is a set of updates to be applied atomically, indexed by key.
type Batch map[string]Entry
