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
	"fmt"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/database/kvstore"
)

const (
	ErrAccessDenied = common.ConstError("access denied")
)

// ContextDB is the storage of a single address. It routes every access
// either to the pending-write layers of the supplied context or to the
// persistent store, depending on the context's mode. Besides the context
// passed to each call, a ContextDB keeps no execution state, so a single
// instance may serve any number of executions.
type ContextDB struct {
	address common.Address
	store   kvstore.Store
}

// NewContextDB creates a ContextDB for the given address persisting its data
// in the given store. The ContextDB takes ownership of the store.
func NewContextDB(address common.Address, store kvstore.Store) *ContextDB {
	return &ContextDB{address: address, store: store}
}

func (db *ContextDB) Address() common.Address {
	return db.address
}

// Get returns the value of the given key as visible to the execution of the
// given context. Invocations observe their own pending writes first, then
// those of the block, and finally the persistent store.
func (db *ContextDB) Get(ctx *Context, key []byte) ([]byte, bool, error) {
	if ctx.Mode() == Invoke {
		for _, layer := range []*Layer{ctx.TransactionLayer(), ctx.BlockLayer()} {
			if layer == nil {
				continue
			}
			if entry, found := layer.Get(db.address, key); found {
				if entry.Deleted {
					return nil, false, nil
				}
				return bytes.Clone(entry.Value), true, nil
			}
		}
	}
	return db.store.Get(key)
}

func (db *ContextDB) Put(ctx *Context, key []byte, value []byte) error {
	if err := checkWritable(ctx, "put"); err != nil {
		return err
	}
	if ctx.Mode() == Invoke {
		ctx.TransactionLayer().Put(db.address, key, value)
		return nil
	}
	return db.store.Put(key, value)
}

func (db *ContextDB) Delete(ctx *Context, key []byte) error {
	if err := checkWritable(ctx, "delete"); err != nil {
		return err
	}
	if ctx.Mode() == Invoke {
		ctx.TransactionLayer().Delete(db.address, key)
		return nil
	}
	return db.store.Delete(key)
}

// WriteBatch applies the given batch directly to the persistent store,
// bypassing any layers.
func (db *ContextDB) WriteBatch(ctx *Context, batch kvstore.Batch) error {
	if ctx.Mode() == Query {
		return fmt.Errorf("%w: write batch in %v mode", ErrAccessDenied, Query)
	}
	return db.store.Apply(batch)
}

// Close releases the underlying store. Read-only executions may not close
// shared storage.
func (db *ContextDB) Close(ctx *Context) error {
	if ctx.Mode() == Query {
		return fmt.Errorf("%w: close in %v mode", ErrAccessDenied, Query)
	}
	return db.store.Close()
}

// checkWritable verifies that the given context permits mutations.
func checkWritable(ctx *Context, operation string) error {
	switch ctx.Mode() {
	case Query:
		return fmt.Errorf("%w: %s in %v mode", ErrAccessDenied, operation, Query)
	case Invoke:
		if ctx.TransactionLayer() == nil {
			return fmt.Errorf("%w: %s in %v mode", ErrNoTransaction, operation, Invoke)
		}
	}
	return nil
}
