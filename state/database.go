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
	"fmt"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/database/kvstore"
	"github.com/0xsoniclabs/tracy"
	"github.com/inconshreveable/log15"
)

// Database owns the persistent store holding the state of all addresses.
// It hands out per-address ContextDBs and persists block layers.
type Database struct {
	store kvstore.Store
	log   log15.Logger
}

// NewDatabase creates a database on top of the given store, taking
// ownership of it.
func NewDatabase(store kvstore.Store, logger log15.Logger) *Database {
	if logger == nil {
		logger = common.NewDiscardLogger("state")
	}
	return &Database{store: store, log: logger}
}

// OpenDatabase opens a LevelDB store as described by the parameters and
// creates a database on top of it.
func OpenDatabase(params kvstore.Parameters) (*Database, error) {
	store, err := kvstore.Open(params)
	if err != nil {
		return nil, err
	}
	return NewDatabase(store, params.Logger), nil
}

// ContextDB creates a ContextDB for the given address backed by the
// address' namespace of the persistent store. The caller owns the result
// and is responsible for closing it.
func (d *Database) ContextDB(address common.Address) *ContextDB {
	namespace := common.NamespaceOf(address)
	return NewContextDB(address, d.store.Namespace(namespace[:]))
}

// CommitBlock persists all pending writes of the context's block layer as
// a single atomic batch and ends the block. If the batch can not be
// written, the block layer is retained unchanged so the commit may be
// retried or the block rolled back.
func (d *Database) CommitBlock(ctx *Context) error {
	if ctx.Mode() == Query {
		return fmt.Errorf("%w: block commit in %v mode", ErrAccessDenied, Query)
	}
	block := ctx.BlockLayer()
	if block == nil {
		return ErrNoBlock
	}
	if ctx.TransactionLayer() != nil {
		return fmt.Errorf("%w: can not commit block", ErrTransactionActive)
	}

	zone := tracy.ZoneBegin("state::commit_block")
	defer zone.End()

	batch := block.batch()
	if err := d.store.Apply(batch); err != nil {
		return fmt.Errorf("failed to flush block: %w", err)
	}
	d.log.Debug("Committed block", "entries", len(batch), "accounts", len(block.accounts))
	block.Clear()
	ctx.endBlock()
	return nil
}

// Close closes the persistent store. Read-only executions may not close it.
func (d *Database) Close(ctx *Context) error {
	if ctx.Mode() == Query {
		return fmt.Errorf("%w: close in %v mode", ErrAccessDenied, Query)
	}
	return d.store.Close()
}
