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
)

// Mode determines how storage accesses of an execution are mediated.
type Mode byte

const (
	// Direct accesses bypass all pending-write layers and operate on the
	// persistent store. This is the mode of a nil context.
	Direct Mode = iota
	// Invoke accesses are mutating executions whose writes are collected in
	// the transaction layer and read with transaction > block > store
	// precedence.
	Invoke
	// Query accesses are read-only. They read the persistent store and are
	// denied any mutation.
	Query
)

func (m Mode) String() string {
	switch m {
	case Direct:
		return "direct"
	case Invoke:
		return "invoke"
	case Query:
		return "query"
	default:
		return fmt.Sprintf("mode(%d)", byte(m))
	}
}

const (
	ErrNoBlock           = common.ConstError("no active block")
	ErrBlockActive       = common.ConstError("block already active")
	ErrNoTransaction     = common.ConstError("no active transaction")
	ErrTransactionActive = common.ConstError("transaction already active")
)

// Context is the execution context supplied with every storage access. It
// carries the mode of the execution and, for invocations, the layers of
// pending writes of the current block and transaction.
//
// A nil *Context is a valid Direct context without layers. A context is
// owned by a single logical execution and must not be shared between
// goroutines.
type Context struct {
	mode  Mode
	tx    *Layer
	block *Layer
}

// NewContext creates a context of the given mode without active layers.
func NewContext(mode Mode) *Context {
	return &Context{mode: mode}
}

func NewInvokeContext() *Context {
	return NewContext(Invoke)
}

func NewQueryContext() *Context {
	return NewContext(Query)
}

func (c *Context) Mode() Mode {
	if c == nil {
		return Direct
	}
	return c.mode
}

// TransactionLayer returns the pending writes of the active transaction or
// nil if there is none.
func (c *Context) TransactionLayer() *Layer {
	if c == nil {
		return nil
	}
	return c.tx
}

// BlockLayer returns the pending writes of the active block or nil if there
// is none.
func (c *Context) BlockLayer() *Layer {
	if c == nil {
		return nil
	}
	return c.block
}

// --- Block and transaction lifecycle ---
//
// Lifecycle operations require an Invoke or Direct context created by
// NewContext. On a nil context they report ErrNoBlock or do nothing.

// BeginBlock starts a new block with an empty block layer.
func (c *Context) BeginBlock() error {
	if c == nil {
		return fmt.Errorf("%w: nil context can not hold a block", ErrNoBlock)
	}
	if c.block != nil {
		return ErrBlockActive
	}
	c.block = NewLayer()
	return nil
}

// BeginTransaction starts a new transaction within the active block.
func (c *Context) BeginTransaction() error {
	if c.BlockLayer() == nil {
		return ErrNoBlock
	}
	if c.tx != nil {
		return ErrTransactionActive
	}
	c.tx = NewLayer()
	return nil
}

// CommitTransaction merges the writes of the active transaction into the
// block layer and ends the transaction.
func (c *Context) CommitTransaction() error {
	if c.TransactionLayer() == nil {
		return ErrNoTransaction
	}
	c.block.Merge(c.tx)
	c.tx = nil
	return nil
}

// AbortTransaction discards all writes of the active transaction. It is a
// no-op if there is no active transaction.
func (c *Context) AbortTransaction() {
	if c != nil {
		c.tx = nil
	}
}

// RollbackBlock discards the pending writes of the active block. A running
// transaction has to be committed or aborted first. A block that has been
// committed or rolled back can not be rolled back again.
func (c *Context) RollbackBlock() error {
	if c.BlockLayer() == nil {
		return fmt.Errorf("%w: can not roll back", ErrNoBlock)
	}
	if c.tx != nil {
		return fmt.Errorf("%w: can not roll back block", ErrTransactionActive)
	}
	c.block = nil
	return nil
}

// endBlock is called after a block layer has been persisted.
func (c *Context) endBlock() {
	c.block = nil
}
