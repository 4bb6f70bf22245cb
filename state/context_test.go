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
	"testing"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/stretchr/testify/require"
)

func TestContext_NilContextIsDirectWithoutLayers(t *testing.T) {
	var ctx *Context
	require.Equal(t, Direct, ctx.Mode())
	require.Nil(t, ctx.TransactionLayer())
	require.Nil(t, ctx.BlockLayer())
}

func TestContext_ModesArePrintable(t *testing.T) {
	require := require.New(t)
	require.Equal("direct", Direct.String())
	require.Equal("invoke", Invoke.String())
	require.Equal("query", Query.String())
	require.Equal("mode(7)", Mode(7).String())
}

func TestContext_TransactionsRequireAnActiveBlock(t *testing.T) {
	require := require.New(t)
	ctx := NewInvokeContext()

	require.ErrorIs(ctx.BeginTransaction(), ErrNoBlock)
	require.NoError(ctx.BeginBlock())
	require.ErrorIs(ctx.BeginBlock(), ErrBlockActive)
	require.NoError(ctx.BeginTransaction())
	require.ErrorIs(ctx.BeginTransaction(), ErrTransactionActive)
}

func TestContext_CommittedTransactionIsMergedIntoBlock(t *testing.T) {
	require := require.New(t)
	ctx := NewInvokeContext()
	address := common.ContractAddress([20]byte{1})

	require.NoError(ctx.BeginBlock())
	require.NoError(ctx.BeginTransaction())
	ctx.TransactionLayer().Put(address, []byte("key"), []byte("value"))
	require.NoError(ctx.CommitTransaction())

	require.Nil(ctx.TransactionLayer())
	entry, found := ctx.BlockLayer().Get(address, []byte("key"))
	require.True(found)
	require.Equal([]byte("value"), entry.Value)

	require.ErrorIs(ctx.CommitTransaction(), ErrNoTransaction)
}

func TestContext_AbortedTransactionIsDiscarded(t *testing.T) {
	require := require.New(t)
	ctx := NewInvokeContext()
	address := common.ContractAddress([20]byte{1})

	require.NoError(ctx.BeginBlock())
	require.NoError(ctx.BeginTransaction())
	ctx.TransactionLayer().Put(address, []byte("key"), []byte("value"))
	ctx.AbortTransaction()

	require.Nil(ctx.TransactionLayer())
	_, found := ctx.BlockLayer().Get(address, []byte("key"))
	require.False(found)

	// a new transaction may be started afterwards
	require.NoError(ctx.BeginTransaction())
}

func TestContext_RollbackDiscardsBlock(t *testing.T) {
	require := require.New(t)
	ctx := NewInvokeContext()
	address := common.ContractAddress([20]byte{1})

	require.NoError(ctx.BeginBlock())
	ctx.BlockLayer().Put(address, []byte("key"), []byte("value"))
	require.NoError(ctx.RollbackBlock())

	require.Nil(ctx.BlockLayer())
	require.NoError(ctx.BeginBlock())
	_, found := ctx.BlockLayer().Get(address, []byte("key"))
	require.False(found)
}

func TestContext_RollbackRequiresFinishedTransaction(t *testing.T) {
	require := require.New(t)
	ctx := NewInvokeContext()

	require.NoError(ctx.BeginBlock())
	require.NoError(ctx.BeginTransaction())
	require.ErrorIs(ctx.RollbackBlock(), ErrTransactionActive)
	require.NotNil(ctx.BlockLayer())
	require.NotNil(ctx.TransactionLayer())

	ctx.AbortTransaction()
	require.NoError(ctx.RollbackBlock())
}

func TestContext_FinishedBlockCanNotBeRolledBackAgain(t *testing.T) {
	require := require.New(t)
	ctx := NewInvokeContext()

	require.ErrorIs(ctx.RollbackBlock(), ErrNoBlock)
	require.NoError(ctx.BeginBlock())
	require.NoError(ctx.RollbackBlock())
	require.ErrorIs(ctx.RollbackBlock(), ErrNoBlock)
}

func TestContext_LifecycleOfNilContextDoesNotPanic(t *testing.T) {
	require := require.New(t)
	var ctx *Context

	require.ErrorIs(ctx.BeginBlock(), ErrNoBlock)
	require.ErrorIs(ctx.BeginTransaction(), ErrNoBlock)
	require.ErrorIs(ctx.CommitTransaction(), ErrNoTransaction)
	require.ErrorIs(ctx.RollbackBlock(), ErrNoBlock)
	ctx.AbortTransaction()
	require.Equal(Direct, ctx.Mode())
}
