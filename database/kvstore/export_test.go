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
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"
)

func TestExport_ExportedDataCanBeImported(t *testing.T) {
	require := require.New(t)
	source := openInMemory(t)

	for i := 0; i < 100; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		require.NoError(source.Put(key, []byte(fmt.Sprintf("value-%d", i))))
	}
	require.NoError(source.Put([]byte("empty"), []byte{}))

	var buffer bytes.Buffer
	count, err := source.Export(context.Background(), &buffer)
	require.NoError(err)
	require.Equal(101, count)

	target := openInMemory(t)
	count, err = target.Import(&buffer)
	require.NoError(err)
	require.Equal(101, count)

	for i := 0; i < 100; i++ {
		value, found, err := target.Get([]byte(fmt.Sprintf("key-%d", i)))
		require.NoError(err)
		require.True(found)
		require.Equal([]byte(fmt.Sprintf("value-%d", i)), value)
	}
	_, found, err := target.Get([]byte("empty"))
	require.NoError(err)
	require.True(found)
}

func TestExport_OnlyCoversTheNamespace(t *testing.T) {
	require := require.New(t)
	store := openInMemory(t)

	require.NoError(store.Put([]byte("outside"), []byte("1")))
	ns := store.Namespace([]byte("ns/"))
	require.NoError(ns.Put([]byte("inside"), []byte("2")))

	var buffer bytes.Buffer
	count, err := ns.Export(context.Background(), &buffer)
	require.NoError(err)
	require.Equal(1, count)

	target := openInMemory(t)
	_, err = target.Import(&buffer)
	require.NoError(err)

	value, found, err := target.Get([]byte("inside"))
	require.NoError(err)
	require.True(found)
	require.Equal([]byte("2"), value)

	_, found, err = target.Get([]byte("outside"))
	require.NoError(err)
	require.False(found)
}

func TestExport_CanBeCanceled(t *testing.T) {
	store := openInMemory(t)
	require.NoError(t, store.Put([]byte("key"), []byte("value")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buffer bytes.Buffer
	_, err := store.Export(ctx, &buffer)
	require.ErrorIs(t, err, context.Canceled)
}

func TestImport_EmptyStreamImportsNothing(t *testing.T) {
	store := openInMemory(t)
	count, err := store.Import(&bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestImport_TruncatedStreamIsRejectedWithoutChanges(t *testing.T) {
	require := require.New(t)

	// a key without a value
	var buffer bytes.Buffer
	writer := snappy.NewBufferedWriter(&buffer)
	require.NoError(writeRecordPart(writer, []byte("key")))
	require.NoError(writer.Close())

	store := openInMemory(t)
	_, err := store.Import(&buffer)
	require.ErrorIs(err, ErrCorruptedStream)

	_, found, err := store.Get([]byte("key"))
	require.NoError(err)
	require.False(found)
}

func TestExport_ClosedStoreCanNotBeExported(t *testing.T) {
	store, err := Open(Parameters{})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Export(context.Background(), &bytes.Buffer{})
	require.ErrorIs(t, err, ErrClosed)
	_, err = store.Import(&bytes.Buffer{})
	require.ErrorIs(t, err, ErrClosed)
}
