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
	"github.com/0xsoniclabs/scorestate/database/kvstore"
	"github.com/stretchr/testify/require"
)

func TestLayer_InitialLayerIsEmpty(t *testing.T) {
	layer := NewLayer()
	_, found := layer.Get(common.Address{}, []byte("key"))
	require.False(t, found)
	require.Zero(t, layer.Len())
	require.Empty(t, layer.Addresses())
}

func TestLayer_DeletionsAreRecordedAsTombstones(t *testing.T) {
	require := require.New(t)
	layer := NewLayer()
	address := common.ContractAddress([20]byte{1})

	layer.Put(address, []byte("key"), []byte("value"))
	layer.Delete(address, []byte("key"))

	entry, found := layer.Get(address, []byte("key"))
	require.True(found)
	require.True(entry.Deleted)
	require.Equal(1, layer.Len())
}

func TestLayer_KeysOfDifferentAddressesAreIndependent(t *testing.T) {
	require := require.New(t)
	layer := NewLayer()
	a := common.ContractAddress([20]byte{1})
	b := common.ContractAddress([20]byte{2})

	layer.Put(a, []byte("key"), []byte("a"))

	_, found := layer.Get(b, []byte("key"))
	require.False(found)
}

func TestLayer_StoredValuesAreCopied(t *testing.T) {
	layer := NewLayer()
	address := common.ContractAddress([20]byte{1})

	value := []byte("value")
	layer.Put(address, []byte("key"), value)
	value[0] = 'X'

	entry, _ := layer.Get(address, []byte("key"))
	require.Equal(t, []byte("value"), entry.Value)
}

func TestLayer_MergeOverridesExistingEntries(t *testing.T) {
	require := require.New(t)
	a := common.ContractAddress([20]byte{1})
	b := common.ContractAddress([20]byte{2})

	base := NewLayer()
	base.Put(a, []byte("k1"), []byte("old"))
	base.Put(a, []byte("k2"), []byte("kept"))

	top := NewLayer()
	top.Put(a, []byte("k1"), []byte("new"))
	top.Delete(b, []byte("k3"))

	base.Merge(top)

	entry, _ := base.Get(a, []byte("k1"))
	require.Equal(kvstore.Value([]byte("new")), entry)
	entry, _ = base.Get(a, []byte("k2"))
	require.Equal(kvstore.Value([]byte("kept")), entry)
	entry, _ = base.Get(b, []byte("k3"))
	require.Equal(kvstore.Tombstone(), entry)
	require.Equal(3, base.Len())
}

func TestLayer_AddressesAreSorted(t *testing.T) {
	layer := NewLayer()
	a := common.ContractAddress([20]byte{1})
	b := common.ContractAddress([20]byte{2})
	c := common.EOAAddress([20]byte{3})

	layer.Put(b, []byte("key"), nil)
	layer.Put(a, []byte("key"), nil)
	layer.Put(c, []byte("key"), nil)

	require.Equal(t, []common.Address{c, a, b}, layer.Addresses())
}

func TestLayer_BatchPlacesEntriesInAddressNamespaces(t *testing.T) {
	require := require.New(t)
	layer := NewLayer()
	address := common.ContractAddress([20]byte{1})
	layer.Put(address, []byte("k1"), []byte("v1"))
	layer.Delete(address, []byte("k2"))

	namespace := common.NamespaceOf(address)
	require.Equal(kvstore.Batch{
		string(namespace[:]) + "k1": kvstore.Value([]byte("v1")),
		string(namespace[:]) + "k2": kvstore.Tombstone(),
	}, layer.batch())
}

func TestLayer_ClearRemovesAllEntries(t *testing.T) {
	layer := NewLayer()
	layer.Put(common.Address{}, []byte("key"), []byte("value"))
	layer.Clear()
	require.Zero(t, layer.Len())
}
