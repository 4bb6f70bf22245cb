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
	"github.com/0xsoniclabs/scorestate/common"
	"github.com/inconshreveable/log15"
	"github.com/pbnjay/memory"
)

const (
	MinCacheSize = 8 << 20
	MaxCacheSize = 512 << 20
)

// Parameters configure the opening of a store.
type Parameters struct {
	Directory string       // < empty for an in-memory store
	CacheSize int          // < block cache size in bytes, 0 for a default
	ReadOnly  bool         // < open an existing database in read-only mode
	Sync      bool         // < fsync every write before acknowledging it
	Logger    log15.Logger // < optional, records are discarded if not set
}

func (p Parameters) cacheSize() int {
	if p.CacheSize > 0 {
		return p.CacheSize
	}
	return DefaultCacheSize(memory.TotalMemory())
}

func (p Parameters) logger() log15.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return common.NewDiscardLogger("kvstore")
}

// DefaultCacheSize derives a block cache size from the amount of physical
// memory: 1/64 of it, clamped to [MinCacheSize, MaxCacheSize]. If the amount
// of memory is unknown (zero), MinCacheSize is used.
func DefaultCacheSize(totalMemory uint64) int {
	size := totalMemory / 64
	if size < MinCacheSize {
		return MinCacheSize
	}
	if size > MaxCacheSize {
		return MaxCacheSize
	}
	return int(size)
}
