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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// LevelDB is a Store backed by a LevelDB instance. The handle returned by
// Open owns the underlying database; handles created through Namespace share
// it and only restrict the visible key space.
type LevelDB struct {
	db     *leveldb.DB
	prefix []byte
	owner  bool
	sync   bool
	closed atomic.Bool
	log    log15.Logger
}

var _ Store = (*LevelDB)(nil)

// Open opens or creates the LevelDB instance described by the parameters. If
// no directory is given, an in-memory instance is created.
func Open(params Parameters) (*LevelDB, error) {
	logger := params.logger()
	options := &opt.Options{
		BlockCacheCapacity: params.cacheSize(),
		ReadOnly:           params.ReadOnly,
	}

	var db *leveldb.DB
	var err error
	if params.Directory == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), options)
	} else {
		db, err = leveldb.OpenFile(params.Directory, options)
		if lerrors.IsCorrupted(err) && !params.ReadOnly {
			logger.Warn("Recovering corrupted database", "dir", params.Directory, "err", err)
			db, err = leveldb.RecoverFile(params.Directory, options)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", params.Directory, err)
	}
	logger.Debug("Opened database", "dir", params.Directory, "cache", options.BlockCacheCapacity)

	return &LevelDB{
		db:    db,
		owner: true,
		sync:  params.Sync,
		log:   logger,
	}, nil
}

func (s *LevelDB) Get(key []byte) ([]byte, bool, error) {
	if s.closed.Load() {
		return nil, false, ErrClosed
	}
	value, err := s.db.Get(s.key(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, translate(err)
	}
	return value, true, nil
}

func (s *LevelDB) Put(key []byte, value []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return translate(s.db.Put(s.key(key), value, s.writeOptions()))
}

func (s *LevelDB) Delete(key []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return translate(s.db.Delete(s.key(key), s.writeOptions()))
}

func (s *LevelDB) Apply(batch Batch) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if len(batch) == 0 {
		return nil
	}
	update := new(leveldb.Batch)
	for key, entry := range batch {
		if entry.Deleted {
			update.Delete(s.key([]byte(key)))
		} else {
			update.Put(s.key([]byte(key)), entry.Value)
		}
	}
	return translate(s.db.Write(update, s.writeOptions()))
}

func (s *LevelDB) Namespace(prefix []byte) Store {
	return s.namespace(prefix)
}

func (s *LevelDB) namespace(prefix []byte) *LevelDB {
	s.log.Debug("Opening namespace", "prefix", fmt.Sprintf("%x", prefix))
	return &LevelDB{
		db:     s.db,
		prefix: s.key(prefix),
		sync:   s.sync,
		log:    s.log,
	}
}

// Stats returns statistics of the underlying LevelDB instance. Statistics
// are engine-wide, also when requested through a namespace.
func (s *LevelDB) Stats() (*leveldb.DBStats, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	stats := &leveldb.DBStats{}
	if err := s.db.Stats(stats); err != nil {
		return nil, translate(err)
	}
	return stats, nil
}

func (s *LevelDB) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if !s.owner {
		return nil
	}
	s.log.Debug("Closing database")
	return translate(s.db.Close())
}

// key returns the physical key of the given key in this handle's key space.
func (s *LevelDB) key(key []byte) []byte {
	res := make([]byte, 0, len(s.prefix)+len(key))
	res = append(res, s.prefix...)
	return append(res, key...)
}

func (s *LevelDB) writeOptions() *opt.WriteOptions {
	return &opt.WriteOptions{Sync: s.sync}
}

func translate(err error) error {
	if errors.Is(err, leveldb.ErrClosed) {
		return ErrClosed
	}
	return err
}
