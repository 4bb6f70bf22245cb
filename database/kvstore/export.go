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
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/tracy"
	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// The export stream is a snappy-framed sequence of records. Each record is
// a uvarint-prefixed key followed by a uvarint-prefixed value.

const (
	ErrCorruptedStream = common.ConstError("corrupted export stream")

	// maxRecordPartSize bounds the size of a single key or value in a stream
	// to make sure a corrupted length prefix does not trigger huge allocations.
	maxRecordPartSize = 1 << 30

	// cancellationCheckInterval is the number of records exported between
	// checks of the context.
	cancellationCheckInterval = 1024
)

func (s *LevelDB) Export(ctx context.Context, out io.Writer) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	zone := tracy.ZoneBegin("kvstore::export")
	defer zone.End()

	snapshot, err := s.db.GetSnapshot()
	if err != nil {
		return 0, translate(err)
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(util.BytesPrefix(s.prefix), nil)
	defer iter.Release()

	writer := snappy.NewBufferedWriter(out)
	count := 0
	for iter.Next() {
		if count%cancellationCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return count, errors.Join(err, writer.Close())
			}
		}
		key := iter.Key()[len(s.prefix):]
		if err := writeRecordPart(writer, key); err != nil {
			return count, errors.Join(err, writer.Close())
		}
		if err := writeRecordPart(writer, iter.Value()); err != nil {
			return count, errors.Join(err, writer.Close())
		}
		count++
	}
	if err := iter.Error(); err != nil {
		return count, errors.Join(translate(err), writer.Close())
	}
	s.log.Debug("Exported entries", "count", count)
	return count, writer.Close()
}

func (s *LevelDB) Import(in io.Reader) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	reader := bufio.NewReader(snappy.NewReader(in))
	batch := new(leveldb.Batch)
	for {
		key, err := readRecordPart(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		value, err := readRecordPart(reader)
		if err == io.EOF {
			return 0, fmt.Errorf("%w: missing value for key %x", ErrCorruptedStream, key)
		}
		if err != nil {
			return 0, err
		}
		batch.Put(s.key(key), value)
	}
	if err := s.db.Write(batch, s.writeOptions()); err != nil {
		return 0, translate(err)
	}
	s.log.Debug("Imported entries", "count", batch.Len())
	return batch.Len(), nil
}

func writeRecordPart(out io.Writer, data []byte) error {
	var length [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(length[:], uint64(len(data)))
	if _, err := out.Write(length[:n]); err != nil {
		return err
	}
	_, err := out.Write(data)
	return err
}

// readRecordPart reads a single length-prefixed part of a record. It returns
// io.EOF only if the stream ends cleanly before the part.
func readRecordPart(in *bufio.Reader) ([]byte, error) {
	length, err := binary.ReadUvarint(in)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedStream, err)
	}
	if length > maxRecordPartSize {
		return nil, fmt.Errorf("%w: record part of %d bytes", ErrCorruptedStream, length)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(in, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedStream, err)
	}
	return data, nil
}
