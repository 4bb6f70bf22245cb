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
	"sync/atomic"

	"github.com/0xsoniclabs/scorestate/common"
)

// View is the storage of a contract as seen by the contract itself. Every
// logical key is hashed together with the view's prefix before it reaches
// the ContextDB, so physical keys neither reveal the logical key nor collide
// between views of different prefixes.
//
// Views hold no execution state; the context is supplied with every call.
type View struct {
	db       *ContextDB
	prefix   []byte
	observer atomic.Pointer[Observer]
}

// NewView creates the root view, with an empty prefix, of the given db.
func NewView(db *ContextDB) *View {
	return &View{db: db}
}

func (v *View) Address() common.Address {
	return v.db.Address()
}

func (v *View) Prefix() []byte {
	return bytes.Clone(v.prefix)
}

func (v *View) Get(ctx *Context, key []byte) ([]byte, bool, error) {
	return v.db.Get(ctx, v.key(key))
}

func (v *View) Put(ctx *Context, key []byte, value []byte) error {
	if err := checkWritable(ctx, "put"); err != nil {
		return err
	}
	key = v.key(key)
	if observer := v.getObserver(); observer != nil {
		old, err := v.current(ctx, key)
		if err != nil {
			return err
		}
		if err := observer.OnPut(ctx, key, old, value); err != nil {
			return fmt.Errorf("%w: %w", ErrObserverFailure, err)
		}
	}
	return v.db.Put(ctx, key, value)
}

func (v *View) Delete(ctx *Context, key []byte) error {
	if err := checkWritable(ctx, "delete"); err != nil {
		return err
	}
	key = v.key(key)
	if observer := v.getObserver(); observer != nil {
		old, err := v.current(ctx, key)
		if err != nil {
			return err
		}
		if err := observer.OnDelete(ctx, key, old); err != nil {
			return fmt.Errorf("%w: %w", ErrObserverFailure, err)
		}
	}
	return v.db.Delete(ctx, key)
}

// Child creates a view on the same db whose prefix is the prefix of this
// view extended by the given prefix. The child has no observer.
func (v *View) Child(prefix []byte) *View {
	childPrefix := make([]byte, 0, len(v.prefix)+len(prefix))
	childPrefix = append(childPrefix, v.prefix...)
	childPrefix = append(childPrefix, prefix...)
	return &View{db: v.db, prefix: childPrefix}
}

// SetObserver replaces the observer of this view. A nil observer removes it.
func (v *View) SetObserver(observer Observer) {
	if observer == nil {
		v.observer.Store(nil)
		return
	}
	v.observer.Store(&observer)
}

func (v *View) getObserver() Observer {
	if observer := v.observer.Load(); observer != nil {
		return *observer
	}
	return nil
}

// current fetches the value of a physical key for observers. Present but
// empty values are reported as empty non-nil slices.
func (v *View) current(ctx *Context, key []byte) ([]byte, error) {
	value, found, err := v.db.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// key computes the physical key of the given logical key.
func (v *View) key(key []byte) []byte {
	hash := common.Sha3(v.prefix, key)
	return hash[:]
}
