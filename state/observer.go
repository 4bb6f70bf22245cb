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

//go:generate mockgen -source observer.go -destination observer_mocks.go -package state

import (
	"github.com/0xsoniclabs/scorestate/common"
)

const (
	ErrObserverFailure = common.ConstError("observer failed")
	ErrObserverUnset   = common.ConstError("observer callback not set")
)

// Observer is notified of every mutation of a View before it is applied.
// Keys are physical keys. An old value of nil denotes a key without value.
// If a call returns an error, the mutation is not applied.
type Observer interface {
	OnPut(ctx *Context, key []byte, oldValue []byte, newValue []byte) error
	OnDelete(ctx *Context, key []byte, oldValue []byte) error
}

// ObserverFuncs is an Observer forwarding notifications to a pair of
// functions. A notification for which no function is set fails with
// ErrObserverUnset.
type ObserverFuncs struct {
	Put    func(ctx *Context, key []byte, oldValue []byte, newValue []byte) error
	Delete func(ctx *Context, key []byte, oldValue []byte) error
}

func (o ObserverFuncs) OnPut(ctx *Context, key []byte, oldValue []byte, newValue []byte) error {
	if o.Put == nil {
		return ErrObserverUnset
	}
	return o.Put(ctx, key, oldValue, newValue)
}

func (o ObserverFuncs) OnDelete(ctx *Context, key []byte, oldValue []byte) error {
	if o.Delete == nil {
		return ErrObserverUnset
	}
	return o.Delete(ctx, key, oldValue)
}
