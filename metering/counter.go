// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package metering charges execution steps for storage mutations. A
// StepCounter is installed as the observer of a view and rejects mutations
// once its limit would be exceeded.
package metering

import (
	"fmt"
	"sync"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/state"
	"github.com/holiman/uint256"
)

const ErrOutOfSteps = common.ConstError("out of steps")

// StepCounter accumulates the steps consumed by storage mutations. It is
// safe for concurrent use.
type StepCounter struct {
	costs Costs
	limit *uint256.Int // nil for no limit

	mutex sync.Mutex
	used  uint256.Int
}

var _ state.Observer = (*StepCounter)(nil)

// NewStepCounter creates a counter charging the given costs. A nil limit
// disables the limit.
func NewStepCounter(costs Costs, limit *uint256.Int) *StepCounter {
	counter := &StepCounter{costs: costs}
	if limit != nil {
		counter.limit = new(uint256.Int).Set(limit)
	}
	return counter
}

func (c *StepCounter) OnPut(_ *state.Context, _ []byte, oldValue []byte, newValue []byte) error {
	base := c.costs.SetBase
	if oldValue != nil {
		base = c.costs.ReplaceBase
	}
	cost := new(uint256.Int).Mul(
		uint256.NewInt(c.costs.PerByte),
		uint256.NewInt(uint64(len(newValue))),
	)
	cost.Add(cost, uint256.NewInt(base))
	return c.charge(cost)
}

func (c *StepCounter) OnDelete(*state.Context, []byte, []byte) error {
	return c.charge(uint256.NewInt(c.costs.DeleteBase))
}

// Used returns the steps consumed so far.
func (c *StepCounter) Used() *uint256.Int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return new(uint256.Int).Set(&c.used)
}

// Remaining returns the steps left before the limit is reached, or nil if
// the counter has no limit.
func (c *StepCounter) Remaining() *uint256.Int {
	if c.limit == nil {
		return nil
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return new(uint256.Int).Sub(c.limit, &c.used)
}

// Reset discards all consumed steps.
func (c *StepCounter) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.used.Clear()
}

// charge adds the given cost to the consumed steps. Charges exceeding the
// limit are rejected without being recorded.
func (c *StepCounter) charge(cost *uint256.Int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	total, overflow := new(uint256.Int).AddOverflow(&c.used, cost)
	if overflow {
		return fmt.Errorf("%w: step counter overflow", ErrOutOfSteps)
	}
	if c.limit != nil && total.Gt(c.limit) {
		return fmt.Errorf("%w: used %v, required %v, limit %v", ErrOutOfSteps, &c.used, cost, c.limit)
	}
	c.used.Set(total)
	return nil
}
