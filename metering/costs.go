// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package metering

// Costs are the step prices charged for storage mutations.
type Costs struct {
	SetBase     uint64 // writing a key without value
	ReplaceBase uint64 // overwriting an existing value
	PerByte     uint64 // per byte of a written value
	DeleteBase  uint64 // removing a key
}

// DefaultCosts returns the step prices used when no custom schedule is
// configured.
func DefaultCosts() Costs {
	return Costs{
		SetBase:     20_000,
		ReplaceBase: 5_000,
		PerByte:     320,
		DeleteBase:  240,
	}
}
