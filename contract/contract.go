// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

//go:generate mockgen -source contract.go -destination contract_mocks.go -package contract

import (
	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/state"
)

// Contract is an instantiated contract, bound to the storage of its address.
type Contract interface {
	Address() common.Address
}

// Code is the loaded code of a contract, able to create contract instances.
type Code interface {
	// New instantiates the contract using the given view as its storage. The
	// context is the one of the execution triggering the instantiation and
	// may only be used during the construction.
	New(ctx *state.Context, db *state.View) (Contract, error)
}

// Loader resolves the code deployed at an address.
type Loader interface {
	// Load returns the code deployed at the given address, or nil if there is
	// no loadable code.
	Load(address common.Address) (Code, error)
}

// DeploymentOracle is the authoritative source of deployment records.
type DeploymentOracle interface {
	IsDeployed(ctx *state.Context, address common.Address) (bool, error)
}
