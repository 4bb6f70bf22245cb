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

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/state"
	"github.com/inconshreveable/log15"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/singleflight"
)

const (
	ErrNotContract = common.ConstError("not a contract address")
	ErrNotDeployed = common.ConstError("contract not deployed")
	ErrLoadFailed  = common.ConstError("failed to load contract")
	ErrClosed      = common.ConstError("registry is closed")
)

// Registry is a cache of contract instances indexed by their address.
// Instances are created on first access and kept until they are evicted.
// The registry owns the storage of each cached instance and closes it when
// the instance is removed.
//
// Concurrent first accesses of the same address are coalesced into a single
// load; loads of different addresses proceed in parallel.
type Registry struct {
	database *state.Database
	oracle   DeploymentOracle
	loader   Loader
	log      log15.Logger

	mutex   sync.RWMutex
	entries map[common.Address]entry
	loading map[common.Address]*pendingLoad
	closed  bool
	loads   singleflight.Group
}

// pendingLoad tracks a load in progress. An eviction of the address while
// the load is running marks it stale; the loaded instance is then discarded.
type pendingLoad struct {
	stale bool
}

type entry struct {
	contract Contract
	db       *state.ContextDB
}

// NewRegistry creates an empty registry creating the storage of contracts
// in the given database. The logger is optional.
func NewRegistry(
	database *state.Database,
	oracle DeploymentOracle,
	loader Loader,
	logger log15.Logger,
) *Registry {
	if logger == nil {
		logger = common.NewDiscardLogger("contract")
	}
	return &Registry{
		database: database,
		oracle:   oracle,
		loader:   loader,
		log:      logger,
		entries:  map[common.Address]entry{},
		loading:  map[common.Address]*pendingLoad{},
	}
}

// Get returns the instance of the contract at the given address, loading it
// if it is not yet cached. Contracts that are not deployed, or whose code
// can not be loaded, are reported as errors.
//
// If multiple callers trigger the load of the same contract concurrently,
// the context of one of them is used for the construction of the instance.
func (r *Registry) Get(ctx *state.Context, address common.Address) (Contract, error) {
	if !address.IsContract() {
		return nil, fmt.Errorf("%w: %v", ErrNotContract, address)
	}
	if contract, found := r.lookup(address); found {
		return contract, nil
	}
	if r.isClosed() {
		return nil, ErrClosed
	}
	res, err, _ := r.loads.Do(string(address[:]), func() (any, error) {
		return r.load(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return res.(Contract), nil
}

// Contains reports whether an instance of the given address is cached.
func (r *Registry) Contains(address common.Address) bool {
	_, found := r.lookup(address)
	return found
}

// Len returns the number of cached instances.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.entries)
}

// Evict removes the instance of the given address from the cache and closes
// its storage. Evicting an address without cached instance is a no-op. A
// load of the address in progress is restarted once it completes, so its
// result reflects the state after the eviction.
func (r *Registry) Evict(address common.Address) error {
	r.mutex.Lock()
	entry, found := r.entries[address]
	delete(r.entries, address)
	if pending, loading := r.loading[address]; loading {
		pending.stale = true
	}
	r.mutex.Unlock()

	if !found {
		return nil
	}
	r.log.Debug("Evicted contract", "address", address)
	return entry.db.Close(nil)
}

// CloseAll removes all instances from the cache and closes their storage.
// Afterwards the registry is closed: loads still in progress are discarded
// and further lookups fail with ErrClosed. Closing twice is a no-op.
func (r *Registry) CloseAll() error {
	r.mutex.Lock()
	r.closed = true
	entries := r.entries
	r.entries = map[common.Address]entry{}
	for _, pending := range r.loading {
		pending.stale = true
	}
	r.mutex.Unlock()

	addresses := maps.Keys(entries)
	slices.SortFunc(addresses, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	var errs []error
	for _, address := range addresses {
		if err := entries[address].db.Close(nil); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage of %v: %w", address, err))
		}
	}
	r.log.Debug("Closed all contracts", "count", len(addresses))
	return errors.Join(errs...)
}

func (r *Registry) isClosed() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.closed
}

func (r *Registry) lookup(address common.Address) (Contract, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	entry, found := r.entries[address]
	return entry.contract, found
}

// load instantiates the contract of the given address and adds it to the
// cache. It must only be called through the single-flight group.
func (r *Registry) load(ctx *state.Context, address common.Address) (Contract, error) {
	for {
		// A load that finished between the cache lookup and joining the
		// group has already added the instance.
		r.mutex.Lock()
		if entry, found := r.entries[address]; found {
			r.mutex.Unlock()
			return entry.contract, nil
		}
		if r.closed {
			r.mutex.Unlock()
			return nil, ErrClosed
		}
		pending := &pendingLoad{}
		r.loading[address] = pending
		r.mutex.Unlock()

		contract, db, err := r.instantiate(ctx, address)

		r.mutex.Lock()
		delete(r.loading, address)
		if err == nil && !pending.stale {
			r.entries[address] = entry{contract: contract, db: db}
		}
		r.mutex.Unlock()

		if err != nil {
			return nil, err
		}
		if !pending.stale {
			r.log.Debug("Loaded contract", "address", address)
			return contract, nil
		}
		r.log.Debug("Contract evicted during load", "address", address)
		if err := db.Close(nil); err != nil {
			return nil, fmt.Errorf("failed to close storage of stale instance of %v: %w", address, err)
		}
		// loop to reload, unless the registry has been closed meanwhile
	}
}

// instantiate checks the deployment of the contract at the given address,
// loads its code and creates a new instance bound to fresh storage.
func (r *Registry) instantiate(ctx *state.Context, address common.Address) (Contract, *state.ContextDB, error) {
	deployed, err := r.oracle.IsDeployed(ctx, address)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check deployment of %v: %w", address, err)
	}
	if !deployed {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotDeployed, address)
	}

	code, err := r.loader.Load(address)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v: %w", ErrLoadFailed, address, err)
	}
	if code == nil {
		return nil, nil, fmt.Errorf("%w: no code for %v", ErrLoadFailed, address)
	}

	db := r.database.ContextDB(address)
	contract, err := code.New(ctx, state.NewView(db))
	if err == nil && contract == nil {
		err = errors.New("no instance created")
	}
	if err == nil && contract.Address() != address {
		err = fmt.Errorf("instance reports address %v", contract.Address())
	}
	if err != nil {
		return nil, nil, errors.Join(
			fmt.Errorf("%w: %v: %w", ErrLoadFailed, address, err),
			db.Close(nil),
		)
	}
	return contract, db, nil
}
