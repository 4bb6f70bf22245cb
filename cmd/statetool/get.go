// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/scorestate/common"
	"github.com/0xsoniclabs/scorestate/state"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/inconshreveable/log15"
	"github.com/urfave/cli/v2"
)

var Get = cli.Command{
	Action:    get,
	Name:      "get",
	Usage:     "prints the value of a logical key of a contract",
	ArgsUsage: "<directory> <address> <key> [<prefix>...]",
}

var Put = cli.Command{
	Action:    put,
	Name:      "put",
	Usage:     "sets the value of a logical key of a contract",
	ArgsUsage: "<directory> <address> <key> <value> [<prefix>...]",
}

func get(context *cli.Context) error {
	args := context.Args()
	if args.Len() < 3 {
		return fmt.Errorf("expected directory, address and key")
	}
	key, err := parseBytes(args.Get(2))
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	var value []byte
	var found bool
	err = withView(context, args.Get(0), args.Get(1), args.Slice()[3:], true, func(view *state.View) error {
		value, found, err = view.Get(nil, key)
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("key %q not found", args.Get(2))
	}
	fmt.Fprintf(context.App.Writer, "%s\n", hexutil.Encode(value))
	return nil
}

func put(context *cli.Context) error {
	args := context.Args()
	if args.Len() < 4 {
		return fmt.Errorf("expected directory, address, key and value")
	}
	key, err := parseBytes(args.Get(2))
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	value, err := parseBytes(args.Get(3))
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	return withView(context, args.Get(0), args.Get(1), args.Slice()[4:], false, func(view *state.View) error {
		return view.Put(nil, key, value)
	})
}

// withView runs the given operation on the view of a contract's storage
// selected by the address and prefix chain. Operations run in direct mode.
func withView(
	context *cli.Context,
	dir, address string,
	prefixes []string,
	readOnly bool,
	op func(*state.View) error,
) error {
	addr, err := common.ParseAddress(address)
	if err != nil {
		return err
	}
	store, err := openStore(context, dir, readOnly)
	if err != nil {
		return err
	}
	database := state.NewDatabase(store, log15.New("module", "state"))
	db := database.ContextDB(addr)

	view := state.NewView(db)
	for _, arg := range prefixes {
		prefix, err := parseBytes(arg)
		if err != nil {
			return errors.Join(
				fmt.Errorf("invalid prefix: %w", err),
				db.Close(nil),
				database.Close(nil),
			)
		}
		view = view.Child(prefix)
	}
	return errors.Join(
		op(view),
		db.Close(nil),
		database.Close(nil),
	)
}
