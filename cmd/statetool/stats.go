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

	"github.com/urfave/cli/v2"
)

var Stats = cli.Command{
	Action:    stats,
	Name:      "stats",
	Usage:     "prints statistics of the LevelDB instance of a database",
	ArgsUsage: "<directory>",
}

func stats(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing directory storing state")
	}
	store, err := openStore(context, context.Args().Get(0), true)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err = errors.Join(err, store.Close()); err != nil {
		return err
	}

	out := context.App.Writer
	fmt.Fprintf(out, "Block cache:    %d bytes\n", stats.BlockCacheSize)
	fmt.Fprintf(out, "Open tables:    %d\n", stats.OpenedTablesCount)
	fmt.Fprintf(out, "Disk read:      %d bytes\n", stats.IORead)
	fmt.Fprintf(out, "Disk write:     %d bytes\n", stats.IOWrite)
	fmt.Fprintf(out, "Total size:     %d bytes\n", stats.LevelSizes.Sum())
	for level, tables := range stats.LevelTablesCounts {
		fmt.Fprintf(out, "Level %d:        %d tables, %d bytes\n", level, tables, stats.LevelSizes[level])
	}
	return nil
}
