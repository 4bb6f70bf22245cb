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
	"os"

	"github.com/urfave/cli/v2"
)

var Export = cli.Command{
	Action:    export,
	Name:      "export",
	Usage:     "writes all entries of a database into a compressed file",
	ArgsUsage: "<directory> <file>",
}

var Import = cli.Command{
	Action:    importEntries,
	Name:      "import",
	Usage:     "adds all entries of an exported file to a database",
	ArgsUsage: "<directory> <file>",
}

func export(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected directory and output file")
	}
	dir, path := context.Args().Get(0), context.Args().Get(1)

	store, err := openStore(context, dir, true)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Join(err, store.Close())
	}
	count, err := store.Export(context.Context, file)
	if err = errors.Join(err, file.Close(), store.Close()); err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "Exported %d entries from %s to %s\n", count, dir, path)
	return nil
}

func importEntries(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected directory and input file")
	}
	dir, path := context.Args().Get(0), context.Args().Get(1)

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	store, err := openStore(context, dir, false)
	if err != nil {
		return errors.Join(err, file.Close())
	}
	count, err := store.Import(file)
	if err = errors.Join(err, file.Close(), store.Close()); err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "Imported %d entries from %s into %s\n", count, path, dir)
	return nil
}
