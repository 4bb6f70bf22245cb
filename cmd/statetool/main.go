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
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/0xsoniclabs/scorestate/database/kvstore"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/inconshreveable/log15"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/statetool <command> <flags>

var (
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level, 0=crit 1=error 2=warn 3=info 4=debug",
		Value: int(log15.LvlWarn),
	}
	cacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "size of the LevelDB block cache in bytes, 0 for a memory based default",
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "statetool",
		Usage:     "inspects and maintains contract state databases",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Flags: []cli.Flag{
			&verbosityFlag,
			&cacheFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&Get,
			&Put,
			&Export,
			&Import,
			&Stats,
		},
	}
}

func setupLogging(context *cli.Context) error {
	level := log15.Lvl(context.Int(verbosityFlag.Name))
	if level < log15.LvlCrit || level > log15.LvlDebug {
		return fmt.Errorf("invalid verbosity %d", level)
	}
	log15.Root().SetHandler(log15.LvlFilterHandler(
		level,
		log15.StreamHandler(context.App.ErrWriter, log15.TerminalFormat()),
	))
	return nil
}

// openStore opens the LevelDB instance in the given directory using the
// global flags of the tool. Only writable stores are created if missing.
func openStore(context *cli.Context, dir string, readOnly bool) (*kvstore.LevelDB, error) {
	if _, err := os.Stat(dir); readOnly && err != nil {
		return nil, fmt.Errorf("no database at %s: %w", dir, err)
	}
	return kvstore.Open(kvstore.Parameters{
		Directory: dir,
		CacheSize: context.Int(cacheFlag.Name),
		ReadOnly:  readOnly,
		Logger:    log15.New("module", "statetool"),
	})
}

// parseBytes interprets a command line argument as hex if it carries a 0x
// prefix and as plain text otherwise.
func parseBytes(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "0x") {
		return hexutil.Decode(arg)
	}
	return []byte(arg), nil
}
