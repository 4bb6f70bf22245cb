// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import "github.com/inconshreveable/log15"

// NewDiscardLogger creates the logger used by a library module if its user
// did not provide one. Records are discarded. Applications wanting library
// logs pass a logger derived from log15.Root() instead.
func NewDiscardLogger(module string) log15.Logger {
	logger := log15.New("module", module)
	logger.SetHandler(log15.DiscardHandler())
	return logger
}
