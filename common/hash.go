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

import (
	"golang.org/x/crypto/sha3"
)

const HashLength = 32

// Hash is a SHA3-256 digest.
type Hash [HashLength]byte

// Sha3 computes the SHA3-256 digest of the concatenation of the given parts.
// The result depends only on the concatenated bytes, not on how they are
// split into parts.
func Sha3(parts ...[]byte) Hash {
	hasher := sha3.New256()
	for _, part := range parts {
		hasher.Write(part)
	}
	var res Hash
	hasher.Sum(res[:0])
	return res
}

// NamespaceOf returns the storage namespace owned by the given address.
func NamespaceOf(address Address) Hash {
	return Sha3(address[:])
}
