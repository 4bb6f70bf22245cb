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
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// AddressBodyLength is the number of bytes identifying an account.
	AddressBodyLength = 20
	// AddressLength is the length of an encoded address: a kind byte
	// followed by the body.
	AddressLength = AddressBodyLength + 1
)

// AddressKind distinguishes externally owned accounts from contracts.
type AddressKind byte

const (
	EOA AddressKind = iota
	Contract
)

const (
	eoaPrefix      = "hx"
	contractPrefix = "cx"
)

const ErrInvalidAddress = ConstError("invalid address")

// Address identifies an account. The first byte encodes the kind of the
// account, the remaining bytes its body.
type Address [AddressLength]byte

// NewAddress creates an address of the given kind from a 20-byte body.
func NewAddress(kind AddressKind, body [AddressBodyLength]byte) Address {
	var res Address
	res[0] = byte(kind)
	copy(res[1:], body[:])
	return res
}

// ContractAddress is a shortcut for NewAddress(Contract, body).
func ContractAddress(body [AddressBodyLength]byte) Address {
	return NewAddress(Contract, body)
}

// EOAAddress is a shortcut for NewAddress(EOA, body).
func EOAAddress(body [AddressBodyLength]byte) Address {
	return NewAddress(EOA, body)
}

func (a Address) Kind() AddressKind {
	return AddressKind(a[0])
}

func (a Address) IsContract() bool {
	return a.Kind() == Contract
}

// Body returns the 20 bytes identifying the account, without its kind.
func (a Address) Body() []byte {
	return a[1:]
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	prefix := eoaPrefix
	if a.IsContract() {
		prefix = contractPrefix
	}
	return prefix + strings.TrimPrefix(hexutil.Encode(a.Body()), "0x")
}

// ParseAddress parses the text form produced by Address.String, e.g.
// "cx" followed by 40 hex digits.
func ParseAddress(text string) (Address, error) {
	if len(text) != 2+2*AddressBodyLength {
		return Address{}, fmt.Errorf("%w: %q has wrong length", ErrInvalidAddress, text)
	}
	var kind AddressKind
	switch text[:2] {
	case eoaPrefix:
		kind = EOA
	case contractPrefix:
		kind = Contract
	default:
		return Address{}, fmt.Errorf("%w: unknown prefix in %q", ErrInvalidAddress, text)
	}
	body, err := hexutil.Decode("0x" + text[2:])
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return NewAddress(kind, [AddressBodyLength]byte(body)), nil
}
