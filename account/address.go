// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/claimsd/fault"
)

// AddressLength - number of bytes in a source chain address
const AddressLength = 20

// Address - a source chain (Ethereum) account address
type Address [AddressLength]byte

// AddressFromHex - convert a "0x" prefixed hex string to an address
//
// mixed case input must carry a valid EIP-55 checksum, all lower or
// all upper case input is accepted without a checksum
func AddressFromHex(s string) (Address, error) {
	a := Address{}

	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if 2*AddressLength != len(h) {
		return a, fault.InvalidAddress
	}

	b, err := hex.DecodeString(h)
	if nil != err {
		return a, fault.InvalidAddress
	}
	copy(a[:], b)

	if h != strings.ToLower(h) && h != strings.ToUpper(h) {
		if a.checksumHex() != h {
			return Address{}, fault.InvalidAddressChecksum
		}
	}
	return a, nil
}

// AddressFromBytes - convert a 20 byte slice to an address
func AddressFromBytes(b []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(b) {
		return a, fault.InvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equal - byte comparison
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a[:], b[:])
}

// String - "0x" prefixed EIP-55 checksum hex
func (a Address) String() string {
	return "0x" + a.checksumHex()
}

// MarshalText - convert an address to text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an address
func (a *Address) UnmarshalText(s []byte) error {
	address, err := AddressFromHex(string(s))
	if nil != err {
		return err
	}
	*a = address
	return nil
}

// EIP-55: upper case each hex letter whose matching nibble of the
// Keccak-256 of the lower case hex is 8 or more
func (a Address) checksumHex() string {
	lower := []byte(hex.EncodeToString(a[:]))
	digest := Keccak256(lower)

	for i, c := range lower {
		if c < 'a' {
			continue
		}
		nibble := digest[i/2]
		if 0 == i%2 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			lower[i] = c - 'a' + 'A'
		}
	}
	return string(lower)
}

// Keccak256 - the original Keccak variant of SHA3-256 used by Ethereum
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
