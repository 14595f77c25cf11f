// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/claimsd/fault"
)

// PubKeyLength - number of bytes in a destination chain public key
const PubKeyLength = 32

// PubKey - a destination chain public identity
type PubKey [PubKeyLength]byte

// PubKeyFromHex - convert a "0x" prefixed hex string to a public key
func PubKeyFromHex(s string) (PubKey, error) {
	p := PubKey{}

	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if 2*PubKeyLength != len(h) {
		return p, fault.InvalidPubKey
	}

	b, err := hex.DecodeString(h)
	if nil != err {
		return p, fault.InvalidPubKey
	}
	copy(p[:], b)
	return p, nil
}

// PubKeyFromBytes - convert a 32 byte slice to a public key
func PubKeyFromBytes(b []byte) (PubKey, error) {
	p := PubKey{}
	if PubKeyLength != len(b) {
		return p, fault.InvalidPubKey
	}
	copy(p[:], b)
	return p, nil
}

// Bytes - the key as a byte slice
func (p PubKey) Bytes() []byte {
	return p[:]
}

// String - "0x" prefixed lower case hex
func (p PubKey) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// MarshalText - convert a public key to text
func (p PubKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - convert text into a public key
func (p *PubKey) UnmarshalText(s []byte) error {
	pubKey, err := PubKeyFromHex(string(s))
	if nil != err {
		return err
	}
	*p = pubKey
	return nil
}
