// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/claimsd/fault"
)

// SS58 network prefixes
const (
	PolkadotPrefix  = 0
	KusamaPrefix    = 2
	SubstratePrefix = 42
)

const (
	ss58ChecksumLength = 2
	ss58SimplePrefix   = 64    // prefixes below this are a single byte
	ss58MaximumPrefix  = 16383 // fourteen bits in the two byte form
)

var ss58Context = []byte("SS58PRE")

// DecodeSS58 - extract the public key and network prefix from an
// SS58 encoded destination address
func DecodeSS58(address string) (PubKey, uint16, error) {
	data, err := base58.Decode(address)
	if nil != err || 0 == len(data) {
		return PubKey{}, 0, fault.InvalidSS58Address
	}

	prefix := uint16(data[0])
	prefixLength := 1
	if data[0] >= ss58SimplePrefix {
		if data[0] >= 2*ss58SimplePrefix || len(data) < 2 {
			return PubKey{}, 0, fault.InvalidSS58Address
		}
		lower := (data[0]<<2 | data[1]>>6) & 0xff
		upper := data[1] & 0x3f
		prefix = uint16(lower) | uint16(upper)<<8
		prefixLength = 2
	}

	if prefixLength+PubKeyLength+ss58ChecksumLength != len(data) {
		return PubKey{}, 0, fault.InvalidSS58Address
	}

	payloadEnd := len(data) - ss58ChecksumLength
	checksum := ss58Checksum(data[:payloadEnd])
	if !bytes.Equal(checksum[:ss58ChecksumLength], data[payloadEnd:]) {
		return PubKey{}, 0, fault.InvalidSS58Checksum
	}

	pubKey, err := PubKeyFromBytes(data[prefixLength:payloadEnd])
	return pubKey, prefix, err
}

// EncodeSS58 - encode a public key as an SS58 address for a network prefix
func EncodeSS58(pubKey PubKey, prefix uint16) (string, error) {
	var data []byte
	switch {
	case prefix < ss58SimplePrefix:
		data = []byte{byte(prefix)}
	case prefix <= ss58MaximumPrefix:
		first := byte((prefix&0xfc)>>2) | 0x40
		second := byte(prefix>>8) | byte(prefix&0x03)<<6
		data = []byte{first, second}
	default:
		return "", fault.InvalidSS58Address
	}

	data = append(data, pubKey[:]...)
	checksum := ss58Checksum(data)
	data = append(data, checksum[:ss58ChecksumLength]...)

	return base58.Encode(data), nil
}

func ss58Checksum(payload []byte) [blake2b.Size]byte {
	buffer := make([]byte, 0, len(ss58Context)+len(payload))
	buffer = append(buffer, ss58Context...)
	buffer = append(buffer, payload...)
	return blake2b.Sum512(buffer)
}
