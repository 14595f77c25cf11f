// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec"

	"github.com/bitmark-inc/claimsd/fault"
)

// SignatureLength - R ++ S ++ V
const SignatureLength = 65

// recovery id offset used by both Ethereum and the compact format
const recoveryOffset = 27

const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// Signature - a recoverable secp256k1 signature in Ethereum layout
type Signature []byte

// MarshalText - hex encode a signature
func (s Signature) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(s)), nil
}

// UnmarshalText - decode a hex signature
func (s *Signature) UnmarshalText(text []byte) error {
	h := strings.TrimPrefix(string(text), "0x")
	b, err := hex.DecodeString(h)
	if nil != err || SignatureLength != len(b) {
		return fault.InvalidSignature
	}
	*s = b
	return nil
}

// PersonalDigest - the digest signed by wallets for a 32 byte message hash
func PersonalDigest(hash []byte) []byte {
	prefix := personalMessagePrefix + strconv.Itoa(len(hash))
	return Keccak256([]byte(prefix), hash)
}

// PrivateKey - a secp256k1 key able to sign requests
type PrivateKey struct {
	key *btcec.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromHex - decode a 32 byte hex private key
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if nil != err || btcec.PrivKeyBytesLen != len(b) {
		return nil, fault.InvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return &PrivateKey{key: key}, nil
}

// Hex - the private key as hex
func (p *PrivateKey) Hex() string {
	return hex.EncodeToString(p.key.Serialize())
}

// Address - the address controlled by this key
func (p *PrivateKey) Address() Address {
	return addressFromPublicKey(p.key.PubKey())
}

// Sign - produce an R ++ S ++ V signature over a 32 byte digest
func (p *PrivateKey) Sign(digest []byte) (Signature, error) {
	compact, err := btcec.SignCompact(btcec.S256(), p.key, digest, false)
	if nil != err {
		return nil, err
	}

	// compact layout is V ++ R ++ S
	signature := make([]byte, SignatureLength)
	copy(signature, compact[1:])
	signature[SignatureLength-1] = compact[0]
	return signature, nil
}

// RecoverAddress - determine which address produced the signature
func RecoverAddress(digest []byte, signature Signature) (Address, error) {
	if SignatureLength != len(signature) {
		return Address{}, fault.InvalidSignature
	}

	v := signature[SignatureLength-1]
	if v < recoveryOffset {
		v += recoveryOffset
	}
	if v != recoveryOffset && v != recoveryOffset+1 {
		return Address{}, fault.WrongSignatureRecoveryID
	}

	compact := make([]byte, SignatureLength)
	compact[0] = v
	copy(compact[1:], signature[:SignatureLength-1])

	publicKey, _, err := btcec.RecoverCompact(btcec.S256(), compact, digest)
	if nil != err {
		return Address{}, fault.InvalidSignature
	}
	return addressFromPublicKey(publicKey), nil
}

// the last 20 bytes of the Keccak-256 of the uncompressed key without its 0x04 tag
func addressFromPublicKey(publicKey *btcec.PublicKey) Address {
	uncompressed := publicKey.SerializeUncompressed()
	digest := Keccak256(uncompressed[1:])

	a := Address{}
	copy(a[:], digest[len(digest)-AddressLength:])
	return a
}
