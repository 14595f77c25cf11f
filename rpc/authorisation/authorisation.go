// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorisation - signed request envelopes for mutating RPC calls
//
// a request is signed by the caller's Ethereum key over
//
//   keccak256(method ++ 0x00 ++ nonce(8 bytes big endian) ++ json(payload))
//
// wrapped in the personal message prefix, so an ordinary wallet can
// produce the signature.  Each caller has a strictly increasing nonce
// held in the Nonces pool.
package authorisation

import (
	"encoding/json"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
)

// Authorisation - identifies and authenticates the caller of a request
type Authorisation struct {
	Caller    account.Address   `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Digest - the hash a caller signs for one request
func Digest(method string, nonce uint64, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, len(method)+1+8+len(data))
	buffer = append(buffer, method...)
	buffer = append(buffer, 0x00)
	buffer = append(buffer, storage.NumberBytes(nonce)...)
	buffer = append(buffer, data...)

	return account.PersonalDigest(account.Keccak256(buffer)), nil
}

// Sign - build the authorisation for a request
func Sign(key *account.PrivateKey, method string, nonce uint64, payload interface{}) (*Authorisation, error) {
	digest, err := Digest(method, nonce, payload)
	if nil != err {
		return nil, err
	}
	signature, err := key.Sign(digest)
	if nil != err {
		return nil, err
	}
	return &Authorisation{
		Caller:    key.Address(),
		Nonce:     nonce,
		Signature: signature,
	}, nil
}

// Verify - check the signature and consume the nonce
//
// returns the authenticated caller
func Verify(method string, payload interface{}, auth *Authorisation) (account.Address, error) {
	if nil == auth || auth.Caller.IsZero() {
		return account.Address{}, fault.MissingAuthorisation
	}

	digest, err := Digest(method, auth.Nonce, payload)
	if nil != err {
		return account.Address{}, err
	}

	signer, err := account.RecoverAddress(digest, auth.Signature)
	if nil != err {
		return account.Address{}, err
	}
	if signer != auth.Caller {
		return account.Address{}, fault.SignatureDoesNotMatchCaller
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return account.Address{}, err
	}

	last, _ := trx.GetN(storage.Pool.Nonces, auth.Caller.Bytes())
	if auth.Nonce <= last {
		trx.Abort()
		return account.Address{}, fault.InvalidNonce
	}
	trx.PutN(storage.Pool.Nonces, auth.Caller.Bytes(), auth.Nonce)

	if err := trx.Commit(); nil != err {
		return account.Address{}, err
	}
	return auth.Caller, nil
}

// LastNonce - the most recent nonce accepted from an address, zero if none
func LastNonce(address account.Address) uint64 {
	n, found := storage.Pool.Nonces.GetN(address.Bytes())
	if !found {
		return 0
	}
	return n
}

