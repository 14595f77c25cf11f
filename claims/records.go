// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/binary"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
)

// Globals pool keys
var (
	ownerKey         = []byte("owner")
	endSetupDelayKey = []byte("endSetupDelay")
	nextIndexKey     = []byte("nextIndex")
	claimedLengthKey = []byte("claimedLength")
)

// ClaimRecord - the result of a claim
//
// Vested is the current vested amount, which may be set before the
// claim happens
type ClaimRecord struct {
	Index  uint64         `json:"index,string"`
	PubKey account.PubKey `json:"pubKey"`
	Vested uint64         `json:"vested,string"`
}

// claim record data: index ++ pubKey
const claimDataLength = 8 + account.PubKeyLength

func packClaim(index uint64, pubKey account.PubKey) []byte {
	return append(storage.NumberBytes(index), pubKey.Bytes()...)
}

func storedOwner(r storage.Reader) (account.Address, bool) {
	data := r.Get(storage.Pool.Globals, ownerKey)
	if nil == data {
		return account.Address{}, false
	}
	owner, err := account.AddressFromBytes(data)
	fault.PanicIfError("claims.storedOwner", err)
	return owner, true
}

func getEndSetupDelay(r storage.Reader) uint64 {
	n, _ := r.GetN(storage.Pool.Globals, endSetupDelayKey)
	return n
}

func getNextIndex(r storage.Reader) uint64 {
	n, _ := r.GetN(storage.Pool.Globals, nextIndexKey)
	return n
}

func getClaimedLength(r storage.Reader) uint64 {
	n, _ := r.GetN(storage.Pool.Globals, claimedLengthKey)
	return n
}

func getAssignedIndex(r storage.Reader, address account.Address) (uint64, bool) {
	return r.GetN(storage.Pool.Indices, address.Bytes())
}

func isClaimed(r storage.Reader, address account.Address) bool {
	return r.Has(storage.Pool.Claims, address.Bytes())
}

// returns the index and public key of a claim
func getClaim(r storage.Reader, address account.Address) (uint64, account.PubKey, bool) {
	data := r.Get(storage.Pool.Claims, address.Bytes())
	if nil == data {
		return 0, account.PubKey{}, false
	}
	if claimDataLength != len(data) {
		fault.Panicf("claims.getClaim truncated record for: %s: %x", address, data)
	}
	index := binary.BigEndian.Uint64(data[:8])
	pubKey, err := account.PubKeyFromBytes(data[8:])
	fault.PanicIfError("claims.getClaim", err)
	return index, pubKey, true
}

func getAmendment(r storage.Reader, address account.Address) (account.Address, bool) {
	data := r.Get(storage.Pool.Amendments, address.Bytes())
	if nil == data {
		return account.Address{}, false
	}
	amendedTo, err := account.AddressFromBytes(data)
	fault.PanicIfError("claims.getAmendment", err)
	return amendedTo, true
}

func getVested(r storage.Reader, address account.Address) uint64 {
	n, _ := r.GetN(storage.Pool.Vesting, address.Bytes())
	return n
}

func getSaleCredit(r storage.Reader, pubKey account.PubKey) uint64 {
	n, _ := r.GetN(storage.Pool.SaleCredit, pubKey.Bytes())
	return n
}

func getPubKeyCount(r storage.Reader, pubKey account.PubKey) uint64 {
	n, _ := r.GetN(storage.Pool.PubKeyCount, pubKey.Bytes())
	return n
}

// key: pubKey ++ position
func pubKeyClaimKey(pubKey account.PubKey, position uint64) []byte {
	return append(pubKey.Bytes(), storage.NumberBytes(position)...)
}

func getPubKeyClaim(r storage.Reader, pubKey account.PubKey, position uint64) (account.Address, bool) {
	data := r.Get(storage.Pool.PubKeyClaims, pubKeyClaimKey(pubKey, position))
	if nil == data {
		return account.Address{}, false
	}
	address, err := account.AddressFromBytes(data)
	fault.PanicIfError("claims.getPubKeyClaim", err)
	return address, true
}

func getClaimedAt(r storage.Reader, position uint64) (account.Address, bool) {
	data := r.Get(storage.Pool.ClaimedOrder, storage.NumberBytes(position))
	if nil == data {
		return account.Address{}, false
	}
	address, err := account.AddressFromBytes(data)
	fault.PanicIfError("claims.getClaimedAt", err)
	return address, true
}
