// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
)

// Claim - bind the allocation of target to a destination public key
//
// caller must be target, or the amended address if target was amended
func (l *ledger) Claim(caller account.Address, target account.Address, pubKey account.PubKey) ([]Notification, error) {
	return l.mutate("claim", func(trx storage.Transaction) ([]Notification, error) {
		err := l.checkClaim(trx, caller, target)
		if nil != err {
			l.log.Warnf("claim: caller: %s  target: %s  error: %s", caller, target, err)
			return nil, err
		}

		notifications := make([]Notification, 0, 2)

		index, ok := getAssignedIndex(trx, target)
		if !ok {
			n, err := issueIndex(trx, target)
			if nil != err {
				return nil, err
			}
			index = n.Index
			notifications = append(notifications, n)
		}

		position := getClaimedLength(trx)
		length, err := add(position, 1)
		if nil != err {
			return nil, err
		}

		count := getPubKeyCount(trx, pubKey)
		nextCount, err := add(count, 1)
		if nil != err {
			return nil, err
		}

		trx.Put(storage.Pool.Claims, target.Bytes(), packClaim(index, pubKey))
		trx.Put(storage.Pool.ClaimedOrder, storage.NumberBytes(position), target.Bytes())
		trx.PutN(storage.Pool.Globals, claimedLengthKey, length)
		trx.Put(storage.Pool.PubKeyClaims, pubKeyClaimKey(pubKey, count), target.Bytes())
		trx.PutN(storage.Pool.PubKeyCount, pubKey.Bytes(), nextCount)

		notifications = append(notifications, Claimed{
			Address: target,
			PubKey:  pubKey,
			Index:   index,
		})
		return notifications, nil
	})
}

// preconditions in order: gate, allocation, not claimed, authorised sender
func (l *ledger) checkClaim(r storage.Reader, caller account.Address, target account.Address) error {
	if !l.isOpen(r) {
		return fault.SetupNotElapsed
	}

	amount, err := l.tokens.BalanceOf(target)
	if nil != err {
		return err
	}
	if 0 == amount {
		return fault.NoAllocation
	}

	if isClaimed(r, target) {
		return fault.AlreadyClaimed
	}

	amendedTo, amended := getAmendment(r, target)
	switch {
	case amended && caller != amendedTo:
		return fault.NotAmendmentAddress
	case !amended && caller != target:
		return fault.NotAllocationAddress
	}
	return nil
}

// HasClaimed - whether an allocated address has claimed
func (l *ledger) HasClaimed(address account.Address) (bool, error) {
	l.RLock()
	defer l.RUnlock()

	amount, err := l.tokens.BalanceOf(address)
	if nil != err {
		return false, err
	}
	if 0 == amount {
		return false, fault.NoAllocation
	}
	return isClaimed(storage.Committed, address), nil
}

// Claims - the claim record of an address
//
// false if the address has not claimed, the record still carries any
// vested amount
func (l *ledger) Claims(address account.Address) (ClaimRecord, bool) {
	l.RLock()
	defer l.RUnlock()

	record := ClaimRecord{
		Vested: getVested(storage.Committed, address),
	}
	index, pubKey, found := getClaim(storage.Committed, address)
	if found {
		record.Index = index
		record.PubKey = pubKey
	}
	return record, found
}

// Claimed - the address at a position in claim order
func (l *ledger) Claimed(position uint64) (account.Address, error) {
	l.RLock()
	defer l.RUnlock()

	address, found := getClaimedAt(storage.Committed, position)
	if !found {
		return account.Address{}, fault.ClaimedPositionNotFound
	}
	return address, nil
}

// ClaimedLength - number of claims made
func (l *ledger) ClaimedLength() uint64 {
	l.RLock()
	defer l.RUnlock()
	return getClaimedLength(storage.Committed)
}

// ClaimsForPubKey - the address at a position in the claims to a public key
func (l *ledger) ClaimsForPubKey(pubKey account.PubKey, position uint64) (account.Address, error) {
	l.RLock()
	defer l.RUnlock()

	address, found := getPubKeyClaim(storage.Committed, pubKey, position)
	if !found {
		return account.Address{}, fault.PubKeyPositionNotFound
	}
	return address, nil
}

// ClaimsForPubKeyLength - number of addresses claimed to a public key
func (l *ledger) ClaimsForPubKeyLength(pubKey account.PubKey) uint64 {
	l.RLock()
	defer l.RUnlock()
	return getPubKeyCount(storage.Committed, pubKey)
}
