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

// AssignIndices - give each allocated address the next index
//
// the owner may assign at any time, anyone else only once the gate is open
func (l *ledger) AssignIndices(caller account.Address, addresses []account.Address) ([]Notification, error) {
	return l.mutate("assignIndices", func(trx storage.Transaction) ([]Notification, error) {
		if caller != l.owner && !l.isOpen(trx) {
			l.log.Warnf("assignIndices: caller: %s  error: %s", caller, fault.Unauthorized)
			return nil, fault.Unauthorized
		}

		notifications := make([]Notification, 0, len(addresses))
		for i, address := range addresses {
			amount, err := l.tokens.BalanceOf(address)
			if nil != err {
				return nil, err
			}
			if 0 == amount {
				l.log.Warnf("assignIndices: [%d] %s  error: %s", i, address, fault.NoAllocation)
				return nil, fault.NoAllocation
			}
			if _, ok := getAssignedIndex(trx, address); ok {
				l.log.Warnf("assignIndices: [%d] %s  error: %s", i, address, fault.IndexAlreadyAssigned)
				return nil, fault.IndexAlreadyAssigned
			}

			n, err := issueIndex(trx, address)
			if nil != err {
				return nil, err
			}
			notifications = append(notifications, n)
		}
		return notifications, nil
	})
}

// issueIndex - the only place indices are created
//
// shared by explicit assignment and claim so the sequence stays dense
func issueIndex(trx storage.Transaction, address account.Address) (IndexAssigned, error) {
	index := getNextIndex(trx)
	next, err := add(index, 1)
	if nil != err {
		return IndexAssigned{}, err
	}

	trx.PutN(storage.Pool.Indices, address.Bytes(), index)
	trx.PutN(storage.Pool.Globals, nextIndexKey, next)

	return IndexAssigned{
		Address: address,
		Index:   index,
	}, nil
}

// NextIndex - the index the next assignment will receive
func (l *ledger) NextIndex() uint64 {
	l.RLock()
	defer l.RUnlock()
	return getNextIndex(storage.Committed)
}

// AssignedIndex - the index of an address, false if none assigned
func (l *ledger) AssignedIndex(address account.Address) (uint64, bool) {
	l.RLock()
	defer l.RUnlock()
	return getAssignedIndex(storage.Committed, address)
}
