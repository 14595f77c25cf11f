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

// SetVesting - set the initial vesting of unclaimed, unvested addresses
func (l *ledger) SetVesting(caller account.Address, addresses []account.Address, amounts []uint64) ([]Notification, error) {
	return l.mutate("setVesting", func(trx storage.Transaction) ([]Notification, error) {
		if err := l.onlyOwner(caller); nil != err {
			l.log.Warnf("setVesting: caller: %s  error: %s", caller, err)
			return nil, err
		}
		if len(addresses) != len(amounts) {
			return nil, fault.LengthMismatch
		}

		notifications := make([]Notification, 0, len(addresses))
		for i, address := range addresses {
			err := checkSetVesting(trx, address, amounts[i])
			if nil != err {
				l.log.Warnf("setVesting: [%d] %s  amount: %d  error: %s", i, address, amounts[i], err)
				return nil, err
			}

			trx.PutN(storage.Pool.Vesting, address.Bytes(), amounts[i])
			notifications = append(notifications, Vested{
				Address: address,
				Amount:  amounts[i],
			})
		}
		return notifications, nil
	})
}

func checkSetVesting(r storage.Reader, address account.Address, amount uint64) error {
	if isClaimed(r, address) {
		return fault.AlreadyClaimed
	}
	if 0 != getVested(r, address) {
		return fault.AlreadyVested
	}
	if 0 == amount {
		return fault.ZeroVestingAmount
	}
	return nil
}

// IncreaseVesting - add to vested amounts, claimed or not
func (l *ledger) IncreaseVesting(caller account.Address, addresses []account.Address, amounts []uint64) ([]Notification, error) {
	return l.mutate("increaseVesting", func(trx storage.Transaction) ([]Notification, error) {
		if err := l.onlyOwner(caller); nil != err {
			l.log.Warnf("increaseVesting: caller: %s  error: %s", caller, err)
			return nil, err
		}
		if len(addresses) != len(amounts) {
			return nil, fault.LengthMismatch
		}

		notifications := make([]Notification, 0, len(addresses))
		for i, address := range addresses {
			total, err := add(getVested(trx, address), amounts[i])
			if nil != err {
				l.log.Warnf("increaseVesting: [%d] %s  amount: %d  error: %s", i, address, amounts[i], err)
				return nil, err
			}

			trx.PutN(storage.Pool.Vesting, address.Bytes(), total)
			notifications = append(notifications, VestingIncreased{
				Address: address,
				Amount:  amounts[i],
				Total:   total,
			})
		}
		return notifications, nil
	})
}

// Vested - the vested amount of an address, zero if never set
func (l *ledger) Vested(address account.Address) uint64 {
	l.RLock()
	defer l.RUnlock()
	return getVested(storage.Committed, address)
}
