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

// InjectSaleAmount - add owner issued credit to public keys
func (l *ledger) InjectSaleAmount(caller account.Address, pubKeys []account.PubKey, amounts []uint64) ([]Notification, error) {
	return l.mutate("injectSaleAmount", func(trx storage.Transaction) ([]Notification, error) {
		if err := l.onlyOwner(caller); nil != err {
			l.log.Warnf("injectSaleAmount: caller: %s  error: %s", caller, err)
			return nil, err
		}
		if len(pubKeys) != len(amounts) {
			return nil, fault.LengthMismatch
		}

		notifications := make([]Notification, 0, len(pubKeys))
		for i, pubKey := range pubKeys {
			total, err := add(getSaleCredit(trx, pubKey), amounts[i])
			if nil != err {
				l.log.Warnf("injectSaleAmount: [%d] %s  amount: %d  error: %s", i, pubKey, amounts[i], err)
				return nil, err
			}

			trx.PutN(storage.Pool.SaleCredit, pubKey.Bytes(), total)
			notifications = append(notifications, SaleInjected{
				PubKey: pubKey,
				Amount: amounts[i],
				Total:  total,
			})
		}
		return notifications, nil
	})
}

// SaleCredit - the accumulated sale credit of a public key
func (l *ledger) SaleCredit(pubKey account.PubKey) uint64 {
	l.RLock()
	defer l.RUnlock()
	return getSaleCredit(storage.Committed, pubKey)
}

// BalanceOfPubKey - live token balances of every address claimed to
// the key plus its sale credit
func (l *ledger) BalanceOfPubKey(pubKey account.PubKey) (uint64, error) {
	l.RLock()
	defer l.RUnlock()

	total := getSaleCredit(storage.Committed, pubKey)

	count := getPubKeyCount(storage.Committed, pubKey)
	for position := uint64(0); position < count; position += 1 {
		address, found := getPubKeyClaim(storage.Committed, pubKey, position)
		if !found {
			return 0, fault.PubKeyPositionNotFound
		}

		amount, err := l.tokens.BalanceOf(address)
		if nil != err {
			return 0, err
		}

		total, err = add(total, amount)
		if nil != err {
			return 0, err
		}
	}
	return total, nil
}

// Allocation - the live frozen token balance of an address
func (l *ledger) Allocation(address account.Address) (uint64, error) {
	return l.tokens.BalanceOf(address)
}
