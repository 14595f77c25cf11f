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

// Amend - redirect the claim right of unclaimed addresses
//
// a later amend of the same address replaces the redirect, amending
// to the zero address removes it
func (l *ledger) Amend(caller account.Address, origs []account.Address, amendedTos []account.Address) ([]Notification, error) {
	return l.mutate("amend", func(trx storage.Transaction) ([]Notification, error) {
		if err := l.onlyOwner(caller); nil != err {
			l.log.Warnf("amend: caller: %s  error: %s", caller, err)
			return nil, err
		}
		if len(origs) != len(amendedTos) {
			return nil, fault.LengthMismatch
		}

		notifications := make([]Notification, 0, len(origs))
		for i, orig := range origs {
			if isClaimed(trx, orig) {
				l.log.Warnf("amend: [%d] %s  error: %s", i, orig, fault.AlreadyClaimed)
				return nil, fault.AlreadyClaimed
			}

			amendedTo := amendedTos[i]
			if amendedTo.IsZero() {
				trx.Delete(storage.Pool.Amendments, orig.Bytes())
			} else {
				trx.Put(storage.Pool.Amendments, orig.Bytes(), amendedTo.Bytes())
			}

			notifications = append(notifications, Amended{
				Original:  orig,
				AmendedTo: amendedTo,
			})
		}
		return notifications, nil
	})
}

// Amended - the address allowed to claim for an original address
//
// false if there is no redirect
func (l *ledger) Amended(address account.Address) (account.Address, bool) {
	l.RLock()
	defer l.RUnlock()
	return getAmendment(storage.Committed, address)
}
