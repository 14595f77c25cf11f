// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/storage"
)

// the clock is clamped below the freeze sentinel so that a frozen
// threshold is never reached
func (l *ledger) now() uint64 {
	now := l.clock.Now()
	if now >= MaximumAmount {
		return MaximumAmount - 1
	}
	return now
}

func (l *ledger) isOpen(r storage.Reader) bool {
	return l.now() >= getEndSetupDelay(r)
}

// IsOpen - true once the setup delay has elapsed and the ledger is not frozen
func (l *ledger) IsOpen() bool {
	l.RLock()
	defer l.RUnlock()
	return l.isOpen(storage.Committed)
}

// EndSetupDelay - the clock value from which claims are accepted
func (l *ledger) EndSetupDelay() uint64 {
	l.RLock()
	defer l.RUnlock()
	return getEndSetupDelay(storage.Committed)
}

// Freeze - close the gate permanently
//
// claims become impossible and index assignment is restricted to the owner
func (l *ledger) Freeze(caller account.Address) ([]Notification, error) {
	return l.mutate("freeze", func(trx storage.Transaction) ([]Notification, error) {
		if err := l.onlyOwner(caller); nil != err {
			l.log.Warnf("freeze: caller: %s  error: %s", caller, err)
			return nil, err
		}
		trx.PutN(storage.Pool.Globals, endSetupDelayKey, MaximumAmount)
		return []Notification{Frozen{EndSetupDelay: MaximumAmount}}, nil
	})
}
