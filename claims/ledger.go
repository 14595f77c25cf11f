// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"math"
	"sync"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
	"github.com/bitmark-inc/claimsd/token"
	"github.com/bitmark-inc/logger"
)

// MaximumAmount - the largest representable amount, index or time
const MaximumAmount uint64 = math.MaxUint64

// Ledger - the claims ledger operations
//
//go:generate mockgen -destination=../rpc/mocks/ledger.go -package=mocks github.com/bitmark-inc/claimsd/claims Ledger
type Ledger interface {
	AssignIndices(account.Address, []account.Address) ([]Notification, error)
	Amend(account.Address, []account.Address, []account.Address) ([]Notification, error)
	Claim(account.Address, account.Address, account.PubKey) ([]Notification, error)
	SetVesting(account.Address, []account.Address, []uint64) ([]Notification, error)
	IncreaseVesting(account.Address, []account.Address, []uint64) ([]Notification, error)
	InjectSaleAmount(account.Address, []account.PubKey, []uint64) ([]Notification, error)
	Freeze(account.Address) ([]Notification, error)

	HasClaimed(account.Address) (bool, error)
	BalanceOfPubKey(account.PubKey) (uint64, error)
	Allocation(account.Address) (uint64, error)
	NextIndex() uint64
	AssignedIndex(account.Address) (uint64, bool)
	Claimed(uint64) (account.Address, error)
	ClaimedLength() uint64
	Claims(account.Address) (ClaimRecord, bool)
	ClaimsForPubKey(account.PubKey, uint64) (account.Address, error)
	ClaimsForPubKeyLength(account.PubKey) uint64
	Amended(account.Address) (account.Address, bool)
	Vested(account.Address) uint64
	SaleCredit(account.PubKey) uint64
	EndSetupDelay() uint64
	IsOpen() bool
	Owner() account.Address
}

type ledger struct {
	sync.RWMutex

	log    *logger.L
	owner  account.Address
	tokens token.Reader
	clock  clock.Clock
}

// New - open the ledger held in storage
//
// the first start records owner and endSetupDelay, later starts must
// supply the same owner and keep the stored threshold (so a freeze
// survives restarts)
func New(owner account.Address, endSetupDelay uint64, tokens token.Reader, clk clock.Clock) (Ledger, error) {
	log := logger.New("claims")

	if owner.IsZero() {
		return nil, fault.MissingOwner
	}

	l := &ledger{
		log:    log,
		owner:  owner,
		tokens: tokens,
		clock:  clk,
	}

	stored, found := storedOwner(storage.Committed)
	if found {
		if stored != owner {
			log.Criticalf("configured owner: %s  stored owner: %s", owner, stored)
			return nil, fault.OwnerMismatch
		}
		current := getEndSetupDelay(storage.Committed)
		if current != endSetupDelay {
			log.Warnf("configured end setup delay: %d ignored, stored: %d", endSetupDelay, current)
		}
		log.Infof("owner: %s  end setup delay: %d  next index: %d", owner, current, getNextIndex(storage.Committed))
		return l, nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(storage.Pool.Globals, ownerKey, owner.Bytes())
	trx.PutN(storage.Pool.Globals, endSetupDelayKey, endSetupDelay)
	trx.PutN(storage.Pool.Globals, nextIndexKey, 0)
	trx.PutN(storage.Pool.Globals, claimedLengthKey, 0)
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	log.Infof("new ledger owner: %s  end setup delay: %d", owner, endSetupDelay)
	return l, nil
}

// Owner - the administrator address
func (l *ledger) Owner() account.Address {
	return l.owner
}

func (l *ledger) onlyOwner(caller account.Address) error {
	if caller != l.owner {
		return fault.Unauthorized
	}
	return nil
}

// run one mutation under the ledger lock inside a single transaction
//
// nothing is written unless f succeeds, and notifications are only
// broadcast after the commit
func (l *ledger) mutate(operation string, f func(storage.Transaction) ([]Notification, error)) ([]Notification, error) {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		l.log.Errorf("%s: transaction error: %s", operation, err)
		return nil, err
	}

	notifications, err := f(trx)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("%s: commit error: %s", operation, err)
		return nil, err
	}

	for _, n := range notifications {
		l.log.Infof("%s: %s", operation, n)
		broadcast(n)
	}
	return notifications, nil
}

// all checked additions go through here
func add(a uint64, b uint64) (uint64, error) {
	if a > MaximumAmount-b {
		return 0, fault.ArithmeticOverflow
	}
	return a + b, nil
}
