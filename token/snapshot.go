// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
)

// Reader - frozen token balance lookup
type Reader interface {
	BalanceOf(account.Address) (uint64, error)
}

// Snapshot - balances from the Balances pool
type Snapshot struct {
	pool *storage.PoolHandle
}

// NewSnapshot - reader over the current Balances pool
func NewSnapshot() *Snapshot {
	return &Snapshot{
		pool: storage.Pool.Balances,
	}
}

// BalanceOf - the balance of an address, zero if absent
func (s *Snapshot) BalanceOf(address account.Address) (uint64, error) {
	amount, _ := s.pool.GetN(address.Bytes())
	return amount, nil
}

// Allocation - one balance record
type Allocation struct {
	Address account.Address `json:"address"`
	Amount  uint64          `json:"amount,string"`
}

// All - every non-zero balance in address order
func (s *Snapshot) All() ([]Allocation, error) {
	result := make([]Allocation, 0, 100)
	err := s.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return err
		}
		if len(value) < 8 {
			return fault.InvalidAllocationRecord
		}
		result = append(result, Allocation{
			Address: address,
			Amount:  binary.BigEndian.Uint64(value[:8]),
		})
		return nil
	})
	return result, err
}
