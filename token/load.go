// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
)

// ParseCSV - read "address,amount" records
//
// blank lines and lines starting with '#' are skipped, as is a first
// line whose address field is not an address (a column header)
// zero amounts are dropped since they confer no allocation
func ParseCSV(r io.Reader) ([]Allocation, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	seen := make(map[account.Address]struct{})
	result := make([]Allocation, 0, 100)

	for line := 0; ; line += 1 {
		record, err := reader.Read()
		if io.EOF == err {
			break
		}
		if nil != err {
			return nil, fault.InvalidAllocationRecord
		}

		address, err := account.AddressFromHex(strings.TrimSpace(record[0]))
		if nil != err {
			if 0 == line {
				continue
			}
			return nil, err
		}

		amount, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
		if nil != err {
			return nil, fault.InvalidAmount
		}

		if _, ok := seen[address]; ok {
			return nil, fault.InvalidAllocationRecord
		}
		seen[address] = struct{}{}

		if 0 == amount {
			continue
		}
		result = append(result, Allocation{
			Address: address,
			Amount:  amount,
		})
	}
	return result, nil
}

// Replace - make allocations the complete set of balances
//
// old balances are removed in the same transaction so the switch is atomic
func Replace(allocations []Allocation) error {
	pool := storage.Pool.Balances

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	// keys must be scanned while holding the writer lock
	old := make([][]byte, 0, 100)
	err = pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		old = append(old, key)
		return nil
	})
	if nil != err {
		trx.Abort()
		return err
	}

	for _, key := range old {
		trx.Delete(pool, key)
	}
	for _, a := range allocations {
		trx.PutN(pool, a.Address.Bytes(), a.Amount)
	}
	return trx.Commit()
}

// LoadFile - parse a CSV file and replace the balances with its contents
//
// returns the number of non-zero allocations loaded
func LoadFile(fileName string) (int, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return 0, err
	}
	defer f.Close()

	allocations, err := ParseCSV(f)
	if nil != err {
		return 0, err
	}

	err = Replace(allocations)
	if nil != err {
		return 0, err
	}
	return len(allocations), nil
}
