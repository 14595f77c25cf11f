// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/storage"
)

func TestCursor(t *testing.T) {
	name := setup(t)
	defer teardown(name)

	p := storage.Pool.TestData

	trx, _ := storage.NewDBTransaction()
	for i := uint64(0); i < 10; i += 1 {
		trx.Put(p, storage.NumberBytes(i), []byte(fmt.Sprintf("data-%d", i)))
	}
	// another pool must not leak into the range
	trx.PutN(storage.Pool.Vesting, []byte("other"), 1)
	assert.Nil(t, trx.Commit(), "commit error")

	cursor := p.NewFetchCursor()

	data, err := cursor.Fetch(4)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 4, len(data), "first fetch length")
	assert.Equal(t, storage.NumberBytes(0), data[0].Key, "first key")

	data, err = cursor.Fetch(4)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 4, len(data), "second fetch length")
	assert.Equal(t, storage.NumberBytes(4), data[0].Key, "second fetch start")

	data, err = cursor.Fetch(4)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(data), "last fetch length")
	assert.Equal(t, []byte("data-9"), data[1].Value, "last value")

	data, err = cursor.Fetch(4)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(data), "fetch beyond end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	// seek then map
	count := 0
	err = p.NewFetchCursor().Seek(storage.NumberBytes(7)).Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 3, count, "map count after seek")

	// map stops on error
	count = 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return fault.InvalidCount
		}
		return nil
	})
	assert.Equal(t, fault.InvalidCount, err, "map error not returned")
	assert.Equal(t, 2, count, "map did not stop")
}
