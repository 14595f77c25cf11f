// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - a set of writes applied atomically on Commit
//
// reads through the transaction see its own staged writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	Size() int
}

type dbTransaction struct {
	batch    *leveldb.Batch
	cache    *stagedCache
	finished bool
}

// NewDBTransaction - start the write transaction
//
// only one transaction is active at a time, this blocks until any
// other transaction has committed or aborted
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	db := poolData.db
	readOnly := poolData.readOnly
	poolData.RUnlock()

	if nil == db {
		return nil, fault.DatabaseIsNotSet
	}
	if readOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}

	poolData.writer.Lock()

	return &dbTransaction{
		batch: new(leveldb.Batch),
		cache: newCache(),
	}, nil
}

// Put - stage a key/value pair
func (t *dbTransaction) Put(p *PoolHandle, key []byte, value []byte) {
	if t.finished {
		logger.Panic("transaction.Put after finish")
	}
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

// PutN - stage a number as its 8 byte big endian form
func (t *dbTransaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, NumberBytes(value))
}

// Delete - stage the removal of a key
func (t *dbTransaction) Delete(p *PoolHandle, key []byte) {
	if t.finished {
		logger.Panic("transaction.Delete after finish")
	}
	k := p.prefixKey(key)
	t.cache.set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read a staged value, falling back to the database
func (t *dbTransaction) Get(p *PoolHandle, key []byte) []byte {
	value, staged, deleted := t.cache.get(string(p.prefixKey(key)))
	if deleted {
		return nil
	}
	if staged {
		return value
	}
	return p.Get(key)
}

// GetN - read a staged number, falling back to the database
func (t *dbTransaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - check for a staged key, falling back to the database
func (t *dbTransaction) Has(p *PoolHandle, key []byte) bool {
	_, staged, deleted := t.cache.get(string(p.prefixKey(key)))
	if deleted {
		return false
	}
	if staged {
		return true
	}
	return p.Has(key)
}

// Size - number of distinct keys staged
func (t *dbTransaction) Size() int {
	return t.cache.count()
}

// Commit - write all staged data in one batch
func (t *dbTransaction) Commit() error {
	if t.finished {
		return fault.TransactionAlreadyFinished
	}
	defer t.finish()

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fault.DatabaseIsNotSet
	}
	return poolData.db.Write(t.batch, nil)
}

// Abort - discard all staged data
func (t *dbTransaction) Abort() {
	if t.finished {
		return
	}
	t.finish()
}

func (t *dbTransaction) finish() {
	t.batch.Reset()
	t.cache.clear()
	t.finished = true
	poolData.writer.Unlock()
}
