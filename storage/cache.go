// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// staged write operations
const (
	dbPut = iota
	dbDelete
)

// holds the writes staged by one transaction so that reads inside
// the transaction observe them before commit
type stagedCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

// entries live until the transaction ends, so no expiry and no janitor
func newCache() *stagedCache {
	return &stagedCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// get returns:
//   value
//   true if the key was staged at all (put or delete)
//   true if the staged operation was a delete
func (c *stagedCache) get(key string) ([]byte, bool, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, true
	}
	return data.value, true, false
}

func (c *stagedCache) set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *stagedCache) count() int {
	return c.cache.ItemCount()
}

func (c *stagedCache) clear() {
	c.cache.Flush()
}
