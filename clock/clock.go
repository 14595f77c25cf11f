// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - monotonic time sources for the setup delay gate
package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
)

// Clock - reads the current time as an unsigned number
//
// the value never decreases
type Clock interface {
	Now() uint64
}

// wall clock source, replaced in tests
var unixNow = func() int64 {
	return time.Now().Unix()
}

// System - Unix time in seconds
//
// a wall clock step backwards holds the highest reading seen
type System struct {
	highest uint64
}

// Now - current Unix time, never earlier than a previous reading
func (s *System) Now() uint64 {
	t := uint64(0)
	if n := unixNow(); n > 0 {
		t = uint64(n)
	}
	for {
		highest := atomic.LoadUint64(&s.highest)
		if t <= highest {
			return highest
		}
		if atomic.CompareAndSwapUint64(&s.highest, highest, t) {
			return t
		}
	}
}

// Height - a logical block height
type Height struct {
	sync.RWMutex
	height uint64
}

// NewHeight - a height clock starting at the given value
func NewHeight(start uint64) *Height {
	return &Height{
		height: start,
	}
}

// Now - the current height
func (h *Height) Now() uint64 {
	h.RLock()
	defer h.RUnlock()
	return h.height
}

// Advance - move forward by n, saturating at the maximum height
func (h *Height) Advance(n uint64) uint64 {
	h.Lock()
	defer h.Unlock()
	if h.height+n < h.height {
		h.height = ^uint64(0)
	} else {
		h.height += n
	}
	return h.height
}

// Set - move to a specific height
//
// a lower height is ignored and the current height returned
func (h *Height) Set(height uint64) uint64 {
	h.Lock()
	defer h.Unlock()
	if height > h.height {
		h.height = height
	}
	return h.height
}

// Ticker - background process advancing a height clock by one every interval
type Ticker struct {
	height   *Height
	interval time.Duration
	log      *logger.L
}

// NewTicker - create a ticker for a height clock
func NewTicker(height *Height, interval time.Duration) *Ticker {
	return &Ticker{
		height:   height,
		interval: interval,
		log:      logger.New("clock"),
	}
}

// Run - advance until shutdown
func (t *Ticker) Run(args interface{}, shutdown <-chan struct{}) {
	log := t.log
	log.Infof("starting… height: %d  interval: %s", t.height.Now(), t.interval)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			h := t.height.Advance(1)
			log.Tracef("height: %d", h)
		}
	}
	log.Info("shutting down…")
	log.Flush()
}
