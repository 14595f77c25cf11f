// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/counter"
	"github.com/bitmark-inc/claimsd/messagebus"
	"github.com/bitmark-inc/claimsd/rpc/ratelimit"
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Clock    clock.Clock
	ReadOnly bool
	counter  *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, clk clock.Clock, readOnly bool) *Node {
	return &Node{
		Log:      log,
		Limiter:  ratelimit.New(),
		Start:    start,
		Version:  version,
		Clock:    clk,
		ReadOnly: readOnly,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	RPCs     uint64 `json:"rpcs"`
	Clock    uint64 `json:"clock,string"`
	ReadOnly bool   `json:"readOnly"`
	Dropped  uint64 `json:"droppedNotifications"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Clock = node.Clock.Now()
	reply.ReadOnly = node.ReadOnly
	reply.Dropped = messagebus.Bus.Broadcast.Dropped()
	return nil
}
