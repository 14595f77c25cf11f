// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	ledger "github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/counter"
	"github.com/bitmark-inc/claimsd/rpc/claims"
	"github.com/bitmark-inc/claimsd/rpc/node"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, l ledger.Ledger, clk clock.Clock, readOnly bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(claims.New(log, l, clk, readOnly))
	_ = server.Register(node.New(log, start, version, rpcCount, clk, readOnly))

	return server
}
