// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package claims - the claims ledger
//
// holders of the frozen token bind their allocation to a destination
// public key by a one-time claim
//
// the ledger is owner administered:
//   indices:    assigned once per allocated address, dense from zero
//   amendments: owner redirects the claim right of an unclaimed address
//   vesting:    set once by the owner then only increased
//   sale:       owner credited amounts added to a public key balance
//   gate:       claims open when the clock reaches the end of the setup
//               delay, freeze moves the threshold out of reach forever
//
// every mutation is all-or-nothing: a batch with one failing element
// changes nothing
package claims
