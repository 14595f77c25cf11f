// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - read access to frozen token balances
//
// the balances are a snapshot of the frozen token held in the
// Balances pool, replaced as a whole from an "address,amount" file
package token
