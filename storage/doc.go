// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk claims store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++         = concatenation of byte data
// 3. number     = big endian uint64 (8 bytes)
// 4. address    = 20 byte source chain address
// 5. pubKey     = 32 byte destination public key
// 6. position   = successive index value as number
//
// Globals:
//
//   G ++ "owner"            - owner address fixed at first start
//   G ++ "endSetupDelay"    - time gate threshold, number
//   G ++ "nextIndex"        - next index to issue, number
//   G ++ "claimedLength"    - length of the claimed order, number
//
// Allocations:
//
//   B ++ address            - frozen token balance snapshot
//                             data: number
//
// Claims:
//
//   I ++ address            - assigned index
//                             data: number
//   C ++ address            - claim record
//                             data: index ++ pubKey
//   O ++ position           - claimed order
//                             data: address
//   K ++ pubKey             - count of addresses claimed to the key
//                             data: number
//   P ++ pubKey ++ position - addresses claimed to the key
//                             data: address
//   A ++ address            - amendment
//                             data: address
//   V ++ address            - vested amount
//                             data: number
//   S ++ pubKey             - sale credit
//                             data: number
//
// RPC:
//
//   R ++ address            - last request nonce used by the address
//                             data: number
//
// Testing:
//
//   Z ++ key                - testing data
package storage
