// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/claimsd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrAmountIsInvalid  = fault.InvalidError("amount must be ITEM:AMOUNT with a decimal amount")
	ErrArgumentMissing  = fault.InvalidError("argument is missing")
	ErrCountMismatch    = fault.InvalidError("original and amended counts differ")
	ErrKeyIsRequired    = fault.InvalidError("signing key is required")
	ErrPubKeyIsInvalid  = fault.InvalidError("public key is invalid")
	ErrServerKeyMissing = fault.InvalidError("server public key file is required")
	ErrTooManyArguments = fault.InvalidError("too many arguments")
)
