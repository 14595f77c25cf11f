// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup: logging and fixed signing keys
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/logger"
)

// LogCategory - name of the test log file
const LogCategory = "testing"

// fixed keys so test addresses are stable
var (
	OwnerKey = mustKey("1111111111111111111111111111111111111111111111111111111111111111")
	AliceKey = mustKey("2222222222222222222222222222222222222222222222222222222222222222")
	BobKey   = mustKey("3333333333333333333333333333333333333333333333333333333333333333")
	CarolKey = mustKey("4444444444444444444444444444444444444444444444444444444444444444")
	DaveKey  = mustKey("5555555555555555555555555555555555555555555555555555555555555555")
	EveKey   = mustKey("6666666666666666666666666666666666666666666666666666666666666666")

	Owner = OwnerKey.Address()
	Alice = AliceKey.Address()
	Bob   = BobKey.Address()
	Carol = CarolKey.Address()
	Dave  = DaveKey.Address()
	Eve   = EveKey.Address()
)

// destination public keys
var (
	PubKey1 = account.PubKey{0x01, 0x01}
	PubKey2 = account.PubKey{0x02, 0x02}
	PubKey3 = account.PubKey{0x03, 0x03}
)

func mustKey(s string) *account.PrivateKey {
	key, err := account.PrivateKeyFromHex(s)
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log only critical messages to a file under dir
func SetupTestLogger(dir string) {
	removeFiles(dir)
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger(dir string) {
	logger.Finalise()
	removeFiles(dir)
}

func removeFiles(dir string) {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
