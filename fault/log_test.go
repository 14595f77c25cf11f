// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(testingDirName)
	rc := m.Run()
	fixtures.TeardownTestLogger(testingDirName)
	os.Exit(rc)
}

func TestInitialise(t *testing.T) {
	err := fault.Initialise()
	assert.Nil(t, err, "wrong Initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise accepted")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("nothing", nil)
	}, "panic on nil error")

	assert.PanicsWithValue(t, "pool.Get failed with error: disk gone", func() {
		fault.PanicIfError("pool.Get", fault.ProcessError("disk gone"))
	}, "wrong panic value")
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("truncated record for: %x", []byte{1, 2})
	}, "wrong panic value")
}
