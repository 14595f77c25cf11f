// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
	"github.com/bitmark-inc/claimsd/rpc"
	"github.com/bitmark-inc/claimsd/rpc/certificate"
	"github.com/bitmark-inc/claimsd/rpc/claims"
	"github.com/bitmark-inc/claimsd/rpc/listeners"
	"github.com/bitmark-inc/claimsd/rpc/mocks"
)

func TestInitialise(t *testing.T) {
	dir, err := ioutil.TempDir("", "rpc-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	logDir := filepath.Join(dir, "log")
	fixtures.SetupTestLogger(logDir)
	defer fixtures.TeardownTestLogger(logDir)

	configuration := listeners.DefaultRPCConfiguration(
		filepath.Join(dir, "rpc.crt"),
		filepath.Join(dir, "rpc.key"),
	)
	configuration.Listen = []string{fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)}

	err = certificate.Generate(configuration.Certificate, configuration.PrivateKey, nil)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Owner().Return(fixtures.Owner).Times(1)
	l.EXPECT().EndSetupDelay().Return(uint64(100)).Times(1)
	l.EXPECT().IsOpen().Return(true).Times(1)
	l.EXPECT().NextIndex().Return(uint64(0)).Times(1)
	l.EXPECT().ClaimedLength().Return(uint64(0)).Times(1)

	err = rpc.Initialise(&configuration, "0.1", l, clock.NewHeight(200), false)
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&configuration, "0.1", l, clock.NewHeight(200), false)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")

	conn, err := tls.Dial("tcp", configuration.Listen[0], &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var status claims.StatusReply
	err = client.Call("Claims.Status", &claims.StatusArguments{}, &status)
	assert.Nil(t, err, "wrong Claims.Status")
	assert.Equal(t, fixtures.Owner, status.Owner, "wrong owner")
	assert.Equal(t, uint64(200), status.Now, "wrong clock")
	assert.True(t, status.Open, "wrong open")
	assert.Equal(t, uint64(1), rpc.ConnectionCount(), "wrong connection count")

	client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "second Finalise")
}
