// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"io/ioutil"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/account"
	ledger "github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/counter"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
	"github.com/bitmark-inc/claimsd/rpc/authorisation"
	"github.com/bitmark-inc/claimsd/rpc/mocks"
	"github.com/bitmark-inc/claimsd/rpc/server"
	"github.com/bitmark-inc/claimsd/storage"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(testingDirName)
	rc := m.Run()
	fixtures.TeardownTestLogger(testingDirName)
	os.Exit(rc)
}

// a client connected through a pipe to a server over a mocked ledger
func setup(t *testing.T) (*Client, *mocks.MockLedger, func()) {
	dir, err := ioutil.TempDir("", "rpccalls-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &count, l, clock.NewHeight(3), false)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := newClient(clientConn, false, ioutil.Discard)

	return client, l, func() {
		client.Close()
		ctl.Finish()
		storage.Finalise()
		os.RemoveAll(dir)
	}
}

func TestClaimUsesNextNonce(t *testing.T) {
	client, l, teardown := setup(t)
	defer teardown()

	gomock.InOrder(
		l.EXPECT().Claim(fixtures.Alice, fixtures.Alice, fixtures.PubKey1).
			Return([]ledger.Notification{ledger.Claimed{Address: fixtures.Alice, PubKey: fixtures.PubKey1, Index: 4}}, nil).
			Times(1),
		l.EXPECT().Claim(fixtures.Alice, fixtures.Bob, fixtures.PubKey2).
			Return(nil, fault.NotAmendmentAddress).
			Times(1),
	)

	reply, err := client.Claim(fixtures.AliceKey, fixtures.Alice, fixtures.PubKey1)
	assert.Nil(t, err, "wrong claim")
	assert.Equal(t, 1, len(reply.Events), "wrong event count")
	assert.Equal(t, "claimed", reply.Events[0].Name, "wrong event name")
	assert.Equal(t, uint64(1), authorisation.LastNonce(fixtures.Alice), "wrong nonce after first call")

	_, err = client.Claim(fixtures.AliceKey, fixtures.Bob, fixtures.PubKey2)
	assert.NotNil(t, err, "missing error")
	assert.Equal(t, fault.NotAmendmentAddress.Error(), err.Error(), "wrong error")
	assert.Equal(t, uint64(2), authorisation.LastNonce(fixtures.Alice), "wrong nonce after second call")

	nonce, err := client.GetNonce(fixtures.Alice)
	assert.Nil(t, err, "wrong nonce call")
	assert.Equal(t, uint64(2), nonce, "wrong nonce")
}

func TestOwnerMutations(t *testing.T) {
	client, l, teardown := setup(t)
	defer teardown()

	addresses := []account.Address{fixtures.Alice, fixtures.Bob}
	pubKeys := []account.PubKey{fixtures.PubKey1, fixtures.PubKey2}
	amounts := []uint64{10, 20}

	l.EXPECT().AssignIndices(fixtures.Owner, addresses).Return(nil, nil).Times(1)
	l.EXPECT().SetVesting(fixtures.Owner, addresses, amounts).Return(nil, nil).Times(1)
	l.EXPECT().IncreaseVesting(fixtures.Owner, addresses, amounts).Return(nil, nil).Times(1)
	l.EXPECT().InjectSaleAmount(fixtures.Owner, pubKeys, amounts).Return(nil, nil).Times(1)
	l.EXPECT().Amend(fixtures.Owner, []account.Address{fixtures.Carol}, []account.Address{fixtures.Dave}).Return(nil, nil).Times(1)
	l.EXPECT().Freeze(fixtures.Owner).Return([]ledger.Notification{ledger.Frozen{EndSetupDelay: 3}}, nil).Times(1)

	key := fixtures.OwnerKey

	_, err := client.AssignIndices(key, addresses)
	assert.Nil(t, err, "wrong assign")
	_, err = client.SetVesting(key, addresses, amounts)
	assert.Nil(t, err, "wrong set vesting")
	_, err = client.IncreaseVesting(key, addresses, amounts)
	assert.Nil(t, err, "wrong increase vesting")
	_, err = client.InjectSaleAmount(key, pubKeys, amounts)
	assert.Nil(t, err, "wrong inject sale")
	_, err = client.Amend(key, []account.Address{fixtures.Carol}, []account.Address{fixtures.Dave})
	assert.Nil(t, err, "wrong amend")

	reply, err := client.Freeze(key)
	assert.Nil(t, err, "wrong freeze")
	assert.Equal(t, 1, len(reply.Events), "wrong event count")
	assert.Equal(t, "frozen", reply.Events[0].Name, "wrong event name")

	assert.Equal(t, uint64(6), authorisation.LastNonce(fixtures.Owner), "wrong nonce")
}

func TestQueries(t *testing.T) {
	client, l, teardown := setup(t)
	defer teardown()

	l.EXPECT().Owner().Return(fixtures.Owner).AnyTimes()
	l.EXPECT().EndSetupDelay().Return(uint64(10)).AnyTimes()
	l.EXPECT().IsOpen().Return(false).AnyTimes()
	l.EXPECT().NextIndex().Return(uint64(2)).AnyTimes()
	l.EXPECT().ClaimedLength().Return(uint64(0)).AnyTimes()
	l.EXPECT().BalanceOfPubKey(fixtures.PubKey3).Return(uint64(0), nil).AnyTimes()
	l.EXPECT().SaleCredit(fixtures.PubKey3).Return(uint64(0)).AnyTimes()

	status, err := client.GetStatus()
	assert.Nil(t, err, "wrong status")
	assert.Equal(t, fixtures.Owner, status.Owner, "wrong owner")
	assert.Equal(t, uint64(3), status.Now, "wrong clock")

	balance, err := client.GetBalance(fixtures.PubKey3)
	assert.Nil(t, err, "wrong balance")
	assert.Equal(t, fixtures.PubKey3, balance.PubKey, "wrong public key")

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, "1.0", info.Version, "wrong version")
}
