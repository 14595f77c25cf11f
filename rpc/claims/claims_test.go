// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims_test

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/account"
	ledger "github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
	"github.com/bitmark-inc/claimsd/rpc/authorisation"
	"github.com/bitmark-inc/claimsd/rpc/claims"
	"github.com/bitmark-inc/claimsd/rpc/mocks"
	"github.com/bitmark-inc/claimsd/storage"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(testingDirName)
	rc := m.Run()
	fixtures.TeardownTestLogger(testingDirName)
	os.Exit(rc)
}

type testService struct {
	*claims.Claims
	ledger *mocks.MockLedger
	ctl    *gomock.Controller
	dir    string
}

func setup(t *testing.T, readOnly bool) *testService {
	dir, err := ioutil.TempDir("", "rpc-claims-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)

	return &testService{
		Claims: claims.New(logger.New(fixtures.LogCategory), l, clock.NewHeight(7), readOnly),
		ledger: l,
		ctl:    ctl,
		dir:    dir,
	}
}

func (s *testService) teardown() {
	s.ctl.Finish()
	storage.Finalise()
	os.RemoveAll(s.dir)
}

func sign(t *testing.T, key *account.PrivateKey, method string, nonce uint64, payload interface{}) *authorisation.Authorisation {
	auth, err := authorisation.Sign(key, method, nonce, payload)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return auth
}

func TestAssignIndices(t *testing.T) {
	s := setup(t, false)
	defer s.teardown()

	payload := claims.AssignIndicesPayload{
		Addresses: []account.Address{fixtures.Alice, fixtures.Bob},
	}
	arguments := claims.AssignIndicesArguments{
		AssignIndicesPayload: payload,
		Authorisation:        sign(t, fixtures.OwnerKey, "Claims.AssignIndices", 1, payload),
	}

	s.ledger.EXPECT().AssignIndices(fixtures.Owner, payload.Addresses).Return([]ledger.Notification{
		ledger.IndexAssigned{Address: fixtures.Alice, Index: 0},
		ledger.IndexAssigned{Address: fixtures.Bob, Index: 1},
	}, nil).Times(1)

	var reply claims.MutationReply
	err := s.AssignIndices(&arguments, &reply)
	assert.Nil(t, err, "wrong AssignIndices")
	assert.Equal(t, 2, len(reply.Events), "wrong event count")
	assert.Equal(t, "indexAssigned", reply.Events[1].Name, "wrong event name")

	var event ledger.IndexAssigned
	err = json.Unmarshal(reply.Events[1].Data, &event)
	assert.Nil(t, err, "wrong event data")
	assert.Equal(t, fixtures.Bob, event.Address, "wrong event address")
	assert.Equal(t, uint64(1), event.Index, "wrong event index")

	// replay is rejected before reaching the ledger
	err = s.AssignIndices(&arguments, &reply)
	assert.Equal(t, fault.InvalidNonce, err, "replay accepted")
}

func TestClaimLedgerError(t *testing.T) {
	s := setup(t, false)
	defer s.teardown()

	payload := claims.ClaimPayload{
		Target: fixtures.Alice,
		PubKey: fixtures.PubKey1,
	}
	arguments := claims.ClaimArguments{
		ClaimPayload:  payload,
		Authorisation: sign(t, fixtures.AliceKey, "Claims.Claim", 1, payload),
	}

	s.ledger.EXPECT().Claim(fixtures.Alice, fixtures.Alice, fixtures.PubKey1).Return(nil, fault.SetupNotElapsed).Times(1)

	var reply claims.MutationReply
	err := s.Claim(&arguments, &reply)
	assert.Equal(t, fault.SetupNotElapsed, err, "wrong error")
	assert.Nil(t, reply.Events, "events on failure")

	// the nonce is consumed even though the ledger rejected the call
	assert.Equal(t, uint64(1), authorisation.LastNonce(fixtures.Alice), "nonce not consumed")
}

func TestClaimWrongSigner(t *testing.T) {
	s := setup(t, false)
	defer s.teardown()

	payload := claims.ClaimPayload{
		Target: fixtures.Alice,
		PubKey: fixtures.PubKey1,
	}
	auth := sign(t, fixtures.EveKey, "Claims.Claim", 1, payload)
	auth.Caller = fixtures.Alice

	var reply claims.MutationReply
	err := s.Claim(&claims.ClaimArguments{ClaimPayload: payload, Authorisation: auth}, &reply)
	assert.Equal(t, fault.SignatureDoesNotMatchCaller, err, "wrong error")

	err = s.Claim(&claims.ClaimArguments{ClaimPayload: payload}, &reply)
	assert.Equal(t, fault.MissingAuthorisation, err, "missing authorisation")
}

func TestVestingAndSale(t *testing.T) {
	s := setup(t, false)
	defer s.teardown()

	vesting := claims.VestingPayload{
		Addresses: []account.Address{fixtures.Alice},
		Amounts:   []uint64{100},
	}
	sale := claims.InjectSalePayload{
		PubKeys: []account.PubKey{fixtures.PubKey2},
		Amounts: []uint64{250},
	}

	gomock.InOrder(
		s.ledger.EXPECT().SetVesting(fixtures.Owner, vesting.Addresses, vesting.Amounts).Return([]ledger.Notification{
			ledger.Vested{Address: fixtures.Alice, Amount: 100},
		}, nil),
		s.ledger.EXPECT().IncreaseVesting(fixtures.Owner, vesting.Addresses, vesting.Amounts).Return([]ledger.Notification{
			ledger.VestingIncreased{Address: fixtures.Alice, Amount: 100, Total: 200},
		}, nil),
		s.ledger.EXPECT().InjectSaleAmount(fixtures.Owner, sale.PubKeys, sale.Amounts).Return([]ledger.Notification{
			ledger.SaleInjected{PubKey: fixtures.PubKey2, Amount: 250, Total: 250},
		}, nil),
	)

	var reply claims.MutationReply
	err := s.SetVesting(&claims.VestingArguments{
		VestingPayload: vesting,
		Authorisation:  sign(t, fixtures.OwnerKey, "Claims.SetVesting", 1, vesting),
	}, &reply)
	assert.Nil(t, err, "wrong SetVesting")
	assert.Equal(t, "vested", reply.Events[0].Name, "wrong event")

	// a signature for one method cannot be used for another
	err = s.IncreaseVesting(&claims.VestingArguments{
		VestingPayload: vesting,
		Authorisation:  sign(t, fixtures.OwnerKey, "Claims.SetVesting", 2, vesting),
	}, &reply)
	assert.Equal(t, fault.SignatureDoesNotMatchCaller, err, "wrong method accepted")

	err = s.IncreaseVesting(&claims.VestingArguments{
		VestingPayload: vesting,
		Authorisation:  sign(t, fixtures.OwnerKey, "Claims.IncreaseVesting", 2, vesting),
	}, &reply)
	assert.Nil(t, err, "wrong IncreaseVesting")
	assert.Equal(t, "vestingIncreased", reply.Events[0].Name, "wrong event")

	err = s.InjectSaleAmount(&claims.InjectSaleArguments{
		InjectSalePayload: sale,
		Authorisation:     sign(t, fixtures.OwnerKey, "Claims.InjectSaleAmount", 3, sale),
	}, &reply)
	assert.Nil(t, err, "wrong InjectSaleAmount")
	assert.Equal(t, "saleInjected", reply.Events[0].Name, "wrong event")
}

func TestAmendAndFreeze(t *testing.T) {
	s := setup(t, false)
	defer s.teardown()

	amend := claims.AmendPayload{
		Originals:  []account.Address{fixtures.Alice},
		AmendedTos: []account.Address{fixtures.Dave},
	}

	s.ledger.EXPECT().Amend(fixtures.Owner, amend.Originals, amend.AmendedTos).Return([]ledger.Notification{
		ledger.Amended{Original: fixtures.Alice, AmendedTo: fixtures.Dave},
	}, nil).Times(1)
	s.ledger.EXPECT().Freeze(fixtures.Owner).Return([]ledger.Notification{
		ledger.Frozen{EndSetupDelay: ledger.MaximumAmount},
	}, nil).Times(1)

	var reply claims.MutationReply
	err := s.Amend(&claims.AmendArguments{
		AmendPayload:  amend,
		Authorisation: sign(t, fixtures.OwnerKey, "Claims.Amend", 1, amend),
	}, &reply)
	assert.Nil(t, err, "wrong Amend")
	assert.Equal(t, "amended", reply.Events[0].Name, "wrong event")

	err = s.Freeze(&claims.FreezeArguments{
		Authorisation: sign(t, fixtures.OwnerKey, "Claims.Freeze", 2, claims.FreezePayload{}),
	}, &reply)
	assert.Nil(t, err, "wrong Freeze")
	assert.Equal(t, "frozen", reply.Events[0].Name, "wrong event")
}

func TestMutationLimits(t *testing.T) {
	s := setup(t, false)
	defer s.teardown()

	payload := claims.AssignIndicesPayload{
		Addresses: make([]account.Address, 1001),
	}
	var reply claims.MutationReply
	err := s.AssignIndices(&claims.AssignIndicesArguments{
		AssignIndicesPayload: payload,
		Authorisation:        sign(t, fixtures.OwnerKey, "Claims.AssignIndices", 1, payload),
	}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversized batch accepted")
}

func TestReadOnly(t *testing.T) {
	s := setup(t, true)
	defer s.teardown()

	var reply claims.MutationReply
	err := s.Freeze(&claims.FreezeArguments{
		Authorisation: sign(t, fixtures.OwnerKey, "Claims.Freeze", 1, claims.FreezePayload{}),
	}, &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "mutation in read only mode")
}

func TestErrorClass(t *testing.T) {
	items := []struct {
		err   error
		class string
	}{
		{fault.Unauthorized, "permission"},
		{fault.SetupNotElapsed, "permission"},
		{fault.AlreadyClaimed, "exists"},
		{fault.NoAllocation, "not found"},
		{fault.InvalidAmount, "invalid"},
		{fault.ArithmeticOverflow, "process"},
		{errors.New("leveldb: closed"), "internal"},
	}

	for i, item := range items {
		assert.Equal(t, item.class, claims.ErrorClass(item.err), "%d: wrong class for: %s", i, item.err)
	}
}
