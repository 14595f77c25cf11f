// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
	"github.com/bitmark-inc/claimsd/messagebus"
	"github.com/bitmark-inc/claimsd/storage"
	"github.com/bitmark-inc/claimsd/token"
)

func TestRestart(t *testing.T) {
	l := setup(t, 0)
	defer l.teardown()

	_, err := l.Claim(fixtures.Alice, fixtures.Alice, fixtures.PubKey1)
	assert.Nil(t, err, "claim error")
	_, err = l.Freeze(fixtures.Owner)
	assert.Nil(t, err, "freeze error")

	storage.Finalise()
	err = storage.Initialise(databaseName(l.dir), storage.ReadWrite)
	assert.Nil(t, err, "reopen error")

	_, err = claims.New(fixtures.Alice, 0, token.NewSnapshot(), clock.NewHeight(0))
	assert.Equal(t, fault.OwnerMismatch, err, "owner changed on restart")

	_, err = claims.New(account.Address{}, 0, token.NewSnapshot(), clock.NewHeight(0))
	assert.Equal(t, fault.MissingOwner, err, "zero owner accepted")

	// configured delay is ignored once stored so freeze survives
	again, err := claims.New(fixtures.Owner, 0, token.NewSnapshot(), clock.NewHeight(0))
	assert.Nil(t, err, "restart error")
	assert.Equal(t, claims.MaximumAmount, again.EndSetupDelay(), "freeze lost on restart")
	assert.False(t, again.IsOpen(), "open after restart")

	assert.Equal(t, uint64(1), again.ClaimedLength(), "claims lost on restart")
	assert.Equal(t, uint64(1), again.NextIndex(), "index lost on restart")
}

func TestBroadcast(t *testing.T) {
	l := setup(t, 0)
	defer l.teardown()

	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release(queue)

	// rejected calls broadcast nothing
	_, err := l.Claim(fixtures.Bob, fixtures.Alice, fixtures.PubKey1)
	assert.Equal(t, fault.NotAllocationAddress, err, "wrong sender accepted")

	_, err = l.Claim(fixtures.Alice, fixtures.Alice, fixtures.PubKey1)
	assert.Nil(t, err, "claim error")

	expected := []string{"indexAssigned", "claimed"}
	for _, command := range expected {
		select {
		case m := <-queue:
			assert.Equal(t, command, m.Command, "wrong command")
			if "claimed" == command && assert.Equal(t, 1, len(m.Parameters), "wrong parameter count") {
				var c claims.Claimed
				err := json.Unmarshal(m.Parameters[0], &c)
				assert.Nil(t, err, "unmarshal error")
				assert.Equal(t, claims.Claimed{Address: fixtures.Alice, PubKey: fixtures.PubKey1, Index: 0}, c, "wrong payload")
			}
		case <-time.After(time.Second):
			t.Fatalf("missing broadcast: %s", command)
		}
	}

	select {
	case m := <-queue:
		t.Errorf("unexpected broadcast: %s", m.Command)
	default:
	}
}
