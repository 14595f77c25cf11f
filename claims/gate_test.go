// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
)

func TestSetupDelay(t *testing.T) {
	l := setup(t, 100)
	defer l.teardown()

	owner := fixtures.Owner
	alice := fixtures.Alice
	bob := fixtures.Bob

	assert.Equal(t, uint64(100), l.EndSetupDelay(), "wrong end setup delay")
	assert.False(t, l.IsOpen(), "open during setup")

	_, err := l.Claim(alice, alice, fixtures.PubKey1)
	assert.Equal(t, fault.SetupNotElapsed, err, "claim during setup")

	_, err = l.AssignIndices(alice, []account.Address{alice})
	assert.Equal(t, fault.Unauthorized, err, "non-owner assigned during setup")

	_, err = l.AssignIndices(owner, []account.Address{alice})
	assert.Nil(t, err, "owner assign during setup")

	// the gate opens exactly at the threshold
	l.height.Set(99)
	assert.False(t, l.IsOpen(), "open before threshold")
	l.height.Set(100)
	assert.True(t, l.IsOpen(), "closed at threshold")

	_, err = l.Claim(alice, alice, fixtures.PubKey1)
	assert.Nil(t, err, "claim after setup")

	_, err = l.AssignIndices(alice, []account.Address{bob})
	assert.Nil(t, err, "public assign after setup")
}

func TestFreeze(t *testing.T) {
	l := setup(t, 0)
	defer l.teardown()

	owner := fixtures.Owner
	alice := fixtures.Alice
	bob := fixtures.Bob
	carol := fixtures.Carol

	assert.True(t, l.IsOpen(), "closed before freeze")

	n, err := l.Freeze(owner)
	assert.Nil(t, err, "freeze error")
	assert.Equal(t, []claims.Notification{claims.Frozen{EndSetupDelay: claims.MaximumAmount}}, n, "wrong freeze notification")
	assert.Equal(t, claims.MaximumAmount, l.EndSetupDelay(), "threshold not at sentinel")
	assert.False(t, l.IsOpen(), "open after freeze")

	_, err = l.Claim(alice, alice, fixtures.PubKey1)
	assert.Equal(t, fault.SetupNotElapsed, err, "claim after freeze")

	_, err = l.AssignIndices(alice, []account.Address{bob})
	assert.Equal(t, fault.Unauthorized, err, "public assign after freeze")

	_, err = l.AssignIndices(owner, []account.Address{carol})
	assert.Nil(t, err, "owner assign after freeze")

	// the clock can never reach a frozen threshold
	l.height.Set(claims.MaximumAmount)
	assert.False(t, l.IsOpen(), "clock reached the sentinel")
	_, err = l.Claim(alice, alice, fixtures.PubKey1)
	assert.Equal(t, fault.SetupNotElapsed, err, "claim at maximum clock")

	// freezing again is harmless
	_, err = l.Freeze(owner)
	assert.Nil(t, err, "second freeze error")
}

func TestClaimPreconditionOrder(t *testing.T) {
	l := setup(t, 10)
	defer l.teardown()

	// gate is checked before allocation
	_, err := l.Claim(fixtures.Dave, fixtures.Dave, fixtures.PubKey1)
	assert.Equal(t, fault.SetupNotElapsed, err, "gate not first")

	l.height.Set(10)

	// allocation before sender
	_, err = l.Claim(fixtures.Eve, fixtures.Dave, fixtures.PubKey1)
	assert.Equal(t, fault.NoAllocation, err, "allocation not second")

	_, err = l.Claim(fixtures.Alice, fixtures.Alice, fixtures.PubKey1)
	assert.Nil(t, err, "claim error")

	// claimed before sender
	_, err = l.Claim(fixtures.Eve, fixtures.Alice, fixtures.PubKey1)
	assert.Equal(t, fault.AlreadyClaimed, err, "claimed not third")
}
