// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/claimsd/account"
	ledger "github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/rpc/authorisation"
	"github.com/bitmark-inc/claimsd/rpc/ratelimit"
)

// limits
const (
	maximumBatchSize = 1000
	maximumListCount = 100
)

// Claims - type for the RPC
type Claims struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Ledger
	Clock    clock.Clock
	ReadOnly bool
}

// Event - one committed ledger notification
type Event struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// MutationReply - result of every mutating call
type MutationReply struct {
	Events []Event `json:"events"`
}

// New - create the claims RPC service
func New(log *logger.L, l ledger.Ledger, clk clock.Clock, readOnly bool) *Claims {
	return &Claims{
		Log:      log,
		Limiter:  ratelimit.New(),
		Ledger:   l,
		Clock:    clk,
		ReadOnly: readOnly,
	}
}

// common path for every mutation: limit, authenticate then apply
func (c *Claims) mutate(
	method string,
	payload interface{},
	auth *authorisation.Authorisation,
	batchSize int,
	reply *MutationReply,
	apply func(caller account.Address) ([]ledger.Notification, error),
) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	if c.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if batchSize > maximumBatchSize {
		return fault.InvalidCount
	}

	caller, err := authorisation.Verify(method, payload, auth)
	if nil != err {
		c.Log.Warnf("%s: authorisation error: %s", method, err)
		return err
	}

	c.Log.Infof("%s: caller: %s  payload: %+v", method, caller, payload)

	notifications, err := apply(caller)
	if nil != err {
		class := errorClass(err)
		switch class {
		case "process", "internal":
			c.Log.Errorf("%s: caller: %s  %s error: %s", method, caller, class, err)
		default:
			c.Log.Warnf("%s: caller: %s  rejected (%s): %s", method, caller, class, err)
		}
		return err
	}

	reply.Events = make([]Event, len(notifications))
	for i, n := range notifications {
		data, err := json.Marshal(n)
		if nil != err {
			return err
		}
		reply.Events[i] = Event{
			Name: n.Name(),
			Data: data,
		}
	}
	return nil
}

// Assign indices
// --------------

// AssignIndicesPayload - the signed part of the request
type AssignIndicesPayload struct {
	Addresses []account.Address `json:"addresses"`
}

// AssignIndicesArguments - arguments for RPC
type AssignIndicesArguments struct {
	AssignIndicesPayload
	Authorisation *authorisation.Authorisation `json:"authorisation"`
}

// AssignIndices - give each address the next index
func (c *Claims) AssignIndices(arguments *AssignIndicesArguments, reply *MutationReply) error {
	p := arguments.AssignIndicesPayload
	return c.mutate("Claims.AssignIndices", p, arguments.Authorisation, len(p.Addresses), reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.AssignIndices(caller, p.Addresses)
		})
}

// Amend
// -----

// AmendPayload - the signed part of the request
type AmendPayload struct {
	Originals  []account.Address `json:"originals"`
	AmendedTos []account.Address `json:"amendedTos"`
}

// AmendArguments - arguments for RPC
type AmendArguments struct {
	AmendPayload
	Authorisation *authorisation.Authorisation `json:"authorisation"`
}

// Amend - redirect the claim right of lost addresses
func (c *Claims) Amend(arguments *AmendArguments, reply *MutationReply) error {
	p := arguments.AmendPayload
	return c.mutate("Claims.Amend", p, arguments.Authorisation, len(p.Originals), reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.Amend(caller, p.Originals, p.AmendedTos)
		})
}

// Claim
// -----

// ClaimPayload - the signed part of the request
type ClaimPayload struct {
	Target account.Address `json:"target"`
	PubKey account.PubKey  `json:"pubKey"`
}

// ClaimArguments - arguments for RPC
type ClaimArguments struct {
	ClaimPayload
	Authorisation *authorisation.Authorisation `json:"authorisation"`
}

// Claim - bind an allocation to a destination public key
func (c *Claims) Claim(arguments *ClaimArguments, reply *MutationReply) error {
	p := arguments.ClaimPayload
	return c.mutate("Claims.Claim", p, arguments.Authorisation, 1, reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.Claim(caller, p.Target, p.PubKey)
		})
}

// Vesting
// -------

// VestingPayload - the signed part of a vesting request
type VestingPayload struct {
	Addresses []account.Address `json:"addresses"`
	Amounts   []uint64          `json:"amounts"`
}

// VestingArguments - arguments for RPC
type VestingArguments struct {
	VestingPayload
	Authorisation *authorisation.Authorisation `json:"authorisation"`
}

// SetVesting - record initial vesting amounts
func (c *Claims) SetVesting(arguments *VestingArguments, reply *MutationReply) error {
	p := arguments.VestingPayload
	return c.mutate("Claims.SetVesting", p, arguments.Authorisation, len(p.Addresses), reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.SetVesting(caller, p.Addresses, p.Amounts)
		})
}

// IncreaseVesting - add to existing vesting amounts
func (c *Claims) IncreaseVesting(arguments *VestingArguments, reply *MutationReply) error {
	p := arguments.VestingPayload
	return c.mutate("Claims.IncreaseVesting", p, arguments.Authorisation, len(p.Addresses), reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.IncreaseVesting(caller, p.Addresses, p.Amounts)
		})
}

// Sale
// ----

// InjectSalePayload - the signed part of the request
type InjectSalePayload struct {
	PubKeys []account.PubKey `json:"pubKeys"`
	Amounts []uint64         `json:"amounts"`
}

// InjectSaleArguments - arguments for RPC
type InjectSaleArguments struct {
	InjectSalePayload
	Authorisation *authorisation.Authorisation `json:"authorisation"`
}

// InjectSaleAmount - credit sale amounts to public keys
func (c *Claims) InjectSaleAmount(arguments *InjectSaleArguments, reply *MutationReply) error {
	p := arguments.InjectSalePayload
	return c.mutate("Claims.InjectSaleAmount", p, arguments.Authorisation, len(p.PubKeys), reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.InjectSaleAmount(caller, p.PubKeys, p.Amounts)
		})
}

// Freeze
// ------

// FreezePayload - freeze carries no data, only the authorisation is signed
type FreezePayload struct{}

// FreezeArguments - arguments for RPC
type FreezeArguments struct {
	Authorisation *authorisation.Authorisation `json:"authorisation"`
}

// Freeze - close the claim gate permanently
func (c *Claims) Freeze(arguments *FreezeArguments, reply *MutationReply) error {
	return c.mutate("Claims.Freeze", FreezePayload{}, arguments.Authorisation, 1, reply,
		func(caller account.Address) ([]ledger.Notification, error) {
			return c.Ledger.Freeze(caller)
		})
}

// classify a ledger error for logging
func errorClass(err error) string {
	switch {
	case fault.IsErrPermission(err):
		return "permission"
	case fault.IsErrExists(err):
		return "exists"
	case fault.IsErrNotFound(err):
		return "not found"
	case fault.IsErrInvalid(err):
		return "invalid"
	case fault.IsErrProcess(err):
		return "process"
	default:
		return "internal"
	}
}
