// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"github.com/bitmark-inc/claimsd/account"
	ledger "github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/rpc/authorisation"
	"github.com/bitmark-inc/claimsd/rpc/ratelimit"
)

// Status
// ------

// StatusArguments - empty arguments for status request
type StatusArguments struct{}

// StatusReply - global ledger state
type StatusReply struct {
	Owner         account.Address `json:"owner"`
	EndSetupDelay uint64          `json:"endSetupDelay,string"`
	Now           uint64          `json:"now,string"`
	Open          bool            `json:"open"`
	NextIndex     uint64          `json:"nextIndex,string"`
	ClaimedLength uint64          `json:"claimedLength,string"`
}

// Status - the gate and the global counters
func (c *Claims) Status(_ *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	reply.Owner = c.Ledger.Owner()
	reply.EndSetupDelay = c.Ledger.EndSetupDelay()
	reply.Now = c.Clock.Now()
	reply.Open = c.Ledger.IsOpen()
	reply.NextIndex = c.Ledger.NextIndex()
	reply.ClaimedLength = c.Ledger.ClaimedLength()
	return nil
}

// Record
// ------

// AddressArguments - a single address
type AddressArguments struct {
	Address account.Address `json:"address"`
}

// RecordReply - everything the ledger holds for an address
type RecordReply struct {
	Address    account.Address     `json:"address"`
	Allocation uint64              `json:"allocation,string"`
	Index      *uint64             `json:"index,omitempty,string"`
	Claim      *ledger.ClaimRecord `json:"claim,omitempty"`
	AmendedTo  *account.Address    `json:"amendedTo,omitempty"`
	Vested     uint64              `json:"vested,string"`
}

// Record - the allocation, index, claim, amendment and vesting of an address
func (c *Claims) Record(arguments *AddressArguments, reply *RecordReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	allocation, err := c.Ledger.Allocation(arguments.Address)
	if nil != err {
		return err
	}

	reply.Address = arguments.Address
	reply.Allocation = allocation
	reply.Vested = c.Ledger.Vested(arguments.Address)

	if index, ok := c.Ledger.AssignedIndex(arguments.Address); ok {
		reply.Index = &index
	}
	if record, ok := c.Ledger.Claims(arguments.Address); ok {
		reply.Claim = &record
	}
	if to, ok := c.Ledger.Amended(arguments.Address); ok {
		reply.AmendedTo = &to
	}
	return nil
}

// HasClaimedReply - result of has claimed request
type HasClaimedReply struct {
	Claimed bool `json:"claimed"`
}

// HasClaimed - whether the address has claimed
func (c *Claims) HasClaimed(arguments *AddressArguments, reply *HasClaimedReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	claimed, err := c.Ledger.HasClaimed(arguments.Address)
	if nil != err {
		return err
	}
	reply.Claimed = claimed
	return nil
}

// Lists
// -----

// ListArguments - a range of positions
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - addresses from a position list
type ListReply struct {
	Addresses []account.Address `json:"addresses"`
	NextStart uint64            `json:"nextStart,string"`
	Length    uint64            `json:"length,string"`
}

// Claimed - claimed addresses in claim order
func (c *Claims) Claimed(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	length := c.Ledger.ClaimedLength()
	addresses := make([]account.Address, 0, arguments.Count)

	position := arguments.Start
	for ; position < length && len(addresses) < arguments.Count; position += 1 {
		address, err := c.Ledger.Claimed(position)
		if nil != err {
			return err
		}
		addresses = append(addresses, address)
	}

	reply.Addresses = addresses
	reply.NextStart = position
	reply.Length = length
	return nil
}

// PubKeyListArguments - a range of claims for one public key
type PubKeyListArguments struct {
	PubKey account.PubKey `json:"pubKey"`
	Start  uint64         `json:"start,string"`
	Count  int            `json:"count"`
}

// PubKeyClaims - addresses that claimed to a public key
func (c *Claims) PubKeyClaims(arguments *PubKeyListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(c.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	length := c.Ledger.ClaimsForPubKeyLength(arguments.PubKey)
	addresses := make([]account.Address, 0, arguments.Count)

	position := arguments.Start
	for ; position < length && len(addresses) < arguments.Count; position += 1 {
		address, err := c.Ledger.ClaimsForPubKey(arguments.PubKey, position)
		if nil != err {
			return err
		}
		addresses = append(addresses, address)
	}

	reply.Addresses = addresses
	reply.NextStart = position
	reply.Length = length
	return nil
}

// Balance
// -------

// BalanceArguments - a destination public key
type BalanceArguments struct {
	PubKey account.PubKey `json:"pubKey"`
}

// BalanceReply - the total owed to a public key
type BalanceReply struct {
	PubKey     account.PubKey `json:"pubKey"`
	Balance    uint64         `json:"balance,string"`
	SaleCredit uint64         `json:"saleCredit,string"`
}

// Balance - current token balance of every claim plus sale credit
func (c *Claims) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	balance, err := c.Ledger.BalanceOfPubKey(arguments.PubKey)
	if nil != err {
		return err
	}

	reply.PubKey = arguments.PubKey
	reply.Balance = balance
	reply.SaleCredit = c.Ledger.SaleCredit(arguments.PubKey)
	return nil
}

// Nonce
// -----

// NonceReply - the last accepted nonce
type NonceReply struct {
	Nonce uint64 `json:"nonce,string"`
}

// Nonce - the last nonce accepted from an address, the next request
// must use a larger one
func (c *Claims) Nonce(arguments *AddressArguments, reply *NonceReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}
	reply.Nonce = authorisation.LastNonce(arguments.Address)
	return nil
}
