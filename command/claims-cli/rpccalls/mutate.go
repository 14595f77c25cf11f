// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/rpc/authorisation"
	"github.com/bitmark-inc/claimsd/rpc/claims"
)

// sign a payload with the next unused nonce of the key's address
func (client *Client) authorise(key *account.PrivateKey, method string, payload interface{}) (*authorisation.Authorisation, error) {
	nonce, err := client.GetNonce(key.Address())
	if nil != err {
		return nil, err
	}
	return authorisation.Sign(key, method, nonce+1, payload)
}

// AssignIndices - owner assigns the next indices to addresses
func (client *Client) AssignIndices(key *account.PrivateKey, addresses []account.Address) (*claims.MutationReply, error) {
	const method = "Claims.AssignIndices"
	payload := claims.AssignIndicesPayload{
		Addresses: addresses,
	}
	auth, err := client.authorise(key, method, payload)
	if nil != err {
		return nil, err
	}

	arguments := claims.AssignIndicesArguments{
		AssignIndicesPayload: payload,
		Authorisation:        auth,
	}
	reply := &claims.MutationReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Amend - owner redirects claims for original addresses
func (client *Client) Amend(key *account.PrivateKey, originals []account.Address, amendedTos []account.Address) (*claims.MutationReply, error) {
	const method = "Claims.Amend"
	payload := claims.AmendPayload{
		Originals:  originals,
		AmendedTos: amendedTos,
	}
	auth, err := client.authorise(key, method, payload)
	if nil != err {
		return nil, err
	}

	arguments := claims.AmendArguments{
		AmendPayload:  payload,
		Authorisation: auth,
	}
	reply := &claims.MutationReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Claim - bind the allocation of target to a destination public key
func (client *Client) Claim(key *account.PrivateKey, target account.Address, pubKey account.PubKey) (*claims.MutationReply, error) {
	const method = "Claims.Claim"
	payload := claims.ClaimPayload{
		Target: target,
		PubKey: pubKey,
	}
	auth, err := client.authorise(key, method, payload)
	if nil != err {
		return nil, err
	}

	arguments := claims.ClaimArguments{
		ClaimPayload:  payload,
		Authorisation: auth,
	}
	reply := &claims.MutationReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SetVesting - owner records the first vesting of addresses
func (client *Client) SetVesting(key *account.PrivateKey, addresses []account.Address, amounts []uint64) (*claims.MutationReply, error) {
	return client.vesting(key, "Claims.SetVesting", addresses, amounts)
}

// IncreaseVesting - owner adds to existing vesting
func (client *Client) IncreaseVesting(key *account.PrivateKey, addresses []account.Address, amounts []uint64) (*claims.MutationReply, error) {
	return client.vesting(key, "Claims.IncreaseVesting", addresses, amounts)
}

func (client *Client) vesting(key *account.PrivateKey, method string, addresses []account.Address, amounts []uint64) (*claims.MutationReply, error) {
	payload := claims.VestingPayload{
		Addresses: addresses,
		Amounts:   amounts,
	}
	auth, err := client.authorise(key, method, payload)
	if nil != err {
		return nil, err
	}

	arguments := claims.VestingArguments{
		VestingPayload: payload,
		Authorisation:  auth,
	}
	reply := &claims.MutationReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// InjectSaleAmount - owner credits sale purchases to public keys
func (client *Client) InjectSaleAmount(key *account.PrivateKey, pubKeys []account.PubKey, amounts []uint64) (*claims.MutationReply, error) {
	const method = "Claims.InjectSaleAmount"
	payload := claims.InjectSalePayload{
		PubKeys: pubKeys,
		Amounts: amounts,
	}
	auth, err := client.authorise(key, method, payload)
	if nil != err {
		return nil, err
	}

	arguments := claims.InjectSaleArguments{
		InjectSalePayload: payload,
		Authorisation:     auth,
	}
	reply := &claims.MutationReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Freeze - owner closes the claim gate
func (client *Client) Freeze(key *account.PrivateKey) (*claims.MutationReply, error) {
	const method = "Claims.Freeze"
	auth, err := client.authorise(key, method, claims.FreezePayload{})
	if nil != err {
		return nil, err
	}

	arguments := claims.FreezeArguments{
		Authorisation: auth,
	}
	reply := &claims.MutationReply{}
	if err := client.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
