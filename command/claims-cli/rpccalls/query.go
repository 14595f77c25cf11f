// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/rpc/claims"
	"github.com/bitmark-inc/claimsd/rpc/node"
)

// GetInfo - request daemon status
func (client *Client) GetInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := client.call("Node.Info", node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetStatus - ledger parameters and counters
func (client *Client) GetStatus() (*claims.StatusReply, error) {
	reply := &claims.StatusReply{}
	if err := client.call("Claims.Status", claims.StatusArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetRecord - everything known about one source address
func (client *Client) GetRecord(address account.Address) (*claims.RecordReply, error) {
	reply := &claims.RecordReply{}
	if err := client.call("Claims.Record", claims.AddressArguments{Address: address}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetBalance - claimed amount plus sale credit of a public key
func (client *Client) GetBalance(pubKey account.PubKey) (*claims.BalanceReply, error) {
	reply := &claims.BalanceReply{}
	if err := client.call("Claims.Balance", claims.BalanceArguments{PubKey: pubKey}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetClaimed - a page of the claim order
func (client *Client) GetClaimed(start uint64, count int) (*claims.ListReply, error) {
	arguments := claims.ListArguments{
		Start: start,
		Count: count,
	}
	reply := &claims.ListReply{}
	if err := client.call("Claims.Claimed", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetPubKeyClaims - a page of the addresses claimed to one public key
func (client *Client) GetPubKeyClaims(pubKey account.PubKey, start uint64, count int) (*claims.ListReply, error) {
	arguments := claims.PubKeyListArguments{
		PubKey: pubKey,
		Start:  start,
		Count:  count,
	}
	reply := &claims.ListReply{}
	if err := client.call("Claims.PubKeyClaims", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetNonce - the last nonce the daemon accepted from an address
func (client *Client) GetNonce(address account.Address) (uint64, error) {
	reply := &claims.NonceReply{}
	if err := client.call("Claims.Nonce", claims.AddressArguments{Address: address}, reply); nil != err {
		return 0, err
	}
	return reply.Nonce, nil
}
