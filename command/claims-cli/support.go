// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/command/claims-cli/rpccalls"
)

// the signing key from --key or --key-file
func getKey(m *metadata) (*account.PrivateKey, error) {
	if "" != m.keyHex {
		return account.PrivateKeyFromHex(m.keyHex)
	}
	if "" != m.keyFile {
		data, err := ioutil.ReadFile(m.keyFile)
		if nil != err {
			return nil, err
		}
		return account.PrivateKeyFromHex(string(data))
	}
	return nil, ErrKeyIsRequired
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// accept either SS58 or 0x hex
func parsePubKey(s string) (account.PubKey, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return account.PubKey{}, ErrPubKeyIsInvalid
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return account.PubKeyFromHex(s)
	}
	pubKey, _, err := account.DecodeSS58(s)
	if nil != err {
		return account.PubKeyFromHex(s)
	}
	return pubKey, nil
}

func parseAddresses(items []string) ([]account.Address, error) {
	addresses := make([]account.Address, len(items))
	for i, s := range items {
		a, err := account.AddressFromHex(strings.TrimSpace(s))
		if nil != err {
			return nil, err
		}
		addresses[i] = a
	}
	return addresses, nil
}

// split "ITEM:AMOUNT" arguments
func splitAmounts(items []string) ([]string, []uint64, error) {
	if 0 == len(items) {
		return nil, nil, ErrArgumentMissing
	}
	keys := make([]string, len(items))
	amounts := make([]uint64, len(items))
	for i, s := range items {
		n := strings.LastIndex(s, ":")
		if n <= 0 {
			return nil, nil, ErrAmountIsInvalid
		}
		amount, err := strconv.ParseUint(strings.TrimSpace(s[n+1:]), 10, 64)
		if nil != err {
			return nil, nil, ErrAmountIsInvalid
		}
		keys[i] = strings.TrimSpace(s[:n])
		amounts[i] = amount
	}
	return keys, amounts, nil
}

func addressAmounts(c *cli.Context) ([]account.Address, []uint64, error) {
	keys, amounts, err := splitAmounts(c.Args())
	if nil != err {
		return nil, nil, err
	}
	addresses, err := parseAddresses(keys)
	if nil != err {
		return nil, nil, err
	}
	return addresses, amounts, nil
}

func pubKeyAmounts(c *cli.Context) ([]account.PubKey, []uint64, error) {
	keys, amounts, err := splitAmounts(c.Args())
	if nil != err {
		return nil, nil, err
	}
	pubKeys := make([]account.PubKey, len(keys))
	for i, k := range keys {
		p, err := parsePubKey(k)
		if nil != err {
			return nil, nil, err
		}
		pubKeys[i] = p
	}
	return pubKeys, amounts, nil
}

// exactly one positional argument
func singleArgument(c *cli.Context) (string, error) {
	switch c.NArg() {
	case 0:
		return "", ErrArgumentMissing
	case 1:
		return strings.TrimSpace(c.Args().Get(0)), nil
	default:
		return "", ErrTooManyArguments
	}
}
