// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/command/claims-cli/rpccalls"
	"github.com/bitmark-inc/claimsd/rpc/claims"
)

// connect, sign with the configured key and print the events
func mutate(c *cli.Context, call func(*rpccalls.Client, *account.PrivateKey) (*claims.MutationReply, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := call(client, key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAssign(c *cli.Context) error {
	if 0 == c.NArg() {
		return ErrArgumentMissing
	}
	addresses, err := parseAddresses(c.Args())
	if nil != err {
		return err
	}
	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		return client.AssignIndices(key, addresses)
	})
}

func runAmend(c *cli.Context) error {
	originals, err := parseAddresses(c.StringSlice("original"))
	if nil != err {
		return err
	}
	amendedTos, err := parseAddresses(c.StringSlice("to"))
	if nil != err {
		return err
	}
	if 0 == len(originals) {
		return ErrArgumentMissing
	}
	if len(originals) != len(amendedTos) {
		return ErrCountMismatch
	}
	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		return client.Amend(key, originals, amendedTos)
	})
}

func runClaim(c *cli.Context) error {
	pubKey, err := parsePubKey(c.String("pubkey"))
	if nil != err {
		return err
	}

	target := strings.TrimSpace(c.String("target"))

	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		address := key.Address()
		if "" != target {
			a, err := account.AddressFromHex(target)
			if nil != err {
				return nil, err
			}
			address = a
		}
		return client.Claim(key, address, pubKey)
	})
}

func runSetVesting(c *cli.Context) error {
	addresses, amounts, err := addressAmounts(c)
	if nil != err {
		return err
	}
	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		return client.SetVesting(key, addresses, amounts)
	})
}

func runIncreaseVesting(c *cli.Context) error {
	addresses, amounts, err := addressAmounts(c)
	if nil != err {
		return err
	}
	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		return client.IncreaseVesting(key, addresses, amounts)
	})
}

func runInjectSale(c *cli.Context) error {
	pubKeys, amounts, err := pubKeyAmounts(c)
	if nil != err {
		return err
	}
	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		return client.InjectSaleAmount(key, pubKeys, amounts)
	})
}

func runFreeze(c *cli.Context) error {
	return mutate(c, func(client *rpccalls.Client, key *account.PrivateKey) (*claims.MutationReply, error) {
		return client.Freeze(key)
	})
}
