// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimsd/account"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetStatus()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runRecord(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := singleArgument(c)
	if nil != err {
		return err
	}
	address, err := account.AddressFromHex(s)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetRecord(address)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := singleArgument(c)
	if nil != err {
		return err
	}
	pubKey, err := parsePubKey(s)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(pubKey)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runClaimed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := c.Uint64("start")
	count := c.Int("count")
	p := strings.TrimSpace(c.String("pubkey"))

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" == p {
		reply, err := client.GetClaimed(start, count)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	pubKey, err := parsePubKey(p)
	if nil != err {
		return err
	}
	reply, err := client.GetPubKeyClaims(pubKey, start, count)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
