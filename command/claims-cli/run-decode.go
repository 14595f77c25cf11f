// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimsd/account"
)

type decodeReply struct {
	PubKey account.PubKey `json:"pubKey"`
	Prefix uint16         `json:"prefix"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := singleArgument(c)
	if nil != err {
		return err
	}

	pubKey, prefix, err := account.DecodeSS58(address)
	if nil != err {
		return err
	}

	return printJson(m.w, decodeReply{
		PubKey: pubKey,
		Prefix: prefix,
	})
}
