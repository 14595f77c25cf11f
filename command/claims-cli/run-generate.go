// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimsd/account"
)

type generateReply struct {
	PrivateKey string          `json:"privateKey"`
	Address    account.Address `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		PrivateKey: key.Hex(),
		Address:    key.Address(),
	})
}
