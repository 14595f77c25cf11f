// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	keyHex  string
	keyFile string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "claims-cli"
	app.Usage = "client for the claimsd claims ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2230",
			Usage:  " claimsd RPC `HOST:PORT`",
			EnvVar: "CLAIMS_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " signing private key `HEX`",
			EnvVar: "CLAIMS_KEY",
		},
		cli.StringFlag{
			Name:  "key-file, K",
			Value: "",
			Usage: " read the signing private key from `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a signing key, print its address",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "assign",
			Usage:     "assign the next indices to addresses (owner only)",
			ArgsUsage: "ADDRESS...\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runAssign,
		},
		{
			Name:      "amend",
			Usage:     "redirect the claim for an address to another address (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "original, o",
					Usage: "*original allocation `ADDRESS` (repeatable)",
				},
				cli.StringSliceFlag{
					Name:  "to, t",
					Usage: "*amended `ADDRESS` paired with each original, zero address removes",
				},
			},
			Action: runAmend,
		},
		{
			Name:      "claim",
			Usage:     "bind an allocation to a destination public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, a",
					Value: "",
					Usage: " allocation `ADDRESS` [default: signing address]",
				},
				cli.StringFlag{
					Name:  "pubkey, p",
					Value: "",
					Usage: "*destination public key `HEX|SS58`",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "set-vesting",
			Usage:     "record first time vesting amounts (owner only)",
			ArgsUsage: "ADDRESS:AMOUNT...\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runSetVesting,
		},
		{
			Name:      "increase-vesting",
			Usage:     "add to existing vesting amounts (owner only)",
			ArgsUsage: "ADDRESS:AMOUNT...\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runIncreaseVesting,
		},
		{
			Name:      "inject-sale",
			Usage:     "credit sale purchases to public keys (owner only)",
			ArgsUsage: "PUBKEY:AMOUNT...\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInjectSale,
		},
		{
			Name:      "freeze",
			Usage:     "close the claim gate permanently (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runFreeze,
		},
		{
			Name:   "status",
			Usage:  "display the ledger status",
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display claimsd node information",
			Action: runInfo,
		},
		{
			Name:      "record",
			Usage:     "display everything known about an address",
			ArgsUsage: "ADDRESS\n   (* = required)",
			Action:    runRecord,
		},
		{
			Name:      "balance",
			Usage:     "display claimed balance and sale credit of a public key",
			ArgsUsage: "PUBKEY\n   (* = required)",
			Action:    runBalance,
		},
		{
			Name:      "claimed",
			Usage:     "list claimed addresses in claim order, or for one public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pubkey, p",
					Value: "",
					Usage: " only claims to public key `HEX|SS58`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first position `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum entries `COUNT`",
				},
			},
			Action: runClaimed,
		},
		{
			Name:      "decode",
			Usage:     "decode an SS58 address to its public key",
			ArgsUsage: "SS58\n   (* = required)",
			Action:    runDecode,
		},
		{
			Name:      "watch",
			Usage:     "print ledger notifications published by claimsd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, P",
					Value: "127.0.0.1:2235",
					Usage: " claimsd publish `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, S",
					Value: "",
					Usage: "*claimsd publish public key `FILE`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: " stop after `COUNT` notifications [default: never]",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display claims-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			keyHex:  c.GlobalString("key"),
			keyFile: c.GlobalString("key-file"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
