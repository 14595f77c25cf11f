// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/rpc/certificate"
	"github.com/bitmark-inc/claimsd/token"
	"github.com/bitmark-inc/claimsd/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate(certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "load-allocations", "load", "dump-claims", "claims", "dump-allocations", "allocations":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                        and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  load-allocations FILE      (load)   - replace the token balances from an address,amount CSV file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-claims [FILE]         (claims) - write all claims in claim order as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-allocations [FILE]    (allocations) - write all token balances as JSON to stdout/file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson(os.Stdout, options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the claims database is open so these commands can access and/or
// change the stored data
func processDataCommand(log *logger.L, arguments []string, options *Configuration, l claims.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "load-allocations", "load":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}
		filename := arguments[0]
		if "" == filename {
			exitwithstatus.Message("missing file name")
		}
		n, err := token.LoadFile(filename)
		if nil != err {
			exitwithstatus.Message("failed loading: %q  error: %s", filename, err)
		}
		log.Infof("loaded: %d allocations from: %q", n, filename)
		fmt.Printf("loaded: %d allocations\n", n)

	case "dump-claims", "claims":
		fd := outputFile(arguments)
		defer fd.Close()

		records, err := dumpClaims(l)
		if nil != err {
			exitwithstatus.Message("dump claims error: %s", err)
		}
		printJson(fd, records)

	case "dump-allocations", "allocations":
		fd := outputFile(arguments)
		defer fd.Close()

		allocations, err := token.NewSnapshot().All()
		if nil != err {
			exitwithstatus.Message("dump allocations error: %s", err)
		}
		printJson(fd, allocations)

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

type claimDump struct {
	Address   account.Address  `json:"address"`
	AmendedTo *account.Address `json:"amendedTo,omitempty"`
	claims.ClaimRecord
}

// every claim in the order it was made
func dumpClaims(l claims.Ledger) ([]claimDump, error) {
	n := l.ClaimedLength()
	result := make([]claimDump, 0, n)
	for i := uint64(0); i < n; i += 1 {
		address, err := l.Claimed(i)
		if nil != err {
			return nil, err
		}
		record, ok := l.Claims(address)
		if !ok {
			return nil, fmt.Errorf("claim: %d  address: %s  has no record", i, address)
		}
		item := claimDump{
			Address:     address,
			ClaimRecord: record,
		}
		if to, ok := l.Amended(address); ok {
			item.AmendedTo = &to
		}
		result = append(result, item)
	}
	return result, nil
}

// optional output file name, "-" or missing is stdout
func outputFile(arguments []string) *os.File {
	output := "-"
	if len(arguments) > 0 {
		output = strings.TrimSpace(arguments[0])
	}
	if "" == output || "-" == output {
		return os.Stdout
	}
	fd, err := os.Create(output)
	if nil != err {
		exitwithstatus.Message("error: creating: %q error: %s", output, err)
	}
	return fd
}

func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

func printJson(w io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	fmt.Fprintf(w, "%s\n", b)
}
