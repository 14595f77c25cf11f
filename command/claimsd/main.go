// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/background"
	"github.com/bitmark-inc/claimsd/claims"
	"github.com/bitmark-inc/claimsd/clock"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/publish"
	"github.com/bitmark-inc/claimsd/rpc"
	"github.com/bitmark-inc/claimsd/storage"
	"github.com/bitmark-inc/claimsd/token"
	"github.com/bitmark-inc/claimsd/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, map[string]string{
		"version": version,
	})
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("read only: %v", theConfiguration.ReadOnly)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, theConfiguration.ReadOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	owner, err := account.AddressFromHex(theConfiguration.Owner)
	if nil != err {
		log.Criticalf("owner: %q  error: %s", theConfiguration.Owner, err)
		exitwithstatus.Message("owner: %q  error: %s", theConfiguration.Owner, err)
	}

	var processes background.Processes

	clk, ticker, err := makeClock(theConfiguration.Clock)
	if nil != err {
		log.Criticalf("clock error: %s", err)
		exitwithstatus.Message("clock error: %s", err)
	}
	if nil != ticker {
		processes = append(processes, ticker)
	}

	log.Info("initialise claims")
	ledger, err := claims.New(owner, theConfiguration.EndSetupDelay, token.NewSnapshot(), clk)
	if nil != err {
		log.Criticalf("claims initialise error: %s", err)
		exitwithstatus.Message("claims initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration, ledger) {
		return
	}

	// refresh the token balances before any client can query them
	allocations := theConfiguration.Allocations
	if "" != allocations.File && util.EnsureFileExists(allocations.File) && !theConfiguration.ReadOnly {
		n, err := token.LoadFile(allocations.File)
		if nil != err {
			log.Criticalf("allocations: %q  error: %s", allocations.File, err)
			exitwithstatus.Message("allocations: %q  error: %s", allocations.File, err)
		}
		log.Infof("allocations: %q  count: %d", allocations.File, n)
	}
	if "" != allocations.File && allocations.Watch && !theConfiguration.ReadOnly {
		watcher, err := token.NewWatcher(allocations.File)
		if nil != err {
			log.Criticalf("allocations watcher error: %s", err)
			exitwithstatus.Message("allocations watcher error: %s", err)
		}
		processes = append(processes, watcher)
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, ledger, clk, theConfiguration.ReadOnly)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// the clock compared against the setup delay
//
// a height clock also returns the process that advances it
func makeClock(configuration ClockType) (clock.Clock, background.Process, error) {
	switch configuration.Type {
	case clockUnix:
		return &clock.System{}, nil, nil

	case clockHeight:
		interval, err := time.ParseDuration(configuration.TickInterval)
		if nil != err {
			return nil, nil, err
		}
		if interval <= 0 {
			return nil, nil, fmt.Errorf("tick interval: %q must be positive", configuration.TickInterval)
		}
		height := clock.NewHeight(configuration.Start)
		return height, clock.NewTicker(height, interval), nil

	default:
		return nil, nil, fault.InvalidClockType
	}
}
