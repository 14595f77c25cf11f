// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/claimsd/zmqutil"
)

type notification struct {
	Event     string          `json:"event"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	serverKeyFile := c.String("server-key")
	if "" == serverKeyFile {
		return ErrServerKeyMissing
	}
	serverPublicKey, err := zmqutil.ReadPublicKeyFile(serverKeyFile)
	if nil != err {
		return err
	}

	// ephemeral client identity
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	socket, err := zmqutil.NewSubscriber([]byte(zmq.Z85decode(privateKey)), []byte(zmq.Z85decode(publicKey)), serverPublicKey, c.String("publisher"))
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed to: %s\n", c.String("publisher"))
	}

	limit := c.Int("limit")
	for n := 0; 0 == limit || n < limit; n += 1 {
		frames, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		if len(frames) < 2 || 8 != len(frames[1]) {
			fmt.Fprintf(m.e, "ignored malformed message: %d frames\n", len(frames))
			continue
		}

		item := notification{
			Event:     string(frames[0]),
			Timestamp: time.Unix(int64(binary.BigEndian.Uint64(frames[1])), 0).UTC(),
		}
		if len(frames) > 2 && json.Valid(frames[2]) {
			item.Data = frames[2]
		}
		if err := printJson(m.w, item); nil != err {
			return err
		}
	}
	return nil
}
