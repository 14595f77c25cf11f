// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/claimsd/messagebus"
	"github.com/bitmark-inc/claimsd/zmqutil"
)

const (
	zapDomain = "claimsd-publish"
	queueSize = 1000
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
}

// bind the sockets and register on the bus so nothing committed
// after this point is missed
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.socket4 = socket4
	brdc.socket6 = socket6
	brdc.queue = messagebus.Bus.Broadcast.Chan(queueSize)

	return nil
}

// Run - forward each bus message to the subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Infof("sending: %s", item.Command)
			if nil != brdc.socket4 {
				brdc.send(brdc.socket4, item)
			}
			if nil != brdc.socket6 {
				brdc.send(brdc.socket6, item)
			}
		}
	}

	log.Info("shutting down…")
	messagebus.Bus.Broadcast.Release(brdc.queue)
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
	log.Info("stopped")
}

// frames: command ++ unix time ++ parameters
func (brdc *broadcaster) send(socket *zmq.Socket, item messagebus.Message) {

	now := make([]byte, 8)
	binary.BigEndian.PutUint64(now, uint64(time.Now().Unix()))

	frames := make([]interface{}, 0, 2+len(item.Parameters))
	frames = append(frames, item.Command, now)
	for _, p := range item.Parameters {
		frames = append(frames, p)
	}

	if _, err := socket.SendMessage(frames...); nil != err {
		brdc.log.Errorf("send error: %s", err)
	}
}
