// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/claimsd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of "host:port" addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := CanonicalAddress(address)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - create a CURVE server socket that accepts any client
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	err = socket.SetCurveServer(1)
	if nil != err {
		goto fail
	}
	err = socket.SetCurveSecretkey(string(privateKey))
	if nil != err {
		goto fail
	}
	err = socket.SetZapDomain(zapDomain)
	if nil != err {
		goto fail
	}

	socket.SetIdentity(string(publicKey)) // just use public key for identity
	socket.SetIpv6(v6)                    // conditionally set IPv6 state
	socket.SetLinger(0)

	// heartbeat
	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil

fail:
	socket.Close()
	return nil, err
}

// NewSubscriber - a CURVE client SUB socket connected to a publisher
// and subscribed to every message
func NewSubscriber(privateKey []byte, publicKey []byte, serverPublicKey []byte, address string) (*zmq.Socket, error) {

	connectTo, v6, err := CanonicalAddress(address)
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	socket.SetCurveSecretkey(string(privateKey))
	socket.SetCurvePublickey(string(publicKey))
	socket.SetCurveServerkey(string(serverPublicKey))
	socket.SetIpv6(v6)
	socket.SetLinger(0)

	err = socket.SetSubscribe("")
	if nil == err {
		err = socket.Connect(connectTo)
	}
	if nil != err {
		socket.Close()
		return nil, err
	}
	return socket, nil
}

// CanonicalAddress - convert "host:port" to a tcp:// endpoint
//
// "*:PORT" binds all IPv4 and IPv6 interfaces
func CanonicalAddress(address string) (string, bool, error) {
	canonical, v6, err := util.CanonicalIPandPort(address)
	if nil != err {
		return "", false, err
	}
	return "tcp://" + canonical, v6, nil
}
