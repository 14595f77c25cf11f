// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/claimsd/counter"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/util"
)

const (
	logName               = "client_rpc"
	minConnectionCount    = 1
	defaultMaxConnections = 100
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// DefaultRPCConfiguration - values used when the configuration file omits them
func DefaultRPCConfiguration(certificate, privateKey string) RPCConfiguration {
	return RPCConfiguration{
		MaximumConnections: defaultMaxConnections,
		Listen:             []string{"127.0.0.1:2230"},
		Certificate:        certificate,
		PrivateKey:         privateKey,
	}
}

// Listener - an accepting server
type Listener interface {
	Serve() error
	Stop()
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	networks       []string
	addresses      []string
	listeners      []net.Listener
	accepting      sync.WaitGroup
}

// NewRPC - validate the configuration and prepare a JSON-RPC over TLS listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	networks, addresses, err := parseListenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		networks:       networks,
		addresses:      addresses,
	}, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.addresses {
		r.log.Infof("starting RPC server: %s", address)
		listener, err := tls.Listen(r.networks[i], address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		r.accepting.Add(1)
		go r.accept(listener)
	}
	return nil
}

// Stop - close all listeners and wait for their accept loops to end,
// open connections finish their current call
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, listener := range r.listeners {
		_ = listener.Close()
	}
	r.listeners = nil
	r.accepting.Wait()
}

func (r *rpcListener) accept(listener net.Listener) {
	defer r.accepting.Done()
	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if !r.count.IncrementBelow(r.maxConnections) {
			r.log.Warnf("connection limit: %d reached, rejecting: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
}

// convert each listen string to a network and address:
//   "*:PORT"         tcp  [::]:PORT
//   "[ipv6]:PORT"    tcp6
//   "ipv4:PORT"      tcp4
func parseListenAddresses(listen []string) ([]string, []string, error) {
	networks := make([]string, len(listen))
	addresses := make([]string, len(listen))

	for i, address := range listen {
		canonical, v6, err := util.CanonicalIPandPort(address)
		if nil != err {
			return nil, nil, err
		}

		switch {
		case strings.HasPrefix(canonical, util.WildcardHost+":"):
			networks[i] = "tcp"
			addresses[i] = "[::]" + strings.TrimPrefix(canonical, util.WildcardHost)
		case v6:
			networks[i] = "tcp6"
			addresses[i] = canonical
		default:
			networks[i] = "tcp4"
			addresses[i] = canonical
		}
	}

	return networks, addresses, nil
}
