// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/counter"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
	"github.com/bitmark-inc/claimsd/rpc/certificate"
	"github.com/bitmark-inc/claimsd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

type testServer struct {
	dir       string
	listen    string
	tlsConfig *tls.Config
	count     counter.Counter
}

func setup(t *testing.T) *testServer {
	dir, err := ioutil.TempDir("", "listeners")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fixtures.SetupTestLogger(filepath.Join(dir, "log"))

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	err = certificate.Generate(certificateFile, keyFile, nil)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	tlsConfig, _, err := certificate.Load(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	if nil != err {
		t.Fatalf("load certificate error: %s", err)
	}

	return &testServer{
		dir:       dir,
		listen:    fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000),
		tlsConfig: tlsConfig,
	}
}

func (s *testServer) teardown() {
	fixtures.TeardownTestLogger(filepath.Join(s.dir, "log"))
	os.RemoveAll(s.dir)
}

func (s *testServer) start(t *testing.T, maximum uint64) listeners.Listener {
	server := rpc.NewServer()
	err := server.Register(Add{})
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	configuration := listeners.RPCConfiguration{
		MaximumConnections: maximum,
		Listen:             []string{s.listen},
	}
	l, err := listeners.NewRPC(&configuration, logger.New(fixtures.LogCategory), &s.count, server, s.tlsConfig, [32]byte{})
	if nil != err {
		t.Fatalf("NewRPC error: %s", err)
	}
	err = l.Serve()
	if nil != err {
		t.Fatalf("Serve error: %s", err)
	}
	return l
}

func (s *testServer) call() (*rpc.Client, error) {
	conn, err := tls.Dial("tcp", s.listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		return nil, err
	}
	client := jsonrpc.NewClient(conn)

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 2, B: 5}, &reply)
	if nil != err {
		client.Close()
		return nil, err
	}
	if 7 != reply {
		client.Close()
		return nil, fmt.Errorf("wrong reply: %d", reply)
	}
	return client, nil
}

func TestRPCListenerServe(t *testing.T) {
	s := setup(t)
	defer s.teardown()

	l := s.start(t, 5)
	defer l.Stop()

	client, err := s.call()
	assert.Nil(t, err, "wrong call")
	assert.Equal(t, uint64(1), s.count.Uint64(), "wrong connection count")
	client.Close()
}

func TestRPCListenerConnectionLimit(t *testing.T) {
	s := setup(t)
	defer s.teardown()

	l := s.start(t, 1)
	defer l.Stop()

	first, err := s.call()
	assert.Nil(t, err, "first call")
	defer first.Close()

	_, err = s.call()
	assert.NotNil(t, err, "second connection accepted")

	assert.Equal(t, uint64(1), s.count.Uint64(), "wrong connection count")
}

func TestRPCListenerStop(t *testing.T) {
	s := setup(t)
	defer s.teardown()

	l := s.start(t, 5)
	l.Stop()

	time.Sleep(10 * time.Millisecond)
	_, err := s.call()
	assert.NotNil(t, err, "call after stop")
}

func TestNewRPCInvalid(t *testing.T) {
	s := setup(t)
	defer s.teardown()

	log := logger.New(fixtures.LogCategory)
	server := rpc.NewServer()

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{s.listen},
	}, log, &s.count, server, s.tlsConfig, [32]byte{})
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
	}, log, &s.count, server, s.tlsConfig, [32]byte{})
	assert.Equal(t, fault.MissingParameters, err, "no listen")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"localhost:1234"},
	}, log, &s.count, server, s.tlsConfig, [32]byte{})
	assert.Equal(t, fault.InvalidIPAddress, err, "hostname listen")
}
