// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/util"
)

const (
	organisation = "claimsd self signed cert"
	validity     = 10 * 365 * 24 * time.Hour
)

// Get - validate a PEM certificate and key pair and build a TLS
// configuration from it
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	return tlsConfiguration, Fingerprint(keyPair.Certificate[0]), nil
}

// Load - read a certificate and key from files then Get
func Load(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFile, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFile, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Fingerprint - SHA3-256 of the DER certificate
//
// openssl x509 -outform DER -in claimsd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Generate - create a self-signed certificate and key
//
// existing files are never overwritten, a non-empty extraHosts
// replaces the default host list
func Generate(certificateFile, keyFile string, extraHosts []string) error {

	if util.EnsureFileExists(certificateFile) {
		return fault.CertificateFileAlreadyExists
	}
	if util.EnsureFileExists(keyFile) {
		return fault.KeyFileAlreadyExists
	}

	cert, key, err := certgen.NewTLSCertPair(organisation, time.Now().Add(validity), 0 != len(extraHosts), extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFile, cert, 0666); nil != err {
		return err
	}
	if err = ioutil.WriteFile(keyFile, key, 0600); nil != err {
		os.Remove(certificateFile)
		return err
	}
	return nil
}
