// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/claimsd/fault"
)

// WildcardHost - listen on every IPv4 and IPv6 interface
const WildcardHost = "*"

// CanonicalIPandPort - validate "IP:PORT" and return it normalised
//
// the result is "a.b.c.d:port", "[ipv6]:port" or "*:port"; v6 is set
// for IPv6 and wildcard addresses
func CanonicalIPandPort(hostPort string) (string, bool, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, fault.InvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", false, fault.InvalidPortNumber
	}
	p := strconv.Itoa(numericPort)

	host = strings.TrimSpace(host)
	if WildcardHost == host {
		return WildcardHost + ":" + p, true, nil
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return "", false, fault.InvalidIPAddress
	}

	if nil != IP.To4() {
		return IP.String() + ":" + p, false, nil
	}
	return "[" + IP.String() + "]:" + p, true, nil
}
