// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/configuration"
	"github.com/bitmark-inc/claimsd/fault"
)

type clockConfiguration struct {
	Type         string `gluamapper:"type"`
	TickInterval string `gluamapper:"tick_interval"`
}

type testConfiguration struct {
	DataDirectory string             `gluamapper:"data_directory"`
	Owner         string             `gluamapper:"owner"`
	EndSetupDelay uint64             `gluamapper:"end_setup_delay"`
	Clock         clockConfiguration `gluamapper:"clock"`
	Listen        []string           `gluamapper:"listen"`
	Levels        map[string]string  `gluamapper:"levels"`
}

const script = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.owner = owner_from_variable
M.end_setup_delay = 7 * 24 * 3600
M.clock = {
    type = "height",
    tick_interval = "6s",
}
M.listen = { "127.0.0.1:2230", "[::1]:2230" }
M.levels = { main = "info", DEFAULT = "critical" }

return M
`

func writeScript(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "claimsd.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, fileName := writeScript(t, script)
	defer os.RemoveAll(dir)

	variables := map[string]string{
		"owner_from_variable": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, variables)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, dir+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, variables["owner_from_variable"], c.Owner, "wrong owner")
	assert.Equal(t, uint64(604800), c.EndSetupDelay, "wrong delay")
	assert.Equal(t, "height", c.Clock.Type, "wrong clock type")
	assert.Equal(t, "6s", c.Clock.TickInterval, "wrong tick interval")
	assert.Equal(t, []string{"127.0.0.1:2230", "[::1]:2230"}, c.Listen, "wrong listen")
	assert.Equal(t, "info", c.Levels["main"], "wrong level")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, fileName := writeScript(t, "return 42\n")
	defer os.RemoveAll(dir)

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Equal(t, fault.InvalidConfiguration, err, "non-table result")

	err = configuration.ParseConfigurationFile(fileName, c, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "non-pointer")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &c, nil)
	assert.NotNil(t, err, "missing file")

	syntax, syntaxFile := writeScript(t, "return {\n")
	defer os.RemoveAll(syntax)
	err = configuration.ParseConfigurationFile(syntaxFile, &c, nil)
	assert.NotNil(t, err, "syntax error")
}
