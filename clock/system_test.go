// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemWallClockStep(t *testing.T) {
	saved := unixNow
	defer func() {
		unixNow = saved
	}()

	readings := []int64{1000, 1005, 990, 1005, 1010, -1}
	expected := []uint64{1000, 1005, 1005, 1005, 1010, 1010}

	c := &System{}
	for i, r := range readings {
		unixNow = func() int64 { return r }
		assert.Equal(t, expected[i], c.Now(), "wrong reading: %d", i)
	}
}
