// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/background"
	"github.com/bitmark-inc/claimsd/fault"
	"github.com/bitmark-inc/claimsd/fixtures"
	"github.com/bitmark-inc/claimsd/storage"
	"github.com/bitmark-inc/claimsd/token"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger(testingDirName)
	rc := m.Run()
	fixtures.TeardownTestLogger(testingDirName)
	os.Exit(rc)
}

func setup(t *testing.T) string {
	dir, err := ioutil.TempDir("", "token-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

func teardown(dir string) {
	storage.Finalise()
	os.RemoveAll(dir)
}

func TestParseCSV(t *testing.T) {
	input := "address,amount\n" +
		"# comment\n" +
		fixtures.Alice.String() + ",100\n" +
		"\n" +
		fixtures.Bob.String() + ", 0\n" +
		strings.ToLower(fixtures.Carol.String()) + ",18446744073709551615\n"

	allocations, err := token.ParseCSV(strings.NewReader(input))
	assert.Nil(t, err, "parse error")
	assert.Equal(t, []token.Allocation{
		{Address: fixtures.Alice, Amount: 100},
		{Address: fixtures.Carol, Amount: 18446744073709551615},
	}, allocations, "wrong allocations")
}

func TestParseCSVErrors(t *testing.T) {
	items := []struct {
		input string
		err   error
	}{
		{fixtures.Alice.String() + ",100,7\n", fault.InvalidAllocationRecord},
		{fixtures.Alice.String() + ",-1\n", fault.InvalidAmount},
		{fixtures.Alice.String() + ",18446744073709551616\n", fault.InvalidAmount},
		{fixtures.Alice.String() + ",1\n" + fixtures.Alice.String() + ",2\n", fault.InvalidAllocationRecord},
		{fixtures.Alice.String() + ",1\n0x1234,2\n", fault.InvalidAddress},
	}

	for i, item := range items {
		_, err := token.ParseCSV(strings.NewReader(item.input))
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestReplace(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	s := token.NewSnapshot()

	err := token.Replace([]token.Allocation{
		{Address: fixtures.Alice, Amount: 100},
		{Address: fixtures.Bob, Amount: 200},
	})
	assert.Nil(t, err, "replace error")

	amount, err := s.BalanceOf(fixtures.Alice)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(100), amount, "wrong alice balance")

	err = token.Replace([]token.Allocation{
		{Address: fixtures.Carol, Amount: 300},
	})
	assert.Nil(t, err, "replace error")

	amount, _ = s.BalanceOf(fixtures.Alice)
	assert.Equal(t, uint64(0), amount, "old balance survived replace")

	all, err := s.All()
	assert.Nil(t, err, "all error")
	assert.Equal(t, []token.Allocation{{Address: fixtures.Carol, Amount: 300}}, all, "wrong balances")
}

func TestConcurrentReplace(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	addresses := []account.Address{fixtures.Owner, fixtures.Alice, fixtures.Bob, fixtures.Carol, fixtures.Dave}

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(amount uint64, address account.Address) {
			defer wg.Done()
			for n := 0; n < 50; n += 1 {
				err := token.Replace([]token.Allocation{{Address: address, Amount: amount}})
				assert.Nil(t, err, "replace error")
			}
		}(uint64(i+1), address)
	}
	wg.Wait()

	all, err := token.NewSnapshot().All()
	assert.Nil(t, err, "all error")
	assert.Equal(t, 1, len(all), "stale balances after concurrent replace: %v", all)
}

func TestWatcher(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	fileName := filepath.Join(dir, "allocations.csv")
	err := ioutil.WriteFile(fileName, []byte(fixtures.Alice.String()+",5\n"), 0600)
	assert.Nil(t, err, "write error")

	n, err := token.LoadFile(fileName)
	assert.Nil(t, err, "load error")
	assert.Equal(t, 1, n, "wrong count")

	w, err := token.NewWatcher(fileName)
	if !assert.Nil(t, err, "watcher error") {
		return
	}
	p := background.Start(background.Processes{w}, nil)
	defer p.Stop()

	err = ioutil.WriteFile(fileName, []byte(fixtures.Alice.String()+",7\n"+fixtures.Bob.String()+",9\n"), 0600)
	assert.Nil(t, err, "rewrite error")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case n := <-w.Reloaded():
			if 2 != n {
				continue
			}
			amount, _ := token.NewSnapshot().BalanceOf(fixtures.Bob)
			assert.Equal(t, uint64(9), amount, "wrong reloaded balance")
			return
		case <-deadline:
			t.Fatal("file change not noticed")
		}
	}
}
