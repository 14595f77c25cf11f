// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claims

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/claimsd/account"
	"github.com/bitmark-inc/claimsd/messagebus"
	"github.com/bitmark-inc/logger"
)

// Notification - an observable record of one successful change
type Notification interface {
	Name() string
	fmt.Stringer
}

// IndexAssigned - an address received its index
type IndexAssigned struct {
	Address account.Address `json:"address"`
	Index   uint64          `json:"index,string"`
}

// Amended - the claim right of an address was redirected
//
// a zero AmendedTo removes the redirect
type Amended struct {
	Original  account.Address `json:"original"`
	AmendedTo account.Address `json:"amendedTo"`
}

// Vested - an initial vesting amount was set
type Vested struct {
	Address account.Address `json:"address"`
	Amount  uint64          `json:"amount,string"`
}

// VestingIncreased - a vesting amount was raised
type VestingIncreased struct {
	Address account.Address `json:"address"`
	Amount  uint64          `json:"amount,string"`
	Total   uint64          `json:"total,string"`
}

// Claimed - an address bound its allocation to a public key
type Claimed struct {
	Address account.Address `json:"address"`
	PubKey  account.PubKey  `json:"pubKey"`
	Index   uint64          `json:"index,string"`
}

// SaleInjected - sale credit was added to a public key
type SaleInjected struct {
	PubKey account.PubKey `json:"pubKey"`
	Amount uint64         `json:"amount,string"`
	Total  uint64         `json:"total,string"`
}

// Frozen - the setup delay threshold was moved out of reach
type Frozen struct {
	EndSetupDelay uint64 `json:"endSetupDelay,string"`
}

// Name - the message bus command
func (IndexAssigned) Name() string    { return "indexAssigned" }
func (Amended) Name() string          { return "amended" }
func (Vested) Name() string           { return "vested" }
func (VestingIncreased) Name() string { return "vestingIncreased" }
func (Claimed) Name() string          { return "claimed" }
func (SaleInjected) Name() string     { return "saleInjected" }
func (Frozen) Name() string           { return "frozen" }

func (n IndexAssigned) String() string {
	return fmt.Sprintf("%s index: %d", n.Address, n.Index)
}

func (n Amended) String() string {
	return fmt.Sprintf("%s amended to: %s", n.Original, n.AmendedTo)
}

func (n Vested) String() string {
	return fmt.Sprintf("%s vested: %d", n.Address, n.Amount)
}

func (n VestingIncreased) String() string {
	return fmt.Sprintf("%s vesting increased by: %d to: %d", n.Address, n.Amount, n.Total)
}

func (n Claimed) String() string {
	return fmt.Sprintf("%s claimed to: %s index: %d", n.Address, n.PubKey, n.Index)
}

func (n SaleInjected) String() string {
	return fmt.Sprintf("%s sale credit increased by: %d to: %d", n.PubKey, n.Amount, n.Total)
}

func (n Frozen) String() string {
	return fmt.Sprintf("end setup delay: %d", n.EndSetupDelay)
}

// post a committed notification on the message bus
func broadcast(n Notification) {
	data, err := json.Marshal(n)
	logger.PanicIfError("claims.broadcast", err)
	messagebus.Bus.Broadcast.Send(n.Name(), data)
}
