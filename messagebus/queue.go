// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener buffer
const defaultQueueSize = 1000

// Message - a command with its encoded parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - delivers every message to all current listeners
type BroadcastQueue struct {
	sync.RWMutex
	listeners map[<-chan Message]chan Message
	dropped   uint64
}

// BusType - the queues available on the bus
type BusType struct {
	Broadcast *BroadcastQueue
}

// Bus - the process wide message bus
var Bus = BusType{
	Broadcast: newBroadcastQueue(),
}

func newBroadcastQueue() *BroadcastQueue {
	return &BroadcastQueue{
		listeners: make(map[<-chan Message]chan Message),
	}
}

// Send - queue a message for every listener
//
// never blocks: a listener whose buffer is full misses the message
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()
	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
			queue.dropped += 1
		}
	}
}

// Chan - register a new listener with the given buffer size
//
// a size below one selects the default
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 1 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners[c] = c
	queue.Unlock()
	return c
}

// Release - deregister a listener and close its channel
func (queue *BroadcastQueue) Release(listener <-chan Message) {
	queue.Lock()
	defer queue.Unlock()
	if c, ok := queue.listeners[listener]; ok {
		delete(queue.listeners, listener)
		close(c)
	}
}

// Dropped - count of deliveries skipped due to full listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.RLock()
	defer queue.RUnlock()
	return queue.dropped
}
