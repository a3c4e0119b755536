// MIT License
//
// Copyright (c) 2025-2026 Priact Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	gods "github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"
)

// mailbox wires together the two stages feeding one actor:
//
//	producers -> bounded endpoint -> ingestion loop -> priority queue -> processing loop
//
// The endpoint is a bounded, blocking ring buffer and is the system's point of
// producer backpressure: a Put on a full endpoint suspends the producer until
// the ingestion loop frees a slot, or fails once the endpoint is disposed.
// The priority queue is unbounded and shared by the two loops under a single
// mutex. The notify channel holds at most one availability token, waking at
// most one waiter; since the processing loop is the only consumer, a token can
// never be lost between its empty check and its wait.
type mailbox struct {
	endpoint *gods.RingBuffer
	queue    *priorityQueue

	// notify carries the availability signal from ingestion to processing.
	notify chan struct{}
	// ingestDone is closed by the ingestion loop once every producer handle
	// has been closed and all previously submitted messages have been moved
	// into the priority queue.
	ingestDone chan struct{}
	// done is closed by the processing loop on exit, whatever the reason.
	done chan struct{}

	// producers counts the live PID clones.
	producers atomic.Int64
}

// minMailboxSize is the smallest endpoint capacity the runtime accepts. At
// capacity one the ring buffer admits a second Put without suspending the
// producer, which would silently void the backpressure bound.
const minMailboxSize = 2

func newMailbox(capacity int) *mailbox {
	if capacity < minMailboxSize {
		capacity = minMailboxSize
	}
	mb := &mailbox{
		endpoint:   gods.NewRingBuffer(uint64(capacity)),
		queue:      newPriorityQueue(),
		notify:     make(chan struct{}, 1),
		ingestDone: make(chan struct{}),
		done:       make(chan struct{}),
	}
	mb.producers.Store(1)
	return mb
}
