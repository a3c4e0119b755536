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
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/atomic"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// test messages

type increment struct{}

func (increment) Priority() Priority { return Low }

type incrementAck struct{ ack chan struct{} }

func (incrementAck) Priority() Priority { return Low }

type getValue struct{ reply chan int }

func (getValue) Priority() Priority { return High }

// gate holds the processing loop inside a handler so that messages submitted
// in the meantime pile up in the priority queue.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func (gate) Priority() Priority { return High }

func newGate() gate {
	return gate{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

// halt holds the processing loop inside a handler and, once released, yields
// a false continue signal so the actor terminates without popping again.
type halt struct {
	entered chan struct{}
	release chan struct{}
}

func (halt) Priority() Priority { return High }

func newHalt() halt {
	return halt{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

type boom struct{}

type failing struct{}

var errDeliberate = errors.New("deliberate handler failure")

// counter is the state container used across the runtime tests.
type counter struct {
	count     int
	postStops atomic.Int64
}

func (c *counter) Handle(_ context.Context, msg any) (bool, error) {
	switch received := msg.(type) {
	case increment:
		c.count++
	case incrementAck:
		c.count++
		received.ack <- struct{}{}
	case getValue:
		received.reply <- c.count
	case gate:
		received.entered <- struct{}{}
		<-received.release
	case halt:
		received.entered <- struct{}{}
		<-received.release
		return false, nil
	case boom:
		panic("boom")
	case failing:
		return true, errDeliberate
	}
	return true, nil
}

func (c *counter) PostStop(context.Context) error {
	c.postStops.Inc()
	return nil
}

// recordingObserver captures lifecycle events for assertions.
type recordingObserver struct {
	mu         sync.Mutex
	starts     int
	dispatched []Priority
	reasons    []StopReason
	stopErr    error
}

func (o *recordingObserver) OnStart(string, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.starts++
}

func (o *recordingObserver) OnDispatch(_, _ string, _ any, priority Priority) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dispatched = append(o.dispatched, priority)
}

func (o *recordingObserver) OnStop(_, _ string, reason StopReason, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reasons = append(o.reasons, reason)
	o.stopErr = err
}

func (o *recordingObserver) snapshot() (int, []Priority, []StopReason, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.starts, append([]Priority(nil), o.dispatched...), append([]StopReason(nil), o.reasons...), o.stopErr
}
