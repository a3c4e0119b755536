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
	"github.com/DrewBurkhart/priact/log"
)

// StopReason tells why an actor's processing loop terminated.
type StopReason int

const (
	// StopReasonStopped indicates an explicit stop: a PoisonPill was
	// dispatched, or a handler returned a false continue signal.
	StopReasonStopped StopReason = iota
	// StopReasonDrained indicates a graceful exit: every producer handle was
	// closed and the remaining backlog was fully processed.
	StopReasonDrained
	// StopReasonFaulted indicates a handler fault: a handler returned an
	// error or panicked.
	StopReasonFaulted
)

// String returns the text representation of the stop reason
func (r StopReason) String() string {
	switch r {
	case StopReasonStopped:
		return "stopped"
	case StopReasonDrained:
		return "drained"
	case StopReasonFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Observer receives the lifecycle events of an actor. It is purely
// observational: the runtime's correctness does not depend on it, and its
// callbacks run on the actor's own goroutines, so they should return quickly.
type Observer interface {
	// OnStart is called once at spawn time, before any dispatch.
	OnStart(id, name string)
	// OnDispatch is called immediately before each message is dispatched,
	// including the terminal PoisonPill.
	OnDispatch(id, name string, msg any, priority Priority)
	// OnStop is called exactly once when the processing loop exits. The error
	// is non-nil only for StopReasonFaulted.
	OnStop(id, name string, reason StopReason, err error)
}

// logObserver reports lifecycle events through a Logger. Spawn and stop are
// logged at info level, per-message dispatch at debug level.
type logObserver struct {
	logger log.Logger
}

// enforce compilation error
var _ Observer = (*logObserver)(nil)

// NewLogObserver creates an Observer backed by the given logger.
func NewLogObserver(logger log.Logger) Observer {
	return &logObserver{logger: logger}
}

func (o *logObserver) OnStart(id, name string) {
	o.logger.Infof("actor=(%s) id=(%s) started", name, id)
}

func (o *logObserver) OnDispatch(id, name string, msg any, priority Priority) {
	o.logger.Debugf("actor=(%s) id=(%s) dispatching %T priority=(%s)", name, id, msg, priority)
}

func (o *logObserver) OnStop(id, name string, reason StopReason, err error) {
	if err != nil {
		o.logger.Errorf("actor=(%s) id=(%s) terminated reason=(%s): %v", name, id, reason, err)
		return
	}
	o.logger.Infof("actor=(%s) id=(%s) terminated reason=(%s)", name, id, reason)
}
