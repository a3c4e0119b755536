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

	gerrors "github.com/DrewBurkhart/priact/errors"
	"go.uber.org/atomic"
)

// PID is the producer-side handle of a spawned actor.
//
// A PID is a reference-counted submission capability, not the actor itself.
// Hand a Clone to every goroutine that needs to submit, and Close each clone
// when that producer is done. Once the last clone is closed the mailbox drains
// naturally: the remaining backlog is processed and the actor terminates. For
// the fast path, Stop submits a PoisonPill that overtakes the backlog and
// discards it.
//
// A PID must not be shared between goroutines; a Clone is cheap and safe to
// create at any time before Close.
type PID struct {
	id   string
	name string
	mb   *mailbox

	// closed guards this clone only; the shared producer count lives on the
	// mailbox.
	closed atomic.Bool
}

// ID returns the unique identifier assigned to the actor at spawn time.
func (pid *PID) ID() string { return pid.id }

// Name returns the actor name.
func (pid *PID) Name() string { return pid.name }

// Tell submits a message to the actor's mailbox.
//
// Tell suspends while the bounded ingestion endpoint is full: that is the
// system's backpressure. A suspended Tell is released with ErrClosedMailbox
// when the actor terminates in the meantime. No timeout is built in; callers
// needing one should impose it on their own side before calling.
//
// Tell returns ErrClosedMailbox when the handle has been closed or no
// processing side remains reachable, and ErrInvalidMessage for a nil message.
// The message is not delivered in either case.
func (pid *PID) Tell(ctx context.Context, msg any) error {
	if msg == nil {
		return gerrors.ErrInvalidMessage
	}
	if pid.closed.Load() {
		return gerrors.ErrClosedMailbox
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-pid.mb.done:
		return gerrors.ErrClosedMailbox
	default:
	}
	if err := pid.mb.endpoint.Put(msg); err != nil {
		return gerrors.ErrClosedMailbox
	}
	return nil
}

// Stop submits the terminal PoisonPill. Being ranked Stop it overtakes every
// operational message already queued; once dispatched, the actor terminates
// and the backlog is discarded. Stop does not wait for termination: use Done
// for that.
func (pid *PID) Stop(ctx context.Context) error {
	return pid.Tell(ctx, PoisonPill{})
}

// Clone returns a new submission handle for the same actor, incrementing the
// live-producer count. Cloning an already closed handle returns another
// closed handle.
func (pid *PID) Clone() *PID {
	clone := &PID{
		id:   pid.id,
		name: pid.name,
		mb:   pid.mb,
	}
	if pid.closed.Load() {
		clone.closed.Store(true)
		return clone
	}
	pid.mb.producers.Inc()
	return clone
}

// Close discards this handle. It is idempotent per clone. When the last live
// clone is closed, the ingestion endpoint is marked closed: the actor
// processes whatever was already submitted and then terminates gracefully.
func (pid *PID) Close() {
	if !pid.closed.CompareAndSwap(false, true) {
		return
	}
	if pid.mb.producers.Dec() == 0 {
		// The sentinel rides the same FIFO endpoint as regular messages, so
		// it reaches the ingestion loop strictly after everything submitted
		// before this Close. The Put error is ignored: a disposed endpoint
		// means the actor already terminated.
		_ = pid.mb.endpoint.Put(drainSignal{})
	}
}

// Done returns a channel closed when the actor's processing loop has exited.
// After Done is closed no message is accepted or processed.
func (pid *PID) Done() <-chan struct{} {
	return pid.mb.done
}

// IsRunning reports whether the actor is still processing messages.
func (pid *PID) IsRunning() bool {
	select {
	case <-pid.mb.done:
		return false
	default:
		return true
	}
}
