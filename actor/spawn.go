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
	"fmt"
	"reflect"
	"strings"

	gerrors "github.com/DrewBurkhart/priact/errors"
	"github.com/DrewBurkhart/priact/log"
	"github.com/google/uuid"
)

// Spawn starts an actor around the given behavior and returns its producer
// handle. Spawning never blocks: the bounded ingestion endpoint, the shared
// priority queue and both mailbox loops are wired before Spawn returns, and
// messages may be submitted immediately.
//
// The behavior (and the state it closes over) is owned by the processing loop
// from this point on and must not be touched by any other goroutine until the
// handle's Done channel is closed.
//
// The context is handed to every handler invocation and to the PostStop hook.
// Cancelling it does not by itself stop the actor: lifetime ends either with
// a PoisonPill (fast path, discards the backlog) or by closing every handle
// and letting the backlog drain (graceful path).
func Spawn(ctx context.Context, behavior Behavior, opts ...SpawnOption) *PID {
	if behavior == nil {
		panic("actor: Spawn requires a non-nil behavior")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	config := newSpawnConfig(opts...)
	name := config.name
	if name == "" {
		name = behaviorName(behavior)
	}

	pid := &PID{
		id:   uuid.NewString(),
		name: name,
		mb:   newMailbox(config.mailboxSize),
	}

	runner := &runner{
		id:       pid.id,
		name:     name,
		behavior: behavior,
		mb:       pid.mb,
		logger:   config.logger,
		observer: config.observer,
	}

	runner.observer.OnStart(pid.id, name)
	go runner.ingest()
	go runner.process(ctx)
	return pid
}

// runner drives the two mailbox loops of one actor. The behavior and the
// state behind it are owned by the processing loop for the actor's entire
// lifetime.
type runner struct {
	id       string
	name     string
	behavior Behavior
	mb       *mailbox
	logger   log.Logger
	observer Observer
}

// ingest drains the bounded endpoint into the shared priority queue and
// signals availability to the processing loop.
//
// The loop terminates in one of two ways, both normal:
//   - the drain sentinel arrives, meaning every producer handle was closed;
//     everything submitted before that point is already in the queue, so
//     ingestDone is closed to let the processing loop finish the backlog;
//   - Get fails because the endpoint was disposed, meaning the processing
//     loop already terminated the actor.
func (r *runner) ingest() {
	for {
		item, err := r.mb.endpoint.Get()
		if err != nil {
			return
		}
		if _, ok := item.(drainSignal); ok {
			close(r.mb.ingestDone)
			return
		}
		r.mb.queue.push(item)
		select {
		case r.mb.notify <- struct{}{}:
		default:
		}
	}
}

// process repeatedly takes the highest-priority pending message and
// dispatches it against the behavior. It starts RUNNING and makes a single,
// one-shot transition to TERMINATED on the first terminal condition:
// a dispatched PoisonPill or false continue signal (backlog discarded),
// a handler fault, or an empty queue with no producer left.
func (r *runner) process(ctx context.Context) {
	for {
		msg, ok := r.mb.queue.pop()
		if !ok {
			select {
			case <-r.mb.notify:
				// a message was queued while we were checking; retry
				continue
			case <-r.mb.ingestDone:
				// No producer remains. The ingestion loop no longer pushes,
				// but a message may have landed together with a stale
				// availability token, so re-check before exiting.
				msg, ok = r.mb.queue.pop()
				if !ok {
					r.terminate(ctx, StopReasonDrained, nil)
					return
				}
			}
		}

		cont, err := r.dispatch(ctx, msg)
		switch {
		case err != nil:
			r.terminate(ctx, StopReasonFaulted, err)
			return
		case !cont:
			r.terminate(ctx, StopReasonStopped, nil)
			return
		}
	}
}

// dispatch invokes the behavior for one message, converting a panic into a
// handler fault. PoisonPill short-circuits: it yields a false continue signal
// without reaching the behavior.
func (r *runner) dispatch(ctx context.Context, msg any) (cont bool, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			cont = false
			err = gerrors.NewPanicError(fmt.Errorf("%v", recovered))
		}
	}()

	r.observer.OnDispatch(r.id, r.name, msg, PriorityOf(msg))
	if isPoisonPill(msg) {
		return false, nil
	}
	return r.behavior.Handle(ctx, msg)
}

// terminate performs the one-shot RUNNING -> TERMINATED transition.
// Disposing the endpoint first releases any producer suspended on a full
// mailbox (their Tell fails with ErrClosedMailbox) and stops the ingestion
// loop. The PostStop hook runs exactly once, before the Done channel closes.
func (r *runner) terminate(ctx context.Context, reason StopReason, err error) {
	r.mb.endpoint.Dispose()

	if hook, ok := r.behavior.(PostStopper); ok {
		if hookErr := hook.PostStop(ctx); hookErr != nil {
			r.logger.Warnf("actor=(%s) post-stop hook failed: %v", r.name, hookErr)
		}
	}

	r.observer.OnStop(r.id, r.name, reason, err)
	close(r.mb.done)
}

// behaviorName derives a readable default actor name from the behavior type.
func behaviorName(behavior Behavior) string {
	rtype := reflect.TypeOf(behavior)
	for rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}
	name := rtype.String()
	if index := strings.LastIndex(name, "."); index >= 0 {
		name = name[index+1:]
	}
	return name
}
