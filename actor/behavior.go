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
)

// Behavior dispatches one mailbox message against the actor's private state.
//
// The processing loop owns the state for the actor's entire lifetime and
// invokes Handle strictly sequentially: two invocations for the same actor
// never overlap, even when a handler blocks on the given context. A handler
// may therefore mutate state without any synchronization.
//
// Handle returns a continue signal and an error:
//   - (true, nil) keeps the actor running;
//   - (false, nil) terminates the actor, discarding any queued backlog;
//   - a non-nil error is a handler fault: the actor terminates without
//     further dispatch and the error is reported to the observer.
//
// A panic inside Handle is recovered by the runtime, wrapped as
// *errors.PanicError and treated as a handler fault confined to this actor:
// the process and every other actor keep running.
//
// PoisonPill never reaches Handle: the runtime intercepts it and terminates
// the actor directly.
type Behavior interface {
	Handle(ctx context.Context, msg any) (bool, error)
}

// BehaviorFunc is an adapter to allow the use of ordinary functions as
// behaviors.
type BehaviorFunc func(ctx context.Context, msg any) (bool, error)

// enforce compilation error
var _ Behavior = (BehaviorFunc)(nil)

// Handle invokes the function.
func (f BehaviorFunc) Handle(ctx context.Context, msg any) (bool, error) {
	return f(ctx, msg)
}

// PostStopper is implemented by behaviors that need teardown when the actor
// terminates. PostStop is invoked exactly once by the processing loop on exit,
// whatever the termination reason, after the last dispatch and before the
// actor is marked stopped. A returned error is logged, not propagated.
type PostStopper interface {
	PostStop(ctx context.Context) error
}
