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

package schema

import (
	"fmt"
	"reflect"

	"github.com/DrewBurkhart/priact/actor"
)

// Message is one variant of a compiled message set: an operation tag plus the
// positional payload captured at construction time. Messages are immutable
// and carry the statically declared priority of their operation, so the
// mailbox can rank them without consulting the declaration again.
type Message struct {
	op   *operation
	args []reflect.Value
}

// enforce compilation error
var _ actor.Prioritized = (*Message)(nil)

// Operation returns the name of the operation this message invokes.
func (m *Message) Operation() string { return m.op.name }

// Priority returns the priority declared for the operation.
func (m *Message) Priority() actor.Priority { return m.op.priority }

// Suspending reports whether the handler behind this message may suspend.
func (m *Message) Suspending() bool { return m.op.takesContext }

// String renders the message as MessageSet.Operation for logs.
func (m *Message) String() string {
	return fmt.Sprintf("%s.%s", m.op.messageSet, m.op.name)
}
