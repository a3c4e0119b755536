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

// Package schema turns a declarative actor specification into a closed,
// executable message-dispatch structure.
//
// The caller provides two things: a plain Go struct whose exported fields are
// the actor's state, with one exported pointer-receiver method per operation,
// and a Definition naming those operations and tagging each with a priority.
// Compile checks the two against each other and produces a Compiled value:
// a message constructor for every declared operation (plus the implicit
// terminal variant), a total priority lookup, and a total dispatch function
// that routes each message to its handler. Compilation fails before any actor
// instance exists, so a malformed declaration can never reach the runtime.
//
// The handler methods stay ordinary methods: callers holding the state value
// directly may invoke them without going through a mailbox.
package schema

import (
	"github.com/DrewBurkhart/priact/actor"
)

// Field declares one state container field by name and Go type.
// The type is spelled the way the reflect package renders it,
// e.g. "int", "[]string", "chan<- int", "map[string]float64".
type Field struct {
	Name string
	Type string
}

// Operation declares one actor operation: the name of the handler method on
// the state container and the fixed priority of the corresponding message
// variant. The priority must be one of the operational levels; Stop is
// reserved for the implicit terminal variant.
type Operation struct {
	Name     string
	Priority actor.Priority
}

// Definition is the declarative specification of an actor: the state
// container shape and the named message set with one entry per operation.
// It is the sole configuration surface of the translator.
type Definition struct {
	// Name is the actor name; it must be an exported identifier.
	Name string
	// MessageSet names the generated message-variant set.
	MessageSet string
	// Fields lists the state container's exported fields.
	Fields []Field
	// Operations lists the declared operations in order.
	Operations []Operation
}
