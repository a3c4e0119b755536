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

// Package errors defines the error taxonomy shared by the actor runtime and the
// schema translator. Declaration errors are always joined with
// ErrInvalidDeclaration so callers can match the whole family with a single
// errors.Is check while still being able to match the specific violation.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrClosedMailbox is returned when a message is submitted to a mailbox
	// whose processing side has terminated, or through a handle that has
	// already been closed. The message is not delivered.
	ErrClosedMailbox = errors.New("mailbox is closed")

	// ErrInvalidMessage indicates that a message is structurally invalid:
	// a nil message, a payload whose arity or types do not match the declared
	// parameter list, or a message built from a different actor definition.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrUnhandled is returned when an actor receives a message it cannot handle.
	ErrUnhandled = errors.New("unhandled message")

	// ErrInvalidDeclaration is the umbrella error for a malformed or
	// inconsistent actor declaration. Every declaration error wraps it.
	ErrInvalidDeclaration = errors.New("invalid actor declaration")

	// ErrInvalidName is returned when the declared actor, message-set, field or
	// operation name is not a valid exported Go identifier.
	ErrInvalidName = errors.New("invalid name, must be an exported identifier (i.e. [A-Z][a-zA-Z0-9_]*)")

	// ErrUnknownPriority is returned when an operation declares a priority tag
	// that is not one of the operational levels (Low, Medium, High). The Stop
	// level is reserved for the terminal control message.
	ErrUnknownPriority = errors.New("unknown priority level")

	// ErrDuplicateOperation is returned when two operations share a name.
	ErrDuplicateOperation = errors.New("duplicate operation")

	// ErrFieldMismatch is returned when a declared state field does not exist
	// on the state container type, is unexported, or has a different type.
	ErrFieldMismatch = errors.New("state field mismatch")

	// ErrMissingHandler is returned when no handler method backs a declared operation.
	ErrMissingHandler = errors.New("missing handler method")

	// ErrInvalidHandlerSignature is returned when a handler method exists but
	// does not have the required shape: a pointer receiver on the state
	// container, an optional leading context.Context, and no result or a
	// single error result.
	ErrInvalidHandlerSignature = errors.New("invalid handler signature")

	// ErrUnknownOperation is returned when a message is requested for an
	// operation that the declaration does not define.
	ErrUnknownOperation = errors.New("unknown operation")
)

// NewDeclarationError joins the given violation(s) with ErrInvalidDeclaration.
func NewDeclarationError(err error) error {
	return errors.Join(ErrInvalidDeclaration, err)
}

// PanicError wraps a panic recovered from a handler invocation.
// A handler fault is never retried: it terminates the owning actor.
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
