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
	"context"
	"fmt"
	"reflect"
	"regexp"

	"github.com/DrewBurkhart/priact/actor"
	gerrors "github.com/DrewBurkhart/priact/errors"
	"github.com/DrewBurkhart/priact/internal/validation"
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/multierr"
)

// identifierPattern matches exported Go identifiers. Generated names must be
// exported so every part of the contract stays publicly reachable.
var identifierPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// operation is the compiled form of one declared operation.
type operation struct {
	name       string
	messageSet string
	priority   actor.Priority
	// method is the handler on *S; Func includes the receiver.
	method reflect.Method
	// params are the declared payload parameter types, excluding the receiver
	// and the optional leading context.
	params []reflect.Type
	// takesContext marks a suspending handler.
	takesContext bool
	// returnsError is set when the handler declares an error result.
	returnsError bool
}

// Compiled is the executable translation of a Definition for the state
// container type S. It carries the closed message-variant set (one variant per
// operation plus the implicit terminal variant), the total priority lookup,
// and the total dispatch function. A Compiled is immutable and safe for
// concurrent use; build it once at load time and share it.
type Compiled[S any] struct {
	def   Definition
	state reflect.Type
	ops   map[string]*operation
	order []*operation
}

// Compile validates the given declaration against the state container type S
// and translates it into its executable form.
//
// Compile fails, before any actor instance exists, when:
//   - a declared name is not an exported identifier, or S is not a struct;
//   - a declared field is missing on S, unexported, or of a different type;
//   - two operations share a name;
//   - an operation declares a priority outside the operational levels
//     (Stop is reserved for the implicit terminal variant);
//   - an operation has no handler method on *S, the handler uses a value
//     receiver (it could not mutate the state container), or its signature is
//     otherwise invalid: the allowed shape is a pointer receiver, an optional
//     leading context.Context (marking a suspending handler), any number of
//     non-variadic payload parameters, and either no result or a single error.
//
// Every violation is reported; the returned error wraps ErrInvalidDeclaration
// together with one specific sentinel per violation.
func Compile[S any](def Definition) (*Compiled[S], error) {
	ptrType := reflect.TypeOf((*S)(nil))
	stateType := ptrType.Elem()

	var violations error
	appendViolation := func(err error) {
		violations = multierr.Append(violations, err)
	}

	if err := validation.New().
		AddValidator(identifierValidator("actor name", def.Name)).
		AddValidator(identifierValidator("message set name", def.MessageSet)).
		AddAssertion(stateType.Kind() == reflect.Struct,
			fmt.Errorf("%w: state container %s is not a struct", gerrors.ErrFieldMismatch, stateType)).
		Validate(); err != nil {
		appendViolation(err)
	}

	if stateType.Kind() == reflect.Struct {
		for _, field := range def.Fields {
			if err := checkField(stateType, field); err != nil {
				appendViolation(err)
			}
		}
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	ops := make(map[string]*operation, len(def.Operations)+1)
	order := make([]*operation, 0, len(def.Operations))
	for _, decl := range def.Operations {
		if err := identifierValidator("operation name", decl.Name).Validate(); err != nil {
			appendViolation(err)
			continue
		}
		if !seen.Add(decl.Name) {
			appendViolation(fmt.Errorf("%w: %s", gerrors.ErrDuplicateOperation, decl.Name))
			continue
		}
		if !decl.Priority.Operational() {
			appendViolation(fmt.Errorf("%w: operation %s declares %v", gerrors.ErrUnknownPriority, decl.Name, decl.Priority))
			continue
		}

		compiled, err := compileOperation(stateType, ptrType, def.MessageSet, decl)
		if err != nil {
			appendViolation(err)
			continue
		}
		ops[decl.Name] = compiled
		order = append(order, compiled)
	}

	if violations != nil {
		return nil, gerrors.NewDeclarationError(violations)
	}

	return &Compiled[S]{
		def:   def,
		state: stateType,
		ops:   ops,
		order: order,
	}, nil
}

// MustCompile is like Compile but panics on a declaration error. It is meant
// for package-level declarations known valid at build time.
func MustCompile[S any](def Definition) *Compiled[S] {
	compiled, err := Compile[S](def)
	if err != nil {
		panic(err)
	}
	return compiled
}

// Name returns the declared actor name.
func (c *Compiled[S]) Name() string { return c.def.Name }

// MessageSet returns the declared message-set name.
func (c *Compiled[S]) MessageSet() string { return c.def.MessageSet }

// Operations returns the declared operations in declaration order.
func (c *Compiled[S]) Operations() []Operation {
	out := make([]Operation, len(c.order))
	for i, op := range c.order {
		out[i] = Operation{Name: op.name, Priority: op.priority}
	}
	return out
}

// Message constructs the message variant for the named operation with the
// given positional payload. The payload is checked against the declared
// parameter list: wrong arity or a non-assignable argument yields
// ErrInvalidMessage, an undeclared operation yields ErrUnknownOperation.
// The returned message is immutable.
func (c *Compiled[S]) Message(name string, args ...any) (*Message, error) {
	op, ok := c.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no operation %s", gerrors.ErrUnknownOperation, c.def.Name, name)
	}
	if len(args) != len(op.params) {
		return nil, fmt.Errorf("%w: %s.%s takes %d argument(s), got %d",
			gerrors.ErrInvalidMessage, c.def.MessageSet, name, len(op.params), len(args))
	}

	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			if !nilable(op.params[i].Kind()) {
				return nil, fmt.Errorf("%w: %s.%s argument %d is nil, want %s",
					gerrors.ErrInvalidMessage, c.def.MessageSet, name, i, op.params[i])
			}
			values[i] = reflect.Zero(op.params[i])
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(op.params[i]) {
			return nil, fmt.Errorf("%w: %s.%s argument %d is %s, want %s",
				gerrors.ErrInvalidMessage, c.def.MessageSet, name, i, value.Type(), op.params[i])
		}
		values[i] = value
	}
	return &Message{op: op, args: values}, nil
}

// Stop returns the implicit terminal variant. It is appended last to every
// message set, carries no payload, and maps to the maximal priority.
func (c *Compiled[S]) Stop() actor.PoisonPill {
	return actor.PoisonPill{}
}

// PriorityOf is the total priority lookup over the variant set: each declared
// variant maps to its declared priority and the terminal variant maps to the
// maximal priority. Foreign messages fall back to the runtime default rank.
func (c *Compiled[S]) PriorityOf(msg any) actor.Priority {
	if message, ok := msg.(*Message); ok && c.owns(message) {
		return message.Priority()
	}
	return actor.PriorityOf(msg)
}

// Dispatch routes one message against the state container and returns the
// continue signal. For a declared variant it invokes the correspondingly
// named handler with the payload values as arguments, awaiting suspending
// handlers, and yields true; a handler error is returned as a fault. For the
// terminal variant it yields false without invoking anything. Any other
// message is a fault wrapping ErrUnhandled.
func (c *Compiled[S]) Dispatch(ctx context.Context, state *S, msg any) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch message := msg.(type) {
	case actor.PoisonPill, *actor.PoisonPill:
		return false, nil
	case *Message:
		if !c.owns(message) {
			return false, fmt.Errorf("%w: message %s does not belong to %s",
				gerrors.ErrInvalidMessage, message, c.def.Name)
		}
		return c.invoke(ctx, state, message)
	default:
		return false, fmt.Errorf("%w: %T", gerrors.ErrUnhandled, msg)
	}
}

// Bind adapts the compiled dispatch to a runtime behavior around the given
// state container instance. The instance must not be touched elsewhere until
// the actor terminates.
func (c *Compiled[S]) Bind(state *S) actor.Behavior {
	return &bound[S]{compiled: c, state: state}
}

// Spawn starts an actor around the given state container instance and returns
// its producer handle. The actor is named after the declaration unless a
// WithName option overrides it.
func (c *Compiled[S]) Spawn(ctx context.Context, state *S, opts ...actor.SpawnOption) *actor.PID {
	opts = append([]actor.SpawnOption{actor.WithName(c.def.Name)}, opts...)
	return actor.Spawn(ctx, c.Bind(state), opts...)
}

func (c *Compiled[S]) owns(message *Message) bool {
	op, ok := c.ops[message.op.name]
	return ok && op == message.op
}

func (c *Compiled[S]) invoke(ctx context.Context, state *S, message *Message) (bool, error) {
	op := message.op
	in := make([]reflect.Value, 0, 2+len(message.args))
	in = append(in, reflect.ValueOf(state))
	if op.takesContext {
		in = append(in, reflect.ValueOf(ctx))
	}
	in = append(in, message.args...)

	out := op.method.Func.Call(in)
	if op.returnsError && !out[0].IsNil() {
		return false, out[0].Interface().(error)
	}
	return true, nil
}

// bound pairs a compiled dispatch with one state container instance.
type bound[S any] struct {
	compiled *Compiled[S]
	state    *S
}

// enforce compilation error
var _ actor.Behavior = (*bound[struct{}])(nil)

func (b *bound[S]) Handle(ctx context.Context, msg any) (bool, error) {
	return b.compiled.Dispatch(ctx, b.state, msg)
}

// PostStop forwards the teardown hook when the state container declares one.
func (b *bound[S]) PostStop(ctx context.Context) error {
	if hook, ok := any(b.state).(actor.PostStopper); ok {
		return hook.PostStop(ctx)
	}
	return nil
}

func identifierValidator(what, name string) validation.Validator {
	return validation.NewPatternValidator(identifierPattern, name,
		fmt.Errorf("%w: %s %q", gerrors.ErrInvalidName, what, name))
}

func checkField(stateType reflect.Type, field Field) error {
	if err := identifierValidator("field name", field.Name).Validate(); err != nil {
		return err
	}
	structField, ok := stateType.FieldByName(field.Name)
	if !ok {
		return fmt.Errorf("%w: %s has no field %s", gerrors.ErrFieldMismatch, stateType, field.Name)
	}
	if !structField.IsExported() {
		return fmt.Errorf("%w: field %s.%s is not exported", gerrors.ErrFieldMismatch, stateType, field.Name)
	}
	if structField.Type.String() != field.Type {
		return fmt.Errorf("%w: field %s.%s is %s, declared %s",
			gerrors.ErrFieldMismatch, stateType, field.Name, structField.Type, field.Type)
	}
	return nil
}

func compileOperation(stateType, ptrType reflect.Type, messageSet string, decl Operation) (*operation, error) {
	method, ok := ptrType.MethodByName(decl.Name)
	if !ok {
		return nil, fmt.Errorf("%w: no method %s on %s", gerrors.ErrMissingHandler, decl.Name, ptrType)
	}
	// A method in the value type's method set uses a value receiver and would
	// mutate a copy of the state container, never the container itself.
	if _, onValue := stateType.MethodByName(decl.Name); onValue {
		return nil, fmt.Errorf("%w: handler %s.%s must use a pointer receiver",
			gerrors.ErrInvalidHandlerSignature, stateType, decl.Name)
	}

	mtype := method.Func.Type()
	if mtype.IsVariadic() {
		return nil, fmt.Errorf("%w: handler %s.%s is variadic",
			gerrors.ErrInvalidHandlerSignature, stateType, decl.Name)
	}

	start := 1 // skip the receiver
	takesContext := false
	if mtype.NumIn() > start && mtype.In(start) == contextType {
		takesContext = true
		start++
	}
	params := make([]reflect.Type, 0, mtype.NumIn()-start)
	for i := start; i < mtype.NumIn(); i++ {
		params = append(params, mtype.In(i))
	}

	returnsError := false
	switch mtype.NumOut() {
	case 0:
	case 1:
		if mtype.Out(0) != errorType {
			return nil, fmt.Errorf("%w: handler %s.%s returns %s, only error is allowed",
				gerrors.ErrInvalidHandlerSignature, stateType, decl.Name, mtype.Out(0))
		}
		returnsError = true
	default:
		return nil, fmt.Errorf("%w: handler %s.%s has %d results, at most one error is allowed",
			gerrors.ErrInvalidHandlerSignature, stateType, decl.Name, mtype.NumOut())
	}

	return &operation{
		name:         decl.Name,
		messageSet:   messageSet,
		priority:     decl.Priority,
		method:       method,
		params:       params,
		takesContext: takesContext,
		returnsError: returnsError,
	}, nil
}

func nilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}
