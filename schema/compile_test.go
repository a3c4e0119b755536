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
	"testing"

	"github.com/DrewBurkhart/priact/actor"
	gerrors "github.com/DrewBurkhart/priact/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_ValidDeclaration(t *testing.T) {
	compiled, err := Compile[Counter](counterDefinition())
	require.NoError(t, err)

	assert.Equal(t, "Counter", compiled.Name())
	assert.Equal(t, "CounterMsg", compiled.MessageSet())
	assert.Equal(t, []Operation{
		{Name: "Increment", Priority: actor.Low},
		{Name: "IncrementAck", Priority: actor.Low},
		{Name: "Add", Priority: actor.Medium},
		{Name: "GetValue", Priority: actor.High},
		{Name: "Reset", Priority: actor.Medium},
	}, compiled.Operations())
}

func TestCompile_InvalidNames(t *testing.T) {
	def := counterDefinition()
	def.Name = "counter"
	def.MessageSet = ""

	_, err := Compile[Counter](def)
	require.ErrorIs(t, err, gerrors.ErrInvalidDeclaration)
	require.ErrorIs(t, err, gerrors.ErrInvalidName)
}

func TestCompile_StateNotAStruct(t *testing.T) {
	def := Definition{Name: "Tally", MessageSet: "TallyMsg"}
	_, err := Compile[int](def)
	require.ErrorIs(t, err, gerrors.ErrInvalidDeclaration)
	require.ErrorIs(t, err, gerrors.ErrFieldMismatch)
}

func TestCompile_FieldMismatch(t *testing.T) {
	cases := map[string]Field{
		"missing field": {Name: "Total", Type: "int"},
		"wrong type":    {Name: "Count", Type: "string"},
	}
	for name, field := range cases {
		t.Run(name, func(t *testing.T) {
			def := counterDefinition()
			def.Fields = []Field{field}
			_, err := Compile[Counter](def)
			require.ErrorIs(t, err, gerrors.ErrInvalidDeclaration)
			require.ErrorIs(t, err, gerrors.ErrFieldMismatch)
		})
	}
}

func TestCompile_UnknownPriority(t *testing.T) {
	def := counterDefinition()
	def.Operations = []Operation{
		// Stop is reserved for the implicit terminal variant
		{Name: "Increment", Priority: actor.Stop},
	}
	_, err := Compile[Counter](def)
	require.ErrorIs(t, err, gerrors.ErrUnknownPriority)

	def.Operations = []Operation{
		{Name: "Increment", Priority: actor.Priority(9)},
	}
	_, err = Compile[Counter](def)
	require.ErrorIs(t, err, gerrors.ErrUnknownPriority)
}

func TestCompile_DuplicateOperation(t *testing.T) {
	def := counterDefinition()
	def.Operations = append(def.Operations, Operation{Name: "Increment", Priority: actor.High})
	_, err := Compile[Counter](def)
	require.ErrorIs(t, err, gerrors.ErrDuplicateOperation)
}

func TestCompile_MissingHandler(t *testing.T) {
	def := counterDefinition()
	def.Operations = []Operation{{Name: "Decrement", Priority: actor.Low}}
	_, err := Compile[Counter](def)
	require.ErrorIs(t, err, gerrors.ErrMissingHandler)
}

func TestCompile_ValueReceiverRejected(t *testing.T) {
	def := Definition{
		Name:       "ValueCounter",
		MessageSet: "ValueCounterMsg",
		Operations: []Operation{{Name: "Increment", Priority: actor.Low}},
	}
	_, err := Compile[ValueCounter](def)
	require.ErrorIs(t, err, gerrors.ErrInvalidHandlerSignature)
}

func TestCompile_InvalidSignatures(t *testing.T) {
	cases := map[string]string{
		"two results": "TwoResults",
		"variadic":    "Variadic",
	}
	for name, op := range cases {
		t.Run(name, func(t *testing.T) {
			def := counterDefinition()
			def.Operations = []Operation{{Name: op, Priority: actor.Low}}
			_, err := Compile[Counter](def)
			require.ErrorIs(t, err, gerrors.ErrInvalidHandlerSignature)
		})
	}
}

func TestCompile_AccumulatesViolations(t *testing.T) {
	def := counterDefinition()
	def.Name = "counter"
	def.Fields = []Field{{Name: "Total", Type: "int"}}
	def.Operations = append(def.Operations, Operation{Name: "Decrement", Priority: actor.Low})

	_, err := Compile[Counter](def)
	require.ErrorIs(t, err, gerrors.ErrInvalidDeclaration)
	require.ErrorIs(t, err, gerrors.ErrInvalidName)
	require.ErrorIs(t, err, gerrors.ErrFieldMismatch)
	require.ErrorIs(t, err, gerrors.ErrMissingHandler)
}

func TestMustCompile_PanicsOnViolation(t *testing.T) {
	def := counterDefinition()
	def.Name = "counter"
	assert.Panics(t, func() {
		MustCompile[Counter](def)
	})
	assert.NotPanics(t, func() {
		MustCompile[Counter](counterDefinition())
	})
}

func TestCompiled_MessageConstruction(t *testing.T) {
	compiled := MustCompile[Counter](counterDefinition())

	msg, err := compiled.Message("Add", 5)
	require.NoError(t, err)
	assert.Equal(t, "Add", msg.Operation())
	assert.Equal(t, actor.Medium, msg.Priority())
	assert.Equal(t, "CounterMsg.Add", msg.String())

	// zero-parameter operation, empty payload
	msg, err = compiled.Message("Increment")
	require.NoError(t, err)
	assert.Equal(t, actor.Low, msg.Priority())
	assert.False(t, msg.Suspending())

	// suspending handlers are marked
	msg, err = compiled.Message("Reset")
	require.NoError(t, err)
	assert.True(t, msg.Suspending())
}

func TestCompiled_MessageErrors(t *testing.T) {
	compiled := MustCompile[Counter](counterDefinition())

	_, err := compiled.Message("Decrement")
	require.ErrorIs(t, err, gerrors.ErrUnknownOperation)

	_, err = compiled.Message("Add")
	require.ErrorIs(t, err, gerrors.ErrInvalidMessage)

	_, err = compiled.Message("Add", 1, 2)
	require.ErrorIs(t, err, gerrors.ErrInvalidMessage)

	_, err = compiled.Message("Add", "five")
	require.ErrorIs(t, err, gerrors.ErrInvalidMessage)

	_, err = compiled.Message("Add", nil)
	require.ErrorIs(t, err, gerrors.ErrInvalidMessage)
}

func TestCompiled_PriorityLookupIsTotal(t *testing.T) {
	compiled := MustCompile[Counter](counterDefinition())

	msg, err := compiled.Message("GetValue", make(chan<- int))
	require.NoError(t, err)
	assert.Equal(t, actor.High, compiled.PriorityOf(msg))

	// the implicit terminal variant maps to the maximal priority
	assert.Equal(t, actor.Stop, compiled.PriorityOf(compiled.Stop()))

	// anything else falls back to the default rank
	assert.Equal(t, actor.Medium, compiled.PriorityOf("foreign"))
}
