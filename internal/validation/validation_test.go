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

package validation

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var (
	errFirst  = errors.New("first violation")
	errSecond = errors.New("second violation")
)

func TestChain_Accumulates(t *testing.T) {
	err := New().
		AddAssertion(false, errFirst).
		AddAssertion(true, errors.New("never reported")).
		AddAssertion(false, errSecond).
		Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestChain_FailFast(t *testing.T) {
	err := New(FailFast()).
		AddAssertion(false, errFirst).
		AddAssertion(false, errSecond).
		Validate()

	require.ErrorIs(t, err, errFirst)
	assert.NotErrorIs(t, err, errSecond)
}

func TestChain_NoViolations(t *testing.T) {
	err := New().
		AddAssertion(true, errFirst).
		AddValidator(NewBooleanValidator(true, errSecond)).
		Validate()
	assert.NoError(t, err)
}

func TestBooleanValidator(t *testing.T) {
	assert.NoError(t, NewBooleanValidator(true, errFirst).Validate())
	assert.ErrorIs(t, NewBooleanValidator(false, errFirst).Validate(), errFirst)
}

func TestPatternValidator(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

	assert.NoError(t, NewPatternValidator(pattern, "Counter", errFirst).Validate())
	assert.ErrorIs(t, NewPatternValidator(pattern, "counter", errFirst).Validate(), errFirst)
	assert.ErrorIs(t, NewPatternValidator(pattern, "", errFirst).Validate(), errFirst)
}
