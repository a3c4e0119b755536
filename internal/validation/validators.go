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
	"regexp"
)

// booleanValidator turns a boolean assertion into a Validator.
type booleanValidator struct {
	isTrue bool
	err    error
}

var _ Validator = (*booleanValidator)(nil)

// NewBooleanValidator creates an instance of the validator.
// The given error is returned when the assertion does not hold.
func NewBooleanValidator(isTrue bool, err error) Validator {
	return &booleanValidator{
		isTrue: isTrue,
		err:    err,
	}
}

// Validate executes the validation
func (x *booleanValidator) Validate() error {
	if !x.isTrue {
		return x.err
	}
	return nil
}

// patternValidator is used to perform a validation
// provided a given pattern
type patternValidator struct {
	pattern    *regexp.Regexp
	expression string
	err        error
}

var _ Validator = (*patternValidator)(nil)

// NewPatternValidator creates an instance of the validator.
// The given pattern must be a valid regular expression.
func NewPatternValidator(pattern *regexp.Regexp, expression string, err error) Validator {
	return &patternValidator{
		pattern:    pattern,
		expression: expression,
		err:        err,
	}
}

// Validate executes the validation
func (x *patternValidator) Validate() error {
	if !x.pattern.MatchString(x.expression) {
		return x.err
	}
	return nil
}
