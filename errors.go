// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"errors"
	"fmt"

	"github.com/slukits/unity/pkg/assert"
)

var (
	// ErrUnsupportedSuiteForm is returned by Normalize for values which
	// are neither invocable, an ordered sequence of names, a keyed
	// structure nor source text.
	ErrUnsupportedSuiteForm = errors.New(
		"must be a function, array, object or string")

	// ErrEnvironmentUnsupported is returned by Normalize for text based
	// suites if the configured scanner isn't comment aware while the
	// host's function reflection preserves comments.
	ErrEnvironmentUnsupported = errors.New(
		"this test suite type is not supported in this environment")

	// ErrMalformedSuite is returned by Normalize for suite text which
	// can't be parsed.
	ErrMalformedSuite = errors.New("malformed suite")
)

// notAFunction completes the payload of an invocation of a member which
// is missing or not callable.
const notAFunction = " is not a function"

// Error is the failure of a suite member's invocation.  Payload is the
// textual representation of Value which is what the member raised.
type Error struct {
	Name    string
	Payload string
	Value   interface{}
}

func (e *Error) Error() string { return e.Payload }

// Unwrap returns the raised value if it is an error.
func (e *Error) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// newError wraps given recovered value raised by the member with given
// name.
func newError(name string, r interface{}) *Error {
	switch x := r.(type) {
	case *Error:
		return x
	case assert.Failure:
		return &Error{Name: name, Payload: string(x), Value: x}
	case error:
		return &Error{Name: name, Payload: x.Error(), Value: x}
	case string:
		return &Error{Name: name, Payload: x, Value: x}
	}
	return &Error{Name: name, Payload: fmt.Sprint(r), Value: r}
}

// payload returns the text of given invocation error.
func payload(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Payload
	}
	return err.Error()
}
