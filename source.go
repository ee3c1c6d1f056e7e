// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dop251/goja"
	"github.com/slukits/unity/pkg/assert"
)

// Source is JavaScript source text declaring a suite's tests and hooks
// as top-level functions:
//
//	unity.Run(unity.Source(`
//	    function setUp() { x = 1; }
//	    function testAdd() { assertEquals(2, x + 1); }
//	`))
//
// The source is evaluated once per test run, not once per invoked
// hook or test.  Hence state set up by setUp is seen by the test and
// its tearDown while the next test run starts from a fresh evaluation.
type Source string

// reWrapper captures the name and the body of a serialized function.
var reWrapper = regexp.MustCompile(
	`^\s*function\s*([^(\s]*?)\s*\([^)]*\)\s*\{((?:[^}]*\}?)+)\}\s*$`)

// reIdent matches declared names which can be referenced in source.
var reIdent = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)

// normalizeFunc strips the wrapper of given function source text and
// parses its body as suite source evaluated in given runtime.  The
// function's name becomes the suite's name.
func (u *Unity) normalizeFunc(fn string, vm *goja.Runtime) (*Suite, error) {
	if !u.textAllowed() {
		return nil, ErrEnvironmentUnsupported
	}
	tokens := reWrapper.FindStringSubmatch(fn)
	if tokens == nil {
		return nil, fmt.Errorf("%w: invalid function", ErrMalformedSuite)
	}
	return u.normalizeSource(tokens[2], tokens[1], vm)
}

// normalizeSource compiles given source text and scans it for its
// declarations: names starting with the test prefix are tests in
// order of appearance, setUp and tearDown are hooks and other names are
// ignored.  The source is evaluated in given runtime; a nil runtime
// evaluates it in a fresh runtime for each test run.
func (u *Unity) normalizeSource(
	src, name string, vm *goja.Runtime,
) (*Suite, error) {
	if !u.textAllowed() {
		return nil, ErrEnvironmentUnsupported
	}
	if _, err := goja.Compile(name, src, false); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSuite, err)
	}
	names, err := u.scanner().Names(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSuite, err)
	}
	program, err := goja.Compile(name, factory(src, names), false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSuite, err)
	}

	s := &Suite{Name: name, Tests: []string{}}
	for _, n := range names {
		u.Convention.classify(s, n)
	}
	s.Runner = &sourceRunner{program: program, owner: vm, logger: u.Logger}
	return s, nil
}

// factory wraps given suite source into a function expression whose
// parameters are the assertions and which returns the declared
// functions of given names by their name.
func factory(src string, names []string) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "(function (%s) {\n", strings.Join(assert.Names, ", "))
	b.WriteString(src)
	b.WriteString("\n;return {")
	for _, n := range names {
		if !reIdent.MatchString(n) {
			continue
		}
		fmt.Fprintf(b, "%q: typeof %s === \"function\" ? %[2]s : undefined,",
			n, n)
	}
	b.WriteString("};\n})")
	return b.String()
}

// sourceRunner runs the members of a compiled suite source.  Each test
// run evaluates the source once with the assertions bound as local
// names; its setUp hook, the test and its tearDown hook share this
// evaluation.  A test run is identified by the T instance passed to
// Invoke.  Without an owning runtime each test run gets a fresh one.
type sourceRunner struct {
	program *goja.Program
	owner   *goja.Runtime
	logger  func(...interface{})
	t       *T
	members *goja.Object
	err     error
}

func (r *sourceRunner) Invoke(name string, t *T) error {
	if (r.members == nil && r.err == nil) || r.t != t {
		r.load(t)
	}
	if r.err != nil {
		return &Error{Name: name, Payload: payload(r.err), Value: r.err}
	}
	fn, ok := goja.AssertFunction(r.members.Get(name))
	if !ok {
		return &Error{Name: name, Payload: name + notAFunction}
	}
	if _, err := fn(goja.Undefined()); err != nil {
		return jsError(name, err)
	}
	return nil
}

// load evaluates the suite source for given test run.  An evaluation
// failure fails every invocation of the run.
func (r *sourceRunner) load(t *T) {
	r.t, r.members, r.err = t, nil, nil
	vm := r.owner
	if vm == nil {
		vm = goja.New()
		logger := r.logger
		if t != nil {
			logger = t.Log
		}
		if err := Install(vm, &Unity{Logger: logger}); err != nil {
			r.err = err
			return
		}
	}

	v, err := vm.RunProgram(r.program)
	if err != nil {
		r.err = jsError("", err)
		return
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		r.err = fmt.Errorf("%w: suite source", ErrMalformedSuite)
		return
	}
	members, err := fn(goja.Undefined(), assertionArgs(vm)...)
	if err != nil {
		r.err = jsError("", err)
		return
	}
	r.members = members.ToObject(vm)
}

// jsError translates an error returned by a JavaScript invocation into
// an *Error whose payload is the thrown value's string conversion.
func jsError(name string, err error) *Error {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		if v := ex.Value(); v != nil {
			return &Error{Name: name, Payload: v.String(), Value: v.Export()}
		}
	}
	return &Error{Name: name, Payload: err.Error(), Value: err}
}
