// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"strings"

	"github.com/slukits/unity/pkg/assert"
)

const (
	// SetUp is the name of the hook run before each test.
	SetUp = "setUp"

	// TearDown is the name of the hook run after each test.
	TearDown = "tearDown"

	// TestPrefix is the default prefix of test identifiers.
	TestPrefix = "test"
)

// Suite is the canonical description of a test suite every suite-like
// value is normalized to.  Tests are listed in discovery order while
// HasSetUp respectively HasTearDown tell if the runner may be asked to
// invoke the SetUp respectively TearDown hook.  Runner executes a named
// test or hook in the scope the suite was defined in.
type Suite struct {
	Name        string
	Tests       []string
	HasSetUp    bool
	HasTearDown bool
	Runner      Runner
}

// Runner invokes a suite's test or hook by its name passing given T
// instance.  An error is returned iff the invoked code raised, e.g. by
// a failing assertion, or can't be located.
type Runner interface {
	Invoke(name string, t *T) error
}

// Body is the canonical signature of a suite member's code.  Suite-like
// values may also provide members of the signatures func(), func()
// error and func(*T) error.
type Body func(*T)

// bodyOf adapts given value to a Body; ok is false if given value has
// none of the supported signatures or is nil.
func bodyOf(v interface{}) (_ Body, ok bool) {
	switch fn := v.(type) {
	case Body:
		return fn, fn != nil
	case func(*T):
		return fn, fn != nil
	case func():
		return func(*T) { fn() }, fn != nil
	case func() error:
		return func(*T) {
			if err := fn(); err != nil {
				panic(err)
			}
		}, fn != nil
	case func(*T) error:
		return func(t *T) {
			if err := fn(t); err != nil {
				panic(err)
			}
		}, fn != nil
	}
	return nil, false
}

// Scope resolves suite members by name.
type Scope interface {
	Lookup(name string) (Body, bool)
}

// Members is a scope of named values.  Only values of a supported body
// signature can be looked up.  A Members value given to Run is a keyed
// suite.
type Members map[string]interface{}

// Lookup returns the body of the member with given name.
func (mm Members) Lookup(name string) (Body, bool) {
	v, ok := mm[name]
	if !ok {
		return nil, false
	}
	return bodyOf(v)
}

// AttachAssertions copies every member of the assertion library by its
// name into given scope which is returned.  A nil scope defaults to a
// fresh copy of the library's own namespace.
func AttachAssertions(scope Members) Members {
	if scope == nil {
		scope = Members{}
	}
	for name, fn := range assert.Members() {
		scope[name] = fn
	}
	return scope
}

// Convention decides which discovered names identify tests.  Its zero
// value treats every name starting with "test" as a test identifier.
// Hooks are always identified by the exact names [SetUp] and
// [TearDown].
type Convention struct {

	// Prefix replaces the default test prefix if not empty.
	Prefix string

	// Match replaces the prefix check if not nil.
	Match func(name string) bool
}

// IsTest reports if given name identifies a test.
func (c Convention) IsTest(name string) bool {
	if c.Match != nil {
		return c.Match(name)
	}
	prefix := c.Prefix
	if prefix == "" {
		prefix = TestPrefix
	}
	return strings.HasPrefix(name, prefix)
}

// classify adds given discovered name to given suite as test or hook;
// other names are ignored.
func (c Convention) classify(s *Suite, name string) {
	switch {
	case name == SetUp:
		s.HasSetUp = true
	case name == TearDown:
		s.HasTearDown = true
	case c.IsTest(name):
		s.Tests = append(s.Tests, name)
	}
}

// Registrar collects a suite's members by direct reference.  A function
// of type func(*Registrar) is a suite-like value:
//
//	unity.Run(func(r *unity.Registrar) {
//	    r.Name("arithmetic")
//	    r.SetUp(func(t *unity.T) { x = 1 })
//	    r.Test("testAdd", func(t *unity.T) { t.Equals(2, x+1) })
//	})
//
// Registered tests don't need to follow the naming convention.
type Registrar struct {
	suite   *Suite
	members Members
}

func newRegistrar() *Registrar {
	r := &Registrar{suite: &Suite{Tests: []string{}}, members: Members{}}
	r.suite.Runner = scopeRunner{scope: r.members}
	return r
}

// Name sets the name of the registered suite.
func (r *Registrar) Name(name string) *Registrar {
	r.suite.Name = name
	return r
}

// SetUp registers the hook run before each test.
func (r *Registrar) SetUp(body Body) *Registrar {
	r.members[SetUp] = body
	r.suite.HasSetUp = body != nil
	return r
}

// TearDown registers the hook run after each test.
func (r *Registrar) TearDown(body Body) *Registrar {
	r.members[TearDown] = body
	r.suite.HasTearDown = body != nil
	return r
}

// Test registers given body as test with given name.  A name
// registered twice is run twice with the latest registered body.
func (r *Registrar) Test(name string, body Body) *Registrar {
	r.members[name] = body
	r.suite.Tests = append(r.suite.Tests, name)
	return r
}

// Register returns the suite registered by given function.
func Register(fn func(*Registrar)) *Suite {
	r := newRegistrar()
	fn(r)
	return r.suite
}

// scopeRunner invokes members looked up in its scope.
type scopeRunner struct{ scope Scope }

func (r scopeRunner) Invoke(name string, t *T) error {
	body, ok := r.scope.Lookup(name)
	if !ok {
		return &Error{Name: name, Payload: name + notAFunction}
	}
	return call(name, body, t)
}

// call executes given body recovering a raised payload into an *Error.
func call(name string, body Body, t *T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(name, r)
		}
	}()
	body(t)
	return nil
}
