// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"fmt"
	"reflect"

	"github.com/dop251/goja"
)

// Normalize translates given suite-like value into the canonical
// [Suite].  The first matching form wins:
//
//   - invocable: a *Suite is returned as is, a func(*Registrar) is
//     called with a fresh registrar, a JavaScript function is
//     serialized and its body is parsed as source text;
//   - ordered sequence: a []string lists test identifiers verbatim
//     which are resolved in u's Scope; a JavaScript array resolves them
//     in its runtime's global object;
//   - keyed structure: a map, a pointer to a struct or a JavaScript
//     object whose own members following the naming convention are
//     tests;
//   - source text: a string or Source is scanned for top-level
//     function declarations.
//
// An error wrapping ErrUnsupportedSuiteForm, ErrEnvironmentUnsupported
// or ErrMalformedSuite is returned if given value can't be normalized.
func (u *Unity) Normalize(suiteLike interface{}) (s *Suite, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrMalformedSuite, r)
		}
	}()

	switch x := suiteLike.(type) {
	case *Suite:
		if x == nil {
			return nil, ErrUnsupportedSuiteForm
		}
		return x, nil
	case func(*Registrar):
		if x == nil {
			return nil, ErrUnsupportedSuiteForm
		}
		return Register(x), nil
	case JS:
		return u.normalizeJS(x)
	case *JS:
		if x == nil {
			return nil, ErrUnsupportedSuiteForm
		}
		return u.normalizeJS(*x)
	case *goja.Object:
		if x == nil {
			return nil, ErrUnsupportedSuiteForm
		}
		return u.normalizeJS(JS{Value: x})
	case []string:
		return u.sequence(x, u.scope()), nil
	case Members:
		return u.keyedMap(x), nil
	case map[string]interface{}:
		return u.keyedMap(Members(x)), nil
	case Source:
		return u.normalizeSource(string(x), "", nil)
	case string:
		return u.normalizeSource(x, "", nil)
	}

	if v := reflect.ValueOf(suiteLike); isStructPtr(v) {
		return u.keyedStruct(v), nil
	}
	return nil, ErrUnsupportedSuiteForm
}

// sequence builds the suite of given test identifiers whose members
// are resolved in given scope.  Given identifiers are taken verbatim.
func (u *Unity) sequence(tests []string, scope Scope) *Suite {
	s := &Suite{Tests: append([]string{}, tests...)}
	_, s.HasSetUp = scope.Lookup(SetUp)
	_, s.HasTearDown = scope.Lookup(TearDown)
	s.Runner = scopeRunner{scope: scope}
	return s
}

// textAllowed reports if suite text may be scanned by u's scanner.
func (u *Unity) textAllowed() bool {
	return u.scanner().CommentAware() || !u.commentsPreserved()
}
