// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"fmt"
	"testing"

	"github.com/slukits/unity/pkg/assert"
)

// T instances are passed to a suite's tests and hooks.  A T embeds the
// assertion library and provides logging and cancellation for the test
// it was created for.  The same instance is passed to the setUp hook,
// the test and the tearDown hook of one test run:
//
//	type MySuite struct{}
//
//	func (s *MySuite) TestA(t *unity.T) { t.Equals(2, 1+1) }
//
//	unity.Run(&MySuite{})
type T struct {
	assert.Assertions
	name   string
	logger func(...interface{})
	goT    *testing.T
}

// Name returns the identifier of the test t was created for.
func (t *T) Name() string { return t.name }

// GoT returns the wrapped go testing instance if the suite is run by
// [RunGo]; nil otherwise.  NOTE calling FailNow on it ends the test
// without running a tearDown hook.
func (t *T) GoT() *testing.T { return t.goT }

// Log writes given arguments to the logger of the suite runner.
func (t *T) Log(args ...interface{}) {
	if t.logger == nil {
		return
	}
	t.logger(args...)
}

// Logf writes given format string leveraging Sprintf to the logger of
// the suite runner.
func (t *T) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// Fatal cancels the test with given arguments as failure payload.
func (t *T) Fatal(args ...interface{}) {
	panic(assert.Failure(fmt.Sprint(args...)))
}

// Fatalf cancels the test with given format string leveraging Sprintf
// as failure payload.
func (t *T) Fatalf(format string, args ...interface{}) {
	panic(assert.Failure(fmt.Sprintf(format, args...)))
}

// FatalOn cancels the test with given error's message as failure
// payload iff given error is not nil.
func (t *T) FatalOn(err error) {
	if err == nil {
		return
	}
	t.Fatal(err.Error())
}
