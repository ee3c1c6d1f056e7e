// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides unity test-fixture suites.
//
// Each struct fixture suite embeds the FixtureLog ensuring that all
// loggings of the hooks and tests during a suite's test runs are
// appended to the *Logs*-property which then can be evaluated after the
// suite's test runs.  The embedded FixtureLog's methods are promoted
// methods and as such never discovered as suite members.
package fx

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/slukits/unity"
)

// FixtureLog provides the general logging facility for test suite
// fixtures.  A FixtureLog mustn't been copied once it has been used.
type FixtureLog struct {
	Logs  []string
	mutex sync.Mutex
}

// log logs concurrency save given arguments to the *Logs* property.
func (fl *FixtureLog) log(args ...interface{}) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.Logs = append(fl.Logs, fmt.Sprint(args...))
}

// Logger returns a function usable as unity.Unity.Logger appending to
// the *Logs* property.
func (fl *FixtureLog) Logger() func(args ...interface{}) {
	return fl.log
}

// String returns the logs joined by "|".
func (fl *FixtureLog) String() string {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	return strings.Join(fl.Logs, "|")
}

// TestAllSuiteTestsAreRun is a suite fixture to verify that the
// suite-test runner executes methods named by the test prefix as tests.
type TestAllSuiteTestsAreRun struct {
	FixtureLog
	// Exp is logged iff *TestA*-method is called
	Exp string
}

// TestA logs the content of *Exp*.
func (s *TestAllSuiteTestsAreRun) TestA(t *unity.T) { t.Log(s.Exp) }

// private can't be run.
func (s *TestAllSuiteTestsAreRun) private(t *unity.T) { t.Log("failed") }

// Helper is no test.
func (s *TestAllSuiteTestsAreRun) Helper(t *unity.T) { t.Log("failed") }

// EndToEnd has a passing testA and a failing testB.
type EndToEnd struct{}

func (s *EndToEnd) TestA(t *unity.T) { t.True(true) }

func (s *EndToEnd) TestB(t *unity.T) { t.Fail() }

// EndToEndSource is the EndToEnd suite as source text.
const EndToEndSource = `
function testA() { assertTrue(true); }
function testB() { fail(); }
`

// TestIndexing declares its tests not in lexical order.  Expected order
// of discovery is testC, testA, testB.
type TestIndexing struct{ Got []string }

func (s *TestIndexing) TestC(t *unity.T) { s.Got = append(s.Got, "c") }

func (s *TestIndexing) TestA(t *unity.T) { s.Got = append(s.Got, "a") }

func (s *TestIndexing) TestB(t *unity.T) { s.Got = append(s.Got, "b") }

// Inherited provides a test which is promoted to embedding suites.
type Inherited struct{}

func (s *Inherited) TestInherited(t *unity.T) { t.Log("inherited") }

// TestEmbedding embeds Inherited whose test must not be discovered.
type TestEmbedding struct {
	FixtureLog
	Inherited
}

func (s *TestEmbedding) TestOwn(t *unity.T) { t.Log("own") }

// TestNaming has methods named test, testFoo, helper and Setup (wrong
// case) whereas only the first two are tests and no hook is found.
// Since method names are exported they are lower-cased to their
// identifiers, i.e. Test is test.
type TestNaming struct {
	Name string
	FixtureLog
}

func (s *TestNaming) Test(t *unity.T)    { t.Log("test") }
func (s *TestNaming) TestFoo(t *unity.T) { t.Log("testFoo") }
func (s *TestNaming) Setup(t *unity.T)   { t.Log("Setup") }
func (s *TestNaming) Teardown()          { s.log("Teardown") }

// TestHooks logs each hook and test invocation.
type TestHooks struct{ FixtureLog }

func (s *TestHooks) SetUp(t *unity.T)    { t.Log("setUp") }
func (s *TestHooks) TearDown(t *unity.T) { t.Log("tearDown") }
func (s *TestHooks) TestA(t *unity.T)    { t.Log(t.Name()) }
func (s *TestHooks) TestB(t *unity.T)    { t.Log(t.Name()) }

// TestSetUpFails has a failing setUp hook and counts the tearDown
// invocations.
type TestSetUpFails struct {
	TearDowns int
	Tests     int
}

func (s *TestSetUpFails) SetUp(t *unity.T)    { t.Fatal("setUp failed") }
func (s *TestSetUpFails) TearDown(t *unity.T) { s.TearDowns++ }
func (s *TestSetUpFails) TestA(t *unity.T)    { s.Tests++ }

// TestTearDownFails has a passing test and a failing tearDown hook
// counting its invocations.
type TestTearDownFails struct{ TearDowns int }

func (s *TestTearDownFails) TearDown(t *unity.T) {
	s.TearDowns++
	t.Fatal("tearDown failed")
}

func (s *TestTearDownFails) TestA(t *unity.T) {}

// ErrFixture is returned by TestSignatures's failing test.
var ErrFixture = errors.New("fixture error")

// TestSignatures has tests of each supported body signature.
type TestSignatures struct{ Runs int }

func (s *TestSignatures) TestPlain()                { s.Runs++ }
func (s *TestSignatures) TestT(t *unity.T)          { s.Runs++ }
func (s *TestSignatures) TestErr() error            { s.Runs++; return nil }
func (s *TestSignatures) TestTErr(t *unity.T) error { s.Runs++; return ErrFixture }
func (s *TestSignatures) TestArgs(a, b int)         { s.Runs++ }

// TestFixtures sets up a fixture per test run in setUp and releases it
// in tearDown.
type TestFixtures struct {
	fx   unity.Fixtures
	Left int
}

func (s *TestFixtures) SetUp(t *unity.T) { s.fx.Set(t, t.Name()+" fixture") }

func (s *TestFixtures) TearDown(t *unity.T) {
	s.fx.Del(t)
	s.Left = s.fx.Len()
}

func (s *TestFixtures) TestA(t *unity.T) {
	t.Equals("testA fixture", s.fx.Get(t))
}

func (s *TestFixtures) TestB(t *unity.T) {
	t.Equals("testB fixture", s.fx.Get(t))
}
