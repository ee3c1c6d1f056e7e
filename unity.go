// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"fmt"

	"github.com/slukits/unity/pkg/scan"
)

// TearDownPolicy decides how often a tearDown hook is invoked for a
// failing test.
type TearDownPolicy int

const (
	// TearDownCompat invokes the tearDown hook again whenever a test's
	// setUp, test or tearDown invocation failed.  I.e. a failing
	// tearDown after a passed test is invoked a second time.
	TearDownCompat TearDownPolicy = iota

	// TearDownOnce invokes the tearDown hook at most once per test.  A
	// tearDown failing after a passed test is not retried.
	TearDownOnce
)

// Phase names the step of a test run a failure was raised in.
type Phase string

const (
	PhaseSetUp    Phase = SetUp
	PhaseTest     Phase = "test"
	PhaseTearDown Phase = TearDown
)

// Outcome is the result of one test's run.  Phase and Payload are only
// set for a failed test.  NOTE the failure of a setUp or tearDown hook
// is attributed to the test it was run for.
type Outcome struct {
	Test    string `json:"test"`
	Passed  bool   `json:"passed"`
	Phase   Phase  `json:"phase,omitempty"`
	Payload string `json:"payload,omitempty"`
	Err     error  `json:"-"`
}

// RunSummary aggregates the outcomes of a suite's run.  Total is
// always Passed + Failed.
type RunSummary struct {
	Name     string    `json:"name,omitempty"`
	Total    int       `json:"total"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Outcomes []Outcome `json:"outcomes"`
}

// Unity normalizes suite-like values and runs them.  Its zero value is
// ready to use: it logs nothing, resolves ordered sequences of names in
// an empty scope, discovers tests by the "test" prefix, scans source
// text with tree-sitter and invokes a tearDown hook again after any
// failure of a test run (see [TearDownCompat]).
type Unity struct {

	// Logger receives the messages of a run; the default discards them.
	Logger func(...interface{})

	// Scope resolves the names of suites given as ordered sequence of
	// names ([]string).
	Scope Scope

	// Convention identifies tests among discovered names.
	Convention Convention

	// Scanner discovers declarations in suite source text.
	Scanner scan.Scanner

	// TearDown is the tearDown invocation policy for failing tests.
	TearDown TearDownPolicy

	probe func() bool
}

// Default is the Unity instance used by the package level functions.
var Default = &Unity{}

// Run normalizes and runs given suite-like value with the [Default]
// Unity instance (see [Unity.Run]).
func Run(suiteLike interface{}) *RunSummary {
	return Default.Run(suiteLike)
}

// Normalize normalizes given suite-like value with the [Default] Unity
// instance (see [Unity.Normalize]).
func Normalize(suiteLike interface{}) (*Suite, error) {
	return Default.Normalize(suiteLike)
}

func (u *Unity) log(msg string) {
	if u.Logger == nil {
		return
	}
	u.Logger(msg)
}

func (u *Unity) error(msg string) { u.log("[ERROR] " + msg) }

func (u *Unity) scanner() scan.Scanner {
	if u.Scanner == nil {
		return scan.TreeSitter{}
	}
	return u.Scanner
}

func (u *Unity) scope() Scope {
	if u.Scope == nil {
		return Members{}
	}
	return u.Scope
}

func (u *Unity) commentsPreserved() bool {
	if u.probe != nil {
		return u.probe()
	}
	return CommentsPreserved()
}

// Run normalizes given suite-like value and runs its tests in order.
// Each test is run by invoking a present setUp hook, the test and a
// present tearDown hook.  A failure raised by any of them fails the
// test, is logged and the run continues with the next test.  Run
// logs
//
//	<n> tests found
//	[PASSED] <test>
//	[FAILED] <test>: <payload>
//	<p> tests passed
//	<f> tests failed
//
// and returns the run's summary.  If given value can't be normalized
// "[ERROR] Invalid test suite: <cause>" is logged and nil is returned.
func (u *Unity) Run(suiteLike interface{}) *RunSummary {
	suite, err := u.Normalize(suiteLike)
	if err != nil {
		u.error(fmt.Sprintf("Invalid test suite: %v", err))
		return nil
	}
	return u.execute(suite)
}

func (u *Unity) execute(s *Suite) *RunSummary {
	summary := &RunSummary{
		Name:     s.Name,
		Total:    len(s.Tests),
		Outcomes: make([]Outcome, 0, len(s.Tests)),
	}
	u.log(fmt.Sprintf("%d tests found", summary.Total))

	for _, test := range s.Tests {
		o := u.exec(s, test, &T{name: test, logger: u.Logger})
		summary.Outcomes = append(summary.Outcomes, o)
		if o.Passed {
			summary.Passed++
			u.log("[PASSED] " + test)
			continue
		}
		summary.Failed++
		u.log(fmt.Sprintf("[FAILED] %s: %s", test, o.Payload))
	}

	u.log(fmt.Sprintf("%d tests passed", summary.Passed))
	u.log(fmt.Sprintf("%d tests failed", summary.Failed))
	return summary
}

// exec runs given test of given suite with its hooks.
func (u *Unity) exec(s *Suite, test string, t *T) Outcome {
	var err error
	phase, tornDown := PhaseSetUp, false
	if s.HasSetUp {
		err = invoke(s.Runner, SetUp, t)
	}
	if err == nil {
		phase, err = PhaseTest, invoke(s.Runner, test, t)
	}
	if err == nil && s.HasTearDown {
		phase, tornDown = PhaseTearDown, true
		err = invoke(s.Runner, TearDown, t)
	}
	if err == nil {
		return Outcome{Test: test, Passed: true}
	}

	if s.HasTearDown && (!tornDown || u.TearDown == TearDownCompat) {
		_ = invoke(s.Runner, TearDown, t)
	}
	return Outcome{Test: test, Phase: phase, Payload: payload(err), Err: err}
}

// invoke invokes given member through given runner making sure a
// panicking runner implementation doesn't abort the run.
func invoke(r Runner, name string, t *T) (err error) {
	defer func() {
		if x := recover(); x != nil {
			err = newError(name, x)
		}
	}()
	if r == nil {
		return &Error{Name: name, Payload: name + notAFunction}
	}
	return r.Invoke(name, t)
}
