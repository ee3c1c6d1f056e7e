// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"testing"
)

// goExit is the payload of a sub-test ended by its go test's FailNow.
const goExit = "test ended by FailNow"

// RunGo runs given suite-like value with the [Default] Unity instance
// as sub-tests of given go test (see [Unity.RunGo]).
func RunGo(suiteLike interface{}, t *testing.T) *RunSummary {
	t.Helper()
	return Default.RunGo(suiteLike, t)
}

// RunGo normalizes given suite-like value and runs each of its tests
// as sub-test of given go test named by the test's identifier.  A
// test's setUp hook, the test and its tearDown hook are run inside the
// sub-test and a failure's payload is reported by the sub-test's Error
// method.  The T instances passed to the suite log to their sub-test:
//
//	type arithmetic struct{}
//
//	func (s *arithmetic) TestAdd(t *unity.T) { t.Equals(2, 1+1) }
//
//	func TestArithmetic(t *testing.T) { unity.RunGo(&arithmetic{}, t) }
//
// If the suite-like value can't be normalized given go test fails
// fatally.
func (u *Unity) RunGo(suiteLike interface{}, t *testing.T) *RunSummary {
	t.Helper()
	s, err := u.Normalize(suiteLike)
	if err != nil {
		t.Fatalf("[ERROR] Invalid test suite: %v", err)
		return nil
	}

	summary := &RunSummary{Name: s.Name, Total: len(s.Tests),
		Outcomes: make([]Outcome, 0, len(s.Tests))}
	for _, test := range s.Tests {
		test := test
		t.Run(test, func(gt *testing.T) {
			gt.Helper()
			o := Outcome{Test: test, Phase: PhaseTest, Payload: goExit}
			defer func() {
				if o.Payload == goExit {
					summary.Outcomes = append(summary.Outcomes, o)
					summary.Failed++
				}
			}()
			o = u.exec(s, test, &T{name: test, logger: gt.Log, goT: gt})
			summary.Outcomes = append(summary.Outcomes, o)
			if o.Passed {
				summary.Passed++
				return
			}
			summary.Failed++
			gt.Error(o.Payload)
		})
	}
	return summary
}
