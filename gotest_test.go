// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity_test

import (
	"testing"

	"github.com/slukits/unity"
	"github.com/slukits/unity/testdata/fx"
)

// NOTE the here run tests run fixture suites as sub-tests of the test's
// testing.T instance.  This has the consequence that go test -v not only
// reports the tests of the test-files from this package but also the
// tests of test-suite fixtures.  Failing fixtures would fail the go
// test, hence only passing fixtures are run by RunGo.

func Test_run_go_runs_each_test_as_sub_test(t *testing.T) {
	suite := &fx.TestHooks{}
	var names []string
	if !t.Run("TestHooks", func(t *testing.T) {
		s := unity.RunGo(suite, t)
		if s.Total != 2 || s.Passed != 2 {
			t.Errorf("expected 2 passing tests; got %+v", s)
		}
		for _, o := range s.Outcomes {
			names = append(names, o.Test)
		}
	}) {
		t.Fatal("expected TestHooks suite to pass")
	}
	if len(names) != 2 || names[0] != "testA" || names[1] != "testB" {
		t.Errorf("expected outcomes of testA and testB; got %v", names)
	}
	if len(suite.Logs) != 0 {
		t.Errorf("expected sub-tests to log to go test; got %v",
			suite.Logs)
	}
}

type goTest struct{ got *testing.T }

func (s *goTest) TestGoT(t *unity.T) {
	s.got = t.GoT()
	if t.GoT() == nil {
		t.Fatal("expected wrapped go test")
	}
	t.Equals("Test_go_t_instance_is_the_sub_test/testGoT", t.GoT().Name())
}

func Test_go_t_instance_is_the_sub_test(t *testing.T) {
	suite := &goTest{}
	unity.RunGo(suite, t)
	if suite.got == nil || suite.got == t {
		t.Errorf("expected the sub-test's testing.T; got %v", suite.got)
	}
}

func Test_fixtures_are_stored_per_test_run(t *testing.T) {
	suite := &fx.TestFixtures{}
	s := unity.RunGo(suite, t)
	if s.Passed != 2 {
		t.Errorf("expected both fixture tests to pass; got %+v", s)
	}
	if suite.Left != 0 {
		t.Errorf("expected no fixtures left; got %d", suite.Left)
	}
}

func Test_a_t_outside_a_run_go_has_no_go_test(t *testing.T) {
	var got *testing.T
	(&unity.Unity{}).Run(func(r *unity.Registrar) {
		r.Test("testA", func(t *unity.T) { got = t.GoT() })
	})
	if got != nil {
		t.Errorf("expected nil go test; got %v", got)
	}
}
