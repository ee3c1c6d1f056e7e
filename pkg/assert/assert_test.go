// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/slukits/unity/pkg/assert"
)

// failure returns the message of the Failure given function panics
// with or "" if it returns normally.
func failure(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(assert.Failure)
		if !ok {
			t.Fatalf("expected assert.Failure; got %T: %v", r, r)
		}
		msg = string(f)
	}()
	fn()
	return ""
}

func Test_assertions_pass_or_fail_with_their_message(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	one := 1
	for name, tc := range map[string]struct {
		fn  func()
		exp string
	}{
		"true":                {func() { assert.True(true) }, ""},
		"true fails":          {func() { assert.True(false) }, assert.TrueErr},
		"false":               {func() { assert.False(false) }, ""},
		"false fails":         {func() { assert.False(true) }, assert.FalseErr},
		"equals":              {func() { assert.Equals(1, 1) }, ""},
		"equals is strict":    {func() { assert.Equals(1, "1") }, "Actual value does not match what's expected: [expected] 1, [actual] 1"},
		"equals typed":        {func() { assert.Equals(1, int64(1)) }, "Actual value does not match what's expected: [expected] 1, [actual] 1"},
		"equals deep":         {func() { assert.Equals([]int{1, 2}, []int{1, 2}) }, ""},
		"equals pointer":      {func() { assert.Equals(&one, &one) }, ""},
		"not equals":          {func() { assert.NotEquals(1, 2) }, ""},
		"not equals fails":    {func() { assert.NotEquals("a", "a") }, "Actual value matches the unexpected value: a"},
		"null":                {func() { assert.Null(nil) }, ""},
		"null typed nil":      {func() { assert.Null(nilPtr) }, ""},
		"null nil map":        {func() { assert.Null(nilMap) }, ""},
		"null fails":          {func() { assert.Null(0) }, assert.NullErr},
		"not null":            {func() { assert.NotNull("") }, ""},
		"not null fails":      {func() { assert.NotNull(nilPtr) }, assert.NotNullErr},
		"undefined":           {func() { assert.Undefined(nil) }, ""},
		"undefined typed nil": {func() { assert.Undefined(nilPtr) }, assert.UndefinedErr},
		"not undefined":       {func() { assert.NotUndefined(nilPtr) }, ""},
		"not undefined fails": {func() { assert.NotUndefined(nil) }, assert.NotUndefinedErr},
		"nan":                 {func() { assert.NaN(math.NaN()) }, ""},
		"nan of text":         {func() { assert.NaN("abc") }, ""},
		"nan fails":           {func() { assert.NaN(0) }, assert.NaNErr},
		"nan of duration":     {func() { assert.NaN(time.Second) }, assert.NaNErr},
		"nan of numeric text": {func() { assert.NaN(" 12 ") }, assert.NaNErr},
		"not nan":             {func() { assert.NotNaN(1.5) }, ""},
		"not nan fails":       {func() { assert.NotNaN(struct{}{}) }, assert.NotNaNErr},
		"fail":                {func() { assert.Fail() }, assert.FailErr},
	} {
		if got := failure(t, tc.fn); got != tc.exp {
			t.Errorf("%s: expected failure %q; got %q", name, tc.exp, got)
		}
	}
}

func Test_strict_equal_compares_pointers_by_identity(t *testing.T) {
	a, b := 1, 1
	if assert.StrictEqual(&a, &b) {
		t.Error("expected distinct pointers to be unequal")
	}
	if !assert.StrictEqual(map[string][]int{"a": {1}},
		map[string][]int{"a": {1}}) {
		t.Error("expected equal maps to be equal")
	}
	var e1, e2 interface{} = []int{1}, []int{1}
	type holder struct{ v interface{} }
	if !assert.StrictEqual(holder{e1}, holder{e2}) {
		t.Error("expected holders of equal slices to be equal")
	}
}

func Test_namespace_delegates_to_the_library(t *testing.T) {
	var ns assert.Assertions
	if got := failure(t, func() { ns.Equals(1, 2) }); got !=
		"Actual value does not match what's expected: [expected] 1, [actual] 2" {
		t.Errorf("unexpected failure: %q", got)
	}
	if got := failure(t, ns.Fail); got != assert.FailErr {
		t.Errorf("unexpected failure: %q", got)
	}
}

func Test_members_name_every_assertion(t *testing.T) {
	mm := assert.Members()
	names := []string{}
	for _, n := range assert.Names {
		if _, ok := mm[n]; ok {
			names = append(names, n)
		}
	}
	if diff := cmp.Diff(assert.Names, names); diff != "" || len(mm) != 11 {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	fail := mm["fail"].(func())
	if got := failure(t, fail); got != assert.FailErr {
		t.Errorf("expected fail member to fail; got %q", got)
	}
}
