// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert

// Assertions is the namespace of the assertion library.  Its zero value
// is ready to use and it is embedded in the T instances passed to suite
// tests:
//
//	func (s *MySuite) TestSum(t *unity.T) { t.Equals(3, sum(1, 2)) }
type Assertions struct{}

// True fails iff given value is false.
func (Assertions) True(value bool) { True(value) }

// False fails iff given value is true.
func (Assertions) False(value bool) { False(value) }

// Equals fails iff given values are not strictly equal.
func (Assertions) Equals(expected, actual interface{}) {
	Equals(expected, actual)
}

// NotEquals fails iff given values are strictly equal.
func (Assertions) NotEquals(unexpected, actual interface{}) {
	NotEquals(unexpected, actual)
}

// Null fails iff given value is not nil or a typed nil.
func (Assertions) Null(value interface{}) { Null(value) }

// NotNull fails iff given value is nil or a typed nil.
func (Assertions) NotNull(value interface{}) { NotNull(value) }

// Undefined fails iff given value is not the untyped nil.
func (Assertions) Undefined(value interface{}) { Undefined(value) }

// NotUndefined fails iff given value is the untyped nil.
func (Assertions) NotUndefined(value interface{}) { NotUndefined(value) }

// NaN fails iff given value is a number.
func (Assertions) NaN(value interface{}) { NaN(value) }

// NotNaN fails iff given value is not a number.
func (Assertions) NotNaN(value interface{}) { NotNaN(value) }

// Fail fails unconditionally.
func (Assertions) Fail() { Fail() }

// Names lists the library's member names in their canonical order.
// These are the names under which the assertions are bound into a
// scope, e.g. a JavaScript runtime.
var Names = []string{
	"assertTrue",
	"assertFalse",
	"assertEquals",
	"assertNotEquals",
	"assertNull",
	"assertNotNull",
	"assertUndefined",
	"assertNotUndefined",
	"assertNaN",
	"assertNotNaN",
	"fail",
}

// Members returns a fresh mapping of the library's member names to
// their Go implementations.
func Members() map[string]interface{} {
	return map[string]interface{}{
		"assertTrue":         True,
		"assertFalse":        False,
		"assertEquals":       Equals,
		"assertNotEquals":    NotEquals,
		"assertNull":         Null,
		"assertNotNull":      NotNull,
		"assertUndefined":    Undefined,
		"assertNotUndefined": NotUndefined,
		"assertNaN":          NaN,
		"assertNotNaN":       NotNaN,
		"fail":               Fail,
	}
}
