// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package assert provides the flat assertion library available to
// suite tests.  Each assertion returns normally if its check holds and
// panics with a [Failure] otherwise.  The suite runners recover a
// Failure and report its message as the failing test's payload.
//
// Assertions may be used qualified
//
//	assert.Equals(1, x)
//
// unqualified through a dot-import
//
//	import . "github.com/slukits/unity/pkg/assert"
//
//	Equals(1, x)
//
// or through the Assertions namespace which is embedded in the
// *unity.T passed to each test.
package assert

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Failure is the payload an assertion panics with.
type Failure string

// Error implements the error interface.
func (f Failure) Error() string { return string(f) }

const (
	// TrueErr is the message of a failed True-assertion.
	TrueErr = "Expression does not evaluate to true"

	// FalseErr is the message of a failed False-assertion.
	FalseErr = "Condition does not evaluate to false"

	// EqualsErr is the format of a failed Equals-assertion's message.
	EqualsErr = "Actual value does not match what's expected: " +
		"[expected] %v, [actual] %v"

	// NotEqualsErr is the format of a failed NotEquals-assertion's
	// message.
	NotEqualsErr = "Actual value matches the unexpected value: %v"

	// NullErr is the message of a failed Null-assertion.
	NullErr = "Object is not null"

	// NotNullErr is the message of a failed NotNull-assertion.
	NotNullErr = "Object is null"

	// UndefinedErr is the message of a failed Undefined-assertion.
	UndefinedErr = "Value is not undefined"

	// NotUndefinedErr is the message of a failed NotUndefined-assertion.
	NotUndefinedErr = "Value is undefined"

	// NaNErr is the message of a failed NaN-assertion.
	NaNErr = "Value is not NaN"

	// NotNaNErr is the message of a failed NotNaN-assertion.
	NotNaNErr = "Value is NaN"

	// FailErr is the message of Fail.
	FailErr = "Test failed"
)

func raise(msg string) { panic(Failure(msg)) }

// True fails iff given value is false.
func True(value bool) {
	if !value {
		raise(TrueErr)
	}
}

// False fails iff given value is true.
func False(value bool) {
	if value {
		raise(FalseErr)
	}
}

// Equals fails iff given values are not strictly equal, i.e. they must
// have the same dynamic type and the same value.  Pointers are equal
// iff they point to the same address while values which are not
// comparable by == (slices, maps, ...) are compared deeply.  NOTE that
// 1 and int64(1) as well as 1 and "1" are not equal.
func Equals(expected, actual interface{}) {
	if !StrictEqual(expected, actual) {
		raise(fmt.Sprintf(EqualsErr, expected, actual))
	}
}

// NotEquals fails iff given values are strictly equal (see [Equals]).
func NotEquals(unexpected, actual interface{}) {
	if StrictEqual(unexpected, actual) {
		raise(fmt.Sprintf(NotEqualsErr, actual))
	}
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// StrictEqual reports if given values have the same dynamic type and
// are equal.
func StrictEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		if eq, ok := compare(a, b); ok {
			return eq
		}
	}
	return cmp.Equal(a, b, exportAll)
}

// compare compares given values with == which may panic if a
// comparable type holds an interface whose dynamic value isn't
// comparable; ok is false in that case.
func compare(a, b interface{}) (eq, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}

// Null fails iff given value is neither nil nor a nil pointer, map,
// slice, channel, function or interface.
func Null(value interface{}) {
	if !IsNull(value) {
		raise(NullErr)
	}
}

// NotNull fails iff given value is null (see [Null]).
func NotNull(value interface{}) {
	if IsNull(value) {
		raise(NotNullErr)
	}
}

// IsNull reports if given value is nil or a typed nil.
func IsNull(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Undefined fails iff given value is not the untyped nil, i.e. it
// holds a type.  Hence a nil pointer is null but not undefined.
func Undefined(value interface{}) {
	if value != nil {
		raise(UndefinedErr)
	}
}

// NotUndefined fails iff given value is the untyped nil.
func NotUndefined(value interface{}) {
	if value == nil {
		raise(NotUndefinedErr)
	}
}

// NaN fails iff given value converts to a number which is not NaN.
// Integers and booleans always convert, strings convert if they parse
// as a float, any other value (including nil) is not a number.
func NaN(value interface{}) {
	if !IsNaN(value) {
		raise(NaNErr)
	}
}

// NotNaN fails iff given value is not a number (see [NaN]).
func NotNaN(value interface{}) {
	if IsNaN(value) {
		raise(NotNaNErr)
	}
}

// IsNaN reports if given value doesn't convert to a number or converts
// to NaN.
func IsNaN(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr, reflect.Bool:
		return false
	case reflect.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		return err != nil || math.IsNaN(f)
	}
	return true
}

// Fail fails unconditionally.
func Fail() { raise(FailErr) }
