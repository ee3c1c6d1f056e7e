// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// nameKey is the member providing a keyed suite's name.
const nameKey = "name"

// keyedMap normalizes a map suite.  Maps have no order hence its keys
// are enumerated in lexical order.
func (u *Unity) keyedMap(mm Members) *Suite {
	keys := make([]string, 0, len(mm))
	for k := range mm {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := u.sequence(u.ownTests(keys, mm), mm)
	if name, ok := mm[nameKey].(string); ok {
		s.Name = name
	}
	return s
}

// ownTests filters given keys for callable members of given scope
// which are identified as tests.
func (u *Unity) ownTests(keys []string, scope Scope) []string {
	tests := []string{}
	for _, k := range keys {
		if k == SetUp || k == TearDown || !u.Convention.IsTest(k) {
			continue
		}
		if _, ok := scope.Lookup(k); !ok {
			continue
		}
		tests = append(tests, k)
	}
	return tests
}

func isStructPtr(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && !v.IsNil() &&
		v.Elem().Kind() == reflect.Struct
}

// keyedStruct normalizes a pointer to a struct whose methods are its
// members.  A method's identifier is its name with a lower-cased first
// rune, i.e. TestA is reported as testA and SetUp is the setUp hook.
// Methods promoted from embedded fields are inherited members and
// ignored.  Tests are reported in the order their methods appear in
// the suite's source file; methods the source isn't available for
// follow in lexical order.
func (u *Unity) keyedStruct(v reflect.Value) *Suite {
	typ := v.Type()
	promoted := promotedMethods(typ.Elem())
	order := indexer.methods(typ)

	mm, keys := Members{}, []string{}
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if promoted[m.Name] && !slices.Contains(order, m.Name) {
			continue
		}
		id := lowerFirst(m.Name)
		mm[id] = v.Method(i).Interface()
		keys = append(keys, id)
	}
	slices.SortStableFunc(keys, func(a, b string) bool {
		return position(order, a) < position(order, b)
	})

	s := u.sequence(u.ownTests(keys, mm), mm)
	s.Name = structName(v)
	return s
}

// position returns the index of the method with given identifier in
// given source order or the length of order if it is not found.
func position(order []string, id string) int {
	for i, name := range order {
		if lowerFirst(name) == id {
			return i
		}
	}
	return len(order)
}

// promotedMethods collects the names of the methods given struct type
// inherits from its embedded fields.
func promotedMethods(typ reflect.Type) map[string]bool {
	pp := map[string]bool{}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() != reflect.Pointer && ft.Kind() != reflect.Interface {
			ft = reflect.PointerTo(ft)
		}
		for j := 0; j < ft.NumMethod(); j++ {
			pp[ft.Method(j).Name] = true
		}
	}
	return pp
}

// structName returns the value of a string field Name of given struct
// pointer's value.
func structName(v reflect.Value) string {
	f := v.Elem().FieldByName("Name")
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
