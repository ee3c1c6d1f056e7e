// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dop251/goja"
	"github.com/slukits/unity/pkg/assert"
)

// JS is a JavaScript suite-like value together with the runtime it was
// created in.  The runtime is needed to resolve the names of an array
// suite in the runtime's global object and to evaluate a function
// suite's body in the runtime's global scope.
type JS struct {
	VM    *goja.Runtime
	Value goja.Value
}

// Namespace is the name of the global object [Install] defines.
const Namespace = "jsUnity"

const arrayClass = "Array"

// normalizeJS dispatches on the shape of given JavaScript value.
func (u *Unity) normalizeJS(js JS) (*Suite, error) {
	v := js.Value
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, ErrUnsupportedSuiteForm
	}
	if _, ok := goja.AssertFunction(v); ok {
		return u.normalizeFunc(v.String(), js.VM)
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		if s, ok := v.Export().(string); ok {
			return u.normalizeSource(s, "", js.VM)
		}
		return nil, ErrUnsupportedSuiteForm
	}
	if obj.ClassName() == arrayClass {
		if js.VM == nil {
			return nil, fmt.Errorf(
				"%w: array without runtime", ErrUnsupportedSuiteForm)
		}
		return u.sequence(arrayNames(obj), jsScope{
			obj: js.VM.GlobalObject()}), nil
	}
	return u.keyedJS(obj), nil
}

// arrayNames returns the string conversions of given array's elements.
func arrayNames(arr *goja.Object) []string {
	n := int(arr.Get("length").ToInteger())
	nn := make([]string, 0, n)
	for i := 0; i < n; i++ {
		nn = append(nn, arr.Get(strconv.Itoa(i)).String())
	}
	return nn
}

// keyedJS normalizes a JavaScript object whose own keys are enumerated
// in insertion order.  Only a string valued name member names the
// suite.
func (u *Unity) keyedJS(obj *goja.Object) *Suite {
	scope := jsScope{obj: obj}
	s := u.sequence(u.ownTests(obj.Keys(), scope), scope)
	if n := obj.Get(nameKey); n != nil {
		if name, ok := n.Export().(string); ok {
			s.Name = name
		}
	}
	return s
}

// jsScope resolves suite members as callable properties of a
// JavaScript object.
type jsScope struct{ obj *goja.Object }

// Lookup returns a body calling the function property with given name
// with the scope object as receiver.
func (s jsScope) Lookup(name string) (Body, bool) {
	fn, ok := goja.AssertFunction(s.obj.Get(name))
	if !ok {
		return nil, false
	}
	return func(*T) {
		if _, err := fn(s.obj); err != nil {
			panic(jsError(name, err))
		}
	}, true
}

// Install defines the global jsUnity object in given runtime.  It
// provides
//
//	jsUnity.run(suite)              // runs given suite with u
//	jsUnity.log(message)            // u's logger; may be replaced
//	jsUnity.error(message)          // logs "[ERROR] " + message
//	jsUnity.assertions              // the assertion library
//	jsUnity.attachAssertions(scope) // copies the assertions to scope
//
// run reports through jsUnity.log and jsUnity.error which are looked
// up at each call.  It returns an object with the suite's name, total,
// passed and failed counts or false if given suite is invalid.
func Install(vm *goja.Runtime, u *Unity) error {
	if u == nil {
		u = &Unity{}
	}
	ns := vm.NewObject()
	assertions := vm.NewObject()
	if err := bindAssertions(vm, assertions); err != nil {
		return err
	}

	members := map[string]interface{}{
		"assertions": assertions,
		"log": func(call goja.FunctionCall) goja.Value {
			ss := make([]string, len(call.Arguments))
			for i, a := range call.Arguments {
				ss[i] = a.String()
			}
			u.log(strings.Join(ss, " "))
			return goja.Undefined()
		},
		"error": func(call goja.FunctionCall) goja.Value {
			self := receiver(call.This, ns)
			jsCall(vm, self, "log", "[ERROR] "+call.Argument(0).String())
			return goja.Undefined()
		},
		"attachAssertions": func(call goja.FunctionCall) goja.Value {
			self := receiver(call.This, ns)
			scope, ok := call.Argument(0).(*goja.Object)
			if !ok {
				scope = self
			}
			attach(vm, self.Get("assertions"), scope)
			return goja.Undefined()
		},
		"run": func(call goja.FunctionCall) goja.Value {
			return runJS(vm, u, receiver(call.This, ns), call.Argument(0))
		},
	}
	for _, name := range []string{
		"assertions", "log", "error", "attachAssertions", "run"} {
		if err := ns.Set(name, members[name]); err != nil {
			return err
		}
	}
	return vm.Set(Namespace, ns)
}

// runJS runs given suite-like value with a copy of u which reports to
// given jsUnity object's log respectively error function.
func runJS(
	vm *goja.Runtime, u *Unity, self *goja.Object, suiteLike goja.Value,
) goja.Value {
	ru := *u
	ru.Logger = func(args ...interface{}) {
		jsCall(vm, self, "log", fmt.Sprint(args...))
	}
	s, err := ru.Normalize(JS{VM: vm, Value: suiteLike})
	if err != nil {
		jsCall(vm, self, "error", "Invalid test suite: "+err.Error())
		return vm.ToValue(false)
	}
	summary := ru.execute(s)

	result := vm.NewObject()
	if summary.Name != "" {
		_ = result.Set("name", summary.Name)
	} else {
		_ = result.Set("name", goja.Undefined())
	}
	_ = result.Set("total", summary.Total)
	_ = result.Set("passed", summary.Passed)
	_ = result.Set("failed", summary.Failed)
	return result
}

// receiver returns given this value if it is an object; given fallback
// otherwise.
func receiver(this goja.Value, fallback *goja.Object) *goja.Object {
	if obj, ok := this.(*goja.Object); ok {
		return obj
	}
	return fallback
}

// jsCall calls the function property with given name of given object
// with given message.  A thrown exception is rethrown in the calling
// script.
func jsCall(vm *goja.Runtime, obj *goja.Object, name, msg string) {
	fn, ok := goja.AssertFunction(obj.Get(name))
	if !ok {
		return
	}
	if _, err := fn(obj, vm.ToValue(msg)); err != nil {
		panic(err)
	}
}

// attach copies every property of given assertions object into given
// scope.
func attach(vm *goja.Runtime, assertions goja.Value, scope *goja.Object) {
	obj, ok := assertions.(*goja.Object)
	if !ok {
		return
	}
	for _, k := range obj.Keys() {
		if err := scope.Set(k, obj.Get(k)); err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
	}
}

// assertionArgs returns the assertions bound to the local names of a
// suite source.  They are taken from jsUnity.assertions if present so
// scripts may replace them.
func assertionArgs(vm *goja.Runtime) []goja.Value {
	var current *goja.Object
	if ns, ok := vm.Get(Namespace).(*goja.Object); ok {
		current, _ = ns.Get("assertions").(*goja.Object)
	}
	fallback := vm.NewObject()
	_ = bindAssertions(vm, fallback)

	args := make([]goja.Value, len(assert.Names))
	for i, name := range assert.Names {
		if current != nil {
			if v := current.Get(name); v != nil && !goja.IsUndefined(v) {
				args[i] = v
				continue
			}
		}
		args[i] = fallback.Get(name)
	}
	return args
}

// bindAssertions defines the assertion library's members on given
// object.  Failing assertions throw their message string; equality is
// JavaScript's strict equality.
func bindAssertions(vm *goja.Runtime, obj *goja.Object) error {
	throw := func(msg string) { panic(vm.ToValue(msg)) }
	check := func(
		fn func(goja.FunctionCall),
	) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			fn(call)
			return goja.Undefined()
		}
	}
	isNaN := func(v goja.Value) bool { return math.IsNaN(v.ToFloat()) }

	ff := map[string]func(goja.FunctionCall) goja.Value{
		"assertTrue": check(func(c goja.FunctionCall) {
			if !c.Argument(0).ToBoolean() {
				throw(assert.TrueErr)
			}
		}),
		"assertFalse": check(func(c goja.FunctionCall) {
			if c.Argument(0).ToBoolean() {
				throw(assert.FalseErr)
			}
		}),
		"assertEquals": check(func(c goja.FunctionCall) {
			exp, act := c.Argument(0), c.Argument(1)
			if !exp.StrictEquals(act) {
				throw(fmt.Sprintf(assert.EqualsErr, exp.String(), act.String()))
			}
		}),
		"assertNotEquals": check(func(c goja.FunctionCall) {
			unexp, act := c.Argument(0), c.Argument(1)
			if unexp.StrictEquals(act) {
				throw(fmt.Sprintf(assert.NotEqualsErr, act.String()))
			}
		}),
		"assertNull": check(func(c goja.FunctionCall) {
			if !goja.IsNull(c.Argument(0)) {
				throw(assert.NullErr)
			}
		}),
		"assertNotNull": check(func(c goja.FunctionCall) {
			if goja.IsNull(c.Argument(0)) {
				throw(assert.NotNullErr)
			}
		}),
		"assertUndefined": check(func(c goja.FunctionCall) {
			if !goja.IsUndefined(c.Argument(0)) {
				throw(assert.UndefinedErr)
			}
		}),
		"assertNotUndefined": check(func(c goja.FunctionCall) {
			if goja.IsUndefined(c.Argument(0)) {
				throw(assert.NotUndefinedErr)
			}
		}),
		"assertNaN": check(func(c goja.FunctionCall) {
			if !isNaN(c.Argument(0)) {
				throw(assert.NaNErr)
			}
		}),
		"assertNotNaN": check(func(c goja.FunctionCall) {
			if isNaN(c.Argument(0)) {
				throw(assert.NotNaNErr)
			}
		}),
		"fail": check(func(goja.FunctionCall) { throw(assert.FailErr) }),
	}
	for _, name := range assert.Names {
		if err := obj.Set(name, ff[name]); err != nil {
			return err
		}
	}
	return nil
}
