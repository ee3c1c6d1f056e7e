// Package unity is a minimal unit-testing harness: given a suite
// expressed in one of several loose shapes it discovers the suite's
// tests, runs them in order with optional setUp and tearDown hooks and
// reports pass and fail results.
//
// A suite-like value is one of
//
//   - invocable: a func(*Registrar) registering tests and hooks by
//     direct reference, or a JavaScript function whose body declares
//     the tests and hooks;
//   - an ordered sequence of test names: a []string resolved in the
//     [Unity.Scope], or a JavaScript array resolved in its runtime's
//     global object;
//   - a keyed structure: a map of named members, a pointer to a struct
//     whose methods are the members, or a JavaScript object;
//   - source text: JavaScript declaring the tests and hooks as
//     top-level functions.
//
// Every form is normalized to the canonical [Suite].  Tests are
// discovered by their name starting with "test" while the hooks are
// named exactly "setUp" and "tearDown".  A struct suite's methods are
// reported with a lower-cased first rune, i.e.
//
//	type Arithmetic struct{ x int }
//
//	func (s *Arithmetic) SetUp(t *unity.T) { s.x = 1 }
//
//	func (s *Arithmetic) TestAdd(t *unity.T) { t.Equals(2, s.x+1) }
//
//	u := &unity.Unity{Logger: log.Println}
//	u.Run(&Arithmetic{})
//
// logs
//
//	1 tests found
//	[PASSED] testAdd
//	1 tests passed
//	0 tests failed
//
// The same suite as source text is
//
//	u.Run(unity.Source(`
//	    var x;
//	    function setUp() { x = 1; }
//	    function testAdd() { assertEquals(2, x + 1); }
//	`))
//
// Each test runs setUp, the test and tearDown in this order.  Whatever
// of them raises fails the test; the failure is logged and the run
// continues with the next test.  A value which can't be normalized is
// reported by logging "[ERROR] Invalid test suite: <cause>" and Run
// returns nil.
//
// [RunGo] runs a suite's tests as sub-tests of a go test and [Install]
// provides the harness to JavaScript as the global jsUnity object.
package unity
