// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

// Fixtures maps the T instance of a test run to its fixture.  Its zero
// value is ready to use.  A Fixtures storage is typically used to set
// up test specific fixtures in a suite's setUp hook which are released
// by its tearDown hook since the same T instance is passed to the hooks
// and the test of one test run:
//
//	type MySuite struct{ fx Fixtures }
//
//	func (s *MySuite) SetUp(t *unity.T) {
//	    s.fx.Set(t, fmt.Sprintf("%s's fixture", t.Name()))
//	}
//
//	func (s *MySuite) TestFixture(t *unity.T) {
//	    t.Equals("testFixture's fixture", s.fx.Get(t))
//	}
//
//	func (s *MySuite) TearDown(t *unity.T) { s.fx.Del(t) }
type Fixtures map[*T]interface{}

// Set maps given test run to given fixture.
func (ff *Fixtures) Set(t *T, fixture interface{}) {
	if *ff == nil {
		*ff = Fixtures{}
	}
	(*ff)[t] = fixture
}

// Get returns the fixture of given test run.
func (ff Fixtures) Get(t *T) interface{} { return ff[t] }

// Del removes the fixture of given test run and returns it.
func (ff Fixtures) Del(t *T) interface{} {
	fixture := ff[t]
	delete(ff, t)
	return fixture
}

// Len returns the number of stored fixtures.
func (ff Fixtures) Len() int { return len(ff) }
