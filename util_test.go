// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"reflect"
	"testing"
)

type fixtures struct{}

func (s *fixtures) TestGetReturnsSetFixture(t *T) {
	ff := Fixtures{}
	ff.Set(t, 42)
	t.Equals(42, ff.Get(t))
	t.Equals(1, ff.Len())
}

func (s *fixtures) TestDelRemovesFixture(t *T) {
	ff := Fixtures{}
	ff.Set(t, "fixture")
	t.Equals("fixture", ff.Del(t))
	t.Undefined(ff.Get(t))
	t.Equals(0, ff.Len())
}

func (s *fixtures) TestFixturesAreSeparatedByTest(t *T) {
	ff, other := Fixtures{}, &T{name: "other"}
	ff.Set(t, 1)
	ff.Set(other, 2)
	t.Equals(1, ff.Get(t))
	t.Equals(2, ff.Get(other))
}

func (s *fixtures) TestZeroValueIsReadyToUse(t *T) {
	var ff Fixtures
	t.Undefined(ff.Get(t))
	t.Undefined(ff.Del(t))
	ff.Set(t, "fixture")
	t.Equals("fixture", ff.Get(t))
}

func TestFixtures(t *testing.T) { RunGo(&fixtures{}, t) }

type indexing struct{}

func (s *indexing) TestIndexesMethodsOfAStructSuite(t *T) {
	t.Equals([]string{"TestIndexesMethodsOfAStructSuite",
		"TestIsEmptyWithoutMethods", "TestMapsNamesToIdentifiers"},
		indexer.methods(reflect.TypeOf(s)))
}

func (s *indexing) TestIsEmptyWithoutMethods(t *T) {
	t.Equals(0, len(indexer.methods(reflect.TypeOf(&struct{}{}))))
}

func (s *indexing) TestMapsNamesToIdentifiers(t *T) {
	t.Equals("testA", lowerFirst("TestA"))
	t.Equals("setUp", lowerFirst("SetUp"))
	t.Equals("", lowerFirst(""))
}

func TestIndexing(t *testing.T) { RunGo(&indexing{}, t) }
