// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slukits/unity/pkg/scan"
)

const suite = `
// function testLine() {}
function setUp() {}
/* function testBlock() {} */
function testA() {
	function testNested() {}
}
function* testGenerator() {}
var testExpression = function () {};
function tearDown() {}
`

func TestTreeSitterReportsTopLevelDeclarations(t *testing.T) {
	names, err := scan.TreeSitter{}.Names(suite)
	require.NoError(t, err)
	require.Equal(t, []string{"setUp", "testA", "testGenerator", "tearDown"},
		names)
	require.True(t, scan.TreeSitter{}.CommentAware())
}

func TestTreeSitterFailsOnSyntaxErrors(t *testing.T) {
	_, err := scan.TreeSitter{}.Names("function testA( {\n}")
	require.Error(t, err)
	require.True(t, errors.Is(err, scan.ErrSyntax))
	require.Contains(t, err.Error(), "at 1:")
}

func TestTreeSitterReportsNothingForEmptySource(t *testing.T) {
	names, err := scan.TreeSitter{}.Names("")
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestRegexReportsEveryHeader(t *testing.T) {
	names, err := scan.Regex{}.Names(suite)
	require.NoError(t, err)
	require.Equal(t, []string{"testLine", "setUp", "testBlock", "testA",
		"testNested", "tearDown"}, names)
	require.False(t, scan.Regex{}.CommentAware())
}

func TestByName(t *testing.T) {
	for name, exp := range map[string]scan.Scanner{
		"":           scan.TreeSitter{},
		"treesitter": scan.TreeSitter{},
		"TreeSitter": scan.TreeSitter{},
		"regex":      scan.Regex{},
	} {
		got, err := scan.ByName(name)
		require.NoError(t, err)
		require.Equal(t, exp, got)
	}
	_, err := scan.ByName("lexer")
	require.Error(t, err)
}
