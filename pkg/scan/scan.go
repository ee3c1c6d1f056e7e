// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scan discovers the names of function declarations in
// JavaScript source text.  Two scanners are provided: [Regex] matches
// declaration headers with a pattern and must not be fed source
// containing comments; [TreeSitter] parses the source and reports only
// top-level declarations.
package scan

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ErrSyntax is wrapped by errors of scanners which parse given source
// and find it malformed.
var ErrSyntax = errors.New("scan: syntax error")

// Scanner reports the names of the function declarations of given
// JavaScript source in order of their appearance.
type Scanner interface {

	// Names returns the declared function names found in src.
	Names(src string) ([]string, error)

	// CommentAware is true iff comments in scanned source can't
	// produce or hide declarations.
	CommentAware() bool
}

// Regex is the naive pattern scanner: every "function <name>" header
// anywhere in the text is a declaration, nested ones included.
type Regex struct{}

var reFunction = regexp.MustCompile(`function\s+([^(]+)`)

// Names returns the names of all "function <name>" headers of src.
func (Regex) Names(src string) ([]string, error) {
	nn := []string{}
	for _, m := range reFunction.FindAllStringSubmatch(src, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		nn = append(nn, name)
	}
	return nn, nil
}

// CommentAware returns false.
func (Regex) CommentAware() bool { return false }

// TreeSitter parses given source with the tree-sitter javascript
// grammar and reports the names of the program's top-level function
// (and generator function) declarations.  Comments are syntax nodes of
// their own hence they neither add nor hide declarations.
type TreeSitter struct{}

const (
	nodeFunction  = "function_declaration"
	nodeGenerator = "generator_function_declaration"
)

// Names returns the names of src's top-level function declarations.
func (TreeSitter) Names(src string) ([]string, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	source := []byte(src)
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("scan: tree-sitter: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w at %s", ErrSyntax, errorPosition(root))
	}

	nn := []string{}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case nodeFunction, nodeGenerator:
		default:
			continue
		}
		name := child.ChildByFieldName("name")
		if name == nil {
			continue
		}
		nn = append(nn, name.Content(source))
	}
	return nn, nil
}

// CommentAware returns true.
func (TreeSitter) CommentAware() bool { return true }

// errorPosition reports the 1-based line:column of the first error
// node below given node.
func errorPosition(n *sitter.Node) string {
	var first *sitter.Node
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if first != nil {
			return
		}
		if n.IsError() || n.IsMissing() {
			first = n
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(n)
	if first == nil {
		return "unknown position"
	}
	p := first.StartPoint()
	return fmt.Sprintf("%d:%d", p.Row+1, p.Column+1)
}

// ByName returns the scanner with given name which is either "regex"
// or "treesitter".
func ByName(name string) (Scanner, error) {
	switch strings.ToLower(name) {
	case "regex":
		return Regex{}, nil
	case "treesitter", "tree-sitter", "":
		return TreeSitter{}, nil
	}
	return nil, fmt.Errorf("scan: unknown scanner %q", name)
}
