// Copyright (c) 2022 Stephan Lukits. All rights reserved.
//  Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// indexer provides the methodIndexer-type whose only task it is to
// index the methods of a struct suite by their appearance in the
// suite's source file.

package unity

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

var indexer = methodIndexer{}

// methodIndexer provides *methods(suiteType)* which parses the source
// file a struct suite's methods are declared in and returns the names
// of the methods having the suite as receiver in order of their
// appearance.  Parsed files are cached.  These operations are
// concurrency save, e.g. while a file is parsed no other file may be
// parsed or retrieved.
type methodIndexer struct {
	mutex sync.Mutex
	files map[string]*ast.File
}

// methods returns the methods declared for given pointer to struct
// type in order of their appearance.  The returned slice is empty if
// the source file can't be determined or parsed.
func (i *methodIndexer) methods(typ reflect.Type) []string {
	file := sourceFile(typ)
	if file == "" {
		return nil
	}
	f := i.parsed(file)
	if f == nil {
		return nil
	}

	suite, mm := typ.Elem().Name(), []string{}
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil {
			continue
		}
		for _, field := range fd.Recv.List {
			if name, ok := receiverIdent(field.Type); ok && name == suite {
				mm = append(mm, fd.Name.Name)
			}
		}
	}
	return mm
}

// parsed returns the ast of the file with given name.
func (i *methodIndexer) parsed(name string) *ast.File {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	if f, ok := i.files[name]; ok {
		return f
	}
	if i.files == nil {
		i.files = map[string]*ast.File{}
	}
	f, err := parser.ParseFile(token.NewFileSet(), name, nil, 0)
	if err != nil {
		f = nil
	}
	i.files[name] = f
	return f
}

const autogenerated = "<autogenerated>"

// sourceFile determines the file declaring the first method of given
// pointer to struct type which isn't generated by the compiler.
func sourceFile(typ reflect.Type) string {
	name := typ.Elem().Name()
	for _, t := range []reflect.Type{typ.Elem(), typ} {
		for j := 0; j < t.NumMethod(); j++ {
			fn := runtime.FuncForPC(t.Method(j).Func.Pointer())
			if fn == nil || !isReceiver(fn.Name(), name) {
				continue
			}
			file, _ := fn.FileLine(fn.Entry())
			if file == "" || file == autogenerated ||
				!strings.HasSuffix(file, ".go") {
				continue
			}
			return file
		}
	}
	return ""
}

// isReceiver reports if given qualified function name denotes a method
// of the type with given name, e.g. "pkg.(*Suite).TestA".
func isReceiver(fn, typ string) bool {
	return strings.Contains(fn, "(*"+typ+").") ||
		strings.Contains(fn, "."+typ+".")
}

// receiverIdent returns a function's receiver field type's identifier
// name if there is any.
func receiverIdent(fldType ast.Expr) (string, bool) {
	if ident, ok := fldType.(*ast.Ident); ok {
		return ident.Name, true
	}

	starExpr, ok := fldType.(*ast.StarExpr)
	if !ok {
		return "", false
	}
	ident, ok := starExpr.X.(*ast.Ident)
	if !ok {
		return "", false
	}

	return ident.Name, true
}
