// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dop251/goja"
	"golang.org/x/sync/errgroup"
)

// suiteFile is a loaded suite file.  Program is only set for files
// run in script mode.
type suiteFile struct {
	Path    string
	Source  string
	Program *goja.Program
}

// glob returns the sorted and deduplicated JavaScript files matching
// given doublestar patterns.
func glob(patterns []string) ([]string, error) {
	seen, paths := map[string]bool{}, []string{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || !strings.HasSuffix(m, ".js") {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// load reads the files of given paths concurrently and compiles them
// if they are run as scripts.  The returned files are in the order of
// given paths.
func load(
	ctx context.Context, paths []string, compile bool,
) ([]suiteFile, error) {
	files := make([]suiteFile, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			bb, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read suite: %w", err)
			}
			files[i] = suiteFile{Path: path, Source: string(bb)}
			if !compile {
				return nil
			}
			prg, err := goja.Compile(filepath.Base(path), string(bb), false)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidSuite, path, err)
			}
			files[i].Program = prg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
