// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// unity runs JavaScript test suites:
//
//	unity [flags] PATTERN...
//
// Each file matching one of the given doublestar patterns is run as a
// suite.  In suite mode a file's top-level function declarations are
// the suite; in script mode a file is evaluated with the global jsUnity
// object and runs its suites itself.  unity exits with 0 if all tests
// passed, 1 if a test failed and 2 if a suite was invalid or the
// command was misused.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Exit codes.
const (
	Success     = 0 // all tests passed
	TestFailure = 1 // a test failed
	RuntimeErr  = 2 // invalid suite, unreadable file or usage error
)

var (
	// ErrTestsFailed is returned by a run with failed tests.
	ErrTestsFailed = errors.New("tests failed")

	// ErrInvalidSuite is returned by a run with a suite which couldn't
	// be run.
	ErrInvalidSuite = errors.New("invalid suite")
)

var Version = "v0.1.0"

func main() {
	app := newApp(os.Stdout, os.Stderr, os.Exit)
	if err := app.Run(os.Args); err != nil {
		os.Exit(exitCode(err))
	}
}

// newApp creates the unity command reporting to given writers and
// exiting through given function.
func newApp(out, errOut io.Writer, exit func(int)) *cli.App {
	app := cli.NewApp()
	app.Name = "unity"
	app.Version = Version
	app.Usage = "run JavaScript unit test suites"
	app.ArgsUsage = "PATTERN..."
	app.Flags = newFlags()
	app.Writer, app.ErrWriter = out, errOut
	app.Action = func(c *cli.Context) error {
		return run(c, out)
	}
	app.ExitErrHandler = func(c *cli.Context, err error) {
		if err == nil {
			return
		}
		fmt.Fprintf(errOut, "unity: %v\n", err)
		exit(exitCode(err))
	}
	return app
}

// exitCode maps the error of a run to the command's exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrTestsFailed):
		return TestFailure
	}
	return RuntimeErr
}
