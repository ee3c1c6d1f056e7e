// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dop251/goja"
	"github.com/urfave/cli/v2"

	"github.com/slukits/unity"
)

// run runs the suite files of given command invocation one after
// another in the order of their paths and reports to given writer.
func run(c *cli.Context, out io.Writer) error {
	cfg, err := NewConfig(c)
	if err != nil {
		return err
	}
	paths, err := glob(cfg.Patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no suite files match %v", cfg.Patterns)
	}
	files, err := load(c.Context, paths, cfg.Mode == modeScript)
	if err != nil {
		return err
	}

	report := NewReport()
	for _, f := range files {
		if cfg.Format == formatText {
			fmt.Fprintf(out, "%s:\n", f.Path)
		}
		logger := func(args ...interface{}) {
			if cfg.Format == formatText {
				fmt.Fprintln(out, args...)
			}
		}
		u := cfg.Unity(logger)
		if cfg.Mode == modeScript {
			report.Add(runScript(u, f))
			continue
		}
		report.Add(runSuite(u, f))
	}

	if err := report.Write(out, cfg.Format); err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		if err := report.WriteMetrics(cfg.MetricsFile); err != nil {
			return err
		}
	}
	return report.Err()
}

// runSuite runs given file's source as suite.
func runSuite(u *unity.Unity, f suiteFile) []SuiteReport {
	s, err := u.Normalize(unity.Source(f.Source))
	if err != nil {
		u.Logger("[ERROR] Invalid test suite: " + err.Error())
		return []SuiteReport{{File: f.Path, Error: err.Error()}}
	}
	return []SuiteReport{newSuiteReport(f.Path, u.Run(s))}
}

// runScript evaluates given file's program in a runtime providing the
// jsUnity object whose run function is instrumented to report each of
// its runs.
func runScript(u *unity.Unity, f suiteFile) (rr []SuiteReport) {
	vm := goja.New()
	if err := unity.Install(vm, u); err != nil {
		return []SuiteReport{{File: f.Path, Error: err.Error()}}
	}
	ns := vm.Get(unity.Namespace).ToObject(vm)
	run, _ := goja.AssertFunction(ns.Get("run"))
	err := ns.Set("run", func(call goja.FunctionCall) goja.Value {
		v, err := run(call.This, call.Arguments...)
		if err != nil {
			panic(err)
		}
		rr = append(rr, scriptReport(f.Path, v))
		return v
	})
	if err != nil {
		return []SuiteReport{{File: f.Path, Error: err.Error()}}
	}

	if _, err := vm.RunProgram(f.Program); err != nil {
		var ex *goja.Exception
		if errors.As(err, &ex) && ex.Value() != nil {
			err = errors.New(ex.Value().String())
		}
		rr = append(rr, SuiteReport{File: f.Path, Error: err.Error()})
	}
	if len(rr) == 0 {
		rr = append(rr, SuiteReport{File: f.Path,
			Error: "script didn't run a suite"})
	}
	return rr
}

// scriptReport translates the value returned by jsUnity.run.
func scriptReport(path string, v goja.Value) SuiteReport {
	obj, ok := v.(*goja.Object)
	if !ok {
		return SuiteReport{File: path, Error: "invalid test suite"}
	}
	summary := &unity.RunSummary{
		Total:  int(obj.Get("total").ToInteger()),
		Passed: int(obj.Get("passed").ToInteger()),
		Failed: int(obj.Get("failed").ToInteger()),
	}
	if n := obj.Get("name"); n != nil && !goja.IsUndefined(n) {
		summary.Name = n.String()
	}
	return newSuiteReport(path, summary)
}
