// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/slukits/unity"
)

// SuiteReport is the result of one suite run of a suite file.  Error is
// set iff the suite was invalid.
type SuiteReport struct {
	File     string          `json:"file"`
	Name     string          `json:"name,omitempty"`
	Error    string          `json:"error,omitempty"`
	Total    int             `json:"total"`
	Passed   int             `json:"passed"`
	Failed   int             `json:"failed"`
	Outcomes []unity.Outcome `json:"outcomes,omitempty"`
}

func newSuiteReport(path string, s *unity.RunSummary) SuiteReport {
	return SuiteReport{File: path, Name: s.Name, Total: s.Total,
		Passed: s.Passed, Failed: s.Failed, Outcomes: s.Outcomes}
}

// Valid reports if the suite could be run.
func (r SuiteReport) Valid() bool { return r.Error == "" }

// Report aggregates the suite reports of a run.
type Report struct {
	RunID   string        `json:"run_id"`
	Suites  []SuiteReport `json:"suites"`
	Total   int           `json:"total"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Invalid int           `json:"invalid"`
}

// NewReport creates an empty report with a new run id.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString(), Suites: []SuiteReport{}}
}

// Add adds given suite reports to the report's totals.
func (r *Report) Add(rr []SuiteReport) {
	for _, s := range rr {
		r.Suites = append(r.Suites, s)
		if !s.Valid() {
			r.Invalid++
			continue
		}
		r.Total += s.Total
		r.Passed += s.Passed
		r.Failed += s.Failed
	}
}

// Err returns ErrInvalidSuite if a suite was invalid, ErrTestsFailed
// if a test failed and nil otherwise.
func (r *Report) Err() error {
	switch {
	case r.Invalid > 0:
		return fmt.Errorf("%w: %d of %d", ErrInvalidSuite, r.Invalid,
			len(r.Suites))
	case r.Failed > 0:
		return fmt.Errorf("%w: %d of %d", ErrTestsFailed, r.Failed,
			r.Total)
	}
	return nil
}

// Write writes the report in given format to given writer.  The text
// format's log lines are written while suites run, hence only a
// closing total is written.
func (r *Report) Write(out io.Writer, format string) error {
	switch format {
	case formatTable:
		r.table(out)
		return nil
	case formatJSON:
		bb, err := r.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bb))
		return err
	}
	_, err := fmt.Fprintf(out, "%d suites, %d tests, %d passed, "+
		"%d failed, %d invalid\n", len(r.Suites), r.Total, r.Passed,
		r.Failed, r.Invalid)
	return err
}

// JSON returns the report's canonical JSON (RFC 8785) serialization.
func (r *Report) JSON() ([]byte, error) {
	bb, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return jsoncanonicalizer.Transform(bb)
}

func (r *Report) table(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("Run %s", r.RunID))
	t.AppendHeader(table.Row{
		"File", "Suite", "Test", "Result", "Phase", "Payload"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	for _, s := range r.Suites {
		if !s.Valid() {
			t.AppendRow(table.Row{s.File, s.Name, "", "INVALID", "",
				s.Error})
			t.AppendSeparator()
			continue
		}
		for _, o := range s.Outcomes {
			result, phase := "PASS", ""
			if !o.Passed {
				result, phase = "FAIL", string(o.Phase)
			}
			t.AppendRow(table.Row{s.File, s.Name, o.Test, result, phase,
				o.Payload})
		}
		t.AppendRow(table.Row{s.File, s.Name, "", fmt.Sprintf(
			"%d/%d", s.Passed, s.Total), "", ""})
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{"TOTAL", strconv.Itoa(len(r.Suites)) +
		" suites", strconv.Itoa(r.Total) + " tests", fmt.Sprintf("%d/%d",
		r.Passed, r.Total), "", fmt.Sprintf("%d invalid", r.Invalid)})
	if r.Err() != nil {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.Render()
}

// WriteMetrics writes the report's test counts in the prometheus text
// format to given file, e.g. for node exporter's textfile collector.
func (r *Report) WriteMetrics(path string) error {
	reg := prometheus.NewRegistry()
	tests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unity",
		Name:      "tests_total",
		Help:      "Number of run tests by suite file and result.",
	}, []string{"file", "result"})
	suites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unity",
		Name:      "suites_total",
		Help:      "Number of run suites by validity.",
	}, []string{"valid"})
	reg.MustRegister(tests, suites)

	for _, s := range r.Suites {
		suites.WithLabelValues(strconv.FormatBool(s.Valid())).Inc()
		if !s.Valid() {
			continue
		}
		tests.WithLabelValues(s.File, "passed").Add(float64(s.Passed))
		tests.WithLabelValues(s.File, "failed").Add(float64(s.Failed))
	}
	return prometheus.WriteToTextfile(path, reg)
}
