// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "UNITY"

// Flag names.
const (
	ConfigFileFlag  = "config"
	ModeFlag        = "mode"
	ScannerFlag     = "scanner"
	TearDownFlag    = "teardown"
	PrefixFlag      = "prefix"
	FormatFlag      = "format"
	MetricsFileFlag = "metrics-file"
)

func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

// newFlags creates the command's flags.  urfave/cli stores a value read
// from the environment in its flag, hence every app needs its own.
func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ConfigFileFlag,
			EnvVars: prefixEnvVar("CONFIG"),
			Usage:   "Path to a TOML config file (eg. 'unity.toml')",
		},
		&cli.StringFlag{
			Name:    ModeFlag,
			Value:   modeSuite,
			EnvVars: prefixEnvVar("MODE"),
			Usage: "How files are run: 'suite' runs a file's functions " +
				"as suite, 'script' evaluates a file calling jsUnity.run",
		},
		&cli.StringFlag{
			Name:    ScannerFlag,
			Value:   "treesitter",
			EnvVars: prefixEnvVar("SCANNER"),
			Usage:   "Declaration scanner of suite source: 'treesitter' or 'regex'",
		},
		&cli.StringFlag{
			Name:    TearDownFlag,
			Value:   tearDownCompat,
			EnvVars: prefixEnvVar("TEARDOWN"),
			Usage: "tearDown policy: 'compat' tears down again after " +
				"any failure, 'once' tears down at most once per test",
		},
		&cli.StringFlag{
			Name:    PrefixFlag,
			Value:   "test",
			EnvVars: prefixEnvVar("PREFIX"),
			Usage:   "Name prefix identifying tests",
		},
		&cli.StringFlag{
			Name:    FormatFlag,
			Value:   formatText,
			EnvVars: prefixEnvVar("FORMAT"),
			Usage:   "Report format: 'text', 'table' or 'json'",
		},
		&cli.StringFlag{
			Name:    MetricsFileFlag,
			EnvVars: prefixEnvVar("METRICS_FILE"),
			Usage:   "Path of a prometheus text file the run's metrics are written to",
		},
	}
}
