// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/slukits/unity"
	"github.com/slukits/unity/pkg/scan"
)

const (
	modeSuite  = "suite"
	modeScript = "script"

	tearDownOnce   = "once"
	tearDownCompat = "compat"

	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

// Config is the configuration of a run.  It is read from an optional
// TOML file whose values are overwritten by explicitly set flags.
type Config struct {
	Mode        string   `toml:"mode"`
	Scanner     string   `toml:"scanner"`
	TearDown    string   `toml:"teardown"`
	Prefix      string   `toml:"prefix"`
	Format      string   `toml:"format"`
	MetricsFile string   `toml:"metrics_file"`
	Patterns    []string `toml:"patterns"`
}

// NewConfig creates the configuration of given command invocation.
// Given arguments are appended to the patterns of the config file.
func NewConfig(c *cli.Context) (*Config, error) {
	cfg := &Config{
		Mode:     c.String(ModeFlag),
		Scanner:  c.String(ScannerFlag),
		TearDown: c.String(TearDownFlag),
		Prefix:   c.String(PrefixFlag),
		Format:   c.String(FormatFlag),
	}
	if path := c.String(ConfigFileFlag); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{ModeFlag, &cfg.Mode},
		{ScannerFlag, &cfg.Scanner},
		{TearDownFlag, &cfg.TearDown},
		{PrefixFlag, &cfg.Prefix},
		{FormatFlag, &cfg.Format},
		{MetricsFileFlag, &cfg.MetricsFile},
	} {
		if c.IsSet(f.name) {
			*f.dst = c.String(f.name)
		}
	}
	cfg.Patterns = append(cfg.Patterns, c.Args().Slice()...)
	return cfg, cfg.Check()
}

// Check validates the configuration's values.
func (cfg *Config) Check() error {
	switch cfg.Mode {
	case modeSuite, modeScript:
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	switch cfg.TearDown {
	case tearDownOnce, tearDownCompat:
	default:
		return fmt.Errorf("unknown teardown policy %q", cfg.TearDown)
	}
	switch cfg.Format {
	case formatText, formatTable, formatJSON:
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if _, err := scan.ByName(cfg.Scanner); err != nil {
		return err
	}
	if len(cfg.Patterns) == 0 {
		return fmt.Errorf("no suite file pattern given")
	}
	return nil
}

// Unity creates the suite runner of the configuration logging to given
// logger.
func (cfg *Config) Unity(logger func(...interface{})) *unity.Unity {
	scanner, _ := scan.ByName(cfg.Scanner)
	u := &unity.Unity{
		Logger:     logger,
		Scanner:    scanner,
		Convention: unity.Convention{Prefix: cfg.Prefix},
	}
	if cfg.TearDown == tearDownOnce {
		u.TearDown = unity.TearDownOnce
	}
	return u
}
