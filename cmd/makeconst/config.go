// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/makeconst/analyzer"
)

// configName is the name of the configuration file searched for.
const configName = ".makeconst.toml"

// Flag and configuration key names.
const (
	flagTests        = "tests"
	flagGenerated    = "generated"
	flagShortDecl    = "short-decl"
	flagConservative = "conservative"
	flagVerify       = "verify"
)

var errUnknownKey = errors.New("unknown configuration key")

// fileConfig is the content of a configuration file. Unset values keep their defaults.
type fileConfig struct {
	Tests        *bool `toml:"tests"`
	Generated    *bool `toml:"generated"`
	ShortDecl    *bool `toml:"short-decl"`
	Conservative *bool `toml:"conservative"`
	Verify       *bool `toml:"verify"`
}

// findConfig searches startDir and its parents for a configuration file.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// loadConfig decodes a configuration file, rejecting unknown keys.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("%s: %w %q", path, errUnknownKey, undecoded[0].String())
	}

	return cfg, nil
}

// flagLookup is the part of a flag set needed to override configuration values.
type flagLookup interface {
	Changed(name string) bool
	GetBool(name string) (bool, error)
}

// override replaces configuration values with flags given on the command line.
func (c *fileConfig) override(flags flagLookup) error {
	for _, f := range [...]struct {
		name  string
		value **bool
	}{
		{flagTests, &c.Tests},
		{flagGenerated, &c.Generated},
		{flagShortDecl, &c.ShortDecl},
		{flagConservative, &c.Conservative},
		{flagVerify, &c.Verify},
	} {
		if !flags.Changed(f.name) {
			continue
		}

		value, err := flags.GetBool(f.name)
		if err != nil {
			return err
		}

		*f.value = &value
	}

	return nil
}

// tests reports whether test files should be analyzed.
func (c fileConfig) tests() bool {
	return c.Tests != nil && *c.Tests
}

// options converts the configuration into analyzer options.
func (c fileConfig) options() analyzer.Options {
	var opts analyzer.Options

	opts = appendOption(opts, c.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, c.ShortDecl, analyzer.WithShortDecl)
	opts = appendOption(opts, c.Conservative, analyzer.WithConservative)
	opts = appendOption(opts, c.Verify, analyzer.WithVerify)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts analyzer.Options, value *T, constructor func(T) analyzer.Option) analyzer.Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
