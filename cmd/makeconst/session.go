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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// session holds the resolved settings of a command invocation.
type session struct {
	dir     string
	config  fileConfig
	logger  *slog.Logger
	printer *printer
}

// session resolves flags and the configuration file for cmd.
func (g *globalFlags) session(cmd *cobra.Command) (*session, error) {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	colored, err := useColor(g.color, stdout)
	if err != nil {
		return nil, err
	}

	dir, err := workingDir(g.dir)
	if err != nil {
		return nil, err
	}

	config, err := g.loadConfig(dir, logger)
	if err != nil {
		return nil, err
	}

	if err := config.override(cmd.Flags()); err != nil {
		return nil, err
	}

	logger.Debug("Settings", "dir", dir, "tests", config.tests(), slog.Any("options", config.options()))

	return &session{
		dir:     dir,
		config:  config,
		logger:  logger,
		printer: newPrinter(stdout, colored),
	}, nil
}

func (g *globalFlags) loadConfig(dir string, logger *slog.Logger) (fileConfig, error) {
	path := g.config
	if path == "" {
		found, ok, err := findConfig(dir)
		if err != nil || !ok {
			return fileConfig{}, err
		}

		path = found
	}

	logger.Debug("Loading configuration", "file", path)

	return loadConfig(path)
}

func workingDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid directory %q: %w", dir, err)
	}

	return abs, nil
}

// relative returns name relative to the session directory, when it is inside.
func (s *session) relative(name string) string {
	rel, err := filepath.Rel(s.dir, name)
	if err != nil || !filepath.IsLocal(rel) {
		return name
	}

	return rel
}
