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
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/token"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/makeconst/analyzer"
)

var errLoad = errors.New("package errors")

// finding is a diagnostic together with its resolved position.
type finding struct {
	position   token.Position
	diagnostic analysis.Diagnostic
	fset       *token.FileSet
}

// analyze loads the packages matching patterns and runs the analyzer on them.
// Diagnostics reported for a file in several package variants are returned once.
func (s *session) analyze(ctx context.Context, patterns []string) ([]finding, error) {
	ctx, task := trace.NewTask(ctx, "Analyze")
	defer task.End()

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.LoadSyntax | packages.NeedModule,
		Dir:     s.dir,
		Tests:   s.config.tests(),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	if n := s.logErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("%w: %d in loaded packages", errLoad, n)
	}

	opts := s.config.options()
	s.logger.Debug("Running analyzer", "packages", len(pkgs), "options", opts)

	graph, err := checker.Analyze([]*analysis.Analyzer{analyzer.New(opts)}, pkgs, nil)
	if err != nil {
		return nil, err
	}

	type key struct {
		filename string
		offset   int
	}

	var (
		findings []finding
		errs     []error
		seen     = make(map[key]struct{})
	)

	for _, act := range graph.Roots {
		if act.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err))

			continue
		}

		for _, d := range act.Diagnostics {
			position := act.Package.Fset.Position(d.Pos)

			k := key{position.Filename, position.Offset}
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}

			position.Filename = s.relative(position.Filename)
			findings = append(findings, finding{position: position, diagnostic: d, fset: act.Package.Fset})
		}
	}

	slices.SortFunc(findings, func(a, b finding) int {
		return cmp.Or(
			cmp.Compare(a.position.Filename, b.position.Filename),
			cmp.Compare(a.position.Offset, b.position.Offset),
		)
	})

	return findings, errors.Join(errs...)
}

// logErrors logs errors of pkgs and their dependencies and returns their number.
func (s *session) logErrors(pkgs []*packages.Package) int {
	var n int

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, err := range pkg.Errors {
			s.logger.Error("Package error", "package", pkg.PkgPath, "error", err)
			n++
		}
	})

	return n
}
