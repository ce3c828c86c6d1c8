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

// Package verify re-type-checks a package with planned rewrites applied.
//
// A variable turned into a typed constant is evaluated at compile time wherever it is used in
// another constant expression, so conversions, shifts and divisions that were valid at run time
// may become compile errors. The [Checker] rejects such rewrites.
package verify

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/makeconst/internal/rewrite"
)

// ErrBaseline is returned when the unmodified package can't be type-checked again.
var ErrBaseline = errors.New("package does not type-check")

// File is a source file of the checked package.
type File struct {
	// TokenFile is the file in the file set the edits refer to.
	TokenFile *token.File

	// Src is the unmodified content of the file.
	Src []byte
}

// Checker tracks accepted edits of a package and verifies new ones against them.
type Checker struct {
	conf   types.Config
	path   string
	fset   *token.FileSet
	files  []File
	parsed []*ast.File
	edits  [][]analysis.TextEdit
}

// NewChecker parses and type-checks the unmodified package once. It returns [ErrBaseline] when that fails,
// for example when an import can't be resolved from pkg's dependencies.
func NewChecker(ctx context.Context, pkg *types.Package, sizes types.Sizes, files []File) (*Checker, error) {
	defer trace.StartRegion(ctx, "Baseline").End()

	c := &Checker{
		conf: types.Config{
			Importer:  newImporter(pkg),
			Sizes:     sizes,
			GoVersion: pkg.GoVersion(),
		},
		path:   pkg.Path(),
		fset:   token.NewFileSet(),
		files:  files,
		parsed: make([]*ast.File, len(files)),
		edits:  make([][]analysis.TextEdit, len(files)),
	}

	for i, f := range files {
		parsed, err := c.parse(f.TokenFile.Name(), f.Src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBaseline, err)
		}

		c.parsed[i] = parsed
	}

	if _, err := c.conf.Check(c.path, c.fset, c.parsed, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseline, err)
	}

	return c, nil
}

// Accept returns for each plan of file index whether it keeps the package well-typed, together with all
// plans accepted before. Accepted plans are remembered.
func (c *Checker) Accept(ctx context.Context, index int, plans [][]analysis.TextEdit) []bool {
	defer trace.StartRegion(ctx, "Verify").End()

	accepted := make([]bool, len(plans))
	if len(plans) == 0 {
		return accepted
	}

	// Usually all plans of a file are fine together
	if all := slices.Concat(plans...); c.try(ctx, index, all) == nil {
		for i := range accepted {
			accepted[i] = true
		}

		return accepted
	}

	name := c.files[index].TokenFile.Name()
	for i, plan := range plans {
		if err := c.try(ctx, index, plan); err != nil {
			trace.Logf(ctx, "verify", "%s: rejected rewrite %d: %v", name, i, err)

			continue
		}

		accepted[i] = true
	}

	return accepted
}

// try type-checks the package with edits added to file index and keeps them on success.
func (c *Checker) try(ctx context.Context, index int, edits []analysis.TextEdit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := c.files[index]
	combined := slices.Concat(c.edits[index], edits)

	src, err := rewrite.Splice(f.TokenFile, f.Src, combined)
	if err != nil {
		return err
	}

	parsed, err := c.parse(f.TokenFile.Name(), src)
	if err != nil {
		return err
	}

	files := slices.Clone(c.parsed)
	files[index] = parsed

	if _, err := c.conf.Check(c.path, c.fset, files, nil); err != nil {
		return err
	}

	c.parsed[index], c.edits[index] = parsed, combined

	return nil
}

func (c *Checker) parse(name string, src []byte) (*ast.File, error) {
	return parser.ParseFile(c.fset, name, src, parser.SkipObjectResolution)
}
