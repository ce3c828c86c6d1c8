// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/makeconst/internal/astutil"
	"fillmore-labs.com/makeconst/internal/config"
	"fillmore-labs.com/makeconst/internal/detect"
	"fillmore-labs.com/makeconst/internal/report"
	"fillmore-labs.com/makeconst/internal/rewrite"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the makeconst analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("makeconst: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "MakeConst")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	d := detect.Detector{
		Info:         p.TypesInfo,
		ShortDecl:    r.Behavior.Enabled(config.ShortDeclarations),
		Conservative: r.Behavior.Enabled(config.Conservative),
	}

	var v *verification
	if r.Behavior.Enabled(config.Verify) {
		v = newVerification(p)
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.HasNoLintDoc(file.Doc) {
			continue
		}

		// Stage 1 and 2: Detect candidates and plan their rewrites
		findings := collect(ctx, p, d, f, currentFile)

		// Stage 3: Verify the rewrites keep the package valid
		findings = v.filter(ctx, file, findings)

		// Stage 4: Generate diagnostics with suggested fixes
		report.Report(ctx, p, findings)
	}

	return nil, nil
}

// collect returns the planned rewrites of all candidates in a file.
func collect(ctx context.Context, p *analysis.Pass, d detect.Detector, f inspector.Cursor, currentFile astutil.CurrentFile) []report.Finding {
	planner := rewrite.Planner{Pkg: p.Pkg, Info: p.TypesInfo, File: currentFile.File()}

	var findings []report.Finding

	// Loop over all function declarations and function literals outside of them,
	// as in package-level initializers. Each is a separate region.
	f.Inspect([]ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)}, func(c inspector.Cursor) bool {
		var body inspector.Cursor

		switch fun := c.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions without body or with nolint comment
			if fun.Body == nil || astutil.HasNoLintDoc(fun.Doc) {
				return false
			}

			body = c.ChildAt(edge.FuncDecl_Body, -1)

		case *ast.FuncLit:
			body = c.ChildAt(edge.FuncLit_Body, -1)

		default:
			return true
		}

		for _, candidate := range d.Candidates(ctx, body) {
			stmt := candidate.Node()

			if currentFile.NoLintComment(stmt.End()) {
				continue
			}

			edits, err := planner.Plan(stmt)
			switch {
			case err == nil:
				findings = append(findings, report.Finding{Stmt: stmt, Edits: edits})

			case errors.Is(err, rewrite.ErrNotExpressible):
				trace.Logf(ctx, "plan", "%s: %v", p.Fset.Position(stmt.Pos()), err)

			default:
				astutil.InternalError(p, stmt, "Can't plan rewrite: %v", err)
			}
		}

		return false // nested function literals are part of this region
	})

	return findings
}
