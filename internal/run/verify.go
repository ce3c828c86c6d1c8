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

package run

import (
	"context"
	"go/ast"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/makeconst/internal/report"
	"fillmore-labs.com/makeconst/internal/verify"
)

// verification lazily sets up a [verify.Checker] for the package of a pass.
type verification struct {
	p       *analysis.Pass
	checker *verify.Checker
	index   map[*ast.File]int
	done    bool
}

func newVerification(p *analysis.Pass) *verification {
	return &verification{p: p}
}

// filter returns the findings of file whose rewrites keep the package well-typed.
// When the package can't be checked again all findings are kept.
func (v *verification) filter(ctx context.Context, file *ast.File, findings []report.Finding) []report.Finding {
	if v == nil || len(findings) == 0 {
		return findings
	}

	if !v.done {
		v.checker, v.index = v.setup(ctx)
		v.done = true
	}

	index, ok := v.index[file]
	if v.checker == nil || !ok {
		return findings
	}

	plans := make([][]analysis.TextEdit, len(findings))
	for i, f := range findings {
		plans[i] = f.Edits
	}

	accepted := v.checker.Accept(ctx, index, plans)

	verified := findings[:0]
	for i, f := range findings {
		if accepted[i] {
			verified = append(verified, f)
		}
	}

	return verified
}

func (v *verification) setup(ctx context.Context) (*verify.Checker, map[*ast.File]int) {
	p := v.p

	files := make([]verify.File, 0, len(p.Files))
	index := make(map[*ast.File]int, len(p.Files))

	for i, file := range p.Files {
		tf := p.Fset.File(file.FileStart)
		if tf == nil {
			return nil, nil
		}

		src, err := readFile(p, tf.Name())
		if err != nil {
			trace.Logf(ctx, "verify", "skipping verification: %v", err)

			return nil, nil
		}

		files = append(files, verify.File{TokenFile: tf, Src: src})
		index[file] = i
	}

	checker, err := verify.NewChecker(ctx, p.Pkg, p.TypesSizes, files)
	if err != nil {
		trace.Logf(ctx, "verify", "skipping verification of %s: %v", p.Pkg.Path(), err)

		return nil, nil
	}

	return checker, index
}

func readFile(p *analysis.Pass, name string) ([]byte, error) {
	if p.ReadFile != nil {
		return p.ReadFile(name)
	}

	return os.ReadFile(name)
}
