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

// Package report turns planned rewrites into diagnostics with suggested fixes.
package report

import (
	"context"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/makeconst/internal/rewrite"
)

// Rule identity, shared by all hosts.
const (
	// RuleID identifies the rule and is used as diagnostic category.
	RuleID = "MakeConst"

	// Title is the short description of the rule.
	Title = "Make Constant"

	// Message is the diagnostic message.
	Message = "Can be made constant"

	// FixTitle is the message of the suggested fix.
	FixTitle = rewrite.FixTitle

	// Severity is the severity hosts should display.
	Severity = "warning"
)

// Finding is a declaration statement that can be rewritten into a constant declaration.
type Finding struct {
	Stmt  ast.Stmt
	Edits []analysis.TextEdit
}

// Report emits one diagnostic per finding.
func Report(ctx context.Context, p *analysis.Pass, findings []Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		p.Report(Diagnostic(f))
	}
}

// Diagnostic returns the diagnostic for a finding, anchored at the declaration statement.
func Diagnostic(f Finding) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      f.Stmt.Pos(),
		End:      f.Stmt.End(),
		Category: RuleID,
		Message:  Message,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   FixTitle,
			TextEdits: f.Edits,
		}},
	}
}
