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

// Package detect finds local variable declarations that can be declared as constants.
package detect

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/makeconst/internal/astutil"
	"fillmore-labs.com/makeconst/internal/constval"
	"fillmore-labs.com/makeconst/internal/mutation"
)

// Candidate is a local declaration statement whose variables can all be constants.
type Candidate struct {
	// Stmt is positioned at the *[ast.DeclStmt] or *[ast.AssignStmt].
	Stmt inspector.Cursor

	// Vars are the declared variables, excluding blank identifiers.
	Vars []*types.Var
}

// Node returns the declaration statement.
func (c Candidate) Node() ast.Stmt {
	return c.Stmt.Node().(ast.Stmt)
}

// Detector selects candidates from the local declarations of a function body.
type Detector struct {
	// Info is the type information of the package.
	Info *types.Info

	// ShortDecl enables short variable declarations (x := 1) as candidates.
	ShortDecl bool

	// Conservative treats variables captured by go and defer statements as mutated.
	Conservative bool
}

// Candidates returns all declarations in body where every declared variable has a constant
// initializer and is never mutated.
//
// A statement qualifies only as a whole: a single non-constant or mutated variable
// disqualifies all variables declared with it.
func (d Detector) Candidates(ctx context.Context, body inspector.Cursor) []Candidate {
	defer trace.StartRegion(ctx, "Detect").End()

	var (
		candidates []Candidate
		summary    mutation.Summary
		summarized bool
	)

	for c := range body.Preorder((*ast.DeclStmt)(nil), (*ast.AssignStmt)(nil)) {
		vars, ok := d.qualifies(c)
		if !ok {
			continue
		}

		if !summarized {
			// One summary serves all declarations of this body
			summary = mutation.Summarize(ctx, d.Info, body, d.Conservative)
			summarized = true
		}

		if !neverMutated(summary, vars) {
			continue
		}

		candidates = append(candidates, Candidate{Stmt: c, Vars: vars})
	}

	return candidates
}

// qualifies checks a declaration statement without data-flow information.
func (d Detector) qualifies(c inspector.Cursor) ([]*types.Var, bool) {
	switch n := c.Node().(type) {
	case *ast.DeclStmt:
		if astutil.LocalDecl(n) == nil {
			return nil, false // const or type declaration
		}

	case *ast.AssignStmt:
		if !d.ShortDecl || n.Tok != token.DEFINE || !inStatementList(c) {
			return nil, false
		}

	default:
		return nil, false
	}

	return Declared(d.Info, c.Node().(ast.Stmt))
}

// Declared returns the variables of a local declaration when every declarator has its own constant initializer
// and a type that constants can have. Short variable declarations must not redeclare variables.
func Declared(info *types.Info, stmt ast.Stmt) ([]*types.Var, bool) {
	var (
		vars        []*types.Var
		declarators int
	)

	for decl := range astutil.AllDeclarators(stmt) {
		declarators++

		if _, ok := constval.Value(info, decl.Value); !ok {
			return nil, false
		}

		v, ok := info.Defs[decl.Name].(*types.Var)
		if !ok {
			return nil, false // redeclared in a short variable declaration
		}

		if !constval.Declarable(v.Type()) {
			return nil, false
		}

		if decl.Name.Name == "_" {
			continue
		}

		vars = append(vars, v)
	}

	return vars, declarators > 0
}

// inStatementList reports whether a short variable declaration is a statement of its own,
// not the init statement of if, for or switch, a select case or a type switch guard.
func inStatementList(c inspector.Cursor) bool {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body, edge.LabeledStmt_Stmt:
		return true
	}

	return false
}

func neverMutated(summary mutation.Summary, vars []*types.Var) bool {
	for _, v := range vars {
		if !summary.NeverMutated(v) {
			return false
		}
	}

	return true
}
