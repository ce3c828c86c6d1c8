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

// Package rewrite turns local variable declarations into constant declarations.
//
// The rewrite is expressed as minimal text edits against the original source: the var
// keyword is replaced by const, short variable declarations get a leading const and
// their := becomes =, and inferred types are spelled out. Comments and indentation
// preceding the statement therefore stay in front of the const keyword, and comments
// inside the statement are kept in place.
package rewrite

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/makeconst/internal/astutil"
)

var (
	// ErrNoDeclaration is returned when a statement or position does not denote a local variable declaration.
	ErrNoDeclaration = errors.New("no local variable declaration")

	// ErrNotExpressible is returned when the constant declaration can't be written at that position.
	ErrNotExpressible = errors.New("constant declaration not expressible")
)

const (
	keywordVar   = "var"
	keywordConst = "const"
)

// Planner computes rewrites for declarations of a single file.
type Planner struct {
	// Pkg is the type-checked package of the file.
	Pkg *types.Package

	// Info is the type information of the package.
	Info *types.Info

	// File is the syntax tree of the file containing the declarations.
	File *ast.File
}

// Plan returns the edits that turn a local variable declaration into a constant declaration.
func (p Planner) Plan(stmt ast.Stmt) ([]analysis.TextEdit, error) {
	switch n := stmt.(type) {
	case *ast.DeclStmt:
		return p.planDecl(n)

	case *ast.AssignStmt:
		return p.planShortDecl(n)

	default:
		return nil, fmt.Errorf("%w: %T", ErrNoDeclaration, stmt)
	}
}

// planDecl replaces var with const and inserts missing types.
func (p Planner) planDecl(stmt *ast.DeclStmt) ([]analysis.TextEdit, error) {
	decl := astutil.LocalDecl(stmt)
	if decl == nil {
		return nil, fmt.Errorf("%w: %T", ErrNoDeclaration, stmt.Decl)
	}

	edits := []analysis.TextEdit{{
		Pos:     decl.TokPos,
		End:     decl.TokPos + token.Pos(len(keywordVar)),
		NewText: []byte(keywordConst),
	}}

	for _, spec := range decl.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		if len(vspec.Values) != len(vspec.Names) {
			return nil, fmt.Errorf("%w: %d names with %d values", ErrNotExpressible, len(vspec.Names), len(vspec.Values))
		}

		if vspec.Type != nil {
			continue // explicitly typed
		}

		name, err := p.commonType(vspec.Names, vspec.Values)
		if err != nil {
			return nil, err
		}

		last := vspec.Names[len(vspec.Names)-1]
		edits = append(edits, insertType(last.End(), name))
	}

	return edits, nil
}

// planShortDecl prefixes const, inserts the type and replaces := with =.
func (p Planner) planShortDecl(stmt *ast.AssignStmt) ([]analysis.TextEdit, error) {
	if stmt.Tok != token.DEFINE {
		return nil, fmt.Errorf("%w: assignment %s", ErrNoDeclaration, stmt.Tok)
	}

	if len(stmt.Rhs) != len(stmt.Lhs) {
		return nil, fmt.Errorf("%w: %d names with %d values", ErrNotExpressible, len(stmt.Lhs), len(stmt.Rhs))
	}

	names := make([]*ast.Ident, 0, len(stmt.Lhs))
	for _, expr := range stmt.Lhs {
		id, ok := expr.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("%w: %T on the left side", ErrNoDeclaration, expr)
		}

		names = append(names, id)
	}

	name, err := p.commonType(names, stmt.Rhs)
	if err != nil {
		return nil, err
	}

	last := names[len(names)-1]

	return []analysis.TextEdit{
		{Pos: stmt.Pos(), End: stmt.Pos(), NewText: []byte(keywordConst + " ")},
		insertType(last.End(), name),
		{Pos: stmt.TokPos, End: stmt.TokPos + token.Pos(len(token.DEFINE.String())), NewText: []byte(token.ASSIGN.String())},
	}, nil
}

// commonType returns the type name shared by all declared names.
func (p Planner) commonType(names []*ast.Ident, values []ast.Expr) (string, error) {
	var common string

	for i, id := range names {
		v, ok := p.Info.Defs[id].(*types.Var)
		if !ok {
			return "", fmt.Errorf("%w: %s is not a new variable", ErrNoDeclaration, id.Name)
		}

		name, err := p.typeName(v.Type(), values[i], id.Pos())
		if err != nil {
			return "", err
		}

		switch {
		case i == 0:
			common = name

		case name != common:
			return "", fmt.Errorf("%w: names of types %s and %s in one declaration", ErrNotExpressible, common, name)
		}
	}

	return common, nil
}

func insertType(pos token.Pos, name string) analysis.TextEdit {
	return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(" " + name)}
}
