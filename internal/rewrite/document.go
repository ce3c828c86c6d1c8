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

package rewrite

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	goastutil "golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/makeconst/internal/astutil"
)

// FixTitle is the title of the code action making a declaration constant.
const FixTitle = "Make constant"

// ErrNoSemanticModel is returned when a document without type information should be rewritten.
var ErrNoSemanticModel = errors.New("document has no type information")

// Document is an immutable snapshot of a single source file.
type Document struct {
	Fset *token.FileSet
	File *ast.File
	Src  []byte

	// Pkg and Info describe the type-checked package of File, nil for rewritten documents.
	Pkg  *types.Package
	Info *types.Info
}

// Apply rewrites the local variable declaration at pos into a constant declaration and returns the new
// document. The original document is never modified. On error, including cancellation of ctx, doc is
// returned unchanged.
func Apply(ctx context.Context, doc Document, pos token.Pos) (Document, error) {
	if err := ctx.Err(); err != nil {
		return doc, err
	}

	if doc.Pkg == nil || doc.Info == nil {
		return doc, ErrNoSemanticModel
	}

	stmt, err := Enclosing(doc.File, pos)
	if err != nil {
		return doc, err
	}

	edits, err := Planner{Pkg: doc.Pkg, Info: doc.Info, File: doc.File}.Plan(stmt)
	if err != nil {
		return doc, err
	}

	tf := doc.Fset.File(doc.File.FileStart)
	if tf == nil {
		return doc, fmt.Errorf("%w: file not in file set", ErrInvalidEdit)
	}

	if err := ctx.Err(); err != nil {
		return doc, err
	}

	src, err := ApplyEdits(tf, doc.Src, edits)
	if err != nil {
		return doc, err
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, tf.Name(), src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return doc, fmt.Errorf("parsing rewritten %s: %w", tf.Name(), err)
	}

	return Document{Fset: fset, File: file, Src: src}, nil
}

// Enclosing returns the innermost local variable declaration statement containing pos.
func Enclosing(file *ast.File, pos token.Pos) (ast.Stmt, error) {
	path, _ := goastutil.PathEnclosingInterval(file, pos, pos)

	for i, n := range path {
		switch n := n.(type) {
		case *ast.DeclStmt:
			if astutil.LocalDecl(n) != nil {
				return n, nil
			}

		case *ast.AssignStmt:
			if n.Tok == token.DEFINE && i+1 < len(path) && listStatement(n, path[i+1]) {
				return n, nil
			}

		case *ast.FuncLit, *ast.FuncDecl, *ast.File:
			return nil, fmt.Errorf("%w at position %d", ErrNoDeclaration, pos)
		}
	}

	return nil, fmt.Errorf("%w at position %d", ErrNoDeclaration, pos)
}

// listStatement reports whether stmt is an element of a statement list of parent,
// not the init statement of if, for or switch or a select case.
func listStatement(stmt ast.Stmt, parent ast.Node) bool {
	switch parent := parent.(type) {
	case *ast.BlockStmt, *ast.CaseClause, *ast.LabeledStmt:
		return true

	case *ast.CommClause:
		return parent.Comm != stmt
	}

	return false
}

// CodeAction is a fix that is computed when applied.
type CodeAction struct {
	Title string
	Apply func(ctx context.Context, doc Document) (Document, error)
}

// MakeConst returns the code action making the declaration at pos constant.
func MakeConst(pos token.Pos) CodeAction {
	return CodeAction{
		Title: FixTitle,
		Apply: func(ctx context.Context, doc Document) (Document, error) {
			return Apply(ctx, doc, pos)
		},
	}
}
