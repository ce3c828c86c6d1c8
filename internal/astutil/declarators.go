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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// Declarator is a single name bound by a local variable declaration.
type Declarator struct {
	// Name is the declared identifier, possibly the blank identifier.
	Name *ast.Ident

	// Value is the initializer of this name, nil when the name has no initializer of its own
	// (var x int, or a tuple-valued call like x, y := f()).
	Value ast.Expr

	// Spec is the value specification of a var declaration, nil for short variable declarations.
	Spec *ast.ValueSpec
}

// LocalDecl returns the var declaration of a declaration statement, or nil.
func LocalDecl(stmt *ast.DeclStmt) *ast.GenDecl {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return nil
	}

	return decl
}

// AllDeclarators yields all declarators of a var declaration statement or a short variable declaration.
// Other statements yield nothing.
func AllDeclarators(stmt ast.Stmt) iter.Seq[Declarator] {
	switch stmt := stmt.(type) {
	case *ast.DeclStmt:
		decl := LocalDecl(stmt)
		if decl == nil {
			break
		}

		return func(yield func(Declarator) bool) {
			for _, spec := range decl.Specs {
				vspec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for i, id := range vspec.Names {
					var value ast.Expr
					if len(vspec.Values) == len(vspec.Names) {
						value = vspec.Values[i]
					}

					if !yield(Declarator{Name: id, Value: value, Spec: vspec}) {
						return
					}
				}
			}
		}

	case *ast.AssignStmt:
		if stmt.Tok != token.DEFINE {
			break
		}

		return func(yield func(Declarator) bool) {
			for i, expr := range stmt.Lhs {
				id, ok := expr.(*ast.Ident)
				if !ok {
					continue
				}

				var value ast.Expr
				if len(stmt.Rhs) == len(stmt.Lhs) {
					value = stmt.Rhs[i]
				}

				if !yield(Declarator{Name: id, Value: value}) {
					return
				}
			}
		}
	}

	return func(func(Declarator) bool) {}
}
