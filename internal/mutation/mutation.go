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

// Package mutation computes which local variables of a function are written to
// or have their address taken.
package mutation

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Mutation records the first write or escape of a variable.
type Mutation struct {
	Reason Reason
	Pos    token.Pos
}

// Summary is the data-flow summary of a function body.
//
// The function body is the outermost region any of its local variables is visible in,
// so writes preceding a declaration (reachable through goto) and writes from nested
// function literals are included.
type Summary struct {
	mutated map[*types.Var]Mutation
}

// NeverMutated reports whether v is never the target of an assignment, increment or decrement,
// and never has its address taken anywhere in the summarized region.
func (s Summary) NeverMutated(v *types.Var) bool {
	_, ok := s.mutated[v]

	return !ok
}

// Mutation returns the first recorded mutation of v.
func (s Summary) Mutation(v *types.Var) Mutation {
	return s.mutated[v]
}

// Len returns the number of mutated variables.
func (s Summary) Len() int {
	return len(s.mutated)
}

// Summarize collects all writes and escapes of variables in a function body.
//
// In conservative mode, variables referenced from function literals run by go or
// defer statements are treated as mutated. This includes literals assigned to a local
// variable that is called by a go or defer statement, as in f := func() { ... }; go f().
func Summarize(ctx context.Context, info *types.Info, body inspector.Cursor, conservative bool) Summary {
	defer trace.StartRegion(ctx, "Mutation").End()

	c := collector{info: info, mutated: make(map[*types.Var]Mutation), detached: make(map[*types.Var]bool)}

	nodes := []ast.Node{
		// keep-sorted start
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.UnaryExpr)(nil),
		// keep-sorted end
	}

	if conservative {
		nodes = append(nodes, (*ast.DeferStmt)(nil), (*ast.FuncLit)(nil), (*ast.GoStmt)(nil))
	}

	for cur := range body.Preorder(nodes...) {
		switch n := cur.Node().(type) {
		// keep-sorted start newline_separated=yes
		case *ast.AssignStmt:
			// Covers =, op= and identifiers redeclared by :=, which are recorded as uses
			for _, lhs := range n.Lhs {
				c.record(lhs, Assigned)
			}

		case *ast.DeferStmt:
			c.detachedCall(n.Call)

		case *ast.FuncLit:
			switch v := c.boundVar(cur); {
			case runsDetached(cur):
				c.captures(cur)

			case v != nil:
				c.bound = append(c.bound, boundLit{v: v, lit: cur})
			}

		case *ast.GoStmt:
			c.detachedCall(n.Call)

		case *ast.IncDecStmt:
			c.record(n.X, IncDec)

		case *ast.RangeStmt:
			if n.Tok != token.ASSIGN {
				break
			}

			c.record(n.Key, Assigned)
			c.record(n.Value, Assigned)

		case *ast.SelectorExpr:
			if c.pointerMethod(n) {
				c.record(n.X, PointerMethod)
			}

		case *ast.UnaryExpr:
			if n.Op == token.AND {
				c.record(n.X, AddressTaken)
			}

			// keep-sorted end
		}
	}

	for _, b := range c.bound {
		if c.detached[b.v] {
			c.captures(b.lit)
		}
	}

	return Summary{mutated: c.mutated}
}

// collector accumulates mutations of a single function body.
type collector struct {
	info    *types.Info
	mutated map[*types.Var]Mutation

	// conservative mode only
	detached map[*types.Var]bool
	bound    []boundLit
}

// boundLit is a function literal assigned to a local variable.
type boundLit struct {
	v   *types.Var
	lit inspector.Cursor
}

// record marks the variable denoted by expr as mutated, keeping the first reason.
func (c *collector) record(expr ast.Expr, reason Reason) {
	if expr == nil {
		return
	}

	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok || id.Name == "_" {
		return
	}

	v, ok := c.info.Uses[id].(*types.Var)
	if !ok {
		return // declarations are not writes
	}

	if _, ok := c.mutated[v]; ok {
		return
	}

	c.mutated[v] = Mutation{Reason: reason, Pos: id.Pos()}
}

// pointerMethod reports whether the selector implicitly takes the address of its operand,
// as in x.M() or x.M where M has a pointer receiver and x is not a pointer.
func (c *collector) pointerMethod(sel *ast.SelectorExpr) bool {
	selection, ok := c.info.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return false
	}

	fun, ok := selection.Obj().(*types.Func)
	if !ok {
		return false
	}

	recv := fun.Signature().Recv()
	if recv == nil {
		return false
	}

	if _, ok := types.Unalias(recv.Type()).(*types.Pointer); !ok {
		return false
	}

	_, ptr := types.Unalias(c.info.TypeOf(sel.X)).Underlying().(*types.Pointer)

	return !ptr
}

// detachedCall records the variable called by a go or defer statement, as in go f().
func (c *collector) detachedCall(call *ast.CallExpr) {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return
	}

	if v, ok := c.info.Uses[id].(*types.Var); ok {
		c.detached[v] = true
	}
}

// boundVar returns the local variable a function literal is assigned to, or nil.
func (c *collector) boundVar(lit inspector.Cursor) *types.Var {
	var name ast.Expr

	switch kind, i := lit.ParentEdge(); kind {
	case edge.AssignStmt_Rhs:
		assign := lit.Parent().Node().(*ast.AssignStmt)
		if len(assign.Lhs) != len(assign.Rhs) {
			return nil
		}

		name = assign.Lhs[i]

	case edge.ValueSpec_Values:
		spec := lit.Parent().Node().(*ast.ValueSpec)
		if len(spec.Names) != len(spec.Values) {
			return nil
		}

		name = spec.Names[i]

	default:
		return nil
	}

	id, ok := ast.Unparen(name).(*ast.Ident)
	if !ok {
		return nil
	}

	v, _ := c.info.ObjectOf(id).(*types.Var)

	return v
}

// captures marks all variables declared outside the function literal and referenced inside as captured.
func (c *collector) captures(cur inspector.Cursor) {
	lit := cur.Node()

	for i := range cur.Preorder((*ast.Ident)(nil)) {
		id := i.Node().(*ast.Ident)

		v, ok := c.info.Uses[id].(*types.Var)
		if !ok || v.IsField() {
			continue
		}

		if lit.Pos() <= v.Pos() && v.Pos() < lit.End() {
			continue // declared in the literal
		}

		if _, ok := c.mutated[v]; ok {
			continue
		}

		c.mutated[v] = Mutation{Reason: Captured, Pos: id.Pos()}
	}
}

// runsDetached reports whether the function literal is called by a go or defer statement.
func runsDetached(lit inspector.Cursor) bool {
	if kind, _ := lit.ParentEdge(); kind != edge.CallExpr_Fun {
		return false
	}

	switch kind, _ := lit.Parent().ParentEdge(); kind {
	case edge.DeferStmt_Call, edge.GoStmt_Call:
		return true
	}

	return false
}
