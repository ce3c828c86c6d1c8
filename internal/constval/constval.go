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

// Package constval answers whether expressions have a compile-time constant value
// and whether a variable type can be the type of a constant declaration.
package constval

import (
	"go/ast"
	"go/constant"
	"go/types"
)

// Value returns the constant value the type checker recorded for expr.
//
// This covers literals, folded arithmetic and string concatenation, references to
// constants and constant conversions, as well as built-in calls like len on arrays
// or unsafe.Sizeof.
func Value(info *types.Info, expr ast.Expr) (constant.Value, bool) {
	if expr == nil {
		return nil, false
	}

	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || !tv.IsValue() {
		return nil, false
	}

	return tv.Value, true
}

// Declarable reports whether a constant of type t can be declared.
//
// Constants are restricted to boolean, numeric and string types. Interfaces, pointers,
// unsafe.Pointer, type parameters and untyped nil never qualify, even when the
// initializer itself is constant (var v any = 1).
func Declarable(t types.Type) bool {
	if t == nil {
		return false
	}

	basic, ok := types.Unalias(t).Underlying().(*types.Basic)

	return ok && basic.Info()&types.IsConstType != 0
}
