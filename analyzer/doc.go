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

// Package analyzer implements the makeconst static analysis pass.
//
// # Overview
//
// MakeConst detects local variables that are initialized with a constant expression
// and never modified afterwards. Such variables can be declared as constants.
//
// # Example
//
// Before:
//
//	func area(r float64) float64 {
//	    pi := 3.14159  // pi is never modified
//	    return pi * r * r
//	}
//
// After applying makeconst's suggested fix:
//
//	func area(r float64) float64 {
//	    const pi float64 = 3.14159
//	    return pi * r * r
//	}
//
// # Rules
//
// A declaration is reported only when every variable it declares qualifies:
//
//   - the variable has its own initializer with a constant value
//   - its type is a boolean, numeric or string type
//   - it is never assigned, incremented, decremented or has its address taken
//     (explicitly or by calling a method with pointer receiver)
//
// The suggested fix always spells out the inferred type, so the constant keeps the
// type the variable had. Rewrites that would make the package fail to compile,
// for example because a constant conversion overflows, are not suggested.
//
// # Flags
//
//   - -generated: check generated files
//   - -short-decl: check short variable declarations (default true)
//   - -conservative: treat variables used by go and defer statements as modified,
//     including closures stored in a local variable and started later
//   - -verify: type-check the package with the suggested fixes applied (default true)
//
// Declarations, functions and files can be excluded with a //nolint:makeconst comment.
package analyzer
