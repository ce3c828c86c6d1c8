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

package mutation

// Reason indicates why a variable can't be a constant.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	// Unmutated indicates no write or escape was found.
	Unmutated Reason = iota // unmutated

	// Assigned indicates the variable is the target of an assignment, an operator assignment,
	// a redeclaration in a short variable declaration or a range clause using =.
	Assigned // assigned

	// IncDec indicates the variable is incremented or decremented.
	IncDec // inc/dec

	// AddressTaken indicates the address of the variable is taken explicitly.
	AddressTaken // address taken

	// PointerMethod indicates the address of the variable is taken implicitly
	// by calling a method with pointer receiver or taking its method value.
	PointerMethod // pointer method

	// Captured indicates the variable is referenced from a function literal
	// executed by a go or defer statement. Only reported in conservative mode.
	Captured // captured
)

// Mutated indicates the variable can't be a constant.
func (r Reason) Mutated() bool { return r != Unmutated }
