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

package config

// Flag represents a single behavioral option of the analyzer.
type Flag uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flag = 1 << iota

	// ShortDeclarations enables checking short variable declarations (x := 1)
	// in addition to var declarations.
	ShortDeclarations

	// Conservative treats variables referenced from function literals run by
	// go or defer statements as mutated.
	Conservative

	// Verify type-checks the rewritten package before a diagnostic is reported.
	Verify
)

// flagNames lists the flags in bit order.
var flagNames = [...]struct {
	flag Flag
	name string
}{
	{IncludeGenerated, "generated"},
	{ShortDeclarations, "short-decl"},
	{Conservative, "conservative"},
	{Verify, "verify"},
}

// String returns the option name of a single flag.
func (f Flag) String() string {
	for _, n := range flagNames {
		if n.flag == f {
			return n.name
		}
	}

	return "<unknown>"
}
