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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/makeconst/internal/run"
)

// Public API constants for the makeconst analyzer.
const (
	name = "makeconst"
	doc  = `makeconst detects local variables that can be declared as constants`
	url  = "https://pkg.go.dev/fillmore-labs.com/makeconst"
)

// New creates a new instance of the makeconst analyzer.
//
// Without options, short variable declarations are checked, generated files are skipped,
// goroutine and defer captures don't count as writes, and every suggested fix is verified
// by type-checking the package with the rewrite applied. Options override these defaults,
// and the command line flags registered on the analyzer override the options.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting local variables that can be constants,
// using the defaults of [New].
var Analyzer = New()
