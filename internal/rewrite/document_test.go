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

package rewrite_test

import (
	"bytes"
	"context"
	"go/ast"
	"go/format"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/makeconst/internal/detect"
	. "fillmore-labs.com/makeconst/internal/rewrite"
	"fillmore-labs.com/makeconst/internal/testsource"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		marker string
		want   string
	}{
		{
			name:   "Short declaration",
			src:    "x := 5\nprintln(x)",
			marker: "x :=",
			want:   "const x int = 5\nprintln(x)",
		},
		{
			name:   "Folded expression",
			src:    "x := 1 + 2\nprintln(x)",
			marker: "x :=",
			want:   "const x int = 1 + 2\nprintln(x)",
		},
		{
			name:   "Rune",
			src:    "var x = 'a'\nprintln(x)",
			marker: "var",
			want:   "const x rune = 'a'\nprintln(x)",
		},
		{
			name:   "Float",
			src:    "var x = 1.5\nprintln(x)",
			marker: "var",
			want:   "const x float64 = 1.5\nprintln(x)",
		},
		{
			name:   "Explicit type",
			src:    "var x float64 = 1\nprintln(x)",
			marker: "var",
			want:   "const x float64 = 1\nprintln(x)",
		},
		{
			name:   "Multiple names",
			src:    "x, y := 1, 2\nprintln(x, y)",
			marker: "x, y",
			want:   "const x, y int = 1, 2\nprintln(x, y)",
		},
		{
			name:   "Grouped declaration",
			src:    "var (\n\ta = 1\n\tb = \"s\"\n)\nprintln(a, b)",
			marker: "var",
			want:   "const (\n\ta int = 1\n\tb string = \"s\"\n)\nprintln(a, b)",
		},
		{
			name:   "Local named type",
			src:    "type C float64\nt := C(20)\nprintln(t)",
			marker: "t :=",
			want:   "type C float64\nconst t C = C(20)\nprintln(t)",
		},
		{
			name:   "Leading comment",
			src:    "// leading\nx := 5\nprintln(x)",
			marker: "x :=",
			want:   "// leading\nconst x int = 5\nprintln(x)",
		},
		{
			name:   "Trailing comment",
			src:    "x := 5 // trailing\nprintln(x)",
			marker: "x :=",
			want:   "const x int = 5 // trailing\nprintln(x)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := document(t, tt.src)

			got, err := Apply(t.Context(), doc, posOf(t, doc, tt.marker))
			require.NoError(t, err)

			want, err := format.Source(testsource.Wrap(tt.want))
			require.NoError(t, err)

			assert.Equal(t, string(want), string(got.Src))
			assert.Len(t, statements(t, got.File), len(statements(t, doc.File)))
			assert.Nil(t, got.Info, "rewritten document carries no type information")
		})
	}
}

func TestApplyNotExpressible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		marker string
	}{
		{
			name:   "Different types",
			src:    "x, y := 1, \"a\"\nprintln(x, y)",
			marker: "x, y",
		},
		{
			name:   "Shadowed type name",
			src:    "int := 2\n_ = int\nx := 3\nprintln(x)",
			marker: "x :=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := document(t, tt.src)

			got, err := Apply(t.Context(), doc, posOf(t, doc, tt.marker))
			require.ErrorIs(t, err, ErrNotExpressible)
			assert.Same(t, doc.File, got.File)
		})
	}
}

func TestApplyKeepsCommentOnce(t *testing.T) {
	t.Parallel()

	doc := document(t, "\t// keep me\n\tvar x = \"s\"\n\tprintln(x)")

	got, err := Apply(t.Context(), doc, posOf(t, doc, "var"))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(got.Src), "// keep me"))
	assert.Contains(t, string(got.Src), "// keep me\n\tconst x string = \"s\"\n")
}

func TestApplyNoDeclaration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		marker string
	}{
		{"Call", "x := 5\nprintln(x)", "println"},
		{"If init", "if x := 5; x > 0 {\nprintln(x)\n}", "x :="},
		{"For init", "for i := 0; i < 3; i++ {\nprintln(i)\n}", "i :="},
		{"Switch init", "switch x := 5; x {\ncase 5:\nprintln(x)\n}", "x :="},
		{"Select case", "ch := make(chan int, 1)\nch <- 1\nselect {\ncase v := <-ch:\nprintln(v)\n}", "v :="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := document(t, tt.src)

			got, err := Apply(t.Context(), doc, posOf(t, doc, tt.marker))
			require.ErrorIs(t, err, ErrNoDeclaration)
			assert.Same(t, doc.File, got.File)
			assert.Equal(t, doc.Src, got.Src)
		})
	}
}

func TestEnclosingStatementList(t *testing.T) {
	t.Parallel()

	doc := document(t, "for {\nx := 5\nprintln(x)\nbreak\n}")

	stmt, err := Enclosing(doc.File, posOf(t, doc, "5"))
	require.NoError(t, err)
	assert.IsType(t, (*ast.AssignStmt)(nil), stmt)
}

func TestApplyCanceled(t *testing.T) {
	t.Parallel()

	doc := document(t, "x := 5\nprintln(x)")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	got, err := Apply(ctx, doc, posOf(t, doc, "x :="))
	require.ErrorIs(t, err, context.Canceled)
	assert.Same(t, doc.File, got.File)
	assert.Equal(t, doc.Src, got.Src)
}

func TestApplyNoSemanticModel(t *testing.T) {
	t.Parallel()

	doc := document(t, "x := 5\nprintln(x)")
	pos := posOf(t, doc, "x :=")
	doc.Info = nil

	_, err := Apply(t.Context(), doc, pos)
	require.ErrorIs(t, err, ErrNoSemanticModel)
}

func TestApplyNotFlaggedAgain(t *testing.T) {
	t.Parallel()

	doc := document(t, "x := 5\nvar y = x + 1\nprintln(y)")

	got, err := Apply(t.Context(), doc, posOf(t, doc, "x :="))
	require.NoError(t, err)

	_, info := testsource.Check(t, got.Fset, got.File)
	d := detect.Detector{Info: info, ShortDecl: true}

	candidates := d.Candidates(t.Context(), testsource.Body(t, got.File))
	require.Len(t, candidates, 1)
	assert.IsType(t, (*ast.DeclStmt)(nil), candidates[0].Node())
	assert.Equal(t, "y", candidates[0].Vars[0].Name())
}

func TestMakeConst(t *testing.T) {
	t.Parallel()

	doc := document(t, "x := 5\nprintln(x)")

	action := MakeConst(posOf(t, doc, "x :="))
	assert.Equal(t, "Make constant", action.Title)

	got, err := action.Apply(t.Context(), doc)
	require.NoError(t, err)
	assert.Contains(t, string(got.Src), "const x int = 5")
}

func document(tb testing.TB, src string) Document {
	tb.Helper()

	content := testsource.Wrap(src)
	fset, f := testsource.ParseFile(tb, content)
	pkg, info := testsource.Check(tb, fset, f)

	return Document{Fset: fset, File: f, Src: content, Pkg: pkg, Info: info}
}

func posOf(tb testing.TB, doc Document, marker string) token.Pos {
	tb.Helper()

	off := bytes.Index(doc.Src, []byte(marker))
	require.GreaterOrEqual(tb, off, 0, "marker %q not found", marker)

	return doc.Fset.File(doc.File.FileStart).Pos(off)
}

func statements(tb testing.TB, f *ast.File) []ast.Stmt {
	tb.Helper()

	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return fn.Body.List
		}
	}

	require.FailNow(tb, "no function")

	return nil
}
