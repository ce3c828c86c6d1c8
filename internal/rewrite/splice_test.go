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
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/makeconst/internal/rewrite"
)

func newFile(src string) *token.File {
	fset := token.NewFileSet()

	return fset.AddFile("splice.go", -1, len(src))
}

func TestSplice(t *testing.T) {
	t.Parallel()

	const src = "x := 5"

	tf := newFile(src)
	pos := func(off int) token.Pos { return tf.Pos(off) }

	tests := []struct {
		name  string
		edits []analysis.TextEdit
		want  string
	}{
		{
			name: "Insertions in order",
			edits: []analysis.TextEdit{
				{Pos: pos(0), NewText: []byte("const ")},
				{Pos: pos(1), End: pos(1), NewText: []byte(" int")},
				{Pos: pos(2), End: pos(4), NewText: []byte("=")},
			},
			want: "const x int = 5",
		},
		{
			name: "Unsorted edits",
			edits: []analysis.TextEdit{
				{Pos: pos(2), End: pos(4), NewText: []byte("=")},
				{Pos: pos(0), End: pos(0), NewText: []byte("const ")},
			},
			want: "const x = 5",
		},
		{
			name: "Same position keeps order",
			edits: []analysis.TextEdit{
				{Pos: pos(0), End: pos(0), NewText: []byte("a")},
				{Pos: pos(0), End: pos(0), NewText: []byte("b")},
			},
			want: "abx := 5",
		},
		{
			name:  "No edits",
			edits: nil,
			want:  src,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Splice(tf, []byte(src), tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSpliceConflict(t *testing.T) {
	t.Parallel()

	const src = "x := 5"

	tf := newFile(src)
	edits := []analysis.TextEdit{
		{Pos: tf.Pos(0), End: tf.Pos(4), NewText: []byte("y =")},
		{Pos: tf.Pos(2), End: tf.Pos(4), NewText: []byte("=")},
	}

	_, err := Splice(tf, []byte(src), edits)
	require.ErrorIs(t, err, ErrConflict)
}

func TestSpliceInvalid(t *testing.T) {
	t.Parallel()

	const src = "x := 5"

	tf := newFile(src)

	_, err := Splice(tf, []byte(src), []analysis.TextEdit{{Pos: token.NoPos, NewText: []byte("a")}})
	require.ErrorIs(t, err, ErrInvalidEdit)

	_, err = Splice(tf, []byte(src+" "), nil)
	require.ErrorIs(t, err, ErrInvalidEdit)
}

func TestApplyEditsFormats(t *testing.T) {
	t.Parallel()

	const src = "package p\n\nfunc _() {\n\tx := 5\n\tprintln(x)\n}\n"

	tf := newFile(src)
	off := len("package p\n\nfunc _() {\n\t")
	edits := []analysis.TextEdit{
		{Pos: tf.Pos(off), End: tf.Pos(off), NewText: []byte("const  ")},
		{Pos: tf.Pos(off + 1), End: tf.Pos(off + 1), NewText: []byte(" int")},
		{Pos: tf.Pos(off + 2), End: tf.Pos(off + 4), NewText: []byte("=")},
	}

	got, err := ApplyEdits(tf, []byte(src), edits)
	require.NoError(t, err)
	assert.Equal(t, "package p\n\nfunc _() {\n\tconst x int = 5\n\tprintln(x)\n}\n", string(got))
}
