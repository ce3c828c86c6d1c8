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
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"

	"fortio.org/safecast"
	"golang.org/x/tools/go/analysis"
)

var (
	// ErrConflict is returned for overlapping edits.
	ErrConflict = errors.New("conflicting edits")

	// ErrInvalidEdit is returned for edits outside of the file.
	ErrInvalidEdit = errors.New("invalid edit")
)

type span struct {
	start, end int
	text       []byte
}

// Splice applies edits to src, the content of tf. Edits must not overlap, insertions at the same
// offset are applied in the given order.
func Splice(tf *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	if tf.Size() != len(src) {
		return nil, fmt.Errorf("%w: file %s has size %d, content %d bytes", ErrInvalidEdit, tf.Name(), tf.Size(), len(src))
	}

	spans := make([]span, 0, len(edits))
	growth := 0

	for _, edit := range edits {
		s, err := toSpan(tf, edit)
		if err != nil {
			return nil, err
		}

		growth += len(s.text) - (s.end - s.start)
		spans = append(spans, s)
	}

	slices.SortStableFunc(spans, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})

	var buf bytes.Buffer
	buf.Grow(len(src) + max(growth, 0))

	last := 0
	for _, s := range spans {
		if s.start < last {
			return nil, fmt.Errorf("%w: %s at offset %d overlaps previous edit ending at %d", ErrConflict, tf.Name(), s.start, last)
		}

		buf.Write(src[last:s.start])
		buf.Write(s.text)
		last = s.end
	}

	buf.Write(src[last:])

	return buf.Bytes(), nil
}

// ApplyEdits applies edits to src and formats the result.
func ApplyEdits(tf *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	out, err := Splice(tf, src, edits)
	if err != nil {
		return nil, err
	}

	formatted, err := format.Source(out)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", tf.Name(), err)
	}

	return formatted, nil
}

func toSpan(tf *token.File, edit analysis.TextEdit) (span, error) {
	end := edit.End
	if !end.IsValid() {
		end = edit.Pos
	}

	start, err := offset(tf, edit.Pos)
	if err != nil {
		return span{}, err
	}

	stop, err := offset(tf, end)
	if err != nil {
		return span{}, err
	}

	if stop < start {
		return span{}, fmt.Errorf("%w: edit end %d before start %d", ErrInvalidEdit, stop, start)
	}

	return span{start: start, end: stop, text: edit.NewText}, nil
}

// offset converts pos into a byte offset of tf.
func offset(tf *token.File, pos token.Pos) (int, error) {
	if !pos.IsValid() {
		return 0, fmt.Errorf("%w: no position", ErrInvalidEdit)
	}

	off, err := safecast.Conv[uint](int(pos) - tf.Base())
	if err != nil || off > uint(tf.Size()) {
		return 0, fmt.Errorf("%w: position %d outside of %s", ErrInvalidEdit, pos, tf.Name())
	}

	return int(off), nil
}
