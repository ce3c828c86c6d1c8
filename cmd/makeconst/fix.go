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

package main

import (
	"context"
	"fmt"
	"go/token"
	"maps"
	"os"
	"runtime"
	"runtime/trace"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/makeconst/internal/rewrite"
)

func newFixCmd(g *globalFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [packages]",
		Short: "Rewrite local variables into constant declarations",
		Long: `fix analyzes the given packages (default: the package in the working directory)
and applies the suggested rewrites to the source files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session(cmd)
			if err != nil {
				return err
			}

			findings, err := s.analyze(cmd.Context(), args)
			if err != nil {
				return err
			}

			return s.fix(cmd.Context(), findings, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report the files that would change without writing them")

	return cmd
}

// fileEdits collects the edits of one file, relative to the first [token.File] seen for it.
type fileEdits struct {
	tf    *token.File
	edits []analysis.TextEdit
	count int
	seen  map[editKey]struct{}
}

type editKey struct {
	start, end int
	text       string
}

// add appends the edits of a fix, translated from file from and without duplicates.
func (f *fileEdits) add(from *token.File, edits []analysis.TextEdit) {
	added := false

	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		k := editKey{start: from.Offset(e.Pos), end: from.Offset(end), text: string(e.NewText)}
		if _, ok := f.seen[k]; ok {
			continue
		}

		f.seen[k] = struct{}{}
		f.edits = append(f.edits, analysis.TextEdit{Pos: f.tf.Pos(k.start), End: f.tf.Pos(k.end), NewText: e.NewText})
		added = true
	}

	if added {
		f.count++
	}
}

// groupEdits returns the edits of all suggested fixes per file name.
func groupEdits(findings []finding) map[string]*fileEdits {
	files := make(map[string]*fileEdits)

	for _, f := range findings {
		for _, fix := range f.diagnostic.SuggestedFixes {
			if len(fix.TextEdits) == 0 {
				continue
			}

			tf := f.fset.File(fix.TextEdits[0].Pos)
			if tf == nil {
				continue
			}

			fe, ok := files[tf.Name()]
			if !ok {
				fe = &fileEdits{tf: tf, seen: make(map[editKey]struct{})}
				files[tf.Name()] = fe
			}

			fe.add(tf, fix.TextEdits)
		}
	}

	return files
}

// fix applies the suggested fixes of findings and writes the changed files concurrently.
func (s *session) fix(ctx context.Context, findings []finding, dryRun bool) error {
	ctx, task := trace.NewTask(ctx, "Fix")
	defer task.End()

	files := groupEdits(findings)
	names := slices.Sorted(maps.Keys(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, name := range names {
		fe := files[name]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return rewriteFile(name, fe, dryRun)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, name := range names {
		if err := s.printer.fixed(s.relative(name), files[name].count, dryRun); err != nil {
			return err
		}
	}

	return nil
}

func rewriteFile(name string, fe *fileEdits, dryRun bool) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	out, err := rewrite.ApplyEdits(fe.tf, src, fe.edits)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if dryRun {
		return nil
	}

	return os.WriteFile(name, out, info.Mode().Perm())
}
