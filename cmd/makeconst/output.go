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
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"golang.org/x/term"

	"fillmore-labs.com/makeconst/internal/report"
)

// Values of the --color flag.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var errInvalidColor = errors.New("invalid color mode")

// useColor decides whether output to w is colorized.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil

	case colorNever:
		return false, nil

	case colorAuto:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}

		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}

		fd, err := safecast.Conv[int](f.Fd())
		if err != nil {
			return false, nil
		}

		return term.IsTerminal(fd), nil

	default:
		return false, fmt.Errorf("%w %q (auto|always|never)", errInvalidColor, mode)
	}
}

// printer writes findings in the file:line:col: severity: message [rule] format.
type printer struct {
	w        io.Writer
	position *color.Color
	severity *color.Color
	rule     *color.Color
	summary  *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:        w,
		position: color.New(color.Bold),
		severity: color.New(color.FgYellow, color.Bold),
		rule:     color.New(color.Faint),
		summary:  color.New(color.FgGreen),
	}

	for _, c := range [...]*color.Color{p.position, p.severity, p.rule, p.summary} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// finding prints a single diagnostic.
func (p *printer) finding(f finding) error {
	_, err := fmt.Fprintf(p.w, "%s: %s %s %s\n",
		p.position.Sprint(f.position),
		p.severity.Sprint(report.Severity+":"),
		f.diagnostic.Message,
		p.rule.Sprintf("[%s]", f.diagnostic.Category))

	return err
}

// fixed prints the result of rewriting a file.
func (p *printer) fixed(name string, count int, dryRun bool) error {
	verb := "Fixed"
	if dryRun {
		verb = "Would fix"
	}

	_, err := fmt.Fprintf(p.w, "%s %s (%s)\n", verb, name, p.summary.Sprint(plural(count, "declaration")))

	return err
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
