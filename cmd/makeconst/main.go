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

// Command makeconst reports local variables that can be declared as constants and rewrites them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitFindings = 3
)

// errFindings is returned by commands that reported diagnostics.
var errFindings = errors.New("findings reported")

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	switch err := root.ExecuteContext(ctx); {
	case err == nil:
		return exitOK

	case errors.Is(err, errFindings):
		return exitFindings

	default:
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)

		return exitError
	}
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	config  string
	color   string
	dir     string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "makeconst",
		Short: "Find local variables that can be declared as constants",
		Long: `makeconst reports local variables that are initialized with a constant expression
and never modified, and rewrites them into constant declarations.`,
		Version:       buildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "configuration file (default: "+configName+" in the working directory or a parent)")
	pf.StringVar(&g.color, "color", colorAuto, "colorize output (auto|always|never)")
	pf.StringVarP(&g.dir, "dir", "C", "", "run as if started in `directory`")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	pf.Bool(flagTests, false, "include test files")
	pf.Bool(flagGenerated, false, "check generated files")
	pf.Bool(flagShortDecl, true, "check short variable declarations")
	pf.Bool(flagConservative, false, "treat variables used by go and defer statements as modified")
	pf.Bool(flagVerify, true, "type-check packages with the rewrites applied")

	root.AddCommand(newCheckCmd(&g), newFixCmd(&g), newVersionCmd())

	return root
}
