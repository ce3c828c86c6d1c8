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

	"github.com/spf13/cobra"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Report local variables that can be declared as constants",
		Long: `check analyzes the given packages (default: the package in the working directory)
and reports every declaration that can be made constant. The exit status is 3 when
declarations are reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session(cmd)
			if err != nil {
				return err
			}

			findings, err := s.analyze(cmd.Context(), args)

			for _, f := range findings {
				if perr := s.printer.finding(f); perr != nil {
					return perr
				}
			}

			if len(findings) > 0 {
				return errors.Join(errFindings, err)
			}

			return err
		},
	}
}
