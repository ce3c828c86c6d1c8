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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoSource = `package demo

import "fmt"

func Demo() {
	// greeting is printed
	greeting := "hello"
	count := 1
	count++
	fmt.Println(greeting, count)
}
`

const demoFixed = `package demo

import "fmt"

func Demo() {
	// greeting is printed
	const greeting string = "hello"
	count := 1
	count++
	fmt.Println(greeting, count)
}
`

func demoModule(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/demo\n\ngo 1.24\n")
	writeFile(t, filepath.Join(dir, "demo.go"), demoSource)

	return dir
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut strings.Builder
	code = execute(t.Context(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestCheckAndFix(t *testing.T) {
	t.Parallel()

	dir := demoModule(t)

	code, stdout, stderr := run(t, "check", "--dir", dir, "--color", "never", "./...")
	require.Equal(t, exitFindings, code, stderr)
	assert.Equal(t, "demo.go:7:2: warning: Can be made constant [MakeConst]\n", stdout)

	code, stdout, stderr = run(t, "fix", "--dir", dir, "--color", "never", "--dry-run", "./...")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Would fix demo.go (1 declaration)\n", stdout)

	content, err := os.ReadFile(filepath.Join(dir, "demo.go"))
	require.NoError(t, err)
	assert.Equal(t, demoSource, string(content), "dry run must not write")

	code, stdout, stderr = run(t, "fix", "--dir", dir, "--color", "never", "./...")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Fixed demo.go (1 declaration)\n", stdout)

	content, err = os.ReadFile(filepath.Join(dir, "demo.go"))
	require.NoError(t, err)
	assert.Equal(t, demoFixed, string(content))

	code, stdout, stderr = run(t, "check", "--dir", dir, "--color", "never", "./...")
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)
}

func TestCheckConfigFile(t *testing.T) {
	t.Parallel()

	dir := demoModule(t)
	writeFile(t, filepath.Join(dir, configName), "short-decl = false\n")

	code, stdout, stderr := run(t, "check", "--dir", dir, "--color", "never")
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)

	code, _, stderr = run(t, "check", "--dir", dir, "--color", "never", "--short-decl")
	assert.Equal(t, exitFindings, code, stderr)
}

func TestInvalidFlags(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t, "check", "--color", "sometimes")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "invalid color mode")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run(t, "version")
	require.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "makeconst "), stdout)
}
