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

package config

import "log/slog"

// Behavior is the set of enabled [Flag]s.
type Behavior struct {
	value Flag
}

// NewBehavior creates a [Behavior] with the specified flags enabled.
func NewBehavior(flags ...Flag) Behavior {
	var b Behavior
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// DefaultBehavior returns the default analyzer behavior.
func DefaultBehavior() Behavior {
	return NewBehavior(ShortDeclarations, Verify)
}

// Set enables or disables the specified flag.
func (b *Behavior) Set(flag Flag, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets the given flag.
func (b *Behavior) Enable(flag Flag) {
	b.value |= flag
}

// Disable clears the given flag.
func (b *Behavior) Disable(flag Flag) {
	b.value &^= flag
}

// Enabled checks if the specified flag is set.
func (b Behavior) Enabled(flag Flag) bool {
	return b.value&flag != 0
}

// LogValue implements [slog.LogValuer].
func (b Behavior) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(flagNames))
	for _, n := range flagNames {
		as = append(as, slog.Bool(n.name, b.Enabled(n.flag)))
	}

	return slog.GroupValue(as...)
}
