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

package config_test

import (
	"log/slog"
	"testing"

	. "fillmore-labs.com/makeconst/internal/config"
)

func TestBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if !b.Enabled(ShortDeclarations) || !b.Enabled(Verify) {
		t.Errorf("Default behavior %v, want short-decl and verify", b.LogValue())
	}

	if b.Enabled(IncludeGenerated) || b.Enabled(Conservative) {
		t.Errorf("Default behavior %v, want no generated and no conservative", b.LogValue())
	}

	b.Set(Verify, false)
	b.Set(Conservative, true)

	if b.Enabled(Verify) || !b.Enabled(Conservative) {
		t.Errorf("Behavior after Set %v, want conservative without verify", b.LogValue())
	}
}

func TestBehaviorLogValue(t *testing.T) {
	t.Parallel()

	attrs := NewBehavior(IncludeGenerated).LogValue().Group()

	want := map[string]bool{"generated": true, "short-decl": false, "conservative": false, "verify": false}
	if len(attrs) != len(want) {
		t.Fatalf("Got %d attributes, want %d", len(attrs), len(want))
	}

	for _, a := range attrs {
		if a.Value.Kind() != slog.KindBool || a.Value.Bool() != want[a.Key] {
			t.Errorf("Attribute %s = %v, want %t", a.Key, a.Value, want[a.Key])
		}
	}
}

func TestFlagString(t *testing.T) {
	t.Parallel()

	if got, want := Conservative.String(), "conservative"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := Flag(0).String(), "<unknown>"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
