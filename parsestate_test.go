// Copyright 2026 The Unidok Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package unidok

import "testing"

func TestNormalizeLabelFoldsCaseWhitespaceAndNFC(t *testing.T) {
	// "é" as a precomposed code point vs. "e" + combining acute accent must
	// normalize to the same key.
	precomposed := "Café Notes"
	decomposed := "Café  Notes"

	a := normalizeLabel(precomposed)
	b := normalizeLabel(decomposed)
	if a != b {
		t.Errorf("normalizeLabel(%q) = %q, normalizeLabel(%q) = %q; want equal", precomposed, a, decomposed, b)
	}
	if a != "café notes" {
		t.Errorf("normalizeLabel(%q) = %q, want %q", precomposed, a, "café notes")
	}
}

func TestSlugifyDeduplicatesAndNormalizesUnicode(t *testing.T) {
	ps := NewParseState("")

	if got := ps.slugify("Hello World"); got != "hello-world" {
		t.Errorf("slugify(%q) = %q, want %q", "Hello World", got, "hello-world")
	}
	if got := ps.slugify("Hello World"); got != "hello-world-1" {
		t.Errorf("second slugify(%q) = %q, want deduplicated suffix", "Hello World", got)
	}
	if got := ps.slugify(""); got != "section" {
		t.Errorf("slugify(%q) = %q, want fallback %q", "", got, "section")
	}
}
