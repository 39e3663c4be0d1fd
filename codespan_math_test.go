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

package unidok_test

import (
	"strings"
	"testing"

	"github.com/unidok/unidok"
	"github.com/unidok/unidok/unihtml"
)

func render(t *testing.T, src string) string {
	t.Helper()
	doc := unidok.Parse(src)
	ir := unidok.Lower(doc)
	got, err := unihtml.RenderString(ir, unihtml.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestCodeSpanCrossingLineBreak(t *testing.T) {
	got := render(t, "`a\nb`\n")
	if !strings.Contains(got, "<code>") {
		t.Errorf("render() = %q, want a code span spanning the line break", got)
	}
}

func TestCodeSpanStripsSingleSurroundingSpace(t *testing.T) {
	got := render(t, "` a `\n")
	if !strings.Contains(got, "<code>a</code>") {
		t.Errorf("render() = %q, want padding stripped to <code>a</code>", got)
	}
}

func TestCodeSpanAllSpacesContentKeptVerbatim(t *testing.T) {
	got := render(t, "`   `\n")
	if !strings.Contains(got, "<code>   </code>") {
		t.Errorf("render() = %q, want an all-space code span left untouched", got)
	}
}

func TestInlineMathSpan(t *testing.T) {
	got := render(t, "%{x^2}%\n")
	if !strings.Contains(got, `<span class="math">x^2</span>`) {
		t.Errorf("render() = %q, want a rendered math span", got)
	}
}
