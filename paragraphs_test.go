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

func TestBlankLineSeparatesParagraphs(t *testing.T) {
	got := render(t, "abc\n\ndef\n")
	if n := strings.Count(got, "<p>"); n != 2 {
		t.Errorf("render() = %q, want 2 <p> tags, got %d", got, n)
	}
	if !strings.Contains(got, "<p>abc") || !strings.Contains(got, "<p>def</p>") {
		t.Errorf("render() = %q, want separate paragraphs starting with abc and def", got)
	}
}

func TestSetextHeadingLevel1(t *testing.T) {
	got := render(t, "Title\n======\n")
	if !strings.Contains(got, "<h1") || !strings.Contains(got, ">Title</h1>") {
		t.Errorf("render() = %q, want an <h1> from the '=' underline", got)
	}
}

func TestSetextHeadingLevel2(t *testing.T) {
	got := render(t, "Title\n------\n")
	if !strings.Contains(got, "<h2") || !strings.Contains(got, ">Title</h2>") {
		t.Errorf("render() = %q, want an <h2> from the '-' underline", got)
	}
}

func TestSetextUnderlineAfterBlankLineIsNotAHeading(t *testing.T) {
	got := render(t, "Title\n\n======\n")
	if strings.Contains(got, "<h1") {
		t.Errorf("render() = %q, a blank line before the underline must not produce a heading", got)
	}
	if !strings.Contains(got, "<p>Title") || !strings.Contains(got, "<p>======</p>") {
		t.Errorf("render() = %q, want two separate paragraphs", got)
	}
}

func renderUnsafe(t *testing.T, src string) string {
	t.Helper()
	doc := unidok.Parse(src)
	ir := unidok.Lower(doc)
	got, err := unihtml.RenderString(ir, unihtml.Options{Unsafe: true})
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestUnknownHTMLTagFallsBackToLiteralText(t *testing.T) {
	got := renderUnsafe(t, "<frobnicate>hi\n")
	if strings.Contains(got, "<frobnicate>") {
		t.Errorf("render() = %q, an unknown tag must not be parsed as HTML", got)
	}
	if !strings.Contains(got, "&lt;frobnicate&gt;") {
		t.Errorf("render() = %q, want the '<' emitted as literal escaped text", got)
	}
}

func TestKnownHTMLTagStillParsesAsHTML(t *testing.T) {
	got := renderUnsafe(t, "<span>hi</span>\n")
	if !strings.Contains(got, "<span>hi</span>") {
		t.Errorf("render() = %q, a known tag should still parse as inline HTML", got)
	}
}
