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

// TestInlinePassNoPassChangesParsingMode exercises the wiring that makes
// @PASS/@NOPASS change the mode the braced target is actually lexed with
// (not just a lowering-time label): NOPASS(i) should leave "*x*" as literal
// text, PASS(i) should let it lex as emphasis.
func TestInlinePassNoPassChangesParsingMode(t *testing.T) {
	tests := []struct {
		name           string
		src            string
		wantEmphasized bool
	}{
		{"NOPASS(i) suppresses emphasis parsing", "@NOPASS(i){*x*}\n", false},
		{"PASS(i) allows emphasis parsing", "@PASS(i){*x*}\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := unidok.Parse(tt.src)
			ir := unidok.Lower(doc)
			got, err := unihtml.RenderString(ir, unihtml.Options{})
			if err != nil {
				t.Fatal(err)
			}
			hasEmphasis := strings.Contains(got, "<em>x</em>")
			if hasEmphasis != tt.wantEmphasized {
				t.Errorf("Render(%q) = %q, wantEmphasized %v", tt.src, got, tt.wantEmphasized)
			}
			if !strings.Contains(got, `data-macro=`) {
				t.Errorf("Render(%q) = %q, want a data-macro wrapper span", tt.src, got)
			}
		})
	}
}

// TestUnsafeOptionControlsRawHTMLEscaping exercises the --unsafe wiring: raw
// inline/block HTML is escaped by default and passed through verbatim only
// when the caller opts in.
func TestUnsafeOptionControlsRawHTMLEscaping(t *testing.T) {
	src := "<script>alert(1)</script>\n"

	doc := unidok.Parse(src)
	ir := unidok.Lower(doc)

	safe, err := unihtml.RenderString(ir, unihtml.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(safe, "<script>") {
		t.Errorf("default rendering must escape raw HTML, got %q", safe)
	}

	unsafe, err := unihtml.RenderString(ir, unihtml.Options{Unsafe: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(unsafe, "<script>alert(1)</script>") {
		t.Errorf("Unsafe:true rendering must pass raw HTML through verbatim, got %q", unsafe)
	}
}
