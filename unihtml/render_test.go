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

package unihtml_test

import (
	"strings"
	"testing"

	"github.com/unidok/unidok"
	"github.com/unidok/unidok/unihtml"
)

func TestRenderTableCellSpanAndAlignment(t *testing.T) {
	doc := &unidok.IRDocument{
		Blocks: []unidok.IRNode{
			&unidok.IRTable{
				Rows: []unidok.IRTableRow{
					{Header: true, Cells: []unidok.IRTableCell{
						{Header: true, ColSpan: 2, Inline: []unidok.IRNode{&unidok.IRText{Text: "wide"}}},
					}},
					{Cells: []unidok.IRTableCell{
						{HAlign: unidok.AlignRight, Inline: []unidok.IRNode{&unidok.IRText{Text: "r"}}},
						{RowSpan: 2, Inline: []unidok.IRNode{&unidok.IRText{Text: "tall"}}},
					}},
				},
			},
		},
	}

	got, err := unihtml.RenderString(doc, unihtml.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<th colspan="2">wide</th>`,
		`style="text-align: right"`,
		`rowspan="2"`,
		"<tbody>\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, want substring %q", got, want)
		}
	}
}

func TestRenderAppendsFootnoteSectionWhenNoPlaceholder(t *testing.T) {
	doc := &unidok.IRDocument{
		Blocks: []unidok.IRNode{&unidok.IRParagraph{Inline: []unidok.IRNode{&unidok.IRText{Text: "body"}}}},
		Footnotes: []unidok.IRFootnote{
			{Number: 1, Label: "^a", Body: []unidok.IRNode{&unidok.IRParagraph{Inline: []unidok.IRNode{&unidok.IRText{Text: "note"}}}}},
		},
	}

	got, err := unihtml.RenderString(doc, unihtml.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<section class="footnotes">`) {
		t.Errorf("Render() = %q, want an appended footnote section", got)
	}
	if !strings.Contains(got, `id="fn-1"`) {
		t.Errorf("Render() = %q, want footnote li id=\"fn-1\"", got)
	}
}

func TestRenderSuppressesFootnoteSectionWhenPlaceholderPresent(t *testing.T) {
	doc := &unidok.IRDocument{
		Blocks: []unidok.IRNode{&unidok.IRFootnotesPlaceholder{}},
		Footnotes: []unidok.IRFootnote{
			{Number: 1, Label: "^a", Body: []unidok.IRNode{&unidok.IRParagraph{Inline: []unidok.IRNode{&unidok.IRText{Text: "note"}}}}},
		},
		HasFootnotesPlaceholder: true,
	}

	got, err := unihtml.RenderString(doc, unihtml.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(got, `<section class="footnotes">`) != 1 {
		t.Errorf("Render() = %q, want exactly one footnote section (from the placeholder, not appended again)", got)
	}
}

func TestRenderCustomFootnoteSectionTag(t *testing.T) {
	doc := &unidok.IRDocument{
		Footnotes: []unidok.IRFootnote{{Number: 1, Label: "^a"}},
	}
	got, err := unihtml.RenderString(doc, unihtml.Options{FootnoteSectionTag: "Notes"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<h2>Notes</h2>") {
		t.Errorf("Render() = %q, want custom footnote section heading", got)
	}
}
