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

// IRNode is the lowered representation Parse produces once link references
// are resolved, footnotes are numbered, and macro annotations have been
// reparented onto the nodes they modify. Unlike the parse-time AST (ast.go)
// it holds owned strings instead of source spans, since the lowering pass
// may synthesize or rewrite text (substitutions, entity decoding, a TOC).
type IRNode interface {
	irNode()
}

// IRDocument is the root of a lowered document.
type IRDocument struct {
	Blocks    []IRNode
	Footnotes []IRFootnote // in first-reference order
	TOC       []IRHeading

	// HasFootnotesPlaceholder reports whether a @FOOTNOTES macro placed the
	// footnote section explicitly; if false and Footnotes is non-empty, the
	// renderer appends the section at the end of the document instead.
	HasFootnotesPlaceholder bool
}

// IRHeading is one entry of the table of contents (see unitoc).
type IRHeading struct {
	Level int
	Slug  string
	Text  string
}

// IRFootnote is one footnote definition's lowered body, in the order it was
// first referenced (spec.md §4.7).
type IRFootnote struct {
	Number int
	Label  string
	Body   []IRNode
}

type (
	IRParagraph struct {
		Inline []IRNode
	}
	IRHeadingBlock struct {
		Level   int
		Slug    string
		Inline  []IRNode
		InTOC   bool
	}
	IRCodeBlock struct {
		Info string
		Code string
	}
	IRThematicBreak struct{}
	IRBlockQuote struct {
		Children []IRNode
	}
	IRList struct {
		Ordered bool
		Start   int
		Tight   bool
		Style   string
		Items   []IRListItem
	}
	IRListItem struct {
		Children []IRNode
	}
	IRTable struct {
		Rows []IRTableRow
	}
	IRTableRow struct {
		Header bool
		Cells  []IRTableCell
	}
	IRTableCell struct {
		Header  bool
		HAlign  TableCellAlign
		VAlign  TableCellAlign
		ColSpan int
		RowSpan int
		Inline  []IRNode
	}
	IRHTMLBlock struct {
		Raw string
	}
	// IRTOCPlaceholder marks where a @TOC macro appeared; the renderer
	// substitutes IRDocument.TOC at this position regardless of whether
	// later headings in the document hadn't been lowered yet.
	IRTOCPlaceholder struct{}
	// IRFootnotesPlaceholder marks where a @FOOTNOTES macro appeared; the
	// renderer substitutes IRDocument.Footnotes here instead of appending
	// the footnote section at the very end of the document.
	IRFootnotesPlaceholder struct{}

	IRText struct {
		Text string
	}
	IRLineBreak struct{}
	IRCodeSpan struct {
		Text string
	}
	IRMath struct {
		Text string
	}
	IREmphasis struct {
		Bold     bool
		Delim    FormatDelimKind
		Children []IRNode
	}
	IRLink struct {
		Dest     string
		Title    string
		HasTitle bool
		Children []IRNode
	}
	IRImage struct {
		Dest     string
		Title    string
		HasTitle bool
		Alt      string
	}
	IRFootnoteRef struct {
		Number int
		Label  string
	}
	IRHTMLInline struct {
		Raw string
	}
	// IRAnnotated wraps an inline node that carried a macro annotation
	// (spec.md §9: "macros wrap their target in the IR, not the AST").
	// Name is the macro's name ("" for the attribute-only form); Attrs
	// holds key=value args for the renderer to emit as HTML attributes.
	IRAnnotated struct {
		Name  string
		Attrs map[string]string
		Child IRNode
	}
)

func (*IRParagraph) irNode()     {}
func (*IRHeadingBlock) irNode()  {}
func (*IRCodeBlock) irNode()     {}
func (*IRThematicBreak) irNode() {}
func (*IRBlockQuote) irNode()    {}
func (*IRList) irNode()          {}
func (*IRListItem) irNode()      {}
func (*IRTable) irNode()         {}
func (*IRHTMLBlock) irNode()     {}
func (*IRTOCPlaceholder) irNode()      {}
func (*IRFootnotesPlaceholder) irNode() {}
func (*IRText) irNode()          {}
func (*IRLineBreak) irNode()     {}
func (*IRCodeSpan) irNode()      {}
func (*IRMath) irNode()          {}
func (*IREmphasis) irNode()      {}
func (*IRLink) irNode()          {}
func (*IRImage) irNode()         {}
func (*IRFootnoteRef) irNode()   {}
func (*IRHTMLInline) irNode()    {}
func (*IRAnnotated) irNode()     {}
