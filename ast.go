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

// Node is either a *Block or a *Segment. Unlike the teacher's pointer-tagged
// Node (which packs the two cases into one word via unsafe.Pointer to save
// memory across a very large CommonMark tree), Unidok's richer grammar
// favors a plain interface: the two node kinds carry materially different
// per-kind data (tables, macro args, HTML attributes) and the extra
// indirection is not the bottleneck here. See DESIGN.md.
type Node interface {
	Span() Span
}

// AsBlock type-asserts n to *Block, returning nil if n holds a *Segment.
func AsBlock(n Node) *Block {
	b, _ := n.(*Block)
	return b
}

// AsSegment type-asserts n to *Segment, returning nil if n holds a *Block.
func AsSegment(n Node) *Segment {
	s, _ := n.(*Segment)
	return s
}

// BlockKind enumerates the block-level node variants (spec.md §3).
type BlockKind uint8

const (
	CodeBlockKind BlockKind = 1 + iota
	ParagraphKind
	ATXHeadingKind
	SetextHeadingKind
	TableKind
	ThematicBreakKind
	ListKind
	ListItemKind
	BlockQuoteKind
	BlockMacroKind
	BlockHTMLKind
	CommentKind
	LinkRefDefKind
)

// Block is a structural element of a Unidok document.
type Block struct {
	kind     BlockKind
	span     Span
	children []Node

	// Heading level (ATXHeadingKind / SetextHeadingKind), 1..6.
	level int

	// Code block fence family/length/info-string indent.
	fenceChar  byte
	fenceLen   int
	codeIndent int
	infoString string

	// List / list item.
	listChar    byte // '-', '+', '*', '.', ')'
	listOrdered bool
	listStart   int
	listLoose   bool
	bulletStyle string // CSS list-style value; no parser path sets it, so it is always ""

	// Table.
	rows []TableRow

	// Link reference definition.
	lrdName  string
	lrdURL   Span
	lrdTitle Span
	hasTitle bool

	// Block HTML / block macro.
	elem *HTMLElement
	mac  *Macro

	// Post-annotations attached at lowering time (spec.md §9).
	annotations []*Macro
}

func (b *Block) Span() Span     { return b.span }
func (b *Block) Kind() BlockKind { return b.kind }
func (b *Block) Children() []Node { return b.children }
func (b *Block) Level() int     { return b.level }
func (b *Block) IsOrderedList() bool { return b.listOrdered }
func (b *Block) IsTightList() bool   { return !b.listLoose }
func (b *Block) Annotations() []*Macro { return b.annotations }

// TableRow is one row of a table block.
type TableRow struct {
	Header bool
	Cells  []TableCell
}

// TableCellAlign is the horizontal/vertical alignment parsed from a cell's
// meta prefix (spec.md §4.7).
type TableCellAlign uint8

const (
	AlignNone TableCellAlign = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignTop
	AlignBottom
)

// TableCell is one cell of a table row, with its metadata prefix resolved.
type TableCell struct {
	Header      bool
	HAlign      TableCellAlign
	VAlign      TableCellAlign
	ColSpan     int
	RowSpan     int
	Content     []Node // Segments
}

// SegmentKind enumerates the inline-level node variants (spec.md §3).
type SegmentKind uint8

const (
	TextSegment SegmentKind = 1 + iota
	OwnedTextSegment
	EscapedTextSegment
	SubstitutionSegment
	LineBreakSegment
	LimiterSegment
	BracesSegment
	MathSegment
	LinkSegment
	ImageSegment
	InlineMacroSegment
	InlineHTMLSegment
	HTMLEntitySegment
	FormattedSegment // bold/italic/strikethrough/super/sub
	CodeSpanSegment
	UnderlineSegment // Setext heading underline; consumed by parseParagraph
)

// FormatDelimKind identifies which delimiter produced a FormattedSegment.
type FormatDelimKind uint8

const (
	DelimNone FormatDelimKind = iota
	DelimStar                 // * or _ -> italic/bold
	DelimTilde                // ~ -> strikethrough
	DelimCaret                // ^ -> superscript
	DelimHash                 // # -> subscript
)

// Segment is an inline node.
type Segment struct {
	kind SegmentKind
	span Span

	text string // OwnedTextSegment / SubstitutionSegment replacement text

	children []Node // FormattedSegment, BracesSegment, LinkSegment (link text), InlineMacroSegment target

	// Formatting.
	delim   FormatDelimKind
	bold    bool // nested same-delim collapse producing <strong>

	// UnderlineSegment: 1 for a '=' underline, 2 for a '-' underline.
	level int

	// Links / images.
	linkDest   Span
	linkTitle  Span
	hasTitle   bool
	linkRef    string // non-empty if reference-style; resolved at lowering

	// Inline macro / HTML.
	mac  *Macro
	elem *HTMLElement

	annotations []*Macro
}

func (s *Segment) Span() Span        { return s.span }
func (s *Segment) Kind() SegmentKind { return s.kind }
func (s *Segment) Children() []Node  { return s.children }
func (s *Segment) Annotations() []*Macro { return s.annotations }
