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

import (
	"strings"

	"golang.org/x/net/html"
)

// Lower converts a parsed Document into its IR: text slices are coalesced,
// link/image references are resolved against the document's link-ref map
// (falling back to literal bracket text on a miss), footnotes are numbered
// in first-reference order, and heading slugs are computed from each
// heading's plaintext projection (spec.md's "AST → IR lowering" stage).
func Lower(doc *Document) *IRDocument {
	lw := &lowerer{state: doc.state}
	out := &IRDocument{}
	for _, b := range doc.Blocks {
		if n := lw.lowerBlock(AsBlock(b)); n != nil {
			out.Blocks = append(out.Blocks, n)
		}
	}
	for _, key := range lw.state.footnoteOrder {
		body := lw.state.footnoteBodies[key]
		out.Footnotes = append(out.Footnotes, IRFootnote{
			Number: lw.state.footnoteSeen[key],
			Label:  key,
			Body:   []IRNode{&IRParagraph{Inline: []IRNode{&IRText{Text: body.Text(lw.state.source)}}}},
		})
	}
	out.TOC = lw.headings
	out.HasFootnotesPlaceholder = lw.sawFootnotesPlaceholder
	return out
}

type lowerer struct {
	state                   *ParseState
	headings                []IRHeading
	sawTOCPlaceholder       bool
	sawFootnotesPlaceholder bool
}

func (lw *lowerer) lowerBlock(b *Block) IRNode {
	if b == nil {
		return nil
	}
	switch b.kind {
	case ParagraphKind:
		return &IRParagraph{Inline: coalesceText(lw.lowerInlines(b.children))}
	case ATXHeadingKind, SetextHeadingKind:
		inline := coalesceText(lw.lowerInlines(b.children))
		plain := plainTextOf(inline)
		slug := ""
		if lw.state.Config.Anchor != AnchorNone {
			slug = lw.state.slugify(plain)
		}
		hb := &IRHeadingBlock{Level: b.level, Slug: slug, Inline: inline, InTOC: true}
		lw.headings = append(lw.headings, IRHeading{Level: b.level, Slug: slug, Text: plain})
		return hb
	case CodeBlockKind:
		var code string
		if len(b.children) == 1 {
			if seg := AsSegment(b.children[0]); seg != nil {
				code = seg.span.Text(lw.state.source)
			}
		}
		return &IRCodeBlock{Info: b.infoString, Code: code}
	case ThematicBreakKind:
		return &IRThematicBreak{}
	case BlockQuoteKind:
		return &IRBlockQuote{Children: lw.lowerBlocks(b.children)}
	case ListKind:
		list := &IRList{Ordered: b.listOrdered, Start: b.listStart, Tight: !b.listLoose, Style: b.bulletStyle}
		for _, c := range b.children {
			if item := AsBlock(c); item != nil {
				list.Items = append(list.Items, IRListItem{Children: lw.lowerBlocks(item.children)})
			}
		}
		return list
	case TableKind:
		t := &IRTable{}
		for _, row := range b.rows {
			irRow := IRTableRow{Header: row.Header}
			for _, cell := range row.Cells {
				irRow.Cells = append(irRow.Cells, IRTableCell{
					Header: cell.Header, HAlign: cell.HAlign, VAlign: cell.VAlign,
					ColSpan: cell.ColSpan, RowSpan: cell.RowSpan,
					Inline: coalesceText(lw.lowerInlines(cell.Content)),
				})
			}
			t.Rows = append(t.Rows, irRow)
		}
		return t
	case BlockHTMLKind:
		return &IRHTMLBlock{Raw: b.span.Text(lw.state.source)}
	case CommentKind:
		return nil
	case LinkRefDefKind:
		return nil
	case BlockMacroKind:
		return lw.lowerBlockMacro(b)
	default:
		return nil
	}
}

// lowerBlockMacro applies spec.md §9's annotation semantics: TOC/FOOTNOTES
// synthesize content in place of their target; everything else lowers a
// single target block unchanged and groups several body blocks in an
// IRBlockQuote (PASS/NOPASS already took effect during
// parsing by gating ParsingMode, so there is nothing left to do for them
// here beyond passing the target through).
func (lw *lowerer) lowerBlockMacro(b *Block) IRNode {
	name := ""
	if b.mac != nil {
		name = b.mac.Name
	}
	switch name {
	case "TOC":
		lw.sawTOCPlaceholder = true
		return &IRTOCPlaceholder{}
	case "FOOTNOTES":
		lw.sawFootnotesPlaceholder = true
		return &IRFootnotesPlaceholder{}
	default:
		if len(b.children) == 1 {
			return lw.lowerBlock(AsBlock(b.children[0]))
		}
		group := &IRBlockQuote{Children: lw.lowerBlocks(b.children)}
		return group
	}
}

func (lw *lowerer) lowerBlocks(nodes []Node) []IRNode {
	var out []IRNode
	for _, n := range nodes {
		if ir := lw.lowerBlock(AsBlock(n)); ir != nil {
			out = append(out, ir)
		}
	}
	return out
}

func (lw *lowerer) lowerInlines(nodes []Node) []IRNode {
	var out []IRNode
	for _, n := range nodes {
		if ir := lw.lowerSegment(AsSegment(n)); ir != nil {
			out = append(out, ir)
		}
	}
	return out
}

func (lw *lowerer) lowerSegment(s *Segment) IRNode {
	if s == nil {
		return nil
	}
	switch s.kind {
	case TextSegment:
		return &IRText{Text: s.span.Text(lw.state.source)}
	case OwnedTextSegment, SubstitutionSegment:
		if s.text != "" {
			return &IRText{Text: s.text}
		}
		return &IRText{Text: s.span.Text(lw.state.source)}
	case EscapedTextSegment:
		return &IRText{Text: s.span.Text(lw.state.source)}
	case HTMLEntitySegment:
		return &IRText{Text: decodeEntity(s.span.Text(lw.state.source))}
	case LineBreakSegment:
		return &IRLineBreak{}
	case LimiterSegment:
		return nil
	case BracesSegment:
		return &IREmphasis{Delim: DelimNone, Children: coalesceText(lw.lowerInlines(s.children))}
	case MathSegment:
		return &IRMath{Text: s.text}
	case CodeSpanSegment:
		return &IRCodeSpan{Text: s.text}
	case FormattedSegment:
		return &IREmphasis{Bold: s.bold, Delim: s.delim, Children: coalesceText(lw.lowerInlines(s.children))}
	case LinkSegment:
		return lw.lowerLink(s)
	case ImageSegment:
		return lw.lowerImage(s)
	case InlineMacroSegment:
		return lw.lowerInlineMacro(s)
	case InlineHTMLSegment:
		return &IRHTMLInline{Raw: s.span.Text(lw.state.source)}
	default:
		return nil
	}
}

func (lw *lowerer) lowerLink(s *Segment) IRNode {
	if s.linkRef != "" {
		if strings.HasPrefix(s.linkRef, "^") {
			num := lw.state.footnoteNumber(s.linkRef)
			return &IRFootnoteRef{Number: num, Label: s.linkRef}
		}
		if def, ok := lw.state.resolveLinkRef(s.linkRef); ok {
			return &IRLink{
				Dest: def.dest.Text(lw.state.source), Title: def.title.Text(lw.state.source), HasTitle: def.has,
				Children: coalesceText(lw.lowerInlines(s.children)),
			}
		}
		return &IRText{Text: "[" + plainTextOf(coalesceText(lw.lowerInlines(s.children))) + "]"}
	}
	return &IRLink{
		Dest: s.linkDest.Text(lw.state.source), Title: s.linkTitle.Text(lw.state.source), HasTitle: s.hasTitle,
		Children: coalesceText(lw.lowerInlines(s.children)),
	}
}

func (lw *lowerer) lowerImage(s *Segment) IRNode {
	alt := plainTextOf(coalesceText(lw.lowerInlines(s.children)))
	if s.linkRef != "" {
		if def, ok := lw.state.resolveLinkRef(s.linkRef); ok {
			return &IRImage{Dest: def.dest.Text(lw.state.source), Title: def.title.Text(lw.state.source), HasTitle: def.has, Alt: alt}
		}
		return &IRText{Text: "![" + alt + "]"}
	}
	return &IRImage{Dest: s.linkDest.Text(lw.state.source), Title: s.linkTitle.Text(lw.state.source), HasTitle: s.hasTitle, Alt: alt}
}

// lowerInlineMacro applies an inline annotation macro to its target
// (spec.md §4.8/§9). PASS/NOPASS already took effect during parsing (see
// structuralMacroModeChange); what's left at lowering is to wrap the
// target in an IRAnnotated so the renderer can emit the macro's HTML
// attributes (its key=value args, plus a data-macro marker when the macro
// has a name) without the AST needing a dedicated wrapper node per
// macro kind ("macros wrap their target in the IR, not the AST").
func (lw *lowerer) lowerInlineMacro(s *Segment) IRNode {
	children := lw.lowerInlines(s.children)
	var child IRNode
	switch len(children) {
	case 0:
		child = &IRText{Text: ""}
	case 1:
		child = children[0]
	default:
		child = &IREmphasis{Delim: DelimNone, Children: coalesceText(children)}
	}
	if s.mac == nil {
		return child
	}
	attrs := map[string]string{}
	for _, a := range s.mac.Args {
		if a.Kind == MacroArgKeyValue {
			attrs[a.Key] = a.Value.Text(lw.state.source)
		}
	}
	return &IRAnnotated{Name: s.mac.Name, Attrs: attrs, Child: child}
}

func decodeEntity(raw string) string {
	return html.UnescapeString(raw)
}

// coalesceText merges consecutive *IRText nodes into one, implementing
// spec.md's "collapse adjacent text slices" lowering step.
func coalesceText(nodes []IRNode) []IRNode {
	var out []IRNode
	for _, n := range nodes {
		t, ok := n.(*IRText)
		if !ok {
			out = append(out, n)
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(*IRText); ok {
				prev.Text += t.Text
				continue
			}
		}
		out = append(out, &IRText{Text: t.Text})
	}
	return out
}

func plainTextOf(nodes []IRNode) string {
	var b strings.Builder
	var walk func(n IRNode)
	walk = func(n IRNode) {
		switch v := n.(type) {
		case *IRText:
			b.WriteString(v.Text)
		case *IRCodeSpan:
			b.WriteString(v.Text)
		case *IRMath:
			b.WriteString(v.Text)
		case *IREmphasis:
			for _, c := range v.Children {
				walk(c)
			}
		case *IRLink:
			for _, c := range v.Children {
				walk(c)
			}
		case *IRImage:
			b.WriteString(v.Alt)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}
