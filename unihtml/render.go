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

// Package unihtml renders a lowered Unidok document (see the root unidok
// package's Lower) to an HTML fragment. It walks the IR and writes HTML
// bytes directly, with no intermediate element tree, covering Unidok's
// richer element set: tables with cell spans and
// alignment, strikethrough/superscript/subscript, inline math, footnote
// lists, and heading anchors.
package unihtml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unidok/unidok"
)

// Options controls rendering choices not implied by the document itself.
type Options struct {
	// FootnoteSectionTag is the heading text used for the synthesized
	// footnote section (default "Footnotes").
	FootnoteSectionTag string

	// Unsafe passes raw HTML blocks and inline HTML through verbatim.
	// When false (the default), raw HTML is escaped as text instead,
	// matching the teacher's html_renderer.go default of not trusting
	// embedded HTML unless the caller opts in.
	Unsafe bool
}

// Render writes doc to w as an HTML fragment (not a full <html> document;
// matching the teacher's html_renderer.go scope, embedding in a page shell
// is the caller's job).
func Render(w io.Writer, doc *unidok.IRDocument, opts Options) error {
	r := &renderer{w: w, doc: doc, opts: opts}
	for _, b := range doc.Blocks {
		r.block(b)
	}
	if len(doc.Footnotes) > 0 && !doc.HasFootnotesPlaceholder {
		r.footnoteSection()
	}
	return r.err
}

// RenderString is Render into a freshly allocated string.
func RenderString(doc *unidok.IRDocument, opts Options) (string, error) {
	var b strings.Builder
	if err := Render(&b, doc, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	w    io.Writer
	doc  *unidok.IRDocument
	opts Options
	err  error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) tag(name string, attrs map[string]string, body func()) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, k := range sortedKeys(attrs) {
		fmt.Fprintf(&b, ` %s="%s"`, k, EscapeAttr(attrs[k]))
	}
	b.WriteByte('>')
	r.write(b.String())
	if body != nil {
		body()
	}
	r.write("</" + name + ">\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func (r *renderer) block(n unidok.IRNode) {
	switch v := n.(type) {
	case *unidok.IRParagraph:
		r.tag("p", nil, func() { r.inlines(v.Inline) })
	case *unidok.IRHeadingBlock:
		name := "h" + strconv.Itoa(v.Level)
		attrs := map[string]string{}
		if v.Slug != "" {
			attrs["id"] = v.Slug
		}
		r.tag(name, attrs, func() { r.inlines(v.Inline) })
	case *unidok.IRCodeBlock:
		attrs := map[string]string{}
		r.write("<pre>")
		langAttrs := map[string]string{}
		if v.Info != "" {
			langAttrs["class"] = "language-" + v.Info
		}
		r.write("<code")
		for _, k := range sortedKeys(langAttrs) {
			fmt.Fprintf(r.w, ` %s="%s"`, k, EscapeAttr(langAttrs[k]))
		}
		r.write(">")
		r.write(EscapeText(v.Code))
		r.write("</code></pre>\n")
		_ = attrs
	case *unidok.IRThematicBreak:
		r.write("<hr>\n")
	case *unidok.IRBlockQuote:
		r.tag("blockquote", nil, func() { r.blocks(v.Children) })
	case *unidok.IRList:
		name := "ul"
		attrs := map[string]string{}
		if v.Ordered {
			name = "ol"
			if v.Start != 1 {
				attrs["start"] = strconv.Itoa(v.Start)
			}
		}
		if v.Style != "" {
			attrs["style"] = "list-style-type: " + v.Style
		}
		r.tag(name, attrs, func() {
			for _, item := range v.Items {
				r.tag("li", nil, func() { r.renderListItemBody(item, v.Tight) })
			}
		})
	case *unidok.IRTable:
		r.table(v)
	case *unidok.IRHTMLBlock:
		if r.opts.Unsafe {
			r.write(v.Raw)
		} else {
			r.write(EscapeText(v.Raw))
		}
		r.write("\n")
	case *unidok.IRTOCPlaceholder:
		r.toc()
	case *unidok.IRFootnotesPlaceholder:
		r.footnoteSection()
	}
}

// renderListItemBody renders a list item's children, unwrapping the sole
// paragraph wrapper for a tight list the way CommonMark-derived renderers
// do (spec.md's tight/loose list distinction).
func (r *renderer) renderListItemBody(item unidok.IRListItem, tight bool) {
	for _, c := range item.Children {
		if p, ok := c.(*unidok.IRParagraph); ok && tight {
			r.inlines(p.Inline)
			continue
		}
		r.block(c)
	}
}

func (r *renderer) blocks(nodes []unidok.IRNode) {
	for _, n := range nodes {
		r.block(n)
	}
}

func (r *renderer) table(t *unidok.IRTable) {
	r.write("<table>\n")
	inBody := false
	for _, row := range t.Rows {
		if !row.Header && !inBody {
			r.write("<tbody>\n")
			inBody = true
		}
		r.write("<tr>\n")
		for _, cell := range row.Cells {
			r.cell(cell)
		}
		r.write("</tr>\n")
	}
	if inBody {
		r.write("</tbody>\n")
	}
	r.write("</table>\n")
}

func (r *renderer) cell(c unidok.IRTableCell) {
	name := "td"
	if c.Header {
		name = "th"
	}
	attrs := map[string]string{}
	var styles []string
	switch c.HAlign {
	case unidok.AlignLeft:
		styles = append(styles, "text-align: left")
	case unidok.AlignRight:
		styles = append(styles, "text-align: right")
	case unidok.AlignCenter:
		styles = append(styles, "text-align: center")
	}
	switch c.VAlign {
	case unidok.AlignTop:
		styles = append(styles, "vertical-align: top")
	case unidok.AlignBottom:
		styles = append(styles, "vertical-align: bottom")
	}
	if len(styles) > 0 {
		attrs["style"] = strings.Join(styles, "; ")
	}
	if c.ColSpan > 1 {
		attrs["colspan"] = strconv.Itoa(c.ColSpan)
	}
	if c.RowSpan > 1 {
		attrs["rowspan"] = strconv.Itoa(c.RowSpan)
	}
	r.tag(name, attrs, func() { r.inlines(c.Inline) })
}

func (r *renderer) toc() {
	if len(r.doc.TOC) == 0 {
		return
	}
	r.write(`<nav class="toc">` + "\n<ul>\n")
	base := r.doc.TOC[0].Level
	for _, h := range r.doc.TOC {
		indent := strings.Repeat("  ", h.Level-base)
		if h.Slug != "" {
			fmt.Fprintf(r.w, `%s<li><a href="#%s">%s</a></li>`+"\n", indent, h.Slug, EscapeText(h.Text))
		} else {
			fmt.Fprintf(r.w, "%s<li>%s</li>\n", indent, EscapeText(h.Text))
		}
	}
	r.write("</ul>\n</nav>\n")
}

func (r *renderer) footnoteSection() {
	tag := r.opts.FootnoteSectionTag
	if tag == "" {
		tag = "Footnotes"
	}
	r.write(`<section class="footnotes">` + "\n")
	r.write("<h2>" + EscapeText(tag) + "</h2>\n<ol>\n")
	for _, fn := range r.doc.Footnotes {
		r.write(fmt.Sprintf(`<li id="fn-%d">`, fn.Number) + "\n")
		r.blocks(fn.Body)
		r.write("</li>\n")
	}
	r.write("</ol>\n</section>\n")
}

func (r *renderer) inlines(nodes []unidok.IRNode) {
	for _, n := range nodes {
		r.inline(n)
	}
}

func (r *renderer) inline(n unidok.IRNode) {
	switch v := n.(type) {
	case *unidok.IRText:
		r.write(EscapeText(v.Text))
	case *unidok.IRLineBreak:
		r.write("<br>\n")
	case *unidok.IRCodeSpan:
		r.write("<code>" + EscapeText(v.Text) + "</code>")
	case *unidok.IRMath:
		r.write(`<span class="math">` + EscapeText(v.Text) + "</span>")
	case *unidok.IREmphasis:
		tag := emphasisTag(v)
		if tag == "" {
			r.inlines(v.Children)
			return
		}
		r.write("<" + tag + ">")
		r.inlines(v.Children)
		r.write("</" + tag + ">")
	case *unidok.IRLink:
		attrs := map[string]string{"href": v.Dest}
		if v.HasTitle {
			attrs["title"] = v.Title
		}
		r.write("<a")
		for _, k := range sortedKeys(attrs) {
			fmt.Fprintf(r.w, ` %s="%s"`, k, EscapeAttr(attrs[k]))
		}
		r.write(">")
		r.inlines(v.Children)
		r.write("</a>")
	case *unidok.IRImage:
		attrs := map[string]string{"src": v.Dest, "alt": v.Alt}
		if v.HasTitle {
			attrs["title"] = v.Title
		}
		r.write("<img")
		for _, k := range sortedKeys(attrs) {
			fmt.Fprintf(r.w, ` %s="%s"`, k, EscapeAttr(attrs[k]))
		}
		r.write(">")
	case *unidok.IRAnnotated:
		attrs := map[string]string{}
		for k, val := range v.Attrs {
			attrs[k] = val
		}
		if v.Name != "" {
			attrs["data-macro"] = strings.ToLower(v.Name)
		}
		r.write("<span")
		for _, k := range sortedKeys(attrs) {
			fmt.Fprintf(r.w, ` %s="%s"`, k, EscapeAttr(attrs[k]))
		}
		r.write(">")
		r.inline(v.Child)
		r.write("</span>")
	case *unidok.IRFootnoteRef:
		r.write(fmt.Sprintf(`<sup id="fnref-%d"><a href="#fn-%d">%d</a></sup>`, v.Number, v.Number, v.Number))
	case *unidok.IRHTMLInline:
		if r.opts.Unsafe {
			r.write(v.Raw)
		} else {
			r.write(EscapeText(v.Raw))
		}
	}
}

func emphasisTag(v *unidok.IREmphasis) string {
	switch v.Delim {
	case unidok.DelimStar:
		if v.Bold {
			return "strong"
		}
		return "em"
	case unidok.DelimTilde:
		return "del"
	case unidok.DelimCaret:
		return "sup"
	case unidok.DelimHash:
		return "sub"
	default:
		return ""
	}
}
