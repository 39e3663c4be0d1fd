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

import "strings"

// tryInlineHTML implements spec.md §4.9's inline forms: a start tag, an end
// tag, an HTML comment, or a self-closing void element. Container elements
// recurse into their body under InlineHtmlContext(elem) until the matching
// closing tag; raw-text elements (script/style/textarea/title) capture
// their body verbatim.
func (ls *lexSession) tryInlineHTML(items *[]lexItem) bool {
	if ls.in.PeekChar() != '<' {
		return false
	}

	if span, ok := tryParseComment(ls.in); ok {
		*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: InlineHTMLSegment, span: span}})
		return true
	}

	if span, ok := tryParseClosingTag(ls.in); ok {
		*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: InlineHTMLSegment, span: span}})
		return true
	}

	s := ls.in.start()
	elem, ok := parseStartTag(ls.in)
	if !ok {
		s.rollback()
		return false
	}

	if elem.SelfClosed || isSelfClosingTag(elem.Name) {
		span := s.apply()
		*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: InlineHTMLSegment, span: span, elem: elem}})
		return true
	}

	if isRawTextTag(elem.Name) {
		bodyStart := ls.in.Pos()
		closeTag := "</" + elem.Name
		idx := findCaseInsensitive(ls.in.Rest(), closeTag)
		if idx < 0 {
			s.rollback()
			return false
		}
		ls.in.Bump(idx)
		elem.RawBody = Span{Start: bodyStart, End: ls.in.Pos()}
		if _, ok := tryParseClosingTag(ls.in); !ok {
			s.rollback()
			return false
		}
		span := s.apply()
		*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: InlineHTMLSegment, span: span, elem: elem}})
		return true
	}

	body := lexSegments(&lexSession{in: ls.in, ind: ls.ind, ctx: InlineHTMLCtx(elem.Name), mode: ls.mode, state: ls.state})
	if _, ok := tryParseClosingTag(ls.in); !ok {
		s.rollback()
		return false
	}
	span := s.apply()
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: InlineHTMLSegment, span: span, elem: elem, children: body}})
	return true
}

func findCaseInsensitive(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}

func tryParseComment(in *Input) (Span, bool) {
	s := in.start()
	defer s.rollback()
	if !strings.HasPrefix(in.Rest(), "<!--") {
		return Span{}, false
	}
	in.Bump(4)
	idx := strings.Index(in.Rest(), "-->")
	if idx < 0 {
		return Span{}, false
	}
	in.Bump(idx + 3)
	return s.apply(), true
}

func tryParseClosingTag(in *Input) (Span, bool) {
	s := in.start()
	defer s.rollback()
	if in.PeekChar() != '<' {
		return Span{}, false
	}
	in.Bump(1)
	if in.PeekChar() != '/' {
		return Span{}, false
	}
	in.Bump(1)
	nameSpan := whileChar(in, isHTMLNameRune)
	if nameSpan.Len() == 0 {
		return Span{}, false
	}
	parseSpaces(in)
	if in.PeekChar() != '>' {
		return Span{}, false
	}
	in.Bump(1)
	return s.apply(), true
}

// peekClosingTag reports whether the cursor sits exactly at "</elem>"
// (case-insensitive, as HTML tag names are), without consuming anything.
func peekClosingTag(in *Input, elem string) bool {
	s := in.start()
	defer s.rollback()
	span, ok := tryParseClosingTag(in)
	if !ok {
		return false
	}
	text := span.Text(in.Text())
	inner := strings.Trim(strings.TrimPrefix(strings.TrimSuffix(text, ">"), "</"), " \t")
	return strings.EqualFold(inner, elem)
}

func isHTMLNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
}

// parseStartTag parses "<name attr attr="val" .../>?" without the body.
func parseStartTag(in *Input) (*HTMLElement, bool) {
	s := in.start()
	defer s.rollback()

	if in.PeekChar() != '<' {
		return nil, false
	}
	in.Bump(1)
	nameSpan := whileChar(in, isHTMLNameRune)
	if nameSpan.Len() == 0 {
		return nil, false
	}
	name := nameSpan.Text(in.Text())
	if !isKnownHTMLTag(name) {
		return nil, false
	}
	elem := &HTMLElement{Name: name}

	for {
		parseSpaces(in)
		if in.PeekChar() == '/' {
			in.Bump(1)
			if in.PeekChar() != '>' {
				return nil, false
			}
			in.Bump(1)
			elem.SelfClosed = true
			s.apply()
			return elem, true
		}
		if in.PeekChar() == '>' {
			in.Bump(1)
			s.apply()
			return elem, true
		}
		attrNameSpan := whileChar(in, func(r rune) bool {
			return r != '=' && r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '/' && r != '>'
		})
		if attrNameSpan.Len() == 0 {
			return nil, false
		}
		attr := HTMLAttr{Name: attrNameSpan.Text(in.Text())}
		parseSpaces(in)
		if in.PeekChar() == '=' {
			in.Bump(1)
			parseSpaces(in)
			switch in.PeekChar() {
			case '"', '\'':
				v, ok := quotedString(in, Indents{})
				if !ok {
					return nil, false
				}
				attr.Value = v
			default:
				v := whileChar(in, func(r rune) bool {
					return r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '>'
				})
				attr.Value = v
			}
			attr.HasValue = true
		}
		elem.Attrs = append(elem.Attrs, attr)
	}
}
