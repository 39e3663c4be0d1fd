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

// tryLink implements spec.md §8 scenario 3: inline `[text](dest "title")`,
// reference `[text][label]`, and shortcut `[text]` forms. Reference and
// shortcut forms defer to ParseState, since a forward-declared reference is
// legal and resolved only once the whole document has been parsed.
func (ls *lexSession) tryLink(items *[]lexItem) bool {
	return ls.parseLinkOrImage(items, false)
}

// tryImage is tryLink preceded by '!' and producing an ImageSegment.
func (ls *lexSession) tryImage(items *[]lexItem) bool {
	if ls.in.PeekChar() != '!' {
		return false
	}
	s := ls.in.start()
	ls.in.Bump(1)
	if ls.in.PeekChar() != '[' {
		s.rollback()
		return false
	}
	s.rollback() // parseLinkOrImage re-consumes from '!'
	return ls.parseLinkOrImage(items, true)
}

func (ls *lexSession) parseLinkOrImage(items *[]lexItem, image bool) bool {
	s := ls.in.start()
	if image {
		ls.in.Bump(1) // '!'
	}
	if ls.in.PeekChar() != '[' {
		s.rollback()
		return false
	}
	ls.in.Bump(1)

	textStart := ls.in.Pos()
	text := lexSegments(&lexSession{in: ls.in, ind: ls.ind, ctx: LinkOrImgCtx(), mode: ls.mode, state: ls.state})
	if ls.in.PeekChar() != ']' {
		s.rollback()
		return false
	}
	textEnd := ls.in.Pos()
	ls.in.Bump(1)
	rawLabel := Span{Start: textStart, End: textEnd}.Text(ls.in.Text())

	seg := &Segment{children: text}
	if image {
		seg.kind = ImageSegment
	} else {
		seg.kind = LinkSegment
	}

	switch {
	case ls.in.PeekChar() == '(':
		if !parseInlineLinkTail(ls.in, ls.ind, seg) {
			s.rollback()
			return false
		}
	case ls.in.PeekChar() == '[':
		label, ok := parseBracketLabel(ls.in)
		if !ok {
			s.rollback()
			return false
		}
		if label == "" {
			label = rawLabel
		}
		seg.linkRef = label
	default:
		seg.linkRef = rawLabel
	}

	seg.span = s.apply()
	*items = append(*items, lexItem{kind: lexNode, span: seg.span, node: seg})
	return true
}

// parseInlineLinkTail parses "(dest title?)" immediately following a link
// or image's closing ']'.
func parseInlineLinkTail(in *Input, ind Indents, seg *Segment) bool {
	s := in.start()
	defer s.rollback()

	in.Bump(1) // '('
	parseSpaces(in)

	destStart := in.Pos()
	if in.PeekChar() == '<' {
		in.Bump(1)
		destStart = in.Pos()
		if _, ok := untilCharFallible(in, func(r rune) bool { return r == '>' }); !ok {
			return false
		}
		destEnd := in.Pos()
		in.Bump(1)
		seg.linkDest = Span{Start: destStart, End: destEnd}
	} else {
		for {
			c := in.PeekChar()
			if c == 0 || c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ')' {
				break
			}
			if c == '(' {
				return false
			}
			in.Bump(runeLen(c))
		}
		seg.linkDest = Span{Start: destStart, End: in.Pos()}
	}

	parseSpaces(in)
	if in.PeekChar() == '"' || in.PeekChar() == '\'' {
		title, ok := quotedString(in, ind)
		if !ok {
			return false
		}
		seg.linkTitle = title
		seg.hasTitle = true
		parseSpaces(in)
	}

	if in.PeekChar() != ')' {
		return false
	}
	in.Bump(1)
	s.apply()
	return true
}

// parseBracketLabel parses a "[label]" reference-style suffix, returning an
// empty label (collapsed reference) when the brackets are empty.
func parseBracketLabel(in *Input) (string, bool) {
	s := in.start()
	defer s.rollback()

	in.Bump(1) // '['
	start := in.Pos()
	span, ok := untilCharFallible(in, func(r rune) bool { return r == ']' })
	if !ok {
		return "", false
	}
	_ = start
	in.Bump(1)
	s.apply()
	return span.Text(in.Text()), true
}
