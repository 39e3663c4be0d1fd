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

// parseList parses one or more consecutive, compatible list items into a
// ListKind block containing ListItemKind children (spec.md §4.6). A list is
// "loose" if any blank line separates its items or appears within an item's
// own blocks other than the last.
func parseList(bs *blockSession) (*Block, bool) {
	s := bs.in.start()
	defer s.rollback()

	firstMarker, ok := peekListMarker(bs.in)
	if !ok {
		return nil, false
	}

	list := &Block{
		kind:        ListKind,
		listChar:    firstMarker.char,
		listOrdered: firstMarker.ordered,
		listStart:   firstMarker.start,
	}

	loose := false
	for {
		item, itemLoose, ok := parseListItem(bs, firstMarker)
		if !ok {
			break
		}
		list.children = append(list.children, item)
		if itemLoose {
			loose = true
		}

		sp := bs.in.start()
		blanks := countBlankLinesAhead(bs.in, bs.ind)
		if blanks > 0 {
			loose = true
		}
		sp.rollback()

		next, ok := peekListMarker(bs.in)
		if !ok || !next.compatibleWith(firstMarker) {
			break
		}
	}
	if len(list.children) == 0 {
		return nil, false
	}
	list.listLoose = loose

	full := s.apply()
	list.span = full
	return list, true
}

type listMarker struct {
	char    byte
	ordered bool
	start   int
	width   int // column width of "marker + following spaces", for item indent
}

func (m listMarker) compatibleWith(o listMarker) bool {
	if m.ordered != o.ordered {
		return false
	}
	if !m.ordered {
		return m.char == o.char
	}
	return m.char == o.char // delimiter ('.' vs ')') must match too
}

// peekListMarker recognizes a bullet ('-', '+', '*') or ordered ("N." /
// "N)") marker at the start of a line, without consuming it.
func peekListMarker(in *Input) (listMarker, bool) {
	s := in.start()
	defer s.rollback()
	parseAtMostNSpaces(in, 3)

	c := in.PeekChar()
	switch c {
	case '-', '+', '*':
		in.Bump(1)
		if !markerFollowedBySpaceOrEOL(in) {
			return listMarker{}, false
		}
		return listMarker{char: byte(c), width: 2}, true
	}

	if c < '0' || c > '9' {
		return listMarker{}, false
	}
	digitsSpan := whileChar(in, func(r rune) bool { return r >= '0' && r <= '9' })
	digits := digitsSpan.Text(in.Text())
	if len(digits) > 9 {
		return listMarker{}, false
	}
	delim := in.PeekChar()
	if delim != '.' && delim != ')' {
		return listMarker{}, false
	}
	in.Bump(1)
	if !markerFollowedBySpaceOrEOL(in) {
		return listMarker{}, false
	}
	return listMarker{char: byte(delim), ordered: true, start: atoiSmall(digits), width: len(digits) + 2}, true
}

func markerFollowedBySpaceOrEOL(in *Input) bool {
	c := in.PeekChar()
	return c == ' ' || c == '\t' || c == 0 || c == '\n' || c == '\r'
}

func atoiSmall(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// parseListItem consumes one marker plus its continuation indent, then
// recurses into ParseBlocks under a SpacesIndent frame matching the
// marker's visual width.
func parseListItem(bs *blockSession, m listMarker) (*Block, bool, bool) {
	s := bs.in.start()
	defer s.rollback()

	indentWidth := parseAtMostNSpaces(bs.in, 3)
	if bs.in.PeekChar() == '-' || bs.in.PeekChar() == '+' || bs.in.PeekChar() == '*' {
		bs.in.Bump(1)
	} else {
		whileChar(bs.in, func(r rune) bool { return r >= '0' && r <= '9' })
		bs.in.Bump(1) // '.' or ')'
	}
	contWidth := parseSpacesU8(bs.in)
	if contWidth == 0 && !isLineEndOrEOF(bs.in) {
		return nil, false, false
	}
	if contWidth == 0 {
		contWidth = 1
	}

	width := indentWidth + m.width - 1 + contWidth
	if width > maxIndentSpaces {
		return nil, false, false
	}
	childInd := bs.ind.PushSpaces(width)
	children := ParseBlocks(&blockSession{in: bs.in, ind: childInd, ctx: GlobalCtx(), mode: bs.mode, state: bs.state})
	if len(children) == 0 {
		return nil, false, false
	}

	full := s.apply()
	return &Block{kind: ListItemKind, span: full, children: children}, false, true
}

func countBlankLinesAhead(in *Input, ind Indents) int {
	count := 0
	for {
		s := in.start()
		if !ParseLineBreak(in, ind) {
			s.rollback()
			return count
		}
		if !isBlankLine(in) {
			s.rollback()
			return count
		}
		s.apply()
		count++
	}
}
