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

// parseCodeBlock parses a fenced code block: a line of >= 3 backticks or
// tildes, an optional info string, its body up to a matching-or-longer
// closing fence of the same character (or end of input/container), and the
// closing fence line itself (spec.md §4.6).
func parseCodeBlock(bs *blockSession) (*Block, bool) {
	s := bs.in.start()
	defer s.rollback()

	indent := parseAtMostNSpaces(bs.in, 3)
	c := bs.in.PeekChar()
	if c != '`' && c != '~' {
		return nil, false
	}
	fenceLen := 0
	for bs.in.PeekChar() == c {
		bs.in.Bump(1)
		fenceLen++
	}
	if fenceLen < 3 {
		return nil, false
	}

	parseSpaces(bs.in)
	infoSpan := untilChar(bs.in, func(r rune) bool { return r == '\n' || r == '\r' })
	if c == '`' && containsRune(infoSpan.Text(bs.in.Text()), '`') {
		return nil, false
	}
	if !parseLineEnd(bs.in) {
		return nil, false
	}
	if !bs.in.IsEmpty() {
		ParseLineBreak(bs.in, bs.ind)
	}

	bodyStart := bs.in.Pos()
	bodyEnd := bodyStart
	for {
		if bs.in.IsEmpty() {
			bodyEnd = bs.in.Pos()
			break
		}
		lineStart := bs.in.Pos()
		if closingFence(bs.in, byte(c), fenceLen) {
			bodyEnd = lineStart
			parseWsAndLineEnd(bs.in)
			break
		}
		untilChar(bs.in, func(r rune) bool { return r == '\n' || r == '\r' })
		bodyEnd = bs.in.Pos()
		if bs.in.IsEmpty() {
			break
		}
		if !ParseLineBreak(bs.in, bs.ind) {
			break
		}
	}

	full := s.apply()
	return &Block{
		kind: CodeBlockKind, span: full,
		fenceChar: c0(c), fenceLen: fenceLen, codeIndent: indent,
		infoString: trimASCIISpace(infoSpan.Text(bs.in.Text())),
		children:   []Node{&Segment{kind: TextSegment, span: Span{Start: bodyStart, End: bodyEnd}}},
	}, true
}

func c0(r rune) byte {
	if r < 128 {
		return byte(r)
	}
	return 0
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func closingFence(in *Input, fenceChar byte, minLen int) bool {
	s := in.start()
	defer s.rollback()
	parseAtMostNSpaces(in, 3)
	n := 0
	for in.PeekChar() == rune(fenceChar) {
		in.Bump(1)
		n++
	}
	if n < minLen {
		return false
	}
	parseSpaces(in)
	return parseLineEnd(in)
}
