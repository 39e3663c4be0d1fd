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

// parseBlockHTML recognizes a verbatim HTML block: a start tag occupying
// its own line, whose body is parsed as nested blocks (for may-contain-
// blocks elements) or consumed as raw text (for raw-text elements), up to
// its matching closing tag (spec.md §4.6, §4.9).
func parseBlockHTML(bs *blockSession) (*Block, bool) {
	s := bs.in.start()
	defer s.rollback()

	parseAtMostNSpaces(bs.in, 3)
	elem, ok := parseStartTag(bs.in)
	if !ok {
		return nil, false
	}
	if !parseWsAndLineEnd(bs.in) {
		return nil, false
	}

	if elem.SelfClosed || isSelfClosingTag(elem.Name) {
		full := s.apply()
		return &Block{kind: BlockHTMLKind, span: full, elem: elem}, true
	}
	if !bs.in.IsEmpty() {
		ParseLineBreak(bs.in, bs.ind)
	}

	if isRawTextTag(elem.Name) {
		bodyStart := bs.in.Pos()
		closeTag := "</" + elem.Name
		idx := findCaseInsensitive(bs.in.Rest(), closeTag)
		if idx < 0 {
			return nil, false
		}
		bs.in.Bump(idx)
		elem.RawBody = Span{Start: bodyStart, End: bs.in.Pos()}
		if _, ok := tryParseClosingTag(bs.in); !ok {
			return nil, false
		}
		full := s.apply()
		return &Block{kind: BlockHTMLKind, span: full, elem: elem}, true
	}

	children := ParseBlocks(&blockSession{in: bs.in, ind: bs.ind, ctx: BlockHTMLCtx(elem.Name), mode: bs.mode, state: bs.state})
	if !bs.in.IsEmpty() {
		tryParseClosingTag(bs.in)
	}
	parseWsAndLineEnd(bs.in)

	full := s.apply()
	return &Block{kind: BlockHTMLKind, span: full, elem: elem, children: children}, true
}
