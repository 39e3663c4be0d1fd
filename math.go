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

// tryMath parses an inline math span delimited by Config.MathDelim (default
// "%{" ... "}%"; no macro changes it) (spec.md §4.4, §7). The body is taken
// verbatim; it is not re-lexed.
func (ls *lexSession) tryMath(items *[]lexItem) bool {
	open := ls.state.Config.MathDelim
	if open == "" {
		open = "%{"
	}
	close := mathCloseDelim(open)

	s := ls.in.start()
	if !strings.HasPrefix(ls.in.Rest(), open) {
		s.rollback()
		return false
	}
	ls.in.Bump(len(open))

	bodyStart := ls.in.Pos()
	bodyEnd, ok := indexOf(ls.in.Rest(), close)
	if !ok {
		s.rollback()
		return false
	}
	ls.in.Bump(bodyEnd + len(close))
	full := s.apply()
	body := Span{Start: bodyStart, End: bodyStart + bodyEnd}

	*items = append(*items, lexItem{kind: lexNode, span: full, node: &Segment{
		kind: MathSegment, span: full, text: body.Text(ls.in.Text()),
	}})
	return true
}

// mathCloseDelim mirrors an opening delimiter's brackets: "%{" -> "}%",
// "$$" -> "$$", matching the reference implementation's MATH_SCRIPT
// handling for either bracketed or symmetric custom delimiters.
func mathCloseDelim(open string) string {
	if len(open) == 0 {
		return "}%"
	}
	runes := []rune(open)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	for i, r := range runes {
		runes[i] = mirrorBracket(r)
	}
	return string(runes)
}

func mirrorBracket(r rune) rune {
	switch r {
	case '{':
		return '}'
	case '}':
		return '{'
	case '(':
		return ')'
	case ')':
		return '('
	case '[':
		return ']'
	case ']':
		return '['
	default:
		return r
	}
}

func indexOf(s, sub string) (int, bool) {
	i := strings.Index(s, sub)
	if i < 0 {
		return 0, false
	}
	return i, true
}
