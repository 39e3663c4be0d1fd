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

// tryCodeSpan implements spec.md §8 scenario 4: a code span is delimited by
// a backtick run of some length N; it ends at the next run of exactly N
// backticks, however far away, crossing line breaks. One leading and one
// trailing space are stripped if the content isn't all spaces (CommonMark's
// code-span whitespace rule, reused here per the teacher's convention).
func (ls *lexSession) tryCodeSpan(items *[]lexItem) bool {
	if ls.in.PeekChar() != '`' {
		return false
	}
	s := ls.in.start()

	fenceLen := peekBacktickRun(ls.in)
	ls.in.Bump(fenceLen)

	contentStart := ls.in.Pos()
	for {
		if ls.in.IsEmpty() {
			s.rollback()
			return false
		}
		if ls.in.PeekChar() == '`' {
			run := peekBacktickRun(ls.in)
			if run == fenceLen {
				contentEnd := ls.in.Pos()
				ls.in.Bump(run)
				full := s.apply()
				content := Span{Start: contentStart, End: contentEnd}
				content = trimCodeSpanPadding(ls.in.Text(), content)
				*items = append(*items, lexItem{kind: lexNode, span: full, node: &Segment{
					kind: CodeSpanSegment, span: full, text: content.Text(ls.in.Text()),
				}})
				return true
			}
			ls.in.Bump(run)
			continue
		}
		if !ParseLineBreak(ls.in, ls.ind) {
			ls.in.Bump(runeLen(ls.in.PeekChar()))
		}
	}
}

func trimCodeSpanPadding(source string, content Span) Span {
	text := content.Text(source)
	if len(text) < 2 {
		return content
	}
	if text[0] != ' ' || text[len(text)-1] != ' ' {
		return content
	}
	allSpaces := true
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' {
			allSpaces = false
			break
		}
	}
	if allSpaces {
		return content
	}
	return Span{Start: content.Start + 1, End: content.End - 1}
}
