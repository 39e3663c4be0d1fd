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

// tabStopSize is the column multiple a tab advances to (spec.md §4.2/§4.3).
const tabStopSize = 4

// parseLiteralChar is a fallible primitive: matches a single exact rune.
func parseLiteralChar(in *Input, want rune) bool {
	if in.PeekChar() != want {
		return false
	}
	in.Bump(runeLen(want))
	return true
}

// parseLiteral is a fallible primitive: matches an exact string prefix.
func parseLiteral(in *Input, want string) bool {
	if !strings.HasPrefix(in.Rest(), want) {
		return false
	}
	in.Bump(len(want))
	return true
}

func runeLen(r rune) int {
	if r < 0x80 {
		return 1
	}
	return len(string(r))
}

// untilChar is the infallible form of Until: consumes up to the first rune
// satisfying pred, or to end of input, without consuming the matched rune.
func untilChar(in *Input, pred func(rune) bool) Span {
	s := in.start()
	for {
		c := in.PeekChar()
		if c == 0 || pred(c) {
			break
		}
		in.Bump(runeLen(c))
	}
	return s.apply()
}

// untilCharFallible is the fallible form: fails (rolling back) if pred never
// matches before end of input.
func untilCharFallible(in *Input, pred func(rune) bool) (Span, bool) {
	s := in.start()
	defer s.rollback()
	for {
		c := in.PeekChar()
		if c != 0 && pred(c) {
			return s.apply(), true
		}
		if c == 0 {
			return Span{}, false
		}
		in.Bump(runeLen(c))
	}
}

// untilString is the infallible form of Until for a literal string pattern.
func untilString(in *Input, sep string) Span {
	s := in.start()
	for !in.IsEmpty() && !strings.HasPrefix(in.Rest(), sep) {
		in.Bump(runeLen(in.PeekChar()))
	}
	return s.apply()
}

// whileChar consumes while pred holds; always succeeds, possibly empty.
func whileChar(in *Input, pred func(rune) bool) Span {
	s := in.start()
	for {
		c := in.PeekChar()
		if c == 0 || !pred(c) {
			break
		}
		in.Bump(runeLen(c))
	}
	return s.apply()
}

func isSpaceOrTab(c rune) bool {
	return c == ' ' || c == '\t'
}

// parseSpaces consumes zero or more spaces/tabs (infallible).
func parseSpaces(in *Input) Span {
	return whileChar(in, isSpaceOrTab)
}

// parseSpacesU8 is parseSpaces but returns the visual column width consumed
// (tabs counted at the 4-column stop), capped the way list/macro indent
// counters are.
func parseSpacesU8(in *Input) int {
	width := 0
	for {
		switch in.PeekChar() {
		case ' ':
			in.Bump(1)
			width++
		case '\t':
			width += tabStopSize - width%tabStopSize
			in.Bump(1)
		default:
			if width > maxIndentSpaces {
				width = maxIndentSpaces
			}
			return width
		}
	}
}

// parseNSpaces consumes exactly n literal space characters (fallible: tabs
// do not count, matching CommonMark-style strict indent matching used for
// continuation lines that must line up visually).
func parseNSpaces(in *Input, n int) bool {
	s := in.start()
	defer s.rollback()
	for i := 0; i < n; i++ {
		if in.PeekChar() != ' ' {
			return false
		}
		in.Bump(1)
	}
	s.apply()
	return true
}

// parseAtMostNSpaces consumes up to n spaces (infallible, may consume fewer).
func parseAtMostNSpaces(in *Input, n int) int {
	count := 0
	for count < n && in.PeekChar() == ' ' {
		in.Bump(1)
		count++
	}
	return count
}

// parseLineEnd is a zero-width, fallible assertion: the cursor is followed
// by a newline or end of input.
func parseLineEnd(in *Input) bool {
	c := in.PeekChar()
	return c == 0 || c == '\n' || c == '\r'
}

// parseWsAndLineEnd consumes trailing spaces/tabs and asserts line end.
func parseWsAndLineEnd(in *Input) bool {
	s := in.start()
	defer s.rollback()
	parseSpaces(in)
	if !parseLineEnd(in) {
		return false
	}
	s.apply()
	return true
}

// or tries a then b, returning the first successful result.
func or[T any](in *Input, a, b func(in *Input) (T, bool)) (T, bool) {
	if v, ok := a(in); ok {
		return v, ok
	}
	return b(in)
}

// quotedString parses a '...' or "..."-delimited string with no escapes,
// optionally spanning indented continuation lines (via ind). It returns the
// content span (excluding quotes).
func quotedString(in *Input, ind Indents) (Span, bool) {
	return quotedStringImpl(in, ind, false)
}

// quotedStringWithEscapes is quotedString but allows backslash escapes of
// the delimiter and backslash itself.
func quotedStringWithEscapes(in *Input, ind Indents) (Span, bool) {
	return quotedStringImpl(in, ind, true)
}

func quotedStringImpl(in *Input, ind Indents, escapes bool) (Span, bool) {
	s := in.start()
	defer s.rollback()

	quote := in.PeekChar()
	if quote != '\'' && quote != '"' {
		return Span{}, false
	}
	in.Bump(runeLen(quote))

	content := in.start()
	for {
		c := in.PeekChar()
		switch {
		case c == 0:
			return Span{}, false
		case c == quote:
			contentSpan := content.apply()
			in.Bump(runeLen(quote))
			s.apply()
			return contentSpan, true
		case escapes && c == '\\':
			in.Bump(1)
			if in.PeekChar() != 0 {
				in.Bump(runeLen(in.PeekChar()))
			}
		case c == '\n' || c == '\r':
			if !ParseLineBreak(in, ind) {
				return Span{}, false
			}
		default:
			in.Bump(runeLen(c))
		}
	}
}
