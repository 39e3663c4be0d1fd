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

// lexSession carries the state threaded through one call to lexSegments:
// the indentation stack, the active Context and ParsingMode, and the
// shared ParseState (link-ref map, headings, footnotes, config) that
// several sub-parsers (links, macros) need to consult or update.
type lexSession struct {
	in    *Input
	ind   Indents
	ctx   Context
	mode  ParsingMode
	state *ParseState
}

// lexSegments runs the two-phase inline pipeline described in spec.md §4.4
// and §4.5: it scans the Item stream until a context-sensitive stop or a
// paragraph interruption is reached, then resolves flanking over that
// stream and returns the finished Segment nodes.
func lexSegments(ls *lexSession) []Node {
	var items []lexItem
	source := ls.in.Text()

	for {
		if ls.in.IsEmpty() {
			break
		}
		if stopped := ls.checkContextStop(); stopped {
			break
		}
		if len(items) > 0 && lastItemIsLineBreak(items) {
			if ls.checkParagraphEnd(&items) {
				break
			}
		}

		if ls.mode.Has(ModeInline) {
			if ls.tryDelimiterRun(&items) {
				continue
			}
			if ls.tryLimiter(&items) {
				continue
			}
		}
		if ls.tryLineBreak(&items) {
			continue
		}
		if ls.mode.Has(ModeInline) {
			if ls.tryEscape(&items) {
				continue
			}
			if ls.tryCodeSpan(&items) {
				continue
			}
		}
		if ls.mode.Has(ModeMath) && ls.tryMath(&items) {
			continue
		}
		if ls.mode.Has(ModeMacros) && ls.tryMacro(&items) {
			continue
		}
		if ls.mode.Has(ModeLinksImages) {
			if ls.tryImage(&items) {
				continue
			}
			if ls.tryLink(&items) {
				continue
			}
		}
		if ls.mode.Has(ModeHTML) && ls.tryInlineHTML(&items) {
			continue
		}
		if ls.tryEntity(&items) {
			continue
		}
		if ls.mode.Has(ModeInline) && ls.ctx.Kind == InlineBracesContext && ls.tryBraces(&items) {
			continue
		}
		if ls.mode.Has(ModeSubstitutions) && ls.trySubstitution(&items) {
			continue
		}
		ls.consumeText(&items)
	}

	return resolveFlanking(source, items)
}

func lastItemIsLineBreak(items []lexItem) bool {
	last := items[len(items)-1]
	return last.kind == lexNode && last.node != nil && last.node.Kind() == LineBreakSegment
}

// checkContextStop implements the context-sensitive terminators of
// spec.md §4.4.
func (ls *lexSession) checkContextStop() bool {
	c := ls.in.PeekChar()
	switch ls.ctx.Kind {
	case TableContext:
		return c == '|'
	case LinkOrImgContext:
		return c == ']'
	case InlineBracesContext:
		return c == '}'
	case CodeContext:
		return peekBacktickRun(ls.in) >= ls.ctx.FenceLen
	case InlineHTMLContext:
		return peekClosingTag(ls.in, ls.ctx.Elem)
	}
	return false
}

func peekBacktickRun(in *Input) int {
	rest := in.Rest()
	n := 0
	for n < len(rest) && rest[n] == '`' {
		n++
	}
	return n
}

// checkParagraphEnd tests, right after a hard line break, whether the
// paragraph-in-progress ends here: a blank line always ends it (spec.md
// §4.6's boundary behavior); failing that, a Setext underline promotes it to
// a heading and is appended as the stream's terminal item (spec.md §4.6/§8,
// §3's "Underline markers may appear only as the terminator of a paragraph
// in Global or BlockBraces context" invariant); failing that, the next line
// starting one of the other interrupting block kinds also ends it.
func (ls *lexSession) checkParagraphEnd(items *[]lexItem) bool {
	if isBlankLine(ls.in) {
		return true
	}
	if ls.mode.Has(ModeHeadings) && (ls.ctx.Kind == GlobalContext || ls.ctx.Kind == BlockBracesContext) {
		if level, span, ok := parseSetextUnderline(ls.in); ok {
			// The line break just before this underline is the heading's
			// terminator, not content: drop it before appending the Underline.
			*items = (*items)[:len(*items)-1]
			*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: UnderlineSegment, span: span, level: level}})
			return true
		}
	}
	return ls.checkInterruption()
}

// checkInterruption tests, right after a hard line break, whether the next
// line begins a block kind that may interrupt a paragraph under the active
// mode (spec.md §4.6's interruption rule and §9's "closed list" warning).
func (ls *lexSession) checkInterruption() bool {
	return lineStartsInterruptingBlock(ls.in, ls.ind, ls.mode)
}

// consumeText uses the scanner's nextSpecial table to jump straight to the
// next byte any inline sub-parser might care about, rather than walking
// rune-by-rune through ordinary prose.
func (ls *lexSession) consumeText(items *[]lexItem) {
	rest := ls.in.Rest()
	offset, _ := nextSpecial(rest)

	var span Span
	switch {
	case offset < 0:
		span = ls.in.Bump(len(rest))
	case offset == 0:
		// The byte here is special, but no tryXxx claimed it (e.g. a "%{"
		// with no closing "}%"): consume one rune so the loop progresses.
		_, span = ls.in.BumpChar()
	default:
		span = ls.in.Bump(offset)
	}
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: TextSegment, span: span}})
}

// tryLineBreak consumes a hard newline as a LineBreak item. The indentation
// stack has already been pushed by the caller for the current block, so a
// successful ParseLineBreak here represents a soft wrap within the
// paragraph/segment run, not the end of the block (the block parser itself
// decides when to stop calling lexSegments).
func (ls *lexSession) tryLineBreak(items *[]lexItem) bool {
	s := ls.in.start()
	if !ParseLineBreak(ls.in, ls.ind) {
		s.rollback()
		return false
	}
	span := s.apply()
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: LineBreakSegment, span: span}})
	return true
}

func (ls *lexSession) tryEscape(items *[]lexItem) bool {
	s := ls.in.start()
	if ls.in.PeekChar() != '\\' {
		s.rollback()
		return false
	}
	ls.in.Bump(1)
	c := ls.in.PeekChar()
	if c == 0 {
		s.rollback()
		return false
	}
	if !isASCIIPunct(c) {
		s.rollback()
		return false
	}
	_, charSpan := ls.in.BumpChar()
	span := s.apply()
	_ = charSpan
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: EscapedTextSegment, span: span}})
	return true
}

func isASCIIPunct(c rune) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

func (ls *lexSession) tryEntity(items *[]lexItem) bool {
	span, ok := parseHTMLEntity(ls.in)
	if !ok {
		return false
	}
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: HTMLEntitySegment, span: span}})
	return true
}

// trySubstitution implements the typographic substitutions of spec.md §4.4.
func (ls *lexSession) trySubstitution(items *[]lexItem) bool {
	s := ls.in.start()
	c := ls.in.PeekChar()
	qs := ls.state.Config.quoteStyle()
	var replacement string
	switch c {
	case '\'':
		prev := ls.in.PrevChar()
		next := peekAt(ls.in, 1)
		switch {
		case isAlpha(prev):
			replacement = qs.CloseSingle
		case isAlpha(next):
			replacement = qs.OpenSingle
		default:
			replacement = qs.CloseSingle
		}
		ls.in.Bump(1)
	case '"':
		prev := ls.in.PrevChar()
		next := peekAt(ls.in, 1)
		switch {
		case isAlpha(prev):
			replacement = qs.CloseDouble
		case isAlpha(next):
			replacement = qs.OpenDouble
		default:
			replacement = qs.CloseDouble
		}
		ls.in.Bump(1)
	case '.':
		if peekAt(ls.in, 1) == '.' && peekAt(ls.in, 2) == '.' {
			replacement = "…"
			ls.in.Bump(3)
		}
	case '-':
		if peekAt(ls.in, 1) == '-' {
			replacement = "—"
			ls.in.Bump(2)
		}
	}
	if replacement == "" {
		s.rollback()
		return false
	}
	span := s.apply()
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{kind: SubstitutionSegment, span: span, text: replacement}})
	return true
}

func peekAt(in *Input, n int) rune {
	rest := in.Rest()
	for i := 0; i < n; i++ {
		_, size := decodeFirstRuneSize(rest)
		if size == 0 {
			return 0
		}
		rest = rest[size:]
	}
	r, _ := decodeFirstRuneSize(rest)
	return r
}

func decodeFirstRuneSize(s string) (rune, int) {
	if s == "" {
		return 0, 0
	}
	for _, r := range s {
		return r, runeLen(r)
	}
	return 0, 0
}

func isAlpha(r rune) bool {
	return r != 0 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 127)
}

// tryDelimiterRun scans a run of '*', '_', '~', '^', or '#' and, if it has
// any flanking, emits one lexItem per character in the run (see flanking.go
// for why: each char pairs with at most one counterpart, and nested pairs
// of the same delimiter collapse into bold per spec.md §4.5).
func (ls *lexSession) tryDelimiterRun(items *[]lexItem) bool {
	c := ls.in.PeekChar()
	var delim FormatDelimKind
	switch c {
	case '*', '_':
		delim = DelimStar
	case '~':
		delim = DelimTilde
	case '^':
		delim = DelimCaret
	case '#':
		delim = DelimHash
	default:
		return false
	}

	s := ls.in.start()
	startIdx := ls.in.Pos()
	leftBoundary := startIdx == 0
	leftChar := ls.in.PrevChar()

	run := 0
	for ls.in.PeekChar() == c {
		ls.in.Bump(runeLen(c))
		run++
	}
	if run == 0 {
		s.rollback()
		return false
	}
	rightChar := ls.in.PeekChar()
	rightBoundary := rightChar == 0
	full := s.apply()

	lc := classify(leftChar, leftBoundary)
	rc := classify(rightChar, rightBoundary)
	flank := computeFlanking(c, lc, rc, leftBoundary, rightBoundary)
	if !flank.left && !flank.right {
		*items = append(*items, lexItem{kind: lexNode, span: full, node: &Segment{kind: TextSegment, span: full}})
		return true
	}

	charLen := runeLen(c)
	for i := 0; i < run; i++ {
		charSpan := Span{Start: full.Start + i*charLen, End: full.Start + (i+1)*charLen}
		*items = append(*items, lexItem{
			kind: lexDelim, span: charSpan, delim: delim, delimChar: c, count: run,
			leftFlank: flank.left, rightFlank: flank.right,
		})
	}
	return true
}

// tryLimiter implements spec.md §4.4's limiter-gating rule for '$'.
func (ls *lexSession) tryLimiter(items *[]lexItem) bool {
	if ls.in.PeekChar() != '$' {
		return false
	}
	prevOK := len(*items) > 0 && (*items)[len(*items)-1].canPrecedeLimiter()
	aloneOnLine := len(*items) == 0 || lastItemIsLineBreak(*items)
	nextStartsDelim := func() bool {
		s := ls.in.start()
		defer s.rollback()
		ls.in.Bump(1)
		switch ls.in.PeekChar() {
		case '*', '_', '~', '^', '#':
			return true
		}
		return false
	}()
	if !prevOK && !nextStartsDelim && !aloneOnLine {
		return false
	}
	_, span := ls.in.BumpChar()
	*items = append(*items, lexItem{kind: lexLimiter, span: span})
	return true
}
