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

import "unicode/utf8"

// Input is the parser's cursor over an immutable source buffer.
//
// It never copies bytes: every read either reports a [Span] into text or
// advances idx. Backtracking is supported by [Input.start], which returns a
// scope that restores idx and the line-start flag on drop unless
// [scope.apply] is called — the committed-input model described in the
// design notes.
type Input struct {
	text       string
	idx        int
	isLineStart bool
}

// NewInput creates an Input positioned at the beginning of text.
func NewInput(text string) *Input {
	return &Input{text: text, isLineStart: true}
}

// Text returns the full backing buffer.
func (in *Input) Text() string {
	return in.text
}

// Pos returns the current byte offset.
func (in *Input) Pos() int {
	return in.idx
}

// Len returns the number of bytes remaining.
func (in *Input) Len() int {
	return len(in.text) - in.idx
}

// IsEmpty reports whether the cursor has reached the end of input.
func (in *Input) IsEmpty() bool {
	return in.Len() == 0
}

// Rest returns the unconsumed remainder of the buffer.
func (in *Input) Rest() string {
	return in.text[in.idx:]
}

// IsLineStart reports whether the cursor sits at the first byte of a line.
func (in *Input) IsLineStart() bool {
	return in.isLineStart
}

// SetLineStart overrides the line-start flag, used by block parsers that
// consume leading indentation before deciding it doesn't count as "bumped".
func (in *Input) SetLineStart(v bool) {
	in.isLineStart = v
}

// PeekChar returns the rune at the cursor without consuming it, or 0 at EOF.
func (in *Input) PeekChar() rune {
	if in.IsEmpty() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(in.Rest())
	return r
}

// PrevChar returns the rune immediately before the cursor, or 0 at the start.
func (in *Input) PrevChar() rune {
	if in.idx == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(in.text[:in.idx])
	return r
}

// Bump advances the cursor by n bytes and returns the span it consumed.
// The caller is responsible for only bumping by valid UTF-8 boundaries.
func (in *Input) Bump(n int) Span {
	start := in.idx
	in.idx += n
	in.isLineStart = false
	return Span{Start: start, End: in.idx}
}

// BumpChar advances past a single rune and returns it along with its span.
func (in *Input) BumpChar() (rune, Span) {
	r, size := utf8.DecodeRuneInString(in.Rest())
	if size == 0 {
		return 0, Span{Start: in.idx, End: in.idx}
	}
	return r, in.Bump(size)
}

// scope is a save/restore handle returned by [Input.start]. Dropping it
// (calling [scope.rollback] without [scope.apply]) rolls the cursor back to
// where it was when the scope was opened. Nested scopes compose: an inner
// apply only promotes bytes to its immediate parent scope, and only the
// outermost apply actually commits anything, because apply on the Input
// itself is a no-op — the Input's state already reflects every Bump call
// made through any live scope. What scope tracks is solely "what idx to
// restore to if this alternative is abandoned".
type scope struct {
	in         *Input
	prevIdx    int
	prevLineSt bool
	applied    bool
}

// start opens a new backtracking scope at the current position.
func (in *Input) start() *scope {
	return &scope{in: in, prevIdx: in.idx, prevLineSt: in.isLineStart}
}

// apply commits the scope: the bytes consumed since start remain consumed.
// It returns the span consumed while the scope was open.
func (s *scope) apply() Span {
	s.applied = true
	return Span{Start: s.prevIdx, End: s.in.idx}
}

// rollback restores the input to the position recorded at start, unless
// apply was called. Every parser that opens a scope must call rollback
// (typically via defer) exactly once.
func (s *scope) rollback() {
	if s.applied {
		return
	}
	s.in.idx = s.prevIdx
	s.in.isLineStart = s.prevLineSt
}

// tryParse runs p in a fresh scope: if p reports no match, the scope is
// rolled back; if it matches, the scope is applied and the bytes consumed
// remain committed. This is the fallible-parser composition primitive used
// throughout the block and inline parsers.
func tryParse[T any](in *Input, p func(in *Input) (T, bool)) (T, bool) {
	s := in.start()
	defer s.rollback()
	v, ok := p(in)
	if ok {
		s.apply()
	}
	return v, ok
}
