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

import "fmt"

// IndentKind distinguishes the two kinds of indentation frame.
type IndentKind uint8

const (
	// SpacesIndent requires the line to be indented by a fixed column count.
	SpacesIndent IndentKind = 1 + iota
	// QuoteIndent requires a '>' quote marker.
	QuoteIndent
)

// maxIndentSpaces bounds a single frame's width; exceeding it is a hard
// parse failure per spec.md §7 ("out-of-range indentation counts").
const maxIndentSpaces = 255

// Indents is an immutable, stack-shaped indentation context. Frames are
// pushed on entering a list item, quote, or other nested block, and are
// never mutated; popping happens simply by a caller holding on to (or
// discarding) an older Indents value. This is the persistent-cons-list
// design the source calls for, realized here as a value type holding a
// pointer to its innermost heap-allocated frame, each frame linked to its
// parent, so Indents remains small and copyable without unsafe tricks.
type Indents struct {
	frames *indentFrame
}

type indentFrame struct {
	kind   IndentKind
	spaces int // valid when kind == SpacesIndent; always > 0
	parent *indentFrame
}

// NoIndents is the root indentation context: no frames pushed.
func NoIndents() Indents {
	return Indents{}
}

// PushSpaces returns a new context with an additional Spaces(n) frame.
// It panics if n is not in [1, maxIndentSpaces], matching the AST invariant
// that forbids Spaces(0) frames; callers that may legitimately produce 0
// (e.g. a zero-width list marker) should skip pushing instead of calling
// this with 0.
func (ind Indents) PushSpaces(n int) Indents {
	if n <= 0 || n > maxIndentSpaces {
		panic(fmt.Sprintf("unidok: invalid indentation width %d", n))
	}
	return Indents{frames: &indentFrame{kind: SpacesIndent, spaces: n, parent: ind.frames}}
}

// PushQuote returns a new context with an additional quote-marker frame.
func (ind Indents) PushQuote() Indents {
	return Indents{frames: &indentFrame{kind: QuoteIndent, parent: ind.frames}}
}

// frameList returns the frames outermost-first.
func (ind Indents) frameList() []*indentFrame {
	var rev []*indentFrame
	for f := ind.frames; f != nil; f = f.parent {
		rev = append(rev, f)
	}
	out := make([]*indentFrame, len(rev))
	for i, f := range rev {
		out[len(out)-1-i] = f
	}
	return out
}

// frameResult is the outcome of matching one indentation frame against a
// line, per the state machine in spec.md §4.2.
type frameResult int

const (
	frameContinue frameResult = iota // consumed normally
	frameDone                        // blank line accepted; skip remaining frames
	frameError                       // mismatch; whole line break fails
)

// matchFrame consumes one indentation frame from in, starting at the
// beginning of a fresh line. in must be positioned right after the
// newline that ParseLineBreak consumed.
func matchFrame(in *Input, f *indentFrame) frameResult {
	switch f.kind {
	case SpacesIndent:
		consumed := 0
		for consumed < f.spaces {
			c := in.PeekChar()
			switch c {
			case ' ':
				in.Bump(1)
				consumed++
			case '\t':
				// Tabs expand to the next multiple of 4 visual columns;
				// a single tab can satisfy more than one remaining column.
				width := tabStopSize - consumed%tabStopSize
				in.Bump(1)
				consumed += width
			default:
				if isLineEndOrEOF(in) {
					return frameDone
				}
				return frameError
			}
		}
		return frameContinue
	case QuoteIndent:
		if in.PeekChar() == '>' {
			in.Bump(1)
			if in.PeekChar() == ' ' {
				in.Bump(1)
			}
			return frameContinue
		}
		if isLineEndOrEOF(in) {
			return frameDone
		}
		return frameError
	default:
		panic("unidok: unknown indentation frame kind")
	}
}

func isLineEndOrEOF(in *Input) bool {
	c := in.PeekChar()
	return c == 0 || c == '\n' || c == '\r'
}

// ParseLineBreak consumes exactly one line ending (\n, \r\n, or \r) and then
// the indentation stack outermost-first, per spec.md §4.2. It reports
// whether the line break matched; on failure the cursor is restored.
func ParseLineBreak(in *Input, ind Indents) bool {
	s := in.start()
	defer s.rollback()

	if !consumeNewline(in) {
		return false
	}
	in.SetLineStart(true)

	for _, f := range ind.frameList() {
		switch matchFrame(in, f) {
		case frameContinue:
			continue
		case frameDone:
			s.apply()
			return true
		case frameError:
			return false
		}
	}
	s.apply()
	return true
}

func consumeNewline(in *Input) bool {
	switch in.PeekChar() {
	case '\n':
		in.Bump(1)
		return true
	case '\r':
		in.Bump(1)
		if in.PeekChar() == '\n' {
			in.Bump(1)
		}
		return true
	default:
		return false
	}
}
