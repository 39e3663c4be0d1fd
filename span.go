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

// Span is a byte-offset range into a document's source buffer.
// It is the slice reference described in the design: cheap to copy,
// carries no lifetime, and only becomes text when paired with the buffer
// it was cut from.
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span, used for nodes with no source text
// (synthesized nodes such as a TOC list or a footnote section).
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span addresses real source bytes.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Text returns the substring of source addressed by s.
func (s Span) Text(source string) string {
	if !s.IsValid() {
		return ""
	}
	return source[s.Start:s.End]
}

// adjacent reports whether s immediately precedes o with no gap,
// i.e. whether the two spans can be joined by coalescing.
func (s Span) adjacent(o Span) bool {
	return s.IsValid() && o.IsValid() && s.End == o.Start
}

// join returns the span covering both s and an immediately following o.
func (s Span) join(o Span) Span {
	return Span{Start: s.Start, End: o.End}
}
