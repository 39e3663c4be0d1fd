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

// tryBraces parses a bare `{ ... }` grouping span. Its main purpose is to
// serve as an inline macro's adjacent target (spec.md §4.8's "braces" case
// of the inline-adjacent-element form: `@NAME(args){...}`); encountered on
// its own it still lexes to a BracesSegment wrapping its resolved content,
// so a macro parsed just before it (see macro.go/tryMacro) can reparent it.
func (ls *lexSession) tryBraces(items *[]lexItem) bool {
	if ls.in.PeekChar() != '{' {
		return false
	}
	s := ls.in.start()
	ls.in.Bump(1)

	inner := lexSegments(&lexSession{in: ls.in, ind: ls.ind, ctx: InlineBracesCtx(), mode: ls.mode, state: ls.state})

	if ls.in.PeekChar() != '}' {
		s.rollback()
		return false
	}
	ls.in.Bump(1)
	full := s.apply()

	*items = append(*items, lexItem{kind: lexNode, span: full, node: &Segment{
		kind: BracesSegment, span: full, children: inner,
	}})
	return true
}
