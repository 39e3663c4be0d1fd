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

// Package unidok parses the Unidok document dialect into an intermediate
// representation suitable for rendering to HTML (see the unihtml
// subpackage) or for extracting a table of contents and footnote list (see
// unitoc).
//
// Unlike a phased block-then-inline pass, Parse runs a single
// recursive-descent pass with cheap backtracking: ParseBlock and
// lexSegments try alternatives in the grammar's fixed order, committing
// input as they go via Input's scope mechanism (see input.go).
package unidok

// Document is the parsed result of one call to Parse: its root-level
// blocks plus the accumulated ParseState needed to lower it to HTML or a
// table of contents.
type Document struct {
	Blocks []Node
	state  *ParseState
}

// Parse parses source as a Unidok document under the default configuration
// and the full ParsingMode (every feature enabled; see spec.md §7 for how a
// @CONFIG or @PASS/@NOPASS macro narrows this for part or all of the
// document).
func Parse(source string) *Document {
	ps := NewParseState(source)
	in := NewInput(source)
	bs := &blockSession{in: in, ind: NoIndents(), ctx: GlobalCtx(), mode: ModeAll, state: ps}
	blocks := ParseBlocks(bs)
	return &Document{Blocks: blocks, state: ps}
}

// ParseWithMode is Parse but with an explicitly chosen starting
// ParsingMode, letting a caller embed a Unidok fragment in a host document
// that has already disabled some features (e.g. a comment body parsed with
// ModeInline only).
func ParseWithMode(source string, mode ParsingMode) *Document {
	ps := NewParseState(source)
	in := NewInput(source)
	bs := &blockSession{in: in, ind: NoIndents(), ctx: GlobalCtx(), mode: mode, state: ps}
	blocks := ParseBlocks(bs)
	return &Document{Blocks: blocks, state: ps}
}
