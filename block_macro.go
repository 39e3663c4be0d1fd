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

// parseBlockMacro implements the block-level forms of spec.md §4.8's macro
// grammar: "@NAME(args)" alone on a line, either followed immediately by a
// braced body ("{ ... }" on its own opening/closing lines) or, in prefix
// form, governing whatever block comes next. PASS/NOPASS take effect here,
// by changing the ParsingMode the target is parsed with, and @CONFIG
// updates the document's Config here too (see annotations.go); any other
// macro only wraps its target, which lowering then handles (lower.go).
func parseBlockMacro(bs *blockSession) (*Block, bool) {
	s := bs.in.start()
	defer s.rollback()

	parseAtMostNSpaces(bs.in, 3)
	m, ok := parseMacroNameAndArgs(bs.in, bs.ind)
	if !ok {
		return nil, false
	}

	targetMode := bs.mode
	if newMode, changed := structuralMacroModeChange(bs.mode, m, bs.in.Text()); changed {
		targetMode = newMode
	}
	if m.Name == "CONFIG" {
		applyConfigMacro(bs.state, m, bs.in.Text())
	}

	parseSpaces(bs.in)
	if bs.in.PeekChar() == '{' {
		bs.in.Bump(1)
		if !parseWsAndLineEnd(bs.in) {
			return nil, false
		}
		if !bs.in.IsEmpty() {
			ParseLineBreak(bs.in, bs.ind)
		}

		body := ParseBlocks(&blockSession{in: bs.in, ind: bs.ind, ctx: BlockBracesCtx(), mode: targetMode, state: bs.state})
		consumeBlankLines(bs.in, bs.ind)
		parseAtMostNSpaces(bs.in, 3)
		if bs.in.PeekChar() != '}' {
			return nil, false
		}
		bs.in.Bump(1)
		parseWsAndLineEnd(bs.in)

		full := s.apply()
		m.Body = body
		return &Block{kind: BlockMacroKind, span: full, mac: m, children: body}, true
	}

	if !parseWsAndLineEnd(bs.in) {
		return nil, false
	}
	if !bs.in.IsEmpty() {
		ParseLineBreak(bs.in, bs.ind)
	}
	consumeBlankLines(bs.in, bs.ind)

	target, ok := ParseBlock(&blockSession{in: bs.in, ind: bs.ind, ctx: bs.ctx, mode: targetMode, state: bs.state})
	if !ok {
		return nil, false
	}

	full := s.apply()
	return &Block{kind: BlockMacroKind, span: full, mac: m, children: []Node{target}}, true
}
