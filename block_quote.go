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

// parseBlockQuote parses a "> " prefixed block, pushing a QuoteIndent frame
// and recursing into ParseBlocks for the quote's body (spec.md §4.6).
func parseBlockQuote(bs *blockSession) (*Block, bool) {
	s := bs.in.start()
	defer s.rollback()

	parseAtMostNSpaces(bs.in, 3)
	if bs.in.PeekChar() != '>' {
		return nil, false
	}
	bs.in.Bump(1)
	if bs.in.PeekChar() == ' ' {
		bs.in.Bump(1)
	}

	childInd := bs.ind.PushQuote()
	children := ParseBlocks(&blockSession{in: bs.in, ind: childInd, ctx: GlobalCtx(), mode: bs.mode, state: bs.state})
	if len(children) == 0 {
		return nil, false
	}

	full := s.apply()
	return &Block{kind: BlockQuoteKind, span: full, children: children}, true
}
