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

// ParsingMode is the 14-bit flag set of syntactic features currently
// enabled (spec.md §3/§6). It is mutated only by @PASS/@NOPASS macros,
// which replace or narrow the active set for a subtree; it is inherited
// unchanged otherwise.
type ParsingMode uint16

const (
	ModeInline ParsingMode = 1 << iota
	ModeCodeBlocks
	ModeHeadings
	ModeThematicBreaks
	ModeSubstitutions
	ModeLists
	ModeLimiter
	ModeMacros
	ModeMath
	ModeTables
	ModeQuotes
	ModeHTML
	ModeComments
	ModeLinksImages
)

const (
	ModeNone ParsingMode = 0
	ModeAll              = ModeInline | ModeCodeBlocks | ModeHeadings | ModeThematicBreaks |
		ModeSubstitutions | ModeLists | ModeLimiter | ModeMacros | ModeMath |
		ModeTables | ModeQuotes | ModeHTML | ModeComments | ModeLinksImages
)

// Has reports whether every flag in want is set in m.
func (m ParsingMode) Has(want ParsingMode) bool {
	return m&want == want
}

// modeFlagNames maps the long and short spellings recognized by @PASS/@NOPASS
// (spec.md §6) to their bit.
var modeFlagNames = map[string]ParsingMode{
	"inline":   ModeInline,
	"i":        ModeInline,
	"codeblock": ModeCodeBlocks,
	"c":        ModeCodeBlocks,
	"heading":  ModeHeadings,
	"h":        ModeHeadings,
	"tbreak":   ModeThematicBreaks,
	"b":        ModeThematicBreaks,
	"subst":    ModeSubstitutions,
	"s":        ModeSubstitutions,
	"list":     ModeLists,
	"l":        ModeLists,
	"limiter":  ModeLimiter,
	"$":        ModeLimiter,
	"macro":    ModeMacros,
	"@":        ModeMacros,
	"math":     ModeMath,
	"%":        ModeMath,
	"table":    ModeTables,
	"|":        ModeTables,
	"quote":    ModeQuotes,
	">":        ModeQuotes,
	"html":     ModeHTML,
	"<":        ModeHTML,
	"comment":  ModeComments,
	"link_img": ModeLinksImages,
	"li":       ModeLinksImages,
}

// ParseModeFlag resolves one long-or-short flag name to its bit. It reports
// false for an unrecognized name (treated as a silently-ignored invalid
// @CONFIG/@PASS argument, per spec.md §7).
func ParseModeFlag(name string) (ParsingMode, bool) {
	f, ok := modeFlagNames[name]
	return f, ok
}
