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

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// linkRefDef is a resolved [label]: url "title" definition (spec.md §4.7).
// Labels may be referenced before their definition appears in the source,
// so resolution of LinkSegment.linkRef happens at lowering time, once the
// whole document's blocks have been parsed.
type linkRefDef struct {
	dest  Span
	title Span
	has   bool
}

// ParseState is threaded through block and inline parsing for the whole
// document: it accumulates link reference definitions and footnote labels
// as they're encountered, and carries the @CONFIG-derived Config that
// governs quote style, heading anchors, and math delimiters.
type ParseState struct {
	source string

	Config Config

	linkRefs map[string]linkRefDef

	footnoteBodies map[string]Span
	footnoteOrder  []string
	footnoteSeen   map[string]int

	headingSlugs map[string]int
}

// NewParseState creates the shared state for one Parse call.
func NewParseState(source string) *ParseState {
	return &ParseState{
		source:         source,
		Config:         DefaultConfig(),
		linkRefs:       make(map[string]linkRefDef),
		footnoteBodies: make(map[string]Span),
		footnoteSeen:   make(map[string]int),
		headingSlugs:   make(map[string]int),
	}
}

// normalizeLabel implements spec.md §4.7's reference-label matching: NFC
// normalize (so a precomposed and a combining-mark spelling of the same
// label match), case fold, and collapse internal whitespace runs to a
// single space.
func normalizeLabel(label string) string {
	fields := strings.Fields(norm.NFC.String(label))
	return strings.ToLower(strings.Join(fields, " "))
}

func (ps *ParseState) defineLinkRef(label string, dest, title Span, hasTitle bool) {
	key := normalizeLabel(label)
	if _, exists := ps.linkRefs[key]; exists {
		// First definition wins (spec.md §4.7).
		return
	}
	ps.linkRefs[key] = linkRefDef{dest: dest, title: title, has: hasTitle}
}

func (ps *ParseState) resolveLinkRef(label string) (linkRefDef, bool) {
	d, ok := ps.linkRefs[normalizeLabel(label)]
	return d, ok
}

func (ps *ParseState) defineFootnote(label string, body Span) {
	key := normalizeLabel(label)
	if _, exists := ps.footnoteBodies[key]; exists {
		return
	}
	ps.footnoteBodies[key] = body
}

// footnoteNumber assigns (or returns the existing) 1-based order number for
// a footnote label, in first-reference order (spec.md §4.7).
func (ps *ParseState) footnoteNumber(label string) int {
	key := normalizeLabel(label)
	if n, ok := ps.footnoteSeen[key]; ok {
		return n
	}
	n := len(ps.footnoteOrder) + 1
	ps.footnoteSeen[key] = n
	ps.footnoteOrder = append(ps.footnoteOrder, key)
	return n
}

// slugify computes a GitHub-style heading anchor and de-duplicates it
// against every slug produced earlier in the same document.
func (ps *ParseState) slugify(text string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(norm.NFC.String(text)) {
		switch {
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		case isAlpha(r) || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "section"
	}
	if n, ok := ps.headingSlugs[slug]; ok {
		ps.headingSlugs[slug] = n + 1
		return slug + "-" + itoa(n)
	}
	ps.headingSlugs[slug] = 1
	return slug
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
