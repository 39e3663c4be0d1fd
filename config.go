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

// HeadingAnchor selects how Parse computes the id attribute of a heading
// (spec.md §4.6, @CONFIG's anchor option).
type HeadingAnchor uint8

const (
	// AnchorGitHub slugifies like GitHub: lowercase, strip punctuation,
	// spaces to hyphens, de-duplicate with a numeric suffix.
	AnchorGitHub HeadingAnchor = iota
	// AnchorNone disables id generation entirely.
	AnchorNone
)

// QuoteStyle gives the four substitution strings spec.md §4.4's typographic
// rule swaps in for straight quotes, keyed by locale. Values follow the
// common typographic convention of each locale.
type QuoteStyle struct {
	OpenDouble, CloseDouble string
	OpenSingle, CloseSingle string
}

var quoteStyles = map[string]QuoteStyle{
	"en":    {"“", "”", "‘", "’"},
	"en-gb": {"‘", "’", "“", "”"},
	"de":    {"„", "“", "‚", "‘"},
	"de-ch": {"«", "»", "‹", "›"},
	"fr":    {"« ", " »", "‹ ", " ›"},
	"ru":    {"«", "»", "„", "“"},
	"es":    {"«", "»", "“", "”"},
	"it":    {"«", "»", "“", "”"},
	"nl":    {"“", "”", "‘", "’"},
	"pl":    {"„", "”", "‚", "’"},
	"sv":    {"”", "”", "’", "’"},
	"fi":    {"”", "”", "’", "’"},
	"da":    {"“", "”", "‘", "’"},
	"no":    {"«", "»", "‘", "’"},
	"cs":    {"„", "“", "‚", "‘"},
	"sk":    {"„", "“", "‚", "‘"},
	"hu":    {"„", "”", "‚", "’"},
	"ro":    {"„", "”", "«", "»"},
}

func lookupQuoteStyle(locale string) QuoteStyle {
	if qs, ok := quoteStyles[locale]; ok {
		return qs
	}
	return quoteStyles["en"]
}

// Config governs document-wide parse behavior settable only via @CONFIG
// block macros, applied where each one is parsed (spec.md §7); everything
// else is derived per-node from the active ParsingMode.
type Config struct {
	Anchor      HeadingAnchor
	Locale      string
	MathDelim   string // opening math delimiter, default "%{" (closed by "}%"); @CONFIG does not set it
	TOC         bool
	FootnoteTag string // rendered footnote-section heading text
}

// DefaultConfig returns the configuration active before any @CONFIG macro is
// seen.
func DefaultConfig() Config {
	return Config{
		Anchor:      AnchorGitHub,
		Locale:      "en",
		MathDelim:   "%{",
		TOC:         true,
		FootnoteTag: "Footnotes",
	}
}

func (c Config) quoteStyle() QuoteStyle {
	return lookupQuoteStyle(c.Locale)
}
