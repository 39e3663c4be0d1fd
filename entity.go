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

	"golang.org/x/net/html"
)

// parseHTMLEntity recognizes a named ("&amp;"), decimal ("&#65;"), or hex
// ("&#x41;") character reference starting at in's cursor (spec.md §4.9).
// Decoding defers to golang.org/x/net/html's entity tables so the accepted
// name set matches the HTML5 spec exactly, the same dependency the teacher
// uses for its own HTML parsing.
func parseHTMLEntity(in *Input) (Span, bool) {
	if in.PeekChar() != '&' {
		return Span{}, false
	}
	rest := in.Rest()
	end := strings.IndexByte(rest, ';')
	if end < 0 || end > 32 {
		return Span{}, false
	}
	candidate := rest[:end+1]
	unescaped := html.UnescapeString(candidate)
	if unescaped == candidate {
		return Span{}, false
	}
	return in.Bump(len(candidate)), true
}
