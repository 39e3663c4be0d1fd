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

package unihtml

import "html"

// EscapeText escapes s for use as HTML character data, the same way the
// teacher's html_renderer.go escapes text nodes: via the standard library's
// html.EscapeString, which covers the five XML-significant characters.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// EscapeAttr escapes s for use inside a double-quoted HTML attribute value.
// html.EscapeString already escapes '"', so it serves both purposes.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}
