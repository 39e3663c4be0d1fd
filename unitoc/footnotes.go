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

package unitoc

import "github.com/unidok/unidok"

// FootnoteIndex maps a footnote's normalized label to its lowered
// definition, for callers that want random access instead of the
// document's first-reference order.
type FootnoteIndex map[string]unidok.IRFootnote

// IndexFootnotes builds a FootnoteIndex from doc.
func IndexFootnotes(doc *unidok.IRDocument) FootnoteIndex {
	idx := make(FootnoteIndex, len(doc.Footnotes))
	for _, fn := range doc.Footnotes {
		idx[fn.Label] = fn
	}
	return idx
}

// Lookup finds a footnote by its reference label (e.g. "^1"), reporting
// whether it was defined anywhere in the document.
func (idx FootnoteIndex) Lookup(label string) (unidok.IRFootnote, bool) {
	fn, ok := idx[label]
	return fn, ok
}
