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

// Package unitoc builds a nested table of contents and a footnote lookup
// index from a lowered Unidok document, for callers (a static-site
// generator, a documentation viewer) that want a navigable structure
// instead of the @TOC macro's flat rendered list.
package unitoc

import "github.com/unidok/unidok"

// Entry is one node of a nested table of contents.
type Entry struct {
	Heading  unidok.IRHeading
	Children []*Entry
}

// Build nests doc's flat heading list by level: a heading at level N becomes
// a child of the most recent heading at level < N seen so far, matching how
// a reader would expect section numbering to nest regardless of whether
// levels were skipped.
func Build(doc *unidok.IRDocument) []*Entry {
	var roots []*Entry
	stack := []*Entry{}

	for _, h := range doc.TOC {
		e := &Entry{Heading: h}
		for len(stack) > 0 && stack[len(stack)-1].Heading.Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, e)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, e)
		}
		stack = append(stack, e)
	}
	return roots
}

// Flatten walks entries depth-first, in document order, discarding nesting.
func Flatten(entries []*Entry) []unidok.IRHeading {
	var out []unidok.IRHeading
	var walk func([]*Entry)
	walk = func(es []*Entry) {
		for _, e := range es {
			out = append(out, e.Heading)
			walk(e.Children)
		}
	}
	walk(entries)
	return out
}
