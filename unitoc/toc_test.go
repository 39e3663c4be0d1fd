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

package unitoc_test

import (
	"testing"

	"github.com/unidok/unidok"
	"github.com/unidok/unidok/unitoc"
)

func headings(hs ...unidok.IRHeading) *unidok.IRDocument {
	return &unidok.IRDocument{TOC: hs}
}

func TestBuildNestsByLevel(t *testing.T) {
	doc := headings(
		unidok.IRHeading{Level: 1, Slug: "intro", Text: "Intro"},
		unidok.IRHeading{Level: 2, Slug: "background", Text: "Background"},
		unidok.IRHeading{Level: 2, Slug: "scope", Text: "Scope"},
		unidok.IRHeading{Level: 1, Slug: "usage", Text: "Usage"},
	)

	roots := unitoc.Build(doc)
	if len(roots) != 2 {
		t.Fatalf("len(roots) = %d, want 2", len(roots))
	}
	if roots[0].Heading.Slug != "intro" || len(roots[0].Children) != 2 {
		t.Errorf("roots[0] = %+v, want intro with 2 children", roots[0])
	}
	if roots[1].Heading.Slug != "usage" || len(roots[1].Children) != 0 {
		t.Errorf("roots[1] = %+v, want usage with no children", roots[1])
	}
}

func TestBuildHandlesSkippedLevels(t *testing.T) {
	// A level-3 heading with no intervening level-2 still nests under the
	// most recent shallower heading, rather than becoming a root or erroring.
	doc := headings(
		unidok.IRHeading{Level: 1, Slug: "a", Text: "A"},
		unidok.IRHeading{Level: 3, Slug: "b", Text: "B"},
	)

	roots := unitoc.Build(doc)
	if len(roots) != 1 {
		t.Fatalf("len(roots) = %d, want 1", len(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].Heading.Slug != "b" {
		t.Errorf("roots[0].Children = %+v, want [b]", roots[0].Children)
	}
}

func TestFlattenIsDepthFirstDocumentOrder(t *testing.T) {
	doc := headings(
		unidok.IRHeading{Level: 1, Slug: "a", Text: "A"},
		unidok.IRHeading{Level: 2, Slug: "a1", Text: "A1"},
		unidok.IRHeading{Level: 1, Slug: "b", Text: "B"},
	)

	flat := unitoc.Flatten(unitoc.Build(doc))
	var slugs []string
	for _, h := range flat {
		slugs = append(slugs, h.Slug)
	}
	want := []string{"a", "a1", "b"}
	if len(slugs) != len(want) {
		t.Fatalf("Flatten returned %v, want %v", slugs, want)
	}
	for i := range want {
		if slugs[i] != want[i] {
			t.Errorf("Flatten()[%d] = %q, want %q", i, slugs[i], want[i])
		}
	}
}
