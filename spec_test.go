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

package unidok_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/unidok/unidok"
	"github.com/unidok/unidok/internal/normhtml"
	"github.com/unidok/unidok/internal/spectest"
	"github.com/unidok/unidok/unihtml"
)

// TestScenarios runs the end-to-end scenario table, each exercising the
// full parse → lower → render pipeline the way the teacher's spec_test.go
// drives the CommonMark reference suite through Parse/RenderHTML.
func TestScenarios(t *testing.T) {
	scenarios, err := spectest.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			doc := unidok.Parse(sc.Unidok)
			ir := unidok.Lower(doc)
			got, err := unihtml.RenderString(ir, unihtml.Options{})
			if err != nil {
				t.Fatal(err)
			}
			want := string(normhtml.NormalizeHTML([]byte(sc.HTML)))
			gotNorm := string(normhtml.NormalizeHTML([]byte(got)))
			if diff := cmp.Diff(want, gotNorm, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", sc.Unidok, diff)
			}
		})
	}
}

func TestEmptyInputYieldsEmptyDocument(t *testing.T) {
	doc := unidok.Parse("")
	if len(doc.Blocks) != 0 {
		t.Errorf("Parse(\"\").Blocks = %d blocks, want 0", len(doc.Blocks))
	}
}

func TestTrailingNewlineIsInsignificant(t *testing.T) {
	withNL := unidok.Parse("hello\n")
	withoutNL := unidok.Parse("hello")
	if len(withNL.Blocks) != len(withoutNL.Blocks) {
		t.Errorf("block count differs with/without trailing newline: %d vs %d",
			len(withNL.Blocks), len(withoutNL.Blocks))
	}
}
