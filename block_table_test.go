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

import "testing"

func TestParseTableRowHeaderMarker(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantHeader bool
		wantCells  int
	}{
		{"plain row has no header marker", "||a|b\n", false, 2},
		{"hash-pipe marks every cell a header", "||#|a|b\n", true, 2},
		{"bare hash with no following pipe is not a marker", "||#a|b\n", false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := &blockSession{in: NewInput(tt.src), ind: Indents{}, mode: ModeAll, state: NewParseState(tt.src)}
			row, ok := parseTableRow(bs)
			if !ok {
				t.Fatalf("parseTableRow(%q) failed to parse", tt.src)
			}
			if row.Header != tt.wantHeader {
				t.Errorf("row.Header = %v, want %v", row.Header, tt.wantHeader)
			}
			if len(row.Cells) != tt.wantCells {
				t.Errorf("len(row.Cells) = %d, want %d", len(row.Cells), tt.wantCells)
			}
			for i, c := range row.Cells {
				if c.Header != tt.wantHeader {
					t.Errorf("cell[%d].Header = %v, want %v", i, c.Header, tt.wantHeader)
				}
			}
		})
	}
}

func TestParseTableRowRejectsSingleBar(t *testing.T) {
	bs := &blockSession{in: NewInput("|a|b\n"), ind: Indents{}, mode: ModeAll, state: NewParseState("|a|b\n")}
	if _, ok := parseTableRow(bs); ok {
		t.Error("parseTableRow should reject a row not starting with the literal \"||\" prefix")
	}
}
