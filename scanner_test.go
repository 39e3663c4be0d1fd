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

func TestNextSpecial(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		wantPos  int
		wantKind patternKind
	}{
		{"empty string finds nothing", "", -1, patNone},
		{"plain text finds nothing", "hello world", -1, patNone},
		{"single star", "a*b", 1, patStar},
		{"math open requires both bytes", "a%{b", 1, patMathOpen},
		{"lone percent is not special", "a%b", -1, patNone},
		{"ellipsis requires three dots", "a...b", 1, patEllipsis},
		{"two dots is not an ellipsis", "a..b", -1, patNone},
		{"em dash requires two dashes", "a--b", 1, patEmDash},
		{"single dash is not an em dash", "a-b", -1, patNone},
		{"first match wins over a later one", "ab*c_d", 2, patStar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, kind := nextSpecial(tt.s)
			if pos != tt.wantPos || kind != tt.wantKind {
				t.Errorf("nextSpecial(%q) = (%d, %v), want (%d, %v)", tt.s, pos, kind, tt.wantPos, tt.wantKind)
			}
		})
	}
}
