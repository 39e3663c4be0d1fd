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

func TestMathCloseDelim(t *testing.T) {
	tests := []struct{ open, want string }{
		{"%{", "}%"},
		{"$$", "$$"},
		{"((", "))"},
		{"", "}%"},
	}
	for _, tt := range tests {
		if got := mathCloseDelim(tt.open); got != tt.want {
			t.Errorf("mathCloseDelim(%q) = %q, want %q", tt.open, got, tt.want)
		}
	}
}

func TestMirrorBracket(t *testing.T) {
	tests := []struct{ in, want rune }{
		{'{', '}'}, {'}', '{'},
		{'(', ')'}, {')', '('},
		{'[', ']'}, {']', '['},
		{'x', 'x'},
	}
	for _, tt := range tests {
		if got := mirrorBracket(tt.in); got != tt.want {
			t.Errorf("mirrorBracket(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIndexOf(t *testing.T) {
	if i, ok := indexOf("abcdef", "cd"); !ok || i != 2 {
		t.Errorf("indexOf(abcdef, cd) = (%d, %v), want (2, true)", i, ok)
	}
	if _, ok := indexOf("abcdef", "zz"); ok {
		t.Error("indexOf(abcdef, zz) = true, want false")
	}
}
