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

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		r          rune
		atBoundary bool
		want       charClass
	}{
		{"boundary always whitespace class", 'x', true, classWhitespace},
		{"dollar is a limiter", '$', false, classLimiter},
		{"space", ' ', false, classWhitespace},
		{"ascii punctuation", '.', false, classPunctuation},
		{"ascii letter", 'a', false, classAlphanumeric},
		{"fullwidth letter folds to alphanumeric", 'Ａ', false, classAlphanumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.r, tt.atBoundary); got != tt.want {
				t.Errorf("classify(%q, %v) = %v, want %v", tt.r, tt.atBoundary, got, tt.want)
			}
		})
	}
}

func TestComputeFlanking(t *testing.T) {
	tests := []struct {
		name                            string
		delimChar                       rune
		left, right                     charClass
		leftAtBoundary, rightAtBoundary bool
		want                            flankInfo
	}{
		{
			name: "left lower class opens (left-flanking)",
			delimChar: '*', left: classWhitespace, right: classAlphanumeric,
			want: flankInfo{left: true, right: false},
		},
		{
			name: "right lower class closes (right-flanking)",
			delimChar: '*', left: classAlphanumeric, right: classWhitespace,
			want: flankInfo{left: false, right: true},
		},
		{
			name: "equal class both flank",
			delimChar: '*', left: classAlphanumeric, right: classAlphanumeric,
			want: flankInfo{left: true, right: true},
		},
		{
			name: "intra-word underscore suppresses both",
			delimChar: '_', left: classAlphanumeric, right: classAlphanumeric,
			want: flankInfo{left: false, right: false},
		},
		{
			name: "both-whitespace-boundary run suppresses both",
			delimChar: '*', left: classWhitespace, right: classWhitespace,
			leftAtBoundary: true, rightAtBoundary: true,
			want: flankInfo{left: false, right: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeFlanking(tt.delimChar, tt.left, tt.right, tt.leftAtBoundary, tt.rightAtBoundary)
			if got != tt.want {
				t.Errorf("computeFlanking(...) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDelimCompatible(t *testing.T) {
	bothFlank := lexItem{leftFlank: true, rightFlank: true}
	openOnly := lexItem{leftFlank: true}
	closeOnly := lexItem{rightFlank: true}

	tests := []struct {
		name           string
		opener, closer lexItem
		want           bool
	}{
		{
			name:   "open-only opener with zero counts is compatible",
			opener: openOnly, closer: bothFlank,
			want: true,
		},
		{
			name: "both open-and-close with counts summing to a nonzero multiple of 3 incompatible",
			opener: lexItem{leftFlank: true, rightFlank: true, count: 1},
			closer: lexItem{leftFlank: true, rightFlank: true, count: 2},
			want:   false,
		},
		{
			name:   "close-only closer with zero counts is compatible",
			opener: bothFlank, closer: closeOnly,
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := delimCompatible(tt.opener, tt.closer); got != tt.want {
				t.Errorf("delimCompatible(...) = %v, want %v", got, tt.want)
			}
		})
	}
}
