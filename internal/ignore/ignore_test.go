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

package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGitignore(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m.Match("anything.ud", false) {
		t.Error("empty matcher should not match")
	}
}

func TestMatchSimplePattern(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "*.html\nbuild/\n# comment\n\n")
	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		rel   string
		isDir bool
		want  bool
	}{
		{"out.html", false, true},
		{"doc.ud", false, false},
		{"build", true, true},
		{"build", false, false},
		{"sub/out.html", false, true},
	}
	for _, c := range cases {
		if got := m.Match(c.rel, c.isDir); got != c.want {
			t.Errorf("Match(%q, %v) = %v, want %v", c.rel, c.isDir, got, c.want)
		}
	}
}

func TestMatchAnchoredPattern(t *testing.T) {
	dir := t.TempDir()
	writeGitignore(t, dir, "/only_root.ud\n")
	m, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Match("only_root.ud", false) {
		t.Error("anchored pattern should match at root")
	}
	if m.Match("nested/only_root.ud", false) {
		t.Error("anchored pattern should not match at depth")
	}
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	if m.Match("x", false) {
		t.Error("nil matcher should match nothing")
	}
}
