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

// Package ignore implements a minimal subset of gitignore pattern matching
// for cmd/unidok's directory walk: blank lines and '#' comments are
// skipped, a trailing '/' anchors a pattern to directories, a leading '/'
// anchors it to the ignore file's directory instead of matching at any
// depth, and '*'/'?' glob within a path segment via path.Match. It does not
// implement '**', negation ('!'), or character classes beyond what
// path.Match already provides; those are rare enough in practice that
// cmd/unidok's walk doesn't need full compatibility with git itself.
package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"
)

// Matcher holds the patterns loaded from a single .gitignore file.
type Matcher struct {
	patterns []pattern
}

type pattern struct {
	raw      string
	dirOnly  bool
	anchored bool
}

// Load reads dir/.gitignore, if present, into a Matcher. A missing file is
// not an error; it yields an empty Matcher that matches nothing.
func Load(dir string) (*Matcher, error) {
	f, err := os.Open(path.Join(dir, ".gitignore"))
	if os.IsNotExist(err) {
		return &Matcher{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &Matcher{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := pattern{raw: line}
		if strings.HasSuffix(p.raw, "/") {
			p.dirOnly = true
			p.raw = strings.TrimSuffix(p.raw, "/")
		}
		if strings.HasPrefix(p.raw, "/") {
			p.anchored = true
			p.raw = strings.TrimPrefix(p.raw, "/")
		}
		if p.raw == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Match reports whether rel (a slash-separated path relative to the
// directory Load was called with) should be ignored. isDir indicates
// whether rel names a directory, for patterns anchored with a trailing '/'.
func (m *Matcher) Match(rel string, isDir bool) bool {
	if m == nil {
		return false
	}
	segs := strings.Split(rel, "/")
	for _, p := range m.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		if p.anchored {
			if ok, _ := path.Match(p.raw, rel); ok {
				return true
			}
			continue
		}
		for _, seg := range segs {
			if ok, _ := path.Match(p.raw, seg); ok {
				return true
			}
		}
	}
	return false
}
