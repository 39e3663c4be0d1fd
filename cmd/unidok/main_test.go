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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderFileWritesHTMLSibling(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.ud")
	if err := os.WriteFile(in, []byte("# Title\n\nHello *world*.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "doc.html")

	if err := renderFile(in, out, false, 0); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "<h1") || !strings.Contains(string(got), "<em>world</em>") {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestRenderFileEscapesUnsafeHTML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.ud")
	if err := os.WriteFile(in, []byte("<script>alert(1)</script>\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "doc.html")

	if err := renderFile(in, out, false, 0); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(out)
	if strings.Contains(string(got), "<script>") {
		t.Errorf("expected raw HTML to be escaped by default, got: %s", got)
	}

	if err := renderFile(in, out, true, 0); err != nil {
		t.Fatal(err)
	}
	got, _ = os.ReadFile(out)
	if !strings.Contains(string(got), "<script>") {
		t.Errorf("expected --unsafe to pass raw HTML through, got: %s", got)
	}
}

func TestRunWalksDirectoryRespectingGitignore(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	if err := os.WriteFile(filepath.Join(src, ".gitignore"), []byte("skip.ud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "keep.ud"), []byte("Hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "skip.ud"), []byte("Hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("Hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(src, out, false, 0); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(out, "keep.html")); err != nil {
		t.Errorf("expected keep.html to be written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "skip.html")); !os.IsNotExist(err) {
		t.Errorf("expected skip.html to be ignored via .gitignore, err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "notes.html")); !os.IsNotExist(err) {
		t.Errorf("expected notes.txt to be ignored (wrong extension), err=%v", err)
	}
}
