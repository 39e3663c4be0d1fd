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

// Command unidok renders Unidok (.ud) files to HTML. It is a thin external
// collaborator around the unidok/unihtml core (spec.md §1): it does file
// walking and serialization only, never document semantics.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unidok/unidok"
	"github.com/unidok/unidok/internal/ignore"
	"github.com/unidok/unidok/unihtml"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var unsafe bool
	var verbosity int
	var output string

	cmd := &cobra.Command{
		Use:   "unidok <input> [-o <output>]",
		Short: "Render Unidok documents to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], output, unsafe, verbosity)
		},
	}
	cmd.Flags().BoolVar(&unsafe, "unsafe", false, "pass verbatim HTML through unfiltered")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or directory")
	return cmd
}

func run(input, output string, unsafe bool, verbosity int) error {
	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return renderFile(input, output, unsafe, verbosity)
	}

	matcher, err := ignore.Load(input)
	if err != nil {
		return err
	}

	return filepath.WalkDir(input, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == input {
			return nil
		}
		rel, err := filepath.Rel(input, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if filepath.Base(p) == ".git" || matcher.Match(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".ud" {
			return nil
		}
		out := filepath.Join(output, strings.TrimSuffix(rel, ".ud")+".html")
		return renderFile(p, out, unsafe, verbosity)
	})
}

func renderFile(path, outPath string, unsafe bool, verbosity int) error {
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "unidok: rendering %s\n", path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc := unidok.Parse(string(src))
	ir := unidok.Lower(doc)

	var w io.Writer = os.Stdout
	if outPath != "" {
		if dir := filepath.Dir(outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return unihtml.Render(w, ir, unihtml.Options{Unsafe: unsafe})
}
