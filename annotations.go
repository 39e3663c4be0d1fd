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

// structuralMacroModeChange reports the ParsingMode a PASS/NOPASS macro
// produces for its target's subtree (spec.md §6): PASS narrows the active
// mode to exactly the named flags (or ModeAll with no args); NOPASS clears
// the named flags (or ModeNone with no args) from the active mode. Any
// other macro name leaves mode untouched — it becomes a post-annotation
// applied at lowering instead (lowerBlockMacro and lowerInlineMacro in
// lower.go).
func structuralMacroModeChange(current ParsingMode, m *Macro, source string) (ParsingMode, bool) {
	switch m.Name {
	case "PASS":
		if len(m.Args) == 0 {
			return ModeAll, true
		}
		return foldModeArgs(m, source), true
	case "NOPASS":
		if len(m.Args) == 0 {
			return ModeNone, true
		}
		return current &^ foldModeArgs(m, source), true
	default:
		return current, false
	}
}

func foldModeArgs(m *Macro, source string) ParsingMode {
	var result ParsingMode
	for _, a := range m.Args {
		name := a.Value.Text(source)
		if a.Raw != "" {
			name = a.Raw
		}
		if name == "" {
			continue
		}
		if f, ok := ParseModeFlag(name); ok {
			result |= f
		}
	}
	return result
}

// isStructuralMacro reports whether name is handled by
// structuralMacroModeChange and therefore never needs an IR annotation of
// its own.
func isStructuralMacro(name string) bool {
	return name == "PASS" || name == "NOPASS"
}

// isAnnotationMacro reports whether name is one of the macros that attach to a block or segment
// as a post-annotation rather than producing their own IR node (spec.md
// §9): TOC/NOTOC/NOTXT/LOOSE/BULLET/FOOTNOTES/MATH_SCRIPT/CONFIG and a
// macro with an empty name (a bare attribute list).
func isAnnotationMacro(name string) bool {
	switch name {
	case "TOC", "NOTOC", "NOTXT", "LOOSE", "BULLET", "FOOTNOTES", "MATH_SCRIPT", "CONFIG", "":
		return true
	}
	return false
}

// applyConfigMacro updates ps.Config in place from a @CONFIG(...) macro's
// key=value arguments. Unrecognized keys/values are ignored (spec.md §7).
func applyConfigMacro(ps *ParseState, m *Macro, source string) {
	if v, ok := m.Arg("anchor"); ok {
		switch v.Text(source) {
		case "none":
			ps.Config.Anchor = AnchorNone
		case "github":
			ps.Config.Anchor = AnchorGitHub
		}
	}
	if v, ok := m.Arg("locale"); ok {
		if s := v.Text(source); s != "" {
			ps.Config.Locale = s
		}
	}
	if v, ok := m.Arg("toc"); ok {
		ps.Config.TOC = v.Text(source) != "false"
	}
}
