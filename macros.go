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

import "strings"

// parseMacroNameAndArgs parses "@NAME" followed by an optional "(args)" list
// (spec.md §4.8). NAME matches [A-Z0-9_]+. It does not consume anything past
// the closing ')'.
func parseMacroNameAndArgs(in *Input, ind Indents) (*Macro, bool) {
	s := in.start()
	defer s.rollback()

	if in.PeekChar() != '@' {
		return nil, false
	}
	in.Bump(1)

	nameSpan := whileChar(in, isMacroNameRune)
	name := nameSpan.Text(in.Text())
	if name == "" {
		return nil, false
	}

	m := &Macro{Name: name}
	if in.PeekChar() == '(' {
		args, ok := parseMacroArgList(in, ind, name == "LOAD")
		if !ok {
			return nil, false
		}
		m.Args = args
	}
	m.Span = s.apply()
	return m, true
}

func isMacroNameRune(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

// parseMacroArgList parses the parenthesized argument list. LOAD captures
// its entire body as one raw positional argument up to the next unescaped
// ')', per spec.md §4.8; every other macro gets a whitespace-separated
// token-tree list of atoms and key=value pairs.
func parseMacroArgList(in *Input, ind Indents, raw bool) ([]MacroArg, bool) {
	s := in.start()
	defer s.rollback()

	in.Bump(1) // '('
	if raw {
		var b strings.Builder
		for {
			c := in.PeekChar()
			switch c {
			case 0:
				return nil, false
			case '\\':
				in.Bump(1)
				nc := in.PeekChar()
				if nc == 0 {
					return nil, false
				}
				b.WriteRune(nc)
				in.Bump(runeLen(nc))
			case ')':
				in.Bump(1)
				s.apply()
				return []MacroArg{{Kind: MacroArgPositional, Raw: b.String()}}, true
			default:
				b.WriteRune(c)
				in.Bump(runeLen(c))
			}
		}
	}

	var args []MacroArg
	for {
		parseSpaces(in)
		if in.PeekChar() == ')' {
			in.Bump(1)
			s.apply()
			return args, true
		}
		arg, ok := parseMacroArg(in, ind)
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		parseSpaces(in)
		if in.PeekChar() == ',' {
			in.Bump(1)
		}
	}
}

// parseMacroArg parses one atom: word, "quoted", [nested], {braces}, or
// key=value where value is itself one atom.
func parseMacroArg(in *Input, ind Indents) (MacroArg, bool) {
	startKeyScope := in.start()
	key, hasKey := parseMacroArgKey(in)
	if !hasKey {
		startKeyScope.rollback()
	} else {
		startKeyScope.apply()
	}

	val, ok := parseMacroAtomSpan(in, ind)
	if !ok {
		return MacroArg{}, false
	}
	if hasKey {
		return MacroArg{Kind: MacroArgKeyValue, Key: key, Value: val}, true
	}
	return MacroArg{Kind: MacroArgPositional, Value: val}, true
}

func parseMacroArgKey(in *Input) (string, bool) {
	s := in.start()
	defer s.rollback()
	span := whileChar(in, isMacroNameRune)
	if span.Len() == 0 || in.PeekChar() != '=' {
		return "", false
	}
	key := span.Text(in.Text())
	in.Bump(1)
	s.apply()
	return key, true
}

// parseMacroAtomSpan parses one bare word, a quoted string, or a
// bracket/brace-delimited nested token tree (returned as the span of its
// full delimited text, including delimiters, for MATH_SCRIPT-style args
// whose inner syntax is re-parsed elsewhere).
func parseMacroAtomSpan(in *Input, ind Indents) (Span, bool) {
	switch in.PeekChar() {
	case '"', '\'':
		return quotedStringWithEscapes(in, ind)
	case '[':
		return parseBalanced(in, '[', ']')
	case '{':
		return parseBalanced(in, '{', '}')
	default:
		span := untilChar(in, func(r rune) bool {
			return r == ',' || r == ')' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if span.Len() == 0 {
			return Span{}, false
		}
		return span, true
	}
}

func parseBalanced(in *Input, open, close rune) (Span, bool) {
	s := in.start()
	defer s.rollback()
	if in.PeekChar() != open {
		return Span{}, false
	}
	in.Bump(runeLen(open))
	depth := 1
	for depth > 0 {
		c := in.PeekChar()
		if c == 0 {
			return Span{}, false
		}
		switch c {
		case open:
			depth++
		case close:
			depth--
		}
		in.Bump(runeLen(c))
	}
	return s.apply(), true
}

// tryMacro implements the inline forms of spec.md §4.8: "@NAME(args)"
// becomes an InlineMacroSegment whose target is either a braced body
// "{...}" (lexed under the mode PASS/NOPASS select) or the one adjacent
// inline element lexOneInlineUnit finds. With neither, the macro has no
// target.
func (ls *lexSession) tryMacro(items *[]lexItem) bool {
	m, ok := parseMacroNameAndArgs(ls.in, ls.ind)
	if !ok {
		return false
	}

	var target []Node
	if ls.in.PeekChar() == '{' {
		targetMode, changed := structuralMacroModeChange(ls.mode, m, ls.in.Text())
		savedMode := ls.mode
		if changed {
			ls.mode = targetMode
		}
		var braceItems []lexItem
		ok := ls.tryBraces(&braceItems)
		ls.mode = savedMode
		if !ok {
			return false
		}
		for _, it := range braceItems {
			target = append(target, it.node)
		}
	} else {
		target = lexOneInlineUnit(ls)
	}

	span := Span{Start: m.Span.Start, End: ls.in.Pos()}
	*items = append(*items, lexItem{kind: lexNode, span: span, node: &Segment{
		kind: InlineMacroSegment, span: span, mac: m, children: target,
	}})
	return true
}

// lexOneInlineUnit lexes exactly the next adjacent inline element (code,
// math, link, image, nested macro, inline HTML) as an inline macro's
// target, per spec.md §4.8's "adjacent inline element" case.
func lexOneInlineUnit(ls *lexSession) []Node {
	var items []lexItem
	switch {
	case ls.tryCodeSpan(&items):
	case ls.mode.Has(ModeMath) && ls.tryMath(&items):
	case ls.mode.Has(ModeMacros) && ls.tryMacro(&items):
	case ls.mode.Has(ModeLinksImages) && ls.tryImage(&items):
	case ls.mode.Has(ModeLinksImages) && ls.tryLink(&items):
	case ls.mode.Has(ModeHTML) && ls.tryInlineHTML(&items):
	default:
		return nil
	}
	return resolveFlanking(ls.in.Text(), items)
}
