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

import "golang.org/x/net/html/atom"

// selfClosingTags is the HTML5 "void element" set: these never have a body
// or closing tag even when written without a trailing '/>' (spec.md §4.9).
var selfClosingTags = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

// rawTextTags hold markup-free text as their body: the body is scanned only
// for the matching closing tag, not re-lexed (spec.md §4.9).
var rawTextTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Textarea: true, atom.Title: true,
}

// blockLevelTags lists the block-level HTML elements. isBlockLevelTag
// reports membership; neither the inline nor the block HTML parser consults
// it, so these elements are accepted in both contexts.
var blockLevelTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Details: true, atom.Dialog: true, atom.Dd: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Ul: true,
}

func isSelfClosingTag(name string) bool  { return selfClosingTags[atom.Lookup([]byte(name))] }
func isRawTextTag(name string) bool      { return rawTextTags[atom.Lookup([]byte(name))] }
func isBlockLevelTag(name string) bool   { return blockLevelTags[atom.Lookup([]byte(name))] }
func isKnownHTMLTag(name string) bool    { return atom.Lookup([]byte(name)) != 0 }
