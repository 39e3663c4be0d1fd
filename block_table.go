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

// parseTable parses a pipe-delimited table, including the per-cell
// metadata prefix spec.md §4.7 defines (alignment, span, header markers).
// Each row begins with a line-leading "||" (optionally "||#|" to mark every
// cell in that row as a header cell); there is no CommonMark-style
// pipe-dashes separator line.
func parseTable(bs *blockSession) (*Block, bool) {
	s := bs.in.start()
	defer s.rollback()

	first, ok := parseTableRow(bs)
	if !ok {
		return nil, false
	}
	rows := []TableRow{first}

	for {
		sp := bs.in.start()
		if !ParseLineBreak(bs.in, bs.ind) {
			sp.rollback()
			break
		}
		row, ok := parseTableRow(bs)
		if !ok {
			sp.rollback()
			break
		}
		sp.apply()
		rows = append(rows, row)
	}

	if len(rows) < 1 {
		return nil, false
	}
	full := s.apply()
	return &Block{kind: TableKind, span: full, rows: rows}, true
}

// parseTableRow parses "||cell|cell" for one line, or "||#|cell|cell" to
// mark every cell in the row as a header in one shorthand (spec.md §4.7's
// row-level "#" marker — equivalent to, but cheaper than, prefixing each
// cell individually with "{h}").
func parseTableRow(bs *blockSession) (TableRow, bool) {
	s := bs.in.start()
	defer s.rollback()

	parseAtMostNSpaces(bs.in, 3)
	if bs.in.PeekChar() != '|' {
		return TableRow{}, false
	}
	bs.in.Bump(1)
	if bs.in.PeekChar() != '|' {
		return TableRow{}, false
	}
	bs.in.Bump(1)

	headerRow := false
	if marker := bs.in.start(); bs.in.PeekChar() == '#' {
		bs.in.Bump(1)
		if bs.in.PeekChar() == '|' {
			bs.in.Bump(1)
			headerRow = true
			marker.apply()
		} else {
			marker.rollback()
		}
	} else {
		marker.rollback()
	}

	var cells []TableCell
	for {
		cell, ok := parseTableCell(bs, headerRow)
		if !ok {
			return TableRow{}, false
		}
		cells = append(cells, cell)
		if bs.in.PeekChar() == '|' {
			bs.in.Bump(1)
			if isLineEndOrEOF(bs.in) {
				break
			}
			continue
		}
		break
	}
	if !parseWsAndLineEnd(bs.in) {
		return TableRow{}, false
	}
	s.apply()
	return TableRow{Header: headerRow, Cells: cells}, true
}

// parseTableCell parses one cell's optional metadata prefix — a
// semicolon-separated run of ":"-anchored alignment markers, "^"/"v"
// vertical alignment, "h" header flag, or "NxM" span, all inside a leading
// "{...}" — followed by its inline content up to the next unescaped '|'.
func parseTableCell(bs *blockSession, headerRow bool) (TableCell, bool) {
	cell := TableCell{Header: headerRow, ColSpan: 1, RowSpan: 1}
	parseSpaces(bs.in)

	if bs.in.PeekChar() == '{' {
		meta, ok := parseBalanced(bs.in, '{', '}')
		if ok {
			applyCellMeta(&cell, meta.Text(bs.in.Text()))
		}
	}
	parseSpaces(bs.in)

	children := lexSegments(&lexSession{in: bs.in, ind: bs.ind, ctx: TableCtx(), mode: bs.mode, state: bs.state})
	cell.Content = children
	return cell, true
}

func applyCellMeta(cell *TableCell, meta string) {
	start := 0
	for i := 0; i <= len(meta); i++ {
		if i == len(meta) || meta[i] == ';' {
			applyCellMetaToken(cell, trimASCIISpace(meta[start:i]))
			start = i + 1
		}
	}
}

func applyCellMetaToken(cell *TableCell, tok string) {
	switch tok {
	case "":
		return
	case "h":
		cell.Header = true
	case ":":
		cell.HAlign = AlignLeft
	case "::":
		cell.HAlign = AlignCenter
	case "^":
		cell.VAlign = AlignTop
	case "v":
		cell.VAlign = AlignBottom
	default:
		if tok[len(tok)-1] == ':' {
			cell.HAlign = AlignRight
			return
		}
		if n, m, ok := parseSpanToken(tok); ok {
			cell.ColSpan, cell.RowSpan = n, m
		}
	}
}

func parseSpanToken(tok string) (int, int, bool) {
	for i := 0; i < len(tok); i++ {
		if tok[i] == 'x' {
			a, ok1 := parseSmallInt(tok[:i])
			b, ok2 := parseSmallInt(tok[i+1:])
			if ok1 && ok2 {
				return a, b, true
			}
			return 0, 0, false
		}
	}
	return 0, 0, false
}

func parseSmallInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func trimASCIISpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
