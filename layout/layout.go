package layout

import (
	"unicode"
)

// paraWrapState accumulates a paragraph's flattened characters into
// greedily word-wrapped lines, mirroring text_layout.rs's inner State:
// a pending whitespace run is held back until the word following it is
// known to fit, so trailing whitespace never starts a new line.
type paraWrapState struct {
	maxWidth      int
	lines         *[]styledLine
	curLine       styledLine
	curSpan       styledLine
	curWhitespace styledLine
	inWhitespace  bool
}

func (s *paraWrapState) push(style fullStyle, c rune) {
	if unicode.IsSpace(c) {
		if !s.inWhitespace {
			s.flushWord()
			s.inWhitespace = true
			s.curWhitespace = append(s.curWhitespace, styledChar{style: style, ch: ' '})
		} else if len(s.curWhitespace) > 0 && s.curWhitespace[0].style != style {
			s.curWhitespace = append(s.curWhitespace, styledChar{style: style, ch: ' '})
		}

		return
	}

	if s.inWhitespace {
		s.inWhitespace = false
		s.curSpan = nil
	}

	s.curSpan = append(s.curSpan, styledChar{style: style, ch: c})
}

func (s *paraWrapState) flushWord() {
	if len(s.curSpan) == 0 {
		return
	}

	if len(s.curLine)+len(s.curSpan) >= s.maxWidth {
		s.flushLine()
	}

	if len(s.curLine) > 0 {
		s.curLine = append(s.curLine, s.curWhitespace...)
	}

	s.curWhitespace = nil
	s.curLine = append(s.curLine, s.curSpan...)
	s.curSpan = nil
}

func (s *paraWrapState) flushLine() {
	if len(s.curLine) > 0 {
		*s.lines = append(*s.lines, s.curLine)
		s.curLine = nil
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// layoutBlock renders block into lines at the given width, treating
// marginTopMin as a minimum margin carried over from a preceding sibling
// (so two adjacent blocks' margins collapse to the larger of the two,
// never the sum).
func layoutBlock(maxWidth, marginTopMin int, block *Block, lines *[]styledLine) {
	if len(*lines) > 0 {
		for n := 0; n < maxInt(marginTopMin, block.MarginTop); n++ {
			*lines = append(*lines, nil)
		}
	}

	switch block.Content.Kind {
	case ContentPara:
		var line styledLine

		flattenTexts(block.Content.Texts, fullStyle{}, &line)

		state := paraWrapState{maxWidth: maxWidth, lines: lines}
		for _, sc := range line {
			state.push(sc.style, sc.ch)
		}

		state.flushWord()
		state.flushLine()

	case ContentPre:
		var line styledLine

		flattenTexts(block.Content.Texts, fullStyle{}, &line)

		start := 0

		for i, c := range line {
			if c.ch == '\n' {
				*lines = append(*lines, append(styledLine{}, line[start:i]...))
				start = i + 1
			}
		}

		*lines = append(*lines, append(styledLine{}, line[start:]...))

	case ContentTB:
		top := marginTopMin

		for i := range block.Content.Blocks {
			child := &block.Content.Blocks[i]
			layoutBlock(maxWidth, top, child, lines)
			top = child.MarginBottom
		}

	case ContentTable:
		layoutTable(maxWidth, block.Content.Rows, lines)
	}
}

func layoutTable(maxWidth int, rows [][]Block, lines *[]styledLine) {
	if len(rows) == 0 {
		return
	}

	nrColumns := len(rows[0])

	columnWidths := make([]int, nrColumns)
	rowHeights := make([]int, len(rows))
	children := make([][][]styledLine, nrColumns)
	widthLeft := maxWidth

	for col := 0; col < nrColumns; col++ {
		columnChildren := make([][]styledLine, len(rows))
		columnWidth := 0

		for rowIdx, row := range rows {
			child := row[col]

			gap := 1
			if col+1 == nrColumns {
				gap = 0
			}

			var childLines []styledLine

			layoutBlock(widthLeft-gap, 0, &child, &childLines)

			for _, line := range childLines {
				columnWidth = maxInt(columnWidth, len(line))
			}

			rowHeights[rowIdx] = maxInt(rowHeights[rowIdx], len(childLines))
			columnChildren[rowIdx] = childLines
		}

		children[col] = columnChildren

		if columnWidth < widthLeft {
			widthLeft -= columnWidth + 1
		} else {
			widthLeft = 1
		}

		columnWidths[col] = columnWidth
	}

	for rowIdx, row := range rows {
		for lineNr := 0; lineNr < rowHeights[rowIdx]; lineNr++ {
			var line styledLine

			for col := range row {
				child := children[col][rowIdx]

				var l styledLine
				if lineNr < len(child) {
					l = child[lineNr]
				}

				lWidth := len(l)
				line = append(line, l...)

				if col+1 < nrColumns {
					for n := 0; n < 1+columnWidths[col]-lWidth; n++ {
						line = append(line, styledChar{ch: ' '})
					}
				}
			}

			*lines = append(*lines, line)
		}

		if rowIdx+1 < len(rows) {
			*lines = append(*lines, nil)
		}
	}
}

func applyStyle(dest *[]byte, lines []styledLine) {
	cur := fullStyle{}

	for _, line := range lines {
		for _, c := range line {
			emitANSIDelta(dest, cur, c.style)
			*dest = append(*dest, string(c.ch)...)
			cur = c.style
		}

		*dest = append(*dest, '\n')

		// less -R resets style at the start of every line, so match
		// that rather than fight it.
		cur = fullStyle{}
	}

	emitANSIDelta(dest, cur, fullStyle{})
}

// Format lays block out at maxWidth and renders it to a string carrying
// ANSI SGR escapes for every active style.
func Format(maxWidth int, block *Block) string {
	var lines []styledLine

	layoutBlock(maxWidth, 0, block, &lines)

	var dest []byte

	applyStyle(&dest, lines)

	return string(dest)
}
