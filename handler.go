package scrollback

import "github.com/kakbridge/scrollback/internal/vtscan"

// handler.go implements vtscan.Handler for Terminal: it turns scanned
// control bytes, CSI sequences, and strings into grid mutations.

var _ vtscan.Handler = (*Terminal)(nil)

// Print writes a rune at the cursor, advancing it and wrapping or scrolling
// as needed. Wide runes occupy two columns; the second is a spacer cell
// carrying the same style.
func (t *Terminal) Print(r rune) {
	width := runeWidth(r)
	if width == 0 {
		// Combining marks and other zero-width runes have no cell of their
		// own; they are silently dropped rather than merged into the prior
		// cell, since this emulator never needs to re-render live.
		return
	}

	if t.pendingWrap {
		t.newline(true)
		t.pendingWrap = false
	}

	if t.cursor.Col+width > t.cols {
		t.newline(true)
	}

	cell := t.template.Cell
	cell.Char = r
	t.buf.SetCell(t.cursor.Row, t.cursor.Col, cell)

	if width == 2 {
		spacer := t.template.Cell
		spacer.Char = 0
		spacer.SetFlag(CellFlagWideSpacer)
		if t.cursor.Col+1 < t.cols {
			t.buf.SetCell(t.cursor.Row, t.cursor.Col+1, spacer)
		}
	}

	t.cursor.Col += width
	if t.cursor.Col >= t.cols {
		t.cursor.Col = t.cols - 1
		t.pendingWrap = true
	}
}

// Execute handles a single C0 control byte.
func (t *Terminal) Execute(b byte) {
	switch b {
	case '\r':
		t.cursor.Col = 0
		t.pendingWrap = false
	case '\n':
		t.newline(false)
	case '\b':
		if t.cursor.Col > 0 {
			t.cursor.Col--
		}
		t.pendingWrap = false
	case '\t':
		t.cursor.Col = t.buf.NextTabStop(t.cursor.Col)
	}
}

// newline advances the cursor to the next row, scrolling the whole screen
// when already at the bottom. firstCol also resets the column to 0 (used
// when a printed rune wraps); false preserves the column (plain LF).
func (t *Terminal) newline(firstCol bool) {
	t.pendingWrap = false
	if t.cursor.Row == t.rows-1 {
		t.buf.ScrollUp(0, t.rows, 1)
	} else {
		t.cursor.Row++
	}
	if firstCol {
		t.cursor.Col = 0
	}
}

// CSIDispatch handles the CSI sequences in scope: cursor movement, SGR, and
// erase-in-line/erase-in-display.
func (t *Terminal) CSIDispatch(params []int, intermediates []byte, final byte) {
	arg := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}

	switch final {
	case 'A': // CUU
		t.cursor.Row = clamp(t.cursor.Row-arg(0, 1), 0, t.rows-1)
	case 'B': // CUD
		t.cursor.Row = clamp(t.cursor.Row+arg(0, 1), 0, t.rows-1)
	case 'E': // CNL: cursor down n rows, column 0
		t.cursor.Row = clamp(t.cursor.Row+arg(0, 1), 0, t.rows-1)
		t.cursor.Col = 0
	case 'F': // CPL: cursor up n rows, column 0
		t.cursor.Row = clamp(t.cursor.Row-arg(0, 1), 0, t.rows-1)
		t.cursor.Col = 0
	case 'C': // CUF
		t.cursor.Col = clamp(t.cursor.Col+arg(0, 1), 0, t.cols-1)
	case 'D': // CUB
		t.cursor.Col = clamp(t.cursor.Col-arg(0, 1), 0, t.cols-1)
	case 'G': // CHA
		t.cursor.Col = clamp(arg(0, 1)-1, 0, t.cols-1)
	case 'd': // VPA
		t.cursor.Row = clamp(arg(0, 1)-1, 0, t.rows-1)
	case 'H', 'f': // CUP / HVP
		row := clamp(arg(0, 1)-1, 0, t.rows-1)
		col := clamp(arg(1, 1)-1, 0, t.cols-1)
		t.cursor.Row, t.cursor.Col = row, col
		t.pendingWrap = false
	case 'K': // EL
		t.eraseLine(arg(0, 0))
	case 'J': // ED
		t.eraseDisplay(arg(0, 0))
	case 'm': // SGR
		t.sgr(params)
	}
}

func (t *Terminal) eraseLine(mode int) {
	row := t.cursor.Row
	switch mode {
	case 0:
		t.buf.ClearRowRange(row, t.cursor.Col, t.cols)
	case 1:
		t.buf.ClearRowRange(row, 0, t.cursor.Col+1)
	case 2:
		t.buf.ClearRow(row)
	}
}

func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.buf.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cols)
		for row := t.cursor.Row + 1; row < t.rows; row++ {
			t.buf.ClearRow(row)
		}
	case 1:
		for row := 0; row < t.cursor.Row; row++ {
			t.buf.ClearRow(row)
		}
		t.buf.ClearRowRange(t.cursor.Row, 0, t.cursor.Col+1)
	case 2:
		t.buf.ClearAll()
	}
}

// sgr applies a sequence of Select Graphic Rendition parameters to the cell
// template used for subsequent Print calls.
func (t *Terminal) sgr(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	cell := &t.template.Cell
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*cell = NewCell()
		case p == 1:
			cell.SetFlag(CellFlagBold)
		case p == 2:
			cell.SetFlag(CellFlagDim)
		case p == 3:
			cell.SetFlag(CellFlagItalic)
		case p == 4:
			cell.SetFlag(CellFlagUnderline)
		case p == 7:
			cell.SetFlag(CellFlagInverse)
		case p == 22:
			cell.ClearFlag(CellFlagBold)
			cell.ClearFlag(CellFlagDim)
		case p == 23:
			cell.ClearFlag(CellFlagItalic)
		case p == 24:
			cell.ClearFlag(CellFlagUnderline)
		case p == 27:
			cell.ClearFlag(CellFlagInverse)
		case p >= 30 && p <= 37:
			cell.Fg = IndexedColor(uint8(p - 30))
		case p == 38:
			i += t.extendedColor(params[i:], &cell.Fg)
		case p == 39:
			cell.Fg = DefaultColor()
		case p >= 40 && p <= 47:
			cell.Bg = IndexedColor(uint8(p - 40))
		case p == 48:
			i += t.extendedColor(params[i:], &cell.Bg)
		case p == 49:
			cell.Bg = DefaultColor()
		case p >= 90 && p <= 97:
			cell.Fg = IndexedColor(uint8(p-90) + 8)
		case p >= 100 && p <= 107:
			cell.Bg = IndexedColor(uint8(p-100) + 8)
		}
	}
}

// extendedColor parses a 38/48 ";5;n" (indexed) or ";2;r;g;b" (RGB) run
// starting at params[0] (the 38 or 48 itself) and returns how many extra
// elements beyond params[0] were consumed.
func (t *Terminal) extendedColor(params []int, dst *Color) int {
	if len(params) < 2 {
		return 0
	}
	switch params[1] {
	case 5:
		if len(params) < 3 {
			return 1
		}
		*dst = IndexedColor(uint8(params[2]))
		return 2
	case 2:
		if len(params) < 5 {
			return len(params) - 1
		}
		*dst = RGBColor(uint8(params[2]), uint8(params[3]), uint8(params[4]))
		return 4
	}
	return 1
}

// StringDispatch discards OSC/DCS/APC/PM/SOS payloads; none are
// interpreted, matching how unrecognized sequences are handled throughout.
func (t *Terminal) StringDispatch(kind vtscan.StringKind, data []byte) {}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
