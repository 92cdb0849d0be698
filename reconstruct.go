package scrollback

// CursorPosition is the reconstructed cursor location in the flattened,
// editor-addressable output: 1-based line number and 1-based byte offset
// within that line's text.
type CursorPosition struct {
	Line int
	Col  int
}

// Span is a byte range within a ProcessedLine's text sharing one face.
// StartByte is 1-based and inclusive; EndByte is 1-based and exclusive.
type Span struct {
	StartByte int
	EndByte   int
	Face      string
}

// ProcessedLine is one line of the flattened output: its text and the
// style spans within it.
type ProcessedLine struct {
	Text  string
	Spans []Span
}

// ProcessedScreen is the full result of Reconstruct: every line from the
// oldest retained scrollback through the live grid, and where the cursor
// lands in that flattened addressing.
type ProcessedScreen struct {
	Lines  []ProcessedLine
	Cursor CursorPosition

	// ViewportTop is the flattened, 1-based line where the live grid began
	// before any scrollback was scrolled into view. A value of 1 means the
	// live grid already fills from the top, so there is no scrollback to
	// scroll past.
	ViewportTop int
}

// DefaultMaxScrollbackLines bounds scrollback retention when the caller has
// no stronger preference.
const DefaultMaxScrollbackLines = 200_000

// Reconstruct feeds data through a fresh terminal sized to grid and
// flattens the result — all retained scrollback followed by the live
// grid — into a ProcessedScreen, trimming wholly blank trailing lines and
// translating the live cursor into the flattened, 1-based addressing.
func Reconstruct(data []byte, grid GridMetadata, palette Palette, maxScrollbackLines int) *ProcessedScreen {
	storage := NewMemoryScrollback(maxScrollbackLines)
	term := NewTerminal(WithSize(grid.Lines, grid.Columns), WithScrollback(storage))
	term.Write(NormalizeLineEndings(data))

	totalSB := term.ScrollbackTotal()
	cursorOutputLine := totalSB + grid.CursorY + 1
	viewportTop := totalSB + 1

	var lines []ProcessedLine
	cursor := CursorPosition{Line: 1, Col: 1}

	// Oldest full screen: the scrollback-to-live window at maximum offset.
	term.SetScrollbackOffset(totalSB)
	for row := 0; row < grid.Lines; row++ {
		pushRow(term, row, grid, cursorOutputLine, &lines, &cursor, palette)
	}

	// Each offset decrease reveals exactly one new bottom row.
	for offset := totalSB - 1; offset >= 0; offset-- {
		term.SetScrollbackOffset(offset)
		pushRow(term, grid.Lines-1, grid, cursorOutputLine, &lines, &cursor, palette)
	}

	for len(lines) > 0 {
		last := lines[len(lines)-1]
		if last.Text != "" || len(last.Spans) != 0 {
			break
		}
		lines = lines[:len(lines)-1]
	}

	if cursor.Line > len(lines) {
		cursor.Line = len(lines)
		if cursor.Line < 1 {
			cursor.Line = 1
		}
		cursor.Col = 1
	}

	if viewportTop > len(lines) {
		viewportTop = len(lines)
		if viewportTop < 1 {
			viewportTop = 1
		}
	}

	return &ProcessedScreen{Lines: lines, Cursor: cursor, ViewportTop: viewportTop}
}

func pushRow(term *Terminal, row int, grid GridMetadata, cursorOutputLine int, lines *[]ProcessedLine, cursor *CursorPosition, palette Palette) {
	lineIdx := len(*lines)
	isCursorLine := lineIdx+1 == cursorOutputLine
	pline := processRow(term, row, grid, isCursorLine, cursor, palette)
	*lines = append(*lines, pline)
	if isCursorLine {
		cursor.Line = lineIdx + 1
	}
}

func processRow(term *Terminal, row int, grid GridMetadata, isCursorLine bool, cursor *CursorPosition, palette Palette) ProcessedLine {
	var text []byte
	var spans []Span
	var currentFace string
	hasFace := false
	spanStartByte := 1

	for col := 0; col < grid.Columns; col++ {
		cell := term.Cell(row, col)
		if cell == nil {
			break
		}
		if cell.IsWideContinuation() {
			continue
		}

		byteOffsetBefore := len(text)

		if isCursorLine && col == grid.CursorX {
			cursor.Col = byteOffsetBefore + 1
		}

		if contents := cell.Contents(); contents == "" {
			text = append(text, ' ')
		} else {
			text = append(text, contents...)
		}

		face, faceOK := BuildFace(cell.Fg, cell.Bg, cell.Flags, palette)
		changed := faceOK != hasFace || (faceOK && face != currentFace)
		if changed {
			byteNow := byteOffsetBefore + 1
			if hasFace && spanStartByte < byteNow {
				spans = append(spans, Span{StartByte: spanStartByte, EndByte: byteNow, Face: currentFace})
			}
			hasFace = faceOK
			currentFace = face
			spanStartByte = byteNow
		}
	}

	byteEnd := len(text) + 1
	if hasFace && spanStartByte < byteEnd {
		spans = append(spans, Span{StartByte: spanStartByte, EndByte: byteEnd, Face: currentFace})
	}

	trimmedLen := len(text)
	for trimmedLen > 0 && isASCIISpace(text[trimmedLen-1]) {
		trimmedLen--
	}
	if trimmedLen < len(text) {
		text = text[:trimmedLen]
		maxByte := trimmedLen + 1
		kept := spans[:0]
		for _, s := range spans {
			if s.StartByte < maxByte {
				kept = append(kept, s)
			}
		}
		spans = kept
		if len(spans) > 0 && spans[len(spans)-1].EndByte > maxByte {
			spans[len(spans)-1].EndByte = maxByte
		}
	}

	return ProcessedLine{Text: string(text), Spans: spans}
}

// isASCIISpace reports whether b is one of the trimmable trailing ASCII
// whitespace bytes, not just the literal space the emulator fills cells
// with.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
