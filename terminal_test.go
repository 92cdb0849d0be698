package scrollback

import "testing"

func TestNewTerminalDefaults(t *testing.T) {
	term := NewTerminal()
	if term.Rows() != DefaultRows || term.Cols() != DefaultCols {
		t.Fatalf("expected %dx%d, got %dx%d", DefaultRows, DefaultCols, term.Rows(), term.Cols())
	}
}

func TestNewTerminalWithSize(t *testing.T) {
	term := NewTerminal(WithSize(5, 10))
	if term.Rows() != 5 || term.Cols() != 10 {
		t.Fatalf("expected 5x10, got %dx%d", term.Rows(), term.Cols())
	}
}

func TestTerminalWritesPlainText(t *testing.T) {
	term := NewTerminal(WithSize(3, 10))
	term.WriteString("hello")
	if got := term.LineContent(0); got[:5] != "hello" {
		t.Fatalf("expected line to start with hello, got %q", got)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 5 {
		t.Fatalf("expected cursor at (0,5), got (%d,%d)", row, col)
	}
}

func TestTerminalCarriageReturnAndLineFeed(t *testing.T) {
	term := NewTerminal(WithSize(3, 10))
	term.WriteString("ab\r\ncd")
	row, col := term.CursorPos()
	if row != 1 || col != 2 {
		t.Fatalf("expected cursor at (1,2), got (%d,%d)", row, col)
	}
	if got := term.LineContent(0)[:2]; got != "ab" {
		t.Fatalf("expected row 0 to be 'ab', got %q", got)
	}
	if got := term.LineContent(1)[:2]; got != "cd" {
		t.Fatalf("expected row 1 to be 'cd', got %q", got)
	}
}

func TestTerminalBackspace(t *testing.T) {
	term := NewTerminal(WithSize(1, 10))
	term.WriteString("ab\b")
	_, col := term.CursorPos()
	if col != 1 {
		t.Fatalf("expected cursor col 1 after backspace, got %d", col)
	}
}

func TestTerminalTab(t *testing.T) {
	term := NewTerminal(WithSize(1, 20))
	term.WriteString("\t")
	_, col := term.CursorPos()
	if col != 8 {
		t.Fatalf("expected cursor at default tab stop 8, got %d", col)
	}
}

func TestTerminalLineFeedScrollsAtBottomAndPushesScrollback(t *testing.T) {
	storage := NewMemoryScrollback(10)
	term := NewTerminal(WithSize(2, 5), WithScrollback(storage))
	term.WriteString("line1\r\nline2\r\nline3")
	if term.ScrollbackTotal() != 1 {
		t.Fatalf("expected 1 scrollback line after overflow, got %d", term.ScrollbackTotal())
	}
	if got := term.LineContent(0)[:5]; got != "line2" {
		t.Fatalf("expected row 0 to be line2 after scroll, got %q", got)
	}
	if got := term.LineContent(1)[:5]; got != "line3" {
		t.Fatalf("expected row 1 to be line3 after scroll, got %q", got)
	}
}

func TestTerminalCursorPositioning(t *testing.T) {
	term := NewTerminal(WithSize(10, 10))
	term.WriteString("\x1b[3;5H")
	row, col := term.CursorPos()
	if row != 2 || col != 4 {
		t.Fatalf("expected (2,4) from CUP 3;5, got (%d,%d)", row, col)
	}
}

func TestTerminalCursorNextLine(t *testing.T) {
	term := NewTerminal(WithSize(10, 10))
	term.WriteString("\x1b[5;5H")
	term.WriteString("\x1b[2E") // CNL: down 2 rows, column 0
	row, col := term.CursorPos()
	if row != 6 || col != 0 {
		t.Fatalf("expected (6,0) from CNL, got (%d,%d)", row, col)
	}
}

func TestTerminalCursorPreviousLine(t *testing.T) {
	term := NewTerminal(WithSize(10, 10))
	term.WriteString("\x1b[5;5H")
	term.WriteString("\x1b[2F") // CPL: up 2 rows, column 0
	row, col := term.CursorPos()
	if row != 2 || col != 0 {
		t.Fatalf("expected (2,0) from CPL, got (%d,%d)", row, col)
	}
}

func TestTerminalEraseLine(t *testing.T) {
	term := NewTerminal(WithSize(1, 10))
	term.WriteString("abcdefghij")
	term.WriteString("\x1b[5G")  // move to col 5 (1-based) => col index 4
	term.WriteString("\x1b[K")   // erase from cursor to end of line
	want := "abcd      "
	if got := term.LineContent(0); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTerminalEraseDisplay(t *testing.T) {
	term := NewTerminal(WithSize(2, 5))
	term.WriteString("abcde\r\nfghij")
	term.WriteString("\x1b[2J")
	for row := 0; row < 2; row++ {
		if got := term.LineContent(row); got != "     " {
			t.Fatalf("expected row %d cleared, got %q", row, got)
		}
	}
}

func TestTerminalSGRColors(t *testing.T) {
	term := NewTerminal(WithSize(1, 10))
	term.WriteString("\x1b[31;1mX\x1b[0mY")
	red := term.Cell(0, 0)
	if red.Fg.Kind != ColorIndexed || red.Fg.Index != 1 || !red.HasFlag(CellFlagBold) {
		t.Fatalf("expected bold red cell, got %+v", red)
	}
	plain := term.Cell(0, 1)
	if plain.Fg.Kind != ColorDefault || plain.HasFlag(CellFlagBold) {
		t.Fatalf("expected default plain cell after reset, got %+v", plain)
	}
}

func TestTerminalSGRRGBAndIndexed(t *testing.T) {
	term := NewTerminal(WithSize(1, 10))
	term.WriteString("\x1b[38;2;10;20;30mA\x1b[48;5;200mB")
	a := term.Cell(0, 0)
	if a.Fg.Kind != ColorRGB || a.Fg.R != 10 || a.Fg.G != 20 || a.Fg.B != 30 {
		t.Fatalf("expected RGB fg, got %+v", a.Fg)
	}
	b := term.Cell(0, 1)
	if b.Bg.Kind != ColorIndexed || b.Bg.Index != 200 {
		t.Fatalf("expected indexed bg 200, got %+v", b.Bg)
	}
}

func TestTerminalWideCharacterOccupiesSpacer(t *testing.T) {
	term := NewTerminal(WithSize(1, 10))
	term.WriteString("中A")
	first := term.Cell(0, 0)
	spacer := term.Cell(0, 1)
	second := term.Cell(0, 2)
	if first.Char != '中' {
		t.Fatalf("expected 中 at col 0, got %q", first.Char)
	}
	if !spacer.IsWideContinuation() {
		t.Fatal("expected spacer at col 1")
	}
	if second.Char != 'A' {
		t.Fatalf("expected A at col 2, got %q", second.Char)
	}
}

func TestTerminalScrollbackOffsetViewport(t *testing.T) {
	storage := NewMemoryScrollback(10)
	term := NewTerminal(WithSize(2, 5), WithScrollback(storage))
	term.WriteString("one\r\ntwo\r\nthree")

	total := term.ScrollbackTotal()
	if total != 1 {
		t.Fatalf("expected 1 scrollback line, got %d", total)
	}

	term.SetScrollbackOffset(total)
	if got := cellText(term, 0); got != "one" {
		t.Fatalf("expected oldest view row 0 to be 'one', got %q", got)
	}
	if got := cellText(term, 1); got != "two" {
		t.Fatalf("expected oldest view row 1 to be 'two', got %q", got)
	}

	term.SetScrollbackOffset(0)
	if got := cellText(term, 0); got != "two" {
		t.Fatalf("expected live row 0 to be 'two', got %q", got)
	}
	if got := cellText(term, 1); got != "three" {
		t.Fatalf("expected live row 1 to be 'three', got %q", got)
	}
}

func cellText(term *Terminal, row int) string {
	var out []rune
	for col := 0; col < term.Cols(); col++ {
		c := term.Cell(row, col)
		if c == nil || c.IsWideContinuation() || c.Char == 0 {
			continue
		}
		out = append(out, c.Char)
	}
	s := string(out)
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
