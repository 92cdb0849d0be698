package scrollback

import (
	"github.com/kakbridge/scrollback/internal/vtscan"
)

// DefaultRows and DefaultCols are used when NewTerminal is called without a
// WithSize option.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Terminal is a headless VT-100/ECMA-48 emulator: it consumes a byte stream
// and maintains a live grid plus scrollback, with no rendering or PTY of its
// own.
type Terminal struct {
	rows, cols int
	buf        *Buffer
	cursor     *Cursor
	template   CellTemplate
	decoder    *vtscan.Scanner

	// scrollbackStorage is captured by WithScrollback before the Buffer
	// exists and consumed once by NewTerminal.
	scrollbackStorage ScrollbackProvider

	scrollbackOffset int
	pendingWrap      bool
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the terminal's row and column count.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		t.rows = rows
		t.cols = cols
	}
}

// WithScrollback installs a custom scrollback storage implementation.
func WithScrollback(storage ScrollbackProvider) Option {
	return func(t *Terminal) {
		t.scrollbackStorage = storage
	}
}

// NewTerminal creates a terminal with default 24x80 dimensions, applying the
// given options.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{rows: DefaultRows, cols: DefaultCols}

	for _, opt := range opts {
		opt(t)
	}

	storage := t.scrollbackStorage
	if storage == nil {
		storage = ScrollbackProvider(NoopScrollback{})
	}
	t.buf = NewBufferWithStorage(t.rows, t.cols, storage)
	t.cursor = NewCursor()
	t.template = NewCellTemplate()
	t.decoder = vtscan.New(t)
	return t
}

// Rows returns the terminal's live grid height.
func (t *Terminal) Rows() int { return t.rows }

// Cols returns the terminal's live grid width.
func (t *Terminal) Cols() int { return t.cols }

// Write feeds raw terminal output bytes into the emulator.
func (t *Terminal) Write(p []byte) (int, error) {
	t.decoder.Advance(p)
	return len(p), nil
}

// WriteString is a convenience wrapper around Write.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// CursorPos returns the live cursor position, 0-based.
func (t *Terminal) CursorPos() (row, col int) {
	return t.cursor.Row, t.cursor.Col
}

// ScrollbackTotal returns the number of lines currently retained in
// scrollback, above the live grid.
func (t *Terminal) ScrollbackTotal() int {
	return t.buf.ScrollbackLen()
}

// SetScrollbackOffset shifts the viewport Cell reads from by n lines into
// scrollback (0 is the live grid; ScrollbackTotal() is the oldest possible
// full-screen view). Out-of-range values are clamped.
func (t *Terminal) SetScrollbackOffset(n int) {
	total := t.ScrollbackTotal()
	if n < 0 {
		n = 0
	}
	if n > total {
		n = total
	}
	t.scrollbackOffset = n
}

// ScrollbackOffset returns the current viewport offset set by
// SetScrollbackOffset.
func (t *Terminal) ScrollbackOffset() int {
	return t.scrollbackOffset
}

// Cell returns the cell at (row, col) as currently shown by the viewport
// (see SetScrollbackOffset), or nil if out of bounds.
func (t *Terminal) Cell(row, col int) *Cell {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return nil
	}
	if t.scrollbackOffset == 0 {
		return t.buf.Cell(row, col)
	}

	total := t.ScrollbackTotal()
	combinedIndex := total - t.scrollbackOffset + row
	if combinedIndex < total {
		line := t.buf.ScrollbackLine(combinedIndex)
		if col >= len(line) {
			return nil
		}
		return &line[col]
	}
	return t.buf.Cell(combinedIndex-total, col)
}

// SetMaxScrollback sets the retention bound on the underlying scrollback
// storage (0 means unbounded).
func (t *Terminal) SetMaxScrollback(max int) {
	t.buf.ScrollbackProvider().SetMaxLines(max)
}

// MaxScrollback returns the current scrollback retention bound.
func (t *Terminal) MaxScrollback() int {
	return t.buf.ScrollbackProvider().MaxLines()
}

// LineContent returns the text of a live grid row, skipping wide-character
// continuation cells.
func (t *Terminal) LineContent(row int) string {
	if row < 0 || row >= t.rows {
		return ""
	}
	var out []rune
	for col := 0; col < t.cols; col++ {
		cell := t.buf.Cell(row, col)
		if cell == nil || cell.IsWideContinuation() {
			continue
		}
		out = append(out, cell.Char)
	}
	return string(out)
}

// String renders every live grid row as newline-joined text, for debugging.
func (t *Terminal) String() string {
	lines := make([]string, t.rows)
	for row := range lines {
		lines[row] = t.LineContent(row)
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}
