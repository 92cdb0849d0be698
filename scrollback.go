package scrollback

// ScrollbackProvider stores lines scrolled off the top of the live grid.
// Index 0 is always the oldest retained line.
type ScrollbackProvider interface {
	Push(line []Cell)
	Len() int
	Line(index int) []Cell
	Clear()
	SetMaxLines(max int)
	MaxLines() int
}

// NoopScrollback discards every pushed line. It is the default for buffers
// that have no need to retain history.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)      {}
func (NoopScrollback) Len() int              { return 0 }
func (NoopScrollback) Line(index int) []Cell { return nil }
func (NoopScrollback) Clear()                {}
func (NoopScrollback) SetMaxLines(max int)   {}
func (NoopScrollback) MaxLines() int         { return 0 }

var _ ScrollbackProvider = NoopScrollback{}

// MemoryScrollback is an in-memory ring of retained lines, oldest first.
// When Push would exceed maxLines, the oldest line is discarded. A
// non-positive maxLines means unbounded.
type MemoryScrollback struct {
	lines    [][]Cell
	maxLines int
}

// NewMemoryScrollback creates storage bounded to maxLines lines (0 or
// negative means unbounded).
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{maxLines: maxLines}
}

// Push appends a copy of line as the newest retained line, evicting the
// oldest line if the buffer is at capacity.
func (s *MemoryScrollback) Push(line []Cell) {
	cp := make([]Cell, len(line))
	copy(cp, line)
	s.lines = append(s.lines, cp)
	if s.maxLines > 0 && len(s.lines) > s.maxLines {
		evict := len(s.lines) - s.maxLines
		s.lines = s.lines[evict:]
	}
}

// Len returns the number of retained lines.
func (s *MemoryScrollback) Len() int { return len(s.lines) }

// Line returns the line at index, where 0 is the oldest, or nil if index is
// out of range.
func (s *MemoryScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(s.lines) {
		return nil
	}
	return s.lines[index]
}

// Clear discards every retained line.
func (s *MemoryScrollback) Clear() { s.lines = nil }

// SetMaxLines changes the retention bound, trimming from the oldest end if
// the current backlog now exceeds it.
func (s *MemoryScrollback) SetMaxLines(max int) {
	s.maxLines = max
	if max > 0 && len(s.lines) > max {
		s.lines = s.lines[len(s.lines)-max:]
	}
}

// MaxLines returns the current retention bound (0 means unbounded).
func (s *MemoryScrollback) MaxLines() int { return s.maxLines }

var _ ScrollbackProvider = (*MemoryScrollback)(nil)
