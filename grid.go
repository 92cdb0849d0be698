package scrollback

import (
	"fmt"
	"strconv"
	"strings"
)

// GridMetadata describes the terminal grid a byte stream should be
// interpreted against: its dimensions and where the live cursor sits.
// CursorX and CursorY are 0-based.
type GridMetadata struct {
	CursorX int
	CursorY int
	Lines   int
	Columns int
}

// ParseGridMetadata parses the wire format
// "<scrolled_by>:<cursor_x>,<cursor_y>:<lines>,<columns>", where scrolled_by
// is validated but otherwise unused, and cursor_x/cursor_y arrive 1-based
// and are converted to 0-based. Every field is validated: exactly three
// colon-separated parts, exactly two comma-separated numbers in each of the
// last two parts, all fields numeric, the cursor and size fields positive,
// and the cursor within [1, columns] x [1, lines]. scrolled_by is only
// checked to be an integer.
func ParseGridMetadata(s string) (GridMetadata, error) {
	s = strings.TrimSpace(s)

	part0, rest, ok := strings.Cut(s, ":")
	if !ok {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 3 colon-separated parts")
	}
	part1, part2, ok := strings.Cut(rest, ":")
	if !ok {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 3 colon-separated parts")
	}
	if strings.Contains(part2, ":") {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 3 colon-separated parts")
	}

	if strings.Contains(part0, ",") {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: invalid scrolled_by %q (unexpected comma)", part0)
	}
	if _, err := strconv.Atoi(part0); err != nil {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: invalid scrolled_by: %w", err)
	}

	cxStr, cyStr, ok := strings.Cut(part1, ",")
	if !ok {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 'cursor_x,cursor_y' in second part, got %q", part1)
	}
	if strings.Contains(cyStr, ",") {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 'cursor_x,cursor_y' in second part, got %q", part1)
	}
	cursorX1, err := strconv.Atoi(cxStr)
	if err != nil {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: invalid cursor_x: %w", err)
	}
	cursorY1, err := strconv.Atoi(cyStr)
	if err != nil {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: invalid cursor_y: %w", err)
	}

	linesStr, colsStr, ok := strings.Cut(part2, ",")
	if !ok {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 'lines,columns' in third part, got %q", part2)
	}
	if strings.Contains(colsStr, ",") {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: expected 'lines,columns' in third part, got %q", part2)
	}
	lines, err := strconv.Atoi(linesStr)
	if err != nil {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: invalid lines: %w", err)
	}
	columns, err := strconv.Atoi(colsStr)
	if err != nil {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: invalid columns: %w", err)
	}

	if lines <= 0 {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: lines must be at least 1")
	}
	if columns <= 0 {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: columns must be at least 1")
	}
	if cursorX1 <= 0 {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: cursor_x must be at least 1 (1-based)")
	}
	if cursorY1 <= 0 {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: cursor_y must be at least 1 (1-based)")
	}
	if cursorX1 > columns {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: cursor_x (%d) must be at most columns (%d)", cursorX1, columns)
	}
	if cursorY1 > lines {
		return GridMetadata{}, fmt.Errorf("scrollback: grid metadata: cursor_y (%d) must be at most lines (%d)", cursorY1, lines)
	}

	return GridMetadata{
		CursorX: cursorX1 - 1,
		CursorY: cursorY1 - 1,
		Lines:   lines,
		Columns: columns,
	}, nil
}
