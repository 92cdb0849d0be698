package scrollback

import (
	"fmt"
	"os"
	"strings"
)

// maxRangeChunkSize bounds a single set-option command's length so editors
// with command-length limits don't choke on a screen full of spans.
const maxRangeChunkSize = 900_000

// WriteRanges renders a ProcessedScreen's style spans as range-specs
// set-option commands and writes them to path. Spans spill across multiple
// "set-option -add" commands once a chunk would exceed maxRangeChunkSize. A
// screen with no spans at all produces an empty file — there is nothing for
// the editor to source.
func WriteRanges(path string, screen *ProcessedScreen) error {
	var entries []string
	for lineIdx, line := range screen.Lines {
		lineNum := lineIdx + 1
		for _, span := range line.Spans {
			entries = append(entries, fmt.Sprintf(
				"'%d.%d,%d.%d|%s'",
				lineNum, span.StartByte, lineNum, span.EndByte-1, escapeFace(span.Face),
			))
		}
	}

	if len(entries) == 0 {
		return os.WriteFile(path, nil, 0o644)
	}

	var out strings.Builder
	chunk := "set-option buffer scrollback_colors %val{timestamp}"
	for _, entry := range entries {
		if len(chunk)+1+len(entry) > maxRangeChunkSize && strings.Contains(chunk, "'") {
			out.WriteString(chunk)
			out.WriteByte('\n')
			chunk = "set-option -add buffer scrollback_colors"
		}
		chunk += " " + entry
	}
	out.WriteString(chunk)
	out.WriteByte('\n')

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

// escapeFace escapes backslash and pipe for embedding a face string inside
// a single-quoted range-specs entry; a literal single quote is doubled,
// Kakoune's own quoting convention.
func escapeFace(face string) string {
	var b strings.Builder
	b.Grow(len(face))
	for _, ch := range face {
		switch ch {
		case '\\':
			b.WriteString(`\\`)
		case '|':
			b.WriteString(`\|`)
		case '\'':
			b.WriteString("''")
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
