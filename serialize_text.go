package scrollback

import (
	"os"
	"strings"
)

// WriteText renders a ProcessedScreen as plain LF-joined text and writes it
// to path. A non-empty screen always ends with a trailing newline; an empty
// screen produces an empty file.
func WriteText(path string, screen *ProcessedScreen) error {
	var b strings.Builder
	for i, line := range screen.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Text)
	}
	if len(screen.Lines) > 0 {
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
