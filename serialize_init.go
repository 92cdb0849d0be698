package scrollback

import (
	"fmt"
	"os"
	"strings"
)

// WriteInitScript renders the editor bootstrap script for a reconstructed
// screen and writes it to path: it wires up the range-specs highlighter,
// restores the cursor, enables the scrollback keymaps, and registers a
// cleanup hook that removes tmpDir once every client but the one closing
// has gone.
//
// When screen.ViewportTop is past line 1, the live grid was preceded by
// scrollback; the script scrolls that line to the top of the view (vt)
// before placing the cursor, instead of centering on the cursor (vb).
func WriteInitScript(path string, screen *ProcessedScreen, windowID WindowID, tmpDir, rangesPath string) error {
	var s strings.Builder

	kakWindowID := escapeKakSingleQuote(windowID.String())
	kakTmpDir := escapeKakSingleQuote(tmpDir)
	kakRangesPath := escapeKakSingleQuote(rangesPath)
	shTmpDir := escapeShellSingleQuote(tmpDir)

	fmt.Fprintf(&s, "set-option global scrollback_kitty_window_id '%s'\n", kakWindowID)
	s.WriteByte('\n')

	s.WriteString("set-option buffer readonly true\n")
	fmt.Fprintf(&s, "set-option buffer scrollback_tmp_dir '%s'\n", kakTmpDir)
	s.WriteByte('\n')

	s.WriteString("declare-option -hidden range-specs scrollback_colors\n")
	s.WriteString("add-highlighter buffer/ ranges scrollback_colors\n")
	fmt.Fprintf(&s, "source '%s'\n", kakRangesPath)
	s.WriteString("update-option buffer scrollback_colors\n")
	s.WriteByte('\n')

	if screen.ViewportTop > 1 {
		fmt.Fprintf(&s, "select %d.1,%d.1\n", screen.ViewportTop, screen.ViewportTop)
		s.WriteString("execute-keys vt\n")
	}
	fmt.Fprintf(&s, "select %d.%d,%d.%d\n", screen.Cursor.Line, screen.Cursor.Col, screen.Cursor.Line, screen.Cursor.Col)
	if screen.ViewportTop <= 1 {
		s.WriteString("execute-keys vb\n")
	}
	s.WriteByte('\n')

	s.WriteString("kakoune-scrollback-setup-keymaps\n")
	s.WriteByte('\n')

	s.WriteString("hook -always global ClientClose .* %{\n")
	s.WriteString("    evaluate-commands %sh{\n")
	fmt.Fprintf(&s, "        if [ -d '%s' ] && [ \"$(printf '%%s' \"$kak_client_list\" | wc -w)\" -le 1 ]; then\n", shTmpDir)
	fmt.Fprintf(&s, "            echo \"nop %%sh{ rm -rf -- '%s' }\"\n", shTmpDir)
	s.WriteString("        fi\n")
	s.WriteString("    }\n")
	s.WriteString("}\n")

	return os.WriteFile(path, []byte(s.String()), 0o644)
}

// escapeKakSingleQuote escapes a string for interpolation inside a Kakoune
// single-quoted string, where a literal quote is written as two quotes.
func escapeKakSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// escapeShellSingleQuote escapes a string for interpolation inside a POSIX
// shell single-quoted string: close the quote, emit an escaped quote, reopen.
func escapeShellSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
