// Package scrollback turns a terminal's raw scrollback byte stream into the
// files a modal text editor needs to display it as a colored, navigable
// buffer with the cursor restored to its live position.
//
// It is a one-shot pipeline, not a live terminal: feed it the full byte
// stream once, get back a [ProcessedScreen] plus three ready-to-write
// artifacts. There is no incremental update and no notion of "later bytes."
//
// # Pipeline
//
//	data := []byte("\x1b[31mHello\x1b[0m\r\nWorld")
//	grid, _ := ParseGridMetadata("0:1,1:24,80")
//	screen := Reconstruct(data, grid, DefaultPalette, DefaultMaxScrollbackLines)
//
//	windowID, _ := ValidateWindowID("42")
//	WriteText("text.txt", screen)
//	WriteRanges("ranges.kak", screen)
//	WriteInitScript("init.kak", screen, windowID, "/tmp/x", "ranges.kak")
//
// # Coordinate systems
//
// Three coordinate systems meet in [Reconstruct]: the terminal grid (display
// columns, where a wide glyph occupies two columns and leaves a continuation
// cell with no text of its own), the UTF-8 byte stream written to text.txt,
// and the editor's 1-based line/byte-offset addressing used by [Span] and
// [CursorPosition]. [Reconstruct] computes the byte offset of each cell
// exactly once, in the same pass that writes the cell's text, so it never
// has to be recovered after the fact.
//
// # Terminal
//
// [Terminal] is the embedded VT-100 emulator: an [io.Writer] over a
// [Buffer] grid with pluggable [ScrollbackProvider] storage. It implements
// just enough of ECMA-48 to render colored scrollback: CR/LF/BS/TAB, SGR,
// cursor movement, and erase-in-line/erase-in-display. OSC and DCS payloads
// are scanned for their terminator and discarded.
//
// # Colors and faces
//
// [Color] is a tagged union (default / direct RGB / 8-bit indexed).
// [Resolve] turns a Color plus a 48-byte [Palette] into an RGB triple.
// [BuildFace] turns a [Cell]'s resolved colors and attribute flags into the
// face string spans carry (e.g. "rgb:CC0000,default+bu").
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer go to whatever
// [ScrollbackProvider] the [Terminal] was constructed with:
//
//	storage := NewMemoryScrollback(DefaultMaxScrollbackLines)
//	term := NewTerminal(WithScrollback(storage))
//
// [Reconstruct] walks the provider from oldest to newest, via
// [Terminal.SetScrollbackOffset] and [Terminal.ScrollbackTotal], to
// linearize scrollback and on-screen rows into one ordered sequence of
// [ProcessedLine]s.
package scrollback
