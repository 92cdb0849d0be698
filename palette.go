package scrollback

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePaletteResponse parses a terminal's palette-query response into a
// 48-byte Palette, leaving DefaultPalette entries in place for any slot not
// mentioned. Recognized lines look like "colorN #RRGGBB" or "colorN #RGB"
// for N in [0, 15]; every other line (e.g. "background #...", "foreground
// #...", "cursor #...") is silently skipped. The returned error is non-nil
// only as a diagnostic — when non-empty input yielded zero recognized
// lines — and the fallback DefaultPalette-backed result is always usable;
// this parser never fails fatally (per spec: palette-query failure is
// tolerated, never fatal).
func ParsePaletteResponse(response string) (Palette, error) {
	palette := DefaultPalette
	matched := 0

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "color")
		if !ok {
			continue
		}
		idxStr, hexTok, ok := cutWhitespace(rest)
		if !ok {
			continue
		}
		idx, err := strconv.ParseUint(idxStr, 10, 8)
		if err != nil || idx > 15 {
			continue
		}
		hexTok = strings.TrimPrefix(strings.TrimSpace(hexTok), "#")
		r, g, b, ok := parseHexColor(hexTok)
		if !ok {
			continue
		}
		base := int(idx) * 3
		palette[base], palette[base+1], palette[base+2] = r, g, b
		matched++
	}

	if strings.TrimSpace(response) != "" && matched == 0 {
		return palette, fmt.Errorf("scrollback: palette-query response contained no recognizable colorN lines, using default palette")
	}
	return palette, nil
}

// cutWhitespace splits s at its first ASCII whitespace byte, like
// strings.Cut but with an arbitrary-whitespace separator.
func cutWhitespace(s string) (before, after string, found bool) {
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return "", "", false
	}
	return s[:i], strings.TrimSpace(s[i+1:]), true
}

// parseHexColor parses a 3- or 6-digit hex color body (no leading '#').
func parseHexColor(hex string) (r, g, b uint8, ok bool) {
	switch len(hex) {
	case 6:
		rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
		gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
		bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, 0, 0, false
		}
		return uint8(rv), uint8(gv), uint8(bv), true
	case 3:
		rv, err1 := strconv.ParseUint(hex[0:1], 16, 8)
		gv, err2 := strconv.ParseUint(hex[1:2], 16, 8)
		bv, err3 := strconv.ParseUint(hex[2:3], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, 0, 0, false
		}
		return uint8(rv * 17), uint8(gv * 17), uint8(bv * 17), true
	default:
		return 0, 0, 0, false
	}
}
