package scrollback

import "fmt"

// BuildFace renders a cell's resolved style as a Kakoune face string:
// "<fg>,<bg>[+<attrs>]", where fg/bg are "rgb:RRGGBB" or the literal
// "default", and attrs is a subset of "bdiur" in that fixed order (bold,
// dim, italic, underline, inverse/reverse). A cell with default colors and
// no attributes has no face at all (ok is false): it needs no span.
func BuildFace(fg, bg Color, flags CellFlags, palette Palette) (face string, ok bool) {
	fgRGB, fgSet := Resolve(fg, palette)
	bgRGB, bgSet := Resolve(bg, palette)

	var attrs [5]byte
	n := 0
	if flags&CellFlagBold != 0 {
		attrs[n] = 'b'
		n++
	}
	if flags&CellFlagDim != 0 {
		attrs[n] = 'd'
		n++
	}
	if flags&CellFlagItalic != 0 {
		attrs[n] = 'i'
		n++
	}
	if flags&CellFlagUnderline != 0 {
		attrs[n] = 'u'
		n++
	}
	if flags&CellFlagInverse != 0 {
		attrs[n] = 'r'
		n++
	}

	if !fgSet && !bgSet && n == 0 {
		return "", false
	}

	fgStr := "default"
	if fgSet {
		fgStr = fmt.Sprintf("rgb:%02X%02X%02X", fgRGB[0], fgRGB[1], fgRGB[2])
	}
	bgStr := "default"
	if bgSet {
		bgStr = fmt.Sprintf("rgb:%02X%02X%02X", bgRGB[0], bgRGB[1], bgRGB[2])
	}

	if n == 0 {
		return fgStr + "," + bgStr, true
	}
	return fgStr + "," + bgStr + "+" + string(attrs[:n]), true
}
