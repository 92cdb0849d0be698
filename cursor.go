package scrollback

// Cursor tracks the live cursor position, 0-based, within the active
// viewport.
type Cursor struct {
	Row int
	Col int
}

// NewCursor creates a cursor at (0, 0).
func NewCursor() *Cursor {
	return &Cursor{}
}

// CellTemplate holds the style SGR currently applies to newly written
// cells.
type CellTemplate struct {
	Cell
}

// NewCellTemplate creates a template with default colors and no attributes.
func NewCellTemplate() CellTemplate {
	return CellTemplate{Cell: NewCell()}
}
