package scrollback

import "testing"

func TestParsePaletteResponseFull(t *testing.T) {
	response := "color0  #1a1b26\ncolor1  #f7768e\ncolor15 #c0caf5\n"
	p, err := ParsePaletteResponse(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p[0] != 0x1a || p[1] != 0x1b || p[2] != 0x26 {
		t.Fatalf("expected color0 override, got %v", p[0:3])
	}
	if p[45] != 0xc0 || p[46] != 0xca || p[47] != 0xf5 {
		t.Fatalf("expected color15 override, got %v", p[45:48])
	}
}

func TestParsePaletteResponsePartialKeepsDefaults(t *testing.T) {
	p, err := ParsePaletteResponse("color1 #aabbcc\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p[3] != 0xaa || p[4] != 0xbb || p[5] != 0xcc {
		t.Fatalf("expected color1 override, got %v", p[3:6])
	}
	for i, b := range p {
		if i >= 3 && i < 6 {
			continue
		}
		if b != DefaultPalette[i] {
			t.Fatalf("expected remaining entries to match default at %d", i)
		}
	}
}

func TestParsePaletteResponseEmpty(t *testing.T) {
	p, err := ParsePaletteResponse("")
	if err != nil {
		t.Fatalf("expected empty input to be tolerated without error, got %v", err)
	}
	if p != DefaultPalette {
		t.Fatal("expected default palette for empty input")
	}
}

func TestParsePaletteResponseIgnoresNonColorLines(t *testing.T) {
	response := "background #1a1b26\nforeground #c0caf5\ncursor #c0caf5\ncolor0 #000000\n"
	p, err := ParsePaletteResponse(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p[0] != 0 || p[1] != 0 || p[2] != 0 {
		t.Fatalf("expected color0 parsed as black, got %v", p[0:3])
	}
}

func TestParsePaletteResponseIgnoresHighIndices(t *testing.T) {
	p, err := ParsePaletteResponse("color16 #112233\ncolor255 #aabbcc\n")
	if err == nil {
		t.Fatal("expected a diagnostic error when no line has an index in [0, 15]")
	}
	if p != DefaultPalette {
		t.Fatal("expected default palette when only out-of-range indices are present")
	}
}

func TestParsePaletteResponseUnrecognizedNonEmptyIsDiagnostic(t *testing.T) {
	p, err := ParsePaletteResponse("not a color line at all")
	if err == nil {
		t.Fatal("expected a diagnostic error for unrecognized non-empty input")
	}
	if p != DefaultPalette {
		t.Fatal("expected fallback to default palette even when diagnostic error is returned")
	}
}

func TestParsePaletteResponseShorthandHex(t *testing.T) {
	p, err := ParsePaletteResponse("color2 #0f0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p[6] != 0x00 || p[7] != 0xff || p[8] != 0x00 {
		t.Fatalf("expected #0f0 expanded to 00ff00, got %v", p[6:9])
	}
}
