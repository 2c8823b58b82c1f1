package game

import "testing"

func TestGlyphRows_BitmapShapes(t *testing.T) {
	if len(glyphRows) == 0 {
		t.Fatal("no glyphs defined")
	}
	for ch, rows := range glyphRows {
		if len(rows) != glyphH {
			t.Fatalf("glyph %q has %d rows, want %d", ch, len(rows), glyphH)
		}
		for y, row := range rows {
			if len(row) != glyphW {
				t.Fatalf("glyph %q row %d is %d wide, want %d", ch, y, len(row), glyphW)
			}
			for x := 0; x < len(row); x++ {
				if row[x] != '#' && row[x] != '.' {
					t.Fatalf("glyph %q row %d has stray byte %q", ch, y, row[x])
				}
			}
		}
	}
}

func TestGlyphRows_CoverScoreAndCaptions(t *testing.T) {
	// Digits for the score readouts, letters for menu captions.
	for ch := '0'; ch <= '9'; ch++ {
		if _, ok := glyphRows[ch]; !ok {
			t.Fatalf("missing digit glyph %q", ch)
		}
	}
	for ch := 'A'; ch <= 'Z'; ch++ {
		if _, ok := glyphRows[ch]; !ok {
			t.Fatalf("missing letter glyph %q", ch)
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := textWidth("", 3); got != 0 {
		t.Fatalf("empty string width: got %v", got)
	}
	// One glyph: a full advance minus the trailing gap.
	if got := textWidth("A", 2); got != 8 {
		t.Fatalf("single glyph width: got %v", got)
	}
	if got := textWidth("AB", 3); got != 27 {
		t.Fatalf("two glyph width: got %v", got)
	}
}

func TestSpriteFont_UngeneratedLookupsAreNil(t *testing.T) {
	f := NewSpriteFont(scoreScale)
	if f.Generated() {
		t.Fatal("fresh font must not be generated")
	}
	if f.Get('A') != nil {
		t.Fatal("ungenerated font must return nil glyphs")
	}
}
