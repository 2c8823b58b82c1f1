package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Glyph metrics. Each glyph is 4x6 pixels with a one-pixel gap, so the
// pen advances 5 per character before scaling.
const (
	glyphW       = 4
	glyphH       = 6
	glyphAdvance = 5

	scoreScale = 6 // scale the score readouts render at
)

// textWidth returns the ink width of s at the given scale: full advances
// for every character minus the trailing gap.
func textWidth(s string, scale int) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64((len(s)*glyphAdvance - 1) * scale)
}

// glyphRows maps each supported character to its 4x6 bitmap, '#' for ink.
// Only uppercase letters, digits and a little punctuation exist; prose
// goes through the basicfont face instead.
var glyphRows = map[rune][glyphH]string{
	'0': {".##.", "#..#", "#..#", "#..#", "#..#", ".##."},
	'1': {"..#.", ".##.", "..#.", "..#.", "..#.", ".###"},
	'2': {".##.", "#..#", "...#", "..#.", ".#..", "####"},
	'3': {"###.", "...#", ".##.", "...#", "...#", "###."},
	'4': {"#..#", "#..#", "####", "...#", "...#", "...#"},
	'5': {"####", "#...", "###.", "...#", "...#", "###."},
	'6': {".##.", "#...", "###.", "#..#", "#..#", ".##."},
	'7': {"####", "...#", "..#.", "..#.", ".#..", ".#.."},
	'8': {".##.", "#..#", ".##.", "#..#", "#..#", ".##."},
	'9': {".##.", "#..#", "#..#", ".###", "...#", ".##."},
	'A': {".##.", "#..#", "#..#", "####", "#..#", "#..#"},
	'B': {"###.", "#..#", "###.", "#..#", "#..#", "###."},
	'C': {".###", "#...", "#...", "#...", "#...", ".###"},
	'D': {"###.", "#..#", "#..#", "#..#", "#..#", "###."},
	'E': {"####", "#...", "###.", "#...", "#...", "####"},
	'F': {"####", "#...", "###.", "#...", "#...", "#..."},
	'G': {".###", "#...", "#.##", "#..#", "#..#", ".##."},
	'H': {"#..#", "#..#", "####", "#..#", "#..#", "#..#"},
	'I': {".###", "..#.", "..#.", "..#.", "..#.", ".###"},
	'J': {"..##", "...#", "...#", "...#", "#..#", ".##."},
	'K': {"#..#", "#.#.", "##..", "#.#.", "#..#", "#..#"},
	'L': {"#...", "#...", "#...", "#...", "#...", "####"},
	'M': {"#..#", "####", "####", "#..#", "#..#", "#..#"},
	'N': {"#..#", "##.#", "##.#", "#.##", "#.##", "#..#"},
	'O': {".##.", "#..#", "#..#", "#..#", "#..#", ".##."},
	'P': {"###.", "#..#", "#..#", "###.", "#...", "#..."},
	'Q': {".##.", "#..#", "#..#", "#..#", "#.#.", ".#.#"},
	'R': {"###.", "#..#", "#..#", "###.", "#.#.", "#..#"},
	'S': {".###", "#...", ".##.", "...#", "...#", "###."},
	'T': {"####", ".#..", ".#..", ".#..", ".#..", ".#.."},
	'U': {"#..#", "#..#", "#..#", "#..#", "#..#", ".##."},
	'V': {"#..#", "#..#", "#..#", "#..#", ".##.", "..#."},
	'W': {"#..#", "#..#", "#..#", "####", "####", "#..#"},
	'X': {"#..#", "#..#", ".##.", ".##.", "#..#", "#..#"},
	'Y': {"#..#", "#..#", ".##.", "..#.", "..#.", "..#."},
	'Z': {"####", "...#", "..#.", ".#..", "#...", "####"},
	'.': {"....", "....", "....", "....", ".##.", ".##."},
	',': {"....", "....", "....", "....", "..#.", ".#.."},
	'!': {".#..", ".#..", ".#..", ".#..", "....", ".#.."},
	'?': {".##.", "#..#", "...#", "..#.", "....", "..#."},
	':': {"....", ".##.", ".##.", "....", ".##.", ".##."},
	'-': {"....", "....", "####", "....", "....", "...."},
}

// SpriteFont renders the chunky in-game glyphs. Generate must run before
// Get returns anything; lookups on an ungenerated font come back nil and
// draw nothing.
type SpriteFont struct {
	Scale     int
	glyphs    map[rune]*ebiten.Image
	generated bool
}

func NewSpriteFont(scale int) *SpriteFont {
	return &SpriteFont{Scale: scale}
}

func (f *SpriteFont) Generated() bool { return f.generated }

// Generate rasterizes every bitmap into a glyph image.
func (f *SpriteFont) Generate() {
	if f.generated {
		return
	}
	f.glyphs = make(map[rune]*ebiten.Image, len(glyphRows))
	for ch, rows := range glyphRows {
		img := ebiten.NewImage(glyphW, glyphH)
		pix := make([]byte, 4*glyphW*glyphH)
		for y, row := range rows {
			for x := 0; x < glyphW && x < len(row); x++ {
				if row[x] != '#' {
					continue
				}
				i := 4 * (y*glyphW + x)
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
			}
		}
		img.WritePixels(pix)
		f.glyphs[ch] = img
	}
	f.generated = true
}

// Get returns the glyph image for ch, or nil when the font has not been
// generated or the character has no bitmap.
func (f *SpriteFont) Get(ch rune) *ebiten.Image {
	if !f.generated {
		return nil
	}
	return f.glyphs[ch]
}

// Draw renders s starting at (x, y). Unknown characters and spaces still
// advance the pen, so layout math stays stable across missing glyphs.
func (f *SpriteFont) Draw(dst *ebiten.Image, s string, x, y float64) {
	if !f.generated {
		f.Generate()
	}
	pen := x
	for _, ch := range s {
		if img := f.Get(ch); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(f.Scale), float64(f.Scale))
			op.GeoM.Translate(pen, y)
			dst.DrawImage(img, op)
		}
		pen += float64(glyphAdvance * f.Scale)
	}
}
