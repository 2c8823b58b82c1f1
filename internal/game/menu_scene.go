package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Menu layout. Buttons are generated once at init and reused verbatim on
// every visit.
const (
	menuButtonW   = 140.0
	menuButtonH   = 28.0
	menuButtonGap = 10.0
	menuFirstY    = 118.0
	menuTitleY    = 44.0
)

// menuButtonRects returns the three button bounds, top to bottom. Pure so
// layout can be tested without a display.
func menuButtonRects() []Rect {
	x := (float64(logicalWidth) - menuButtonW) / 2
	out := make([]Rect, 3)
	for i := range out {
		y := menuFirstY + float64(i)*(menuButtonH+menuButtonGap)
		out[i] = NewRect(x, y, menuButtonW, menuButtonH)
	}
	return out
}

type menuButton struct {
	label  string
	bounds Rect
	action func()
}

// MenuScene is the entry screen. It is the one scene that filters raw
// events down to mouse presses only.
type MenuScene struct {
	app *App

	initDone bool
	buf      *ebiten.Image
	font     *SpriteFont

	buttons []menuButton
	hover   int // index into buttons, -1 for none
}

func NewMenuScene(app *App) *MenuScene {
	return &MenuScene{app: app, hover: -1}
}

func (s *MenuScene) Settings() SceneSettings {
	return SceneSettings{
		Name:        "menu",
		EventFilter: []EventKind{EventMouseDown},
	}
}

func (s *MenuScene) Init() {
	s.buf = ebiten.NewImage(logicalWidth, logicalHeight)
	s.font = NewSpriteFont(scoreScale)
	s.font.Generate()
	rects := menuButtonRects()
	s.buttons = []menuButton{
		{label: "PLAY", bounds: rects[0], action: func() { s.app.SetScene(s.app.game) }},
		{label: "TUTORIAL", bounds: rects[1], action: func() { s.app.SetScene(s.app.tutorial) }},
		{label: "QUIT", bounds: rects[2], action: func() { s.app.Quit() }},
	}
	s.app.audio.PlayMusic()
	s.initDone = true
}

func (s *MenuScene) Initialized() bool { return s.initDone }

func (s *MenuScene) Update() {
	mx, my := ebiten.CursorPosition()
	s.hover = s.buttonAt(Vec2{float64(mx), float64(my)})
}

// buttonAt returns the index of the button under pos, or -1.
func (s *MenuScene) buttonAt(pos Vec2) int {
	for i, b := range s.buttons {
		if pos.X >= b.bounds.X && pos.X < b.bounds.Right() &&
			pos.Y >= b.bounds.Y && pos.Y < b.bounds.Bottom() {
			return i
		}
	}
	return -1
}

func (s *MenuScene) HandleKey(k Key) {
	if k == KeyConfirm && s.hover >= 0 {
		s.buttons[s.hover].action()
	}
}

func (s *MenuScene) HandleMousePress(b MouseButton, pos Vec2) {}

// HandleEvent receives the filtered mouse presses; clicks land here, not
// in HandleMousePress.
func (s *MenuScene) HandleEvent(ev Event) {
	if ev.Kind != EventMouseDown || ev.Button != MouseLeft {
		return
	}
	if i := s.buttonAt(ev.Pos); i >= 0 {
		s.buttons[i].action()
	}
}

func (s *MenuScene) Draw() (*ebiten.Image, error) {
	s.buf.Fill(color.Black)

	title := "RALLY SENSE"
	tx := (float64(logicalWidth) - textWidth(title, s.font.Scale)) / 2
	s.font.Draw(s.buf, title, tx, menuTitleY)

	for i, b := range s.buttons {
		fill := colPanelBG
		if i == s.hover {
			fill = color.RGBA{R: 0x2a, G: 0x2a, B: 0x3a, A: 0xff}
		}
		r := b.bounds
		vector.FillRect(s.buf, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
		vector.StrokeRect(s.buf, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colWhite, false)
		lx := r.X + (r.W-float64(6*len(b.label)))/2
		ly := r.Y + (r.H-12)/2
		ebitenutil.DebugPrintAt(s.buf, b.label, int(lx), int(ly))
	}

	hint := "W/S move   SPACE confirm   ESC back   F3 debug"
	ebitenutil.DebugPrintAt(s.buf, hint, (logicalWidth-6*len(hint))/2, logicalHeight-24)
	return s.buf, nil
}
