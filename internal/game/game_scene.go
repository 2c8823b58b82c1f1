package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameScene is free play: the player against the follow bot, no script.
type GameScene struct {
	app   *App
	match *Match

	initDone   bool
	buf        *ebiten.Image
	background *ebiten.Image
	font       *SpriteFont

	cues soundCues
}

func NewGameScene(app *App) *GameScene {
	return &GameScene{app: app}
}

func (s *GameScene) Settings() SceneSettings {
	return SceneSettings{Name: "game"}
}

func (s *GameScene) Init() {
	s.match = NewMatch(time.Now().UnixNano())
	s.buf = ebiten.NewImage(logicalWidth, logicalHeight)
	s.background = buildCourtBackground()
	s.font = NewSpriteFont(scoreScale)
	s.initDone = true
}

func (s *GameScene) Initialized() bool { return s.initDone }

func (s *GameScene) Match() *Match { return s.match }

func (s *GameScene) Update() {
	s.match.Step()
	s.cues.emit(s.match, s.app.audio)
	if s.match.Tick()%reportSampleInterval == 0 {
		s.app.reporter.Collect(s.match.Snapshot())
	}
}

func (s *GameScene) HandleKey(k Key) {
	switch k {
	case KeyUp:
		s.match.ControlPlayer(MoveUp)
	case KeyDown:
		s.match.ControlPlayer(MoveDown)
	case KeyBack:
		s.app.SetScene(s.app.menu)
	}
}

func (s *GameScene) HandleMousePress(b MouseButton, pos Vec2) {}

func (s *GameScene) HandleEvent(ev Event) {}

func (s *GameScene) Draw() (*ebiten.Image, error) {
	s.buf.Clear()
	s.buf.DrawImage(s.background, nil)
	drawMatch(s.buf, s.match)
	if err := drawScores(s.buf, s.font, s.match.Score()); err != nil {
		return nil, err
	}
	if s.app.showDebug {
		drawMatchDebug(s.buf, s.match)
	}
	return s.buf, nil
}

// --- Shared match rendering ---

var (
	colWhite    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colStunned  = color.RGBA{R: 0x78, G: 0x78, B: 0x78, A: 0xff}
	colBolt     = color.RGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
	colPanelBG  = color.RGBA{R: 0x14, G: 0x14, B: 0x1c, A: 0xf0}
	colHintGrey = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
)

// buildCourtBackground pre-renders the static walls once; scenes reuse the
// image across their whole lifetime.
func buildCourtBackground() *ebiten.Image {
	bg := ebiten.NewImage(logicalWidth, logicalHeight)
	bg.Fill(color.Black)
	for _, r := range courtWallRects() {
		vector.FillRect(bg, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colWhite, false)
	}
	return bg
}

// drawMatch renders the dynamic actors: paddles, ball, projectiles. A
// stunned paddle is drawn dimmed for as long as its controls are dead.
func drawMatch(dst *ebiten.Image, m *Match) {
	for _, pad := range []*Paddle{m.Player(), m.Bot()} {
		col := colWhite
		if pad.Stunned() {
			col = colStunned
		}
		hb := pad.HitBox()
		vector.FillRect(dst, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), col, false)
	}
	hb := m.Ball().HitBox()
	vector.FillRect(dst, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), colWhite, false)
	for _, pr := range m.Projectiles() {
		phb := pr.HitBox()
		vector.FillRect(dst, float32(phb.X), float32(phb.Y), float32(phb.W), float32(phb.H), colBolt, false)
	}
}

// drawScores renders both readouts and runs the side-layout assertion; a
// violated layout aborts the frame with an error rather than drawing a
// lying scoreboard.
func drawScores(dst *ebiten.Image, font *SpriteFont, sb *ScoreBoard) error {
	if !font.Generated() {
		font.Generate()
	}
	playerRow, botRow := scoreRows(sb.Player(), sb.Bot(), font)
	if err := checkScoreLayout(playerRow, botRow); err != nil {
		return err
	}
	font.Draw(dst, fmt.Sprintf("%d", sb.Player()), playerRow.X, playerRow.Y)
	font.Draw(dst, fmt.Sprintf("%d", sb.Bot()), botRow.X, botRow.Y)
	return nil
}

// drawMatchDebug is the F3 overlay: live numbers plus the event ticker tail.
func drawMatchDebug(dst *ebiten.Image, m *Match) {
	ball := m.Ball()
	t := m.BotTuning()
	policy := "none"
	if m.BotPolicy() != nil {
		policy = m.BotPolicy().Name()
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("T=%d ball=(%.0f,%.0f) vel=(%.1f,%.1f)",
		m.Tick(), ball.Pos().X, ball.Pos().Y, ball.Vel().X, ball.Vel().Y), 14, 22)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("bot=%s impulse=%.1f delay=%d stun=%d shots=%d",
		policy, t.Impulse, t.ControlDelay, m.Bot().StunTicks(), len(m.Projectiles())), 14, 34)
	for i, line := range m.Ticker().Recent(6) {
		ebitenutil.DebugPrintAt(dst, line, 14, 50+12*i)
	}
}
