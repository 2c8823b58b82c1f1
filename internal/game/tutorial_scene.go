package game

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Dialogue panel metrics, in logical pixels. The basicfont face advances 7
// per character and the panel wraps prose to fit.
const (
	panelX        = 56.0
	panelW        = 400.0
	panelPadX     = 12.0
	panelPadY     = 10.0
	panelLineH    = 14.0
	panelCharW    = 7.0
	panelMaxChars = 53 // (panelW - 2*panelPadX) / panelCharW, floored

	bannerTicks = 90 // how long an escalation banner stays up
)

// TutorialScene runs the scripted lesson: its own match, the stage
// machine, and the dialogue overlay. The simulation freezes on dialogue
// stages and resumes on combat ones.
type TutorialScene struct {
	app     *App
	match   *Match
	machine *TutorialMachine
	script  *DialogueScript

	initDone   bool
	buf        *ebiten.Image
	background *ebiten.Image
	font       *SpriteFont

	advanceHeld bool
	prevAdvance bool

	banner     string
	bannerLeft int

	cues soundCues
}

func NewTutorialScene(app *App) *TutorialScene {
	return &TutorialScene{app: app}
}

func (s *TutorialScene) Settings() SceneSettings {
	return SceneSettings{Name: "tutorial"}
}

func (s *TutorialScene) Init() {
	s.match = NewMatch(time.Now().UnixNano())
	s.machine = NewTutorialMachine()
	script, err := LoadDialogueScript()
	if err != nil {
		log.Printf("[Tutorial] dialogue script unavailable: %v", err)
	}
	s.script = script
	s.buf = ebiten.NewImage(logicalWidth, logicalHeight)
	s.background = buildCourtBackground()
	s.font = NewSpriteFont(scoreScale)
	s.initDone = true
}

func (s *TutorialScene) Initialized() bool { return s.initDone }

func (s *TutorialScene) Match() *Match             { return s.match }
func (s *TutorialScene) Machine() *TutorialMachine { return s.machine }

func (s *TutorialScene) Update() {
	fire := s.advanceHeld && !s.prevAdvance
	s.prevAdvance = s.advanceHeld
	s.advanceHeld = false

	if fire && s.machine.Paused() {
		if s.machine.Advance(s.match) {
			log.Printf("[Tutorial] court closed, thanks for playing")
			s.app.Quit()
			return
		}
	}
	if s.machine.Paused() {
		return // dialogue holds the whole simulation
	}

	s.match.Step()
	s.machine.CheckStage(s.match)
	for {
		key, ok := s.machine.PopNotice()
		if !ok {
			break
		}
		s.setBanner(key)
	}
	s.cues.emit(s.match, s.app.audio)
	if s.bannerLeft > 0 {
		s.bannerLeft--
	}
	if s.match.Tick()%reportSampleInterval == 0 {
		s.app.reporter.Collect(s.match.Snapshot())
	}
}

func (s *TutorialScene) setBanner(key string) {
	lines := s.script.Lines(key)
	if len(lines) == 0 {
		return
	}
	s.banner = lines[0]
	s.bannerLeft = bannerTicks
}

func (s *TutorialScene) HandleKey(k Key) {
	switch k {
	case KeyUp:
		s.match.ControlPlayer(MoveUp)
	case KeyDown:
		s.match.ControlPlayer(MoveDown)
	case KeyConfirm:
		s.advanceHeld = true
	case KeyBack:
		s.machine.LeaveToMenu(s.match)
		s.app.SetScene(s.app.menu)
	}
}

// HandleMousePress lets a click stand in for the confirm key on dialogue.
func (s *TutorialScene) HandleMousePress(b MouseButton, pos Vec2) {
	if b == MouseLeft {
		s.advanceHeld = true
	}
}

func (s *TutorialScene) HandleEvent(ev Event) {}

func (s *TutorialScene) Draw() (*ebiten.Image, error) {
	s.buf.Fill(color.Black)
	if s.machine.Paused() {
		// Court intentionally omitted while paused; the black frame is
		// the explicit clear behind the dialogue.
		s.drawDialoguePanel()
		return s.buf, nil
	}
	s.buf.DrawImage(s.background, nil)
	drawMatch(s.buf, s.match)
	if err := drawScores(s.buf, s.font, s.match.Score()); err != nil {
		return nil, err
	}
	s.drawStageHint()
	if s.bannerLeft > 0 {
		s.drawBanner()
	}
	if s.app.showDebug {
		drawMatchDebug(s.buf, s.match)
		ebitenutil.DebugPrintAt(s.buf,
			"stage="+s.machine.Stage().String(), 14, logicalHeight-16)
	}
	return s.buf, nil
}

// drawDialoguePanel renders the paused-stage dialogue: speaker tag, a
// bordered box with an accent stripe, wrapped prose and a confirm hint.
func (s *TutorialScene) drawDialoguePanel() {
	lines := s.script.StageLines(s.machine.Stage())
	var rows []string
	for _, line := range lines {
		rows = append(rows, wrapDialogue(line, panelMaxChars)...)
	}

	boxH := 2*panelPadY + float64(len(rows)+1)*panelLineH
	boxY := (float64(logicalHeight) - boxH) / 2

	vector.FillRect(s.buf, panelX, float32(boxY), panelW, float32(boxH), colPanelBG, false)
	vector.FillRect(s.buf, panelX, float32(boxY), 3, float32(boxH), colBolt, false)
	vector.StrokeRect(s.buf, panelX, float32(boxY), panelW, float32(boxH), 0.5, colWhite, false)

	speaker := "???"
	if s.script != nil && s.script.Speaker != "" {
		speaker = s.script.Speaker
	}
	ebitenutil.DebugPrintAt(s.buf, speaker, int(panelX), int(boxY)-16)

	ty := boxY + panelPadY + panelLineH - 3
	for _, row := range rows {
		text.Draw(s.buf, row, basicfont.Face7x13, int(panelX+panelPadX), int(ty), colWhite)
		ty += panelLineH
	}
	text.Draw(s.buf, "SPACE or click to continue", basicfont.Face7x13,
		int(panelX+panelPadX), int(boxY+boxH-panelPadY), colHintGrey)
}

// drawStageHint shows a combat stage's one-line objective at the top of
// the court.
func (s *TutorialScene) drawStageHint() {
	lines := s.script.StageLines(s.machine.Stage())
	if len(lines) == 0 {
		return
	}
	hint := lines[0]
	x := (logicalWidth - len(hint)*6) / 2
	ebitenutil.DebugPrintAt(s.buf, hint, x, 2)
}

func (s *TutorialScene) drawBanner() {
	w := float64(len(s.banner)) * panelCharW
	x := (float64(logicalWidth) - w) / 2
	text.Draw(s.buf, s.banner, basicfont.Face7x13, int(x), 52, colBolt)
}
