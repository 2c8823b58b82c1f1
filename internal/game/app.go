package game

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBinding maps one device key to a logical key. An ordered slice, not a
// map, so dispatch order is stable tick to tick.
type keyBinding struct {
	device  ebiten.Key
	logical Key
}

var keyBindings = []keyBinding{
	{ebiten.KeyW, KeyUp},
	{ebiten.KeyS, KeyDown},
	{ebiten.KeySpace, KeyConfirm},
	{ebiten.KeyEnter, KeyConfirm},
	{ebiten.KeyEscape, KeyBack},
}

// App is the shell: it owns the scenes, runs the active one, polls input
// and implements ebiten.Game. All simulation lives below it.
type App struct {
	menu     *MenuScene
	game     *GameScene
	tutorial *TutorialScene

	scene   Scene
	running bool // run loop has started; SetScene may init eagerly
	done    bool
	drawErr error

	frame *ebiten.Image // last scene frame, composed in Draw

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	showDebug bool

	settings *SettingsManager
	audio    *AudioManager
	reporter *MatchReporter
}

// NewApp wires the three scenes and starts on the menu.
func NewApp(settings *SettingsManager, audio *AudioManager) *App {
	a := &App{
		settings: settings,
		audio:    audio,
		reporter: NewMatchReporter(),
		prevKeys: make(map[ebiten.Key]bool),
	}
	a.menu = NewMenuScene(a)
	a.game = NewGameScene(a)
	a.tutorial = NewTutorialScene(a)
	a.scene = a.menu
	return a
}

func (a *App) Scene() Scene               { return a.scene }
func (a *App) Menu() *MenuScene           { return a.menu }
func (a *App) Settings() *SettingsManager { return a.settings }

// SetScene switches the active scene. The new scene is initialized once,
// and only when the run loop is already going; before that the first
// Update pass takes care of it.
func (a *App) SetScene(s Scene) {
	a.scene = s
	if a.running && !s.Initialized() {
		s.Init()
	}
}

// Quit asks the shell to stop after the current tick.
func (a *App) Quit() {
	a.done = true
}

func (a *App) Update() error {
	if a.drawErr != nil {
		return a.drawErr
	}
	if a.done {
		return ebiten.Termination
	}
	if !a.running {
		a.running = true
		if !a.scene.Initialized() {
			a.scene.Init()
		}
	}
	a.scene.Update()
	a.handleEvents()
	a.handleInput()
	return nil
}

// handleEvents synthesizes edge-triggered events and forwards them through
// the scene's filter.
func (a *App) handleEvents() {
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !a.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		ev := Event{Kind: EventMouseDown, Button: MouseLeft, Pos: Vec2{float64(mx), float64(my)}}
		a.dispatchEvent(ev)
		a.scene.HandleMousePress(MouseLeft, ev.Pos)
	}
	a.prevMouseLeft = mouseLeft

	// Shell-level debug keys, edge-triggered.
	a.handleDebugKey(ebiten.KeyF1, a.copyDebugReport)
	a.handleDebugKey(ebiten.KeyF3, func() { a.showDebug = !a.showDebug })
}

func (a *App) dispatchEvent(ev Event) {
	if a.scene.Settings().AcceptsEvent(ev.Kind) {
		a.scene.HandleEvent(ev)
	}
}

// handleInput forwards every held logical key once per tick. Debounce and
// edge detection are the receiving scene's business.
func (a *App) handleInput() {
	for _, kb := range keyBindings {
		if ebiten.IsKeyPressed(kb.device) {
			a.scene.HandleKey(kb.logical)
		}
	}
}

func (a *App) handleDebugKey(k ebiten.Key, fn func()) {
	pressed := ebiten.IsKeyPressed(k)
	if pressed && !a.prevKeys[k] {
		fn()
	}
	a.prevKeys[k] = pressed
}

// copyDebugReport puts the active match's debug report on the clipboard.
func (a *App) copyDebugReport() {
	report := "no active match"
	if mp, ok := a.scene.(interface{ Match() *Match }); ok {
		report = matchDebugReport(mp.Match(), a.reporter)
	}
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("[App] clipboard write failed: %v", err)
		return
	}
	log.Printf("[App] debug report copied (%d bytes)", len(report))
}

func (a *App) Draw(screen *ebiten.Image) {
	frame, err := a.scene.Draw()
	if err != nil {
		a.drawErr = err
		return
	}
	a.frame = frame
	if a.frame != nil {
		screen.DrawImage(a.frame, nil)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return logicalWidth, logicalHeight
}

// WindowSize returns the default desktop window dimensions: the logical
// resolution at presentation scale.
func WindowSize() (int, int) {
	return logicalWidth * windowScale, logicalHeight * windowScale
}
