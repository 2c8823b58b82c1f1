package game

import "github.com/hajimehoshi/ebiten/v2"

// Key is the logical key set the shell polls once per tick. Scenes never
// see raw device keys.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyConfirm
	KeyBack
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	case KeyBack:
		return "back"
	default:
		return "unknown"
	}
}

// MouseButton mirrors the shell's pointer buttons.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// EventKind tags the raw events the shell synthesizes.
type EventKind int

const (
	EventMouseDown EventKind = iota
	EventKeyDown
)

// Event is a raw edge-triggered input event. Scenes opt into kinds via
// their settings filter; held-key input flows through HandleKey instead.
type Event struct {
	Kind   EventKind
	Button MouseButton
	Key    Key
	Pos    Vec2
}

// SceneSettings is the static configuration a scene hands the shell.
type SceneSettings struct {
	Name        string
	EventFilter []EventKind // nil accepts every kind
}

// AcceptsEvent applies the filter.
func (ss SceneSettings) AcceptsEvent(kind EventKind) bool {
	if ss.EventFilter == nil {
		return true
	}
	for _, k := range ss.EventFilter {
		if k == kind {
			return true
		}
	}
	return false
}

// Scene is one screen of the game. Init runs exactly once, the first time
// the scene becomes active while the shell is running; re-entry reuses
// whatever Init built.
type Scene interface {
	Settings() SceneSettings
	Init()
	Initialized() bool
	Update()
	Draw() (*ebiten.Image, error)
	HandleKey(k Key)
	HandleMousePress(b MouseButton, pos Vec2)
	HandleEvent(ev Event)
}
