package game

const (
	paddleFriction = 0.9  // per-tick velocity decay
	paddleImpulse  = 10.0 // baseline vertical kick per accepted command

	defaultControlDelay = 10 // ticks a paddle is deaf after accepting a command
)

// MoveCommand is a single paddle input for one tick.
type MoveCommand int

const (
	MoveNone MoveCommand = iota
	MoveUp
	MoveDown
)

func (m MoveCommand) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveNone:
		return "none"
	default:
		return "unknown"
	}
}

// Paddle is one of the two vertical bats. Movement is impulse-based: an
// accepted command kicks the velocity once, friction bleeds it off, and a
// debounce timer rejects further commands until it expires.
type Paddle struct {
	label string // "player" or "bot", used in logs

	pos Vec2 // top-left of the hitbox when the offset is zero
	vel Vec2

	hitBoxOffset Vec2
	hitBoxSize   Vec2

	walls Rect // bounds the hitbox is clamped inside

	impulse      float64
	controlDelay int

	lastPress  int         // debounce countdown; commands are deaf while > 0
	moveBuffer MoveCommand // recorded during the deaf window, never replayed

	reflect Vec2 // mask applied to the ball's velocity on deflection

	stun int // ticks of ignored controls after a projectile hit
}

// NewPaddle builds a paddle. hitBox carries the offset in X/Y and the size
// in W/H; walls is the rectangle the hitbox is kept inside.
func NewPaddle(label string, pos Vec2, hitBox Rect, walls Rect, controlDelay int) *Paddle {
	return &Paddle{
		label:        label,
		pos:          pos,
		hitBoxOffset: Vec2{hitBox.X, hitBox.Y},
		hitBoxSize:   Vec2{hitBox.W, hitBox.H},
		walls:        walls,
		impulse:      paddleImpulse,
		controlDelay: controlDelay,
		reflect:      Vec2{-1, 1},
	}
}

func (p *Paddle) Label() string { return p.label }

func (p *Paddle) HitBox() Rect {
	return Rect{
		X: p.pos.X + p.hitBoxOffset.X,
		Y: p.pos.Y + p.hitBoxOffset.Y,
		W: p.hitBoxSize.X,
		H: p.hitBoxSize.Y,
	}
}

func (p *Paddle) Pos() Vec2 { return p.pos }
func (p *Paddle) Vel() Vec2 { return p.vel }

// Tick integrates one step: move, decay, clamp, run down timers.
func (p *Paddle) Tick() {
	p.pos = p.pos.Add(p.vel)
	p.vel = p.vel.Scale(paddleFriction)
	p.clampPos()
	if p.lastPress > 0 {
		p.lastPress--
	}
	if p.stun > 0 {
		p.stun--
	}
}

// Control feeds one movement command. While stunned the paddle ignores
// commands outright. While the debounce timer runs, the command is only
// recorded into moveBuffer; the buffer is cleared on the next accepted
// command without ever being replayed.
func (p *Paddle) Control(mode MoveCommand) {
	if p.stun > 0 {
		return
	}
	if p.lastPress > 0 {
		p.moveBuffer = mode
		return
	}
	switch mode {
	case MoveUp:
		p.vel.Y -= p.impulse
	case MoveDown:
		p.vel.Y += p.impulse
	default:
		return
	}
	p.lastPress += p.controlDelay
	p.moveBuffer = MoveNone
}

// BufferedMove exposes the last command swallowed by the debounce window.
func (p *Paddle) BufferedMove() MoveCommand { return p.moveBuffer }

// clampPos snaps the position one unit inside any violated wall edge. The
// checks read the hitbox but write the position directly; the two coincide
// because every paddle in the game uses a zero hitbox offset.
func (p *Paddle) clampPos() {
	hb := p.HitBox()
	if hb.X < p.walls.X {
		p.pos.X = p.walls.X + 1
	}
	if hb.Right() > p.walls.Right() {
		p.pos.X = p.walls.Right() - p.hitBoxSize.X - 1
	}
	if hb.Y < p.walls.Y {
		p.pos.Y = p.walls.Y + 1
	}
	if hb.Bottom() > p.walls.Bottom() {
		p.pos.Y = p.walls.Bottom() - p.hitBoxSize.Y - 1
	}
}

// Stun locks the paddle's controls for the given number of ticks.
func (p *Paddle) Stun(ticks int) {
	p.stun = ticks
}

func (p *Paddle) Stunned() bool { return p.stun > 0 }

// StunTicks reports the remaining lockout, for the HUD and reports.
func (p *Paddle) StunTicks() int { return p.stun }

// applyTuning swaps both control constants in one step so the paddle never
// runs a tick with a half-applied difficulty change.
func (p *Paddle) applyTuning(t BotTuning) {
	p.impulse = t.Impulse
	p.controlDelay = t.ControlDelay
}
