package game

import "math"

const (
	ballSpeed        = 10.0 // speed after every paddle deflection
	ballBouncePeriod = 10   // cooldown ticks between wall or paddle bounces

	// ballFriction is declared alongside paddleFriction but Tick never
	// applies it: the ball keeps full speed between bounces.
	ballFriction = 0.99
)

// Reflection masks for the two wall axes.
var (
	horizontalMask = Vec2{-1, 1}
	verticalMask   = Vec2{1, -1}
)

// Ball is the puck. Wall and paddle bounces each run on their own cooldown
// so a single crossing cannot re-trigger on consecutive ticks.
type Ball struct {
	pos Vec2
	vel Vec2

	hitBoxOffset Vec2
	hitBoxSize   Vec2

	walls Rect // the court the ball bounces inside

	bounceInterval int // cooldown charge added per wall bounce
	bounceElapse   int // remaining wall-bounce cooldown

	padBounceInterval int
	padBounceElapse   int
}

// ballEvents reports what a single tick did, for logging and sound.
type ballEvents struct {
	wallBounces int
	paddleHit   *Paddle
}

func NewBall(pos, vel Vec2, hitBox Rect, walls Rect, bounceInterval int) *Ball {
	return &Ball{
		pos:               pos,
		vel:               vel,
		hitBoxOffset:      Vec2{hitBox.X, hitBox.Y},
		hitBoxSize:        Vec2{hitBox.W, hitBox.H},
		walls:             walls,
		bounceInterval:    bounceInterval,
		padBounceInterval: bounceInterval,
	}
}

func (b *Ball) HitBox() Rect {
	return Rect{
		X: b.pos.X + b.hitBoxOffset.X,
		Y: b.pos.Y + b.hitBoxOffset.Y,
		W: b.hitBoxSize.X,
		H: b.hitBoxSize.Y,
	}
}

func (b *Ball) Pos() Vec2 { return b.pos }
func (b *Ball) Vel() Vec2 { return b.vel }

// Tick advances the ball one step: integrate, wall bounce, clamp, run down
// both cooldowns, deflect off the first overlapping paddle, then let every
// goal strip test for overlap.
func (b *Ball) Tick(pads []*Paddle, goals []*Goal) ballEvents {
	var ev ballEvents
	b.pos = b.pos.Add(b.vel)
	ev.wallBounces = b.bounce()
	b.clampPos()
	if b.bounceElapse > 0 {
		b.bounceElapse--
	}
	if b.padBounceElapse > 0 {
		b.padBounceElapse--
	}
	for _, pad := range pads {
		if b.HitBox().Intersects(pad.HitBox()) && b.padBounceElapse == 0 {
			b.deflect(pad)
			ev.paddleHit = pad
		}
	}
	for _, g := range goals {
		g.Collide(b.HitBox())
	}
	return ev
}

// bounce flips the velocity off any court edge the hitbox has crossed. The
// whole phase is skipped while the cooldown runs. The four edge checks are
// not exclusive: a corner crossing flips both axes and charges the cooldown
// twice. Each firing edge also advances the position by the new velocity so
// the ball starts moving back inside immediately.
func (b *Ball) bounce() int {
	if b.bounceElapse > 0 {
		return 0
	}
	n := 0
	if b.HitBox().X < b.walls.X {
		b.vel = b.vel.Mul(horizontalMask)
		b.pos = b.pos.Add(b.vel)
		b.bounceElapse += b.bounceInterval
		n++
	}
	if b.HitBox().Right() > b.walls.Right() {
		b.vel = b.vel.Mul(horizontalMask)
		b.pos = b.pos.Add(b.vel)
		b.bounceElapse += b.bounceInterval
		n++
	}
	if b.HitBox().Y < b.walls.Y {
		b.vel = b.vel.Mul(verticalMask)
		b.pos = b.pos.Add(b.vel)
		b.bounceElapse += b.bounceInterval
		n++
	}
	if b.HitBox().Bottom() > b.walls.Bottom() {
		b.vel = b.vel.Mul(verticalMask)
		b.pos = b.pos.Add(b.vel)
		b.bounceElapse += b.bounceInterval
		n++
	}
	return n
}

// clampPos pulls an escaped ball back toward the court. The per-edge
// offsets are deliberately asymmetric: the left edge re-seats the ball well
// inside the court, while the right and bottom edges park it just outside
// so the goal strips and the respawn check can still see it.
func (b *Ball) clampPos() {
	hb := b.HitBox()
	if hb.X < b.walls.X {
		b.pos.X = b.walls.X + 21
	}
	if hb.Right() > b.walls.Right() {
		b.pos.X = b.walls.Right() + b.hitBoxSize.X
	}
	if hb.Y < b.walls.Y {
		b.pos.Y = b.walls.Y + b.vel.Y
	}
	if hb.Bottom() > b.walls.Bottom() {
		b.pos.Y = b.walls.Bottom() + b.hitBoxSize.Y
	}
}

// deflect reflects the ball off a paddle. The sign of each component comes
// from the incoming velocity masked by the paddle's reflect vector; the
// magnitude comes from the centre-to-centre direction scaled to full speed.
// Two degenerate cases are handled: coincident centres fall back to a fixed
// (8, 6) direction, and an exactly-zero x component is raised to 1 so the
// ball never leaves a paddle moving purely vertically.
func (b *Ball) deflect(pad *Paddle) {
	sign := b.vel.Mul(pad.reflect)
	diff := b.HitBox().Center().Sub(pad.HitBox().Center())
	var dir Vec2
	if l := diff.Len(); l != 0 {
		dir = diff.Scale(ballSpeed / l)
	} else {
		dir = Vec2{8, 6}
	}
	if dir.X == 0 {
		dir.X = 1
	}
	b.vel = Vec2{
		X: math.Copysign(dir.X, sign.X),
		Y: math.Copysign(dir.Y, sign.Y),
	}
	b.padBounceElapse += b.padBounceInterval
}
