package game

const (
	projectileSpeed = 12.0 // horizontal, fixed; projectiles never curve
	projectileW     = 8.0
	projectileH     = 4.0

	stunDuration = 60 // ticks a struck paddle ignores its controls
	reloadPeriod = 45 // ticks between shots from one shooter
)

// Projectile is a horizontal stun shot. It belongs to the paddle that fired
// it and only ever hits the other one.
type Projectile struct {
	pos   Vec2
	vel   Vec2
	size  Vec2
	owner *Paddle
}

// newProjectile spawns a shot at the owner's hitbox centre, flying toward
// the given horizontal direction (-1 left, +1 right).
func newProjectile(owner *Paddle, dir float64) *Projectile {
	c := owner.HitBox().Center()
	return &Projectile{
		pos:   Vec2{c.X - projectileW/2, c.Y - projectileH/2},
		vel:   Vec2{projectileSpeed * dir, 0},
		size:  Vec2{projectileW, projectileH},
		owner: owner,
	}
}

func (pr *Projectile) Tick() {
	pr.pos = pr.pos.Add(pr.vel)
}

func (pr *Projectile) HitBox() Rect {
	return Rect{X: pr.pos.X, Y: pr.pos.Y, W: pr.size.X, H: pr.size.Y}
}

func (pr *Projectile) Pos() Vec2      { return pr.pos }
func (pr *Projectile) Owner() *Paddle { return pr.owner }
