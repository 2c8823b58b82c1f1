package game

// Goal is a static scoring strip. It owns no score itself; overlap fires a
// callback wired up by the match, and the scoreboard's shared cooldown is
// what keeps a lingering ball from scoring every tick.
type Goal struct {
	region    Rect
	onCollide func()
}

func NewGoal(region Rect, onCollide func()) *Goal {
	return &Goal{region: region, onCollide: onCollide}
}

func (g *Goal) Region() Rect { return g.region }

// Collide fires the callback when the hitbox overlaps the strip. Called
// every tick, overlapping or not; the decision is intentionally stateless.
func (g *Goal) Collide(hb Rect) {
	if g.region.Intersects(hb) {
		g.onCollide()
	}
}
