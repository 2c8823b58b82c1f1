package game

import "testing"

func TestNewProjectile_SpawnsAtOwnerCentre(t *testing.T) {
	pad := NewPaddle("bot", Vec2{100, 100}, NewRect(0, 0, paddleW, paddleH), courtRect(), defaultControlDelay)

	pr := newProjectile(pad, -1)

	// The shot's hitbox is centred on the paddle's hitbox centre (105,125).
	c := pr.HitBox().Center()
	if c != pad.HitBox().Center() {
		t.Fatalf("expected spawn centre %v, got %v", pad.HitBox().Center(), c)
	}
	if pr.HitBox().W != projectileW || pr.HitBox().H != projectileH {
		t.Fatalf("unexpected hitbox size: %+v", pr.HitBox())
	}
	if pr.Owner() != pad {
		t.Fatal("projectile must remember its owner")
	}
}

func TestProjectile_TickFliesHorizontal(t *testing.T) {
	pad := NewPaddle("player", Vec2{100, 100}, NewRect(0, 0, paddleW, paddleH), courtRect(), defaultControlDelay)
	pr := newProjectile(pad, 1)

	start := pr.Pos()
	pr.Tick()

	if pr.Pos().X != start.X+projectileSpeed {
		t.Fatalf("expected x advance of %v, got %v", projectileSpeed, pr.Pos().X-start.X)
	}
	// Shots never curve.
	if pr.Pos().Y != start.Y {
		t.Fatalf("expected y unchanged, got %v", pr.Pos().Y)
	}
}
