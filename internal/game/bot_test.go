package game

import "testing"

func TestFollowBall_ChasesBallCentre(t *testing.T) {
	pad := NewPaddle("bot", Vec2{botStartX, paddleStartY}, NewRect(0, 0, paddleW, paddleH), courtRect(), defaultControlDelay)

	// Ball centre below the paddle centre: move down.
	ball := testBall(Vec2{400, 200}, Vec2{})
	followBall(pad, ball)
	if pad.Vel().Y != paddleImpulse {
		t.Fatalf("expected down impulse, got vel %v", pad.Vel().Y)
	}

	up := NewPaddle("bot", Vec2{botStartX, paddleStartY}, NewRect(0, 0, paddleW, paddleH), courtRect(), defaultControlDelay)
	followBall(up, testBall(Vec2{400, 50}, Vec2{}))
	if up.Vel().Y != -paddleImpulse {
		t.Fatalf("expected up impulse, got vel %v", up.Vel().Y)
	}
}

func TestFollowBall_ExactTieIssuesNothing(t *testing.T) {
	pad := NewPaddle("bot", Vec2{botStartX, paddleStartY}, NewRect(0, 0, paddleW, paddleH), courtRect(), defaultControlDelay)
	// Paddle centre y = 153; a ball at y=148 has its centre there too.
	ball := testBall(Vec2{400, 148}, Vec2{})

	followBall(pad, ball)

	if pad.Vel().Y != 0 {
		t.Fatalf("tied centres must issue no command, got vel %v", pad.Vel().Y)
	}
}

func TestTutorialPolicy_InRangePlaysBall(t *testing.T) {
	m := NewMatch(1)
	tp := &TutorialPolicy{}

	// Ball centre 72px from the bot: inside shoot range, so the bot just
	// follows it like the basic opponent.
	m.ball.pos = Vec2{400, 200}
	tp.Act(m)

	if m.bot.Vel().Y != paddleImpulse {
		t.Fatalf("expected bot chasing ball down, got vel %v", m.bot.Vel().Y)
	}
	if len(m.Projectiles()) != 0 {
		t.Fatal("in-range bot must not shoot")
	}
}

func TestTutorialPolicy_InRangeStunnedDoesNothing(t *testing.T) {
	m := NewMatch(1)
	tp := &TutorialPolicy{}

	m.ball.pos = Vec2{400, 200}
	m.bot.Stun(10)
	tp.Act(m)

	if m.bot.Vel().Y != 0 {
		t.Fatalf("stunned in-range bot must idle, got vel %v", m.bot.Vel().Y)
	}
}

func TestTutorialPolicy_OutOfRangeShadowsAndShoots(t *testing.T) {
	m := NewMatch(1)
	tp := &TutorialPolicy{}

	// Ball parked on the player's side, player above the bot.
	m.ball.pos = Vec2{100, 128}
	m.player.pos.Y = 50
	tp.Act(m)

	if m.bot.Vel().Y != -paddleImpulse {
		t.Fatalf("expected bot shadowing player upward, got vel %v", m.bot.Vel().Y)
	}
	if len(m.Projectiles()) != 1 {
		t.Fatalf("expected one shot fired, got %d", len(m.Projectiles()))
	}
	pr := m.Projectiles()[0]
	if pr.Owner() != m.bot {
		t.Fatal("shot must belong to the bot")
	}
	// Bot shots fly left, toward the player.
	if pr.vel.X >= 0 {
		t.Fatalf("expected leftward shot, got vel.X %v", pr.vel.X)
	}
	if !tp.Reloading() {
		t.Fatal("firing must start the reload timer")
	}
}

func TestTutorialPolicy_ReloadBlocksNextShot(t *testing.T) {
	m := NewMatch(1)
	tp := &TutorialPolicy{}

	m.ball.pos = Vec2{100, 128}
	m.player.pos.Y = 50
	tp.Act(m)
	tp.Act(m)

	if len(m.Projectiles()) != 1 {
		t.Fatalf("reload must suppress the second shot, got %d shots", len(m.Projectiles()))
	}
}

func TestTutorialPolicy_AlignedOutOfRangeHoldsFire(t *testing.T) {
	m := NewMatch(1)
	tp := &TutorialPolicy{}

	// Bot and player share a centre line; neither movement branch runs, and
	// shooting only happens inside those branches.
	m.ball.pos = Vec2{100, 128}
	m.player.pos.Y = m.bot.pos.Y
	tp.Act(m)

	if m.bot.Vel().Y != 0 {
		t.Fatalf("aligned bot must hold position, got vel %v", m.bot.Vel().Y)
	}
	if len(m.Projectiles()) != 0 {
		t.Fatal("aligned bot must hold fire")
	}
}

func TestBotTuning_HardenSoftenRoundTrip(t *testing.T) {
	base := defaultBotTuning()

	hard := base.Harden()
	if hard != (BotTuning{Impulse: paddleImpulse / 2, ControlDelay: defaultControlDelay * 2}) {
		t.Fatalf("unexpected hardened tuning: %+v", hard)
	}
	if hard.Soften() != base {
		t.Fatalf("soften must undo harden, got %+v", hard.Soften())
	}
}

func TestEasyBotTuning_ShortDelay(t *testing.T) {
	easy := easyBotTuning()
	if easy.Impulse != paddleImpulse || easy.ControlDelay != 2 {
		t.Fatalf("unexpected easy tuning: %+v", easy)
	}
}
