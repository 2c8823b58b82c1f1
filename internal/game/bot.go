package game

import "math"

// shootRangeX is the horizontal distance inside which the drill bot stops
// harassing the player and plays the ball instead.
const shootRangeX = 160.0

// BotTuning bundles the bot paddle's two control constants. Difficulty
// changes always swap a whole BotTuning so the paddle never runs a tick
// with one constant updated and the other not.
type BotTuning struct {
	Impulse      float64
	ControlDelay int
}

func defaultBotTuning() BotTuning {
	return BotTuning{Impulse: paddleImpulse, ControlDelay: defaultControlDelay}
}

// easyBotTuning is what the tutorial applies on its "easy" branch. The
// shortened delay actually makes the bot quicker; the label is kept as
// authored.
func easyBotTuning() BotTuning {
	return BotTuning{Impulse: paddleImpulse, ControlDelay: 2}
}

// Harden is the tutorial's "getting harder" announcement made numeric:
// half the impulse, double the delay. The name follows the announcement,
// the numbers weaken the bot.
func (t BotTuning) Harden() BotTuning {
	return BotTuning{Impulse: t.Impulse / 2, ControlDelay: t.ControlDelay * 2}
}

// Soften mirrors Harden exactly; applied after it, the baseline comes back.
func (t BotTuning) Soften() BotTuning {
	return BotTuning{Impulse: t.Impulse * 2, ControlDelay: t.ControlDelay / 2}
}

// BotPolicy decides the bot paddle's commands. The active policy is swapped
// as a whole object; policies keep their own state across ticks.
type BotPolicy interface {
	Act(m *Match)
	Name() string
}

// FollowPolicy is the basic opponent: chase the ball's centre, nothing
// else. Both comparisons run every tick; an exact tie issues no command.
type FollowPolicy struct{}

func (FollowPolicy) Name() string { return "follow" }

func (FollowPolicy) Act(m *Match) {
	followBall(m.bot, m.ball)
}

func followBall(pad *Paddle, ball *Ball) {
	pc := pad.HitBox().Center().Y
	bc := ball.HitBox().Center().Y
	if pc > bc {
		pad.Control(MoveUp)
	}
	if pc < bc {
		pad.Control(MoveDown)
	}
}

// TutorialPolicy is the offense/defense drill opponent. With the ball in
// horizontal range it plays the ball like FollowPolicy (unless stunned);
// out of range it shadows the player's paddle and fires a stun shot on
// every unaligned tick the reload timer allows.
type TutorialPolicy struct {
	reload int
}

func (*TutorialPolicy) Name() string { return "tutorial" }

func (tp *TutorialPolicy) Act(m *Match) {
	if tp.reload > 0 {
		tp.reload--
	}
	bot := m.bot
	dx := bot.HitBox().Center().X - m.ball.HitBox().Center().X
	if math.Abs(dx) <= shootRangeX {
		if bot.Stunned() {
			return
		}
		followBall(bot, m.ball)
		return
	}
	pc := m.player.HitBox().Center().Y
	bc := bot.HitBox().Center().Y
	if bc > pc {
		bot.Control(MoveUp)
		tp.tryShoot(m)
	}
	if bc < pc {
		bot.Control(MoveDown)
		tp.tryShoot(m)
	}
}

func (tp *TutorialPolicy) tryShoot(m *Match) {
	if tp.reload > 0 {
		return
	}
	m.SpawnProjectile(m.bot)
	tp.reload = reloadPeriod
}

// Reloading reports whether the drill bot is waiting on its reload timer.
func (tp *TutorialPolicy) Reloading() bool { return tp.reload > 0 }
