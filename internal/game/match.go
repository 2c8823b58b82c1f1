package game

import (
	"fmt"
	"math/rand"
)

// MatchStats are cumulative counters over a match's lifetime, cheap enough
// to keep unconditionally.
type MatchStats struct {
	WallBounces    int
	PaddleBounces  int
	Respawns       int
	ShotsFired     int
	StunsInflicted int
}

// MatchSnapshot is a point-in-time view of the match for the reporter and
// the debug report.
type MatchSnapshot struct {
	Tick        int
	PlayerScore int
	BotScore    int
	BallPos     Vec2
	BallVel     Vec2
	PlayerY     float64
	BotY        float64
	PlayerStun  int
	BotStun     int
	Projectiles int
	Policy      string
	Tuning      BotTuning
	Stats       MatchStats
}

// Match is one running game: two paddles, a ball, the goal strips, the
// scoreboard and any live projectiles. It knows nothing about scenes,
// input devices or drawing.
type Match struct {
	court Rect
	outer Rect

	player *Paddle
	bot    *Paddle
	ball   *Ball
	goals  []*Goal
	score  *ScoreBoard

	projectiles []*Projectile

	botPolicy BotPolicy
	botTuning BotTuning

	rng  *rand.Rand
	tick int

	log    *SimLog // nil outside test harness runs
	ticker *EventTicker
	stats  MatchStats
}

// NewMatch builds a match with the standard court and paddle placement and
// spawns the first ball from the seeded generator.
func NewMatch(seed int64) *Match {
	court := courtRect()
	m := &Match{
		court:     court,
		outer:     outerRect(),
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
		botPolicy: FollowPolicy{},
		botTuning: defaultBotTuning(),
		ticker:    NewEventTicker(),
	}
	m.player = NewPaddle("player",
		Vec2{playerStartX, paddleStartY},
		NewRect(0, 0, paddleW, paddleH),
		court, defaultControlDelay)
	m.bot = NewPaddle("bot",
		Vec2{botStartX, paddleStartY},
		NewRect(0, 0, paddleW, paddleH),
		court, defaultControlDelay)
	m.score = NewScoreBoard(scoreCooldownPeriod)
	m.goals = []*Goal{
		NewGoal(leftGoalRect(), func() {
			if m.score.BotGoal() {
				m.logEvent("bot", "score", "bot_goal", m.score.String(), float64(m.score.Bot()))
			}
		}),
		NewGoal(rightGoalRect(), func() {
			if m.score.PlayerGoal() {
				m.logEvent("player", "score", "player_goal", m.score.String(), float64(m.score.Player()))
			}
		}),
	}
	m.respawnBall()
	return m
}

func (m *Match) Tick() int            { return m.tick }
func (m *Match) Player() *Paddle      { return m.player }
func (m *Match) Bot() *Paddle         { return m.bot }
func (m *Match) Ball() *Ball          { return m.ball }
func (m *Match) Score() *ScoreBoard   { return m.score }
func (m *Match) Stats() MatchStats    { return m.stats }
func (m *Match) Court() Rect          { return m.court }
func (m *Match) Outer() Rect          { return m.outer }
func (m *Match) Ticker() *EventTicker { return m.ticker }

func (m *Match) Projectiles() []*Projectile { return m.projectiles }

func (m *Match) BotPolicy() BotPolicy { return m.botPolicy }
func (m *Match) BotTuning() BotTuning { return m.botTuning }

// ControlPlayer feeds one command to the player paddle. Input arrives
// between ticks, so held keys simply call this once per tick.
func (m *Match) ControlPlayer(mode MoveCommand) {
	m.player.Control(mode)
}

// SetBotPolicy swaps the bot's brain as a whole object.
func (m *Match) SetBotPolicy(p BotPolicy) {
	if p == nil || (m.botPolicy != nil && m.botPolicy.Name() == p.Name()) {
		m.botPolicy = p
		return
	}
	m.botPolicy = p
	m.logEvent("bot", "policy", "policy_change", p.Name(), 0)
}

// SetBotTuning applies a full difficulty tuple to the bot paddle.
func (m *Match) SetBotTuning(t BotTuning) {
	m.botTuning = t
	m.bot.applyTuning(t)
	m.logEvent("bot", "tuning", "tuning_change",
		fmt.Sprintf("impulse=%.1f delay=%d", t.Impulse, t.ControlDelay), t.Impulse)
}

// SpawnProjectile fires a stun shot from the owner toward the other side.
func (m *Match) SpawnProjectile(owner *Paddle) {
	dir := 1.0
	if owner == m.bot {
		dir = -1.0
	}
	m.projectiles = append(m.projectiles, newProjectile(owner, dir))
	m.stats.ShotsFired++
	m.logEvent(owner.label, "shot", "shot_fired", fmt.Sprintf("dir=%+.0f", dir), dir)
}

// Step advances the whole match one tick.
func (m *Match) Step() {
	m.tick++

	// 1. PADDLES: integrate motion, decay velocity, run down timers.
	m.player.Tick()
	m.bot.Tick()

	// 2. BALL: integrate, wall bounce, clamp, cooldowns, paddle
	// deflection, goal overlap callbacks.
	ev := m.ball.Tick([]*Paddle{m.player, m.bot}, m.goals)
	if ev.wallBounces > 0 {
		m.stats.WallBounces += ev.wallBounces
		m.logEvent("ball", "bounce", "wall_bounce",
			fmt.Sprintf("n=%d vel=(%.1f,%.1f)", ev.wallBounces, m.ball.vel.X, m.ball.vel.Y),
			float64(ev.wallBounces))
	}
	if ev.paddleHit != nil {
		m.stats.PaddleBounces++
		m.logEvent("ball", "bounce", "paddle_bounce",
			fmt.Sprintf("off=%s vel=(%.1f,%.1f)", ev.paddleHit.label, m.ball.vel.X, m.ball.vel.Y),
			m.ball.vel.Len())
	}

	// 3. BOT: the active policy issues this tick's commands.
	if m.botPolicy != nil {
		m.botPolicy.Act(m)
	}

	// 4. SHOTS: advance projectiles, cull leavers, resolve stun hits.
	m.stepProjectiles()

	// 5. SCORE: run down the shared post-score cooldown.
	m.score.TickCooldown()

	// 6. RESPAWN: recreate the ball once its hitbox leaves the outer bound.
	if !m.outer.ContainsRect(m.ball.HitBox()) {
		m.respawnBall()
		m.stats.Respawns++
		m.logEvent("ball", "respawn", "ball_respawn",
			fmt.Sprintf("vel=(%.1f,%.1f)", m.ball.vel.X, m.ball.vel.Y), m.ball.vel.Len())
	}

	if m.log != nil {
		m.log.AddVerbose(m.tick, "ball", "verbose", "position",
			fmt.Sprintf("pos=(%.1f,%.1f) vel=(%.1f,%.1f)",
				m.ball.pos.X, m.ball.pos.Y, m.ball.vel.X, m.ball.vel.Y),
			m.ball.vel.Len())
	}
}

// stepProjectiles moves every live shot, removes the ones that left the
// outer bound and lands stuns. A projectile never hits its owner.
func (m *Match) stepProjectiles() {
	if len(m.projectiles) == 0 {
		return
	}
	kept := m.projectiles[:0]
	for _, pr := range m.projectiles {
		pr.Tick()
		if !m.outer.Intersects(pr.HitBox()) {
			m.logEvent(pr.owner.label, "shot", "shot_lost", "left outer bound", 0)
			continue
		}
		target := m.player
		if pr.owner == m.player {
			target = m.bot
		}
		if pr.HitBox().Intersects(target.HitBox()) {
			target.Stun(stunDuration)
			m.stats.StunsInflicted++
			m.logEvent(pr.owner.label, "shot", "stun_hit",
				fmt.Sprintf("target=%s ticks=%d", target.label, stunDuration), stunDuration)
			continue
		}
		kept = append(kept, pr)
	}
	m.projectiles = kept
}

// respawnBall replaces the ball with a fresh one at the arena centre. The
// velocity is two uniform draws in [-10, 10) normalized to full speed; a
// zero-length or zero-x draw falls back to a fixed (8, 9).
func (m *Match) respawnBall() {
	vec := Vec2{m.rng.Float64()*20 - 10, m.rng.Float64()*20 - 10}
	if l := vec.Len(); l != 0 && vec.X != 0 {
		vec = vec.Scale(ballSpeed / l)
	} else {
		vec = Vec2{8, 9}
	}
	m.ball = NewBall(Vec2{ballSpawnX, ballSpawnY}, vec,
		NewRect(0, 0, ballW, ballH), m.court, ballBouncePeriod)
}

// Snapshot captures the current state for reporting.
func (m *Match) Snapshot() MatchSnapshot {
	policy := "none"
	if m.botPolicy != nil {
		policy = m.botPolicy.Name()
	}
	return MatchSnapshot{
		Tick:        m.tick,
		PlayerScore: m.score.Player(),
		BotScore:    m.score.Bot(),
		BallPos:     m.ball.pos,
		BallVel:     m.ball.vel,
		PlayerY:     m.player.pos.Y,
		BotY:        m.bot.pos.Y,
		PlayerStun:  m.player.stun,
		BotStun:     m.bot.stun,
		Projectiles: len(m.projectiles),
		Policy:      policy,
		Tuning:      m.botTuning,
		Stats:       m.stats,
	}
}

// logEvent records a match event in the bounded ticker and, when a log is
// attached, in the SimLog.
func (m *Match) logEvent(actor, category, key, value string, numVal float64) {
	m.ticker.Push(m.tick, fmt.Sprintf("%s %s %s", actor, key, value))
	if m.log != nil {
		m.log.Add(m.tick, actor, category, key, value, numVal)
	}
}
