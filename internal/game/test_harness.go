package game

// TestSim is a headless match harness used exclusively by tests. It mirrors
// the scene update loop but has no Ebiten dependency and supports
// deterministic seeding and structured logging.
type TestSim struct {
	Match    *Match
	Tutorial *TutorialMachine // nil for plain duels
	SimLog   *SimLog
	Reporter *MatchReporter

	// Notices accumulates the banner keys the tutorial machine emitted.
	Notices []string

	seed         int64
	playerFollow bool
	autoAdvance  bool
	closed       bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, verbose — applied before the match exists
	simOptState                      // scores, ball, tuning, tutorial — applied to the built match
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTutorial attaches a fresh tutorial machine, starting at the intro.
func WithTutorial() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Tutorial = NewTutorialMachine()
	}}
}

// WithStage jumps the tutorial machine to the given stage, running the
// stage's entry effects. Requires WithTutorial earlier in the option list.
func WithStage(stage Stage) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		if ts.Tutorial == nil {
			return
		}
		ts.Tutorial.enterStage(stage, ts.Match)
	}}
}

// WithScores sets the scoreboard directly.
func WithScores(player, bot int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Match.score.playerScore = player
		ts.Match.score.botScore = bot
	}}
}

// WithBallState replaces the ball with one at the given position and velocity.
func WithBallState(pos, vel Vec2) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Match.ball = NewBall(pos, vel, NewRect(0, 0, ballW, ballH), ts.Match.court, ballBouncePeriod)
	}}
}

// WithBotTuning applies a difficulty tuple to the bot paddle.
func WithBotTuning(t BotTuning) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Match.SetBotTuning(t)
	}}
}

// WithShotsUnlocked flips the tutorial machine's shot unlock and installs
// the matching policy. Requires WithTutorial earlier in the option list.
func WithShotsUnlocked() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		if ts.Tutorial == nil {
			return
		}
		ts.Tutorial.shotsUnlocked = true
		ts.Tutorial.applyPolicy(ts.Match)
	}}
}

// WithPlayerFollow drives the player paddle with the same ball-chasing
// routine the bot uses, so rallies happen without scripted input.
func WithPlayerFollow() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.playerFollow = true
	}}
}

// WithAutoAdvance confirms every dialogue pause as soon as it is reached.
func WithAutoAdvance() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.autoAdvance = true
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (seed, verbose logging)
//  2. Build the match
//  3. Match and tutorial state, in the order the options were given
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		seed:     1,
		SimLog:   NewSimLog(false),
		Reporter: NewMatchReporter(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Match = NewMatch(ts.seed)
	ts.Match.log = ts.SimLog
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the match n ticks, logging events to SimLog.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the match up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.Match.Tick()
		}
	}
	return -1
}

// runOneTick mirrors the scene update loop for the headless harness. While
// the tutorial is paused the simulation stays frozen; with auto-advance the
// harness presses confirm once per call instead.
func (ts *TestSim) runOneTick() {
	if ts.closed {
		return
	}
	if ts.Tutorial != nil && ts.Tutorial.Paused() {
		if !ts.autoAdvance {
			return
		}
		if ts.Tutorial.Advance(ts.Match) {
			ts.closed = true
		}
		return
	}

	if ts.playerFollow {
		followBall(ts.Match.Player(), ts.Match.Ball())
	}

	ts.Match.Step()

	if ts.Tutorial != nil {
		ts.Tutorial.CheckStage(ts.Match)
		for {
			key, ok := ts.Tutorial.PopNotice()
			if !ok {
				break
			}
			ts.Notices = append(ts.Notices, key)
		}
	}

	if ts.Match.Tick()%reportSampleInterval == 0 {
		ts.Reporter.Collect(ts.Match.Snapshot())
	}
}

// CurrentTick returns the current match tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Match.Tick()
}

// Closed reports whether the tutorial ran through its closing line.
func (ts *TestSim) Closed() bool {
	return ts.closed
}

// Snapshot captures a lightweight state summary.
func (ts *TestSim) Snapshot() MatchSnapshot {
	return ts.Match.Snapshot()
}
