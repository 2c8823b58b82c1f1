package game

import (
	"fmt"
	"math"
	"strings"
)

const (
	// reportSampleInterval is how often the scenes hand the reporter a
	// snapshot (once a second at 30 TPS).
	reportSampleInterval = 30

	// reportWindowTicks is the sliding window for recent-behaviour reports
	// (~20s at 30 TPS).
	reportWindowTicks = 600
)

// --- Reporter ---

// MatchReporter collects periodic snapshots from a running match and can
// produce summaries over a sliding time window.
type MatchReporter struct {
	history     []MatchSnapshot
	windowTicks int
}

// NewMatchReporter creates a reporter with the default window size.
func NewMatchReporter() *MatchReporter {
	return &MatchReporter{windowTicks: reportWindowTicks}
}

// Collect stores one snapshot. Call this periodically (e.g. every
// reportSampleInterval ticks).
func (r *MatchReporter) Collect(snap MatchSnapshot) {
	r.history = append(r.history, snap)

	// Prune old history beyond 2x window to prevent unbounded growth.
	maxKeep := r.windowTicks / reportSampleInterval * 2
	if maxKeep < 100 {
		maxKeep = 100
	}
	if len(r.history) > maxKeep {
		r.history = r.history[len(r.history)-maxKeep:]
	}
}

// Latest returns the most recent snapshot, or nil if none collected yet.
func (r *MatchReporter) Latest() *MatchSnapshot {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// WindowSummary returns an aggregated summary over the recent time window.
// It averages ball speed and paddle positions across the window's samples
// and differences the cumulative counters across its endpoints.
func (r *MatchReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	// Find snapshots within the window.
	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []MatchSnapshot
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}
	if len(window) == 0 {
		return nil
	}

	// window is newest-first.
	first := window[len(window)-1]
	last := window[0]

	n := float64(len(window))
	wr := &WindowReport{
		FromTick:    first.Tick,
		ToTick:      last.Tick,
		SampleCount: len(window),
		PlayerScore: last.PlayerScore,
		BotScore:    last.BotScore,
		Policy:      last.Policy,
		Tuning:      last.Tuning,
	}

	for _, snap := range window {
		speed := snap.BallVel.Len()
		wr.AvgBallSpeed += speed
		wr.PeakBallSpeed = math.Max(wr.PeakBallSpeed, speed)
		wr.AvgPlayerY += snap.PlayerY
		wr.AvgBotY += snap.BotY
		wr.AvgProjectiles += float64(snap.Projectiles)
		if snap.PlayerStun > 0 {
			wr.PlayerStunSamples++
		}
		if snap.BotStun > 0 {
			wr.BotStunSamples++
		}
	}
	wr.AvgBallSpeed /= n
	wr.AvgPlayerY /= n
	wr.AvgBotY /= n
	wr.AvgProjectiles /= n

	// The match counters are cumulative; difference the endpoints.
	wr.PlayerGoals = last.PlayerScore - first.PlayerScore
	wr.BotGoals = last.BotScore - first.BotScore
	wr.WallBounces = last.Stats.WallBounces - first.Stats.WallBounces
	wr.PaddleBounces = last.Stats.PaddleBounces - first.Stats.PaddleBounces
	wr.Respawns = last.Stats.Respawns - first.Stats.Respawns
	wr.ShotsFired = last.Stats.ShotsFired - first.Stats.ShotsFired
	wr.Stuns = last.Stats.StunsInflicted - first.Stats.StunsInflicted

	return wr
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	// Scoreline at the window's end.
	PlayerScore, BotScore int

	// Deltas across the window.
	PlayerGoals, BotGoals int
	WallBounces           int
	PaddleBounces         int
	Respawns              int
	ShotsFired            int
	Stuns                 int

	// Averages over the window.
	AvgBallSpeed   float64
	PeakBallSpeed  float64
	AvgPlayerY     float64
	AvgBotY        float64
	AvgProjectiles float64

	// Samples that caught a paddle stunned.
	PlayerStunSamples, BotStunSamples int

	// Bot state at the window's end.
	Policy string
	Tuning BotTuning
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Match Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)

	sb.WriteString("\n--- Score ---\n")
	fmt.Fprintf(&sb, "  now:    player %d : %d bot (%s)\n",
		wr.PlayerScore, wr.BotScore, leadLabel(wr.PlayerScore, wr.BotScore))
	fmt.Fprintf(&sb, "  window: player +%d  bot +%d\n", wr.PlayerGoals, wr.BotGoals)

	sb.WriteString("\n--- Rallies ---\n")
	fmt.Fprintf(&sb, "  wall_bounces=%d  paddle_bounces=%d  respawns=%d\n",
		wr.WallBounces, wr.PaddleBounces, wr.Respawns)
	fmt.Fprintf(&sb, "  ball speed avg=%.1f peak=%.1f\n", wr.AvgBallSpeed, wr.PeakBallSpeed)

	sb.WriteString("\n--- Paddles ---\n")
	fmt.Fprintf(&sb, "  player: avg_y=%.1f  stunned_samples=%d\n", wr.AvgPlayerY, wr.PlayerStunSamples)
	fmt.Fprintf(&sb, "  bot:    avg_y=%.1f  stunned_samples=%d\n", wr.AvgBotY, wr.BotStunSamples)

	sb.WriteString("\n--- Bot ---\n")
	fmt.Fprintf(&sb, "  policy=%s  impulse=%.1f  delay=%d\n",
		wr.Policy, wr.Tuning.Impulse, wr.Tuning.ControlDelay)
	fmt.Fprintf(&sb, "  shots_fired=%d  stuns=%d  live_projectiles avg=%.1f\n",
		wr.ShotsFired, wr.Stuns, wr.AvgProjectiles)

	return sb.String()
}

func leadLabel(player, bot int) string {
	diff := player - bot
	switch {
	case diff >= 5:
		return "player runaway"
	case diff > 0:
		return "player ahead"
	case diff == 0:
		return "level"
	case diff > -5:
		return "bot ahead"
	default:
		return "bot runaway"
	}
}

// FormatLatest returns a concise view of the most recent snapshot.
func (r *MatchReporter) FormatLatest() string {
	snap := r.Latest()
	if snap == nil {
		return "No data.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Snapshot T=%d ---\n", snap.Tick)
	fmt.Fprintf(&sb, "Score:  player %d : %d bot (%s)\n",
		snap.PlayerScore, snap.BotScore, leadLabel(snap.PlayerScore, snap.BotScore))
	fmt.Fprintf(&sb, "Ball:   pos=(%.1f,%.1f) vel=(%.1f,%.1f) speed=%.1f\n",
		snap.BallPos.X, snap.BallPos.Y, snap.BallVel.X, snap.BallVel.Y, snap.BallVel.Len())
	fmt.Fprintf(&sb, "Player: y=%.1f stun=%d\n", snap.PlayerY, snap.PlayerStun)
	fmt.Fprintf(&sb, "Bot:    y=%.1f stun=%d policy=%s impulse=%.1f delay=%d\n",
		snap.BotY, snap.BotStun, snap.Policy, snap.Tuning.Impulse, snap.Tuning.ControlDelay)
	fmt.Fprintf(&sb, "Totals: walls=%d paddles=%d respawns=%d shots=%d stuns=%d live=%d\n",
		snap.Stats.WallBounces, snap.Stats.PaddleBounces, snap.Stats.Respawns,
		snap.Stats.ShotsFired, snap.Stats.StunsInflicted, snap.Projectiles)
	return sb.String()
}

// History returns all collected snapshots.
func (r *MatchReporter) History() []MatchSnapshot {
	return r.history
}

// ScorePace computes goals per 1000 ticks for each side across the span of
// the given snapshots.
func ScorePace(history []MatchSnapshot) (player, bot float64) {
	if len(history) < 2 {
		return 0, 0
	}
	first, last := history[0], history[len(history)-1]
	span := float64(last.Tick - first.Tick)
	if span <= 0 {
		return 0, 0
	}
	player = float64(last.PlayerScore-first.PlayerScore) / span * 1000
	bot = float64(last.BotScore-first.BotScore) / span * 1000
	return player, bot
}
