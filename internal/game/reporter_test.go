package game

import (
	"math"
	"strings"
	"testing"
)

func reportSnap(tick, playerScore, botScore int, stats MatchStats) MatchSnapshot {
	return MatchSnapshot{
		Tick:        tick,
		PlayerScore: playerScore,
		BotScore:    botScore,
		BallVel:     Vec2{6, 8},
		PlayerY:     100,
		BotY:        140,
		Policy:      "follow",
		Tuning:      defaultBotTuning(),
		Stats:       stats,
	}
}

func TestMatchReporter_LatestAndEmpty(t *testing.T) {
	r := NewMatchReporter()

	if r.Latest() != nil {
		t.Fatal("empty reporter must have no latest snapshot")
	}
	if r.WindowSummary() != nil {
		t.Fatal("empty reporter must have no window summary")
	}
	if !strings.Contains(r.FormatLatest(), "No data") {
		t.Fatalf("unexpected empty format: %q", r.FormatLatest())
	}

	r.Collect(reportSnap(30, 0, 0, MatchStats{}))
	if r.Latest() == nil || r.Latest().Tick != 30 {
		t.Fatal("latest snapshot not tracked")
	}
}

func TestMatchReporter_PruneKeepsRecent(t *testing.T) {
	r := NewMatchReporter()
	for i := 0; i < 300; i++ {
		r.Collect(reportSnap(i*reportSampleInterval, 0, 0, MatchStats{}))
	}

	// 2x the window's worth of samples, floored at 100.
	maxKeep := reportWindowTicks / reportSampleInterval * 2
	if maxKeep < 100 {
		maxKeep = 100
	}
	if len(r.History()) != maxKeep {
		t.Fatalf("expected history pruned to %d, got %d", maxKeep, len(r.History()))
	}
	// The survivors are the newest.
	if r.History()[len(r.History())-1].Tick != 299*reportSampleInterval {
		t.Fatal("prune dropped the newest snapshot")
	}
}

func TestWindowSummary_DeltasAndAverages(t *testing.T) {
	r := NewMatchReporter()
	r.Collect(reportSnap(0, 0, 0, MatchStats{WallBounces: 2, PaddleBounces: 1}))
	r.Collect(reportSnap(300, 1, 0, MatchStats{WallBounces: 5, PaddleBounces: 3, ShotsFired: 2}))
	r.Collect(reportSnap(600, 2, 1, MatchStats{WallBounces: 9, PaddleBounces: 4, ShotsFired: 2, StunsInflicted: 1}))

	wr := r.WindowSummary()
	if wr == nil {
		t.Fatal("expected a summary")
	}
	if wr.FromTick != 0 || wr.ToTick != 600 || wr.SampleCount != 3 {
		t.Fatalf("window bounds wrong: %+v", wr)
	}
	if wr.PlayerGoals != 2 || wr.BotGoals != 1 {
		t.Fatalf("goal deltas wrong: +%d/+%d", wr.PlayerGoals, wr.BotGoals)
	}
	if wr.WallBounces != 7 || wr.PaddleBounces != 3 || wr.ShotsFired != 2 || wr.Stuns != 1 {
		t.Fatalf("counter deltas wrong: %+v", wr)
	}
	// All samples share the same (6,8) velocity: avg and peak are speed 10.
	if math.Abs(wr.AvgBallSpeed-10) > 1e-9 || math.Abs(wr.PeakBallSpeed-10) > 1e-9 {
		t.Fatalf("speed aggregation wrong: avg=%v peak=%v", wr.AvgBallSpeed, wr.PeakBallSpeed)
	}
	if wr.AvgPlayerY != 100 || wr.AvgBotY != 140 {
		t.Fatalf("paddle averages wrong: %v/%v", wr.AvgPlayerY, wr.AvgBotY)
	}
}

func TestWindowSummary_DropsSnapshotsOutsideWindow(t *testing.T) {
	r := NewMatchReporter()
	// Two stale snapshots, then a fresh cluster inside one window span.
	r.Collect(reportSnap(0, 5, 5, MatchStats{}))
	r.Collect(reportSnap(100, 6, 5, MatchStats{}))
	r.Collect(reportSnap(2000, 8, 6, MatchStats{}))
	r.Collect(reportSnap(2300, 9, 6, MatchStats{}))

	wr := r.WindowSummary()
	if wr.FromTick != 2000 || wr.SampleCount != 2 {
		t.Fatalf("stale snapshots leaked into the window: %+v", wr)
	}
	if wr.PlayerGoals != 1 || wr.BotGoals != 0 {
		t.Fatalf("deltas must span the window only: +%d/+%d", wr.PlayerGoals, wr.BotGoals)
	}
}

func TestWindowReport_FormatSections(t *testing.T) {
	r := NewMatchReporter()
	r.Collect(reportSnap(0, 0, 0, MatchStats{}))
	r.Collect(reportSnap(300, 3, 1, MatchStats{WallBounces: 4}))

	out := r.WindowSummary().Format()
	for _, want := range []string{"=== Match Report", "--- Score ---", "--- Rallies ---", "--- Paddles ---", "--- Bot ---", "player 3 : 1 bot"} {
		if !strings.Contains(out, want) {
			t.Errorf("format missing %q:\n%s", want, out)
		}
	}

	var nilReport *WindowReport
	if !strings.Contains(nilReport.Format(), "No data") {
		t.Fatal("nil report must format to a no-data line")
	}
}

func TestLeadLabel(t *testing.T) {
	cases := []struct {
		player, bot int
		want        string
	}{
		{8, 1, "player runaway"},
		{3, 1, "player ahead"},
		{2, 2, "level"},
		{1, 3, "bot ahead"},
		{0, 6, "bot runaway"},
	}
	for _, c := range cases {
		if got := leadLabel(c.player, c.bot); got != c.want {
			t.Errorf("leadLabel(%d,%d) = %q, want %q", c.player, c.bot, got, c.want)
		}
	}
}

func TestScorePace(t *testing.T) {
	if p, b := ScorePace(nil); p != 0 || b != 0 {
		t.Fatal("no history must pace at zero")
	}

	history := []MatchSnapshot{
		{Tick: 0, PlayerScore: 0, BotScore: 0},
		{Tick: 500, PlayerScore: 2, BotScore: 1},
		{Tick: 1000, PlayerScore: 4, BotScore: 1},
	}
	p, b := ScorePace(history)
	if p != 4 || b != 1 {
		t.Fatalf("expected pace 4/1 per 1000t, got %v/%v", p, b)
	}

	same := []MatchSnapshot{{Tick: 50}, {Tick: 50}}
	if p, b := ScorePace(same); p != 0 || b != 0 {
		t.Fatal("zero span must pace at zero")
	}
}
