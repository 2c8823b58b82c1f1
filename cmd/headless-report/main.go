package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Rally-Sense/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstGoalTick    int
	firstWallTick    int
	firstPaddleTick  int
	firstRespawnTick int
	firstShotTick    int
	firstStunTick    int

	playerGoals   int
	botGoals      int
	wallBounces   int
	paddleBounces int
	respawns      int
	shotsFired    int
	stunHits      int
	shotsLost     int

	stageChanges  int
	tuningChanges int
	finalStage    string
	completed     bool
	closed        bool

	outcome       game.MatchOutcomeReason
	windowSummary *game.WindowReport
	pacePlayer    float64
	paceBot       float64
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless match runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "duel", "scenario name")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "duel" && scenario != "tutorial-drill" {
		fmt.Printf("error: unsupported scenario %q (supported: duel, tutorial-drill)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Rally Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		var stats runStats
		if scenario == "duel" {
			stats = runScenarioDuel(i+1, seed, ticks)
		} else {
			stats = runScenarioTutorialDrill(i+1, seed, ticks)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runScenarioDuel plays a plain match with both paddles chasing the ball.
func runScenarioDuel(runIndex int, seed int64, ticks int) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithPlayerFollow(),
	)
	ts.RunTicks(ticks)
	return collectRunStats(runIndex, seed, ts)
}

// runScenarioTutorialDrill runs the tutorial with every dialogue confirmed
// as soon as it appears; live stages play out against the following player.
func runScenarioTutorialDrill(runIndex int, seed int64, ticks int) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithTutorial(),
		game.WithAutoAdvance(),
		game.WithPlayerFollow(),
	)
	ts.RunTicks(ticks)

	rs := collectRunStats(runIndex, seed, ts)
	rs.finalStage = ts.Tutorial.Stage().String()
	rs.completed = ts.Tutorial.Completed()
	rs.closed = ts.Closed()
	return rs
}

func collectRunStats(runIndex int, seed int64, ts *game.TestSim) runStats {
	entries := ts.SimLog.Entries()
	snap := ts.Snapshot()
	pacePlayer, paceBot := game.ScorePace(ts.Reporter.History())

	return runStats{
		runIndex: runIndex,
		seed:     seed,

		firstGoalTick:    firstTick(entries, "score", "", ""),
		firstWallTick:    firstTick(entries, "bounce", "wall_bounce", ""),
		firstPaddleTick:  firstTick(entries, "bounce", "paddle_bounce", ""),
		firstRespawnTick: firstTick(entries, "respawn", "ball_respawn", ""),
		firstShotTick:    firstTick(entries, "shot", "shot_fired", ""),
		firstStunTick:    firstTick(entries, "shot", "stun_hit", ""),

		playerGoals:   snap.PlayerScore,
		botGoals:      snap.BotScore,
		wallBounces:   snap.Stats.WallBounces,
		paddleBounces: snap.Stats.PaddleBounces,
		respawns:      snap.Stats.Respawns,
		shotsFired:    snap.Stats.ShotsFired,
		stunHits:      snap.Stats.StunsInflicted,
		shotsLost:     ts.SimLog.CountCategory("shot", "shot_lost"),

		stageChanges:  ts.SimLog.CountCategory("stage", "stage_change"),
		tuningChanges: ts.SimLog.CountCategory("tuning", "tuning_change"),

		outcome:       game.DetermineMatchOutcome(snap.PlayerScore, snap.BotScore),
		windowSummary: ts.Reporter.WindowSummary(),
		pacePlayer:    pacePlayer,
		paceBot:       paceBot,
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// detectStalemate reports whether a run ended goalless, with a reason
// distinguishing sustained rallies from a dead match.
func detectStalemate(rs runStats) (bool, string) {
	if rs.playerGoals != 0 || rs.botGoals != 0 {
		return false, "goals_scored"
	}
	if rs.paddleBounces >= 10 {
		return true, "goalless_sustained_rallies"
	}
	return true, "goalless_low_activity"
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("score: player %d : %d bot  outcome=%s (%s)\n",
		rs.playerGoals, rs.botGoals, rs.outcome.Outcome, rs.outcome.Description)
	fmt.Printf("phase_markers: first_goal=%d first_wall=%d first_paddle=%d first_respawn=%d first_shot=%d first_stun=%d\n",
		rs.firstGoalTick, rs.firstWallTick, rs.firstPaddleTick, rs.firstRespawnTick, rs.firstShotTick, rs.firstStunTick)
	fmt.Printf("event_totals: wall_bounce=%d paddle_bounce=%d respawn=%d shot_fired=%d stun_hit=%d shot_lost=%d\n",
		rs.wallBounces, rs.paddleBounces, rs.respawns, rs.shotsFired, rs.stunHits, rs.shotsLost)
	fmt.Printf("score_pace_per_1000t: player=%.2f bot=%.2f\n", rs.pacePlayer, rs.paceBot)
	if rs.finalStage != "" {
		fmt.Printf("tutorial: final_stage=%s stage_changes=%d tuning_changes=%d completed=%t closed=%t\n",
			rs.finalStage, rs.stageChanges, rs.tuningChanges, rs.completed, rs.closed)
	}
	if stale, reason := detectStalemate(rs); stale {
		fmt.Printf("stalemate: %s\n", reason)
	}
	if rs.windowSummary != nil {
		fmt.Printf("window_samples=%d window_tick_range=%d..%d avg_ball_speed=%.1f peak_ball_speed=%.1f\n",
			rs.windowSummary.SampleCount, rs.windowSummary.FromTick, rs.windowSummary.ToTick,
			rs.windowSummary.AvgBallSpeed, rs.windowSummary.PeakBallSpeed)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalPlayerGoals := 0
	totalBotGoals := 0
	totalWall := 0
	totalPaddle := 0
	totalRespawn := 0
	totalShots := 0
	totalStuns := 0
	totalShotsLost := 0
	stalemates := 0

	goalTicks := make([]int, 0, len(all))
	paddleTicks := make([]int, 0, len(all))
	shotTicks := make([]int, 0, len(all))
	stunTicks := make([]int, 0, len(all))
	outcomes := map[string]int{}

	for _, rs := range all {
		totalPlayerGoals += rs.playerGoals
		totalBotGoals += rs.botGoals
		totalWall += rs.wallBounces
		totalPaddle += rs.paddleBounces
		totalRespawn += rs.respawns
		totalShots += rs.shotsFired
		totalStuns += rs.stunHits
		totalShotsLost += rs.shotsLost
		if stale, _ := detectStalemate(rs); stale {
			stalemates++
		}
		if rs.firstGoalTick >= 0 {
			goalTicks = append(goalTicks, rs.firstGoalTick)
		}
		if rs.firstPaddleTick >= 0 {
			paddleTicks = append(paddleTicks, rs.firstPaddleTick)
		}
		if rs.firstShotTick >= 0 {
			shotTicks = append(shotTicks, rs.firstShotTick)
		}
		if rs.firstStunTick >= 0 {
			stunTicks = append(stunTicks, rs.firstStunTick)
		}
		outcomes[rs.outcome.Outcome.String()]++
	}

	fmt.Println("=== Aggregate Rally Report ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_goals_per_run: player=%.1f bot=%.1f\n",
		avg(totalPlayerGoals, len(all)), avg(totalBotGoals, len(all)))
	fmt.Printf("avg_events_per_run: wall_bounce=%.1f paddle_bounce=%.1f respawn=%.1f shot_fired=%.1f stun_hit=%.1f shot_lost=%.1f\n",
		avg(totalWall, len(all)), avg(totalPaddle, len(all)), avg(totalRespawn, len(all)),
		avg(totalShots, len(all)), avg(totalStuns, len(all)), avg(totalShotsLost, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_goal=%s first_paddle=%s first_shot=%s first_stun=%s\n",
		avgTickString(goalTicks), avgTickString(paddleTicks), avgTickString(shotTicks), avgTickString(stunTicks))
	fmt.Printf("outcomes: %s\n", joinCounts(outcomes))
	fmt.Printf("stalemate_runs=%d\n", stalemates)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, ",")
}
