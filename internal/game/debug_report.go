package game

import (
	"fmt"
	"strings"
)

// matchDebugReport renders the clipboard debug dump: current match state,
// the recent event lines, a windowed behaviour summary and a staged
// timeline of the collected snapshot history.
func matchDebugReport(m *Match, reporter *MatchReporter) string {
	if m == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("--- Rally Sense debug report ---\n")
	outcome := DetermineMatchOutcome(m.Score().Player(), m.Score().Bot())
	fmt.Fprintf(&b, "tick=%d score=[%s] outcome=%s (%s)\n", m.Tick(), m.Score(), outcome.Outcome, outcome.Description)
	fmt.Fprintf(&b, "ball   pos=(%.1f,%.1f) vel=(%.1f,%.1f)\n",
		m.Ball().pos.X, m.Ball().pos.Y, m.Ball().vel.X, m.Ball().vel.Y)
	fmt.Fprintf(&b, "player y=%.1f vel_y=%.1f stun=%d\n",
		m.Player().pos.Y, m.Player().vel.Y, m.Player().StunTicks())
	fmt.Fprintf(&b, "bot    y=%.1f vel_y=%.1f stun=%d policy=%s impulse=%.1f delay=%d\n",
		m.Bot().pos.Y, m.Bot().vel.Y, m.Bot().StunTicks(),
		m.BotPolicy().Name(), m.BotTuning().Impulse, m.BotTuning().ControlDelay)
	st := m.Stats()
	fmt.Fprintf(&b, "stats  walls=%d paddles=%d respawns=%d shots=%d stuns=%d live=%d\n\n",
		st.WallBounces, st.PaddleBounces, st.Respawns,
		st.ShotsFired, st.StunsInflicted, len(m.Projectiles()))

	recent := m.Ticker().Recent(12)
	if len(recent) > 0 {
		b.WriteString("recent events:\n")
		for _, line := range recent {
			b.WriteString("  - ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if reporter == nil {
		return b.String()
	}
	snaps := reporter.History()
	if len(snaps) == 0 {
		b.WriteString("(no snapshots collected yet)\n")
		return b.String()
	}

	b.WriteString(reporter.WindowSummary().Format())
	b.WriteByte('\n')

	events := matchStoryEvents(snaps)
	if len(events) > 0 {
		b.WriteString("events:\n")
		for _, e := range events {
			b.WriteString("  - ")
			b.WriteString(e)
			b.WriteByte('\n')
		}
	}

	stages := buildMatchStages(snaps)
	b.WriteString("stages:\n")
	for i, stage := range stages {
		tag := ""
		if stage.scoreless {
			tag = " [NO-GOALS]"
		}
		fmt.Fprintf(&b,
			"  %02d) T=%d..%d (%d samples)%s score:%d-%d->%d-%d policy:%s impulse:%.1f delay:%d\n",
			i+1,
			stage.startTick,
			stage.endTick,
			stage.count,
			tag,
			stage.first.PlayerScore,
			stage.first.BotScore,
			stage.last.PlayerScore,
			stage.last.BotScore,
			stage.first.Policy,
			stage.first.Tuning.Impulse,
			stage.first.Tuning.ControlDelay,
		)
	}

	return b.String()
}

// matchStage is one run of snapshots sharing the same bot configuration and
// stun state, used to compress the history into a readable timeline.
type matchStage struct {
	startTick int
	endTick   int
	count     int
	first     MatchSnapshot
	last      MatchSnapshot
	scoreless bool
}

func buildMatchStages(snaps []MatchSnapshot) []matchStage {
	if len(snaps) == 0 {
		return nil
	}
	keyOf := func(s MatchSnapshot) string {
		return fmt.Sprintf("p=%s|imp=%.1f|d=%d|ps=%t|bs=%t",
			s.Policy,
			s.Tuning.Impulse,
			s.Tuning.ControlDelay,
			s.PlayerStun > 0,
			s.BotStun > 0,
		)
	}

	stages := make([]matchStage, 0, 16)
	start := 0
	curKey := keyOf(snaps[0])
	for i := 1; i < len(snaps); i++ {
		k := keyOf(snaps[i])
		if k == curKey {
			continue
		}
		stages = append(stages, makeMatchStage(snaps, start, i-1))
		start = i
		curKey = k
	}
	stages = append(stages, makeMatchStage(snaps, start, len(snaps)-1))
	return stages
}

func makeMatchStage(snaps []MatchSnapshot, start, end int) matchStage {
	first := snaps[start]
	last := snaps[end]
	return matchStage{
		startTick: first.Tick,
		endTick:   last.Tick,
		count:     end - start + 1,
		first:     first,
		last:      last,
		scoreless: last.PlayerScore == first.PlayerScore && last.BotScore == first.BotScore,
	}
}

func matchStoryEvents(snaps []MatchSnapshot) []string {
	if len(snaps) == 0 {
		return nil
	}
	var out []string
	prev := snaps[0]
	for i := 1; i < len(snaps); i++ {
		cur := snaps[i]
		if cur.PlayerScore != prev.PlayerScore {
			out = append(out, fmt.Sprintf("T=%d player score %d -> %d", cur.Tick, prev.PlayerScore, cur.PlayerScore))
		}
		if cur.BotScore != prev.BotScore {
			out = append(out, fmt.Sprintf("T=%d bot score %d -> %d", cur.Tick, prev.BotScore, cur.BotScore))
		}
		if cur.Policy != prev.Policy {
			out = append(out, fmt.Sprintf("T=%d policy %s -> %s", cur.Tick, prev.Policy, cur.Policy))
		}
		if cur.Tuning != prev.Tuning {
			out = append(out, fmt.Sprintf("T=%d tuning impulse=%.1f delay=%d -> impulse=%.1f delay=%d",
				cur.Tick,
				prev.Tuning.Impulse, prev.Tuning.ControlDelay,
				cur.Tuning.Impulse, cur.Tuning.ControlDelay,
			))
		}
		if (cur.PlayerStun > 0) != (prev.PlayerStun > 0) {
			out = append(out, stunEvent(cur.Tick, "player", cur.PlayerStun))
		}
		if (cur.BotStun > 0) != (prev.BotStun > 0) {
			out = append(out, stunEvent(cur.Tick, "bot", cur.BotStun))
		}
		prev = cur
	}
	if len(out) > 24 {
		out = append(out[:24], fmt.Sprintf("... (%d more events)", len(out)-24))
	}
	return out
}

func stunEvent(tick int, who string, stun int) string {
	if stun > 0 {
		return fmt.Sprintf("T=%d %s stunned (%d ticks left)", tick, who, stun)
	}
	return fmt.Sprintf("T=%d %s recovered", tick, who)
}
