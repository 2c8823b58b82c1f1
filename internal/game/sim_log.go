package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless test simulation.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "player", "bot", "ball", or "--" for global events
	Category string  // score, bounce, shot, respawn, stage, tuning, policy
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] ball   bounce    paddle_bounce    off=player vel=(8.0,-6.0)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless test simulation.
// Unlike EventTicker (UI ring-buffer), SimLog is unbounded and
// machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick ball position
// entries are also recorded (useful for detailed debugging).
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for a specific actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// FirstOf returns the earliest entry matching category+key, or false if none.
func (sl *SimLog) FirstOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[0], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the match state.
// tm may be nil for plain duels without a tutorial attached.
func (sl *SimLog) Summary(m *Match, tm *TutorialMachine) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", m.Tick())
	fmt.Fprintf(&sb, "Score: %s\n", m.Score())
	fmt.Fprintf(&sb, "Ball: pos=(%.1f,%.1f) vel=(%.1f,%.1f)\n",
		m.Ball().Pos().X, m.Ball().Pos().Y, m.Ball().Vel().X, m.Ball().Vel().Y)
	for _, pad := range []*Paddle{m.Player(), m.Bot()} {
		stun := ""
		if pad.Stunned() {
			stun = fmt.Sprintf("  stunned=%d", pad.StunTicks())
		}
		fmt.Fprintf(&sb, "%s: y=%.1f%s\n", pad.Label(), pad.Pos().Y, stun)
	}
	t := m.BotTuning()
	policy := "none"
	if m.BotPolicy() != nil {
		policy = m.BotPolicy().Name()
	}
	fmt.Fprintf(&sb, "Bot: policy=%s impulse=%.1f delay=%d\n", policy, t.Impulse, t.ControlDelay)
	if n := len(m.Projectiles()); n > 0 {
		fmt.Fprintf(&sb, "Projectiles live: %d\n", n)
	}
	if tm != nil {
		fmt.Fprintf(&sb, "Stage: %s  paused=%v  completed=%v\n",
			tm.Stage(), tm.Paused(), tm.Completed())
	}
	return sb.String()
}
