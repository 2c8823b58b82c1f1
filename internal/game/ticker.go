package game

import "fmt"

const tickerCapacity = 64

// EventTicker is a bounded in-memory feed of match events, always on even
// when no SimLog is attached. The debug overlay renders its tail.
type EventTicker struct {
	entries []string
	dropped int
}

func NewEventTicker() *EventTicker {
	return &EventTicker{entries: make([]string, 0, tickerCapacity)}
}

func (et *EventTicker) Push(tick int, line string) {
	if len(et.entries) >= tickerCapacity {
		et.entries = et.entries[1:]
		et.dropped++
	}
	et.entries = append(et.entries, fmt.Sprintf("T=%03d %s", tick, line))
}

// Recent returns up to n newest entries, oldest first.
func (et *EventTicker) Recent(n int) []string {
	if n <= 0 || len(et.entries) == 0 {
		return nil
	}
	if n > len(et.entries) {
		n = len(et.entries)
	}
	out := make([]string, n)
	copy(out, et.entries[len(et.entries)-n:])
	return out
}

func (et *EventTicker) Len() int     { return len(et.entries) }
func (et *EventTicker) Dropped() int { return et.dropped }
