package logger

import (
	"sort"
	"time"
)

// floodGuard rate-limits console forwarding of a single severity using a
// sliding time window, the same boundary/binary-search shape as catrate's
// filterEvents: events older than now-window are pruned, and a severity is
// suppressed once limit events remain within the window.
type floodGuard struct {
	window time.Duration
	limit int
	events []time.Time
}

func newFloodGuard(window time.Duration, limit int) *floodGuard {
	return &floodGuard{window: window, limit: limit}
}

// Allow reports whether a new event at now may be forwarded, recording it
// if so.
func (g *floodGuard) Allow(now time.Time) bool {
	boundary := now.Add(-g.window)

	first := sort.Search(len(g.events), func(i int) bool {
		return g.events[i].After(boundary)
	})
	g.events = g.events[first:]

	if len(g.events) >= g.limit {
		return false
	}
	g.events = append(g.events, now)
	return true
}

func (l *Logger) suppressedByFlood(severity Severity) bool {
	if l.flood == nil {
		return false
	}
	g, ok := l.flood[severity]
	if !ok {
		g = newFloodGuard(l.info.FloodWindow, l.info.FloodLimit)
		l.flood[severity] = g
	}
	return !g.Allow(time.Now())
}
