// Package carousel drives the hero slideshow: a recurring timer that asks
// the page to advance its image cursor every Interval.
//
// The timer is a chain of tea.Tick commands. Every tick carries the
// rotator's ID and a generation tag; only a tick matching both, delivered
// while the rotator is live, advances the slideshow and schedules the next
// one. Stop bumps the generation, so a tick already in flight when the page
// is torn down arrives stale and does nothing.
package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the time each image stays on screen.
const DefaultInterval = 5 * time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered to the program each time the rotator's timer fires.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Rotator is the slideshow timer. The zero value is unusable; use New.
type Rotator struct {
	interval time.Duration
	id       int
	tag      int
	live     bool
}

// New returns a stopped rotator. A non-positive interval falls back to
// DefaultInterval.
func New(interval time.Duration) Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Rotator{interval: interval, id: nextID()}
}

// ID identifies this rotator's ticks.
func (r Rotator) ID() int { return r.id }

// Interval returns the time between ticks.
func (r Rotator) Interval() time.Duration { return r.interval }

// Running reports whether the rotator is live.
func (r Rotator) Running() bool { return r.live }

// Start marks the rotator live and schedules the first tick. Starting a
// running rotator restarts its chain; the previous chain goes stale.
func (r Rotator) Start() (Rotator, tea.Cmd) {
	r.live = true
	r.tag++
	return r, r.tick()
}

// Stop releases the timer. Any tick still in flight becomes a no-op.
func (r Rotator) Stop() Rotator {
	if r.live {
		r.live = false
		r.tag++
	}
	return r
}

// Update consumes msg. advance is true only for a live tick of this
// rotator's current generation; the returned command schedules the next one.
func (r Rotator) Update(msg tea.Msg) (Rotator, bool, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || !r.accepts(tick) {
		return r, false, nil
	}
	r.tag++
	return r, true, r.tick()
}

func (r Rotator) accepts(tick TickMsg) bool {
	return r.live && tick.ID == r.id && tick.tag == r.tag
}

// tick schedules the next firing from now, so a paused process never
// delivers a backlog of ticks when it resumes.
func (r Rotator) tick() tea.Cmd {
	id, tag := r.id, r.tag
	return tea.Tick(r.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
