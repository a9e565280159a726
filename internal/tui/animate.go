package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces the cosmetic animations.
const frameInterval = 70 * time.Millisecond

var lastAnimatorID int64

// frameMsg advances one animator by a frame.
type frameMsg struct {
	id  int
	tag int
}

// animator counts frames from 0 to total. Like the carousel rotator it
// tags every scheduled frame so restarts and stops leave old frames inert.
type animator struct {
	id      int
	tag     int
	frame   int
	total   int
	enabled bool
}

// newAnimator returns a settled animator.
func newAnimator(total int, enabled bool) animator {
	return animator{
		id:      int(atomic.AddInt64(&lastAnimatorID, 1)),
		frame:   total,
		total:   total,
		enabled: enabled,
	}
}

// restart rewinds to frame 0. Disabled animators jump straight to the end.
func (a animator) restart() (animator, tea.Cmd) {
	a.tag++
	if !a.enabled || a.total == 0 {
		a.frame = a.total
		return a, nil
	}
	a.frame = 0
	return a, a.next()
}

func (a animator) update(msg frameMsg) (animator, tea.Cmd) {
	if msg.id != a.id || msg.tag != a.tag || a.done() {
		return a, nil
	}
	a.frame++
	if a.done() {
		return a, nil
	}
	a.tag++
	return a, a.next()
}

// stop settles the animator and drops any frame in flight.
func (a animator) stop() animator {
	a.tag++
	a.frame = a.total
	return a
}

func (a animator) done() bool { return a.frame >= a.total }

func (a animator) next() tea.Cmd {
	id, tag := a.id, a.tag
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}
