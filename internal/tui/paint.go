package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/catfacts/internal/view"
)

// Frame selects how far each cosmetic animation has progressed.
type Frame struct {
	Hero  int // 0..FadeSteps
	Panel int // 0..FadeSteps
	Tips  int // care tips revealed; negative reveals all
}

// Settled is the frame every animation ends on.
func Settled() Frame {
	return Frame{Hero: FadeSteps, Panel: FadeSteps, Tips: -1}
}

// Paint renders page at width without a running program: the title, hero,
// tab strip and the full active panel.
func Paint(page view.Page, width int, frame Frame) string {
	width = maxInt(width, 24)
	return lipgloss.JoinVertical(lipgloss.Left,
		renderChrome(page, width, frame),
		"",
		renderPanel(page.Panel, width-2, frame),
	)
}
