// Package tui implements the catfacts terminal page.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	model.go     — root model, message routing, Init/Update/View
//	keys.go      — key bindings and help
//	animate.go   — frame animator for the cosmetic fades
//	theme.go     — centralized color + style definitions
//	header.go    — title bar, hero card and tab strip
//	panels.go    — overview, breeds and care panels
//	paint.go     — Page tree to string
//	helpers.go   — layout and string helpers
package tui
