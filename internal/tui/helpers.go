package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
)

// ────────────────────────────────────────────────────────────
// Icons
// ────────────────────────────────────────────────────────────

const (
	glyphCat   = "🐈"
	glyphHeart = "♥"
	glyphPaw   = "🐾"
	glyphInfo  = "ⓘ"
)

// iconGlyph returns the tinted glyph for an icon tag.
func iconGlyph(icon catalog.IconTag) string {
	var g string
	switch icon {
	case catalog.IconHeart:
		g = glyphHeart
	case catalog.IconPaw:
		g = glyphPaw
	case catalog.IconInfo:
		g = glyphInfo
	default:
		g = glyphCat
	}
	return lipgloss.NewStyle().Foreground(iconColor(icon)).Render(g)
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
