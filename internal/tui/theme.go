package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
)

// ────────────────────────────────────────────────────────────
// Color Palette — lavender dusk
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBgSurface = lipgloss.Color("#2a1e3a")
	colorBgHero    = lipgloss.Color("#1b1326")

	// Text
	colorText      = lipgloss.Color("#f3ecfb")
	colorTextDim   = lipgloss.Color("#b7a8c9")
	colorTextMuted = lipgloss.Color("#5d4f6e")

	// Accents
	colorPurple = lipgloss.Color("#a371f7")
	colorPink   = lipgloss.Color("#f778ba")
	colorBlue   = lipgloss.Color("#58a6ff")
	colorOrange = lipgloss.Color("#f0883e")
	colorGray   = lipgloss.Color("#8b949e")
	colorYellow = lipgloss.Color("#e3b341")

	// Structural
	colorDivider = lipgloss.Color("#3d2f52")
)

// fadeRamp steps text from invisible to full intensity, one color per frame.
var fadeRamp = []lipgloss.Color{
	colorTextMuted,
	lipgloss.Color("#7d6d90"),
	lipgloss.Color("#a596b8"),
	lipgloss.Color("#cdc0dd"),
	colorText,
}

// FadeSteps is the number of frames a fade takes; fadeRamp has one more entry.
const FadeSteps = 4

func fadeColor(level int) lipgloss.Color {
	return fadeRamp[clamp(level, 0, FadeSteps)]
}

// iconColor tints the glyph drawn for an icon tag.
func iconColor(icon catalog.IconTag) lipgloss.Color {
	switch icon {
	case catalog.IconBlue:
		return colorBlue
	case catalog.IconOrange:
		return colorOrange
	case catalog.IconGray:
		return colorGray
	case catalog.IconYellow:
		return colorYellow
	case catalog.IconHeart:
		return colorPink
	default:
		return colorPurple
	}
}

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Title bar
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPurple)

	titleIconStyle = lipgloss.NewStyle().
			Foreground(colorPink)
)

// Hero card
var (
	heroStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Background(colorBgHero).
			Padding(0, 2)

	heroBadgeStyle = lipgloss.NewStyle().
			Foreground(colorBgHero).
			Background(colorPurple).
			Bold(true).
			Padding(0, 1)

	heroDotStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	heroDotDimStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	heroHeadlineStyle = lipgloss.NewStyle().
				Bold(true)

	heroSubtitleStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Tab strip
var (
	tabStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPurple).
			Bold(true).
			Padding(0, 2)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDivider)
)

// Panels
var (
	panelHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPurple)

	badgeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	cardNameStyle = lipgloss.NewStyle().
			Bold(true)

	starStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Underline(true)

	tipIconStyle = lipgloss.NewStyle().
			Foreground(colorPurple)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
