package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/catfacts/internal/display"
	"github.com/Mr-Dark-debug/catfacts/internal/view"
)

// twoColumnWidth is the narrowest panel that lays breed cards side by side.
const twoColumnWidth = 80

// renderPanel renders the active tab's body. frame.Panel fades and slides
// the panel in; frame.Tips limits how many care tips are revealed so far.
func renderPanel(p view.Panel, width int, frame Frame) string {
	width = maxInt(width, 20)

	var body string
	switch p.Tab {
	case display.TabOverview:
		body = renderOverview(p, width, frame)
	case display.TabBreeds:
		body = renderBreeds(p, width, frame)
	case display.TabCare:
		body = renderCare(p, width, frame)
	}

	// Slide up from two rows below while fading in.
	offset := (FadeSteps - clamp(frame.Panel, 0, FadeSteps)) / 2
	return strings.Repeat("\n", offset) + body
}

func renderHeading(text string, level int) string {
	style := panelHeadingStyle
	if level < FadeSteps {
		style = style.Foreground(fadeColor(level))
	}
	return style.Render(text)
}

// renderOverview renders the intro paragraph and the trait badges.
func renderOverview(p view.Panel, width int, frame Frame) string {
	text := lipgloss.NewStyle().
		Foreground(fadeColor(frame.Panel)).
		Width(width - 2).
		Render(p.Body)

	var badges []string
	for _, b := range p.Badges {
		badges = append(badges, badgeStyle.Render(iconGlyph(b.Icon)+" "+b.Label))
	}

	return strings.Join([]string{
		renderHeading(p.Heading, frame.Panel),
		"",
		text,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	}, "\n")
}

// renderBreeds renders one card per breed, two per row on wide terminals.
func renderBreeds(p view.Panel, width int, frame Frame) string {
	cols := 1
	if width >= twoColumnWidth {
		cols = 2
	}
	cardWidth := (width - (cols - 1)) / cols

	var cards []string
	for _, row := range p.Breeds {
		cards = append(cards, renderBreedCard(row, cardWidth, frame.Panel))
	}

	lines := []string{renderHeading(p.Heading, frame.Panel), ""}
	for i := 0; i < len(cards); i += cols {
		end := minInt(i+cols, len(cards))
		group := cards[i:end]
		if len(group) > 1 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, group[0], " ", group[1]))
		} else {
			lines = append(lines, group[0])
		}
	}
	return strings.Join(lines, "\n")
}

// renderBreedCard renders:
//
//	╭──────────────────────────────╮
//	│ 🐈 Siamese            ★★★★★ │
//	│ Known for their distinctive… │
//	│ Learn more →                 │
//	╰──────────────────────────────╯
func renderBreedCard(row view.BreedRow, width, level int) string {
	inner := maxInt(width-4, 10)

	name := iconGlyph(row.Icon) + " " + cardNameStyle.Foreground(fadeColor(level)).Render(row.Name)
	stars := starStyle.Render(row.Stars)
	gap := maxInt(inner-lipgloss.Width(name)-lipgloss.Width(stars), 1)

	desc := lipgloss.NewStyle().
		Foreground(colorTextDim).
		Width(inner).
		Render(row.Description)

	content := strings.Join([]string{
		name + strings.Repeat(" ", gap) + stars,
		desc,
		linkStyle.Render(row.Link),
	}, "\n")

	return cardStyle.Width(maxInt(width-2, 12)).Render(content)
}

// renderCare renders the care tips in order, revealing them one per frame.
func renderCare(p view.Panel, width int, frame Frame) string {
	shown := len(p.Tips)
	if frame.Tips >= 0 {
		shown = minInt(frame.Tips, shown)
	}

	tipStyle := lipgloss.NewStyle().Width(maxInt(width-4, 10))
	lines := []string{renderHeading(p.Heading, frame.Panel), ""}
	for _, tip := range p.Tips[:shown] {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			tipIconStyle.Render(glyphPaw)+" ",
			tipStyle.Render(tip.Text),
		))
	}
	return strings.Join(lines, "\n")
}
