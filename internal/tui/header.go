package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/catfacts/internal/display"
	"github.com/Mr-Dark-debug/catfacts/internal/view"
)

// renderTitle produces the centered page title:
//
//	All About Cats 🐈
func renderTitle(page view.Page, width int) string {
	title := titleStyle.Render(page.Title) + " " + titleIconStyle.Render(glyphCat)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
}

// renderHero produces the slideshow card. level fades the image line in
// after the cursor moves.
//
//	╭──────────────────────────────────────────╮
//	│  Cat 2 of 3   ○ ● ○                       │
//	│  upload.wikimedia.org/…/Cat_November.jpg  │
//	│                                           │
//	│  Discover the World of Cats               │
//	│  Explore different breeds, care tips, …   │
//	╰──────────────────────────────────────────╯
func renderHero(page view.Page, width, level int) string {
	inner := maxInt(width-6, 10)
	hero := page.Hero

	var dots []string
	for i := 1; i <= hero.Count; i++ {
		if i == hero.Position {
			dots = append(dots, heroDotStyle.Render("●"))
		} else {
			dots = append(dots, heroDotDimStyle.Render("○"))
		}
	}

	badge := heroBadgeStyle.Render(fmt.Sprintf("%s of %d", hero.Alt, hero.Count))
	image := lipgloss.NewStyle().
		Foreground(fadeColor(level)).
		Render(truncate(strings.TrimPrefix(hero.URL, "https://"), inner))

	lines := []string{
		badge + "  " + strings.Join(dots, " "),
		image,
		"",
		heroHeadlineStyle.Foreground(colorText).Render(truncate(hero.Headline, inner)),
		heroSubtitleStyle.Render(truncate(hero.Subtitle, inner)),
	}

	return heroStyle.Width(maxInt(width-2, 12)).Render(strings.Join(lines, "\n"))
}

// tabZone is the horizontal extent of one tab label, for mouse hit tests.
type tabZone struct {
	tab    display.Tab
	x0, x1 int // [x0, x1)
}

// renderTabStrip produces the tab selector and where each label landed.
//
//	 Overview │ Breeds │ Care Tips
func renderTabStrip(page view.Page) (string, []tabZone) {
	var b strings.Builder
	var zones []tabZone

	b.WriteString(" ")
	x := 1
	for i, item := range page.Tabs {
		if i > 0 {
			sep := tabSepStyle.Render("│")
			b.WriteString(sep)
			x += lipgloss.Width(sep)
		}

		style := tabStyle
		if item.Active {
			style = tabActiveStyle
		}
		label := style.Render(item.Title)
		w := lipgloss.Width(label)
		zones = append(zones, tabZone{tab: item.Tab, x0: x, x1: x + w})
		b.WriteString(label)
		x += w
	}

	return b.String(), zones
}

// renderChrome stacks the title, hero and tab strip.
func renderChrome(page view.Page, width int, frame Frame) string {
	strip, _ := renderTabStrip(page)
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTitle(page, width),
		renderHero(page, width, frame.Hero),
		strip,
	)
}

// layoutTabs reports the screen row of the tab strip and its label zones.
func layoutTabs(page view.Page, width int) (int, []tabZone) {
	row := lipgloss.Height(renderTitle(page, width)) +
		lipgloss.Height(renderHero(page, width, FadeSteps))
	_, zones := renderTabStrip(page)
	return row, zones
}
