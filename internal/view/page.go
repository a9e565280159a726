// Package view maps the page state and the static content to a Page tree.
// Build has no side effects; painting the tree is the tui package's job.
package view

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
	"github.com/Mr-Dark-debug/catfacts/internal/display"
)

// StarGlyph is drawn once per rating point.
const StarGlyph = "★"

// LearnMore is the link label under each breed card.
const LearnMore = "Learn more →"

// Page is the whole rendered page.
type Page struct {
	Title string
	Hero  HeroImage
	Tabs  []TabItem
	Panel Panel
}

// HeroImage is the slideshow frame at the top of the page.
type HeroImage struct {
	URL      string
	Alt      string
	Position int // 1-based
	Count    int
	Headline string
	Subtitle string
}

// TabItem is one entry of the tab strip.
type TabItem struct {
	Tab    display.Tab
	Title  string
	Active bool
}

// Panel is the body of the active tab. Only the fields of Tab's kind are set.
type Panel struct {
	Tab     display.Tab
	Heading string

	// Overview
	Body   string
	Badges []Badge

	// Breeds
	Breeds []BreedRow

	// Care
	Tips []TipRow
}

// Badge is a trait chip.
type Badge struct {
	Label string
	Icon  catalog.IconTag
}

// BreedRow is one breed card.
type BreedRow struct {
	Name        string
	Description string
	Icon        catalog.IconTag
	Stars       string
	Link        string
}

// TipRow is one care tip.
type TipRow struct {
	Text string
}

// Stars returns n star glyphs; n <= 0 yields "".
func Stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(StarGlyph, n)
}

// Build renders state against content.
func Build(state *display.State, content catalog.Content) Page {
	idx := state.ImageIndex()
	page := Page{
		Title: content.Title,
		Hero: HeroImage{
			Position: idx + 1,
			Count:    len(content.Images),
			Alt:      fmt.Sprintf("Cat %d", idx+1),
			Headline: content.Hero.Headline,
			Subtitle: content.Hero.Subtitle,
		},
		Panel: buildPanel(state.ActiveTab(), content),
	}
	if idx < len(content.Images) {
		page.Hero.URL = content.Images[idx]
	}

	for _, t := range display.Tabs() {
		page.Tabs = append(page.Tabs, TabItem{
			Tab:    t,
			Title:  t.Title(),
			Active: t == state.ActiveTab(),
		})
	}
	return page
}

func buildPanel(tab display.Tab, content catalog.Content) Panel {
	p := Panel{Tab: tab}

	switch tab {
	case display.TabOverview:
		p.Heading = content.Overview.Heading
		p.Body = content.Overview.Body
		for _, b := range content.Overview.Badges {
			p.Badges = append(p.Badges, Badge{Label: b.Label, Icon: b.Icon})
		}

	case display.TabBreeds:
		p.Heading = "Popular Cat Breeds"
		for _, b := range content.Breeds {
			p.Breeds = append(p.Breeds, BreedRow{
				Name:        b.Name,
				Description: b.Description,
				Icon:        b.Icon,
				Stars:       Stars(b.Rating),
				Link:        LearnMore,
			})
		}

	case display.TabCare:
		p.Heading = "Cat Care Tips"
		for _, tip := range content.CareTips {
			p.Tips = append(p.Tips, TipRow{Text: tip})
		}
	}

	return p
}
