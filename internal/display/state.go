// Package display owns the mutable state of the cat page: which panel is
// showing and which hero image is on screen.
package display

import (
	"fmt"
	"strings"
)

// Tab identifies one of the mutually exclusive content panels.
type Tab int

const (
	TabOverview Tab = iota
	TabBreeds
	TabCare
)

var allTabs = []Tab{TabOverview, TabBreeds, TabCare}

// Tabs returns every tab in strip order.
func Tabs() []Tab {
	return append([]Tab(nil), allTabs...)
}

// String returns the tab's identifier, as used on the command line.
func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabBreeds:
		return "breeds"
	case TabCare:
		return "care"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Title returns the label shown in the tab strip.
func (t Tab) Title() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabBreeds:
		return "Breeds"
	case TabCare:
		return "Care Tips"
	default:
		return t.String()
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(allTabs))
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(allTabs) - 1) % len(allTabs))
}

// ParseTab maps an identifier such as "breeds" back to its Tab.
func ParseTab(s string) (Tab, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range allTabs {
		if key == t.String() {
			return t, nil
		}
	}
	return TabOverview, fmt.Errorf("unknown tab %q (want overview, breeds or care)", s)
}

// State holds the active panel and the hero image cursor.
//
// The active tab changes only through SetActiveTab; the cursor moves only
// through AdvanceImage, always forward by one, wrapping at the image count.
type State struct {
	activeTab  Tab
	imageIndex int
	imageCount int
}

// NewState returns the mount-time state for n images: Overview, image 0.
func NewState(n int) *State {
	if n < 1 {
		panic(fmt.Sprintf("display: image count must be positive, got %d", n))
	}
	return &State{activeTab: TabOverview, imageCount: n}
}

// ActiveTab returns the selected panel.
func (s *State) ActiveTab() Tab { return s.activeTab }

// ImageIndex returns the cursor into the image list.
func (s *State) ImageIndex() int { return s.imageIndex }

// ImageCount returns the length of the image list.
func (s *State) ImageCount() int { return s.imageCount }

// SetActiveTab selects tab and reports whether the selection changed.
func (s *State) SetActiveTab(tab Tab) bool {
	if s.activeTab == tab {
		return false
	}
	s.activeTab = tab
	return true
}

// AdvanceImage moves the cursor to the next image and returns it.
func (s *State) AdvanceImage() int {
	s.imageIndex = (s.imageIndex + 1) % s.imageCount
	return s.imageIndex
}
