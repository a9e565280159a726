package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"github.com/Mr-Dark-debug/catfacts/internal/carousel"
	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
	"github.com/Mr-Dark-debug/catfacts/internal/display"
	"github.com/Mr-Dark-debug/catfacts/internal/view"
)

const testInterval = time.Millisecond

func newTestModel(t *testing.T, animations bool) (Model, tea.Cmd) {
	t.Helper()
	m := NewModel(Options{
		Content:    catalog.Default(),
		Interval:   testInterval,
		Animations: animations,
	})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	return send(t, m, m.Init()())
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return mm, cmd
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// nextTick runs cmd, flattening batches, and returns the carousel tick it
// produces. Frame commands are run too and discarded.
func nextTick(t *testing.T, cmd tea.Cmd) carousel.TickMsg {
	t.Helper()
	for _, msg := range drain(cmd) {
		if tick, ok := msg.(carousel.TickMsg); ok {
			return tick
		}
	}
	t.Fatal("command produced no carousel tick")
	return carousel.TickMsg{}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func TestViewBeforeResize(t *testing.T) {
	m := NewModel(Options{Content: catalog.Default()})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder, got %q", got)
	}
}

// TestPageLifecycle walks mount, a tab click and three slideshow ticks.
func TestPageLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	m, cmd := newTestModel(t, false)
	if !m.Running() {
		t.Fatal("slideshow not running after mount")
	}
	if m.State().ActiveTab() != display.TabOverview {
		t.Errorf("expected overview on mount, got %s", m.State().ActiveTab())
	}
	if m.State().ImageIndex() != 0 {
		t.Errorf("expected image 0 on mount, got %d", m.State().ImageIndex())
	}
	if !strings.Contains(m.View(), "Cat Overview") {
		t.Error("initial view does not show the overview panel")
	}

	m, _ = send(t, m, keyPress("2"))
	page := view.Build(m.State(), catalog.Default())
	want := []struct {
		name   string
		rating int
	}{
		{"Siamese", 5}, {"Maine Coon", 4}, {"Persian", 4}, {"Bengal", 5},
	}
	if len(page.Panel.Breeds) != len(want) {
		t.Fatalf("expected %d breed rows, got %d", len(want), len(page.Panel.Breeds))
	}
	for i, w := range want {
		row := page.Panel.Breeds[i]
		if row.Name != w.name || strings.Count(row.Stars, view.StarGlyph) != w.rating {
			t.Errorf("row %d: expected %s/%d, got %s/%q", i, w.name, w.rating, row.Name, row.Stars)
		}
	}
	if !strings.Contains(m.View(), "Popular Cat Breeds") {
		t.Error("view does not show the breeds panel")
	}

	var seen []int
	for i := 0; i < 3; i++ {
		m, cmd = send(t, m, nextTick(t, cmd))
		seen = append(seen, m.State().ImageIndex())
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 0 {
		t.Errorf("expected index sequence [1 2 0], got %v", seen)
	}
}

func TestTickAfterQuitIsInert(t *testing.T) {
	defer goleak.VerifyNone(t)

	m, cmd := newTestModel(t, false)
	tick := nextTick(t, cmd)

	m, quit := send(t, m, keyPress("q"))
	if quit == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Error("quit key did not produce tea.QuitMsg")
	}
	if m.Running() {
		t.Error("slideshow still running after quit")
	}

	m, next := send(t, m, tick)
	if m.State().ImageIndex() != 0 {
		t.Errorf("stale tick moved the cursor to %d", m.State().ImageIndex())
	}
	if next != nil {
		t.Error("stale tick scheduled another tick")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestSelectSameTabStartsNoTransition(t *testing.T) {
	m, _ := newTestModel(t, true)

	m, cmd := send(t, m, keyPress("b"))
	if cmd == nil {
		t.Fatal("first tab change should start the panel transition")
	}
	tag := m.panelFade.tag

	m, cmd = send(t, m, keyPress("b"))
	if cmd != nil {
		t.Error("re-selecting the active tab started a transition")
	}
	if m.panelFade.tag != tag {
		t.Error("re-selecting the active tab restarted the panel animator")
	}
	if m.State().ActiveTab() != display.TabBreeds {
		t.Errorf("expected breeds, got %s", m.State().ActiveTab())
	}
}

func TestTabNavigationKeys(t *testing.T) {
	m, _ := newTestModel(t, false)

	steps := []struct {
		msg  tea.KeyMsg
		want display.Tab
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, display.TabBreeds},
		{tea.KeyMsg{Type: tea.KeyRight}, display.TabCare},
		{tea.KeyMsg{Type: tea.KeyTab}, display.TabOverview},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, display.TabCare},
		{keyPress("h"), display.TabBreeds},
		{keyPress("o"), display.TabOverview},
		{keyPress("3"), display.TabCare},
	}
	for i, s := range steps {
		m, _ = send(t, m, s.msg)
		if got := m.State().ActiveTab(); got != s.want {
			t.Fatalf("step %d (%s): expected %s, got %s", i, s.msg, s.want, got)
		}
	}
}

func TestTabKeysLeaveCursorAlone(t *testing.T) {
	m, cmd := newTestModel(t, false)
	m, _ = send(t, m, nextTick(t, cmd))
	m, _ = send(t, m, keyPress("c"))
	if m.State().ImageIndex() != 1 {
		t.Errorf("tab switch moved the cursor to %d", m.State().ImageIndex())
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	m, _ := newTestModel(t, false)

	row, zones := layoutTabs(m.page(), m.width)
	if len(zones) != 3 {
		t.Fatalf("expected 3 tab zones, got %d", len(zones))
	}

	click := tea.MouseMsg{
		X:      zones[2].x0,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	m, _ = send(t, m, click)
	if m.State().ActiveTab() != display.TabCare {
		t.Errorf("click on care tab selected %s", m.State().ActiveTab())
	}

	click.Y = row + 1
	click.X = zones[0].x0
	m, _ = send(t, m, click)
	if m.State().ActiveTab() != display.TabCare {
		t.Error("click below the tab strip changed the tab")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, false)
	m, _ = send(t, m, keyPress("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help after ?")
	}
	if !strings.Contains(m.View(), "care tips") {
		t.Error("full help does not list the care tips binding")
	}
}

func TestHeroFadeRestartsOnTick(t *testing.T) {
	m, cmd := newTestModel(t, true)
	m = m.settle()

	m, cmd = send(t, m, nextTick(t, cmd))
	if m.heroFade.done() {
		t.Error("hero fade did not restart after the image changed")
	}
	if cmd == nil {
		t.Error("expected next tick and frame commands")
	}
}

func TestFrameMessagesSettleAnimations(t *testing.T) {
	m, _ := newTestModel(t, true)
	if m.frame().Tips != 0 {
		t.Errorf("expected no tips revealed on mount, got %d", m.frame().Tips)
	}

	for !m.panelFade.done() {
		m, _ = send(t, m, frameMsg{id: m.panelFade.id, tag: m.panelFade.tag})
	}
	if got := m.frame(); got.Panel != FadeSteps || got.Tips != -1 {
		t.Errorf("expected settled panel frame, got %+v", got)
	}
}

// settle finishes every running animation without waiting on timers.
func (m Model) settle() Model {
	m.heroFade = m.heroFade.stop()
	m.panelFade = m.panelFade.stop()
	return m
}
