package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/catfacts/internal/carousel"
	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
	"github.com/Mr-Dark-debug/catfacts/internal/display"
	"github.com/Mr-Dark-debug/catfacts/internal/view"
	"github.com/Mr-Dark-debug/catfacts/pkg/timeutil"
)

// Options configures a page model.
type Options struct {
	Content    catalog.Content
	Interval   time.Duration
	Animations bool
	Logger     *zap.Logger
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the cat page.
// The display state is the only page state; rendering reads it through
// view.Build and never writes it.
type Model struct {
	content catalog.Content
	state   *display.State
	logger  *zap.Logger
	session string

	// Drivers
	rotator   carousel.Rotator
	heroFade  animator
	panelFade animator

	// Widgets
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	width    int
	height   int
	mounted  bool
	quitting bool
}

// NewModel creates a page model. The slideshow starts on Init.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := help.New()
	h.Styles.ShortKey = hintKeyStyle
	h.Styles.ShortDesc = hintDescStyle
	h.Styles.ShortSeparator = hintDescStyle
	h.Styles.FullKey = hintKeyStyle
	h.Styles.FullDesc = hintDescStyle
	h.Styles.FullSeparator = hintDescStyle

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	return Model{
		content:   opts.Content,
		state:     display.NewState(len(opts.Content.Images)),
		logger:    logger,
		session:   uuid.NewString(),
		rotator:   carousel.New(opts.Interval),
		heroFade:  newAnimator(FadeSteps, opts.Animations),
		panelFade: newAnimator(maxInt(FadeSteps, len(opts.Content.CareTips)), opts.Animations),
		keys:      defaultKeyMap(),
		help:      h,
		viewport:  vp,
	}
}

// State exposes the page state for inspection.
func (m Model) State() *display.State { return m.state }

// Running reports whether the slideshow timer is live.
func (m Model) Running() bool { return m.rotator.Running() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

// Init schedules the mount. Init cannot hand back an updated model, so the
// timers start when mountMsg reaches Update.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

type mountMsg struct{}

func (m Model) mount() (Model, tea.Cmd) {
	if m.mounted || m.quitting {
		return m, nil
	}
	m.mounted = true

	var rotCmd, heroCmd, panelCmd tea.Cmd
	m.rotator, rotCmd = m.rotator.Start()
	m.heroFade, heroCmd = m.heroFade.restart()
	m.panelFade, panelCmd = m.panelFade.restart()

	m.logger.Debug("page mounted",
		zap.String("session", m.session),
		zap.Duration("interval", m.rotator.Interval()),
		zap.Int("images", m.state.ImageCount()))

	return m, tea.Batch(rotCmd, heroCmd, panelCmd)
}

// unmount stops every timer; ticks already in flight become no-ops.
func (m Model) unmount() Model {
	if !m.mounted {
		return m
	}
	m.mounted = false
	m.rotator = m.rotator.Stop()
	m.heroFade = m.heroFade.stop()
	m.panelFade = m.panelFade.stop()
	m.logger.Debug("page unmounted", zap.String("session", m.session))
	return m
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	case mountMsg:
		m, cmd = m.mount()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)

	case carousel.TickMsg:
		var advance bool
		m.rotator, advance, cmd = m.rotator.Update(msg)
		if advance {
			idx := m.state.AdvanceImage()
			m.logger.Debug("image advanced",
				zap.String("session", m.session), zap.Int("index", idx))
			var fadeCmd tea.Cmd
			m.heroFade, fadeCmd = m.heroFade.restart()
			cmd = tea.Batch(cmd, fadeCmd)
		}

	case frameMsg:
		if msg.id == m.heroFade.id {
			m.heroFade, cmd = m.heroFade.update(msg)
		} else {
			m.panelFade, cmd = m.panelFade.update(msg)
		}
	}

	m.syncViewport()
	return m, cmd
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m = m.unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Overview):
		return m.selectTab(display.TabOverview)
	case key.Matches(msg, m.keys.Breeds):
		return m.selectTab(display.TabBreeds)
	case key.Matches(msg, m.keys.Care):
		return m.selectTab(display.TabCare)
	case key.Matches(msg, m.keys.NextTab):
		return m.selectTab(m.state.ActiveTab().Next())
	case key.Matches(msg, m.keys.PrevTab):
		return m.selectTab(m.state.ActiveTab().Prev())

	case key.Matches(msg, m.keys.Up, m.keys.Down):
		var cmd tea.Cmd
		m.syncViewport()
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouse selects a tab on click and scrolls the panel on wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		row, zones := layoutTabs(m.page(), m.width)
		if msg.Y == row {
			for _, z := range zones {
				if msg.X >= z.x0 && msg.X < z.x1 {
					return m.selectTab(z.tab)
				}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.syncViewport()
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// selectTab switches panels. Selecting the active tab is a no-op, so the
// panel transition plays once per actual change.
func (m Model) selectTab(tab display.Tab) (Model, tea.Cmd) {
	if !m.state.SetActiveTab(tab) {
		return m, nil
	}
	m.logger.Debug("tab selected",
		zap.String("session", m.session), zap.Stringer("tab", tab))

	m.viewport.GotoTop()
	var cmd tea.Cmd
	m.panelFade, cmd = m.panelFade.restart()
	return m, cmd
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) page() view.Page {
	return view.Build(m.state, m.content)
}

// frame maps animator progress onto paint levels.
func (m Model) frame() Frame {
	f := Frame{
		Hero:  minInt(m.heroFade.frame, FadeSteps),
		Panel: minInt(m.panelFade.frame, FadeSteps),
		Tips:  m.panelFade.frame,
	}
	if m.panelFade.done() {
		f.Tips = -1
	}
	return f
}

// syncViewport sizes the panel viewport to the space left under the chrome
// and loads the current panel into it.
func (m *Model) syncViewport() {
	if m.width == 0 {
		return
	}
	page := m.page()
	chrome := renderChrome(page, m.width, m.frame())

	m.viewport.Width = m.width
	m.viewport.Height = maxInt(m.height-lipgloss.Height(chrome)-lipgloss.Height(m.renderFooter()), 3)
	m.viewport.SetContent(renderPanel(page.Panel, m.width-2, m.frame()))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	page := m.page()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderChrome(page, m.width, m.frame()),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// renderFooter produces the bottom status bar with keyboard hints.
func (m Model) renderFooter() string {
	status := statusStyle.Render(fmt.Sprintf("Cat %d/%d  every %s",
		m.state.ImageIndex()+1, m.state.ImageCount(),
		timeutil.FormatInterval(m.rotator.Interval())))

	hints := m.help.View(m.keys)
	if m.help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left, status, hints)
	}

	gap := maxInt(m.width-lipgloss.Width(status)-lipgloss.Width(hints), 0)
	bar := status + strings.Repeat(" ", gap) + hints
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}
