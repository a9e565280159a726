package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the page's key bindings. It implements help.KeyMap.
type keyMap struct {
	Overview key.Binding
	Breeds   key.Binding
	Care     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Overview: key.NewBinding(
			key.WithKeys("1", "o"),
			key.WithHelp("1/o", "overview"),
		),
		Breeds: key.NewBinding(
			key.WithKeys("2", "b"),
			key.WithHelp("2/b", "breeds"),
		),
		Care: key.NewBinding(
			key.WithKeys("3", "c"),
			key.WithHelp("3/c", "care tips"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("⇧tab/←", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Down, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Breeds, k.Care},
		{k.NextTab, k.PrevTab},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
