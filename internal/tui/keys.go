package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Jump     key.Binding
	Drawer   key.Binding
	Mode     key.Binding
	Help     key.Binding
	NextLink key.Binding
	PrevLink key.Binding
	Open     key.Binding
	Left     key.Binding
	Right    key.Binding
	Apply    key.Binding
	GoTo     key.Binding
	Close    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "jump")),
		Drawer:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Mode:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextLink: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next link")),
		PrevLink: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous link")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous swatch")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next swatch")),
		Apply:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "apply swatch")),
		GoTo:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Jump, k.Mode, k.GoTo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Select, k.Jump},
		{k.Drawer, k.Mode, k.GoTo, k.Close},
		{k.NextLink, k.PrevLink, k.Open},
		{k.Left, k.Right, k.Apply},
		{k.Help, k.Quit},
	}
}
