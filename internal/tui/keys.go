package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Crosshair key.Binding
	Zoom      key.Binding
	Dataset   key.Binding
	Pick      key.Binding
	Apply     key.Binding
	Cancel    key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	PanUp     key.Binding
	PanDown   key.Binding
	PanLeft   key.Binding
	PanRight  key.Binding
	Table     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Crosshair: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "crosshair")),
		Zoom:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
		Dataset:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select data")),
		Pick:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick data")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom in/out")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_")),
		PanUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		PanDown:   key.NewBinding(key.WithKeys("down")),
		PanLeft:   key.NewBinding(key.WithKeys("left")),
		PanRight:  key.NewBinding(key.WithKeys("right")),
		Table:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "records")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Crosshair, k.Zoom, k.Dataset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Crosshair, k.Zoom, k.ZoomIn, k.PanUp},
		{k.Dataset, k.Pick, k.Apply, k.Cancel},
		{k.Table, k.Help, k.Quit},
	}
}
