package widgets

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Toggle    key.Binding
	SelectAll key.Binding
	ClearSel  key.Binding

	SortNext key.Binding
	SortFlip key.Binding

	Filter      key.Binding
	ClearFilter key.Binding
	Reload      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),

		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearSel:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "clear selection")),

		SortNext: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		SortFlip: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "flip sort")),

		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

// helpBindings is the footer help line, in display order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Down, k.Up, k.Toggle, k.SortNext, k.SortFlip, k.Filter, k.Reload,
	}
}
