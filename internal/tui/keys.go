package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	about    key.Binding
	logout   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	refresh  key.Binding
	status   key.Binding
	nextPage key.Binding
	prevPage key.Binding
	users    key.Binding
	streams  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	about:    key.NewBinding(key.WithKeys("v")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e", "enter")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	status:   key.NewBinding(key.WithKeys("s")),
	nextPage: key.NewBinding(key.WithKeys("right", "]")),
	prevPage: key.NewBinding(key.WithKeys("left", "[")),
	users:    key.NewBinding(key.WithKeys("u")),
	streams:  key.NewBinding(key.WithKeys("t")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
