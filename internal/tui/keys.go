package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shared by every screen
type keyMap struct {
	Confirm   key.Binding
	Quit      key.Binding
	Title     key.Binding
	Redraw    key.Binding
	Interrupt key.Binding
	Random    key.Binding
	Delete    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm:   key.NewBinding(key.WithKeys("enter")),
		Quit:      key.NewBinding(key.WithKeys("esc")),
		Title:     key.NewBinding(key.WithKeys("ctrl+t")),
		Redraw:    key.NewBinding(key.WithKeys("ctrl+l")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
		Random:    key.NewBinding(key.WithKeys("r")),
		Delete:    key.NewBinding(key.WithKeys("backspace")),
	}
}
