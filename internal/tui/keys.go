package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left    key.Binding
	right   key.Binding
	tab     key.Binding
	backtab key.Binding
	enter   key.Binding
	login   key.Binding
	logout  key.Binding
	copy    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter", " ")),
	login:   key.NewBinding(key.WithKeys("i")),
	logout:  key.NewBinding(key.WithKeys("o")),
	copy:    key.NewBinding(key.WithKeys("c")),
	quit:    key.NewBinding(key.WithKeys("q")),
}
