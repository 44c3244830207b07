package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Enter key.Binding
	Send  key.Binding
	Max   key.Binding
	Close key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
	),
	Send: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("enter/ctrl+s", "send"),
	),
	Max: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "max"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "ctrl+x"),
		key.WithHelp("esc", "close"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Send, k.Max, k.Close}
}
