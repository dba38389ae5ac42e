package presenter

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the presentation key bindings. They are scoped to the body
// surface: the terminal model only consults them while a session is active.
type KeyMap struct {
	Next, Prev  key.Binding
	First, Last key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:  key.NewBinding(key.WithKeys("right", "l", "n", " ", "pgdown"), key.WithHelp("→/n", "next slide")),
		Prev:  key.NewBinding(key.WithKeys("left", "h", "p", "pgup"), key.WithHelp("←/p", "previous slide")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first slide")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last slide")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
