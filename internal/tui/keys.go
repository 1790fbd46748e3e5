package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeyMap holds the bindings the root model handles before any page
// sees the message. Page-local hotkeys stay inside the page models.
type globalKeyMap struct {
	quit   key.Binding
	logout key.Binding
}

var globalKeys = globalKeyMap{
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	logout: key.NewBinding(key.WithKeys("ctrl+l")),
}
