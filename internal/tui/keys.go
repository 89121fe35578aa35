package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up               key.Binding
	down             key.Binding
	enter            key.Binding
	esc              key.Binding
	tab              key.Binding
	quit             key.Binding
	forceQuit        key.Binding
	search           key.Binding
	newEncrypted     key.Binding
	newPlain         key.Binding
	edit             key.Binding
	delete           key.Binding
	copy             key.Binding
	tags             key.Binding
	toggleEncryption key.Binding
	save             key.Binding
	buildInfo        key.Binding
	yes              key.Binding
	no               key.Binding
}

var keys = keyMap{
	up:               key.NewBinding(key.WithKeys("up", "k")),
	down:             key.NewBinding(key.WithKeys("down", "j")),
	enter:            key.NewBinding(key.WithKeys("enter")),
	esc:              key.NewBinding(key.WithKeys("esc")),
	tab:              key.NewBinding(key.WithKeys("tab")),
	quit:             key.NewBinding(key.WithKeys("q")),
	forceQuit:        key.NewBinding(key.WithKeys("ctrl+c")),
	search:           key.NewBinding(key.WithKeys("/")),
	newEncrypted:     key.NewBinding(key.WithKeys("n")),
	newPlain:         key.NewBinding(key.WithKeys("N")),
	edit:             key.NewBinding(key.WithKeys("e")),
	delete:           key.NewBinding(key.WithKeys("d")),
	copy:             key.NewBinding(key.WithKeys("c")),
	tags:             key.NewBinding(key.WithKeys("t")),
	toggleEncryption: key.NewBinding(key.WithKeys("ctrl+e")),
	save:             key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo:        key.NewBinding(key.WithKeys("v")),
	yes:              key.NewBinding(key.WithKeys("y")),
	no:               key.NewBinding(key.WithKeys("n")),
}
