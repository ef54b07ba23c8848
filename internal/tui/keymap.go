package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Submit    key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	History   key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous page"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "/"),
			key.WithHelp("esc", "new query"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys adapts the key map to bubbles/help for the current state.
type helpKeys struct {
	keys  KeyMap
	state State
}

func (h helpKeys) ShortHelp() []key.Binding {
	switch h.state {
	case StateInput:
		return []key.Binding{h.keys.Submit, h.keys.ForceQuit}
	case StateResults:
		return []key.Binding{h.keys.NextPage, h.keys.PrevPage, h.keys.History, h.keys.Back, h.keys.Quit}
	case StateHistory:
		return []key.Binding{h.keys.Submit, h.keys.Back, h.keys.Quit}
	default:
		return []key.Binding{h.keys.ForceQuit}
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
