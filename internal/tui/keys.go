package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/hay-kot/tidy/internal/tui/components"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Leave    key.Binding
	FilterN  key.Binding
	NextView key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Toggle:   key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("space", "toggle item")),
		Add:      key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a/i", "new item")),
		Leave:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		FilterN:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "all/active/completed")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpSections builds the help dialog content from the bindings so the two
// cannot drift apart.
func (k keyMap) helpSections() []components.HelpDialogSection {
	entries := func(bindings ...key.Binding) []components.HelpEntry {
		out := make([]components.HelpEntry, 0, len(bindings))
		for _, b := range bindings {
			h := b.Help()
			out = append(out, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		return out
	}

	return []components.HelpDialogSection{
		{Title: "Items", Entries: entries(k.Up, k.Down, k.Toggle, k.Add, k.Leave)},
		{Title: "Filters", Entries: entries(k.FilterN, k.NextView)},
		{Title: "General", Entries: entries(k.Help, k.Quit, k.ForceQ)},
	}
}

// shortHelp is the one-line hint under the list.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Toggle, k.Add, k.NextView, k.Help, k.Quit}
}
