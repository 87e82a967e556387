package update

import "github.com/charmbracelet/bubbles/key"

type shortHelpKeyMap struct {
	bindings []key.Binding
}

func (k shortHelpKeyMap) ShortHelp() []key.Binding  { return k.bindings }
func (k shortHelpKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

func (m Model) shortKeyMap() shortHelpKeyMap {
	switch m.Mode {
	case ModeAdd, ModeEdit:
		return bindingsFor([]KeyBinding{
			{Key: "enter", Action: "save"},
			{Key: "esc", Action: "cancel"},
		})
	case ModeSearch:
		return bindingsFor([]KeyBinding{
			{Key: "enter", Action: "done"},
			{Key: "esc", Action: "clear"},
		})
	case ModeConfirmDelete:
		return bindingsFor([]KeyBinding{
			{Key: "y", Action: "delete"},
			{Key: "n", Action: "keep"},
		})
	default:
		return bindingsFor([]KeyBinding{
			{Key: m.Keys.Add, Action: "add"},
			{Key: m.Keys.Toggle, Action: "toggle"},
			{Key: m.Keys.Delete, Action: "delete"},
			{Key: m.Keys.Filter, Action: "filter"},
			{Key: m.Keys.Search, Action: "search"},
			{Key: m.Keys.Theme, Action: "theme"},
			{Key: m.Keys.Help, Action: "help"},
			{Key: m.Keys.Quit, Action: "quit"},
		})
	}
}

type KeyBinding struct {
	Key    string
	Action string
}

func bindingsFor(items []KeyBinding) shortHelpKeyMap {
	out := make([]key.Binding, 0, len(items))
	for _, kb := range items {
		label := kb.Key
		if label == " " {
			label = "space"
		}
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(label, kb.Action)))
	}
	return shortHelpKeyMap{bindings: out}
}
