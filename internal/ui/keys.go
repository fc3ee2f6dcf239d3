package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Search    key.Binding
	Edit      key.Binding
	New       key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Sort:      key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort by column")),
	PrevPage:  key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "prev page")),
	NextPage:  key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "next page")),
	Select:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select row")),
	SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit cell")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new vendor")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete selected")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev tab")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
