package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	Add       key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Back      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Drag      key.Binding
	Drop      key.Binding
	Cancel    key.Binding
	Dismiss   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Add:       key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add project")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to lists")),
		Left:      key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "active")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "finished")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Drag:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "drag project")),
		Drop:      key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "drop")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	}
}

// formHelp is shown while the form has focus.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.PrevField, k.Back}
}

// listHelp is shown while a list has focus.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Left, k.Right, k.Up, k.Down, k.Drag, k.Quit}
}

// dragHelp is shown while a project is being dragged.
func (k keyMap) dragHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Cancel}
}

// alertHelp is shown while an alert is open.
func (k keyMap) alertHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}
