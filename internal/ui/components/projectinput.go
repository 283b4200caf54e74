package components

import (
	"fmt"
	"strings"

	"projboard/internal/form"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPeople
	fieldCount
)

// ProjectInputModel is the form used to add a project
type ProjectInputModel struct {
	Inputs  []textinput.Model
	focus   int
	focused bool
}

// NewProjectInputModel creates the three form fields
func NewProjectInputModel(rules form.Rules) *ProjectInputModel {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldTitle] = textinput.New()
	inputs[fieldTitle].Prompt = "Title:       "
	inputs[fieldTitle].Placeholder = "Project title"

	inputs[fieldDescription] = textinput.New()
	inputs[fieldDescription].Prompt = "Description: "
	inputs[fieldDescription].Placeholder = "What is it about?"
	inputs[fieldDescription].CharLimit = rules.DescriptionMax + 1

	inputs[fieldPeople] = textinput.New()
	inputs[fieldPeople].Prompt = "People:      "
	inputs[fieldPeople].Placeholder = fmt.Sprintf("%d-%d", rules.PeopleMin, rules.PeopleMax)
	inputs[fieldPeople].CharLimit = 4

	return &ProjectInputModel{Inputs: inputs}
}

// Focus focuses the form on its current field
func (m *ProjectInputModel) Focus() tea.Cmd {
	m.focused = true
	return m.Inputs[m.focus].Focus()
}

// Blur removes focus from every field
func (m *ProjectInputModel) Blur() {
	m.focused = false
	for i := range m.Inputs {
		m.Inputs[i].Blur()
	}
}

// Focused reports whether the form has focus
func (m *ProjectInputModel) Focused() bool {
	return m.focused
}

// Next moves focus by dir fields, wrapping around
func (m *ProjectInputModel) Next(dir int) tea.Cmd {
	m.Inputs[m.focus].Blur()
	m.focus = (m.focus + dir + fieldCount) % fieldCount
	return m.Inputs[m.focus].Focus()
}

// Fields returns the raw text of the form
func (m *ProjectInputModel) Fields() form.Fields {
	return form.Fields{
		Title:       m.Inputs[fieldTitle].Value(),
		Description: m.Inputs[fieldDescription].Value(),
		People:      m.Inputs[fieldPeople].Value(),
	}
}

// SetFields fills the form
func (m *ProjectInputModel) SetFields(f form.Fields) {
	m.Inputs[fieldTitle].SetValue(f.Title)
	m.Inputs[fieldDescription].SetValue(f.Description)
	m.Inputs[fieldPeople].SetValue(f.People)
}

// Reset clears every field and returns focus to the title
func (m *ProjectInputModel) Reset() tea.Cmd {
	for i := range m.Inputs {
		m.Inputs[i].Reset()
	}
	m.Inputs[m.focus].Blur()
	m.focus = fieldTitle
	if m.focused {
		return m.Inputs[m.focus].Focus()
	}
	return nil
}

// Update passes msg to the focused field
func (m *ProjectInputModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.Inputs[m.focus], cmd = m.Inputs[m.focus].Update(msg)
	return cmd
}

// View renders the form
func (m *ProjectInputModel) View(width int) string {
	lines := make([]string, 0, len(m.Inputs)+1)
	lines = append(lines, lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Render("NEW PROJECT"))
	for _, in := range m.Inputs {
		lines = append(lines, in.View())
	}

	style := borderStyle.Padding(0, 1)
	if m.focused {
		style = style.BorderForeground(focusedBorderColor)
	}
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
