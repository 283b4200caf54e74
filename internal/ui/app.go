package ui

import (
	"errors"
	"fmt"

	"projboard/internal/dnd"
	"projboard/internal/form"
	"projboard/internal/state"
	"projboard/internal/ui/components"
	"projboard/internal/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// alertTitle is shown on every rejected form submission
const alertTitle = "Error: Please fill out all fields"

// Which part of the board has keyboard focus
type focusArea int

const (
	focusForm focusArea = iota
	focusActive
	focusFinished
)

// Model represents the UI model
type Model struct {
	Store     *state.ProjectStore
	Validator *form.Validator
	Input     *components.ProjectInputModel
	Lists     [2]*components.ProjectListModel
	Views     [2]*views.ListView
	Gesture   *dnd.Gesture

	Focus         focusArea
	Hover         int
	Alert         string
	StatusMessage string
	Width         int
	Height        int
	Ready         bool

	keys   keyMap
	help   help.Model
	logger *zap.Logger
}

// NewModel creates a new UI model. store is shared with every view so
// there is exactly one source of truth for the board.
func NewModel(store *state.ProjectStore, validator *form.Validator, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("ui")

	m := Model{
		Store:         store,
		Validator:     validator,
		Input:         components.NewProjectInputModel(validator.Rules()),
		Gesture:       dnd.NewGesture(logger),
		Focus:         focusForm,
		StatusMessage: "Ready",
		keys:          defaultKeyMap(),
		help:          help.New(),
		logger:        logger,
	}

	for i, kind := range []views.Kind{views.KindActive, views.KindFinished} {
		m.Lists[i] = components.NewProjectListModel(kind, 40, 10)
		m.Views[i] = views.New(kind, store, m.Lists[i], logger)
	}

	m.Input.Focus()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.Input.Focus()
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch {
		case m.Alert != "":
			return m.updateAlert(msg)
		case m.Gesture.State() == dnd.StateDragging:
			return m.updateDrag(msg)
		case m.Focus == focusForm:
			return m.updateForm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.Focus == focusForm {
		return m, m.Input.Update(msg)
	}
	return m, nil
}

// updateAlert blocks everything until the alert is dismissed.
func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.Alert = ""
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		return m, m.Input.Next(1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.Input.Next(-1)
	case key.Matches(msg, m.keys.Back):
		m.Input.Blur()
		m.Focus = focusActive
		return m, nil
	}
	return m, m.Input.Update(msg)
}

// submit validates the form and adds the project. On failure the form is
// left untouched and an alert is shown.
func (m Model) submit() (tea.Model, tea.Cmd) {
	in, err := m.Validator.Validate(m.Input.Fields())
	if err != nil {
		m.logger.Warn("project rejected", zap.Error(err))
		m.Alert = alertMessage(err)
		m.StatusMessage = "Project not added"
		return m, nil
	}

	m.Store.AddProject(in.Title, in.Description, in.People)
	m.StatusMessage = fmt.Sprintf("Added %q", in.Title)
	return m, m.Input.Reset()
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.Lists[m.listIndex()]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.Focus = focusForm
		return m, m.Input.Focus()
	case key.Matches(msg, m.keys.Left):
		m.Focus = focusActive
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.Focus = focusFinished
		return m, nil
	case key.Matches(msg, m.keys.Drag):
		p, ok := list.Selected()
		if !ok {
			m.StatusMessage = "Nothing to drag"
			return m, nil
		}
		if err := m.Gesture.Start(views.NewItem(p, m.logger)); err != nil {
			m.logger.Error("drag start failed", zap.Error(err))
			return m, nil
		}
		m.Hover = m.listIndex()
		m.dragOver()
		m.StatusMessage = fmt.Sprintf("Dragging %q", p.Title)
		return m, nil
	}

	return m, list.Update(msg)
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if err := m.Gesture.Cancel(); err != nil {
			m.logger.Error("drag cancel failed", zap.Error(err))
		}
		m.Gesture.Reset()
		m.StatusMessage = "Drag cancelled"
	case key.Matches(msg, m.keys.Left):
		m.Hover = 0
		m.dragOver()
	case key.Matches(msg, m.keys.Right):
		m.Hover = 1
		m.dragOver()
	case key.Matches(msg, m.keys.Drop):
		payload := m.Gesture.Payload()
		target, err := m.Gesture.Drop()
		if err != nil {
			m.logger.Error("drop failed", zap.Error(err))
		}
		if lv, ok := target.(*views.ListView); ok && lv != nil {
			m.Focus = focusArea(m.Hover + 1)
			m.StatusMessage = fmt.Sprintf("Moved to %s", lv.Kind())
			m.selectProject(m.Hover, payload)
		} else {
			m.StatusMessage = "Drop rejected"
		}
		m.Gesture.Reset()
	}
	return m, nil
}

// dragOver moves the gesture onto the hovered list.
func (m Model) dragOver() {
	if _, err := m.Gesture.Over(m.Views[m.Hover]); err != nil {
		m.logger.Error("drag over failed", zap.Error(err))
	}
}

// selectProject moves the cursor of list i onto the project with id.
func (m Model) selectProject(i int, id string) {
	for idx, p := range m.Views[i].Projects() {
		if p.ID == id {
			m.Lists[i].List.Select(idx)
			return
		}
	}
}

// listIndex returns the index of the focused list, or of the active list
// when the form has focus.
func (m Model) listIndex() int {
	if m.Focus == focusFinished {
		return 1
	}
	return 0
}

func (m *Model) resize() {
	formHeight := lipgloss.Height(m.Input.View(m.Width))
	listWidth := m.Width/2 - 2
	listHeight := m.Height - formHeight - 5
	if listWidth < 10 {
		listWidth = 10
	}
	if listHeight < 3 {
		listHeight = 3
	}
	for _, l := range m.Lists {
		l.SetSize(listWidth, listHeight)
	}
	m.help.Width = m.Width
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Padding(0, 1).
		Render("Project Board")

	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s  (%d projects)", m.StatusMessage, m.Store.Len()))

	var body string
	if m.Alert != "" {
		body = lipgloss.Place(m.Width, m.Height-4, lipgloss.Center, lipgloss.Center, renderAlert(m.Alert))
	} else {
		lists := make([]string, len(m.Lists))
		for i, l := range m.Lists {
			focused := m.Focus == focusArea(i+1)
			lists[i] = l.View(focused, m.Views[i].Droppable())
		}
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			m.Input.View(m.Width),
			lipgloss.JoinHorizontal(lipgloss.Top, lists...),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		body,
		statusBar,
		m.help.ShortHelpView(m.helpKeys()),
	)
}

func (m Model) helpKeys() []key.Binding {
	switch {
	case m.Alert != "":
		return m.keys.alertHelp()
	case m.Gesture.State() == dnd.StateDragging:
		return m.keys.dragHelp()
	case m.Focus == focusForm:
		return m.keys.formHelp()
	default:
		return m.keys.listHelp()
	}
}

// alertMessage builds the alert text for a rejected submission.
func alertMessage(err error) string {
	var verr *form.Error
	if !errors.As(err, &verr) {
		return fmt.Sprintf("%s\n\n%v", alertTitle, err)
	}
	msg := alertTitle + "\n"
	for _, p := range verr.Problems {
		msg += fmt.Sprintf("\n  • %s %s", p.Field, p.Reason)
	}
	return msg
}

func renderAlert(msg string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("196")).
		Foreground(lipgloss.Color("196")).
		Bold(true).
		Padding(1, 2).
		Render(msg + "\n\n" + lipgloss.NewStyle().Bold(false).Foreground(lipgloss.Color("241")).Render("press enter to continue"))
}
