package components

import (
	"projboard/internal/models"
	"projboard/internal/views"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))

	focusedBorderColor   = lipgloss.Color("39")
	droppableBorderColor = lipgloss.Color("205")
)

// ProjectListModel renders one status list of projects. It is the
// views.Renderer for that list, so the store refreshes it directly.
type ProjectListModel struct {
	List list.Model
	Kind views.Kind
}

var _ views.Renderer = (*ProjectListModel)(nil)

// NewProjectListModel creates a new project list model
func NewProjectListModel(kind views.Kind, width, height int) *ProjectListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = kind.Title()
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(false)
	listModel.SetStatusBarItemName("project", "projects")
	listModel.KeyMap.Quit.SetEnabled(false)
	listModel.KeyMap.ForceQuit.SetEnabled(false)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return &ProjectListModel{
		List: listModel,
		Kind: kind,
	}
}

// Render replaces the list items with projects, keeping the cursor in range
func (m *ProjectListModel) Render(_ views.Kind, projects []models.Project) {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = ProjectItem{Project: p}
	}

	idx := m.List.Index()
	m.List.SetItems(items)
	if idx >= len(items) && len(items) > 0 {
		m.List.Select(len(items) - 1)
	}
}

// Selected returns the project under the cursor
func (m *ProjectListModel) Selected() (models.Project, bool) {
	item, ok := m.List.SelectedItem().(ProjectItem)
	if !ok {
		return models.Project{}, false
	}
	return item.Project, true
}

// Len returns the number of projects shown
func (m *ProjectListModel) Len() int {
	return len(m.List.Items())
}

// SetSize sets the inner size of the list
func (m *ProjectListModel) SetSize(width, height int) {
	m.List.SetSize(width, height)
}

// Update handles project list updates
func (m *ProjectListModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return cmd
}

// View renders the project list inside a border. A droppable list is
// highlighted over a focused one.
func (m *ProjectListModel) View(focused, droppable bool) string {
	style := borderStyle
	switch {
	case droppable:
		style = style.BorderForeground(droppableBorderColor)
	case focused:
		style = style.BorderForeground(focusedBorderColor)
	}

	content := m.List.View()
	if m.Len() == 0 {
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.List.Styles.Title.Render(m.List.Title),
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginLeft(2).Render("No projects"),
		)
		content = lipgloss.NewStyle().Width(m.List.Width()).Height(m.List.Height()).Render(content)
	}
	return style.Render(content)
}
