// Package views binds a status-filtered list to the project store and makes
// it a drop target for project drags.
package views

import (
	"fmt"
	"strings"

	"projboard/internal/dnd"
	"projboard/internal/models"
	"projboard/internal/state"

	"go.uber.org/zap"
)

// Kind identifies which of the two lists a view is
type Kind string

const (
	KindActive   Kind = "active"
	KindFinished Kind = "finished"
)

// Status returns the project status shown in a list of this kind.
func (k Kind) Status() models.ProjectStatus {
	if k == KindFinished {
		return models.StatusInactive
	}
	return models.StatusActive
}

// Title returns the heading shown above the list.
func (k Kind) Title() string {
	return fmt.Sprintf("%s PROJECTS", strings.ToUpper(string(k)))
}

// ParseKind parses "active" or "finished".
func ParseKind(s string) (Kind, error) {
	status, err := models.ParseStatus(s)
	if err != nil {
		return "", err
	}
	return KindFor(status), nil
}

// KindFor returns the kind of list a project with status is shown in.
func KindFor(status models.ProjectStatus) Kind {
	if status == models.StatusInactive {
		return KindFinished
	}
	return KindActive
}

// Renderer draws the projects for one list. Implementations replace
// whatever they showed before.
type Renderer interface {
	Render(kind Kind, projects []models.Project)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(kind Kind, projects []models.Project)

// Render calls f.
func (f RendererFunc) Render(kind Kind, projects []models.Project) { f(kind, projects) }

// Mover is the part of the store a drop target needs.
type Mover interface {
	MoveProject(id string, status models.ProjectStatus)
}

// ListView shows the projects with one status and accepts project drops.
type ListView struct {
	kind      Kind
	mover     Mover
	renderer  Renderer
	projects  []models.Project
	droppable bool
	logger    *zap.Logger
}

var _ dnd.DropTarget = (*ListView)(nil)

// New creates a view of the given kind and subscribes it to store.
// The view renders nothing until the store next publishes.
func New(kind Kind, store *state.ProjectStore, renderer Renderer, logger *zap.Logger) *ListView {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &ListView{
		kind:     kind,
		mover:    store,
		renderer: renderer,
		logger:   logger.Named("view").With(zap.String("list", string(kind))),
	}
	store.AddListener(v.refresh)
	return v
}

// Kind returns the kind of the view.
func (v *ListView) Kind() Kind { return v.kind }

// Title returns the heading of the view.
func (v *ListView) Title() string { return v.kind.Title() }

// Projects returns the projects currently shown.
func (v *ListView) Projects() []models.Project {
	out := make([]models.Project, len(v.projects))
	copy(out, v.projects)
	return out
}

// Droppable reports whether a drag is over the view and was accepted.
func (v *ListView) Droppable() bool { return v.droppable }

// refresh rebuilds the visible subset from a store snapshot.
func (v *ListView) refresh(snapshot []models.Project) {
	status := v.kind.Status()
	visible := make([]models.Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == status {
			visible = append(visible, p)
		}
	}
	v.projects = visible

	if v.renderer != nil {
		v.renderer.Render(v.kind, v.Projects())
	}
}

// DragOver accepts plain text payloads and marks the view droppable.
func (v *ListView) DragOver(dt *dnd.DataTransfer) bool {
	if !dt.IsText() {
		return false
	}
	v.droppable = true
	return true
}

// DragLeave clears the droppable mark.
func (v *ListView) DragLeave() {
	v.droppable = false
}

// Drop moves the carried project into this view's status.
func (v *ListView) Drop(dt *dnd.DataTransfer) {
	v.droppable = false
	id := dt.GetData(dnd.MediaTypeText)
	v.logger.Debug("project dropped", zap.String("id", id))
	v.mover.MoveProject(id, v.kind.Status())
}

// Item wraps a project as a drag source.
type Item struct {
	Project models.Project
	logger  *zap.Logger
}

var _ dnd.Draggable = Item{}

// NewItem returns a draggable for p.
func NewItem(p models.Project, logger *zap.Logger) Item {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Item{Project: p, logger: logger}
}

// DragStart puts the project id on the transfer as plain text.
func (i Item) DragStart(dt *dnd.DataTransfer) {
	dt.SetData(dnd.MediaTypeText, i.Project.ID)
	dt.EffectAllowed = dnd.EffectMove
}

// DragEnd only logs; the source list learns about moves from the store.
func (i Item) DragEnd(dt *dnd.DataTransfer) {
	i.logger.Debug("drag end", zap.String("id", dt.GetData(dnd.MediaTypeText)))
}
