package state

import (
	"projboard/internal/models"

	"go.uber.org/zap"
)

// ProjectStore owns the ordered list of projects for one running board.
// Create exactly one per application and share it.
type ProjectStore struct {
	registry[models.Project]

	projects []models.Project
	logger   *zap.Logger
}

// NewProjectStore creates an empty store. A nil logger disables logging.
func NewProjectStore(logger *zap.Logger) *ProjectStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectStore{logger: logger.Named("store")}
}

// AddListener registers fn to be called with a snapshot after every change.
// Listeners cannot be removed and receive nothing until the next change.
func (s *ProjectStore) AddListener(fn Listener[models.Project]) {
	s.add(fn)
}

// AddProject appends a new active project and notifies listeners.
// Inputs are expected to be validated already.
func (s *ProjectStore) AddProject(title, description string, people int) {
	p := models.NewProject(title, description, people)
	s.projects = append(s.projects, p)

	s.logger.Info("project added",
		zap.String("id", p.ID),
		zap.String("title", p.Title),
		zap.Int("people", p.People),
	)

	s.publish(s.projects)
}

// MoveProject sets the status of the project with the given id. Listeners
// are notified whether or not anything changed, including when id is unknown.
func (s *ProjectStore) MoveProject(id string, status models.ProjectStatus) {
	idx := s.indexOf(id)
	switch {
	case idx < 0:
		s.logger.Debug("move ignored, project not found", zap.String("id", id))
	case s.projects[idx].Status != status:
		s.logger.Info("project moved",
			zap.String("id", id),
			zap.Stringer("from", s.projects[idx].Status),
			zap.Stringer("to", status),
		)
		s.projects[idx].Status = status
	}

	s.publish(s.projects)
}

// Projects returns a snapshot of every project in creation order.
func (s *ProjectStore) Projects() []models.Project {
	return clone(s.projects)
}

// Len returns the number of projects in the store.
func (s *ProjectStore) Len() int {
	return len(s.projects)
}

func (s *ProjectStore) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
