package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus int

const (
	StatusActive   ProjectStatus = iota // Project is in progress
	StatusInactive                      // Project is finished
)

// String returns the name of the list a project with this status is shown in
func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "finished"
	default:
		return fmt.Sprintf("ProjectStatus(%d)", int(s))
	}
}

// ParseStatus parses a status name. "inactive" is accepted as an alias of "finished".
func ParseStatus(s string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, nil
	case "finished", "inactive":
		return StatusInactive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Project represents a single entry on the board
type Project struct {
	ID          string        `json:"id"`          // Opaque identifier, unique per session
	Title       string        `json:"title"`       // Short name
	Description string        `json:"description"` // Free text
	People      int           `json:"people"`      // Number of people assigned
	Status      ProjectStatus `json:"status"`      // Only field that changes after creation
}

// NewProject creates a new active project with a freshly generated identifier
func NewProject(title, description string, people int) Project {
	return Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
	}
}
