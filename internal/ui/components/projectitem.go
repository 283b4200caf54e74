package components

import (
	"fmt"

	"projboard/internal/models"
	"projboard/internal/util"
)

// ProjectItem represents a project in a list
type ProjectItem struct {
	Project models.Project
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.Project.Title
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	return i.Project.Title
}

// Description returns the headcount and description for the project item
func (i ProjectItem) Description() string {
	return fmt.Sprintf("%s - %s", util.PeopleText(i.Project.People), i.Project.Description)
}
