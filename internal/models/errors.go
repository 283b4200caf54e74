package models

import (
	"errors"
)

// Project-related errors
var (
	// ErrProjectNotFound is returned when a project cannot be resolved by id or title
	ErrProjectNotFound = errors.New("project not found")

	// ErrAmbiguousProject is returned when a title matches more than one project
	ErrAmbiguousProject = errors.New("project title is ambiguous")

	// ErrInvalidStatus is returned when a status name is not recognised
	ErrInvalidStatus = errors.New("invalid project status")
)

// Form-related errors
var (
	// ErrValidation is returned when submitted form fields fail validation
	ErrValidation = errors.New("validation failed")
)
