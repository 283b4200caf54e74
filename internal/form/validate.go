// Package form turns raw project form fields into typed input.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"projboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// Fields holds the raw text of the project form
type Fields struct {
	Title       string
	Description string
	People      string
}

// Input is a validated project form
type Input struct {
	Title       string
	Description string
	People      int
}

// Rules bounds what the form accepts
type Rules struct {
	PeopleMin      int
	PeopleMax      int
	DescriptionMax int
}

// DefaultRules returns the limits used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		PeopleMin:      1,
		PeopleMax:      5,
		DescriptionMax: 300,
	}
}

// FieldError describes why one field was rejected
type FieldError struct {
	Field  string
	Reason string
}

// Error lists every rejected field. It matches models.ErrValidation.
type Error struct {
	Problems []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s %s", p.Field, p.Reason))
	}
	return fmt.Sprintf("%s: %s", models.ErrValidation, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error { return models.ErrValidation }

// Validator checks project form fields against a set of rules.
type Validator struct {
	rules    Rules
	validate *validator.Validate
}

// New returns a validator. Zero fields in rules fall back to the defaults.
func New(rules Rules) *Validator {
	def := DefaultRules()
	if rules.PeopleMin <= 0 {
		rules.PeopleMin = def.PeopleMin
	}
	if rules.PeopleMax <= 0 {
		rules.PeopleMax = def.PeopleMax
	}
	if rules.DescriptionMax <= 0 {
		rules.DescriptionMax = def.DescriptionMax
	}
	return &Validator{
		rules:    rules,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Rules returns the rules in effect.
func (v *Validator) Rules() Rules { return v.rules }

// Validate trims the text fields and checks every field. On failure the
// returned error is an *Error listing each problem.
func (v *Validator) Validate(f Fields) (Input, error) {
	in := Input{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
	}
	var problems []FieldError

	if err := v.validate.Var(in.Title, "required"); err != nil {
		problems = append(problems, FieldError{Field: "title", Reason: "is required"})
	}

	descTag := fmt.Sprintf("required,max=%d", v.rules.DescriptionMax)
	if err := v.validate.Var(in.Description, descTag); err != nil {
		problems = append(problems, FieldError{Field: "description", Reason: reason(err, v.rules.DescriptionMax)})
	}

	people, err := strconv.Atoi(strings.TrimSpace(f.People))
	if err != nil {
		problems = append(problems, FieldError{Field: "people", Reason: "must be a whole number"})
	} else {
		peopleTag := fmt.Sprintf("gte=%d,lte=%d", v.rules.PeopleMin, v.rules.PeopleMax)
		if err := v.validate.Var(people, peopleTag); err != nil {
			problems = append(problems, FieldError{
				Field:  "people",
				Reason: fmt.Sprintf("must be between %d and %d", v.rules.PeopleMin, v.rules.PeopleMax),
			})
		}
		in.People = people
	}

	if len(problems) > 0 {
		return Input{}, &Error{Problems: problems}
	}
	return in, nil
}

// reason turns a validator failure on a text field into a short message.
func reason(err error, max int) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		switch errs[0].Tag() {
		case "required":
			return "is required"
		case "max":
			return fmt.Sprintf("must be at most %d characters", max)
		}
	}
	return "is invalid"
}
