package script

import (
	"fmt"

	"projboard/internal/dnd"
	"projboard/internal/form"
	"projboard/internal/models"
	"projboard/internal/state"
	"projboard/internal/util"
	"projboard/internal/views"

	"go.uber.org/zap"
)

// Runner applies commands to a store through the same list views and drag
// protocol the board uses.
type Runner struct {
	store     *state.ProjectStore
	validator *form.Validator
	views     map[views.Kind]*views.ListView
	logger    *zap.Logger
}

// NewRunner returns a runner. lists must contain a view of each kind.
func NewRunner(store *state.ProjectStore, validator *form.Validator, lists []*views.ListView, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	byKind := make(map[views.Kind]*views.ListView, len(lists))
	for _, l := range lists {
		byKind[l.Kind()] = l
	}
	return &Runner{
		store:     store,
		validator: validator,
		views:     byKind,
		logger:    logger.Named("script"),
	}
}

// Run executes cmds in order and stops at the first failure.
func (r *Runner) Run(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.apply(cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

func (r *Runner) apply(cmd Command) error {
	switch cmd.Op {
	case OpAdd:
		in, err := r.validator.Validate(cmd.Fields)
		if err != nil {
			r.logger.Warn("add rejected", zap.Int("line", cmd.Line), zap.Error(err))
			return err
		}
		r.store.AddProject(in.Title, in.Description, in.People)
		return nil

	case OpMove:
		p, err := r.resolve(cmd.Ref)
		if err != nil {
			return err
		}
		target, ok := r.views[cmd.Target]
		if !ok {
			return fmt.Errorf("no %s list", cmd.Target)
		}
		return r.drag(p, target)

	default:
		return fmt.Errorf("%w: unknown operation %q", ErrSyntax, cmd.Op)
	}
}

// drag moves p onto target as a complete drag gesture.
func (r *Runner) drag(p models.Project, target *views.ListView) error {
	g := dnd.NewGesture(r.logger)
	if err := g.Start(views.NewItem(p, r.logger)); err != nil {
		return err
	}
	accepted, err := g.Over(target)
	if err != nil {
		return err
	}
	if !accepted {
		return g.Cancel()
	}
	_, err = g.Drop()
	return err
}

// resolve finds a project by id, or by title when ref does not look like an id.
func (r *Runner) resolve(ref string) (models.Project, error) {
	projects := r.store.Projects()

	if util.IsUUID(ref) {
		for _, p := range projects {
			if p.ID == ref {
				return p, nil
			}
		}
		// unknown ids still go through the store, which ignores them
		return models.Project{ID: ref}, nil
	}

	var found []models.Project
	for _, p := range projects {
		if p.Title == ref {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return models.Project{}, fmt.Errorf("%w: %q", models.ErrProjectNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return models.Project{}, fmt.Errorf("%w: %q matches %d projects", models.ErrAmbiguousProject, ref, len(found))
	}
}
