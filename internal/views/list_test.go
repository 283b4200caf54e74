package views

import (
	"testing"

	"projboard/internal/dnd"
	"projboard/internal/models"
	"projboard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRenderer remembers every render call.
type captureRenderer struct {
	calls int
	kind  Kind
	last  []models.Project
}

func (r *captureRenderer) Render(kind Kind, projects []models.Project) {
	r.calls++
	r.kind = kind
	r.last = projects
}

func (r *captureRenderer) titles() []string {
	out := []string{}
	for _, p := range r.last {
		out = append(out, p.Title)
	}
	return out
}

type board struct {
	store            *state.ProjectStore
	active, finished *ListView
	ra, rf           *captureRenderer
}

func newBoard() board {
	b := board{store: state.NewProjectStore(nil), ra: &captureRenderer{}, rf: &captureRenderer{}}
	b.active = New(KindActive, b.store, b.ra, nil)
	b.finished = New(KindFinished, b.store, b.rf, nil)
	return b
}

func (b board) find(t *testing.T, title string) models.Project {
	t.Helper()
	for _, p := range b.store.Projects() {
		if p.Title == title {
			return p
		}
	}
	t.Fatalf("no project %q", title)
	return models.Project{}
}

func TestKind(t *testing.T) {
	assert.Equal(t, models.StatusActive, KindActive.Status())
	assert.Equal(t, models.StatusInactive, KindFinished.Status())
	assert.Equal(t, "ACTIVE PROJECTS", KindActive.Title())
	assert.Equal(t, "FINISHED PROJECTS", KindFinished.Title())
	assert.Equal(t, KindFinished, KindFor(models.StatusInactive))

	k, err := ParseKind("inactive")
	require.NoError(t, err)
	assert.Equal(t, KindFinished, k)

	_, err = ParseKind("archived")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestViewsRenderNothingUntilPublish(t *testing.T) {
	b := newBoard()
	assert.Equal(t, 0, b.ra.calls)
	assert.Equal(t, 0, b.rf.calls)
	assert.Empty(t, b.active.Projects())
}

func TestViewsFilterByStatus(t *testing.T) {
	b := newBoard()
	b.store.AddProject("A", "d", 3)
	b.store.AddProject("B", "e", 5)

	assert.Equal(t, []string{"A", "B"}, b.ra.titles())
	assert.Empty(t, b.rf.last)
	assert.Equal(t, 2, b.rf.calls, "every publish re-renders every view")
	assert.Equal(t, KindFinished, b.rf.kind)
}

func TestDropMovesProjectBetweenViews(t *testing.T) {
	b := newBoard()
	b.store.AddProject("A", "d", 3)
	b.store.AddProject("B", "e", 5)
	a := b.find(t, "A")

	g := dnd.NewGesture(nil)
	require.NoError(t, g.Start(NewItem(a, nil)))
	ok, err := g.Over(b.finished)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, b.finished.Droppable())

	target, err := g.Drop()
	require.NoError(t, err)
	assert.Same(t, b.finished, target)
	assert.False(t, b.finished.Droppable())

	assert.Equal(t, []string{"B"}, b.ra.titles())
	assert.Equal(t, []string{"A"}, b.rf.titles())
	assert.Equal(t, models.StatusInactive, b.finished.Projects()[0].Status)
}

func TestDropOnSameViewIsNoChange(t *testing.T) {
	b := newBoard()
	b.store.AddProject("A", "d", 3)
	calls := b.ra.calls

	g := dnd.NewGesture(nil)
	require.NoError(t, g.Start(NewItem(b.find(t, "A"), nil)))
	_, _ = g.Over(b.active)
	_, err := g.Drop()
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, b.ra.titles())
	assert.Equal(t, calls+1, b.ra.calls, "listeners fire even without a change")
}

func TestDragLeaveClearsMark(t *testing.T) {
	b := newBoard()
	b.store.AddProject("A", "d", 3)

	g := dnd.NewGesture(nil)
	require.NoError(t, g.Start(NewItem(b.find(t, "A"), nil)))
	_, _ = g.Over(b.finished)
	_, _ = g.Over(b.active)

	assert.False(t, b.finished.Droppable())
	assert.True(t, b.active.Droppable())
}

func TestDragOverRejectsOtherMediaTypes(t *testing.T) {
	b := newBoard()
	dt := dnd.NewDataTransfer()
	dt.SetData("application/json", `{"id":"x"}`)

	assert.False(t, b.finished.DragOver(dt))
	assert.False(t, b.finished.Droppable())
}

func TestDropUnknownIDRerendersUnchanged(t *testing.T) {
	b := newBoard()
	b.store.AddProject("A", "d", 3)
	before := b.ra.calls

	dt := dnd.NewDataTransfer()
	dt.SetData(dnd.MediaTypeText, "missing")
	b.finished.Drop(dt)

	assert.Equal(t, before+1, b.ra.calls)
	assert.Equal(t, []string{"A"}, b.ra.titles())
	assert.Empty(t, b.rf.last)
}

func TestItemDragStart(t *testing.T) {
	p := models.NewProject("A", "d", 1)
	dt := dnd.NewDataTransfer()
	NewItem(p, nil).DragStart(dt)

	assert.Equal(t, []string{dnd.MediaTypeText}, dt.Types())
	assert.Equal(t, p.ID, dt.GetData(dnd.MediaTypeText))
	assert.Equal(t, dnd.EffectMove, dt.EffectAllowed)
}

func TestRendererFunc(t *testing.T) {
	var got Kind
	var r Renderer = RendererFunc(func(kind Kind, _ []models.Project) { got = kind })
	r.Render(KindFinished, nil)
	assert.Equal(t, KindFinished, got)
}
