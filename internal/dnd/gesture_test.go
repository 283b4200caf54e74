package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	id      string
	ended   int
	mediaTy string
}

func (s *fakeSource) DragStart(dt *DataTransfer) {
	mt := s.mediaTy
	if mt == "" {
		mt = MediaTypeText
	}
	dt.SetData(mt, s.id)
	dt.EffectAllowed = EffectMove
}

func (s *fakeSource) DragEnd(*DataTransfer) { s.ended++ }

type fakeTarget struct {
	droppable bool
	dropped   []string
	leaves    int
}

func (t *fakeTarget) DragOver(dt *DataTransfer) bool {
	if !dt.IsText() {
		return false
	}
	t.droppable = true
	return true
}

func (t *fakeTarget) DragLeave() {
	t.droppable = false
	t.leaves++
}

func (t *fakeTarget) Drop(dt *DataTransfer) {
	t.droppable = false
	t.dropped = append(t.dropped, dt.GetData(MediaTypeText))
}

func TestDataTransfer(t *testing.T) {
	dt := NewDataTransfer()
	assert.False(t, dt.IsText())
	assert.Equal(t, EffectNone, dt.EffectAllowed)

	dt.SetData(MediaTypeText, "one")
	dt.SetData("text/uri-list", "x")
	dt.SetData(MediaTypeText, "two")

	assert.Equal(t, []string{MediaTypeText, "text/uri-list"}, dt.Types())
	assert.Equal(t, "two", dt.GetData(MediaTypeText))
	assert.Equal(t, "", dt.GetData("application/json"))
	assert.True(t, dt.IsText())
}

func TestGestureDrop(t *testing.T) {
	src := &fakeSource{id: "p1"}
	a, b := &fakeTarget{}, &fakeTarget{}
	g := NewGesture(nil)

	require.NoError(t, g.Start(src))
	assert.Equal(t, StateDragging, g.State())
	assert.Equal(t, "p1", g.Payload())

	ok, err := g.Over(a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, a.droppable)

	ok, err = g.Over(b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, a.droppable, "leaving a target clears its mark")
	assert.True(t, b.droppable)

	target, err := g.Drop()
	require.NoError(t, err)
	assert.Same(t, b, target)
	assert.Same(t, b, g.Target())
	assert.Equal(t, StateDropped, g.State())
	assert.Equal(t, []string{"p1"}, b.dropped)
	assert.Empty(t, a.dropped)
	assert.False(t, b.droppable)
	assert.Equal(t, 1, src.ended)
}

func TestGestureOverSameTargetDoesNotLeave(t *testing.T) {
	g := NewGesture(nil)
	a := &fakeTarget{}
	require.NoError(t, g.Start(&fakeSource{id: "p1"}))

	_, _ = g.Over(a)
	_, _ = g.Over(a)
	assert.Equal(t, 0, a.leaves)
	assert.True(t, a.droppable)
}

func TestGestureRejectsNonTextPayload(t *testing.T) {
	src := &fakeSource{id: "p1", mediaTy: "application/json"}
	a := &fakeTarget{}
	g := NewGesture(nil)

	require.NoError(t, g.Start(src))
	ok, err := g.Over(a)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, a.droppable)

	target, err := g.Drop()
	require.NoError(t, err)
	assert.Nil(t, target)
	assert.Equal(t, StateCancelled, g.State())
	assert.Empty(t, a.dropped)
	assert.Equal(t, 1, src.ended)
}

func TestGestureDropWithoutTargetCancels(t *testing.T) {
	src := &fakeSource{id: "p1"}
	g := NewGesture(nil)
	require.NoError(t, g.Start(src))

	target, err := g.Drop()
	require.NoError(t, err)
	assert.Nil(t, target)
	assert.Equal(t, StateCancelled, g.State())
}

func TestGestureCancel(t *testing.T) {
	src := &fakeSource{id: "p1"}
	a := &fakeTarget{}
	g := NewGesture(nil)
	require.NoError(t, g.Start(src))
	_, _ = g.Over(a)

	require.NoError(t, g.Cancel())
	assert.Equal(t, StateCancelled, g.State())
	assert.False(t, a.droppable)
	assert.Empty(t, a.dropped)
	assert.Equal(t, 1, src.ended)
}

func TestGestureLeave(t *testing.T) {
	a := &fakeTarget{}
	g := NewGesture(nil)
	require.NoError(t, g.Start(&fakeSource{id: "p1"}))
	_, _ = g.Over(a)

	require.NoError(t, g.Leave())
	assert.False(t, a.droppable)
	assert.Nil(t, g.Hovered())
	assert.False(t, g.Accepted())
}

func TestGestureInvalidTransitions(t *testing.T) {
	g := NewGesture(nil)

	_, err := g.Over(&fakeTarget{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = g.Drop()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, g.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, g.Leave(), ErrInvalidTransition)

	require.NoError(t, g.Start(&fakeSource{id: "p1"}))
	assert.ErrorIs(t, g.Start(&fakeSource{id: "p2"}), ErrInvalidTransition)

	require.NoError(t, g.Cancel())
	assert.ErrorIs(t, g.Start(&fakeSource{id: "p2"}), ErrInvalidTransition)

	g.Reset()
	assert.Equal(t, StateIdle, g.State())
	assert.Equal(t, "", g.Payload())
	require.NoError(t, g.Start(&fakeSource{id: "p2"}))
	assert.Equal(t, "p2", g.Payload())
}

func TestGestureResetWhileDraggingLeavesTarget(t *testing.T) {
	a := &fakeTarget{}
	g := NewGesture(nil)
	require.NoError(t, g.Start(&fakeSource{id: "p1"}))
	_, _ = g.Over(a)

	g.Reset()
	assert.False(t, a.droppable)
	assert.Equal(t, StateIdle, g.State())
}
