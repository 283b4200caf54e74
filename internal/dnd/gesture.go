package dnd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidTransition is returned when a gesture is asked to do something
// its current state does not allow.
var ErrInvalidTransition = errors.New("invalid drag transition")

// State is the state of a single drag gesture
type State int

const (
	StateIdle      State = iota // No drag in progress
	StateDragging               // Payload is in flight
	StateDropped                // Delivered to a target
	StateCancelled              // Ended without a drop
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Gesture tracks one drag from start to drop or cancel.
type Gesture struct {
	state    State
	source   Draggable
	transfer *DataTransfer
	over     DropTarget
	accepted bool
	target   DropTarget
	logger   *zap.Logger
}

// NewGesture returns an idle gesture. A nil logger disables logging.
func NewGesture(logger *zap.Logger) *Gesture {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gesture{logger: logger.Named("dnd")}
}

// State returns the current state.
func (g *Gesture) State() State { return g.state }

// Payload returns the plain text carried by the gesture.
func (g *Gesture) Payload() string {
	if g.transfer == nil {
		return ""
	}
	return g.transfer.GetData(MediaTypeText)
}

// Hovered returns the target currently dragged over, if any.
func (g *Gesture) Hovered() DropTarget { return g.over }

// Accepted reports whether the hovered target accepted the payload.
func (g *Gesture) Accepted() bool { return g.accepted }

// Target returns the target the payload was dropped on.
func (g *Gesture) Target() DropTarget { return g.target }

// Start begins a drag from src. Only valid while idle.
func (g *Gesture) Start(src Draggable) error {
	if g.state != StateIdle {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, g.state)
	}

	g.transfer = NewDataTransfer()
	src.DragStart(g.transfer)
	g.source = src
	g.state = StateDragging

	g.logger.Debug("drag started", zap.String("payload", g.Payload()))
	return nil
}

// Over moves the gesture onto target, leaving the previous target first.
// It returns whether target accepted the payload.
func (g *Gesture) Over(target DropTarget) (bool, error) {
	if g.state != StateDragging {
		return false, fmt.Errorf("%w: drag over while %s", ErrInvalidTransition, g.state)
	}

	if g.over != nil && g.over != target {
		g.over.DragLeave()
	}
	g.over = target
	g.accepted = target.DragOver(g.transfer)
	return g.accepted, nil
}

// Leave moves the gesture off the current target without entering another.
func (g *Gesture) Leave() error {
	if g.state != StateDragging {
		return fmt.Errorf("%w: drag leave while %s", ErrInvalidTransition, g.state)
	}
	g.leave()
	return nil
}

// Drop delivers the payload to the hovered target if it accepted it.
// Otherwise the gesture is cancelled and the returned target is nil.
func (g *Gesture) Drop() (DropTarget, error) {
	if g.state != StateDragging {
		return nil, fmt.Errorf("%w: drop while %s", ErrInvalidTransition, g.state)
	}

	if g.over == nil || !g.accepted {
		g.leave()
		g.finish(StateCancelled)
		return nil, nil
	}

	target := g.over
	target.Drop(g.transfer)
	g.over = nil
	g.accepted = false
	g.target = target
	g.finish(StateDropped)
	return target, nil
}

// Cancel abandons the gesture.
func (g *Gesture) Cancel() error {
	if g.state != StateDragging {
		return fmt.Errorf("%w: cancel while %s", ErrInvalidTransition, g.state)
	}
	g.leave()
	g.finish(StateCancelled)
	return nil
}

// Reset returns the gesture to idle so a new drag can start.
func (g *Gesture) Reset() {
	if g.state == StateDragging {
		g.leave()
	}
	*g = Gesture{logger: g.logger}
}

func (g *Gesture) leave() {
	if g.over != nil {
		g.over.DragLeave()
	}
	g.over = nil
	g.accepted = false
}

func (g *Gesture) finish(state State) {
	g.state = state
	g.source.DragEnd(g.transfer)
	g.logger.Debug("drag ended",
		zap.String("payload", g.Payload()),
		zap.Stringer("state", state),
	)
}
