// Package dnd models a drag-and-drop gesture: a payload carried from a
// draggable source to a drop target, and the state machine of one gesture.
package dnd

// MediaTypeText is the only payload type drop targets accept.
const MediaTypeText = "text/plain"

// Effect describes which operation the source allows.
type Effect string

const (
	EffectNone Effect = "none"
	EffectMove Effect = "move"
)

// DataTransfer carries data from drag start to drop. Types keeps the order
// in which data was set.
type DataTransfer struct {
	EffectAllowed Effect

	types []string
	data  map[string]string
}

// NewDataTransfer returns an empty transfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{
		EffectAllowed: EffectNone,
		data:          make(map[string]string),
	}
}

// SetData stores value under mediaType.
func (d *DataTransfer) SetData(mediaType, value string) {
	if _, ok := d.data[mediaType]; !ok {
		d.types = append(d.types, mediaType)
	}
	d.data[mediaType] = value
}

// GetData returns the value stored under mediaType, or "" if there is none.
func (d *DataTransfer) GetData(mediaType string) string {
	return d.data[mediaType]
}

// Types returns the declared media types in the order they were set.
func (d *DataTransfer) Types() []string {
	out := make([]string, len(d.types))
	copy(out, d.types)
	return out
}

// IsText reports whether the first declared type is plain text.
func (d *DataTransfer) IsText() bool {
	return len(d.types) > 0 && d.types[0] == MediaTypeText
}

// Draggable is implemented by anything a gesture can start from.
type Draggable interface {
	DragStart(dt *DataTransfer)
	DragEnd(dt *DataTransfer)
}

// DropTarget is implemented by anything a gesture can end on.
// DragOver reports whether the target accepts the payload.
type DropTarget interface {
	DragOver(dt *DataTransfer) bool
	DragLeave()
	Drop(dt *DataTransfer)
}
