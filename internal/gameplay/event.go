package gameplay

import "github.com/iburimskiy/soundwave/internal/geom"

type EventKind int

const (
	EventEscape EventKind = iota
	EventPointerMove
	EventKey1
	EventKey2
	EventKey3
	EventKey4
	EventKey5
	EventKey6
	EventKey7
	EventKey8
	EventMouseButton1
	EventMouseButton2
	EventMouseButton3
)

// Event is one input observation of a frame. Pos is the pointer position in
// board units.
type Event struct {
	Kind EventKind
	Pos  geom.Vec2
}

// Pops reports whether the event is a pop attempt.
func (e Event) Pops() bool {
	return e.Kind >= EventKey1 && e.Kind <= EventMouseButton3
}
