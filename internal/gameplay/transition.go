package gameplay

import "github.com/iburimskiy/soundwave/internal/board"

// Transitioning wipes the board with an expanding ripple from the centre,
// then hands over to the next state.
type Transitioning struct {
	next        State
	speed       float64
	initialized bool
}

func NewTransitioning(next State, speed float64) *Transitioning {
	return &Transitioning{next: next, speed: speed}
}

// Next is the state entered once the wipe is done.
func (t *Transitioning) Next() State { return t.next }

func (t *Transitioning) Update(dt float64, b *board.Board, events []Event) State {
	for _, e := range events {
		if e.Kind == EventEscape {
			return nil
		}
	}
	if !t.initialized {
		t.initialized = true
		b.AddTransition(board.NewRipple(b.Center(), t.speed, 0, 0))
	}

	b.Advance(dt)
	if b.IsEmpty() {
		b.Reset()
		return t.next
	}
	return t
}
