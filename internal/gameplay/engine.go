package gameplay

import "github.com/iburimskiy/soundwave/internal/board"

// Renderer is everything the engine needs from a window: drawing, the
// frame clock and an input snapshot.
type Renderer interface {
	board.Canvas
	FrameDelta() float64
	PollEvents() []Event
	ShouldTerminate() bool
}

// Engine is the single-threaded frame driver. It is the only writer of the
// board.
type Engine struct {
	state State
	board *board.Board
	done  bool
}

func NewEngine(initial State, b *board.Board) *Engine {
	return &Engine{state: initial, board: b}
}

func (e *Engine) Board() *board.Board { return e.board }

// State is the state the next frame will update.
func (e *Engine) State() State { return e.state }

func (e *Engine) Done() bool { return e.done }

// Frame runs one delta, poll, update and render cycle. It reports whether
// the session continues.
func (e *Engine) Frame(r Renderer) bool {
	if e.done {
		return false
	}
	dt := r.FrameDelta()
	events := r.PollEvents()
	next := e.state.Update(dt, e.board, events)
	e.board.Render(r)
	if next == nil || r.ShouldTerminate() {
		e.done = true
		return false
	}
	e.state = next
	return true
}

// Run loops frames until the session ends. It is the headless driver;
// under ebiten the game calls Frame once per tick instead.
func (e *Engine) Run(r Renderer) {
	for e.Frame(r) {
	}
}
