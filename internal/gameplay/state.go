// Package gameplay drives a session: the Playing and Transitioning states
// and the per-frame engine tying them to the board and a renderer.
package gameplay

import "github.com/iburimskiy/soundwave/internal/board"

// Schedule is the analysed song as seen by the game loop.
type Schedule interface {
	DataBetween(startFrame, endFrame int) []board.Bubble
	PulseAmountAt(frame int) float64
	FirstSpawnFrame() int
	ScheduledCount() int
}

// Transport is the audio playback clock. Once playing it is the only time
// authority.
type Transport interface {
	SampleRate() float64
	Play()
	Stop()
	CurrentFrame() int
	MaxFrame() int
}

// State advances the session by one frame. A nil next state ends the
// session.
type State interface {
	Update(dt float64, b *board.Board, events []Event) State
}

// Rules are the per-session settings shared by every state.
type Rules struct {
	Difficulty      Difficulty
	LeadInSeconds   float64
	TransitionSpeed float64
}

// NewSession returns the initial state: a wipe leading into play.
func NewSession(s Schedule, t Transport, rules Rules) State {
	return NewTransitioning(NewPlaying(s, t, rules), rules.TransitionSpeed)
}
