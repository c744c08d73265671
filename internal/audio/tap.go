package audio

import (
	"sync/atomic"

	"github.com/faiface/beep"
)

// positionTap wraps a beep.Streamer and counts the frames handed to the
// speaker, so the game clock can follow playback from another goroutine.
type positionTap struct {
	Source beep.Streamer
	frames atomic.Int64
}

func newPositionTap(src beep.Streamer) *positionTap {
	return &positionTap{Source: src}
}

func (t *positionTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.frames.Add(int64(n))
	}
	return n, ok
}

func (t *positionTap) Err() error { return t.Source.Err() }

func (t *positionTap) position() int { return int(t.frames.Load()) }

func (t *positionTap) reset() { t.frames.Store(0) }
