package level

import "math"

const (
	minSpacing   = 0.25 // seconds between accepted onsets
	quietFloor   = 0.1
	quietDecay   = 0.2
	energyCutoff = 0.5
	maxSilence   = 5.0 // seconds before a pending group is flushed anyway
)

// FilterNotes thins a dense per-window note stream into sparse onsets.
// Notes are grouped until enough onset energy has built up since the last
// accepted onset; the loudest of the group is accepted.
func FilterNotes(notes []Note, rate float64) []Note {
	var accepted []Note
	var pending []Note
	pendingDelta := 0.0
	lastTime := 0.0

	for _, n := range notes {
		gap := n.Time(rate) - lastTime

		// Quiet notes are ignored harder right after a beat.
		if n.Amplitude < math.Min(quietFloor, quietDecay/gap) {
			continue
		}
		// The spacing floor also tightens with the number of onsets
		// accepted so far.
		if gap < minSpacing || gap < 1/float64(len(accepted)+1) {
			continue
		}

		pendingDelta += n.Delta
		pending = append(pending, n)
		if pendingDelta < math.Min(energyCutoff, 1/gap) && gap < maxSilence {
			continue
		}

		loudest := pending[0]
		for _, p := range pending[1:] {
			if p.Amplitude > loudest.Amplitude {
				loudest = p
			}
		}
		accepted = append(accepted, loudest)
		lastTime = loudest.Time(rate)
		pendingDelta = 0
		pending = pending[:0]
	}
	return accepted
}
