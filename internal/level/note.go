// Package level turns a mono sample buffer into a schedule of bubbles: FFT
// onset detection, onset thinning, tune classification and trajectory
// planning.
package level

// Note is one analysis window's dominant spectral event.
type Note struct {
	Bin       int     // dominant spectral index; the tune after Classify
	Amplitude float64 // power of the dominant index
	Window    int     // analysis window index
	Delta     float64 // onset strength against the previous window
}

// Time is the note's offset in seconds at the given analysis rate.
func (n Note) Time(rate float64) float64 {
	return float64(n.Window) / rate
}
