package level

import "github.com/iburimskiy/soundwave/internal/board"

// Classify replaces every note's raw spectral index with its tune, the rank
// of the 1/8 quantile of the index distribution it falls in. Ranking is
// monotonic: a higher index never gets a lower tune.
func Classify(notes []Note) {
	if len(notes) == 0 {
		return
	}
	maxBin := 0
	for _, n := range notes {
		if n.Bin > maxBin {
			maxBin = n.Bin
		}
	}
	cutoffs := quantileCutoffs(notes, maxBin)
	for i := range notes {
		notes[i].Bin = tuneFor(notes[i].Bin, cutoffs)
	}
}

// quantileCutoffs walks the index histogram and records an index each time
// the running count reaches the next 1/8 share of the notes. At most
// TuneCount cutoffs are recorded.
func quantileCutoffs(notes []Note, maxBin int) []int {
	counts := make([]int, maxBin+1)
	for _, n := range notes {
		counts[n.Bin]++
	}

	share := float64(len(notes)) / board.TuneCount
	cutoffs := make([]int, 0, board.TuneCount)
	total := 0
	for i, c := range counts {
		total += c
		if float64(total) >= float64(len(cutoffs))*share {
			cutoffs = append(cutoffs, i)
			if len(cutoffs) == board.TuneCount {
				break
			}
		}
	}
	return cutoffs
}

func tuneFor(bin int, cutoffs []int) int {
	tune := 0
	for i, c := range cutoffs {
		if bin <= c {
			break
		}
		tune = i
	}
	return tune
}
