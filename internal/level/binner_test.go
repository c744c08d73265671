package level

import (
	"math/rand/v2"
	"sort"
	"testing"
)

func TestClassifyQuantiles(t *testing.T) {
	var notes []Note
	for b := 0; b < 8; b++ {
		notes = append(notes, Note{Bin: b})
	}
	Classify(notes)
	want := []int{0, 0, 1, 2, 3, 4, 5, 6}
	for i, n := range notes {
		if n.Bin != want[i] {
			t.Errorf("bin %d: tune %d, want %d", i, n.Bin, want[i])
		}
	}
}

func TestClassifySingleBin(t *testing.T) {
	notes := []Note{{Bin: 42}, {Bin: 42}, {Bin: 42}}
	Classify(notes)
	for _, n := range notes {
		if n.Bin != 0 {
			t.Fatalf("identical bins should share tune 0, got %d", n.Bin)
		}
	}
}

func TestClassifyFewDistinctBins(t *testing.T) {
	notes := []Note{{Bin: 90}, {Bin: 3}, {Bin: 50}, {Bin: 10}}
	if c := quantileCutoffs(notes, 90); len(c) > 8 {
		t.Fatalf("got %d cutoffs %v, want at most 8", len(c), c)
	}
	Classify(notes)
	want := []int{3, 0, 2, 1}
	for i, n := range notes {
		if n.Bin != want[i] {
			t.Errorf("note %d: tune %d, want %d", i, n.Bin, want[i])
		}
	}
}

func TestClassifySharedBinsRankLow(t *testing.T) {
	notes := []Note{{Bin: 40}, {Bin: 40}, {Bin: 41}}
	Classify(notes)
	want := []int{0, 0, 1}
	for i, n := range notes {
		if n.Bin != want[i] {
			t.Errorf("note %d: tune %d, want %d", i, n.Bin, want[i])
		}
	}
}

func TestClassifyRangeAndMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.IntN(400)
		notes := make([]Note, n)
		raw := make([]int, n)
		for i := range notes {
			raw[i] = r.IntN(1 + r.IntN(600))
			notes[i].Bin = raw[i]
		}
		maxBin := 0
		for _, b := range raw {
			maxBin = max(maxBin, b)
		}
		if c := quantileCutoffs(notes, maxBin); len(c) > 8 {
			t.Fatalf("%d notes: %d cutoffs, want at most 8", n, len(c))
		}
		Classify(notes)

		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return raw[idx[a]] < raw[idx[b]] })
		prev := 0
		for _, i := range idx {
			tune := notes[i].Bin
			if tune < 0 || tune > 7 {
				t.Fatalf("tune %d out of range", tune)
			}
			if tune < prev {
				t.Fatalf("higher raw bin %d got lower tune %d < %d", raw[i], tune, prev)
			}
			prev = tune
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	Classify(nil)
}
