package level

import (
	"math"

	"github.com/iburimskiy/soundwave/internal/board"
	"github.com/iburimskiy/soundwave/internal/geom"
)

const (
	pulseDecay = 0.1
)

type Options struct {
	TargetRate     float64
	TravelRatio    float64
	DistanceMargin float64
	BoardSize      geom.Vec2
}

// Stats summarises a finished analysis.
type Stats struct {
	WindowSize int
	Rate       float64
	Windows    int
	Onsets     int
	Scheduled  int
	Pacing     Pacing
}

// Level is the read-only bubble schedule of one song.
type Level struct {
	windowSize int
	bubbles    []WaitingBubble
	stats      Stats
}

// Build runs the whole analysis pipeline over a mono sample buffer.
func Build(samples []float64, sampleRate float64, opts Options) *Level {
	an := NewAnalyzer(sampleRate, opts.TargetRate)
	rate := an.Rate()

	raw := an.Analyze(samples)
	pacing := PacingFor(raw, rate)
	onsets := FilterNotes(raw, rate)
	Classify(onsets)

	sched := Scheduler{
		Size:        opts.BoardSize,
		Rate:        rate,
		Pacing:      pacing,
		TravelRatio: opts.TravelRatio,
		Margin:      opts.DistanceMargin,
	}
	bubbles := sched.Schedule(onsets)

	return &Level{
		windowSize: an.WindowSize(),
		bubbles:    bubbles,
		stats: Stats{
			WindowSize: an.WindowSize(),
			Rate:       rate,
			Windows:    len(raw),
			Onsets:     len(onsets),
			Scheduled:  len(bubbles),
			Pacing:     pacing,
		},
	}
}

func (l *Level) Stats() Stats { return l.stats }

// Waiting returns the scheduled bubbles in onset order. Callers must not
// modify the result.
func (l *Level) Waiting() []WaitingBubble { return l.bubbles }

// DataBetween returns copies of the bubbles spawning in the windows
// covering [startFrame, endFrame).
func (l *Level) DataBetween(startFrame, endFrame int) []board.Bubble {
	start := startFrame / l.windowSize
	end := endFrame / l.windowSize
	var out []board.Bubble
	for _, w := range l.bubbles {
		if w.SpawnIndex >= start && w.SpawnIndex < end {
			out = append(out, w.Bubble)
		}
	}
	return out
}

// PulseAmountAt echoes the loudness of the scheduled bubble nearest to
// frame, fading with the distance in windows.
func (l *Level) PulseAmountAt(frame int) float64 {
	if len(l.bubbles) == 0 {
		return 0
	}
	index := frame / l.windowSize
	closest := l.bubbles[0]
	best := absInt(index - closest.SpawnIndex)
	for _, w := range l.bubbles[1:] {
		if d := absInt(index - w.SpawnIndex); d < best {
			closest, best = w, d
		}
	}
	return math.Min(1, closest.Amplitude) / (1 + pulseDecay*float64(best))
}

// FirstSpawnFrame is the audio frame at which the earliest bubble appears,
// or 0 when nothing is scheduled.
func (l *Level) FirstSpawnFrame() int {
	if len(l.bubbles) == 0 {
		return 0
	}
	first := l.bubbles[0].SpawnIndex
	for _, w := range l.bubbles[1:] {
		if w.SpawnIndex < first {
			first = w.SpawnIndex
		}
	}
	return first * l.windowSize
}

func (l *Level) ScheduledCount() int { return len(l.bubbles) }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
