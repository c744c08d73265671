package level

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/soundwave/internal/board"
	"github.com/iburimskiy/soundwave/internal/geom"
)

const (
	bubbleRadius = 1.0
	edgeInset    = 1.0
	noteSpeedMul = 3.0
	// The first onset may use the whole board.
	startTime = -100.0
)

// Pacing holds the song-wide speed constants derived from its onset energy.
type Pacing struct {
	NoteSpeed   float64 // bubble travel speed
	RippleSpeed float64 // expansion speed of pop ripples
	AppearSpeed float64 // drift rate of the spawn direction
}

// PacingFor derives the pacing from every analysed window (before
// filtering): the average onset energy per second sets all three speeds.
func PacingFor(notes []Note, rate float64) Pacing {
	duration := float64(len(notes)) / rate
	if duration <= 0 {
		return Pacing{}
	}
	total := 0.0
	for _, n := range notes {
		total += n.Delta
	}
	avg := total / duration
	return Pacing{
		NoteSpeed:   noteSpeedMul * avg,
		RippleSpeed: avg * avg,
		AppearSpeed: avg,
	}
}

// WaitingBubble is a scheduled bubble that has not entered the board yet.
type WaitingBubble struct {
	SpawnIndex int          // analysis window at which it appears
	Bubble     board.Bubble // template; copied onto the board
	Amplitude  float64      // normalised loudness of the originating onset
	PopTime    float64      // seconds
}

type Scheduler struct {
	Size        geom.Vec2
	Rate        float64
	Pacing      Pacing
	TravelRatio float64
	Margin      float64
}

// Seed is derived from the onset count and the appear speed so that the
// same song always gets the same layout.
func (s *Scheduler) Seed(noteCount int) uint64 {
	return uint64(int64(noteCount) * int64(math.Floor(s.Pacing.AppearSpeed)))
}

// Schedule plans a trajectory for every classified onset. Consecutive pop
// positions are kept within reach of the previous pop's ripple; onsets
// that come too soon for any movement are dropped.
func (s *Scheduler) Schedule(notes []Note) []WaitingBubble {
	seed := s.Seed(len(notes))
	r := rand.New(rand.NewPCG(seed, seed))

	center := s.Size.Scale(0.5)
	spawnRadius := s.Size.Norm() + 1
	lastPos := center
	lastTime := startTime
	appearDir := randDir(r)

	var out []WaitingBubble
	for _, n := range notes {
		popTime := n.Time(s.Rate)
		popPos := geom.V(
			edgeInset+r.Float64()*(s.Size.X-2*edgeInset),
			edgeInset+r.Float64()*(s.Size.Y-2*edgeInset),
		)

		dt := popTime - lastTime
		allowed := s.Pacing.RippleSpeed*dt*s.TravelRatio - s.Margin
		if allowed <= 0 {
			continue
		}
		if diff := popPos.Sub(lastPos); diff.Norm() > allowed {
			popPos = lastPos.Add(diff.Normalized().Scale(allowed))
		}

		// Bounded random walk of the spawn direction on the unit circle.
		if next := appearDir.Add(randDir(r).Scale(dt * s.Pacing.AppearSpeed)); next.Norm() > 0 {
			appearDir = next.Normalized()
		}
		appearPos := center.Add(appearDir.Scale(spawnRadius))
		vel := popPos.Sub(appearPos).Normalized().Scale(s.Pacing.NoteSpeed)
		appearTime := popTime - appearPos.Dist(popPos)/s.Pacing.NoteSpeed

		out = append(out, WaitingBubble{
			SpawnIndex: int(appearTime * s.Rate),
			Bubble:     board.NewTargetedBubble(appearPos, vel, bubbleRadius, s.Pacing.RippleSpeed, board.Tune(n.Bin), popPos),
			Amplitude:  n.Amplitude,
			PopTime:    popTime,
		})
		lastPos = popPos
		lastTime = popTime
	}
	return out
}

func randDir(r *rand.Rand) geom.Vec2 {
	return geom.Unit(r.Float64() * 2 * math.Pi)
}
