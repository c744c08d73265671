package level

import (
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/iburimskiy/soundwave/internal/geom"
)

var boardSize = geom.V(16, 9)

func testScheduler(p Pacing, rate float64) *Scheduler {
	return &Scheduler{Size: boardSize, Rate: rate, Pacing: p, TravelRatio: 0.75, Margin: 1}
}

func randomOnsets(seed uint64, count int, rate float64) []Note {
	r := rand.New(rand.NewPCG(seed, seed))
	var notes []Note
	w := 0
	for i := 0; i < count; i++ {
		w += 5 + r.IntN(60)
		notes = append(notes, Note{Bin: r.IntN(8), Amplitude: r.Float64() * 2, Window: w})
	}
	return notes
}

func TestPacingFor(t *testing.T) {
	notes := []Note{{Delta: 1}, {Delta: 2}, {Delta: 3}, {Delta: 0}}
	p := PacingFor(notes, 2) // 2 seconds, 6 units of delta
	if p.AppearSpeed != 3 || p.NoteSpeed != 9 || p.RippleSpeed != 9 {
		t.Fatalf("got %+v", p)
	}
	if PacingFor(nil, 30) != (Pacing{}) {
		t.Fatal("empty song should have zero pacing")
	}
}

func TestSeed(t *testing.T) {
	s := testScheduler(Pacing{AppearSpeed: 3.7}, 30)
	if got := s.Seed(10); got != 30 {
		t.Fatalf("seed: got %d, want 30", got)
	}
}

func TestScheduleIsDeterministic(t *testing.T) {
	notes := randomOnsets(3, 80, 43)
	p := Pacing{NoteSpeed: 9, RippleSpeed: 9, AppearSpeed: 3}
	a := testScheduler(p, 43).Schedule(notes)
	b := testScheduler(p, 43).Schedule(notes)
	if len(a) == 0 {
		t.Fatal("nothing scheduled")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same notes and seed produced different trajectories")
	}
}

func TestScheduleRespectsRippleReach(t *testing.T) {
	for _, p := range []Pacing{
		{NoteSpeed: 6, RippleSpeed: 4, AppearSpeed: 2},
		{NoteSpeed: 3, RippleSpeed: 1, AppearSpeed: 1},
		{NoteSpeed: 12, RippleSpeed: 16, AppearSpeed: 4},
	} {
		s := testScheduler(p, 43)
		out := s.Schedule(randomOnsets(11, 200, 43))
		if len(out) < 2 {
			t.Fatalf("%+v: only %d bubbles", p, len(out))
		}
		for i := 1; i < len(out); i++ {
			prev, _ := out[i-1].Bubble.Target()
			cur, _ := out[i].Bubble.Target()
			dt := out[i].PopTime - out[i-1].PopTime
			allowed := p.RippleSpeed*dt*0.75 - 1
			if d := cur.Dist(prev); d > allowed+1e-9 {
				t.Fatalf("%+v: bubble %d moved %g, allowed %g", p, i, d, allowed)
			}
		}
	}
}

func TestScheduleDropsCrowdedOnsets(t *testing.T) {
	s := testScheduler(Pacing{NoteSpeed: 3, RippleSpeed: 1, AppearSpeed: 1}, 10)
	notes := []Note{
		{Window: 10, Amplitude: 1},
		{Window: 15, Amplitude: 1}, // 0.5s later: reach 0.375 - 1 < 0
		{Window: 50, Amplitude: 1},
	}
	out := s.Schedule(notes)
	if len(out) != 2 {
		t.Fatalf("scheduled %d, want 2", len(out))
	}
	if out[0].PopTime != 1 || out[1].PopTime != 5 {
		t.Fatalf("pop times %g, %g; want 1, 5", out[0].PopTime, out[1].PopTime)
	}
}

func TestScheduledTrajectories(t *testing.T) {
	p := Pacing{NoteSpeed: 9, RippleSpeed: 9, AppearSpeed: 3}
	const rate = 43.0
	s := testScheduler(p, rate)
	center := boardSize.Scale(0.5)
	notes := randomOnsets(5, 60, rate)
	out := s.Schedule(notes)
	for i, w := range out {
		b := w.Bubble
		target, ok := b.Target()
		if !ok {
			t.Fatalf("bubble %d has no target", i)
		}
		if target.X < 1-1e-9 || target.Y < 1-1e-9 || target.X > 15+1e-9 || target.Y > 8+1e-9 {
			t.Fatalf("bubble %d pops outside the inset board: %v", i, target)
		}
		if d := b.Pos.Dist(center); math.Abs(d-(boardSize.Norm()+1)) > 1e-9 {
			t.Fatalf("bubble %d spawns at distance %g from centre", i, d)
		}
		if math.Abs(b.Vel.Norm()-p.NoteSpeed) > 1e-9 {
			t.Fatalf("bubble %d speed %g", i, b.Vel.Norm())
		}
		// travelling for (PopTime - spawn time) lands on the target
		travel := b.Pos.Dist(target) / p.NoteSpeed
		if got := b.Pos.Add(b.Vel.Scale(travel)); got.Dist(target) > 1e-9 {
			t.Fatalf("bubble %d misses its target: %v vs %v", i, got, target)
		}
		if want := int((w.PopTime - travel) * rate); w.SpawnIndex != want {
			t.Fatalf("bubble %d spawn index %d, want %d", i, w.SpawnIndex, want)
		}
		if b.Radius != 1 || b.RippleSpeed != p.RippleSpeed {
			t.Fatalf("bubble %d template %+v", i, b)
		}
	}
}

func TestScheduleZeroEnergy(t *testing.T) {
	s := testScheduler(Pacing{}, 43)
	if out := s.Schedule(randomOnsets(1, 10, 43)); len(out) != 0 {
		t.Fatalf("zero pacing scheduled %d bubbles", len(out))
	}
}
