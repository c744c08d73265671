package game

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/soundwave/internal/board"
	"github.com/iburimskiy/soundwave/internal/geom"
)

const eps = 1e-9

func near(a, b geom.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestViewportFitsBoard(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		scale  float64
		offset geom.Vec2
	}{
		{"exact", 1280, 720, 80, geom.V(0, 0)},
		{"wide", 1600, 720, 80, geom.V(160, 0)},
		{"tall", 1280, 1000, 80, geom.V(0, 140)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newViewport(tc.w, tc.h, geom.V(16, 9))
			if v.scale != tc.scale || !near(v.offset, tc.offset) {
				t.Fatalf("got scale %g offset %v", v.scale, v.offset)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(1600, 720, geom.V(16, 9))
	p := v.toScreen(geom.V(8, 4.5))
	if !near(p, geom.V(800, 360)) {
		t.Fatalf("centre on screen: got %v", p)
	}
	if b := v.toBoard(800, 360); !near(b, geom.V(8, 4.5)) {
		t.Fatalf("centre on board: got %v", b)
	}
	if l := v.length(0.5); l != 40 {
		t.Fatalf("length: got %g, want 40", l)
	}
}

func TestDisplayListRecordsBoard(t *testing.T) {
	var d displayList
	var c board.Canvas = &d

	b := board.New(geom.V(16, 9))
	b.AddBubble(board.NewBubble(geom.V(2, 2), geom.V(1, 0), 1, 1, 0))
	b.AddRipple(board.NewRipple(geom.V(5, 5), 1, 1, 2))
	b.Label = "3"
	b.Render(c)

	kinds := []opKind{opOutlineCircle, opFillCircle, opLabelRectangle}
	if len(d.ops) != len(kinds) {
		t.Fatalf("ops: got %d, want %d", len(d.ops), len(kinds))
	}
	for i, k := range kinds {
		if d.ops[i].kind != k {
			t.Errorf("op %d: got kind %d, want %d", i, d.ops[i].kind, k)
		}
	}
	if d.ops[2].text != "3" {
		t.Errorf("label text: got %q", d.ops[2].text)
	}

	d.reset()
	if len(d.ops) != 0 {
		t.Fatal("reset kept ops")
	}
	d.LabelCircle(geom.V(1, 1), 2, "x", color.Black)
	if op := d.ops[0]; op.kind != opLabelCircle || op.radius != 2 || op.text != "x" {
		t.Fatalf("label circle: got %+v", op)
	}
}

type fakeProgress struct {
	rate       float64
	cur, total int
}

func (p fakeProgress) SampleRate() float64 { return p.rate }
func (p fakeProgress) CurrentFrame() int   { return p.cur }
func (p fakeProgress) MaxFrame() int       { return p.total }

func TestPlayback(t *testing.T) {
	elapsed, total, frac := playback(fakeProgress{rate: 1000, cur: 30000, total: 120000})
	if elapsed != 30*time.Second || total != 2*time.Minute || frac != 0.25 {
		t.Fatalf("got %v %v %g", elapsed, total, frac)
	}
	if _, total, _ := playback(fakeProgress{rate: 1000}); total != 0 {
		t.Fatalf("empty track: total %v", total)
	}
	if _, _, frac := playback(fakeProgress{rate: 10, cur: 50, total: 10}); frac != 1 {
		t.Fatalf("overrun should clamp, got %g", frac)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                              "00:00",
		59 * time.Second:               "00:59",
		61 * time.Second:               "01:01",
		12*time.Minute + 5*time.Second: "12:05",
	}
	for d, want := range cases {
		if got := formatDuration(d); got != want {
			t.Errorf("%v: got %q, want %q", d, got, want)
		}
	}
}
