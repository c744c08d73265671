package audio

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

var testFormat = beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}

// writeWav writes n frames of a constant stereo signal.
func writeWav(t *testing.T, name string, n int, left, right float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	src := beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{left, right}
		}
		return len(samples), true
	}))
	if err := wav.Encode(f, src, testFormat); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestOpenWav(t *testing.T) {
	path := writeWav(t, "tone.wav", 4000, 0.5, 0.25)
	tr, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if tr.SampleRate() != 8000 {
		t.Errorf("sample rate: got %g, want 8000", tr.SampleRate())
	}
	if tr.MaxFrame() != 4000 {
		t.Errorf("max frame: got %d, want 4000", tr.MaxFrame())
	}
	if tr.Duration() != 500*time.Millisecond {
		t.Errorf("duration: got %v, want 500ms", tr.Duration())
	}

	samples := tr.DrainSamples()
	if len(samples) != 4000 {
		t.Fatalf("samples: got %d, want 4000", len(samples))
	}
	for i, s := range samples {
		if math.Abs(s-0.375) > 1e-3 {
			t.Fatalf("sample %d: got %g, want mono mix 0.375", i, s)
		}
	}
	if again := tr.DrainSamples(); len(again) != 0 {
		t.Fatalf("second drain: got %d samples, want none", len(again))
	}
}

func TestOpenIgnoresExtensionCase(t *testing.T) {
	path := writeWav(t, "LOUD.WAV", 100, 0.1, 0.1)
	if _, err := Open(path); err != nil {
		t.Fatalf("open: %v", err)
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "song.ogg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil || errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want an open error", err)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("not a wave file"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestExtensions(t *testing.T) {
	want := []string{".flac", ".mp3", ".wav"}
	if got := Extensions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPositionTapCountsFrames(t *testing.T) {
	src := beep.Take(300, beep.Silence(-1))
	tap := newPositionTap(src)
	buf := make([][2]float64, 128)
	for {
		if _, ok := tap.Stream(buf); !ok {
			break
		}
	}
	if tap.position() != 300 {
		t.Fatalf("position: got %d, want 300", tap.position())
	}
	tap.reset()
	if tap.position() != 0 {
		t.Fatalf("position after reset: got %d", tap.position())
	}
}

func TestStopRewinds(t *testing.T) {
	tr, err := Open(writeWav(t, "tone.wav", 1000, 0.2, 0.2))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// Drive the chain by hand instead of through the speaker.
	tr.ctrl.Paused = false
	tr.ctrl.Stream(make([][2]float64, 250))
	if tr.CurrentFrame() != 250 {
		t.Fatalf("current frame: got %d, want 250", tr.CurrentFrame())
	}

	tr.Stop()
	if tr.CurrentFrame() != 0 || tr.seeker.Position() != 0 {
		t.Fatalf("after stop: frame %d, position %d", tr.CurrentFrame(), tr.seeker.Position())
	}
	if !tr.ctrl.Paused {
		t.Fatal("stop should pause")
	}
}
