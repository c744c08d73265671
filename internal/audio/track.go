package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// Track is a fully decoded song with a speaker transport. The game loop
// owns it; the speaker goroutine only touches it under speaker.Lock.
type Track struct {
	format  beep.Format
	buffer  *beep.Buffer
	samples []float64

	seeker beep.StreamSeeker
	tap    *positionTap
	ctrl   *beep.Ctrl
	queued atomic.Bool
}

func newTrack(buffer *beep.Buffer) *Track {
	seeker := buffer.Streamer(0, buffer.Len())
	tap := newPositionTap(seeker)
	return &Track{
		format:  buffer.Format(),
		buffer:  buffer,
		samples: monoMix(buffer),
		seeker:  seeker,
		tap:     tap,
		ctrl:    &beep.Ctrl{Streamer: tap, Paused: true},
	}
}

// monoMix averages the two channels of the whole buffer.
func monoMix(buffer *beep.Buffer) []float64 {
	out := make([]float64, 0, buffer.Len())
	s := buffer.Streamer(0, buffer.Len())
	chunk := make([][2]float64, 4096)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = append(out, (frame[0]+frame[1])/2)
		}
		if !ok {
			return out
		}
	}
}

func (t *Track) SampleRate() float64 { return float64(t.format.SampleRate) }

// Duration is the playing time of the whole track.
func (t *Track) Duration() time.Duration { return t.format.SampleRate.D(t.buffer.Len()) }

// DrainSamples hands over the mono samples. Only the first call returns
// data.
func (t *Track) DrainSamples() []float64 {
	s := t.samples
	t.samples = nil
	return s
}

// PrepareSpeaker opens the output device at the track's sample rate.
func (t *Track) PrepareSpeaker() error {
	return initSpeaker(t.format.SampleRate)
}

// Play starts or resumes playback. The speaker must have been prepared.
func (t *Track) Play() {
	if !speakerReady() {
		return
	}
	speaker.Lock()
	t.ctrl.Paused = false
	speaker.Unlock()

	if t.queued.CompareAndSwap(false, true) {
		speaker.Play(beep.Seq(t.ctrl, beep.Callback(func() {
			t.queued.Store(false)
		})))
	}
}

// Stop pauses playback and rewinds to the first frame.
func (t *Track) Stop() {
	speaker.Lock()
	t.ctrl.Paused = true
	_ = t.seeker.Seek(0)
	t.tap.reset()
	speaker.Unlock()
}

// CurrentFrame is the number of frames handed to the speaker since the
// last rewind.
func (t *Track) CurrentFrame() int { return t.tap.position() }

func (t *Track) MaxFrame() int { return t.buffer.Len() }

// Close stops playback and detaches the track from the speaker.
func (t *Track) Close() {
	t.Stop()
	if speakerReady() {
		speaker.Clear()
	}
}

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
)

func speakerReady() bool {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	return speakerRate != 0
}

// initSpeaker initializes the speaker once per sample rate.
func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerRate == rate {
		return nil
	}
	if speakerRate != 0 {
		speaker.Clear()
	}
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speakerRate = rate
	return nil
}
