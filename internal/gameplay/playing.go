package gameplay

import (
	"math"

	"github.com/iburimskiy/soundwave/internal/board"
)

// Playing runs one attempt at the song.
type Playing struct {
	schedule  Schedule
	transport Transport
	rules     Rules

	// preRoll counts frames up to the start of playback; it stands in for
	// the transport clock until then.
	preRoll   float64
	lastFrame int
	playing   bool
	missed    int

	poppedSinceLastMiss int
	popped              int
}

func NewPlaying(s Schedule, t Transport, rules Rules) *Playing {
	return &Playing{
		schedule:            s,
		transport:           t,
		rules:               rules,
		preRoll:             float64(s.FirstSpawnFrame()) - rules.LeadInSeconds*t.SampleRate(),
		lastFrame:           math.MinInt,
		poppedSinceLastMiss: 100,
		popped:              1,
	}
}

// Missed is the number of misses seen in this attempt.
func (p *Playing) Missed() int { return p.missed }

// Started reports whether audio playback has begun.
func (p *Playing) Started() bool { return p.playing }

func (p *Playing) Update(dt float64, b *board.Board, events []Event) State {
	newPopped := 0
	for _, e := range events {
		switch {
		case e.Kind == EventEscape:
			return nil
		case e.Pops() && p.rules.Difficulty != Auto:
			if b.PopAt(e.Pos) {
				newPopped++
			}
		}
	}
	if newPopped > 0 {
		p.poppedSinceLastMiss += newPopped
		p.popped += newPopped
		p.refreshFeedback(b)
	}

	if !p.playing {
		p.preRoll += dt * p.transport.SampleRate()
		if p.preRoll >= 0 {
			p.transport.Play()
			p.playing = true
			p.refreshFeedback(b)
		}
	}

	frame := int(p.preRoll)
	if p.playing {
		frame = p.transport.CurrentFrame()
	}
	for _, bub := range p.schedule.DataBetween(p.lastFrame, frame) {
		b.AddBubble(bub)
	}
	p.lastFrame = frame

	b.Advance(dt)
	if p.rules.Difficulty == Auto {
		b.AutoPop()
	}
	b.SetPulseAmount(p.schedule.PulseAmountAt(frame))

	if b.Missed() > p.missed {
		p.missed = b.Missed()
		p.poppedSinceLastMiss = 0
		p.refreshFeedback(b)
	}

	if p.allowedMisses() < p.missed {
		p.transport.Stop()
		b.Label = ""
		return NewTransitioning(NewPlaying(p.schedule, p.transport, p.rules), p.rules.TransitionSpeed)
	}
	if frame >= p.transport.MaxFrame() {
		return nil
	}
	return p
}

func (p *Playing) allowedMisses() int {
	return p.rules.Difficulty.AllowedMisses(p.schedule.ScheduledCount())
}

// refreshFeedback sets the failure glow and the status label. The glow is
// full when the next miss ends the run, and ramps with the miss rate while
// the pop streak since the last miss is short.
func (p *Playing) refreshFeedback(b *board.Board) {
	quota := p.rules.Difficulty.FailureQuota()
	allowed := p.allowedMisses()

	factor := 0.0
	if allowed < p.missed+1 {
		factor = 1
	} else if float64(p.poppedSinceLastMiss) < 1/quota {
		factor = math.Min(1, float64(p.missed)/float64(p.popped)/quota)
	}
	b.SetPulseFactor(factor)
	b.Label = p.rules.Difficulty.label(p.missed, allowed)
}
