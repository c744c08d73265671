// Package board simulates the live play field: bubbles flying toward their
// pop positions and the ripples left behind when they are popped.
package board

import (
	"github.com/iburimskiy/soundwave/internal/geom"
)

const (
	labelHeight = 0.5
	nudgeRatio  = 0.1
)

// Board owns every live bubble and ripple. It is single-writer: all
// mutation goes through its methods on the frame loop.
type Board struct {
	size    geom.Vec2
	bubbles []*Bubble
	// Insertion order matters: collisions are resolved against earlier
	// ripples.
	ripples    []*Ripple
	transition *Ripple
	missed     int

	Label string
}

func New(size geom.Vec2) *Board {
	return &Board{size: size}
}

func (b *Board) Size() geom.Vec2 { return b.size }

func (b *Board) Center() geom.Vec2 { return b.size.Scale(0.5) }

func (b *Board) Missed() int { return b.missed }

func (b *Board) Bubbles() []*Bubble { return b.bubbles }

func (b *Board) Ripples() []*Ripple { return b.ripples }

// Transition returns the active transition ripple, or nil.
func (b *Board) Transition() *Ripple { return b.transition }

func (b *Board) IsEmpty() bool {
	return len(b.ripples) == 0 && len(b.bubbles) == 0 && b.transition == nil
}

func (b *Board) AddBubble(bub Bubble) {
	b.bubbles = append(b.bubbles, &bub)
}

// AddRipple installs a ripple at the end of the ripple list.
func (b *Board) AddRipple(r *Ripple) {
	b.ripples = append(b.ripples, r)
}

// AddTransition drops every ripple and installs r as the sole transition
// ripple.
func (b *Board) AddTransition(r *Ripple) {
	r.transition = true
	b.transition = r
	b.clearRipples()
}

// Reset empties the board and zeroes the miss counter.
func (b *Board) Reset() {
	b.bubbles = nil
	b.ripples = nil
	b.transition = nil
	b.missed = 0
	b.Label = ""
}

func (b *Board) clearRipples() {
	b.ripples = nil
}

// Advance moves everything on the board by dt seconds, then applies the
// miss and collision rules.
func (b *Board) Advance(dt float64) {
	for _, bub := range b.bubbles {
		bub.advance(dt)
	}
	for _, r := range b.ripples {
		r.advance(dt, b.size)
	}
	if b.transition != nil {
		b.transition.advance(dt, b.size)
	}

	live := b.ripples[:0]
	for _, r := range b.ripples {
		if !r.dead {
			live = append(live, r)
		}
	}
	b.ripples = live

	b.removeMissed()
	if b.transition != nil && b.transition.dead {
		b.transition = nil
		b.bubbles = nil
	}

	if b.HasCollision() {
		b.missed++
		b.clearRipples()
	}
}

// removeMissed drops bubbles that left the board, or were swallowed by the
// transition wipe, while heading away from the centre.
func (b *Board) removeMissed() {
	center := b.Center()
	kept := b.bubbles[:0]
	for _, bub := range b.bubbles {
		if b.outOfPlay(bub) && bub.Vel.Dot(center.Sub(bub.Pos)) <= 0 {
			b.missed++
			continue
		}
		kept = append(kept, bub)
	}
	b.bubbles = kept
}

func (b *Board) outOfPlay(bub *Bubble) bool {
	r := bub.Radius
	p := bub.Pos
	if p.X < -r || p.Y < -r || p.X > b.size.X+r || p.Y > b.size.Y+r {
		return true
	}
	if t := b.transition; t != nil {
		return t.Pos.Dist(p)+r < t.Radius
	}
	return false
}

// HasCollision reports whether any two live ripples cross.
func (b *Board) HasCollision() bool {
	for i := range b.ripples {
		if b.collidesWith(i) != nil {
			return true
		}
	}
	return false
}

// collidesWith scans the ripples added before i, most recent first, and
// returns the first one crossing ripple i.
func (b *Board) collidesWith(i int) *Ripple {
	r1 := b.ripples[i]
	for j := i - 1; j >= 0; j-- {
		if r1.collides(b.ripples[j]) {
			return b.ripples[j]
		}
	}
	return nil
}

// PopOption narrows a pop attempt.
type PopOption func(*popConfig)

type popConfig struct {
	tune         *Tune
	requireTouch bool
}

// WithTune only lets the pop affect bubbles of tune t.
func WithTune(t Tune) PopOption {
	return func(cfg *popConfig) {
		cfg.tune = &t
	}
}

// RequireTouch makes the pop fail unless the position is inside the chosen
// bubble and inside some live ripple.
func RequireTouch() PopOption {
	return func(cfg *popConfig) {
		cfg.requireTouch = true
	}
}

// PopAt pops the bubble closest to pos. It reports whether a bubble was
// popped.
func (b *Board) PopAt(pos geom.Vec2, opts ...PopOption) bool {
	var cfg popConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	best := -1
	bestDist := 0.0
	for i, bub := range b.bubbles {
		d := bub.popDistance(pos, cfg.tune)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	// A filtered-out bubble is infinitely far and never selectable.
	if best < 0 || cfg.tune != nil && b.bubbles[best].Tune != *cfg.tune {
		return false
	}

	if cfg.requireTouch {
		bub := b.bubbles[best]
		if pos.Dist(bub.Pos) > bub.Radius || !b.insideAnyRipple(pos) {
			return false
		}
	}
	b.popBubble(best)
	return true
}

func (b *Board) insideAnyRipple(pos geom.Vec2) bool {
	for _, r := range b.ripples {
		if pos.Dist(r.Pos) <= r.Radius {
			return true
		}
	}
	return false
}

// AutoPop pops every bubble that has reached or passed its target.
func (b *Board) AutoPop() {
	for i := 0; i < len(b.bubbles); {
		if b.bubbles[i].reachedTarget() {
			b.popBubble(i)
			continue
		}
		i++
	}
}

func (b *Board) popBubble(i int) {
	bub := b.bubbles[i]
	b.bubbles = append(b.bubbles[:i], b.bubbles[i+1:]...)

	r := bub.pop()
	b.ripples = append(b.ripples, r)
	if b.HasCollision() {
		return
	}
	b.nudge(r, bub.VisualRadius())
}

// nudge moves a fresh ripple away from an unsightly near miss with an
// earlier, larger ripple. A centre inside the other disk snaps to its
// centre; a centre just outside it is pulled in past the rim so the two
// rings stay nested instead of crossing.
func (b *Board) nudge(r *Ripple, visualRadius float64) {
	for j := len(b.ripples) - 2; j >= 0; j-- {
		o := b.ripples[j]
		if o.Radius <= r.Radius || r.collides(o) {
			continue
		}
		diff := o.Pos.Sub(r.Pos)
		dist := diff.Norm()
		if dist <= o.Radius {
			r.Pos = o.Pos
			return
		}
		gap := dist - o.Radius
		if gap < visualRadius {
			offset := visualRadius*nudgeRatio + gap
			r.Pos = r.Pos.Add(diff.Normalized().Scale(offset))
			return
		}
	}
}

// SetPulseAmount broadcasts the musical pulse to every bubble.
func (b *Board) SetPulseAmount(amount float64) {
	for _, bub := range b.bubbles {
		bub.PulseAmount = amount
	}
}

// SetPulseFactor broadcasts the failure-risk glow to every bubble.
func (b *Board) SetPulseFactor(factor float64) {
	for _, bub := range b.bubbles {
		bub.PulseFactor = factor
	}
}

func (b *Board) Render(c Canvas) {
	for _, r := range b.ripples {
		r.render(c)
	}
	for _, bub := range b.bubbles {
		bub.render(c, b.size)
	}
	c.LabelRectangle(geom.V(0, b.size.Y-labelHeight), geom.V(b.size.X, labelHeight), b.Label, colorWhite)
	if b.transition != nil {
		b.transition.render(c)
	}
}
