package board

import (
	"math"

	"github.com/iburimskiy/soundwave/internal/geom"
)

// Bubble is a moving target. Copying the struct yields an independent
// bubble.
type Bubble struct {
	Pos         geom.Vec2
	Vel         geom.Vec2
	Radius      float64
	RippleSpeed float64
	Tune        Tune

	PulseFactor float64
	PulseAmount float64

	target    geom.Vec2
	hasTarget bool
	label     string
	hasLabel  bool
}

func NewBubble(pos, vel geom.Vec2, radius, rippleSpeed float64, tune Tune) Bubble {
	return Bubble{Pos: pos, Vel: vel, Radius: radius, RippleSpeed: rippleSpeed, Tune: tune}
}

// NewTargetedBubble returns a bubble that pops at target. The target is
// fixed for the bubble's lifetime.
func NewTargetedBubble(pos, vel geom.Vec2, radius, rippleSpeed float64, tune Tune, target geom.Vec2) Bubble {
	b := NewBubble(pos, vel, radius, rippleSpeed, tune)
	b.target = target
	b.hasTarget = true
	return b
}

func (b *Bubble) Target() (geom.Vec2, bool) { return b.target, b.hasTarget }

func (b *Bubble) Label() (string, bool) { return b.label, b.hasLabel }

// SetLabel annotates the bubble with text drawn at its centre. The schedule
// never labels bubbles; it is for callers that annotate them.
func (b *Bubble) SetLabel(s string) {
	b.label = s
	b.hasLabel = true
}

func (b *Bubble) advance(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// VisualRadius is the drawn radius including the pulse.
func (b *Bubble) VisualRadius() float64 {
	return b.Radius + b.PulseAmount*b.PulseFactor
}

// reachedTarget reports whether the bubble is at or past its target.
func (b *Bubble) reachedTarget() bool {
	if !b.hasTarget {
		return false
	}
	return b.target.Sub(b.Pos).Dot(b.Vel) <= 0
}

// popDistance is the squared distance from pos, or +Inf when a tune filter
// is given and does not match.
func (b *Bubble) popDistance(pos geom.Vec2, tune *Tune) float64 {
	if tune != nil && *tune != b.Tune {
		return math.Inf(1)
	}
	return pos.Sub(b.Pos).Norm2()
}

// pop spawns the bubble's ripple at its target, or where it is when it has
// none.
func (b *Bubble) pop() *Ripple {
	pos := b.Pos
	if b.hasTarget {
		pos = b.target
	}
	return NewRipple(pos, b.RippleSpeed, 0, b.Tune)
}

func (b *Bubble) render(c Canvas, size geom.Vec2) {
	popShade := 1.0
	if b.hasTarget {
		maxDist := 2 * size.Norm()
		popShade = math.Pow((maxDist-b.target.Dist(b.Pos))/maxDist, 4)
	}
	r := b.VisualRadius()
	c.FillCircle(b.Pos, r, shade(b.Tune.Color(), popShade))
	if b.hasLabel {
		c.LabelCircle(b.Pos, r, b.label, colorBlack)
	}
}
