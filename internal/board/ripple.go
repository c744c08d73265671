package board

import (
	"image/color"
	"math"

	"github.com/iburimskiy/soundwave/internal/geom"
)

var (
	colorBlack = color.RGBA{A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const ringWidth = 0.2

// Ripple is an expanding ring. Its radius never shrinks.
type Ripple struct {
	Pos    geom.Vec2
	Speed  float64
	Radius float64
	Tune   Tune

	transition bool
	dead       bool
}

func NewRipple(pos geom.Vec2, speed, radius float64, tune Tune) *Ripple {
	return &Ripple{Pos: pos, Speed: speed, Radius: radius, Tune: tune}
}

func (r *Ripple) Dead() bool { return r.dead }

func (r *Ripple) IsTransition() bool { return r.transition }

// advance grows the ripple. It dies once it covers the whole board, that is
// once its radius exceeds the distance to the farthest board corner.
func (r *Ripple) advance(dt float64, size geom.Vec2) {
	if dt > 0 {
		r.Radius += r.Speed * dt
	}
	r.dead = farthestCorner(r.Pos, size) < r.Radius
}

func farthestCorner(p, size geom.Vec2) float64 {
	corners := [4]geom.Vec2{{}, {X: 0, Y: size.Y}, {X: size.X, Y: 0}, size}
	best := 0.0
	for _, c := range corners {
		best = math.Max(best, c.Dist(p))
	}
	return best
}

// collides reports whether the two rings cross: their boundaries touch or
// intersect without one disk containing the other.
func (r *Ripple) collides(o *Ripple) bool {
	dist := r.Pos.Dist(o.Pos)
	return dist <= r.Radius+o.Radius && dist > math.Abs(r.Radius-o.Radius)
}

func (r *Ripple) render(c Canvas) {
	col := r.Tune.Color()
	if r.transition {
		c.FillCircle(r.Pos, r.Radius, colorBlack)
		col = colorWhite
	}
	c.OutlineCircle(r.Pos, math.Max(0, r.Radius-ringWidth), r.Radius, col)
}
