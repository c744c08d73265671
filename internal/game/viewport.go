package game

import (
	"math"

	"github.com/iburimskiy/soundwave/internal/geom"
)

// viewport maps board units onto screen pixels, keeping the aspect ratio
// and centring the board in the window.
type viewport struct {
	scale  float64
	offset geom.Vec2
}

func newViewport(screenWidth, screenHeight int, board geom.Vec2) viewport {
	w, h := float64(screenWidth), float64(screenHeight)
	scale := math.Min(w/board.X, h/board.Y)
	return viewport{
		scale:  scale,
		offset: geom.V((w-board.X*scale)/2, (h-board.Y*scale)/2),
	}
}

func (v viewport) toScreen(p geom.Vec2) geom.Vec2 {
	return p.Scale(v.scale).Add(v.offset)
}

func (v viewport) toBoard(x, y int) geom.Vec2 {
	return geom.V(float64(x), float64(y)).Sub(v.offset).Scale(1 / v.scale)
}

func (v viewport) length(d float64) float64 { return d * v.scale }
