package board

import (
	"image/color"

	"github.com/iburimskiy/soundwave/internal/geom"
)

// Canvas is the drawing half of a renderer. Positions and sizes are in
// board units.
type Canvas interface {
	FillCircle(pos geom.Vec2, radius float64, c color.Color)
	OutlineCircle(pos geom.Vec2, innerRadius, outerRadius float64, c color.Color)
	LabelCircle(pos geom.Vec2, radius float64, text string, c color.Color)
	LabelRectangle(pos, size geom.Vec2, text string, c color.Color)
}
