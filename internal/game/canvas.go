package game

import (
	"image/color"

	"github.com/iburimskiy/soundwave/internal/geom"
)

type opKind int

const (
	opFillCircle opKind = iota
	opOutlineCircle
	opLabelCircle
	opLabelRectangle
)

// drawOp is one recorded canvas call, in board units.
type drawOp struct {
	kind   opKind
	pos    geom.Vec2
	size   geom.Vec2
	inner  float64
	radius float64
	text   string
	clr    color.Color
}

// displayList records the board's draw calls during Update so Draw can
// replay them. ebiten only hands out the screen image in Draw.
type displayList struct {
	ops []drawOp
}

func (d *displayList) reset() { d.ops = d.ops[:0] }

func (d *displayList) FillCircle(pos geom.Vec2, radius float64, c color.Color) {
	d.ops = append(d.ops, drawOp{kind: opFillCircle, pos: pos, radius: radius, clr: c})
}

func (d *displayList) OutlineCircle(pos geom.Vec2, innerRadius, outerRadius float64, c color.Color) {
	d.ops = append(d.ops, drawOp{kind: opOutlineCircle, pos: pos, inner: innerRadius, radius: outerRadius, clr: c})
}

func (d *displayList) LabelCircle(pos geom.Vec2, radius float64, text string, c color.Color) {
	d.ops = append(d.ops, drawOp{kind: opLabelCircle, pos: pos, radius: radius, text: text, clr: c})
}

func (d *displayList) LabelRectangle(pos, size geom.Vec2, text string, c color.Color) {
	d.ops = append(d.ops, drawOp{kind: opLabelRectangle, pos: pos, size: size, text: text, clr: c})
}
