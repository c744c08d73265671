// Package geom holds the 2-D vector math shared by the scheduler and the board.
package geom

import "math"

// Vec2 is a point or direction in board units. It is a value type; copies
// never alias.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Norm2 is the squared length.
func (v Vec2) Norm2() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector in the direction of v. The zero vector
// stays zero.
func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Vec2{}
	}
	return Vec2{v.X / n, v.Y / n}
}

// Dist is the distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Norm() }

// Unit returns the unit vector at angle a (radians).
func Unit(a float64) Vec2 { return Vec2{math.Cos(a), math.Sin(a)} }
