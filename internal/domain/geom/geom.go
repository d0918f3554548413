// Package geom provides the 2D value types shared by the simulation:
// vectors, rectangles and axis-aligned bounding boxes.
//
// All coordinates are world units with Y pointing up.
package geom

import "math"

// Vector2 is an ordered pair of 32-bit floats.
type Vector2 struct {
	X, Y float32
}

// Vec returns a Vector2 from its components.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Mul returns the component-wise product v ⊙ o.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Polar returns the displacement of moving speed units along heading
// (radians from +X, counter-clockwise).
func Polar(speed, heading float32) Vector2 {
	h := float64(heading)
	return Vector2{
		X: float32(math.Cos(h)) * speed,
		Y: float32(math.Sin(h)) * speed,
	}
}

// Rect is a rectangle given by an anchor point and its width and height.
type Rect struct {
	X, Y float32
	W, H float32
}

// NewRect creates a new rectangle.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// AABB converts the rectangle into a bounding box centred on (X, Y) with
// half-extents (W, H). The resulting box covers twice the rectangle's
// width and height; play-space partitions depend on this layout.
func (r Rect) AABB() AABB {
	return AABB{
		Min: Vector2{X: r.X - r.W, Y: r.Y - r.H},
		Max: Vector2{X: r.X + r.W, Y: r.Y + r.H},
	}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vector2
}

// BoxAround returns the box centred on center with the given half-extents.
func BoxAround(center, halfExtents Vector2) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Intersects reports whether a and b overlap. Boxes sharing only an edge
// or a corner intersect.
func (a AABB) Intersects(b AABB) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	return true
}

// Contains reports whether b lies fully inside a (boundaries inclusive).
func (a AABB) Contains(b AABB) bool {
	return b.Min.X >= a.Min.X && b.Max.X <= a.Max.X &&
		b.Min.Y >= a.Min.Y && b.Max.Y <= a.Max.Y
}

// ContainsPoint reports whether p lies inside a (boundaries inclusive).
func (a AABB) ContainsPoint(p Vector2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
