package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Velocity is a speed (world units per tick) along a heading (radians from +X).
type Velocity struct {
	Speed   float32
	Heading float32
}

// Body represents the physical body of an entity.
// HalfSize holds the unscaled half-extents of the sprite; Rotation is
// display-only and never rotates the collision box.
type Body struct {
	Pos        geom.Vector2
	HalfSize   geom.Vector2
	Scale      geom.Vector2
	Velocity   Velocity
	Rotation   float32
	Collidable bool
}

// NewBody creates a body centred on pos for a sprite of w×h unscaled units.
func NewBody(pos geom.Vector2, w, h float32, scale geom.Vector2, rotation float32, collidable bool) Body {
	return Body{
		Pos:        pos,
		HalfSize:   geom.Vec(w/2, h/2),
		Scale:      scale,
		Rotation:   rotation,
		Collidable: collidable,
	}
}

// Movement returns the displacement applied per tick.
func (b *Body) Movement() geom.Vector2 {
	return geom.Polar(b.Velocity.Speed, b.Velocity.Heading)
}

// UpdatePos advances the position by one tick of movement.
func (b *Body) UpdatePos() {
	b.Pos = b.Pos.Add(b.Movement())
}

// ScaledHalfSize returns the effective collision half-extents.
func (b *Body) ScaledHalfSize() geom.Vector2 {
	return b.HalfSize.Mul(b.Scale)
}

// Box returns the collision box centred on the position.
func (b *Body) Box() geom.AABB {
	return geom.BoxAround(b.Pos, b.ScaledHalfSize())
}

// Interpolated returns the position extrapolated by alpha ticks of movement.
func (b *Body) Interpolated(alpha float32) geom.Vector2 {
	return b.Pos.Add(b.Movement().Scale(alpha))
}
