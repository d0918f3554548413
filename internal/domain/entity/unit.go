package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Archetype describes how to build a unit of one kind: its sprite, sheet
// layout, scale, display rotation and travel speed.
type Archetype struct {
	AssetKey string
	Width    float32 // unscaled sprite width
	Height   float32 // unscaled sprite height
	Scale    float32
	Cols     uint32
	Rows     uint32
	Loops    bool
	Speed    float32
	Rotation float32
}

// Unit is a body with a sprite-sheet animation and a lifecycle.
type Unit struct {
	Body
	Anim     Animation
	AssetKey string
	Dead     bool
}

// NewUnit builds a unit from an archetype centred on pos.
func NewUnit(a Archetype, pos geom.Vector2, collidable bool) Unit {
	return Unit{
		Body:     NewBody(pos, a.Width, a.Height, geom.Vec(a.Scale, a.Scale), a.Rotation, collidable),
		Anim:     NewAnimation(a.Cols, a.Rows, a.Loops),
		AssetKey: a.AssetKey,
	}
}

// Update advances the animation and then the position. A non-looping
// animation that runs out kills the unit.
func (u *Unit) Update() {
	if u.Anim.Advance() {
		u.Kill()
	}
	u.UpdatePos()
}

// Kill marks the unit dead. It returns true only on the alive→dead transition.
func (u *Unit) Kill() bool {
	if u.Dead {
		return false
	}
	u.Dead = true
	return true
}

// Alive reports whether the unit is still alive.
func (u *Unit) Alive() bool {
	return !u.Dead
}

// CollisionBox returns the unit's AABB. Dead and non-collidable units have none.
func (u *Unit) CollisionBox() (geom.AABB, bool) {
	if u.Dead || !u.Collidable {
		return geom.AABB{}, false
	}
	return u.Box(), true
}
