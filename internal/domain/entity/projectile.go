package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Projectile represents a shot fired by the player or an enemy
type Projectile struct {
	Unit
	PlayerOwned bool
}

// NewProjectile creates a projectile at pos. Player shots travel rightward,
// enemy shots leftward.
func (a Archetypes) NewProjectile(pos geom.Vector2, playerOwned bool) Projectile {
	arch := a.Projectile
	heading := float32(HeadingLeft)
	arch.Rotation = RotationFaceLeft
	if playerOwned {
		heading = HeadingRight
		arch.Rotation = RotationFaceRight
	}
	p := Projectile{Unit: NewUnit(arch, pos, true), PlayerOwned: playerOwned}
	p.Velocity = Velocity{Speed: arch.Speed, Heading: heading}
	return p
}
