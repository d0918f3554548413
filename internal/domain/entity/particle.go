package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Particle is a non-collidable effect that plays one animation and dies.
type Particle struct {
	Unit
}

// NewDroneDeath creates the explosion played when a ship is destroyed.
func (a Archetypes) NewDroneDeath(x, y float32) Particle {
	arch := a.Explosion
	arch.Loops = false
	return Particle{Unit: NewUnit(arch, geom.Vec(x, y), false)}
}
