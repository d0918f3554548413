package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Enemy represents an enemy ship
type Enemy struct {
	Unit
	Kind EnemyKind
}

// NewEnemy builds an enemy of the given kind travelling leftward.
// Unknown kinds return false.
func (a Archetypes) NewEnemy(kind EnemyKind, x, y float32) (Enemy, bool) {
	arch, ok := a.Enemies[kind]
	if !ok {
		return Enemy{}, false
	}
	e := Enemy{Unit: NewUnit(arch, geom.Vec(x, y), true), Kind: kind}
	e.Velocity = Velocity{Speed: arch.Speed, Heading: HeadingLeft}
	return e, true
}

// DeathPoint returns where a ship's death explosion is placed.
func DeathPoint(b *Body) geom.Vector2 {
	return geom.Vec(b.Pos.X+b.HalfSize.X/1.5, b.Pos.Y)
}
