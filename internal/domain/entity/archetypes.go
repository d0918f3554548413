package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Archetypes holds the templates used to build every entity.
type Archetypes struct {
	Player     Archetype
	Projectile Archetype
	Explosion  Archetype
	Enemies    map[EnemyKind]Archetype
}

// DefaultArchetypes returns the built-in templates.
func DefaultArchetypes() Archetypes {
	return Archetypes{
		Player: Archetype{
			AssetKey: AssetPlayer,
			Width:    112,
			Height:   75,
			Scale:    0.5,
			Cols:     1,
			Rows:     1,
			Loops:    true,
			Speed:    6,
			Rotation: RotationFaceRight,
		},
		Projectile: Archetype{
			AssetKey: AssetProjectile,
			Width:    14,
			Height:   40,
			Scale:    0.5,
			Cols:     1,
			Rows:     1,
			Loops:    true,
			Speed:    12,
		},
		Explosion: Archetype{
			AssetKey: AssetExplosion,
			Scale:    1.5,
			Cols:     8,
			Rows:     8,
			Rotation: RotationFaceRight,
		},
		Enemies: map[EnemyKind]Archetype{
			NormalDrone: {
				AssetKey: AssetDrone,
				Width:    132,
				Height:   128,
				Scale:    0.5,
				Cols:     1,
				Rows:     1,
				Loops:    true,
				Speed:    5,
				Rotation: RotationFaceLeft,
			},
		},
	}
}

// NewPlayer creates the player at spawn.
func (a Archetypes) NewPlayer(spawn geom.Vector2) Player {
	return NewPlayer(a.Player, spawn)
}
