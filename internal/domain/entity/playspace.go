package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// EntityAreaBuffer is how far the entity area extends past the player area
// on each horizontal side.
const EntityAreaBuffer = 100

// PlaySpace partitions the world into the player area, the entity
// retention area and the life-loss area to the left of the field.
type PlaySpace struct {
	PlayerArea   geom.Rect
	EntityArea   geom.Rect
	LifeLossArea geom.Rect

	PlayerBox   geom.AABB
	EntityBox   geom.AABB
	LifeLossBox geom.AABB

	// Visible is the world region shown through the camera.
	Visible geom.AABB
}

// NewPlaySpace lays out the partitions for a window of w×h units with the
// given horizontal entity buffer.
func NewPlaySpace(w, h, buffer float32) PlaySpace {
	player := geom.NewRect(0, h, w, h)
	entityArea := geom.NewRect(player.X-buffer, player.Y, player.W+buffer*2, player.H)
	lifeLoss := geom.NewRect(-w, h, w, h)

	return PlaySpace{
		PlayerArea:   player,
		EntityArea:   entityArea,
		LifeLossArea: lifeLoss,
		PlayerBox:    player.AABB(),
		EntityBox:    entityArea.AABB(),
		LifeLossBox:  lifeLoss.AABB(),
		Visible:      geom.AABB{Max: geom.Vec(w, h)},
	}
}

// PlayerSpawn returns the player's starting position.
func (s *PlaySpace) PlayerSpawn() geom.Vector2 {
	return geom.Vec(s.PlayerArea.W/3, s.PlayerArea.H/2)
}

// Retains reports whether an entity at pos stays in the world.
func (s *PlaySpace) Retains(pos geom.Vector2) bool {
	return s.EntityBox.ContainsPoint(pos)
}

// CostsLife reports whether box lies fully inside the life-loss area.
func (s *PlaySpace) CostsLife(box geom.AABB) bool {
	return s.LifeLossBox.Contains(box)
}
