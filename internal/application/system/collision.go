package system

import (
	"time"

	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

// resolveCollisions runs both passes against the player box taken at the
// start of the tick, so every hit on the player that tick is recorded.
func (s *Simulation) resolveCollisions(gs *state.GameState, now time.Time) {
	playerBox, playerHittable := gs.Player.CollisionBox()
	if playerHittable {
		s.checkPlayerEnemyCollisions(gs, playerBox, now)
	}
	s.checkProjectileCollisions(gs, playerBox, playerHittable, now)
}

// checkPlayerEnemyCollisions destroys the player and every enemy it touches.
func (s *Simulation) checkPlayerEnemyCollisions(gs *state.GameState, playerBox geom.AABB, now time.Time) {
	for i := range gs.Enemies {
		enemy := &gs.Enemies[i]
		enemyBox, ok := enemy.CollisionBox()
		if !ok || !playerBox.Intersects(enemyBox) {
			continue
		}
		s.explode(gs, &enemy.Body)
		enemy.Kill()
		s.killPlayer(gs, now)
	}
}

// checkProjectileCollisions resolves player shots against enemies and enemy
// shots against the player. A projectile stops at its first hit.
func (s *Simulation) checkProjectileCollisions(gs *state.GameState, playerBox geom.AABB, playerHittable bool, now time.Time) {
	for i := range gs.Projectiles {
		proj := &gs.Projectiles[i]
		projBox, ok := proj.CollisionBox()
		if !ok {
			continue
		}

		if !proj.PlayerOwned {
			if playerHittable && projBox.Intersects(playerBox) {
				proj.Kill()
				s.killPlayer(gs, now)
			}
			continue
		}

		for j := range gs.Enemies {
			enemy := &gs.Enemies[j]
			enemyBox, ok := enemy.CollisionBox()
			if !ok || !projBox.Intersects(enemyBox) {
				continue
			}
			s.explode(gs, &enemy.Body)
			if enemy.Kill() {
				gs.AddScore(s.rules.KillScore)
			}
			proj.Kill()
			break
		}
	}
}

func (s *Simulation) killPlayer(gs *state.GameState, now time.Time) {
	if !gs.Player.Alive() {
		return
	}
	s.explode(gs, &gs.Player.Body)
	gs.Player.Die(now)
	s.logger.Info("player destroyed", "lives", gs.Lives, "score", gs.Score)
}

func (s *Simulation) explode(gs *state.GameState, b *entity.Body) {
	at := entity.DeathPoint(b)
	gs.Particles = append(gs.Particles, s.arch.NewDroneDeath(at.X, at.Y))
}
