// Package system runs the simulation: motion, collisions, life loss, culling
// and wave spawning, plus the commands that steer it.
package system

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
)

// Rules are the scoring and respawn rules.
type Rules struct {
	KillScore    uint32
	RespawnDelay time.Duration
}

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		KillScore:    150,
		RespawnDelay: 2 * time.Second,
	}
}

// Simulation advances a GameState one fixed step at a time.
type Simulation struct {
	arch   entity.Archetypes
	waves  *WaveScheduler
	rules  Rules
	logger *log.Logger
}

// NewSimulation creates a simulation spawning from arch and waves.
func NewSimulation(arch entity.Archetypes, waves *WaveScheduler, rules Rules, logger *log.Logger) *Simulation {
	return &Simulation{
		arch:   arch,
		waves:  waves,
		rules:  rules,
		logger: logger,
	}
}

// Waves returns the wave scheduler.
func (s *Simulation) Waves() *WaveScheduler {
	return s.waves
}

// LevelOver reports whether the current level has been cleared.
func (s *Simulation) LevelOver(gs *state.GameState) bool {
	return s.waves.LevelOver(gs.Enemies)
}

// Step runs one simulation step: integrate, collide, life loss, cull and
// wave advance, in that order. While the player is dead only particles
// move and the wave scheduler waits.
func (s *Simulation) Step(gs *state.GameState, now time.Time) {
	if gs.Player.CanRespawn(now, s.rules.RespawnDelay) {
		gs.Player.Respawn()
		s.logger.Info("player respawned", "lives", gs.Lives)
	}

	playerAlive := gs.Player.Alive()

	if playerAlive {
		s.integrate(gs)
		s.resolveCollisions(gs, now)
	} else {
		for i := range gs.Particles {
			gs.Particles[i].Update()
		}
	}

	s.applyLifeLoss(gs)
	s.cull(gs)

	if playerAlive {
		s.waves.Update(now, func(kind entity.EnemyKind, x, y float32) {
			s.spawnEnemy(gs, kind, x, y)
		})
	}
}

func (s *Simulation) integrate(gs *state.GameState) {
	gs.Player.Update()
	gs.Player.ClampTo(gs.Space.Visible)

	for i := range gs.Enemies {
		gs.Enemies[i].Update()
	}
	for i := range gs.Projectiles {
		gs.Projectiles[i].Update()
	}
	for i := range gs.Particles {
		gs.Particles[i].Update()
	}
}

func (s *Simulation) applyLifeLoss(gs *state.GameState) {
	wasOver := gs.GameOver()
	for i := range gs.Enemies {
		box, ok := gs.Enemies[i].CollisionBox()
		if !ok || !gs.Space.CostsLife(box) {
			continue
		}
		gs.Enemies[i].Kill()
		gs.LoseLife()
		s.logger.Debug("enemy escaped", "lives", gs.Lives)
	}
	if !wasOver && gs.GameOver() {
		s.logger.Info("game over", "score", gs.Score, "level", s.waves.Level)
	}
}

func (s *Simulation) cull(gs *state.GameState) {
	gs.Enemies = retain(gs.Enemies, func(e *entity.Enemy) bool {
		return e.Alive() && gs.Space.Retains(e.Pos)
	})
	gs.Projectiles = retain(gs.Projectiles, func(p *entity.Projectile) bool {
		return p.Alive() && gs.Space.Retains(p.Pos)
	})
	gs.Particles = retain(gs.Particles, func(p *entity.Particle) bool {
		return p.Alive() && gs.Space.Retains(p.Pos)
	})
}

// retain filters items in place, keeping order.
func retain[T any](items []T, keep func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if keep(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

func (s *Simulation) spawnEnemy(gs *state.GameState, kind entity.EnemyKind, x, y float32) {
	e, ok := s.arch.NewEnemy(kind, x, y)
	if !ok {
		s.logger.Debug("skipping unknown enemy kind", "kind", kind)
		return
	}
	gs.Enemies = append(gs.Enemies, e)
	s.logger.Debug("enemy spawned", "kind", kind, "x", x, "y", y, "pending", len(s.waves.Wave.Pending))
}

// Apply executes a command against gs.
func (s *Simulation) Apply(gs *state.GameState, cmd Command) {
	switch c := cmd.(type) {
	case MoveCommand:
		gs.Player.SetMove(c.Dir, c.Active)
	case FireCommand:
		if !gs.Simulating() || !gs.Player.Alive() {
			return
		}
		gs.Projectiles = append(gs.Projectiles, s.arch.NewProjectile(gs.Player.Pos, true))
	case TogglePauseCommand:
		gs.Paused = !gs.Paused
	case ConfirmCommand:
		if !gs.Started {
			gs.Started = true
			s.logger.Info("game started", "level", s.waves.Level, "lives", gs.Lives)
		}
		if s.LevelOver(gs) && !gs.GameOver() && !s.waves.ProgressRequested {
			s.waves.ProgressLevel()
			s.logger.Debug("level progression requested", "level", s.waves.Level)
		}
	}
}
