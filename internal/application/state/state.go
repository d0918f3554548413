// Package state holds the game-state store and the phase it is in.
package state

import "github.com/younwookim/arcadeshooter/internal/domain/entity"

// DefaultLives is the number of lives a new game starts with.
const DefaultLives = 10

// Phase represents the current phase of the game
type Phase int

const (
	PhasePreStart Phase = iota
	PhaseInPlay
	PhaseWaveInterlude
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePreStart:
		return "PreStart"
	case PhaseInPlay:
		return "InPlay"
	case PhaseWaveInterlude:
		return "WaveInterlude"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState owns every entity in the world plus the session counters.
// Entities live in one homogeneous slice per kind.
type GameState struct {
	Paused  bool
	Started bool
	Lives   int32
	Score   uint32

	Space       entity.PlaySpace
	Player      entity.Player
	Enemies     []entity.Enemy
	Projectiles []entity.Projectile
	Particles   []entity.Particle
}

// New creates a game state with the player at its spawn point.
func New(space entity.PlaySpace, player entity.Player, lives int32) *GameState {
	return &GameState{
		Lives:       lives,
		Space:       space,
		Player:      player,
		Enemies:     make([]entity.Enemy, 0, 32),
		Projectiles: make([]entity.Projectile, 0, 64),
		Particles:   make([]entity.Particle, 0, 32),
	}
}

// GameOver reports whether all lives are spent.
func (g *GameState) GameOver() bool {
	return g.Lives <= 0
}

// Simulating reports whether ticks advance the world.
func (g *GameState) Simulating() bool {
	return g.Started && !g.Paused && !g.GameOver()
}

// LoseLife removes one life. Lives never drop below zero.
func (g *GameState) LoseLife() {
	if g.Lives > 0 {
		g.Lives--
	}
}

// AddScore credits points.
func (g *GameState) AddScore(points uint32) {
	g.Score += points
}

// Phase derives the current phase. levelOver is supplied by the wave
// scheduler.
func (g *GameState) Phase(levelOver bool) Phase {
	switch {
	case !g.Started:
		return PhasePreStart
	case g.GameOver():
		return PhaseGameOver
	case levelOver:
		return PhaseWaveInterlude
	default:
		return PhaseInPlay
	}
}
