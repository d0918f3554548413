package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/arcadeshooter/internal/domain/entity"
)

func newTestState() *GameState {
	space := entity.NewPlaySpace(640, 480, entity.EntityAreaBuffer)
	player := entity.DefaultArchetypes().NewPlayer(space.PlayerSpawn())
	return New(space, player, DefaultLives)
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePreStart, "PreStart"},
		{PhaseInPlay, "InPlay"},
		{PhaseWaveInterlude, "WaveInterlude"},
		{PhaseGameOver, "GameOver"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Phase(0), PhasePreStart)
	assert.Equal(t, Phase(1), PhaseInPlay)
	assert.Equal(t, Phase(2), PhaseWaveInterlude)
	assert.Equal(t, Phase(3), PhaseGameOver)
}

func TestNew(t *testing.T) {
	gs := newTestState()

	assert.False(t, gs.Started)
	assert.False(t, gs.Paused)
	assert.Equal(t, int32(10), gs.Lives)
	assert.Equal(t, uint32(0), gs.Score)
	assert.Empty(t, gs.Enemies)
	assert.Empty(t, gs.Projectiles)
	assert.Empty(t, gs.Particles)
	assert.Equal(t, gs.Space.PlayerSpawn(), gs.Player.Pos)
}

func TestGameState_Simulating(t *testing.T) {
	gs := newTestState()
	assert.False(t, gs.Simulating(), "not started")

	gs.Started = true
	assert.True(t, gs.Simulating())

	gs.Paused = true
	assert.False(t, gs.Simulating(), "paused")

	gs.Paused = false
	gs.Lives = 0
	assert.False(t, gs.Simulating(), "game over")
}

func TestGameState_LoseLife(t *testing.T) {
	gs := newTestState()
	gs.Lives = 1

	gs.LoseLife()
	assert.Equal(t, int32(0), gs.Lives)
	assert.True(t, gs.GameOver())

	gs.LoseLife()
	assert.Equal(t, int32(0), gs.Lives, "lives never go negative")
}

func TestGameState_Phase(t *testing.T) {
	gs := newTestState()
	assert.Equal(t, PhasePreStart, gs.Phase(true), "pre-start wins over level over")

	gs.Started = true
	assert.Equal(t, PhaseInPlay, gs.Phase(false))
	assert.Equal(t, PhaseWaveInterlude, gs.Phase(true))

	gs.Lives = 0
	assert.Equal(t, PhaseGameOver, gs.Phase(true))
}
