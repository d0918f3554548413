package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Timing.UpdatesPerSecond)
	assert.Equal(t, int32(10), cfg.Rules.StartingLives)
	assert.Equal(t, uint32(150), cfg.Rules.KillScore)

	drone, ok := cfg.Entities.Enemies["NormalDrone"]
	require.True(t, ok)
	assert.Equal(t, "drone1", drone.Asset)
	assert.Equal(t, float32(132), drone.Width)
	assert.Equal(t, float32(270), drone.RotationDeg)

	assert.Equal(t, uint32(8), cfg.Entities.Explosion.Sheet.Cols)
	assert.False(t, cfg.Entities.Explosion.Sheet.Loops)
	assert.Equal(t, "player.png", cfg.Assets.Sprites["player"])
	assert.Equal(t, 48.0, cfg.Assets.Fonts["large_splash"].Size)
}

func TestLoader_EmbeddedFileMatchesDefault(t *testing.T) {
	cfg, err := NewLoader("../../../cmd/game/configs").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "configs")

	_, err := loader.LoadGame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configs/game.yaml")
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: {Data: []byte("rules:\n  startingLives: 3\n  killScore: 10\n  entityBuffer: 100\n")},
	}

	cfg, err := NewFSLoader(fsys, "configs").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, int32(3), cfg.Rules.StartingLives)
	assert.Equal(t, uint32(10), cfg.Rules.KillScore)
	assert.Equal(t, 640, cfg.Display.ScreenWidth, "untouched sections keep defaults")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "display: [1, 2"},
		{"zero lives", "rules: {startingLives: 0, killScore: 150}"},
		{"zero width", "display: {screenWidth: 0, screenHeight: 480, tps: 60}"},
		{"zero updates", "timing: {updatesPerSecond: 0, framesPerSecond: 144}"},
		{"zero batch", "waves: {batchSize: 0, dronesPerLevel: 3}"},
		{"no player speed", "entities: {player: {asset: player, width: 1, height: 1, scale: 1, speed: 0}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidate_WrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Entities.Enemies = nil

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTimingDurations(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 16*time.Millisecond, cfg.Timing.MsPerUpdate())
	assert.Equal(t, 6*time.Millisecond, cfg.Timing.MsPerFrame())
	assert.Equal(t, 2*time.Second, cfg.Rules.RespawnDelay())
}
