package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/config"
)

func TestLoadArchetypes(t *testing.T) {
	cfg := config.Default()

	arch, err := LoadArchetypes(cfg.Entities)
	require.NoError(t, err)

	want := entity.DefaultArchetypes()

	t.Run("matches built-in templates", func(t *testing.T) {
		for _, pair := range [][2]entity.Archetype{
			{want.Player, arch.Player},
			{want.Projectile, arch.Projectile},
			{want.Explosion, arch.Explosion},
			{want.Enemies[entity.NormalDrone], arch.Enemies[entity.NormalDrone]},
		} {
			expected, got := pair[0], pair[1]
			assert.InDelta(t, float64(expected.Rotation), float64(got.Rotation), 1e-6, expected.AssetKey)
			expected.Rotation, got.Rotation = 0, 0
			assert.Equal(t, expected, got)
		}
	})

	t.Run("drone faces left", func(t *testing.T) {
		drone := arch.Enemies[entity.NormalDrone]
		assert.InDelta(t, 3*math.Pi/2, float64(drone.Rotation), 1e-6)
	})
}

func TestLoadArchetypes_UnknownEnemy(t *testing.T) {
	cfg := config.Default()
	cfg.Entities.Enemies["Mothership"] = cfg.Entities.Enemies["NormalDrone"]

	_, err := LoadArchetypes(cfg.Entities)
	assert.ErrorContains(t, err, "Mothership")
}

func TestLoadWaveParamsAndRules(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, DefaultWaveParams(), LoadWaveParams(cfg.Waves))
	assert.Equal(t, DefaultRules(), LoadRules(cfg.Rules))
}
