package system

import (
	"fmt"
	"math"
	"time"

	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/config"
)

// LoadArchetypes converts the entity configuration into templates.
func LoadArchetypes(cfg config.EntitiesConfig) (entity.Archetypes, error) {
	arch := entity.Archetypes{
		Player:     toArchetype(cfg.Player),
		Projectile: toArchetype(cfg.Projectile),
		Explosion:  toArchetype(cfg.Explosion),
		Enemies:    make(map[entity.EnemyKind]entity.Archetype, len(cfg.Enemies)),
	}

	for name, e := range cfg.Enemies {
		kind, ok := entity.ParseEnemyKind(name)
		if !ok {
			return entity.Archetypes{}, fmt.Errorf("unknown enemy kind %q", name)
		}
		arch.Enemies[kind] = toArchetype(e)
	}
	return arch, nil
}

func toArchetype(c config.SpriteEntityConfig) entity.Archetype {
	return entity.Archetype{
		AssetKey: c.Asset,
		Width:    c.Width,
		Height:   c.Height,
		Scale:    c.Scale,
		Cols:     c.Sheet.Cols,
		Rows:     c.Sheet.Rows,
		Loops:    c.Sheet.Loops,
		Speed:    c.Speed,
		Rotation: float32(float64(c.RotationDeg) * math.Pi / 180),
	}
}

// LoadWaveParams converts the wave configuration.
func LoadWaveParams(cfg config.WavesConfig) WaveParams {
	return WaveParams{
		BatchSize:      cfg.BatchSize,
		BaseDelay:      time.Duration(cfg.BaseDelayMs) * time.Millisecond,
		DelayStep:      time.Duration(cfg.DelayStepMs) * time.Millisecond,
		MinDelay:       time.Duration(cfg.MinDelayMs) * time.Millisecond,
		DronesPerLevel: cfg.DronesPerLevel,
		SpawnMarginX:   cfg.SpawnMarginX,
		SpawnOffsetX:   cfg.SpawnOffsetX,
		JitterMargin:   cfg.JitterMargin,
	}
}

// LoadRules converts the rules configuration.
func LoadRules(cfg config.RulesConfig) Rules {
	return Rules{
		KillScore:    cfg.KillScore,
		RespawnDelay: cfg.RespawnDelay(),
	}
}
