package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in configuration. It matches the embedded
// game.yaml.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Title:        "Arcade Shooter",
			TPS:          240,
		},
		Timing: TimingConfig{
			UpdatesPerSecond: 60,
			FramesPerSecond:  144,
		},
		Rules: RulesConfig{
			StartingLives:  10,
			KillScore:      150,
			EntityBuffer:   100,
			RespawnDelayMs: 2000,
		},
		Entities: EntitiesConfig{
			Player: SpriteEntityConfig{
				Asset: "player", Width: 112, Height: 75, Scale: 0.5,
				Sheet: SheetConfig{Cols: 1, Rows: 1, Loops: true},
				Speed: 6, RotationDeg: 90,
			},
			Projectile: SpriteEntityConfig{
				Asset: "projectile1", Width: 14, Height: 40, Scale: 0.5,
				Sheet: SheetConfig{Cols: 1, Rows: 1, Loops: true},
				Speed: 12,
			},
			Explosion: SpriteEntityConfig{
				Asset: "explosion1", Scale: 1.5,
				Sheet:       SheetConfig{Cols: 8, Rows: 8},
				RotationDeg: 90,
			},
			Enemies: map[string]SpriteEntityConfig{
				"NormalDrone": {
					Asset: "drone1", Width: 132, Height: 128, Scale: 0.5,
					Sheet: SheetConfig{Cols: 1, Rows: 1, Loops: true},
					Speed: 5, RotationDeg: 270,
				},
			},
		},
		Waves: WavesConfig{
			BatchSize:      1,
			BaseDelayMs:    1000,
			DelayStepMs:    100,
			MinDelayMs:     100,
			DronesPerLevel: 3,
			SpawnMarginX:   20,
			SpawnOffsetX:   25,
			JitterMargin:   100,
		},
		Assets: AssetsConfig{
			Sprites: map[string]string{
				"player":      "player.png",
				"drone1":      "drone1.png",
				"projectile1": "projectile1.png",
				"explosion1":  "explosion1.png",
			},
			Fonts: map[string]FontConfig{
				"large_splash": {Size: 48, Bold: true},
				"med_splash":   {Size: 24},
			},
		},
	}
}

// Validate rejects configurations the game cannot run with.
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Display.TPS)
	case c.Timing.UpdatesPerSecond <= 0 || c.Timing.UpdatesPerSecond > 1000:
		return fmt.Errorf("%w: updatesPerSecond %d", ErrInvalidConfig, c.Timing.UpdatesPerSecond)
	case c.Timing.FramesPerSecond <= 0 || c.Timing.FramesPerSecond > 1000:
		return fmt.Errorf("%w: framesPerSecond %d", ErrInvalidConfig, c.Timing.FramesPerSecond)
	case c.Rules.StartingLives <= 0:
		return fmt.Errorf("%w: startingLives %d", ErrInvalidConfig, c.Rules.StartingLives)
	case c.Rules.EntityBuffer < 0:
		return fmt.Errorf("%w: entityBuffer %v", ErrInvalidConfig, c.Rules.EntityBuffer)
	case c.Rules.RespawnDelayMs < 0:
		return fmt.Errorf("%w: respawnDelayMs %d", ErrInvalidConfig, c.Rules.RespawnDelayMs)
	case c.Waves.BatchSize == 0:
		return fmt.Errorf("%w: waves.batchSize must be positive", ErrInvalidConfig)
	case c.Waves.DronesPerLevel <= 0:
		return fmt.Errorf("%w: waves.dronesPerLevel %d", ErrInvalidConfig, c.Waves.DronesPerLevel)
	case c.Waves.MinDelayMs < 0:
		return fmt.Errorf("%w: waves.minDelayMs %d", ErrInvalidConfig, c.Waves.MinDelayMs)
	}

	if err := c.Entities.Player.validate("player", true); err != nil {
		return err
	}
	if err := c.Entities.Projectile.validate("projectile", true); err != nil {
		return err
	}
	if err := c.Entities.Explosion.validate("explosion", false); err != nil {
		return err
	}
	if len(c.Entities.Enemies) == 0 {
		return fmt.Errorf("%w: no enemies configured", ErrInvalidConfig)
	}
	for name, e := range c.Entities.Enemies {
		if err := e.validate("enemy "+name, true); err != nil {
			return err
		}
	}
	return nil
}

func (e SpriteEntityConfig) validate(name string, moving bool) error {
	switch {
	case e.Asset == "":
		return fmt.Errorf("%w: %s has no asset", ErrInvalidConfig, name)
	case e.Width < 0 || e.Height < 0:
		return fmt.Errorf("%w: %s size %vx%v", ErrInvalidConfig, name, e.Width, e.Height)
	case e.Scale <= 0:
		return fmt.Errorf("%w: %s scale %v", ErrInvalidConfig, name, e.Scale)
	case moving && e.Speed <= 0:
		return fmt.Errorf("%w: %s speed %v", ErrInvalidConfig, name, e.Speed)
	}
	return nil
}
