package config

import "time"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Timing   TimingConfig   `yaml:"timing"`
	Rules    RulesConfig    `yaml:"rules"`
	Entities EntitiesConfig `yaml:"entities"`
	Waves    WavesConfig    `yaml:"waves"`
	Assets   AssetsConfig   `yaml:"assets"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Title        string `yaml:"title"`
	TPS          int    `yaml:"tps"` // ebiten update calls per second
}

// TimingConfig sets the simulation and render rates.
type TimingConfig struct {
	UpdatesPerSecond int `yaml:"updatesPerSecond"`
	FramesPerSecond  int `yaml:"framesPerSecond"`
}

// MsPerUpdate is the simulation period, truncated to whole milliseconds.
func (t TimingConfig) MsPerUpdate() time.Duration {
	return time.Duration(1000/t.UpdatesPerSecond) * time.Millisecond
}

// MsPerFrame is the render period, truncated to whole milliseconds.
func (t TimingConfig) MsPerFrame() time.Duration {
	return time.Duration(1000/t.FramesPerSecond) * time.Millisecond
}

type RulesConfig struct {
	StartingLives  int32   `yaml:"startingLives"`
	KillScore      uint32  `yaml:"killScore"`
	EntityBuffer   float32 `yaml:"entityBuffer"`
	RespawnDelayMs int     `yaml:"respawnDelayMs"`
}

// RespawnDelay returns the player respawn delay.
func (r RulesConfig) RespawnDelay() time.Duration {
	return time.Duration(r.RespawnDelayMs) * time.Millisecond
}

// AssetsConfig maps asset keys to files under the asset root.
type AssetsConfig struct {
	Sprites map[string]string     `yaml:"sprites"`
	Fonts   map[string]FontConfig `yaml:"fonts"`
}

// FontConfig selects a TrueType file and a point size. An empty File
// selects the bundled Go font.
type FontConfig struct {
	File string  `yaml:"file"`
	Size float64 `yaml:"size"`
	Bold bool    `yaml:"bold"`
}
