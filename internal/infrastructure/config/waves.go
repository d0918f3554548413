package config

// WavesConfig drives the wave scheduler.
//
// Spawn delay for level L is max(MinDelayMs, BaseDelayMs - DelayStepMs*L)
// and a level holds DronesPerLevel*L drones.
type WavesConfig struct {
	BatchSize      uint32  `yaml:"batchSize"`
	BaseDelayMs    int     `yaml:"baseDelayMs"`
	DelayStepMs    int     `yaml:"delayStepMs"`
	MinDelayMs     int     `yaml:"minDelayMs"`
	DronesPerLevel int     `yaml:"dronesPerLevel"`
	SpawnMarginX   float32 `yaml:"spawnMarginX"` // origin distance past the right edge
	SpawnOffsetX   float32 `yaml:"spawnOffsetX"` // pulled back from the origin on spawn
	JitterMargin   float32 `yaml:"jitterMargin"` // subtracted from the field height
}
