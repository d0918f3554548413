package config

// EntitiesConfig describes every entity template
type EntitiesConfig struct {
	Player     SpriteEntityConfig            `yaml:"player"`
	Projectile SpriteEntityConfig            `yaml:"projectile"`
	Explosion  SpriteEntityConfig            `yaml:"explosion"`
	Enemies    map[string]SpriteEntityConfig `yaml:"enemies"`
}

// SpriteEntityConfig describes one sprite-backed entity.
type SpriteEntityConfig struct {
	Asset       string      `yaml:"asset"`
	Width       float32     `yaml:"width"`
	Height      float32     `yaml:"height"`
	Scale       float32     `yaml:"scale"`
	Sheet       SheetConfig `yaml:"sheet"`
	Speed       float32     `yaml:"speed"`
	RotationDeg float32     `yaml:"rotationDeg"`
}

// SheetConfig is the sprite-sheet grid.
type SheetConfig struct {
	Cols  uint32 `yaml:"cols"`
	Rows  uint32 `yaml:"rows"`
	Loops bool   `yaml:"loops"`
}
