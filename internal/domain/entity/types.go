package entity

import "math"

// Asset keys understood by the asset manager.
const (
	AssetPlayer     = "player"
	AssetDrone      = "drone1"
	AssetProjectile = "projectile1"
	AssetExplosion  = "explosion1"
)

// Font keys used by the overlay.
const (
	FontLargeSplash = "large_splash"
	FontMedSplash   = "med_splash"
)

// FallbackAsset is drawn in place of any unknown asset key.
const FallbackAsset = AssetProjectile

// AssetKeys lists every sprite the game needs at startup.
var AssetKeys = []string{AssetPlayer, AssetDrone, AssetProjectile, AssetExplosion}

// FontKeys lists every font the overlay needs at startup.
var FontKeys = []string{FontLargeSplash, FontMedSplash}

// ResolveAssetKey maps key onto a known asset key. Unknown keys resolve to
// FallbackAsset and ok is false.
func ResolveAssetKey(key string) (resolved string, ok bool) {
	switch key {
	case AssetPlayer, AssetDrone, AssetProjectile, AssetExplosion:
		return key, true
	default:
		return FallbackAsset, false
	}
}

// Headings, in radians from +X.
const (
	HeadingRight = 0
	HeadingLeft  = math.Pi
)

// Display rotations. Sprites are authored facing up.
const (
	RotationFaceRight = math.Pi / 2
	RotationFaceLeft  = 3 * math.Pi / 2
)

// EnemyKind identifies an enemy template.
type EnemyKind int

const (
	NormalDrone EnemyKind = iota
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case NormalDrone:
		return "NormalDrone"
	default:
		return "Unknown"
	}
}

// ParseEnemyKind returns the kind named s.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch s {
	case "NormalDrone":
		return NormalDrone, true
	default:
		return 0, false
	}
}
