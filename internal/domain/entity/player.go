package entity

import (
	"math"
	"time"

	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

// MoveDir indexes the player's move flags.
type MoveDir int

const (
	MoveUp MoveDir = iota
	MoveDown
	MoveRight
	MoveLeft
)

// moveVectors maps each MoveDir to its world direction (Y up).
var moveVectors = [4]geom.Vector2{
	MoveUp:    {X: 0, Y: 1},
	MoveDown:  {X: 0, Y: -1},
	MoveRight: {X: 1, Y: 0},
	MoveLeft:  {X: -1, Y: 0},
}

// Player represents the player ship
type Player struct {
	Unit
	MoveFlags [4]bool
	BaseSpeed float32
	LastDeath time.Time
	Spawn     geom.Vector2
	archetype Archetype
}

// NewPlayer creates a player at spawn. BaseSpeed is taken from the archetype.
func NewPlayer(a Archetype, spawn geom.Vector2) Player {
	return Player{
		Unit:      NewUnit(a, spawn, true),
		BaseSpeed: a.Speed,
		Spawn:     spawn,
		archetype: a,
	}
}

// SetMove sets or clears one move flag.
func (p *Player) SetMove(dir MoveDir, active bool) {
	if dir < MoveUp || dir > MoveLeft {
		return
	}
	p.MoveFlags[dir] = active
}

// Direction returns the unit vector of the active move flags, or the zero
// vector when no flag is set or the flags cancel out.
func (p *Player) Direction() geom.Vector2 {
	var sum geom.Vector2
	for i, on := range p.MoveFlags {
		if on {
			sum = sum.Add(moveVectors[i])
		}
	}
	return sum.Normalize()
}

// UpdateHeading derives the velocity from the move flags.
func (p *Player) UpdateHeading() {
	dir := p.Direction()
	if dir == (geom.Vector2{}) {
		p.Velocity.Speed = 0
		return
	}
	p.Velocity.Speed = p.BaseSpeed
	p.Velocity.Heading = float32(math.Atan2(float64(dir.Y), float64(dir.X)))
}

// Update steers, animates and moves the player.
func (p *Player) Update() {
	p.UpdateHeading()
	p.Unit.Update()
}

// ClampTo keeps the player's collision box inside area.
func (p *Player) ClampTo(area geom.AABB) {
	half := p.ScaledHalfSize()
	p.Pos.X = geom.Clamp(p.Pos.X, area.Min.X+half.X, area.Max.X-half.X)
	p.Pos.Y = geom.Clamp(p.Pos.Y, area.Min.Y+half.Y, area.Max.Y-half.Y)
}

// Die kills the player and records the time of death.
// It returns true only on the alive→dead transition.
func (p *Player) Die(now time.Time) bool {
	if !p.Kill() {
		return false
	}
	p.LastDeath = now
	p.Velocity.Speed = 0
	return true
}

// CanRespawn reports whether delay has passed since the player died.
func (p *Player) CanRespawn(now time.Time, delay time.Duration) bool {
	return p.Dead && now.Sub(p.LastDeath) >= delay
}

// Respawn revives the player at its spawn point. Held move flags are kept.
func (p *Player) Respawn() {
	p.Unit = NewUnit(p.archetype, p.Spawn, true)
}
