package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

var spritePivot = geom.Vec(0.5, 0.5)

// Render draws a frame if a full frame period has elapsed since the last
// one. Otherwise it sleeps for a third of the remaining period.
func (p *Playing) Render(now time.Time) error {
	elapsed := now.Sub(p.lastDraw)
	if elapsed < p.timing.MsPerFrame {
		p.clock.Sleep((p.timing.MsPerFrame - elapsed) / 3)
		return nil
	}
	p.lastDraw = now

	if err := p.renderer.Clear(); err != nil {
		return fmt.Errorf("render clear: %w", err)
	}
	if err := p.drawWorld(p.Alpha(now)); err != nil {
		return err
	}
	for _, line := range BuildOverlay(p.state, p.sim.Waves().Level, p.sim.LevelOver(p.state)) {
		if err := p.renderer.DrawText(line); err != nil {
			return fmt.Errorf("render text %q: %w", line.Text, err)
		}
	}
	if err := p.renderer.Present(); err != nil {
		return fmt.Errorf("render present: %w", err)
	}
	return nil
}

// drawWorld draws projectiles, enemies, the player and particles, in that order.
func (p *Playing) drawWorld(alpha float32) error {
	gs := p.state
	for i := range gs.Projectiles {
		if err := p.drawUnit(&gs.Projectiles[i].Unit, alpha); err != nil {
			return err
		}
	}
	for i := range gs.Enemies {
		if err := p.drawUnit(&gs.Enemies[i].Unit, alpha); err != nil {
			return err
		}
	}
	if err := p.drawUnit(&gs.Player.Unit, alpha); err != nil {
		return err
	}
	for i := range gs.Particles {
		if err := p.drawUnit(&gs.Particles[i].Unit, alpha); err != nil {
			return err
		}
	}
	return nil
}

func (p *Playing) drawUnit(u *entity.Unit, alpha float32) error {
	if !u.Alive() {
		return nil
	}

	key, ok := entity.ResolveAssetKey(u.AssetKey)
	if !ok {
		p.logger.Debug("unknown asset key", "key", u.AssetKey, "fallback", key)
	}

	params := SpriteParams(u, p.camera, alpha)
	if err := p.renderer.DrawSprite(key, params); err != nil {
		return fmt.Errorf("render sprite %s: %w", key, err)
	}
	return nil
}

// SpriteParams computes where and how a unit is drawn, extrapolated by
// alpha ticks of movement.
func SpriteParams(u *entity.Unit, camera geom.Camera, alpha float32) port.SpriteParams {
	return port.SpriteParams{
		Dest:     camera.View(u.Interpolated(alpha)),
		Rotation: u.Rotation,
		Scale:    u.Scale,
		Pivot:    spritePivot,
		Cell:     u.Anim.Cell(),
	}
}
