package system

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

// WaveParams shapes every wave and where its enemies appear.
type WaveParams struct {
	BatchSize      uint32
	BaseDelay      time.Duration
	DelayStep      time.Duration
	MinDelay       time.Duration
	DronesPerLevel int

	SpawnMarginX float32
	SpawnOffsetX float32
	JitterMargin float32
}

// DefaultWaveParams returns the built-in wave parameters.
func DefaultWaveParams() WaveParams {
	return WaveParams{
		BatchSize:      1,
		BaseDelay:      1000 * time.Millisecond,
		DelayStep:      100 * time.Millisecond,
		MinDelay:       100 * time.Millisecond,
		DronesPerLevel: 3,
		SpawnMarginX:   20,
		SpawnOffsetX:   25,
		JitterMargin:   100,
	}
}

// Wave is the queue of enemies still to spawn for one level.
type Wave struct {
	SpawnBatchSize uint32
	SpawnDelay     time.Duration
	Pending        []entity.EnemyKind
}

// NewWave builds the wave for level.
func NewWave(level uint32, p WaveParams) Wave {
	delay := p.BaseDelay - p.DelayStep*time.Duration(level)
	if delay < p.MinDelay {
		delay = p.MinDelay
	}

	pending := make([]entity.EnemyKind, p.DronesPerLevel*int(level))
	for i := range pending {
		pending[i] = entity.NormalDrone
	}

	return Wave{
		SpawnBatchSize: p.BatchSize,
		SpawnDelay:     delay,
		Pending:        pending,
	}
}

// SpawnFunc places one enemy of kind at (x, y).
type SpawnFunc func(kind entity.EnemyKind, x, y float32)

// WaveScheduler releases the current wave's enemies at a fixed cadence and
// moves to the next level once the player asks for it.
type WaveScheduler struct {
	Level             uint32
	Wave              Wave
	LastSpawn         time.Time
	SpawnOrigin       geom.Vector2
	SpawnJitterRange  float32
	ProgressRequested bool

	params WaveParams
	rng    port.RNG
	logger *log.Logger
}

// NewWaveScheduler creates a scheduler on level 1. The first enemy appears
// one spawn delay after start.
func NewWaveScheduler(p WaveParams, space entity.PlaySpace, rng port.RNG, start time.Time, logger *log.Logger) *WaveScheduler {
	return &WaveScheduler{
		Level:            1,
		Wave:             NewWave(1, p),
		LastSpawn:        start,
		SpawnOrigin:      geom.Vec(space.PlayerArea.W+p.SpawnMarginX, space.PlayerArea.H/2),
		SpawnJitterRange: space.PlayerArea.H - p.JitterMargin,
		params:           p,
		rng:              rng,
		logger:           logger,
	}
}

// Update advances the level if requested and releases the next batch when
// the spawn delay has elapsed.
func (w *WaveScheduler) Update(now time.Time, spawn SpawnFunc) {
	if w.WaveComplete() && w.ProgressRequested {
		w.Level++
		w.Wave = NewWave(w.Level, w.params)
		w.ProgressRequested = false
		w.logger.Info("level started", "level", w.Level, "enemies", len(w.Wave.Pending), "delay", w.Wave.SpawnDelay)
	}

	if now.Sub(w.LastSpawn) < w.Wave.SpawnDelay || w.WaveComplete() {
		return
	}

	for i := uint32(0); i < w.Wave.SpawnBatchSize && !w.WaveComplete(); i++ {
		last := len(w.Wave.Pending) - 1
		kind := w.Wave.Pending[last]
		w.Wave.Pending = w.Wave.Pending[:last]

		x := w.SpawnOrigin.X - w.params.SpawnOffsetX
		y := w.SpawnOrigin.Y + w.SpawnJitterRange*(w.rng.Float32()-0.5)
		spawn(kind, x, y)
	}
	w.LastSpawn = now
}

// WaveComplete reports whether every enemy of the wave has spawned.
func (w *WaveScheduler) WaveComplete() bool {
	return len(w.Wave.Pending) == 0
}

// LevelOver reports whether the wave is complete and no enemy is alive.
func (w *WaveScheduler) LevelOver(enemies []entity.Enemy) bool {
	if !w.WaveComplete() {
		return false
	}
	for i := range enemies {
		if enemies[i].Alive() {
			return false
		}
	}
	return true
}

// ProgressLevel requests the next level. It takes effect on the next
// Update once the current wave is complete.
func (w *WaveScheduler) ProgressLevel() {
	w.ProgressRequested = true
}
