package system

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

var t0 = time.Unix(1_700_000_000, 0)

const tick = 16 * time.Millisecond

// fixedRNG always returns the same sample
type fixedRNG float32

func (r fixedRNG) Float32() float32 { return float32(r) }

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestSpace() entity.PlaySpace {
	return entity.NewPlaySpace(640, 480, entity.EntityAreaBuffer)
}

// newTestWorld returns a started game whose first drone is due one spawn
// delay after t0. Spawn jitter is zero.
func newTestWorld() (*Simulation, *state.GameState) {
	space := newTestSpace()
	arch := entity.DefaultArchetypes()
	gs := state.New(space, arch.NewPlayer(space.PlayerSpawn()), state.DefaultLives)
	gs.Started = true
	waves := NewWaveScheduler(DefaultWaveParams(), space, fixedRNG(0.5), t0, testLogger())
	return NewSimulation(arch, waves, DefaultRules(), testLogger()), gs
}

func addEnemy(gs *state.GameState, x, y float32) *entity.Enemy {
	e, _ := entity.DefaultArchetypes().NewEnemy(entity.NormalDrone, x, y)
	gs.Enemies = append(gs.Enemies, e)
	return &gs.Enemies[len(gs.Enemies)-1]
}

func addProjectile(gs *state.GameState, x, y float32, playerOwned bool) {
	gs.Projectiles = append(gs.Projectiles, entity.DefaultArchetypes().NewProjectile(geom.Vec(x, y), playerOwned))
}
