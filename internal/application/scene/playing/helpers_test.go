package playing

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/application/system"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

var t0 = time.Unix(1_700_000_000, 0)

const tick = 16 * time.Millisecond

// testTiming steps at 60 Hz and draws at up to 144 Hz.
var testTiming = Timing{MsPerUpdate: tick, MsPerFrame: 6 * time.Millisecond}

// fakeClock is a manually advanced clock
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock { return &fakeClock{now: t0} }

func (c *fakeClock) Now() time.Time                  { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fakeClock) Sleep(d time.Duration)           { c.slept = append(c.slept, d) }
func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type drawnSprite struct {
	key    string
	params port.SpriteParams
}

// fakeRenderer records every call and can fail one kind of call
type fakeRenderer struct {
	ops     []string
	sprites []drawnSprite
	texts   []port.TextParams
	failOp  string
	err     error
}

func (r *fakeRenderer) record(op string) error {
	r.ops = append(r.ops, op)
	if op == r.failOp {
		return r.err
	}
	return nil
}

func (r *fakeRenderer) Clear() error { return r.record("clear") }

func (r *fakeRenderer) DrawSprite(key string, p port.SpriteParams) error {
	r.sprites = append(r.sprites, drawnSprite{key, p})
	return r.record("sprite")
}

func (r *fakeRenderer) DrawText(t port.TextParams) error {
	r.texts = append(r.texts, t)
	return r.record("text")
}

func (r *fakeRenderer) Present() error { return r.record("present") }

func (r *fakeRenderer) textList() []string {
	out := make([]string, 0, len(r.texts))
	for _, t := range r.texts {
		out = append(out, t.Text)
	}
	return out
}

// fixedRNG always returns the same sample
type fixedRNG float32

func (r fixedRNG) Float32() float32 { return float32(r) }

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestScene builds a fresh pre-start scene whose drones spawn with zero
// jitter.
func newTestScene(opts ...Option) (*Playing, *fakeClock, *fakeRenderer) {
	return newSeededScene(fixedRNG(0.5), opts...)
}

func newSeededScene(rng port.RNG, opts ...Option) (*Playing, *fakeClock, *fakeRenderer) {
	clock := newFakeClock()
	renderer := &fakeRenderer{}
	space := entity.NewPlaySpace(640, 480, entity.EntityAreaBuffer)
	arch := entity.DefaultArchetypes()
	gs := state.New(space, arch.NewPlayer(space.PlayerSpawn()), state.DefaultLives)
	waves := system.NewWaveScheduler(system.DefaultWaveParams(), space, rng, clock.Now(), testLogger())
	sim := system.NewSimulation(arch, waves, system.DefaultRules(), testLogger())

	opts = append([]Option{WithLogger(testLogger())}, opts...)
	p := New(gs, sim, clock, renderer, geom.NewCamera(640, 480), testTiming, opts...)
	return p, clock, renderer
}

func seededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
