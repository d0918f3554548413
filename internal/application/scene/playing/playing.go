// Package playing provides the main gameplay scene: the frame driver that
// paces simulation steps and renders the world with interpolation.
package playing

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/application/replay"
	"github.com/younwookim/arcadeshooter/internal/application/scene"
	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/application/system"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

// ErrReplayFinished is returned by Update once a replayed session has run
// all of its recorded ticks.
var ErrReplayFinished = errors.New("replay finished")

// Timing sets how often the world steps and how often it is drawn.
type Timing struct {
	MsPerUpdate time.Duration
	MsPerFrame  time.Duration
}

// Option configures a Playing scene.
type Option func(*Playing)

// WithLogger sets the scene logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Playing) { p.logger = l }
}

// WithRecorder records every key event the scene receives.
func WithRecorder(r *Recorder) Option {
	return func(p *Playing) { p.recorder = r }
}

// WithReplayer feeds recorded key events before each tick.
func WithReplayer(r *replay.Replayer) Option {
	return func(p *Playing) { p.replayer = r }
}

// Playing is the main gameplay scene
type Playing struct {
	state    *state.GameState
	sim      *system.Simulation
	clock    port.Clock
	renderer port.Renderer
	camera   geom.Camera
	timing   Timing
	logger   *log.Logger

	lastUpdate time.Time
	lastDraw   time.Time
	ticks      int

	recorder *Recorder
	replayer *replay.Replayer
}

// New creates a new Playing scene over gs.
func New(gs *state.GameState, sim *system.Simulation, clock port.Clock, renderer port.Renderer, camera geom.Camera, timing Timing, opts ...Option) *Playing {
	now := clock.Now()
	p := &Playing{
		state:      gs,
		sim:        sim,
		clock:      clock,
		renderer:   renderer,
		camera:     camera,
		timing:     timing,
		logger:     log.New(io.Discard),
		lastUpdate: now,
		lastDraw:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the game state driven by the scene.
func (p *Playing) State() *state.GameState {
	return p.state
}

// Phase returns the current game phase.
func (p *Playing) Phase() state.Phase {
	return p.state.Phase(p.sim.LevelOver(p.state))
}

// Ticks returns the number of update periods elapsed.
func (p *Playing) Ticks() int {
	return p.ticks
}

// Tick runs one simulation step if a full update period has elapsed since
// the last one. It never runs more than one step per call and reports
// whether a period elapsed.
func (p *Playing) Tick(now time.Time) bool {
	if now.Sub(p.lastUpdate) < p.timing.MsPerUpdate {
		return false
	}

	if p.replayer != nil {
		for _, ev := range p.replayer.EventsFor(p.ticks) {
			p.apply(ev)
		}
	}

	if p.state.Simulating() {
		p.sim.Step(p.state, now)
	}
	p.lastUpdate = now
	p.ticks++
	if p.recorder != nil {
		p.recorder.EndTick()
	}
	return true
}

// OnKey applies a key event. Its effect is visible from the next tick.
func (p *Playing) OnKey(ev port.KeyEvent) {
	if p.recorder != nil {
		p.recorder.RecordKey(p.ticks, ev)
	}
	p.apply(ev)
}

func (p *Playing) apply(ev port.KeyEvent) {
	cmd, ok := system.MapKey(ev)
	if !ok {
		return
	}
	p.sim.Apply(p.state, cmd)
}

// Alpha returns the interpolation factor between the last step and the
// next, in [0, 1]. It is 0 whenever the world is not moving.
func (p *Playing) Alpha(now time.Time) float32 {
	if !p.state.Simulating() || !p.state.Player.Alive() {
		return 0
	}
	alpha := float32(now.Sub(p.lastUpdate)) / float32(p.timing.MsPerUpdate)
	return geom.Clamp(alpha, 0, 1)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if p.replayer != nil && p.replayer.Done(p.ticks) {
		return nil, ErrReplayFinished
	}
	p.Tick(p.clock.Now())
	return nil, nil // nil = stay on this scene
}

// Draw renders the game screen (implements scene.Scene)
func (p *Playing) Draw() error {
	return p.Render(p.clock.Now())
}

// HandleKey implements scene.Scene
func (p *Playing) HandleKey(ev port.KeyEvent) {
	p.OnKey(ev)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	now := p.clock.Now()
	p.lastUpdate = now
	p.lastDraw = now
	p.logger.Info("entering play", "lives", p.state.Lives, "level", p.sim.Waves().Level)
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.logger.Info("leaving play", "score", p.state.Score, "ticks", p.ticks)
}
