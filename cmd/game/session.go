package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/arcadeshooter/internal/application/game"
	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/application/replay"
	"github.com/younwookim/arcadeshooter/internal/application/scene/playing"
	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/application/system"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/clock"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/config"
)

// sessionOptions selects live, recorded or replayed play.
type sessionOptions struct {
	RecordTo string
	Replay   *replay.ReplayData
	Seed     int64 // 0 = time based; ignored when replaying
}

// session is one run of the game from start to window close.
type session struct {
	scene    *playing.Playing
	keys     game.KeySource
	stepped  *clock.Stepped
	recorder *playing.Recorder
	recordTo string
	logger   *log.Logger
}

// autoRecord is the --record value used when the flag is given bare.
const autoRecord = "auto"

// noKeys ignores the keyboard during replays.
type noKeys struct{}

func (noKeys) Poll() []port.KeyEvent { return nil }

// newSession wires the simulation, scene and clock for one run. Recorded
// and replayed sessions run on a clock stepped once per ebiten tick so the
// replay sees identical timing.
func newSession(cfg *config.GameConfig, renderer port.Renderer, keys game.KeySource, opts sessionOptions, logger *log.Logger) (*session, error) {
	arch, err := system.LoadArchetypes(cfg.Entities)
	if err != nil {
		return nil, err
	}

	s := &session{keys: keys, recordTo: opts.RecordTo, logger: logger}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var sceneOpts []playing.Option
	switch {
	case opts.Replay != nil:
		replayer := replay.NewReplayer(*opts.Replay)
		seed = replayer.Seed()
		s.keys = noKeys{}
		s.stepped = clock.NewStepped(clock.Epoch, time.Second/time.Duration(cfg.Display.TPS))
		sceneOpts = append(sceneOpts, playing.WithReplayer(replayer))
		logger.Info("replaying", "seed", seed, "ticks", replayer.TotalTicks())
	case opts.RecordTo != "":
		s.stepped = clock.NewStepped(clock.Epoch, time.Second/time.Duration(cfg.Display.TPS))
		s.recorder = playing.NewRecorder(seed)
		sceneOpts = append(sceneOpts, playing.WithRecorder(s.recorder))
		logger.Info("recording", "file", opts.RecordTo, "seed", seed)
	}

	var clk port.Clock = clock.System{}
	if s.stepped != nil {
		clk = s.stepped
	}

	width, height := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	space := entity.NewPlaySpace(float32(width), float32(height), cfg.Rules.EntityBuffer)
	gs := state.New(space, arch.NewPlayer(space.PlayerSpawn()), cfg.Rules.StartingLives)

	rng := rand.New(rand.NewSource(seed))
	waves := system.NewWaveScheduler(system.LoadWaveParams(cfg.Waves), space, rng, clk.Now(), logger)
	sim := system.NewSimulation(arch, waves, system.LoadRules(cfg.Rules), logger)

	timing := playing.Timing{
		MsPerUpdate: cfg.Timing.MsPerUpdate(),
		MsPerFrame:  cfg.Timing.MsPerFrame(),
	}
	sceneOpts = append([]playing.Option{playing.WithLogger(logger)}, sceneOpts...)
	s.scene = playing.New(gs, sim, clk, renderer, geom.NewCamera(width, height), timing, sceneOpts...)
	return s, nil
}

// beforeUpdate advances the stepped clock, if any.
func (s *session) beforeUpdate() {
	if s.stepped != nil {
		s.stepped.Step()
	}
}

// finish logs the final result and saves the recording, if any. Calling
// it again does nothing.
func (s *session) finish() error {
	gs := s.scene.State()
	s.logger.Info("session ended", "score", gs.Score, "lives", gs.Lives, "ticks", s.scene.Ticks())

	if s.recorder == nil || !s.recorder.IsRecording() {
		return nil
	}
	s.recorder.Stop()
	if err := s.recorder.Save(s.recordTo); err != nil {
		return err
	}
	s.logger.Info("recording saved", "file", s.recordTo, "ticks", s.recorder.TickCount(), "events", len(s.recorder.GetData().Events))
	return nil
}

// recordPath returns the file a --record flag value names. The bare flag
// picks a timestamped name.
func recordPath(flag string) string {
	if flag == autoRecord {
		return playing.GenerateFilename()
	}
	return flag
}
