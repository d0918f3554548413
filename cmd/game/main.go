// arcadeshooter is a side-scrolling arcade shooter.
//
// Usage:
//
//	arcadeshooter                    - Play
//	arcadeshooter --record           - Play and record key input to replay_<time>.json
//	arcadeshooter --record=out.json  - Play and record key input to out.json
//	arcadeshooter --replay out.json  - Replay a recorded session
//
// Controls:
//
//	W/A/S/D  - Move
//	Space    - Fire (press), start or next level (release)
//	Esc      - Pause
package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/arcadeshooter/internal/application/game"
	"github.com/younwookim/arcadeshooter/internal/application/replay"
	"github.com/younwookim/arcadeshooter/internal/application/scene/playing"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/assets"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/config"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/input"
	"github.com/younwookim/arcadeshooter/internal/infrastructure/render"
)

//go:embed configs
var configFS embed.FS

var (
	flagConfig string
	flagRecord string
	flagReplay string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "arcadeshooter",
	Short:        "Side-scrolling arcade shooter",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Directory containing game.yaml (default: built-in)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record key input to file (bare flag: replay_<time>.json)")
	rootCmd.Flags().Lookup("record").NoOptDefVal = autoRecord
	rootCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay key input from file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive("record", "replay")
}

func runGame(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcadeshooter",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	exe, _ := os.Executable()
	root, err := assets.FindRoot(assets.Candidates(exe))
	if err != nil {
		return err
	}
	manager := assets.NewManager(root, logger)
	if err := manager.Load(cfg.Assets, entity.AssetKeys, entity.FontKeys); err != nil {
		return err
	}

	opts := sessionOptions{}
	if flagRecord != "" {
		opts.RecordTo = recordPath(flagRecord)
	}
	if flagReplay != "" {
		data, err := replay.LoadReplay(flagReplay)
		if err != nil {
			return err
		}
		opts.Replay = data
	}

	width, height := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	renderer := render.New(manager, width, height)
	keys := input.NewPoller(input.RepeatFor(cfg.Display.TPS))

	s, err := newSession(cfg, renderer, keys, opts, logger)
	if err != nil {
		return err
	}

	g := game.New(s.scene, s.keys, renderer, width, height, game.WithBeforeUpdate(s.beforeUpdate))

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	runErr := ebiten.RunGame(g)
	g.Close()
	if err := s.finish(); err != nil {
		logger.Error("failed to save recording", "err", err)
	}
	if errors.Is(runErr, playing.ErrReplayFinished) {
		logger.Info("replay finished", "file", flagReplay)
		return nil
	}
	return runErr
}

// loadConfig reads game.yaml from dir, or the built-in copy when dir is
// empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadGame()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}
