package assets

import (
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	// PNG decoder for ebitenutil.
	_ "image/png"

	"github.com/younwookim/arcadeshooter/internal/infrastructure/config"
)

// Manager holds the loaded images and faces by key.
type Manager struct {
	fsys     fs.FS
	basePath string
	logger   *log.Logger

	images map[string]*ebiten.Image
	faces  map[string]font.Face
}

// NewManager creates a manager reading from the directory root.
func NewManager(root string, logger *log.Logger) *Manager {
	return NewFSManager(os.DirFS(root), root, logger)
}

// NewFSManager creates a manager reading from fsys.
func NewFSManager(fsys fs.FS, basePath string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		fsys:     fsys,
		basePath: basePath,
		logger:   logger,
		images:   make(map[string]*ebiten.Image),
		faces:    make(map[string]font.Face),
	}
}

// Load reads every sprite and font named in cfg. The first failure is
// returned as a *LoadError.
func (m *Manager) Load(cfg config.AssetsConfig, required, requiredFonts []string) error {
	if err := checkRequired(cfg, required, requiredFonts); err != nil {
		return err
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Sprites)) {
		file := cfg.Sprites[key]
		img, _, err := ebitenutil.NewImageFromFileSystem(m.fsys, file)
		if err != nil {
			return &LoadError{Key: key, Path: m.path(file), Err: err}
		}
		m.images[key] = img
		m.logger.Debug("loaded sprite", "key", key, "file", file)
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Fonts)) {
		fc := cfg.Fonts[key]
		face, err := LoadFace(m.fsys, key, fc)
		if err != nil {
			return err
		}
		m.faces[key] = face
		m.logger.Debug("loaded font", "key", key, "size", fc.Size)
	}

	m.logger.Info("assets loaded", "root", m.basePath, "sprites", len(m.images), "fonts", len(m.faces))
	return nil
}

// Image returns the sprite sheet registered under key.
func (m *Manager) Image(key string) (*ebiten.Image, bool) {
	img, ok := m.images[key]
	return img, ok
}

// Face returns the font face registered under key.
func (m *Manager) Face(key string) (font.Face, bool) {
	face, ok := m.faces[key]
	return face, ok
}

func (m *Manager) path(file string) string {
	return fmt.Sprintf("%s/%s", m.basePath, file)
}

// checkRequired reports the first required key missing from cfg.
func checkRequired(cfg config.AssetsConfig, sprites, fonts []string) error {
	for _, key := range sprites {
		if _, ok := cfg.Sprites[key]; !ok {
			return &LoadError{Key: key, Err: fmt.Errorf("sprite not configured")}
		}
	}
	for _, key := range fonts {
		if _, ok := cfg.Fonts[key]; !ok {
			return &LoadError{Key: key, Err: fmt.Errorf("font not configured")}
		}
	}
	return nil
}
