package assets

import (
	"fmt"
	"io/fs"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/younwookim/arcadeshooter/internal/infrastructure/config"
)

const fontDPI = 72

// LoadFace reads a TrueType or OpenType font from fsys and sizes it. An
// empty File uses the bundled Go font.
func LoadFace(fsys fs.FS, key string, fc config.FontConfig) (font.Face, error) {
	data, err := fontData(fsys, fc)
	if err != nil {
		return nil, &LoadError{Key: key, Path: fc.File, Err: err}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, &LoadError{Key: key, Path: fc.File, Err: fmt.Errorf("parse font: %w", err)}
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fc.Size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &LoadError{Key: key, Path: fc.File, Err: fmt.Errorf("create face: %w", err)}
	}
	return face, nil
}

func fontData(fsys fs.FS, fc config.FontConfig) ([]byte, error) {
	if fc.File == "" {
		if fc.Bold {
			return gobold.TTF, nil
		}
		return goregular.TTF, nil
	}
	return fs.ReadFile(fsys, fc.File)
}
