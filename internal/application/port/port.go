// Package port declares the collaborators the simulation consumes: a clock,
// a random source, a renderer and keyboard events.
package port

import (
	"errors"
	"time"

	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

// ErrRender is wrapped by renderer failures.
var ErrRender = errors.New("render failed")

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
}

// RNG yields uniform samples in [0, 1). *rand.Rand satisfies it.
type RNG interface {
	Float32() float32
}

// Anchor positions overlay text on the window.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorBottomCenter
	AnchorTopLeft
	AnchorTopCenter
	AnchorTopRight
)

// String returns the string representation of the anchor
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "Center"
	case AnchorBottomCenter:
		return "BottomCenter"
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTopCenter:
		return "TopCenter"
	case AnchorTopRight:
		return "TopRight"
	default:
		return "Unknown"
	}
}

// SpriteParams places one sprite-sheet cell on the window.
type SpriteParams struct {
	Dest     geom.Vector2 // view position of the pivot
	Rotation float32      // radians
	Scale    geom.Vector2
	Pivot    geom.Vector2 // normalised, (0.5, 0.5) is the cell centre
	Cell     geom.Rect    // UV rectangle within the sheet
}

// TextParams places one line of overlay text.
type TextParams struct {
	Text   string
	Font   string
	Anchor Anchor
}

// Renderer submits sprites and text for one frame.
type Renderer interface {
	Clear() error
	DrawSprite(key string, p SpriteParams) error
	DrawText(t TextParams) error
	Present() error
}
