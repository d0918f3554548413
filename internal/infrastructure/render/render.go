// Package render draws sprites and overlay text onto an ebiten screen.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

// Colors for rendering
var (
	colorBG   = color.RGBA{0, 0, 0, 255}
	colorText = color.RGBA{255, 255, 255, 255}
)

// TextMargin is the gap between edge-anchored text and the window edge.
const TextMargin = 8

// Source looks up loaded sprite sheets and font faces.
type Source interface {
	Image(key string) (*ebiten.Image, bool)
	Face(key string) (font.Face, bool)
}

// Renderer implements port.Renderer on the screen bound by SetScreen.
type Renderer struct {
	src    Source
	screen *ebiten.Image
	width  int
	height int
}

// New creates a renderer for a window of width×height pixels.
func New(src Source, width, height int) *Renderer {
	return &Renderer{src: src, width: width, height: height}
}

// SetScreen binds the image the next frame is drawn onto.
func (r *Renderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// Clear fills the screen with the background color.
func (r *Renderer) Clear() error {
	if r.screen == nil {
		return fmt.Errorf("%w: no screen bound", port.ErrRender)
	}
	r.screen.Fill(colorBG)
	return nil
}

// DrawSprite draws one cell of the sprite sheet registered under key.
func (r *Renderer) DrawSprite(key string, p port.SpriteParams) error {
	sheet, ok := r.src.Image(key)
	if !ok {
		return fmt.Errorf("%w: sprite %q not loaded", port.ErrRender, key)
	}
	if r.screen == nil {
		return fmt.Errorf("%w: no screen bound", port.ErrRender)
	}

	cell := CellRect(sheet.Bounds(), p.Cell)
	sub, ok := sheet.SubImage(cell).(*ebiten.Image)
	if !ok {
		return fmt.Errorf("%w: sprite %q has no cell %v", port.ErrRender, key, cell)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = SpriteGeoM(p, float64(cell.Dx()), float64(cell.Dy()))
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(sub, op)
	return nil
}

// DrawText draws one overlay line at its anchor.
func (r *Renderer) DrawText(t port.TextParams) error {
	face, ok := r.src.Face(t.Font)
	if !ok {
		return fmt.Errorf("%w: font %q not loaded", port.ErrRender, t.Font)
	}
	if r.screen == nil {
		return fmt.Errorf("%w: no screen bound", port.ErrRender)
	}
	if t.Text == "" {
		return nil
	}

	bounds := text.BoundString(face, t.Text)
	origin := TextOrigin(t.Anchor, bounds, r.width, r.height)
	text.Draw(r.screen, t.Text, face, origin.X, origin.Y, colorText)
	return nil
}

// Present is a no-op: ebiten shows the screen once Draw returns.
func (r *Renderer) Present() error {
	return nil
}

// CellRect converts a normalised cell rectangle into pixels of bounds.
func CellRect(bounds image.Rectangle, cell geom.Rect) image.Rectangle {
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	x0 := bounds.Min.X + int(cell.X*w+0.5)
	y0 := bounds.Min.Y + int(cell.Y*h+0.5)
	x1 := bounds.Min.X + int((cell.X+cell.W)*w+0.5)
	y1 := bounds.Min.Y + int((cell.Y+cell.H)*h+0.5)
	return image.Rect(x0, y0, x1, y1)
}

// SpriteGeoM places a cellW×cellH cell so that its pivot lands on Dest,
// scaled and then rotated clockwise by Rotation about the pivot.
func SpriteGeoM(p port.SpriteParams, cellW, cellH float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(p.Pivot.X)*cellW, -float64(p.Pivot.Y)*cellH)
	g.Scale(float64(p.Scale.X), float64(p.Scale.Y))
	g.Rotate(float64(p.Rotation))
	g.Translate(float64(p.Dest.X), float64(p.Dest.Y))
	return g
}

// TextOrigin returns the dot position that places text with the given
// bounds at anchor on a width×height window.
func TextOrigin(anchor port.Anchor, bounds image.Rectangle, width, height int) image.Point {
	w, h := bounds.Dx(), bounds.Dy()

	var x, y int
	switch anchor {
	case port.AnchorBottomCenter:
		x, y = (width-w)/2, height-h-TextMargin
	case port.AnchorTopLeft:
		x, y = TextMargin, TextMargin
	case port.AnchorTopCenter:
		x, y = (width-w)/2, TextMargin
	case port.AnchorTopRight:
		x, y = width-w-TextMargin, TextMargin
	default:
		x, y = (width-w)/2, (height-h)/2
	}

	return image.Pt(x-bounds.Min.X, y-bounds.Min.Y)
}
