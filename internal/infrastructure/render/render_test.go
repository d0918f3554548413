package render

import (
	"image"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/domain/geom"
)

type emptySource struct{}

func (emptySource) Image(string) (*ebiten.Image, bool) { return nil, false }
func (emptySource) Face(string) (font.Face, bool)      { return nil, false }

func TestCellRect(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		cell   geom.Rect
		want   image.Rectangle
	}{
		{
			name:   "whole sheet",
			bounds: image.Rect(0, 0, 112, 75),
			cell:   geom.NewRect(0, 0, 1, 1),
			want:   image.Rect(0, 0, 112, 75),
		},
		{
			name:   "8x8 sheet second row third column",
			bounds: image.Rect(0, 0, 512, 512),
			cell:   geom.NewRect(2.0/8, 1.0/8, 1.0/8, 1.0/8),
			want:   image.Rect(128, 64, 192, 128),
		},
		{
			name:   "offset bounds",
			bounds: image.Rect(10, 20, 110, 70),
			cell:   geom.NewRect(0.5, 0, 0.5, 1),
			want:   image.Rect(60, 20, 110, 70),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellRect(tt.bounds, tt.cell))
		})
	}
}

func TestSpriteGeoM(t *testing.T) {
	base := port.SpriteParams{
		Dest:  geom.Vec(320, 240),
		Scale: geom.Vec(1, 1),
		Pivot: geom.Vec(0.5, 0.5),
	}

	t.Run("pivot lands on dest", func(t *testing.T) {
		g := SpriteGeoM(base, 100, 50)
		x, y := g.Apply(50, 25)
		assert.InDelta(t, 320, x, 1e-9)
		assert.InDelta(t, 240, y, 1e-9)
	})

	t.Run("scale about pivot", func(t *testing.T) {
		p := base
		p.Scale = geom.Vec(0.5, 0.5)
		g := SpriteGeoM(p, 100, 50)
		x, y := g.Apply(0, 0)
		assert.InDelta(t, 295, x, 1e-9)
		assert.InDelta(t, 227.5, y, 1e-9)
	})

	t.Run("quarter turn is clockwise on screen", func(t *testing.T) {
		p := base
		p.Rotation = math.Pi / 2
		g := SpriteGeoM(p, 100, 50)
		x, y := g.Apply(100, 25)
		assert.InDelta(t, 320, x, 1e-4)
		assert.InDelta(t, 290, y, 1e-4)
	})
}

func TestTextOrigin(t *testing.T) {
	// 100 wide, 20 above the baseline and 5 below
	bounds := image.Rect(0, -20, 100, 5)

	tests := []struct {
		anchor port.Anchor
		want   image.Point
	}{
		{port.AnchorCenter, image.Pt(270, 247)},
		{port.AnchorBottomCenter, image.Pt(270, 467)},
		{port.AnchorTopLeft, image.Pt(TextMargin, TextMargin+20)},
		{port.AnchorTopCenter, image.Pt(270, TextMargin+20)},
		{port.AnchorTopRight, image.Pt(640-100-TextMargin, TextMargin+20)},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TextOrigin(tt.anchor, bounds, 640, 480))
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	r := New(emptySource{}, 640, 480)

	assert.ErrorIs(t, r.Clear(), port.ErrRender, "no screen bound")
	assert.ErrorIs(t, r.DrawSprite("player", port.SpriteParams{}), port.ErrRender)
	assert.ErrorIs(t, r.DrawText(port.TextParams{Text: "Paused", Font: "large_splash"}), port.ErrRender)
	assert.NoError(t, r.Present())
}
