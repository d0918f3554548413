// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/application/scene"
)

// KeySource yields the key events that happened since the last poll.
type KeySource interface {
	Poll() []port.KeyEvent
}

// ScreenTarget receives the image each frame is drawn onto.
type ScreenTarget interface {
	SetScreen(screen *ebiten.Image)
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	input   KeySource
	target  ScreenTarget
	screenW int
	screenH int

	// drawErr holds a failed Draw until the next Update can return it.
	drawErr error

	beforeUpdate func()
}

// Option configures a Game.
type Option func(*Game)

// WithBeforeUpdate calls fn at the start of every Update, before input is
// polled.
func WithBeforeUpdate(fn func()) Option {
	return func(g *Game) { g.beforeUpdate = fn }
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, input KeySource, target ScreenTarget, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		input:   input,
		target:  target,
		screenW: screenW,
		screenH: screenH,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// Update forwards pending key events, updates the current scene and
// handles scene transitions. A render failure from the previous Draw
// terminates the game.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if g.beforeUpdate != nil {
		g.beforeUpdate()
	}

	for _, ev := range g.input.Poll() {
		g.current.HandleKey(ev)
	}

	next, err := g.current.Update()
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.drawErr != nil {
		return
	}
	g.target.SetScreen(screen)
	if err := g.current.Draw(); err != nil {
		g.drawErr = fmt.Errorf("draw: %w", err)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene.
func (g *Game) Close() {
	g.current.OnExit()
}
