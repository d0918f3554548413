// Package scene defines the Scene interface for game screens.
//
// Each game screen implements the Scene interface to handle its own
// update logic, input and rendering.
package scene

import "github.com/younwookim/arcadeshooter/internal/application/port"

// Scene represents a game screen.
//
// The game loop delegates key events, Update and Draw calls to the current
// scene. Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene. Scenes read time from their own clock.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene through its renderer.
	Draw() error

	// HandleKey receives one key event. Events arrive before the Update
	// they affect.
	HandleKey(ev port.KeyEvent)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
