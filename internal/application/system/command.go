package system

import (
	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
)

// Command represents an action requested by the player
type Command interface {
	isCommand()
}

// MoveCommand sets or clears one player move flag
type MoveCommand struct {
	Dir    entity.MoveDir
	Active bool
}

func (MoveCommand) isCommand() {}

// FireCommand fires a player projectile
type FireCommand struct{}

func (FireCommand) isCommand() {}

// TogglePauseCommand pauses or resumes the game
type TogglePauseCommand struct{}

func (TogglePauseCommand) isCommand() {}

// ConfirmCommand starts the game and, between levels, requests the next one
type ConfirmCommand struct{}

func (ConfirmCommand) isCommand() {}

var moveKeys = map[port.Key]entity.MoveDir{
	port.KeyW: entity.MoveUp,
	port.KeyS: entity.MoveDown,
	port.KeyD: entity.MoveRight,
	port.KeyA: entity.MoveLeft,
}

// MapKey translates a key event into a command. Events the game does not
// react to return false.
func MapKey(ev port.KeyEvent) (Command, bool) {
	if dir, ok := moveKeys[ev.Key]; ok {
		return MoveCommand{Dir: dir, Active: ev.Down}, true
	}

	switch ev.Key {
	case port.KeySpace:
		if !ev.Down {
			return ConfirmCommand{}, true
		}
		if ev.Repeat {
			return nil, false
		}
		return FireCommand{}, true
	case port.KeyEscape:
		if ev.Down {
			return nil, false
		}
		return TogglePauseCommand{}, true
	}
	return nil, false
}
