// Package input turns ebiten keyboard state into key events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/arcadeshooter/internal/application/port"
)

// bindings lists the polled keys in the order their events are reported.
var bindings = []struct {
	ebiten ebiten.Key
	key    port.Key
}{
	{ebiten.KeyW, port.KeyW},
	{ebiten.KeyS, port.KeyS},
	{ebiten.KeyD, port.KeyD},
	{ebiten.KeyA, port.KeyA},
	{ebiten.KeySpace, port.KeySpace},
	{ebiten.KeyEscape, port.KeyEscape},
}

// Repeat sets when a held key produces auto-repeat events, in ebiten ticks.
type Repeat struct {
	Delay    int
	Interval int
}

// RepeatFor returns a half-second delay and a ~30 Hz repeat rate at the
// given ticks per second.
func RepeatFor(tps int) Repeat {
	return Repeat{
		Delay:    max(tps/2, 1),
		Interval: max(tps/30, 1),
	}
}

// Fires reports whether a key held for duration ticks repeats this tick.
func (r Repeat) Fires(duration int) bool {
	if duration <= r.Delay || r.Interval <= 0 {
		return false
	}
	return (duration-r.Delay)%r.Interval == 0
}

// Poller reports key transitions once per ebiten tick.
type Poller struct {
	repeat Repeat
	events []port.KeyEvent
}

// NewPoller creates a poller with the given auto-repeat timing.
func NewPoller(repeat Repeat) *Poller {
	return &Poller{repeat: repeat}
}

// Poll returns the key events of the current tick. The slice is reused by
// the next call.
func (p *Poller) Poll() []port.KeyEvent {
	p.events = p.events[:0]
	for _, b := range bindings {
		switch {
		case inpututil.IsKeyJustPressed(b.ebiten):
			p.events = append(p.events, port.Press(b.key))
		case inpututil.IsKeyJustReleased(b.ebiten):
			p.events = append(p.events, port.Release(b.key))
		case p.repeat.Fires(inpututil.KeyPressDuration(b.ebiten)):
			p.events = append(p.events, port.KeyEvent{Key: b.key, Down: true, Repeat: true})
		}
	}
	return p.events
}
