// Package replay stores recorded key input so a session can be played back
// deterministically.
package replay

import "github.com/younwookim/arcadeshooter/internal/application/port"

// Version is the current replay format version.
const Version = "2.0"

// KeyInput records one key event and the tick it preceded
type KeyInput struct {
	T int      `json:"t"`           // Tick index
	K port.Key `json:"k"`           // Key
	D bool     `json:"d,omitempty"` // Down
	R bool     `json:"r,omitempty"` // Repeat
}

// Event returns the recorded key event.
func (k KeyInput) Event() port.KeyEvent {
	return port.KeyEvent{Key: k.K, Down: k.D, Repeat: k.R}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string     `json:"version"`
	Seed      int64      `json:"seed"`
	StartTime string     `json:"startTime"`
	Ticks     int        `json:"ticks"`
	Events    []KeyInput `json:"events"`
}
