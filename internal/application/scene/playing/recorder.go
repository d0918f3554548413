package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/application/replay"
)

// Recorder handles key recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Events:    make([]replay.KeyInput, 0, 256),
		},
		recording: true,
	}
}

// RecordKey records a key event received before the given tick
func (r *Recorder) RecordKey(tick int, ev port.KeyEvent) {
	if !r.recording {
		return
	}
	r.data.Events = append(r.data.Events, replay.KeyInput{T: tick, K: ev.Key, D: ev.Down, R: ev.Repeat})
}

// EndTick marks the end of one tick
func (r *Recorder) EndTick() {
	if r.recording {
		r.data.Ticks++
	}
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return replay.Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return r.data.Ticks
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
