package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/arcadeshooter/internal/application/port"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data ReplayData
	next int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Save writes replay data to a file
func Save(filename string, data ReplayData) error {
	if data.Ticks == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// EventsFor returns the events recorded before tick and advances past them.
// Ticks must be requested in increasing order.
func (r *Replayer) EventsFor(tick int) []port.KeyEvent {
	var events []port.KeyEvent
	for r.next < len(r.data.Events) && r.data.Events[r.next].T <= tick {
		events = append(events, r.data.Events[r.next].Event())
		r.next++
	}
	return events
}

// Done reports whether tick is past the end of the recording.
func (r *Replayer) Done(tick int) bool {
	return tick >= r.data.Ticks
}

// TotalTicks returns the number of recorded ticks
func (r *Replayer) TotalTicks() int {
	return r.data.Ticks
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}
