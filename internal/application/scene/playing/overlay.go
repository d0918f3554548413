package playing

import (
	"fmt"

	"github.com/younwookim/arcadeshooter/internal/application/port"
	"github.com/younwookim/arcadeshooter/internal/application/state"
	"github.com/younwookim/arcadeshooter/internal/domain/entity"
)

// BuildOverlay returns the text lines drawn over the world.
func BuildOverlay(gs *state.GameState, level uint32, levelOver bool) []port.TextParams {
	if !gs.Started {
		return []port.TextParams{
			{Text: "Arcade Shooter", Font: entity.FontLargeSplash, Anchor: port.AnchorCenter},
			{Text: "Press SPACE to start!", Font: entity.FontMedSplash, Anchor: port.AnchorBottomCenter},
		}
	}

	var lines []port.TextParams
	switch {
	case gs.GameOver():
		lines = append(lines, port.TextParams{Text: "Game Over", Font: entity.FontLargeSplash, Anchor: port.AnchorCenter})
	case gs.Paused:
		lines = append(lines, port.TextParams{Text: "Paused", Font: entity.FontLargeSplash, Anchor: port.AnchorCenter})
	}
	if levelOver && !gs.GameOver() {
		lines = append(lines, port.TextParams{
			Text:   fmt.Sprintf("Press SPACE to start level %d!", level+1),
			Font:   entity.FontMedSplash,
			Anchor: port.AnchorBottomCenter,
		})
	}

	return append(lines,
		port.TextParams{Text: fmt.Sprintf("Lives: %d", gs.Lives), Font: entity.FontMedSplash, Anchor: port.AnchorTopLeft},
		port.TextParams{Text: fmt.Sprintf("Level: %d", level), Font: entity.FontMedSplash, Anchor: port.AnchorTopCenter},
		port.TextParams{Text: fmt.Sprintf("Score: %06d", gs.Score), Font: entity.FontMedSplash, Anchor: port.AnchorTopRight},
	)
}
