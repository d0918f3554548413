package entity

import "github.com/younwookim/arcadeshooter/internal/domain/geom"

// Animation walks a sprite sheet of Cols×Rows cells, one cell per tick.
type Animation struct {
	Cols  uint32
	Rows  uint32
	Frame uint32
	Loops bool
}

// NewAnimation creates an animation positioned on the first cell.
// Sheets smaller than 1×1 are treated as a single cell.
func NewAnimation(cols, rows uint32, loops bool) Animation {
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	return Animation{Cols: cols, Rows: rows, Loops: loops}
}

// FrameCount returns the number of cells in the sheet.
func (a *Animation) FrameCount() uint32 {
	return a.Cols * a.Rows
}

// Advance moves to the next cell. On the final cell a looping animation
// wraps to 0 and a non-looping one stays put and reports finished.
func (a *Animation) Advance() (finished bool) {
	if a.Frame >= a.FrameCount()-1 {
		if a.Loops {
			a.Frame = 0
			return false
		}
		return true
	}
	a.Frame++
	return false
}

// Cell returns the UV rectangle of the current frame in sheet space.
func (a *Animation) Cell() geom.Rect {
	cols := float32(a.Cols)
	rows := float32(a.Rows)
	return geom.Rect{
		X: float32(a.Frame%a.Cols) / cols,
		Y: float32(a.Frame/a.Cols) / rows,
		W: 1 / cols,
		H: 1 / rows,
	}
}
