package geom

// Camera maps world coordinates onto the window. World Y grows upward while
// view Y grows downward.
type Camera struct {
	Pos    Vector2
	Width  int
	Height int
}

// NewCamera creates a camera at the origin for a window of w×h pixels.
func NewCamera(w, h int) Camera {
	return Camera{Width: w, Height: h}
}

// View returns the view position of a world position.
func (c Camera) View(world Vector2) Vector2 {
	return Vector2{
		X: world.X - c.Pos.X,
		Y: float32(c.Height) - (world.Y - c.Pos.Y),
	}
}
