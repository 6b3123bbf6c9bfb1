package game

// Paddle is the player's paddle. Only the left edge moves; its row is fixed
// at the bottom of the canvas.
type Paddle struct {
	X            float64
	RightPressed bool
	LeftPressed  bool
}

// NewPaddle creates a paddle with its left edge at x.
func NewPaddle(x float64) *Paddle {
	return &Paddle{X: x}
}

// Release clears both direction flags.
func (p *Paddle) Release() {
	p.RightPressed = false
	p.LeftPressed = false
}
