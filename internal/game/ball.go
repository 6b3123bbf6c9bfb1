package game

import "math"

// Ball is the ball state in world coordinates.
// Speed is not a velocity: it is the number of physics passes run per tick,
// so a faster ball covers more distance per rendered frame.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Speed  int

	initialSpeed int
	maxSpeed     int
}

// NewBall creates a ball at (x, y) moving by (dx, dy) per pass.
func NewBall(dx, dy, x, y float64, initialSpeed, maxSpeed int) *Ball {
	return &Ball{
		X:            x,
		Y:            y,
		DX:           dx,
		DY:           dy,
		Speed:        initialSpeed,
		initialSpeed: initialSpeed,
		maxSpeed:     maxSpeed,
	}
}

// AddSpeed ramps the ball up by one pass per tick, up to the cap.
func (b *Ball) AddSpeed() {
	if b.Speed >= b.maxSpeed {
		return
	}
	b.Speed++
}

// InitSpeed drops the ramp back to its starting value.
func (b *Ball) InitSpeed() {
	b.Speed = b.initialSpeed
}

// MaxSpeed returns the ramp cap.
func (b *Ball) MaxSpeed() int {
	return b.maxSpeed
}

// Magnitude returns the length of the velocity vector.
func (b *Ball) Magnitude() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Move advances the ball by one pass.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}
