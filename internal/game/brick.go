package game

import "github.com/vovakirdan/tui-breakout/internal/core"

// BrickStatus is the brick life cycle. It only ever moves Live -> Dead.
type BrickStatus uint8

const (
	BrickLive BrickStatus = iota
	BrickDead
)

// String returns the status name.
func (s BrickStatus) String() string {
	if s == BrickDead {
		return "dead"
	}
	return "live"
}

// Brick is a single destructible target.
type Brick struct {
	X, Y   float64
	Status BrickStatus
	Life   int // Hit points left
}

// Hit takes one hit point. The brick dies when none are left.
func (b *Brick) Hit() BrickStatus {
	if b.Status == BrickDead {
		return b.Status
	}
	b.Life--
	if b.Life <= 0 {
		b.Life = 0
		b.Status = BrickDead
	}
	return b.Status
}

// Bounds returns the brick rectangle for a brick of the given size.
func (b *Brick) Bounds(w, h float64) core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: w, H: h}
}
