package game

import "math"

// Layout places bricks on the canvas.
type Layout struct {
	Width, Height float64
	Padding       float64
	OffsetTop     float64
	OffsetLeft    float64
}

// Position returns the top-left corner of the brick at (col, row).
func (l Layout) Position(col, row int) (x, y float64) {
	x = float64(col)*(l.Width+l.Padding) + l.OffsetLeft
	y = float64(row)*(l.Height+l.Padding) + l.OffsetTop
	return x, y
}

// Edge is the brick side a ball is resolved against.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// nearestEdge picks the side with the strictly smallest distance.
// Ties fall through to EdgeRight.
func nearestEdge(top, bottom, left, right float64) Edge {
	switch {
	case top < bottom && top < left && top < right:
		return EdgeTop
	case bottom < top && bottom < left && bottom < right:
		return EdgeBottom
	case left < top && left < bottom && left < right:
		return EdgeLeft
	default:
		return EdgeRight
	}
}

// Grid is the brick field, indexed [col][row].
type Grid struct {
	bricks [][]Brick
	layout Layout
}

// NewGrid builds a cols x rows grid of live bricks with the given hit points.
func NewGrid(cols, rows, life int, layout Layout) *Grid {
	bricks := make([][]Brick, cols)
	for c := range bricks {
		bricks[c] = make([]Brick, rows)
		for r := range bricks[c] {
			x, y := layout.Position(c, r)
			bricks[c][r] = Brick{X: x, Y: y, Status: BrickLive, Life: life}
		}
	}
	return &Grid{bricks: bricks, layout: layout}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return len(g.bricks)
}

// Rows returns the number of rows in a column.
func (g *Grid) Rows(col int) int {
	return len(g.bricks[col])
}

// Layout returns the grid layout.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Brick returns a copy of the brick at (col, row).
func (g *Grid) Brick(col, row int) Brick {
	return g.bricks[col][row]
}

// Status returns the status of the brick at (col, row).
func (g *Grid) Status(col, row int) BrickStatus {
	return g.bricks[col][row].Status
}

// SetStatus overrides the status of the brick at (col, row).
func (g *Grid) SetStatus(col, row int, s BrickStatus) {
	g.bricks[col][row].Status = s
}

// Total returns the number of bricks in the grid.
func (g *Grid) Total() int {
	n := 0
	for _, col := range g.bricks {
		n += len(col)
	}
	return n
}

// LiveCount returns the number of bricks still standing.
func (g *Grid) LiveCount() int {
	n := 0
	for _, col := range g.bricks {
		for _, b := range col {
			if b.Status == BrickLive {
				n++
			}
		}
	}
	return n
}

// CollisionDetection resolves the ball against every live brick whose
// interior contains the ball centre. The ball bounces off the nearest edge,
// gains one speed step, and the brick takes a hit. onBreak, if set, is called
// for each brick that dies. It returns the number of bricks hit.
func (g *Grid) CollisionDetection(status *Status, ball *Ball, onBreak func(col, row int)) int {
	hits := 0
	w, h := g.layout.Width, g.layout.Height

	for c := range g.bricks {
		for r := range g.bricks[c] {
			b := &g.bricks[c][r]
			if b.Status != BrickLive {
				continue
			}
			if !b.Bounds(w, h).Interior(ball.X, ball.Y) {
				continue
			}
			hits++

			// The centre is inside the brick; bounce off whichever side is closest.
			left := math.Abs(ball.X - b.X)
			right := math.Abs(ball.X - (b.X + w))
			bottom := math.Abs(ball.Y - b.Y)
			top := math.Abs(ball.Y - (b.Y + h))

			switch nearestEdge(top, bottom, left, right) {
			case EdgeTop, EdgeBottom:
				ball.DY = -ball.DY
			case EdgeLeft, EdgeRight:
				ball.DX = -ball.DX
			}
			ball.AddSpeed()

			if b.Hit() == BrickDead {
				status.Score++
				if onBreak != nil {
					onBreak(c, r)
				}
			}
			if status.Score == g.Total() {
				status.Outcome = OutcomeWon
			}
		}
	}
	return hits
}
