package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = Layout{Width: 70, Height: 20, Padding: 4, OffsetTop: 30, OffsetLeft: 20}

func TestLayoutPosition(t *testing.T) {
	x, y := testLayout.Position(0, 0)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 30.0, y)

	x, y = testLayout.Position(1, 2)
	assert.Equal(t, 94.0, x)
	assert.Equal(t, 78.0, y)
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(6, 4, 1, testLayout)

	require.Equal(t, 6, g.Cols())
	require.Equal(t, 4, g.Rows(0))
	assert.Equal(t, 24, g.Total())
	assert.Equal(t, 24, g.LiveCount())

	g.SetStatus(2, 3, BrickDead)
	assert.Equal(t, BrickDead, g.Status(2, 3))
	assert.Equal(t, 23, g.LiveCount())
	assert.Equal(t, 24, g.Total())
}

func TestNearestEdge(t *testing.T) {
	tests := []struct {
		name                     string
		top, bottom, left, right float64
		want                     Edge
	}{
		{"top", 1, 5, 5, 5, EdgeTop},
		{"bottom", 5, 1, 5, 5, EdgeBottom},
		{"left", 5, 5, 1, 5, EdgeLeft},
		{"right", 5, 5, 5, 1, EdgeRight},
		{"tie falls to right", 1, 1, 5, 5, EdgeRight},
		{"all equal", 3, 3, 3, 3, EdgeRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nearestEdge(tc.top, tc.bottom, tc.left, tc.right))
		})
	}
}

func TestCollisionLeftEdgeFlipsDX(t *testing.T) {
	g := NewGrid(6, 4, 1, testLayout)
	status := startedStatus()
	ball := NewBall(1, -1, 25, 40, 2, 80)

	var broken [][2]int
	hits := g.CollisionDetection(status, ball, func(col, row int) {
		broken = append(broken, [2]int{col, row})
	})

	assert.Equal(t, 1, hits)
	assert.Equal(t, -1.0, ball.DX)
	assert.Equal(t, -1.0, ball.DY)
	assert.Equal(t, 3, ball.Speed)
	assert.Equal(t, 1, status.Score)
	assert.Equal(t, BrickDead, g.Status(0, 0))
	assert.Equal(t, [][2]int{{0, 0}}, broken)
	assert.Equal(t, OutcomeNone, status.Outcome)
}

func TestCollisionBottomEdgeFlipsDY(t *testing.T) {
	g := NewGrid(6, 4, 1, testLayout)
	status := startedStatus()
	ball := NewBall(1, -1, 55, 31, 2, 80)

	g.CollisionDetection(status, ball, nil)

	assert.Equal(t, 1.0, ball.DX)
	assert.Equal(t, 1.0, ball.DY)
}

func TestCollisionBoundaryIsNotInterior(t *testing.T) {
	g := NewGrid(6, 4, 1, testLayout)
	status := startedStatus()
	ball := NewBall(1, -1, 20, 40, 2, 80)

	assert.Equal(t, 0, g.CollisionDetection(status, ball, nil))
	assert.Equal(t, 0, status.Score)
	assert.Equal(t, 24, g.LiveCount())
}

func TestCollisionIgnoresDeadBricks(t *testing.T) {
	g := NewGrid(6, 4, 1, testLayout)
	g.SetStatus(0, 0, BrickDead)
	status := startedStatus()
	ball := NewBall(1, -1, 25, 40, 2, 80)

	assert.Equal(t, 0, g.CollisionDetection(status, ball, nil))
	assert.Equal(t, 1.0, ball.DX)
	assert.Equal(t, 2, ball.Speed)
}

func TestCollisionMultiHitBrick(t *testing.T) {
	g := NewGrid(1, 1, 2, testLayout)
	status := startedStatus()

	g.CollisionDetection(status, NewBall(1, -1, 25, 40, 2, 80), nil)
	assert.Equal(t, BrickLive, g.Status(0, 0))
	assert.Equal(t, 1, g.Brick(0, 0).Life)
	assert.Equal(t, 0, status.Score)

	g.CollisionDetection(status, NewBall(1, -1, 25, 40, 2, 80), nil)
	assert.Equal(t, BrickDead, g.Status(0, 0))
	assert.Equal(t, 1, status.Score)
	assert.Equal(t, OutcomeWon, status.Outcome)
}

func TestCollisionLastBrickWins(t *testing.T) {
	g := NewGrid(2, 1, 1, testLayout)
	g.SetStatus(1, 0, BrickDead)
	status := startedStatus()
	status.Score = 1

	g.CollisionDetection(status, NewBall(1, -1, 25, 40, 2, 80), nil)

	assert.Equal(t, 2, status.Score)
	assert.Equal(t, OutcomeWon, status.Outcome)
	assert.True(t, status.Over())
}

func TestBrickHit(t *testing.T) {
	b := Brick{Status: BrickLive, Life: 1}
	assert.Equal(t, BrickDead, b.Hit())
	assert.Equal(t, 0, b.Life)

	// Already dead: nothing changes.
	assert.Equal(t, BrickDead, b.Hit())
	assert.Equal(t, 0, b.Life)
	assert.Equal(t, "dead", b.Status.String())
}
