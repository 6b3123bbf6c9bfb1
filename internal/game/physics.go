package game

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// MaxBounceDegrees is how far from vertical a paddle edge hit can send the ball.
const MaxBounceDegrees = 80.0

// Physics holds the fixed dimensions of the playfield.
type Physics struct {
	Width, Height float64
	BallRadius    float64
	PaddleWidth   float64
	PaddleStep    float64
	LaunchDX      float64
	LaunchDY      float64
}

// ResetBall puts the ball back above the paddle with launch velocity and speed.
func (p Physics) ResetBall(ball *Ball) {
	ball.X = p.Width / 2
	ball.Y = p.Height - p.BallRadius*2
	ball.DX = p.LaunchDX
	ball.DY = p.LaunchDY
	ball.InitSpeed()
}

// CenterPaddle moves the paddle to the middle of the field.
func (p Physics) CenterPaddle(paddle *Paddle) {
	paddle.X = (p.Width - p.PaddleWidth) / 2
}

// Update runs one physics pass: wall bounces, the paddle or a missed ball at
// the bottom, paddle movement, then ball movement. Nothing happens unless the
// phase is Start. A miss still finishes the pass from the reset position.
func (p Physics) Update(ball *Ball, paddle *Paddle, status *Status) {
	if status.Phase != PhaseStart {
		return
	}

	r := p.BallRadius
	nextX := ball.X + ball.DX
	nextY := ball.Y + ball.DY

	if nextX > p.Width-r || nextX < r {
		ball.DX = -ball.DX
	}

	if nextY < r {
		ball.DY = -ball.DY
	} else if nextY > p.Height-r {
		if ball.X > paddle.X && ball.X < paddle.X+p.PaddleWidth {
			p.reflect(ball, paddle)
			ball.AddSpeed()
		} else {
			ball.DY = -ball.DY
			p.miss(ball, paddle, status)
		}
	}

	if paddle.RightPressed && paddle.X < p.Width-p.PaddleWidth {
		paddle.X += p.PaddleStep
	} else if paddle.LeftPressed && paddle.X > 0 {
		paddle.X -= p.PaddleStep
	}

	ball.Move()
}

// reflect sends the ball off the paddle at an angle set by where it landed:
// straight up at the centre, up to MaxBounceDegrees off vertical at the edges.
// The speed magnitude is preserved.
func (p Physics) reflect(ball *Ball, paddle *Paddle) {
	half := p.PaddleWidth / 2
	dist := (ball.X + p.BallRadius) - (paddle.X + half)
	offset := core.ClampF(dist/half, -1, 1)

	rad := (90 - offset*MaxBounceDegrees) * math.Pi / 180
	speed := ball.Magnitude()
	ball.DX = math.Cos(rad) * speed
	ball.DY = -math.Sin(rad) * speed
}

// miss costs a life. The round stops until the next click; with no lives left
// the game is lost, otherwise ball and paddle return to their start positions.
func (p Physics) miss(ball *Ball, paddle *Paddle, status *Status) {
	status.Phase = PhaseStop
	status.Lives--
	if status.Lives <= 0 {
		status.Lives = 0
		status.Outcome = OutcomeLost
		return
	}
	p.ResetBall(ball)
	p.CenterPaddle(paddle)
}
