// Package game implements the Breakout simulation: ball, paddle, brick grid,
// score and lives, stepped once per tick and drawn into a core.Screen.
package game

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// SpriteLookup supplies the colour of the sprite currently cached for a brick.
// ok is false while the sprite has not been loaded.
type SpriteLookup interface {
	Lookup(col, row int) (hex string, ok bool)
}

// Option configures a Game.
type Option func(*Game)

// WithSprites makes bricks draw in their sprite colours. Without it every
// brick uses the row palette.
func WithSprites(s SpriteLookup) Option {
	return func(g *Game) {
		g.sprites = s
	}
}

// WithBreakHook registers a callback fired when a brick dies.
func WithBreakHook(fn func(col, row int)) Option {
	return func(g *Game) {
		g.onBreak = fn
	}
}

// WithResetHook registers a callback fired whenever the game is (re)started.
func WithResetHook(fn func()) Option {
	return func(g *Game) {
		g.onReset = fn
	}
}

// Game implements the Breakout game logic.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	physics Physics

	grid   *Grid
	ball   *Ball
	paddle *Paddle
	status *Status

	paused    bool
	tickCount int
	rightHold int // Ticks left before the right key counts as released
	leftHold  int

	sprites SpriteLookup
	onBreak func(col, row int)
	onReset func()

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game from a validated configuration.
func New(cfg config.BreakoutConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		minScreenW: 30,
		minScreenH: 12,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.physics = Physics{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		BallRadius:  cfg.Ball.Radius,
		PaddleWidth: cfg.Paddle.Width,
		PaddleStep:  cfg.Paddle.Step,
		LaunchDX:    2 * cfg.Ball.SpeedFactor,
		LaunchDY:    -2 * cfg.Ball.SpeedFactor,
	}
	return g
}

// ID returns the identifier used for screenshots and logs.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a fresh game: full lives, zero score, every brick live.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.Resize(runtime)

	cfg := g.cfg
	g.grid = NewGrid(cfg.Bricks.Columns, cfg.Bricks.Rows, cfg.Bricks.Life, Layout{
		Width:      cfg.Bricks.Width,
		Height:     cfg.Bricks.Height,
		Padding:    cfg.Bricks.Padding,
		OffsetTop:  cfg.Bricks.OffsetTop,
		OffsetLeft: cfg.Bricks.OffsetLeft,
	})
	g.ball = NewBall(
		g.physics.LaunchDX,
		g.physics.LaunchDY,
		g.physics.Width/2,
		g.physics.Height-g.physics.BallRadius*2,
		cfg.Ball.InitialSpeed,
		cfg.Ball.MaxSpeed,
	)
	g.paddle = NewPaddle(0)
	g.physics.CenterPaddle(g.paddle)
	g.status = NewStatus(cfg.Gameplay.Score, cfg.Gameplay.Lives)

	g.paused = false
	g.tickCount = 0
	g.rightHold = 0
	g.leftHold = 0

	if g.onReset != nil {
		g.onReset()
	}
}

// Resize adapts the projection to a new terminal size without touching the
// simulation, which runs on the fixed canvas.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Step advances the game by one tick, running one physics pass per unit of
// ball speed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.status.Over() {
		if in.Has(core.ActionRestart) || in.Has(core.ActionLaunch) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.status.Phase == PhaseStart {
		g.paused = !g.paused
		g.rightHold, g.leftHold = 0, 0
		g.paddle.Release()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.updateKeys(in)

	if x, ok := in.Pointer(); ok {
		g.pointerMove(g.screenToWorldX(x))
	}
	if in.Has(core.ActionLaunch) {
		g.status.Phase = PhaseStart
	}

	passes := g.ball.Speed
	done := 0
	for done < passes {
		g.grid.CollisionDetection(g.status, g.ball, g.onBreak)
		done++
		if g.status.Over() {
			break
		}
		g.physics.Update(g.ball, g.paddle, g.status)
		if g.status.Over() {
			break
		}
	}

	return core.StepResult{State: g.State(), SubSteps: done}
}

// updateKeys turns per-tick key presses into held direction flags.
// A press keeps its flag for HoldTicks ticks; the opposite key releases it.
func (g *Game) updateKeys(in core.InputFrame) {
	hold := g.cfg.Input.HoldTicks
	if hold < 1 {
		hold = 1
	}

	switch {
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		g.rightHold = hold
		g.leftHold = 0
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		g.leftHold = hold
		g.rightHold = 0
	}

	g.paddle.RightPressed = g.rightHold > 0
	g.paddle.LeftPressed = g.leftHold > 0

	if g.rightHold > 0 {
		g.rightHold--
	}
	if g.leftHold > 0 {
		g.leftHold--
	}
}

// pointerMove centres the paddle under the pointer. Before play starts the
// ball follows the pointer too, which is how the player aims the serve.
func (g *Game) pointerMove(x float64) {
	if x <= 0 || x >= g.physics.Width {
		return
	}
	g.paddle.X = x - g.physics.PaddleWidth/2
	if g.status.Phase != PhaseStart {
		g.ball.X = x
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.status.Score,
		Lives:    g.status.Lives,
		GameOver: g.status.Over(),
		Won:      g.status.Outcome == OutcomeWon,
		Paused:   g.paused,
	}
}

// Phase returns the current play phase.
func (g *Game) Phase() Phase {
	return g.status.Phase
}

// Grid returns the brick grid.
func (g *Game) Grid() *Grid {
	return g.grid
}
