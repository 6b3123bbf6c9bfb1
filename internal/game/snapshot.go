package game

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64 `yaml:"tick"`
	Phase   string `yaml:"phase"`
	Outcome int    `yaml:"outcome"`
	Score   int    `yaml:"score"`
	Lives   int    `yaml:"lives"`
	Paused  bool   `yaml:"paused"`

	BallX     float64 `yaml:"ball_x"`
	BallY     float64 `yaml:"ball_y"`
	BallDX    float64 `yaml:"ball_dx"`
	BallDY    float64 `yaml:"ball_dy"`
	BallSpeed int     `yaml:"ball_speed"`

	PaddleX   float64 `yaml:"paddle_x"`
	RightHold int     `yaml:"right_hold"`
	LeftHold  int     `yaml:"left_hold"`

	// Brick states, column-major (col*rows + row). Each brick is 2 ints: Dead, Life.
	BrickData []int `yaml:"bricks,flow"`
}

type stateDump struct {
	Hash     uint64 `yaml:"hash"`
	Snapshot `yaml:",inline"`
}

// DumpState encodes the current snapshot and its hash as YAML. Screenshots
// save it next to the screen text.
func (g *Game) DumpState() ([]byte, error) {
	snap := g.Snapshot()
	out, err := yaml.Marshal(stateDump{Hash: snap.Hash(), Snapshot: snap})
	if err != nil {
		return nil, fmt.Errorf("game: encode state: %w", err)
	}
	return out, nil
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	var brickData []int
	for col := range g.grid.Cols() {
		for row := range g.grid.Rows(col) {
			b := g.grid.Brick(col, row)
			dead := 0
			if b.Status == BrickDead {
				dead = 1
			}
			brickData = append(brickData, dead, b.Life)
		}
	}

	return Snapshot{
		Tick:    uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:   g.status.Phase.String(),
		Outcome: int(g.status.Outcome),
		Score:   g.status.Score,
		Lives:   g.status.Lives,
		Paused:  g.paused,

		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallDX:    g.ball.DX,
		BallDY:    g.ball.DY,
		BallSpeed: g.ball.Speed,

		PaddleX:   g.paddle.X,
		RightHold: g.rightHold,
		LeftHold:  g.leftHold,

		BrickData: brickData,
	}
}

// ApplySnapshot restores game state from a snapshot taken on a game with
// the same configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.status.Score = snap.Score
	g.status.Lives = snap.Lives
	g.status.Outcome = Outcome(snap.Outcome) //#nosec G115 -- outcome is a small enum
	g.paused = snap.Paused
	switch snap.Phase {
	case PhaseStart.String():
		g.status.Phase = PhaseStart
	case PhaseStop.String():
		g.status.Phase = PhaseStop
	default:
		g.status.Phase = PhasePrepare
	}

	g.ball.X, g.ball.Y = snap.BallX, snap.BallY
	g.ball.DX, g.ball.DY = snap.BallDX, snap.BallDY
	g.ball.Speed = snap.BallSpeed

	g.paddle.X = snap.PaddleX
	g.rightHold = snap.RightHold
	g.leftHold = snap.LeftHold

	if len(snap.BrickData) == g.grid.Total()*2 {
		idx := 0
		for col := range g.grid.Cols() {
			for row := range g.grid.Rows(col) {
				b := &g.grid.bricks[col][row]
				b.Status = BrickLive
				if snap.BrickData[idx] == 1 {
					b.Status = BrickDead
				}
				b.Life = snap.BrickData[idx+1]
				idx += 2
			}
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.BallSpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RightHold) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LeftHold)  //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
