// Package config provides YAML-based configuration loading, difficulty presets
// and environment overrides for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are in world units: the virtual canvas the physics runs on.
type BreakoutConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// CanvasConfig is the size of the virtual playfield.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball size and the speed ramp.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	SpeedFactor  float64 `yaml:"speed_factor"`  // Launch velocity is (2*f, -2*f)
	InitialSpeed int     `yaml:"initial_speed"` // Physics passes per tick at launch
	MaxSpeed     int     `yaml:"max_speed"`     // Ramp cap
}

// PaddleConfig defines paddle size and keyboard step.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per physics pass while a key is held
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Life       int     `yaml:"life"` // Hits needed to break a brick
}

// GameplayConfig defines lives and starting score.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
	Score int `yaml:"score"`
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	// HoldTicks is how long a key press keeps the paddle moving. Terminals
	// do not report key release, so the flag decays after this many ticks.
	HoldTicks int `yaml:"hold_ticks"`
}

// AssetsConfig points at the brick sprite pack.
type AssetsConfig struct {
	// BaseURL is an http(s) URL or a directory. Empty uses the embedded pack.
	BaseURL     string `yaml:"base_url"`
	LiveSkin    string `yaml:"live_skin"`
	DeadSkin    string `yaml:"dead_skin"`
	Concurrency int    `yaml:"concurrency"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// BrickTotal returns the number of bricks in the grid.
func (c BreakoutConfig) BrickTotal() int {
	return c.Bricks.Columns * c.Bricks.Rows
}

// Validate checks that the configuration describes a playable field.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Ball.InitialSpeed < 1 {
		errs = append(errs, errors.New("ball initial_speed must be at least 1"))
	}
	if c.Ball.MaxSpeed < c.Ball.InitialSpeed {
		errs = append(errs, fmt.Errorf("ball max_speed %d is below initial_speed %d", c.Ball.MaxSpeed, c.Ball.InitialSpeed))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Width >= c.Canvas.Width {
		errs = append(errs, fmt.Errorf("paddle width %v does not fit canvas width %v", c.Paddle.Width, c.Canvas.Width))
	}
	if c.Bricks.Columns < 1 || c.Bricks.Rows < 1 {
		errs = append(errs, errors.New("brick grid needs at least one column and row"))
	}
	if c.Bricks.Life < 1 {
		errs = append(errs, errors.New("brick life must be at least 1"))
	}

	right := c.Bricks.OffsetLeft + float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	if right > c.Canvas.Width {
		errs = append(errs, fmt.Errorf("brick grid right edge %v exceeds canvas width %v", right, c.Canvas.Width))
	}
	bottom := c.Bricks.OffsetTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
	if bottom > c.Canvas.Height-c.Paddle.Height-2*c.Ball.Radius {
		errs = append(errs, fmt.Errorf("brick grid bottom edge %v leaves no room for the paddle", bottom))
	}

	if c.Gameplay.Lives < 1 {
		errs = append(errs, errors.New("lives must be at least 1"))
	}
	// The game is won when the score reaches the brick total.
	if c.Gameplay.Score != 0 {
		errs = append(errs, fmt.Errorf("starting score must be 0, got %d", c.Gameplay.Score))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
