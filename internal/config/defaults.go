package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It mirrors defaults/breakout.yaml and is used when that file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{
			Width:  480,
			Height: 320,
		},
		Ball: BallConfig{
			Radius:       10,
			SpeedFactor:  0.5,
			InitialSpeed: 2,
			MaxSpeed:     80,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Step:   7,
		},
		Bricks: BricksConfig{
			Columns:    6,
			Rows:       4,
			Width:      70,
			Height:     20,
			Padding:    4,
			OffsetTop:  30,
			OffsetLeft: 20,
			Life:       1,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
			Score: 0,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
		Assets: AssetsConfig{
			LiveSkin:    "27_devil",
			DeadSkin:    "26_angel",
			Concurrency: 8,
			TimeoutSecs: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
