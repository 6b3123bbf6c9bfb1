package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the YAML configuration.
const (
	EnvAssets      = "BREAKOUT_ASSETS"
	EnvLiveSkin    = "BREAKOUT_SKIN_LIVE"
	EnvDeadSkin    = "BREAKOUT_SKIN_DEAD"
	EnvConcurrency = "BREAKOUT_ASSET_CONCURRENCY"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultBreakoutConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultBreakoutConfig()
	}

	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Ball.MaxSpeed = 24
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 55
		cfg.Ball.InitialSpeed = 4
	}
	if cfg.Ball.MaxSpeed < cfg.Ball.InitialSpeed {
		cfg.Ball.MaxSpeed = cfg.Ball.InitialSpeed
	}
}

// LoadEnv reads envFile (ignored when missing) into the process environment
// and applies the BREAKOUT_* overrides to cfg.
func LoadEnv(cfg *BreakoutConfig, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("config: failed to load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvAssets); v != "" {
		cfg.Assets.BaseURL = v
	}
	if v := os.Getenv(EnvLiveSkin); v != "" {
		cfg.Assets.LiveSkin = v
	}
	if v := os.Getenv(EnvDeadSkin); v != "" {
		cfg.Assets.DeadSkin = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("config: %s must be a positive integer, got %q", EnvConcurrency, v)
		}
		cfg.Assets.Concurrency = n
	}
	return nil
}
