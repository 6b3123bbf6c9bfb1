// breakout is a terminal Breakout game: knock every brick down without
// letting the ball past the paddle.
//
// Usage:
//
//	breakout                 - Play (same as "breakout play")
//	breakout play            - Play
//	breakout assets          - Fetch the sprite pack and report what loaded
//	breakout howto           - Show the rules and controls
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom breakout.yaml
//	--difficulty <name>   - easy, normal or hard
//	--assets <url|dir>    - Sprite pack location (default: embedded)
//	--env <path>          - .env file with BREAKOUT_* overrides (default: .env)
//	--log-file <path>     - Log file (default: ~/.breakout/logs/breakout.log)
//	--debug               - Log at debug level
//	--no-menu             - Skip the difficulty picker
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagEnv        string
	flagLogFile    string
	flagDebug      bool
	flagNoMenu     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Breakout is the classic brick breaker, played in the terminal with
the keyboard or the mouse.

Available commands:
  play     - Play the game (default)
  assets   - Fetch the sprite pack and report what loaded
  howto    - Show the rules and controls

Examples:
  breakout
  breakout play --difficulty hard
  breakout --assets https://example.com/breakout/
  breakout assets --assets ./sprites`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Sprite pack URL or directory (default: embedded pack)")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", ".env", "Optional .env file with BREAKOUT_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath(), "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the difficulty picker")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(howtoCmd)
}

// loadConfig resolves the game configuration from the config file, the
// difficulty preset, the environment and finally the --assets flag.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := config.LoadEnv(&cfg, flagEnv); err != nil {
		return cfg, err
	}
	if flagAssets != "" {
		cfg.Assets.BaseURL = flagAssets
	}

	return cfg, cfg.Validate()
}
