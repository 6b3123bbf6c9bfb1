package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game of Breakout.

Controls:
  Mouse          - Move the paddle (aims the ball before a serve)
  Click/Space    - Start, or serve again after losing a ball
  Left/Right     - Move the paddle (also A/D, H/L)
  P/Esc          - Pause
  R              - Restart after a win or game over
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Without --difficulty a picker is shown first; --no-menu skips it.

Difficulty options:
  easy   - 5 lives, wide paddle, lower speed cap
  normal - the configured values
  hard   - 2 lives, narrow paddle, faster start

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --no-menu
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	if flagDifficulty == "" && !flagNoMenu && term.IsTerminal(int(os.Stdout.Fd())) {
		res, err := tui.RunMenu(cmd.Context(), rc.ScreenW, rc.ScreenH)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		if res.Quit {
			return nil
		}
		flagDifficulty = res.Preset
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	session, err := logging.Open(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer session.Close()
	logger := session.Logger

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	loader, err := newLoader(cfg, session)
	if err != nil {
		return err
	}

	g := game.New(cfg,
		game.WithSprites(loader.Cache()),
		game.WithBreakHook(loader.BreakHook(ctx)),
		game.WithResetHook(loader.ResetHook(ctx, cfg.Bricks.Columns, cfg.Bricks.Rows)),
	)

	logger.Info("starting",
		"screen", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
		"fps", flagFPS,
		"difficulty", flagDifficulty,
		"bricks", cfg.BrickTotal(),
		"lives", cfg.Gameplay.Lives,
	)

	runErr := tui.Run(ctx, g, rc, tui.Options{
		Sprites: loader,
		Logger:  logger,
	})

	cancel()
	loader.Wait()

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// newLoader builds the sprite loader for the configured asset source.
func newLoader(cfg config.BreakoutConfig, session *logging.Session) (*assets.Loader, error) {
	timeout := time.Duration(cfg.Assets.TimeoutSecs) * time.Second
	src, err := assets.NewSource(cfg.Assets.BaseURL, timeout)
	if err != nil {
		return nil, err
	}
	session.Logger.Info("sprite source", "source", src, "live", cfg.Assets.LiveSkin, "dead", cfg.Assets.DeadSkin)

	return assets.NewLoader(src, assets.NewCache(), assets.Options{
		Concurrency: cfg.Assets.Concurrency,
		LiveSkin:    cfg.Assets.LiveSkin,
		DeadSkin:    cfg.Assets.DeadSkin,
		Logger:      session.Logger,
	}), nil
}
