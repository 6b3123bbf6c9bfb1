package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

var flagStrict bool

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Fetch the sprite pack and report what loaded",
	Long: `Fetch every brick sprite for both skins from the configured source and
print one coloured swatch per brick. Missing sprites are shown as dots;
in the game those bricks are not drawn.

Examples:
  breakout assets
  breakout assets --assets https://example.com/breakout/
  breakout assets --assets ./sprites --strict`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail when any sprite is missing")
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runAssets(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	session, err := logging.Open(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer session.Close()

	out := cmd.OutOrStdout()
	failed := 0
	for _, skin := range []string{cfg.Assets.LiveSkin, cfg.Assets.DeadSkin} {
		loader, err := newLoader(cfg, session)
		if err != nil {
			return err
		}
		p := fetchSkin(cmd.Context(), loader, cfg, skin)
		failed += p.Failed

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s: %d/%d loaded", skin, p.Loaded, p.Requested)))
		fmt.Fprintln(out, swatches(loader.Cache(), cfg))
	}

	source := cfg.Assets.BaseURL
	if source == "" {
		source = "embedded"
	}
	fmt.Fprintf(out, "source: %s\n", source)

	if flagStrict && failed > 0 {
		return fmt.Errorf("%d sprites could not be loaded", failed)
	}
	return nil
}

func fetchSkin(ctx context.Context, loader *assets.Loader, cfg config.BreakoutConfig, skin string) assets.Progress {
	loader.Prefetch(ctx, cfg.Bricks.Columns, cfg.Bricks.Rows, skin)
	loader.Wait()
	return loader.Progress()
}

// swatches draws the grid as it appears in the game, one block per brick.
func swatches(cache *assets.Cache, cfg config.BreakoutConfig) string {
	var sb strings.Builder
	for row := range cfg.Bricks.Rows {
		sb.WriteString("  ")
		for col := range cfg.Bricks.Columns {
			if col > 0 {
				sb.WriteString(" ")
			}
			sprite, ok := cache.Get(col, row)
			if !ok {
				sb.WriteString(missingStyle.Render("······"))
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(sprite.Hex)).Render("██████"))
		}
		if row < cfg.Bricks.Rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
