package game

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Rendering constants.
const (
	PaddleChar     = '▀'
	BallChar       = '●'
	LiveBrickGlyph = '█'
	DeadBrickGlyph = '░'

	hudHex = "#0095d0"
)

// rowPalette colours bricks when no sprite pack is attached.
var rowPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// viewport maps world coordinates onto screen cells. Row 0 is the HUD; the
// field fills the rest of the screen.
type viewport struct {
	top           int
	cols, rows    int
	width, height float64
}

func (g *Game) viewport() viewport {
	return viewport{
		top:    1,
		cols:   g.runtime.ScreenW,
		rows:   g.runtime.ScreenH - 1,
		width:  g.physics.Width,
		height: g.physics.Height,
	}
}

func (v viewport) cellX(x float64) int {
	return core.Clamp(int(x*float64(v.cols)/v.width), 0, v.cols-1)
}

func (v viewport) cellY(y float64) int {
	return v.top + core.Clamp(int(y*float64(v.rows)/v.height), 0, v.rows-1)
}

// spanX returns the first and last column covered by [from, to).
func (v viewport) spanX(from, to float64) (int, int) {
	return span(from, to, v.width, v.cols)
}

// spanY returns the first and last field row covered by [from, to).
func (v viewport) spanY(from, to float64) (int, int) {
	return span(from, to, v.height, v.rows)
}

func span(from, to, size float64, cells int) (int, int) {
	first := core.Clamp(int(from*float64(cells)/size), 0, cells-1)
	last := core.Clamp(int(to*float64(cells)/size)-1, first, cells-1)
	return first, last
}

// screenToWorldX maps a pointer column to the centre of that column in world units.
func (g *Game) screenToWorldX(col int) float64 {
	v := g.viewport()
	if v.cols <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * v.width / float64(v.cols)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.viewport()
	g.renderHUD(dst)
	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws score and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextHex(1, 0, fmt.Sprintf("Score: %d", g.status.Score), hudHex)

	livesText := fmt.Sprintf("Lives: %d", g.status.Lives)
	dst.DrawTextHex(dst.Width()-len(livesText)-1, 0, livesText, hudHex)
}

// renderBricks draws every brick whose sprite is available. Dead bricks stay
// on the field, shaded, in their replacement sprite colour.
func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	l := g.grid.Layout()
	for col := range g.grid.Cols() {
		for row := range g.grid.Rows(col) {
			b := g.grid.Brick(col, row)

			glyph := LiveBrickGlyph
			if b.Status == BrickDead {
				glyph = DeadBrickGlyph
			}

			x0, x1 := v.spanX(b.X, b.X+l.Width)
			y0, y1 := v.spanY(b.Y, b.Y+l.Height)

			if g.sprites == nil {
				if b.Status == BrickDead {
					continue
				}
				c := rowPalette[row%len(rowPalette)]
				fillCells(dst, v, x0, x1, y0, y1, func(x, y int) { dst.SetColor(x, y, glyph, c) })
				continue
			}

			hex, ok := g.sprites.Lookup(col, row)
			if !ok {
				continue
			}
			fillCells(dst, v, x0, x1, y0, y1, func(x, y int) { dst.SetHex(x, y, glyph, hex) })
		}
	}
}

func fillCells(dst *core.Screen, v viewport, x0, x1, y0, y1 int, set func(x, y int)) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			set(x, v.top+y)
		}
	}
}

// renderPaddle draws the paddle on the bottom field row.
func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	x0, x1 := v.spanX(g.paddle.X, g.paddle.X+g.physics.PaddleWidth)
	y := v.top + v.rows - 1
	for x := x0; x <= x1; x++ {
		dst.SetColor(x, y, PaddleChar, core.ColorOrange)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen, v viewport) {
	dst.SetColor(v.cellX(g.ball.X), v.cellY(g.ball.Y), BallChar, core.ColorBrightWhite)
}

// renderOverlay draws phase and outcome messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.status.Outcome == OutcomeWon:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to play again", g.status.Score)
		g.drawCenteredBox(dst, "YOU WIN, CONGRATULATIONS!", subtitle)

	case g.status.Outcome == OutcomeLost:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.status.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.status.Phase == PhasePrepare:
		dst.DrawTextCentered(dst.Height()/2+2, "Click or press SPACE to start")

	case g.status.Phase == PhaseStop:
		dst.DrawTextCentered(dst.Height()/2+2, "Ball lost! Click or press SPACE")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightCyan)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
