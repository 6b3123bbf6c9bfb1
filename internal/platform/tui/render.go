package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// colorStyles caches one style per named colour.
var colorStyles sync.Map // map[core.Color]lipgloss.Style

// hexStyles caches one style per sprite colour.
var hexStyles sync.Map // map[string]lipgloss.Style

func styleFor(cell core.Cell) lipgloss.Style {
	if cell.Hex != "" {
		if s, ok := hexStyles.Load(cell.Hex); ok {
			return s.(lipgloss.Style)
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(cell.Hex))
		hexStyles.Store(cell.Hex, s)
		return s
	}
	if s, ok := colorStyles.Load(cell.Color); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle()
	if code := cell.Color.Code(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	colorStyles.Store(cell.Color, s)
	return s
}

func sameColor(a, b core.Cell) bool {
	return a.Color == b.Color && a.Hex == b.Hex
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameColor(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
