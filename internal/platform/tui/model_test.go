package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	resizes []core.RuntimeConfig
	frames  []core.InputFrame
	state   core.GameState
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig)  { f.resets = append(f.resets, cfg) }
func (f *fakeGame) Resize(cfg core.RuntimeConfig) { f.resizes = append(f.resizes, cfg) }

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.frames = append(f.frames, in.Clone())
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake field")
}

func (f *fakeGame) State() core.GameState { return f.state }

type fixedProgress assets.Progress

func (p fixedProgress) Progress() assets.Progress { return assets.Progress(p) }

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runes("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionLaunch, false},
		{"p", runes("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := keys.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	frame := core.NewInputFrame()
	MapMouseToFrame(tea.MouseMsg{X: 12, Action: tea.MouseActionMotion}, &frame)
	x, ok := frame.Pointer()
	assert.True(t, ok)
	assert.Equal(t, 12, x)
	assert.False(t, frame.Has(core.ActionLaunch))

	frame.Clear()
	MapMouseToFrame(tea.MouseMsg{X: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	x, _ = frame.Pointer()
	assert.Equal(t, 30, x)
	assert.True(t, frame.Has(core.ActionLaunch))

	frame.Clear()
	MapMouseToFrame(tea.MouseMsg{X: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	_, ok = frame.Pointer()
	assert.False(t, ok)
	assert.False(t, frame.Has(core.ActionLaunch))
}

func TestNewModelResetsGameAboveFooter(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, testCfg, Options{})

	require.Len(t, g.resets, 1)
	assert.Equal(t, 80, g.resets[0].ScreenW)
	assert.Equal(t, 23, g.resets[0].ScreenH)
}

func TestModelTickForwardsAndClearsInput(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = NewModel(g, testCfg, Options{})

	m, _ = m.Update(runes("d"))
	m, _ = m.Update(tea.MouseMsg{X: 7, Action: tea.MouseActionMotion})
	m, cmd := m.Update(TickMsg{})
	assert.NotNil(t, cmd, "tick schedules the next tick")

	_, _ = m.Update(TickMsg{})

	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[0].Has(core.ActionRight))
	x, ok := g.frames[0].Pointer()
	assert.True(t, ok)
	assert.Equal(t, 7, x)

	assert.False(t, g.frames[1].Has(core.ActionRight))
	_, ok = g.frames[1].Pointer()
	assert.False(t, ok)
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = NewModel(g, testCfg, Options{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Len(t, g.resets, 1, "resize must not reset the game")
	require.Len(t, g.resizes, 1)
	assert.Equal(t, core.RuntimeConfig{ScreenW: 100, ScreenH: 39, TickRate: 60}, g.resizes[0])
}

func TestModelHelpToggleShrinksField(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = NewModel(g, testCfg, Options{})

	m, _ = m.Update(runes("?"))
	require.Len(t, g.resizes, 1)
	assert.Equal(t, 21, g.resizes[0].ScreenH)

	m.Update(runes("?"))
	require.Len(t, g.resizes, 2)
	assert.Equal(t, 23, g.resizes[1].ScreenH)
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = NewModel(g, testCfg, Options{})

	m, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.Empty(t, g.frames)
}

func TestModelViewShowsLoading(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg, Options{Sprites: fixedProgress{Requested: 24, Loaded: 10, Failed: 2}})

	view := ansi.Strip(m.View())
	assert.True(t, strings.HasPrefix(view, "fake field"))
	assert.Contains(t, view, "sprites 12/24")
	assert.Contains(t, view, "quit")

	done := NewModel(g, testCfg, Options{Sprites: fixedProgress{Requested: 24, Loaded: 24}})
	assert.NotContains(t, ansi.Strip(done.View()), "sprites")
}

func TestModelSpinnerTicks(t *testing.T) {
	m := NewModel(&fakeGame{}, testCfg, Options{})
	_, cmd := m.Update(m.spinner.Tick())
	assert.NotNil(t, cmd)
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	var m tea.Model = NewModel(&fakeGame{}, testCfg, Options{ScreenshotDir: dir})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "fake_"))
}

func TestModelScreenshotWithState(t *testing.T) {
	dir := t.TempDir()
	g := game.New(config.DefaultBreakoutConfig())
	var m tea.Model = NewModel(g, testCfg, Options{ScreenshotDir: dir})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var statePath string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".state.yaml") {
			statePath = filepath.Join(dir, e.Name())
		}
	}
	require.NotEmpty(t, statePath)
	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "phase: prepare")
	assert.Contains(t, string(data), "lives: 3")
}

func TestModelWithBreakoutGame(t *testing.T) {
	g := game.New(config.DefaultBreakoutConfig())
	var m tea.Model = NewModel(g, testCfg, Options{})

	m, _ = m.Update(tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(TickMsg{})
	assert.Equal(t, game.PhaseStart, g.Phase())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Lives: 3")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.SetHex(6, 0, '█', "#ff8800")
	s.SetColor(7, 0, '█', core.ColorOrange)
	s.DrawTextColor(0, 1, "colour", core.ColorBrightRed)

	assert.Equal(t, s.String(), ansi.Strip(RenderScreen(s)))
}

func TestSameColor(t *testing.T) {
	assert.True(t, sameColor(core.Cell{Color: core.ColorRed}, core.Cell{Color: core.ColorRed, Rune: 'x'}))
	assert.False(t, sameColor(core.Cell{Hex: "#000000"}, core.Cell{Hex: "#ffffff"}))
	assert.False(t, sameColor(core.Cell{Color: core.ColorRed}, core.Cell{Color: core.ColorRed, Hex: "#ff0000"}))
}
