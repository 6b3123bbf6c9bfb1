package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the simulation driven by the model.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// StateDumper is implemented by games that can encode their state for bug
// reports. Screenshots include the dump when the game supports it.
type StateDumper interface {
	DumpState() ([]byte, error)
}

// ProgressReporter reports background sprite loading.
type ProgressReporter interface {
	Progress() assets.Progress
}

// Options configures the model.
type Options struct {
	Sprites       ProgressReporter // Optional; shows a spinner while sprites load
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.breakout/screenshots
}

var loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig // Whole terminal; the game gets it minus the footer
	inputFrame core.InputFrame
	gameState  core.GameState

	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	sprites ProgressReporter

	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a
// fresh game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:          game,
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          h,
		spinner:       s,
		sprites:       opts.Sprites,
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
	}
	runtime := m.gameRuntime()
	m.screen = core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	m.game.Reset(runtime)
	m.gameState = m.game.State()
	return m
}

// footerLines is the height of the help area under the field.
func (m Model) footerLines() int {
	if m.help.ShowAll {
		lines := 0
		for _, group := range m.keys.FullHelp() {
			lines = max(lines, len(group))
		}
		return lines
	}
	return 1
}

// gameRuntime is the terminal area available to the game.
func (m Model) gameRuntime() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-m.footerLines(), 0)
	return cfg
}

// Init starts the tick loop and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applySize()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit", "score", m.gameState.Score, "lives", m.gameState.Lives)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.applySize()
	return m, nil
}

func (m *Model) applySize() {
	runtime := m.gameRuntime()
	m.screen.Resize(runtime.ScreenW, runtime.ScreenH)
	m.game.Resize(runtime)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case cur.GameOver && !prev.GameOver:
		m.logger.Info("game finished", "won", cur.Won, "score", cur.Score, "lives", cur.Lives)
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("new game", "lives", cur.Lives)
	case cur.Lives < prev.Lives:
		m.logger.Info("ball lost", "lives", cur.Lives, "score", cur.Score)
	case cur.Score > prev.Score:
		m.logger.Debug("brick broken", "score", cur.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".breakout", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))
	path := base + ".txt"
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)

	dumper, ok := m.game.(StateDumper)
	if !ok {
		return
	}
	state, err := dumper.DumpState()
	if err != nil {
		m.logger.Warn("state dump failed", "err", err)
		return
	}
	statePath := base + ".state.yaml"
	if err := os.WriteFile(statePath, state, 0o600); err != nil {
		m.logger.Warn("state dump failed", "path", statePath, "err", err)
		return
	}
	m.logger.Info("state saved", "path", statePath)
}

// footer renders the loading indicator and key help.
func (m Model) footer() string {
	helpView := m.help.View(m.keys)
	if m.sprites == nil {
		return helpView
	}
	p := m.sprites.Progress()
	if p.Done() {
		return helpView
	}
	loading := fmt.Sprintf("%s sprites %d/%d ", m.spinner.View(), p.Loaded+p.Failed, p.Requested)
	return loadingStyle.Render(loading) + helpView
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program. Cancelling ctx stops the program.
func Run(ctx context.Context, game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
