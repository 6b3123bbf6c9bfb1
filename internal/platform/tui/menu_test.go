package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(MenuModel)
		require.True(t, ok)
	}
	return m
}

func TestMenuStartsOnNormal(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 80, 24)
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "normal", m.Selected().Preset)
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 80, 24)

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stops at the top")

	m = pressMenu(t, m, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 3, m.cursor, "cursor stops at the bottom")

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, "", m.Selected().Preset)
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 80, 24)
	next, cmd := m.Update(runes("q"))
	m = next.(MenuModel)

	assert.True(t, m.IsQuitting())
	assert.Nil(t, m.Selected())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 60, 20)
	view := m.View()

	assert.Contains(t, view, "B R E A K O U T")
	assert.Contains(t, view, "> Normal")
	assert.Contains(t, view, "  Hard")

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60)
	}
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}
