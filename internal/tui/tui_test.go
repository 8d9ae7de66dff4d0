package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/mjcalc/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *game.Manager) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	manager := game.NewTestManager()
	return NewModelWithOptions(manager, logger, Options{TestMode: true, Length: 2}), manager
}

func TestTUITestMode(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})

	t.Run("test mode captures log entries", func(t *testing.T) {
		tui, _ := newTestModel(t)

		assert.True(t, tui.IsTestMode())
		captured := tui.GetCapturedLog()
		require.Len(t, captured, 1)
		assert.Equal(t, "East 1, 0 honba. Type 'help' for commands.", captured[0])

		tui.AddLogEntry("Table ready")
		assert.Equal(t, "Table ready", tui.GetCapturedLog()[1])
	})

	t.Run("production mode does not capture logs", func(t *testing.T) {
		tui := NewModel(game.NewTestManager(), logger)

		assert.False(t, tui.IsTestMode())
		tui.AddLogEntry("Some log entry")
		assert.Nil(t, tui.GetCapturedLog())
	})
}

func TestExecuteCommands(t *testing.T) {
	t.Run("ron updates scores and logs the hand", func(t *testing.T) {
		tui, manager := newTestModel(t)

		assert.False(t, tui.Execute("ron 2 1 3 30"))
		assert.Equal(t, 28900, manager.Players()[1].Score)

		captured := tui.GetCapturedLog()
		assert.Contains(t, captured, "#1 East 1, 0 honba: Bob ron off Carol, 3 fan 30 fu")
		assert.Contains(t, captured, "  Bob: +3900 -> 28900")
		assert.Contains(t, captured, "Next: East 2, 0 honba, dealer Bob")
	})

	t.Run("riichi and tsumo", func(t *testing.T) {
		tui, manager := newTestModel(t)

		tui.Execute("riichi w")
		tui.Execute("tsumo 2 4 30")
		assert.Equal(t, 32900, manager.Players()[2].Score)
		assert.Contains(t, tui.GetCapturedLog(), "Carol declares riichi (24000, sticks on table: 1)")
	})

	t.Run("undo restores the hand into the input", func(t *testing.T) {
		tui, manager := newTestModel(t)

		tui.Execute("draw 0 2")
		require.Len(t, manager.Records(), 1)
		tui.Execute("undo")
		assert.Empty(t, manager.Records())
		assert.Equal(t, "draw 0 2", tui.InputValue())

		tui.Execute("undo")
		entries := tui.GetCapturedLog()
		assert.Equal(t, "Nothing to undo", entries[len(entries)-1])
	})

	t.Run("errors are logged and change nothing", func(t *testing.T) {
		tui, manager := newTestModel(t)
		before := manager.Snapshot()

		tui.Execute("pon 1")
		tui.Execute("ron 1 1 3 30")
		tui.Execute("tsumo 1 3")

		assert.Equal(t, before.Players, manager.Snapshot().Players)
		assert.Equal(t, before.Status, manager.Snapshot().Status)
		entries := tui.GetCapturedLog()
		require.Len(t, entries, 4)
		assert.Contains(t, entries[1], "Error: unknown command: pon")
		assert.Contains(t, entries[2], "Error: invalid dealIn")
		assert.Contains(t, entries[3], "Error: invalid fu")
	})

	t.Run("empty line does nothing", func(t *testing.T) {
		tui, _ := newTestModel(t)
		assert.False(t, tui.Execute("   "))
		assert.Len(t, tui.GetCapturedLog(), 1)
	})

	t.Run("view switches to relative scores", func(t *testing.T) {
		tui, _ := newTestModel(t)
		tui.Execute("ron 2 1 3 30")
		tui.Execute("view 1")
		sidebar := tui.renderSidebarPane()
		assert.Contains(t, sidebar, "-7800")
		assert.Contains(t, sidebar, "Relative to Bob")

		tui.Execute("view off")
		sidebar = tui.renderSidebarPane()
		assert.Contains(t, sidebar, "21100")
		assert.NotContains(t, sidebar, "Relative to")
	})

	t.Run("help lists commands", func(t *testing.T) {
		tui, _ := newTestModel(t)
		tui.Execute("help")
		assert.Contains(t, tui.GetCapturedLog(), "Available commands:")
	})

	t.Run("quit", func(t *testing.T) {
		tui, _ := newTestModel(t)
		assert.True(t, tui.Execute("quit"))
		assert.Empty(t, tui.View())
	})
}

func TestUpdate(t *testing.T) {
	tui, manager := newTestModel(t)

	assert.Equal(t, "Loading...", tui.View())
	tui.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	tui.input.SetValue("ron 2 1 3 30")
	_, cmd := tui.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 28900, manager.Players()[1].Score)
	assert.Empty(t, tui.InputValue())

	view := tui.View()
	assert.Contains(t, view, "East 2")
	assert.Contains(t, view, "Bob")

	tui.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, tui.focusedPane)

	_, cmd = tui.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, tui.quitting)
}

func TestSidebarMatchProgress(t *testing.T) {
	logger := log.New(io.Discard)
	manager := game.NewTestManager()
	tui := NewModelWithOptions(manager, logger, Options{TestMode: true, Length: 1})

	for _, line := range []string{"ron 0 1 1 30", "ron 0 2 1 30", "ron 0 3 1 30"} {
		tui.Execute(line)
	}
	assert.Contains(t, tui.renderSidebarPane(), "all last")

	tui.Execute("ron 1 0 1 30")
	assert.Contains(t, tui.renderSidebarPane(), "South 1")
	assert.Contains(t, tui.renderSidebarPane(), "overtime")
}
