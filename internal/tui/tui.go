// Package tui is the interactive terminal front end. It reads one-line
// commands, applies them to a game.Manager and shows the hand log next to
// the current standings.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/mjcalc/internal/command"
	"github.com/lox/mjcalc/internal/game"
)

const inputPlaceholder = "ron 2 1 3 30, tsumo 0 4 30, draw 1 3, riichi 2, undo, help"

// Options configures a Model
type Options struct {
	TestMode bool // capture log entries and skip viewport updates
	Length   int  // winds in the match, for the all-last marker; 0 hides it
	Color    bool // bold hand headlines in the log
}

// Model is the Bubble Tea model for a scoring session
type Model struct {
	manager   *game.Manager
	logger    *log.Logger
	formatter *game.EventFormatter
	length    int

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog     []string
	quitting    bool
	focusedPane int // 0 = log, 1 = input
	highlight   int // seat scores are shown relative to, or command.ViewOff

	// Dimensions
	width       int
	height      int
	initialized bool // Track if viewport has been properly sized

	// Test mode
	testMode    bool
	capturedLog []string // For test assertions
}

// NewModel creates a model driving manager
func NewModel(manager *game.Manager, logger *log.Logger) *Model {
	return NewModelWithOptions(manager, logger, Options{})
}

// NewModelWithOptions creates a model with explicit options. The model
// subscribes to the manager's events to fill its log.
func NewModelWithOptions(manager *game.Manager, logger *log.Logger, opts Options) *Model {
	// Will be properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		manager:     manager,
		logger:      logger.WithPrefix("tui"),
		formatter:   game.NewEventFormatter(game.FormattingOptions{Color: opts.Color && !opts.TestMode}),
		length:      opts.Length,
		logViewport: vp,
		input:       ti,
		gameLog:     []string{},
		focusedPane: 1, // Start with input focused
		highlight:   command.ViewOff,
		testMode:    opts.TestMode,
		capturedLog: []string{},
	}
	manager.Events().Subscribe(game.EventSubscriberFunc(m.onEvent))
	m.AddLogEntry(fmt.Sprintf("%s. Type 'help' for commands.", manager.Status().Label()))
	return m
}

func (m *Model) onEvent(event game.GameEvent) {
	if entry := m.formatter.Format(event); entry != "" {
		for _, line := range strings.Split(entry, "\n") {
			m.AddLogEntry(line)
		}
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			// Switch focus between log and input
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if m.Execute(line) {
					return m, tea.Sequence(tea.ClearScreen, tea.Quit)
				}
				// Execute may have restored a draft into the input
				return m, nil
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd

	// Only update input if it's focused
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Execute runs one command line and reports whether the session should end.
// Errors are written to the log.
func (m *Model) Execute(line string) (quit bool) {
	numPlayers := m.manager.Status().NumPlayers
	cmd, err := command.Parse(line, numPlayers)
	if errors.Is(err, command.ErrEmpty) {
		return false
	}
	if err != nil {
		m.logger.Debug("Rejected command", "line", line, "error", err)
		m.AddLogEntry(fmt.Sprintf("Error: %v. Type 'help' for available commands.", err))
		return false
	}
	m.logger.Debug("Executing command", "kind", cmd.Kind, "line", line)

	switch cmd.Kind {
	case command.Ron, command.Tsumo, command.Draw:
		m.commit(cmd.Outcome)
	case command.Riichi:
		if err := m.manager.ToggleRiichi(cmd.Seat); err != nil {
			m.AddLogEntry("Error: " + err.Error())
		}
	case command.Undo:
		if _, ok := m.manager.Undo(); !ok {
			m.AddLogEntry("Nothing to undo")
			return false
		}
		m.restoreDraft()
	case command.View:
		m.highlight = cmd.Seat
		if cmd.Seat == command.ViewOff {
			m.AddLogEntry("Showing absolute scores")
		} else {
			m.AddLogEntry(fmt.Sprintf("Showing scores relative to %s", m.manager.Players()[cmd.Seat].Name))
		}
	case command.Help:
		for _, line := range command.HelpLines() {
			m.AddLogEntry(line)
		}
	case command.Quit:
		m.quitting = true
		return true
	}
	return false
}

// commit records outcome through the draft so an undo can bring it back.
func (m *Model) commit(outcome game.Outcome) {
	if err := m.manager.SetDraft(m.manager.Draft().WithOutcome(outcome)); err != nil {
		m.AddLogEntry("Error: " + err.Error())
		return
	}
	if _, err := m.manager.CommitDraft(); err != nil {
		m.logger.Warn("Hand rejected", "error", err)
		m.AddLogEntry("Error: " + err.Error())
	}
}

// restoreDraft puts the undone hand back into the input for correction.
func (m *Model) restoreDraft() {
	outcome, err := m.manager.Draft().Outcome()
	if err != nil {
		return
	}
	m.input.SetValue(command.Format(outcome))
	m.input.CursorEnd()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight-2, 1))
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	actionPane := actionStyle.Render(actionContent)

	// Sidebar pane (right side of log pane, same height as log pane)
	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 28)
	paneHeight := max(m.height-actionHeight-4, 1) // Account for border x 2 and action pane

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	// Log pane (top, fills height minus action pane)
	m.logViewport.SetContent(m.renderLogPane())
	logWidth := max(m.width-sidebarWidth-4, 1) // Account for border x 2 and sidebar
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight

	// On first proper sizing, show the latest entries
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderLogPane renders the hand log pane content
func (m *Model) renderLogPane() string {
	return strings.Join(m.gameLog, "\n")
}

// renderSidebarPane shows the round state and the standings
func (m *Model) renderSidebarPane() string {
	var content strings.Builder
	status := m.manager.Status()
	players := m.manager.Players()
	dealer := status.Dealer()

	content.WriteString(HeaderStyle.Render(" " + game.RoundLabel(status.Wind, status.Round) + " "))
	switch {
	case m.length > 0 && status.IsPast(m.length):
		content.WriteString(" " + WarningStyle.Render("overtime"))
	case m.length > 0 && status.IsAllLast(m.length):
		content.WriteString(" " + WarningStyle.Render("all last"))
	}
	content.WriteString("\n")
	content.WriteString(RoundInfoStyle.Render(fmt.Sprintf("Honba: %d  Riichi sticks: %d", status.Honba, status.RiichiSticks)))
	content.WriteString("\n\n")

	scores := m.manager.DisplayScores(m.highlight)
	for seat, p := range players {
		wind := game.SeatWindLabel((seat - dealer + status.NumPlayers) % status.NumPlayers)
		score := fmt.Sprintf("%d", scores[seat])
		if m.highlight != command.ViewOff {
			score = fmt.Sprintf("%+d", scores[seat])
		}
		line := fmt.Sprintf("%d %-5s %-10s %7s", seat, wind, p.Name, score)
		if seat == dealer {
			line = DealerStyle.Render(line)
		} else {
			line = PlayerInfoStyle.Render(line)
		}
		content.WriteString(line)
		if status.Riichi[seat] {
			content.WriteString(" " + RiichiStyle.Render("riichi"))
		}
		content.WriteString("\n")
	}

	if m.highlight != command.ViewOff {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Relative to %s", players[m.highlight].Name)))
	}
	return content.String()
}

// renderActionPane renders the command input pane
func (m *Model) renderActionPane() string {
	var content strings.Builder

	content.WriteString(m.input.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render(
			"Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render(
			"Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return content.String()
}

// AddLogEntry adds an entry to the hand log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	// In test mode, also capture the log entry
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	// Only call GotoBottom if viewport has valid dimensions
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// InputValue returns the text currently in the command input
func (m *Model) InputValue() string {
	return m.input.Value()
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
