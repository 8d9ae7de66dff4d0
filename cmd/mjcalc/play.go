package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/mjcalc/cmd/mjcalc/shared"
	"github.com/lox/mjcalc/internal/game"
	"github.com/lox/mjcalc/internal/tui"
)

// PlayCmd runs the interactive score keeper
type PlayCmd struct {
	Names      []string `short:"n" sep:"," help:"Player names, East first (overrides config)"`
	Transcript string   `short:"t" help:"Append a transcript of every hand to this file"`
}

func (cmd *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if len(cmd.Names) > 0 {
		cfg.Table.Players = cmd.Names
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The TUI owns the terminal, so logs only go to a file
	logger, cleanup, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.File, io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	manager, err := game.NewManager(cfg.ManagerConfig(), game.WithLogger(logger))
	if err != nil {
		return err
	}

	if cmd.Transcript != "" {
		f, err := os.OpenFile(cmd.Transcript, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open transcript: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Error("Failed to close transcript", "error", err)
			}
		}()
		manager.Events().Subscribe(game.NewTranscript(f, game.FormattingOptions{ShowTimestamps: true}))
	}

	logger.Info("Starting session", "players", len(manager.Players()), "length", cfg.Table.Length)
	model := tui.NewModelWithOptions(manager, logger, tui.Options{
		Length: cfg.Table.Length,
		Color:  !g.NoColor,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	records := manager.Records()
	logger.Info("Session ended", "hands", len(records))
	fmt.Print(renderStandings(manager.Players()))
	return nil
}
