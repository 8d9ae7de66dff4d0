package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/mjcalc/cmd/mjcalc/shared"
	"github.com/lox/mjcalc/internal/script"
)

// ReplayCmd replays score scripts and prints where each one ended
type ReplayCmd struct {
	Files    []string `arg:"" type:"existingfile" help:"HCL score scripts"`
	Parallel int      `short:"p" default:"0" help:"Maximum scripts replayed at once (0 = all)"`
	Quiet    bool     `short:"q" help:"Only print final standings"`
}

func (cmd *ReplayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger, cleanup, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.File, os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	results, err := script.RunFiles(ctx, cmd.Files, script.Options{
		Logger:   logger,
		Parallel: cmd.Parallel,
	})
	if err != nil {
		return err
	}

	for _, result := range results {
		fmt.Print(renderResult(result, cmd.Quiet))
	}
	logger.Debug("Replay complete", "scripts", len(results))
	return nil
}

func renderResult(result *script.Result, quiet bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(result.Name))
	b.WriteString("\n")
	if !quiet {
		for _, entry := range result.Transcript {
			b.WriteString(entry)
			b.WriteString("\n")
		}
	}
	b.WriteString(fmt.Sprintf("%s after %d hand(s)\n", result.Status.Label(), len(result.Records)))
	b.WriteString(renderStandings(result.Players))
	return b.String()
}
