package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/mjcalc/internal/config"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals holds flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"mjcalc.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Play    PlayCmd    `cmd:"" default:"1" help:"Keep score interactively"`
	Replay  ReplayCmd  `cmd:"" help:"Replay HCL score scripts"`
	Points  PointsCmd  `cmd:"" help:"Show what a hand pays"`
	Version VersionCmd `cmd:"" help:"Show version"`
}

// VersionCmd prints the build version
type VersionCmd struct{}

func (cmd VersionCmd) Run() error {
	fmt.Println(version)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mjcalc"),
		kong.Description("Riichi mahjong score keeper"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Bind(&cli.Globals),
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadConfig loads the configuration file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}
