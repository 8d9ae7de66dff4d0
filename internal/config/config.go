// Package config loads the HCL configuration for a scoring session: who sits
// at the table, which house rules apply and where logs go.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/mjcalc/internal/game"
)

const (
	DefaultLength   = 2 // East and South
	DefaultLogLevel = "info"
)

// Config represents the complete session configuration
type Config struct {
	Table *TableSettings `hcl:"table,block"`
	Rules *RuleSettings  `hcl:"rules,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// TableSettings describes the players and the length of the match
type TableSettings struct {
	Players       []string `hcl:"players,optional"`
	StartingScore int      `hcl:"starting_score,optional"`
	Length        int      `hcl:"length,optional"` // number of winds played
}

// RuleSettings holds the house rules
type RuleSettings struct {
	Kiriage      bool   `hcl:"kiriage,optional"`
	StickSweep   string `hcl:"stick_sweep,optional"`
	DrawRotation string `hcl:"draw_rotation,optional"`
	NotenTotal   int    `hcl:"noten_total,optional"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from src. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills blocks and values that were left out.
func (c *Config) ApplyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Rules == nil {
		c.Rules = &RuleSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}

	if c.Table.StartingScore == 0 {
		c.Table.StartingScore = game.DefaultStartingScore
	}
	if c.Table.Length == 0 {
		c.Table.Length = DefaultLength
	}
	if c.Rules.StickSweep == "" {
		c.Rules.StickSweep = string(game.SweepDealerOrder)
	}
	if c.Rules.DrawRotation == "" {
		c.Rules.DrawRotation = string(game.DrawRotationIncrement)
	}
	if c.Rules.NotenTotal == 0 {
		c.Rules.NotenTotal = game.DefaultNotenTotal
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if n := len(c.Table.Players); n != 0 && n != 3 && n != 4 {
		return fmt.Errorf("table: players must list 3 or 4 names, got %d", n)
	}
	seen := make(map[string]bool, len(c.Table.Players))
	for _, name := range c.Table.Players {
		if name == "" {
			return fmt.Errorf("table: player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("table: duplicate player %q", name)
		}
		seen[name] = true
	}
	if c.Table.StartingScore <= 0 {
		return fmt.Errorf("table: starting score must be positive")
	}
	if c.Table.Length < 1 || c.Table.Length > 4 {
		return fmt.Errorf("table: length must be between 1 and 4 winds, got %d", c.Table.Length)
	}

	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	return nil
}

// GameRules converts the rules block for the engine
func (c *Config) GameRules() game.Rules {
	return game.Rules{
		Kiriage:      c.Rules.Kiriage,
		StickSweep:   game.StickSweep(c.Rules.StickSweep),
		DrawRotation: game.DrawRotation(c.Rules.DrawRotation),
		NotenTotal:   c.Rules.NotenTotal,
	}
}

// ManagerConfig returns the table setup for a new game.Manager
func (c *Config) ManagerConfig() game.ManagerConfig {
	return game.ManagerConfig{
		Names:         append([]string(nil), c.Table.Players...),
		StartingScore: c.Table.StartingScore,
		Rules:         c.GameRules(),
	}
}
