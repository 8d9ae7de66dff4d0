// Package script replays scoring sessions written as HCL files. A script
// optionally sets up the table and rules, then lists steps that are applied
// to a game.Manager in order. Expect steps assert the state reached so far.
package script

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/mjcalc/internal/config"
	"github.com/lox/mjcalc/internal/game"
)

// Step kinds
const (
	StepRiichi = "riichi"
	StepWin    = "win"
	StepDraw   = "draw"
	StepUndo   = "undo"
	StepExpect = "expect"
)

// Script is a decoded replay file
type Script struct {
	Name string // file the script was read from

	Table *config.TableSettings `hcl:"table,block"`
	Rules *config.RuleSettings  `hcl:"rules,block"`
	Steps []Step                `hcl:"step,block"`
}

// Step is one action or expectation. Which attributes apply depends on Kind.
type Step struct {
	Kind string `hcl:"kind,label"`

	// riichi
	Seat *int `hcl:"seat,optional"`
	// draw
	Tenpai []int `hcl:"tenpai,optional"`
	// win
	Hands []HandSpec `hcl:"hand,block"`

	// expect
	Scores  []int `hcl:"scores,optional"`
	Wind    *int  `hcl:"wind,optional"`
	Round   *int  `hcl:"round,optional"`
	Honba   *int  `hcl:"honba,optional"`
	Sticks  *int  `hcl:"sticks,optional"`
	Dealer  *int  `hcl:"dealer,optional"`
	Records *int  `hcl:"records,optional"`
}

// HandSpec is one winning hand. Leaving out deal_in records a tsumo.
type HandSpec struct {
	Winner int  `hcl:"winner"`
	DealIn *int `hcl:"deal_in,optional"`
	Fan    int  `hcl:"fan"`
	Fu     int  `hcl:"fu,optional"`
}

// Load reads and validates a script file
func Load(filename string) (*Script, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes and validates a script. filename names it in diagnostics
// and results.
func Parse(src []byte, filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var s Script
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	s.Name = filename

	if _, err := s.Config(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("%s: step %d (%s): %w", filename, i+1, step.Kind, err)
		}
	}
	return &s, nil
}

// Config returns the session configuration the script sets up, with
// defaults applied.
func (s *Script) Config() (*config.Config, error) {
	cfg := &config.Config{}
	if s.Table != nil {
		table := *s.Table
		cfg.Table = &table
	}
	if s.Rules != nil {
		rules := *s.Rules
		cfg.Rules = &rules
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s Step) validate() error {
	switch s.Kind {
	case StepRiichi:
		if s.Seat == nil {
			return fmt.Errorf("seat is required")
		}
	case StepWin:
		if len(s.Hands) == 0 {
			return fmt.Errorf("at least one hand block is required")
		}
	case StepDraw, StepUndo, StepExpect:
	default:
		return fmt.Errorf("unknown step kind")
	}
	return nil
}

// outcome builds the outcome of a win or draw step.
func (s Step) outcome(numPlayers int) (game.Outcome, error) {
	switch s.Kind {
	case StepWin:
		win := game.Win{Hands: make([]game.WinHand, 0, len(s.Hands))}
		for _, h := range s.Hands {
			dealIn := game.SelfDraw
			if h.DealIn != nil {
				dealIn = *h.DealIn
			}
			win.Hands = append(win.Hands, game.WinHand{Winner: h.Winner, DealIn: dealIn, Fan: h.Fan, Fu: h.Fu})
		}
		return win, nil
	case StepDraw:
		tenpai := make([]bool, numPlayers)
		for _, seat := range s.Tenpai {
			if seat < 0 || seat >= numPlayers {
				return nil, &game.ValidationError{Field: "tenpai", Reason: fmt.Sprintf("seat %d out of range 0..%d", seat, numPlayers-1)}
			}
			tenpai[seat] = true
		}
		return game.Draw{Tenpai: tenpai}, nil
	default:
		return nil, fmt.Errorf("step %s has no outcome", s.Kind)
	}
}
