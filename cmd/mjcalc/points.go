package main

import (
	"fmt"

	"github.com/lox/mjcalc/internal/game"
)

// PointsCmd prices a single hand without a game
type PointsCmd struct {
	Fan     int  `short:"f" required:"" help:"Fan (han) count"`
	Fu      int  `short:"u" help:"Fu count, not needed from 5 fan"`
	Dealer  bool `short:"d" help:"Price the hand for the dealer"`
	Kiriage bool `help:"Round 4 fan 30 fu and 3 fan 60 fu up to mangan (overrides config)"`
}

func (cmd *PointsCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	rules := cfg.GameRules()
	if cmd.Kiriage {
		rules.Kiriage = true
	}

	v, err := game.ComputeHandValue(cmd.Fan, cmd.Fu, cmd.Dealer, rules)
	if err != nil {
		return err
	}
	fmt.Print(renderHandValue(v, cmd.Fan, cmd.Fu, cmd.Dealer))
	return nil
}
