// Package command parses the one-line commands typed into the terminal UI.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/mjcalc/internal/game"
)

// Kind identifies a command
type Kind string

const (
	Ron    Kind = "ron"
	Tsumo  Kind = "tsumo"
	Draw   Kind = "draw"
	Riichi Kind = "riichi"
	Undo   Kind = "undo"
	View   Kind = "view"
	Help   Kind = "help"
	Quit   Kind = "quit"
)

// ViewOff is the seat of a view command that returns to absolute scores.
const ViewOff = -1

// minFu separates fu values from seat numbers: every legal fu is at least 20
// and no seat is.
const minFu = 20

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

var aliases = map[string]Kind{
	"ron": Ron, "r": Ron,
	"tsumo": Tsumo, "t": Tsumo,
	"draw": Draw, "d": Draw,
	"riichi": Riichi, "ri": Riichi,
	"undo": Undo, "u": Undo,
	"view": View, "v": View,
	"help": Help, "?": Help,
	"quit": Quit, "q": Quit, "exit": Quit,
}

var windSeats = map[string]int{
	"e": 0, "east": 0,
	"s": 1, "south": 1,
	"w": 2, "west": 2,
	"n": 3, "north": 3,
}

// Command is a parsed line. Outcome is set for ron, tsumo and draw; Seat for
// riichi and view.
type Command struct {
	Kind    Kind
	Outcome game.Outcome
	Seat    int
}

// Parse parses line for a table of numPlayers seats. Fan and fu are checked
// for syntax only; the game rejects values out of range.
func Parse(line string, numPlayers int) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}
	kind, ok := aliases[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	p := parser{numPlayers: numPlayers}

	switch kind {
	case Ron:
		return p.ron(args)
	case Tsumo:
		return p.tsumo(args)
	case Draw:
		return p.draw(args)
	case Riichi:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: riichi <seat>")
		}
		seat, err := p.seat(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Riichi, Seat: seat}, nil
	case View:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: view <seat>|off")
		}
		if args[0] == "off" {
			return Command{Kind: View, Seat: ViewOff}, nil
		}
		seat, err := p.seat(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: View, Seat: seat}, nil
	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%s takes no arguments", kind)
		}
		return Command{Kind: kind}, nil
	}
}

type parser struct {
	numPlayers int
}

func (p parser) ron(args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, fmt.Errorf("usage: ron <from> <winner> <fan> [fu] [<winner> <fan> [fu]]...")
	}
	from, err := p.seat(args[0])
	if err != nil {
		return Command{}, err
	}

	var win game.Win
	rest := args[1:]
	for len(rest) > 0 {
		var hand game.WinHand
		hand, rest, err = p.hand(rest)
		if err != nil {
			return Command{}, err
		}
		hand.DealIn = from
		win.Hands = append(win.Hands, hand)
	}
	return Command{Kind: Ron, Outcome: win}, nil
}

func (p parser) tsumo(args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, fmt.Errorf("usage: tsumo <winner> <fan> [fu]")
	}
	hand, rest, err := p.hand(args)
	if err != nil {
		return Command{}, err
	}
	if len(rest) > 0 {
		return Command{}, fmt.Errorf("unexpected %q after tsumo hand", rest[0])
	}
	hand.DealIn = game.SelfDraw
	return Command{Kind: Tsumo, Outcome: game.Win{Hands: []game.WinHand{hand}}}, nil
}

func (p parser) draw(args []string) (Command, error) {
	tenpai := make([]bool, p.numPlayers)
	for _, arg := range args {
		seat, err := p.seat(arg)
		if err != nil {
			return Command{}, err
		}
		tenpai[seat] = true
	}
	return Command{Kind: Draw, Outcome: game.Draw{Tenpai: tenpai}}, nil
}

// hand consumes "<winner> <fan> [fu]" and returns the remaining arguments.
func (p parser) hand(args []string) (game.WinHand, []string, error) {
	if len(args) < 2 {
		return game.WinHand{}, nil, fmt.Errorf("each winner needs a fan count")
	}
	winner, err := p.seat(args[0])
	if err != nil {
		return game.WinHand{}, nil, err
	}
	fan, err := strconv.Atoi(args[1])
	if err != nil {
		return game.WinHand{}, nil, fmt.Errorf("invalid fan %q", args[1])
	}
	hand := game.WinHand{Winner: winner, Fan: fan}
	rest := args[2:]
	if len(rest) > 0 {
		if fu, err := strconv.Atoi(rest[0]); err == nil && fu >= minFu {
			hand.Fu = fu
			rest = rest[1:]
		}
	}
	return hand, rest, nil
}

// seat accepts a seat number or a wind name.
func (p parser) seat(arg string) (int, error) {
	seat, ok := windSeats[arg]
	if !ok {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, fmt.Errorf("invalid seat %q", arg)
		}
		seat = n
	}
	if seat < 0 || seat >= p.numPlayers {
		return 0, fmt.Errorf("seat %s out of range 0..%d", arg, p.numPlayers-1)
	}
	return seat, nil
}

// HelpLines describes the commands.
func HelpLines() []string {
	return []string{
		"Available commands:",
		"Hands:",
		"  ron <from> <winner> <fan> [fu] [<winner> <fan> [fu]]...",
		"                     - Record a ron, several winners for a multi-ron",
		"  tsumo <winner> <fan> [fu]",
		"                     - Record a self-draw",
		"  draw [seat...]     - Record an exhaustive draw, listing tenpai seats",
		"  riichi <seat>      - Declare or withdraw riichi",
		"  undo               - Take back the last hand",
		"Display:",
		"  view <seat>|off    - Show scores relative to a seat",
		"Utility:",
		"  help               - Show this help",
		"  quit               - Quit",
		"Seats are 0-3 or e/s/w/n. Fu may be left out from 5 fan up.",
	}
}

// Format renders outcome as the command that records it, so a restored
// draft can be edited and submitted again.
func Format(outcome game.Outcome) string {
	switch o := outcome.(type) {
	case game.Win:
		if len(o.Hands) == 0 {
			return ""
		}
		parts := []string{string(Ron), strconv.Itoa(o.Hands[0].DealIn)}
		if o.Hands[0].IsTsumo() {
			parts = []string{string(Tsumo)}
		}
		for _, h := range o.Hands {
			parts = append(parts, strconv.Itoa(h.Winner), strconv.Itoa(h.Fan))
			if h.Fu != 0 {
				parts = append(parts, strconv.Itoa(h.Fu))
			}
		}
		return strings.Join(parts, " ")
	case game.Draw:
		parts := []string{string(Draw)}
		for seat, tenpai := range o.Tenpai {
			if tenpai {
				parts = append(parts, strconv.Itoa(seat))
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}
