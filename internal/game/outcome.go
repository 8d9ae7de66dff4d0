package game

import (
	"fmt"
	"strings"
)

// SelfDraw marks a WinHand won by tsumo rather than off a discard.
const SelfDraw = -1

// OutcomeKind tags the two outcome variants.
type OutcomeKind string

const (
	KindWin  OutcomeKind = "Win"
	KindDraw OutcomeKind = "Draw"
)

// Outcome is the result of a hand: either Win or Draw.
type Outcome interface {
	Kind() OutcomeKind
	String() string
	clone() Outcome
}

// WinHand is one winner's claim. DealIn is the discarding seat, or SelfDraw.
type WinHand struct {
	Winner int
	Fan    int
	Fu     int
	DealIn int
}

// IsTsumo reports whether the hand was won by self-draw.
func (h WinHand) IsTsumo() bool {
	return h.DealIn == SelfDraw
}

// Win is a hand with one or more winners. Several hands share one discard on
// a multi-ron.
type Win struct {
	Hands []WinHand
}

func (Win) Kind() OutcomeKind { return KindWin }

func (w Win) clone() Outcome {
	hands := make([]WinHand, len(w.Hands))
	copy(hands, w.Hands)
	return Win{Hands: hands}
}

func (w Win) String() string {
	parts := make([]string, 0, len(w.Hands))
	for _, h := range w.Hands {
		if h.IsTsumo() {
			parts = append(parts, fmt.Sprintf("%s tsumo %d fan %d fu", SeatWindLabel(h.Winner), h.Fan, h.Fu))
		} else {
			parts = append(parts, fmt.Sprintf("%s ron off %s %d fan %d fu",
				SeatWindLabel(h.Winner), SeatWindLabel(h.DealIn), h.Fan, h.Fu))
		}
	}
	return strings.Join(parts, ", ")
}

// Winners returns the winning seats in claim order.
func (w Win) Winners() []int {
	seats := make([]int, len(w.Hands))
	for i, h := range w.Hands {
		seats[i] = h.Winner
	}
	return seats
}

// Draw is an exhaustive draw. Tenpai marks the seats that declared ready.
type Draw struct {
	Tenpai []bool
}

func (Draw) Kind() OutcomeKind { return KindDraw }

func (d Draw) clone() Outcome {
	tenpai := make([]bool, len(d.Tenpai))
	copy(tenpai, d.Tenpai)
	return Draw{Tenpai: tenpai}
}

func (d Draw) String() string {
	var ready []string
	for seat, t := range d.Tenpai {
		if t {
			ready = append(ready, SeatWindLabel(seat))
		}
	}
	if len(ready) == 0 {
		return "draw, all noten"
	}
	return "draw, tenpai: " + strings.Join(ready, " ")
}

// validateWin checks a Win against a table of numPlayers seats.
func validateWin(w Win, numPlayers int) error {
	if len(w.Hands) == 0 {
		return invalid("winner", "a win needs at least one hand")
	}
	seen := make(map[int]bool, len(w.Hands))
	dealIn := w.Hands[0].DealIn
	for _, h := range w.Hands {
		if err := validateSeat("winner", h.Winner, numPlayers); err != nil {
			return err
		}
		if seen[h.Winner] {
			return invalid("winner", "seat %d claims more than once", h.Winner)
		}
		seen[h.Winner] = true
		if err := validateFanFu(h.Fan, h.Fu); err != nil {
			return err
		}
		if h.IsTsumo() {
			if len(w.Hands) > 1 {
				return invalid("dealIn", "a self-draw must be the only winning hand")
			}
			continue
		}
		if err := validateSeat("dealIn", h.DealIn, numPlayers); err != nil {
			return err
		}
		if h.DealIn == h.Winner {
			return invalid("dealIn", "seat %d cannot deal in to itself", h.Winner)
		}
		if h.DealIn != dealIn {
			return invalid("dealIn", "all ron claims must share one discarder")
		}
	}
	return nil
}

func validateDraw(d Draw, numPlayers int) error {
	if len(d.Tenpai) != numPlayers {
		return invalid("tenpai", "expected %d entries, got %d", numPlayers, len(d.Tenpai))
	}
	return nil
}

func validateSeat(field string, seat, numPlayers int) error {
	if seat < 0 || seat >= numPlayers {
		return invalid(field, "seat %d out of range 0..%d", seat, numPlayers-1)
	}
	return nil
}

func validateOutcome(o Outcome, numPlayers int) error {
	switch o := o.(type) {
	case Win:
		return validateWin(o, numPlayers)
	case Draw:
		return validateDraw(o, numPlayers)
	case nil:
		return invalid("outcome", "missing")
	default:
		return invalid("outcome", "unknown kind %q", o.Kind())
	}
}
