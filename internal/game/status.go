package game

import (
	"fmt"
	"slices"
)

// Status is the round state between hands. The dealer is derived from Round
// and NumPlayers and never stored.
type Status struct {
	Wind         int
	Round        int
	Honba        int
	RiichiSticks int
	Riichi       []bool
	NumPlayers   int
}

// NewStatus returns the opening status: East 1, no honba, no sticks.
func NewStatus(numPlayers int) Status {
	return Status{
		Round:      1,
		Riichi:     make([]bool, numPlayers),
		NumPlayers: numPlayers,
	}
}

// Clone returns a copy that shares no memory with s.
func (s Status) Clone() Status {
	out := s
	out.Riichi = make([]bool, len(s.Riichi))
	copy(out.Riichi, s.Riichi)
	return out
}

// Dealer returns the seat dealing this round.
func (s Status) Dealer() int {
	return DealerSeat(s.Wind, s.Round, s.NumPlayers)
}

// Label formats the round, e.g. "East 2, 1 honba".
func (s Status) Label() string {
	return fmt.Sprintf("%s, %d honba", RoundLabel(s.Wind, s.Round), s.Honba)
}

// IsAllLast reports whether this is the final round of a match lasting
// lengthWinds winds.
func (s Status) IsAllLast(lengthWinds int) bool {
	return s.Wind == lengthWinds-1 && s.Round == s.NumPlayers
}

// IsPast reports whether the match of lengthWinds winds has run out.
func (s Status) IsPast(lengthWinds int) bool {
	return s.Wind >= lengthWinds
}

// NextStatus returns the status after a hand concludes with outcome. The
// input is not modified.
func NextStatus(s Status, outcome Outcome, rules Rules) Status {
	rules = rules.withDefaults()
	next := s.Clone()
	dealer := s.Dealer()

	switch o := outcome.(type) {
	case Win:
		if slices.Contains(o.Winners(), dealer) {
			next.Honba++
		} else {
			next.rotate()
			next.Honba = 0
		}
		next.RiichiSticks = 0
	case Draw:
		if dealer < len(o.Tenpai) && o.Tenpai[dealer] {
			next.Honba++
		} else {
			next.rotate()
			if rules.DrawRotation == DrawRotationReset {
				next.Honba = 0
			} else {
				next.Honba++
			}
		}
	}

	for i := range next.Riichi {
		next.Riichi[i] = false
	}
	return next
}

// rotate passes the deal to the next seat, moving to the next wind after
// every seat has dealt once.
func (s *Status) rotate() {
	s.Round++
	if s.Round > s.NumPlayers {
		s.Round = 1
		s.Wind++
	}
}
