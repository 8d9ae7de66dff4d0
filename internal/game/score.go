package game

import "fmt"

// Settlement is the point movement for one hand. Payments sum to zero; Sticks
// carries the riichi pot to its winner and sums to the pot size.
type Settlement struct {
	Payments []int
	Sticks   []int
}

func newSettlement(numPlayers int) Settlement {
	return Settlement{
		Payments: make([]int, numPlayers),
		Sticks:   make([]int, numPlayers),
	}
}

// Deltas returns the seat-wise total of payments and sticks.
func (s Settlement) Deltas() []int {
	deltas := make([]int, len(s.Payments))
	for i := range deltas {
		deltas[i] = s.Payments[i]
		if i < len(s.Sticks) {
			deltas[i] += s.Sticks[i]
		}
	}
	return deltas
}

func (s Settlement) transfer(from, to, points int) {
	s.Payments[from] -= points
	s.Payments[to] += points
}

// WinSettlement computes the point transfer for a won hand. Every hand is
// priced on its own against the current honba and the results accumulate
// seat-wise; the riichi pot goes to a single winner chosen by rules.StickSweep.
func WinSettlement(status Status, w Win, rules Rules) (Settlement, error) {
	rules = rules.withDefaults()
	n := status.NumPlayers
	if err := validateWin(w, n); err != nil {
		return Settlement{}, err
	}

	dealer := status.Dealer()
	s := newSettlement(n)
	for _, h := range w.Hands {
		v, err := ComputeHandValue(h.Fan, h.Fu, h.Winner == dealer, rules)
		if err != nil {
			return Settlement{}, err
		}
		if h.IsTsumo() {
			for seat := 0; seat < n; seat++ {
				if seat == h.Winner {
					continue
				}
				pay := v.TsumoOther
				if seat == dealer {
					pay = v.TsumoDealer
				}
				s.transfer(seat, h.Winner, pay+status.Honba*HonbaTsumo)
			}
			continue
		}
		s.transfer(h.DealIn, h.Winner, v.Ron+status.Honba*HonbaRon)
	}

	if pot := status.RiichiSticks * RiichiBet; pot > 0 {
		s.Sticks[stickRecipient(w, dealer, n, rules.StickSweep)] += pot
	}
	return s, nil
}

// stickRecipient picks the winner closest after the reference seat in
// seating order. The reference is the dealer, or the discarder for
// SweepDiscarderOrder on a ron.
func stickRecipient(w Win, dealer, numPlayers int, sweep StickSweep) int {
	ref := dealer
	if sweep == SweepDiscarderOrder && !w.Hands[0].IsTsumo() {
		ref = w.Hands[0].DealIn
	}
	best, bestDist := w.Hands[0].Winner, numPlayers
	for _, h := range w.Hands {
		dist := ((h.Winner-ref)%numPlayers + numPlayers) % numPlayers
		if dist < bestDist {
			best, bestDist = h.Winner, dist
		}
	}
	return best
}

// DrawSettlement computes the noten payments for an exhaustive draw. Each
// noten seat pays an equal share of rules.NotenTotal and the tenpai seats
// split what was collected; any remainder goes to the first tenpai seat so
// the result stays zero-sum.
func DrawSettlement(d Draw, rules Rules) Settlement {
	rules = rules.withDefaults()
	n := len(d.Tenpai)
	s := newSettlement(n)

	var ready []int
	for seat, t := range d.Tenpai {
		if t {
			ready = append(ready, seat)
		}
	}
	k := len(ready)
	if k == 0 || k == n {
		return s
	}

	pay := rules.NotenTotal / (n - k)
	collected := pay * (n - k)
	share := collected / k
	for seat, t := range d.Tenpai {
		if !t {
			s.Payments[seat] -= pay
		}
	}
	for _, seat := range ready {
		s.Payments[seat] += share
	}
	s.Payments[ready[0]] += collected - share*k
	return s
}

// Settle dispatches on the outcome kind.
func Settle(status Status, outcome Outcome, rules Rules) (Settlement, error) {
	switch o := outcome.(type) {
	case Win:
		return WinSettlement(status, o, rules)
	case Draw:
		if err := validateDraw(o, status.NumPlayers); err != nil {
			return Settlement{}, err
		}
		return DrawSettlement(o, rules), nil
	default:
		return Settlement{}, validateOutcome(outcome, status.NumPlayers)
	}
}

// ApplyScoreChange returns a copy of players with deltas added seat-wise.
func ApplyScoreChange(players []Player, deltas []int) ([]Player, error) {
	if len(deltas) != len(players) {
		return nil, fmt.Errorf("%w: %d deltas for %d players", ErrInvariantViolation, len(deltas), len(players))
	}
	out := clonePlayers(players)
	for i := range out {
		out[i].Score += deltas[i]
	}
	return out, nil
}
