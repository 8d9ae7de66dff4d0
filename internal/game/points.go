package game

import "fmt"

// Limit names the score tier a hand reached.
type Limit int

const (
	NoLimit Limit = iota
	Mangan
	Haneman
	Baiman
	Sanbaiman
	Yakuman
)

func (l Limit) String() string {
	switch l {
	case Mangan:
		return "Mangan"
	case Haneman:
		return "Haneman"
	case Baiman:
		return "Baiman"
	case Sanbaiman:
		return "Sanbaiman"
	case Yakuman:
		return "Yakuman"
	default:
		return ""
	}
}

const (
	maxFan        = 13 * 6
	limitFan      = 5
	manganBase    = 2000
	yakumanBase   = 8000
	yakumanFanCap = 13
)

// validateFanFu rejects values no score table covers. Fu only matters below
// mangan, so it is unchecked for limit hands.
func validateFanFu(fan, fu int) error {
	if fan < 1 || fan > maxFan {
		return invalid("fan", "%d out of range 1..%d", fan, maxFan)
	}
	if fan >= limitFan {
		return nil
	}
	switch {
	case fu == 20 || fu == 25:
	case fu >= 30 && fu <= 110 && fu%10 == 0:
	default:
		return invalid("fu", "%d is not a valid fu value", fu)
	}
	return nil
}

// BasePoints returns the base points for a hand: fu × 2^(fan+2) below the
// limit tiers, a fixed value keyed off fan above them.
func BasePoints(fan, fu int, rules Rules) (int, Limit) {
	switch {
	case fan >= yakumanFanCap:
		return yakumanBase * (fan / yakumanFanCap), Yakuman
	case fan >= 11:
		return 6000, Sanbaiman
	case fan >= 8:
		return 4000, Baiman
	case fan >= 6:
		return 3000, Haneman
	case fan >= limitFan:
		return manganBase, Mangan
	}

	base := fu * (1 << (fan + 2))
	if base >= manganBase {
		return manganBase, Mangan
	}
	if rules.Kiriage && ((fan == 4 && fu == 30) || (fan == 3 && fu == 60)) {
		return manganBase, Mangan
	}
	return base, NoLimit
}

// roundUp100 rounds a payment up to the next multiple of 100.
func roundUp100(points int) int {
	return (points + 99) / 100 * 100
}

// HandValue is what a single hand is worth before honba and riichi sticks.
type HandValue struct {
	Base  int
	Limit Limit
	// Ron is the total the discarder pays.
	Ron int
	// TsumoDealer is what the dealer pays on a non-dealer self-draw.
	// Zero when the winner is the dealer.
	TsumoDealer int
	// TsumoOther is what each non-dealer pays on a self-draw.
	TsumoOther int
}

// Describe returns a short label such as "Mangan" or "3 fan 30 fu".
func (v HandValue) Describe(fan, fu int) string {
	if v.Limit != NoLimit {
		if v.Limit == Yakuman && v.Base > yakumanBase {
			return fmt.Sprintf("%dx Yakuman", v.Base/yakumanBase)
		}
		return v.Limit.String()
	}
	return fmt.Sprintf("%d fan %d fu", fan, fu)
}

// ComputeHandValue prices a hand for a dealer or non-dealer winner. Each
// payment is rounded up independently, so the tsumo total may exceed the ron
// total.
func ComputeHandValue(fan, fu int, dealer bool, rules Rules) (HandValue, error) {
	if err := validateFanFu(fan, fu); err != nil {
		return HandValue{}, err
	}
	base, limit := BasePoints(fan, fu, rules)
	v := HandValue{Base: base, Limit: limit}
	if dealer {
		v.Ron = roundUp100(base * 6)
		v.TsumoOther = roundUp100(base * 2)
	} else {
		v.Ron = roundUp100(base * 4)
		v.TsumoDealer = roundUp100(base * 2)
		v.TsumoOther = roundUp100(base)
	}
	return v, nil
}
