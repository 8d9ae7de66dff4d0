package game

import "fmt"

// StickSweep selects which winner takes the riichi pot on a multi-ron.
type StickSweep string

const (
	// SweepDealerOrder gives the pot to the first winner counting from the
	// dealer in seating order.
	SweepDealerOrder StickSweep = "dealer"
	// SweepDiscarderOrder gives the pot to the first winner in turn order
	// after the player who dealt in.
	SweepDiscarderOrder StickSweep = "discarder"
)

// DrawRotation selects what happens to honba when the dealer rotates after a
// drawn hand.
type DrawRotation string

const (
	DrawRotationIncrement DrawRotation = "increment"
	DrawRotationReset     DrawRotation = "reset"
)

const (
	DefaultStartingScore = 25000
	DefaultNotenTotal    = 3000
	RiichiBet            = 1000
	HonbaRon             = 300
	HonbaTsumo           = 100
)

// Rules holds the house rules the engine consults.
type Rules struct {
	Kiriage      bool         // round 4 fan 30 fu and 3 fan 60 fu up to mangan
	StickSweep   StickSweep   // riichi pot recipient on multi-ron
	DrawRotation DrawRotation // honba handling when the dealer rotates on a draw
	NotenTotal   int          // points noten players pay in total on a draw
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		StickSweep:   SweepDealerOrder,
		DrawRotation: DrawRotationIncrement,
		NotenTotal:   DefaultNotenTotal,
	}
}

// withDefaults fills zero values from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.StickSweep == "" {
		r.StickSweep = d.StickSweep
	}
	if r.DrawRotation == "" {
		r.DrawRotation = d.DrawRotation
	}
	if r.NotenTotal == 0 {
		r.NotenTotal = d.NotenTotal
	}
	return r
}

// Validate checks the enumerated rule values.
func (r Rules) Validate() error {
	switch r.StickSweep {
	case SweepDealerOrder, SweepDiscarderOrder:
	default:
		return fmt.Errorf("unknown stick sweep %q", r.StickSweep)
	}
	switch r.DrawRotation {
	case DrawRotationIncrement, DrawRotationReset:
	default:
		return fmt.Errorf("unknown draw rotation %q", r.DrawRotation)
	}
	if r.NotenTotal < 0 {
		return fmt.Errorf("noten total must not be negative, got %d", r.NotenTotal)
	}
	return nil
}
