package game

// Draft is the outcome being entered but not yet committed. Undo restores the
// undone hand into the draft so it can be corrected and committed again.
type Draft struct {
	Kind   OutcomeKind
	Hands  []WinHand
	Tenpai []bool
}

// NewDraft returns an empty win draft for numPlayers seats.
func NewDraft(numPlayers int) Draft {
	return Draft{
		Kind:   KindWin,
		Tenpai: make([]bool, numPlayers),
	}
}

func (d Draft) clone() Draft {
	out := d
	out.Hands = append([]WinHand(nil), d.Hands...)
	out.Tenpai = append([]bool(nil), d.Tenpai...)
	return out
}

// Outcome converts the draft into an outcome. It does not validate seats or
// hand values; Commit does that.
func (d Draft) Outcome() (Outcome, error) {
	switch d.Kind {
	case KindWin:
		if len(d.Hands) == 0 {
			return nil, invalid("winner", "no winning hand entered")
		}
		return Win{Hands: append([]WinHand(nil), d.Hands...)}, nil
	case KindDraw:
		return Draw{Tenpai: append([]bool(nil), d.Tenpai...)}, nil
	default:
		return nil, invalid("outcome", "unknown kind %q", d.Kind)
	}
}

// WithOutcome returns the draft as it reads once outcome has been entered:
// the kind and its payload replaced, the other variant's fields untouched.
func (d Draft) WithOutcome(o Outcome) Draft {
	out := d.clone()
	switch o := o.(type) {
	case Win:
		out.Kind = KindWin
		out.Hands = append([]WinHand(nil), o.Hands...)
	case Draw:
		out.Kind = KindDraw
		out.Tenpai = append([]bool(nil), o.Tenpai...)
	}
	return out
}
