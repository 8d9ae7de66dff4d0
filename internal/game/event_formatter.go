package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowZeroDeltas bool // List seats whose score did not move
	ShowTimestamps bool // Prefix headlines with the commit time (for transcripts)
	Color          bool // ANSI bold headlines (for the TUI log)
}

// EventFormatter provides centralized formatting for all game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format dispatches on the event type. Unknown events format as "".
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case HandSettledEvent:
		return ef.FormatHandSettled(e)
	case HandRewoundEvent:
		return ef.FormatHandRewound(e)
	case RiichiEvent:
		return ef.FormatRiichi(e)
	default:
		return ""
	}
}

// FormatHandSettled formats a committed hand: a headline, one line per
// score change and the round that follows.
func (ef *EventFormatter) FormatHandSettled(event HandSettledEvent) string {
	var b strings.Builder
	rec := event.Record

	headline := fmt.Sprintf("#%d %s: %s", rec.Seq, rec.Before.Label(), ef.describeOutcome(rec.Outcome, event.Players))
	if ef.opts.ShowTimestamps && !rec.CommittedAt.IsZero() {
		headline = rec.CommittedAt.Format("15:04:05") + " " + headline
	}
	b.WriteString(ef.bold(headline))

	for seat, delta := range rec.Deltas {
		if delta == 0 && !ef.opts.ShowZeroDeltas {
			continue
		}
		line := fmt.Sprintf("\n  %s: %+d", seatName(event.Players, seat), delta)
		if seat < len(rec.Settlement.Sticks) && rec.Settlement.Sticks[seat] > 0 {
			line += fmt.Sprintf(" (incl. %d riichi)", rec.Settlement.Sticks[seat])
		}
		if seat < len(event.Players) {
			line += fmt.Sprintf(" -> %d", event.Players[seat].Score)
		}
		b.WriteString(line)
	}

	b.WriteString(fmt.Sprintf("\nNext: %s", ef.describeStatus(event.Status, event.Players)))
	return b.String()
}

// FormatHandRewound formats an undo.
func (ef *EventFormatter) FormatHandRewound(event HandRewoundEvent) string {
	headline := fmt.Sprintf("Undo #%d: %s", event.Record.Seq, ef.describeOutcome(event.Record.Outcome, event.Players))
	return ef.bold(headline) + "\nBack to " + ef.describeStatus(event.Status, event.Players)
}

// FormatRiichi formats a riichi declaration or withdrawal.
func (ef *EventFormatter) FormatRiichi(event RiichiEvent) string {
	name := event.Player.Name
	if event.Declared {
		return fmt.Sprintf("%s declares riichi (%d, sticks on table: %d)", name, event.Player.Score, event.Sticks)
	}
	return fmt.Sprintf("%s withdraws riichi (%d, sticks on table: %d)", name, event.Player.Score, event.Sticks)
}

func (ef *EventFormatter) describeOutcome(outcome Outcome, players []Player) string {
	switch o := outcome.(type) {
	case Win:
		parts := make([]string, 0, len(o.Hands))
		for _, h := range o.Hands {
			value := fmt.Sprintf("%d fan", h.Fan)
			if h.Fan < limitFan {
				value += fmt.Sprintf(" %d fu", h.Fu)
			}
			if h.IsTsumo() {
				parts = append(parts, fmt.Sprintf("%s tsumo, %s", seatName(players, h.Winner), value))
			} else {
				parts = append(parts, fmt.Sprintf("%s ron off %s, %s",
					seatName(players, h.Winner), seatName(players, h.DealIn), value))
			}
		}
		return strings.Join(parts, "; ")
	case Draw:
		var ready []string
		for seat, t := range o.Tenpai {
			if t {
				ready = append(ready, seatName(players, seat))
			}
		}
		if len(ready) == 0 {
			return "draw, all noten"
		}
		if len(ready) == len(o.Tenpai) {
			return "draw, all tenpai"
		}
		return "draw, tenpai " + strings.Join(ready, ", ")
	default:
		return "unknown outcome"
	}
}

func (ef *EventFormatter) describeStatus(s Status, players []Player) string {
	text := fmt.Sprintf("%s, dealer %s", s.Label(), seatName(players, s.Dealer()))
	if s.RiichiSticks > 0 {
		text += fmt.Sprintf(", %d riichi stick(s)", s.RiichiSticks)
	}
	return text
}

func (ef *EventFormatter) bold(s string) string {
	if !ef.opts.Color {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

// seatName returns the player's name, falling back to the seat wind.
func seatName(players []Player, seat int) string {
	if seat >= 0 && seat < len(players) && players[seat].Name != "" {
		return players[seat].Name
	}
	return SeatWindLabel(seat)
}
