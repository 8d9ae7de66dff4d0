package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// ManagerConfig is the table setup a Manager starts from.
type ManagerConfig struct {
	Names         []string // one per seat, East first; defaults to the wind names of four seats
	StartingScore int      // defaults to DefaultStartingScore
	Rules         Rules
}

// Snapshot is everything a front end renders.
type Snapshot struct {
	Players []Player
	Status  Status
	Draft   Draft
}

// Manager owns the state of one game. All mutation goes through Commit, Undo
// and ToggleRiichi; accessors hand out copies. A Manager is not safe for
// concurrent use.
type Manager struct {
	rules   Rules
	players []Player
	status  Status
	draft   Draft
	records *RecordLog

	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

// NewManager seats the players and opens East 1.
func NewManager(cfg ManagerConfig, opts ...ManagerOption) (*Manager, error) {
	names := cfg.Names
	if len(names) == 0 {
		names = []string{SeatWindLabel(0), SeatWindLabel(1), SeatWindLabel(2), SeatWindLabel(3)}
	}
	if len(names) != 3 && len(names) != 4 {
		return nil, fmt.Errorf("a table seats 3 or 4 players, got %d", len(names))
	}
	startingScore := cfg.StartingScore
	if startingScore == 0 {
		startingScore = DefaultStartingScore
	}
	rules := cfg.Rules.withDefaults()
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Manager{
		rules:   rules,
		players: NewPlayers(names, startingScore),
		status:  NewStatus(len(names)),
		draft:   NewDraft(len(names)),
		records: NewRecordLog(),
		logger:  o.logger,
		clock:   o.clock,
		bus:     o.bus,
	}
	m.logger.Debug("Game started", "players", len(names), "startingScore", startingScore)
	return m, nil
}

// Commit settles outcome against the current round, records it and advances
// to the next round. Invalid input is rejected with a *ValidationError and
// leaves the state untouched.
func (m *Manager) Commit(outcome Outcome) (Record, error) {
	n := m.status.NumPlayers
	if err := validateOutcome(outcome, n); err != nil {
		return Record{}, err
	}
	settlement, err := Settle(m.status, outcome, m.rules)
	if err != nil {
		return Record{}, err
	}
	deltas := settlement.Deltas()
	players, err := ApplyScoreChange(m.players, deltas)
	if err != nil {
		return Record{}, err
	}

	rec := m.records.Push(Record{
		Outcome:     outcome,
		Settlement:  settlement,
		Deltas:      deltas,
		Before:      m.status,
		Input:       m.draft.WithOutcome(outcome),
		CommittedAt: m.clock.Now(),
	})
	m.players = players
	m.status = NextStatus(m.status, outcome, m.rules)
	m.draft = NewDraft(n)

	m.logger.Info("Hand committed",
		"seq", rec.Seq,
		"round", rec.Before.Label(),
		"outcome", outcome.String(),
		"deltas", deltas)
	m.bus.Publish(NewHandSettledEvent(rec, m.players, m.status, rec.CommittedAt))
	return rec, nil
}

// CommitDraft commits the current draft.
func (m *Manager) CommitDraft() (Record, error) {
	outcome, err := m.draft.Outcome()
	if err != nil {
		return Record{}, err
	}
	return m.Commit(outcome)
}

// Undo takes back the most recent hand. Scores lose the hand's deltas, riichi
// bets placed since that hand are refunded, and the round state and draft are
// restored from the record. ok is false, and nothing changes, when there is no
// hand to undo.
func (m *Manager) Undo() (rec Record, ok bool) {
	rec, ok = m.records.Pop()
	if !ok {
		m.logger.Debug("Nothing to undo")
		return Record{}, false
	}

	adjust := make([]int, len(m.players))
	for seat, declared := range m.status.Riichi {
		if declared {
			adjust[seat] += RiichiBet
		}
	}
	for seat, delta := range rec.Deltas {
		adjust[seat] -= delta
	}
	players, err := ApplyScoreChange(m.players, adjust)
	if err != nil {
		panic(err)
	}

	m.players = players
	m.status = rec.Before.Clone()
	m.draft = rec.Input.clone()

	m.logger.Info("Hand undone", "seq", rec.Seq, "round", m.status.Label())
	m.bus.Publish(NewHandRewoundEvent(rec, m.players, m.status, m.clock.Now()))
	return rec.clone(), true
}

// ToggleRiichi places or withdraws a riichi bet for seat. It moves points and
// sticks immediately but is not a hand and is not recorded.
func (m *Manager) ToggleRiichi(seat int) error {
	if err := validateSeat("seat", seat, m.status.NumPlayers); err != nil {
		return err
	}

	status := m.status.Clone()
	declared := !status.Riichi[seat]
	status.Riichi[seat] = declared
	delta := make([]int, len(m.players))
	if declared {
		status.RiichiSticks++
		delta[seat] = -RiichiBet
	} else {
		status.RiichiSticks--
		delta[seat] = RiichiBet
	}
	players, err := ApplyScoreChange(m.players, delta)
	if err != nil {
		return err
	}

	m.players = players
	m.status = status
	m.logger.Debug("Riichi toggled", "seat", seat, "declared", declared, "sticks", status.RiichiSticks)
	m.bus.Publish(NewRiichiEvent(m.players[seat], declared, status.RiichiSticks, m.clock.Now()))
	return nil
}

// SetDraft replaces the transient input state.
func (m *Manager) SetDraft(d Draft) error {
	if len(d.Tenpai) != m.status.NumPlayers {
		return invalid("tenpai", "expected %d entries, got %d", m.status.NumPlayers, len(d.Tenpai))
	}
	m.draft = d.clone()
	return nil
}

// Players returns a copy of the players.
func (m *Manager) Players() []Player {
	return clonePlayers(m.players)
}

// Status returns a copy of the round state.
func (m *Manager) Status() Status {
	return m.status.Clone()
}

// Draft returns a copy of the transient input state.
func (m *Manager) Draft() Draft {
	return m.draft.clone()
}

// Snapshot returns players, status and draft together.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		Players: m.Players(),
		Status:  m.Status(),
		Draft:   m.Draft(),
	}
}

// Records returns the committed hands, oldest first.
func (m *Manager) Records() []Record {
	return m.records.Records()
}

// Rules returns the house rules in force.
func (m *Manager) Rules() Rules {
	return m.rules
}

// DisplayScores returns scores relative to the highlighted seat, or absolute
// scores for a negative highlight.
func (m *Manager) DisplayScores(highlight int) []int {
	return DisplayScores(m.players, highlight)
}

// Events returns the bus the manager publishes on.
func (m *Manager) Events() EventBus {
	return m.bus
}
