// Package game implements the scoring and round-progression engine for
// Japanese (riichi) mahjong score keeping.
//
// The main type is Manager, which owns the players, the current Status and
// the RecordLog, and exposes the verbs a front end needs: Commit, Undo and
// ToggleRiichi.
//
// # Basic Usage
//
//	m, err := game.NewManager(game.ManagerConfig{
//	    Names: []string{"Alice", "Bob", "Carol", "Dave"},
//	})
//	// Seat 1 wins 3 fan 30 fu off seat 2.
//	rec, err := m.Commit(game.Win{Hands: []game.WinHand{
//	    {Winner: 1, DealIn: 2, Fan: 3, Fu: 30},
//	}})
//	// Take it back.
//	rec, ok := m.Undo()
//
// # Architecture
//
// Manager composes a set of pure functions that never mutate their inputs:
//   - DealerSeat and SeatWindLabel: seat and wind arithmetic
//   - WinSettlement and DrawSettlement: per-seat point transfers
//   - NextStatus: dealer repeat or rotation, honba and riichi stick bookkeeping
//   - RecordLog: the undo stack, holding the status snapshot taken before each hand
//
// Undo restores the stored snapshot rather than inverting the transition, so
// rounding in the score tables never leaks into a rewound state.
package game
