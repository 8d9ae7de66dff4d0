package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinSettlement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       Status
		win          Win
		rules        Rules
		wantPayments []int
		wantSticks   []int
	}{
		{
			name:         "non-dealer ron leaves dealer untouched",
			status:       NewStatus(4),
			win:          Ron(1, 2, 3, 30),
			wantPayments: []int{0, 3900, -3900, 0},
			wantSticks:   []int{0, 0, 0, 0},
		},
		{
			name:         "dealer ron pays six times base",
			status:       NewStatus(4),
			win:          Ron(0, 3, 2, 30),
			wantPayments: []int{2900, 0, 0, -2900},
			wantSticks:   []int{0, 0, 0, 0},
		},
		{
			name:         "ron honba paid by discarder",
			status:       Status{Round: 1, Honba: 2, Riichi: make([]bool, 4), NumPlayers: 4},
			win:          Ron(1, 2, 3, 30),
			wantPayments: []int{0, 4500, -4500, 0},
			wantSticks:   []int{0, 0, 0, 0},
		},
		{
			name:         "non-dealer tsumo with honba",
			status:       Status{Round: 1, Honba: 1, Riichi: make([]bool, 4), NumPlayers: 4},
			win:          Tsumo(2, 4, 30),
			wantPayments: []int{-4000, -2100, 8200, -2100},
			wantSticks:   []int{0, 0, 0, 0},
		},
		{
			name:         "dealer tsumo collects double from everyone",
			status:       Status{Round: 2, Riichi: make([]bool, 4), NumPlayers: 4},
			win:          Tsumo(1, 2, 30),
			wantPayments: []int{-1000, 3000, -1000, -1000},
			wantSticks:   []int{0, 0, 0, 0},
		},
		{
			name:         "riichi pot goes to the winner",
			status:       Status{Round: 1, RiichiSticks: 2, Riichi: make([]bool, 4), NumPlayers: 4},
			win:          Ron(3, 1, 1, 30),
			wantPayments: []int{0, -1000, 0, 1000},
			wantSticks:   []int{0, 0, 0, 2000},
		},
		{
			name:   "multi-ron accumulates per winner",
			status: Status{Round: 1, RiichiSticks: 2, Riichi: make([]bool, 4), NumPlayers: 4},
			win: Win{Hands: []WinHand{
				{Winner: 1, DealIn: 3, Fan: 2, Fu: 30},
				{Winner: 2, DealIn: 3, Fan: 5},
			}},
			wantPayments: []int{0, 2000, 8000, -10000},
			wantSticks:   []int{0, 2000, 0, 0},
		},
		{
			name:   "multi-ron pot to winner nearest the dealer",
			status: Status{Round: 1, RiichiSticks: 1, Riichi: make([]bool, 4), NumPlayers: 4},
			win: Win{Hands: []WinHand{
				{Winner: 2, DealIn: 1, Fan: 1, Fu: 30},
				{Winner: 0, DealIn: 1, Fan: 1, Fu: 30},
			}},
			wantPayments: []int{1500, -2500, 1000, 0},
			wantSticks:   []int{1000, 0, 0, 0},
		},
		{
			name:   "multi-ron pot to winner nearest the discarder",
			status: Status{Round: 1, RiichiSticks: 1, Riichi: make([]bool, 4), NumPlayers: 4},
			win: Win{Hands: []WinHand{
				{Winner: 0, DealIn: 1, Fan: 1, Fu: 30},
				{Winner: 2, DealIn: 1, Fan: 1, Fu: 30},
			}},
			rules:        Rules{StickSweep: SweepDiscarderOrder},
			wantPayments: []int{1500, -2500, 1000, 0},
			wantSticks:   []int{0, 0, 1000, 0},
		},
		{
			name:         "three player tsumo",
			status:       NewStatus(3),
			win:          Tsumo(1, 5, 0),
			wantPayments: []int{-4000, 6000, -2000},
			wantSticks:   []int{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := WinSettlement(tt.status, tt.win, tt.rules)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPayments, s.Payments)
			assert.Equal(t, tt.wantSticks, s.Sticks)
			assert.Zero(t, sum(s.Payments), "payments must be zero-sum")
			assert.Equal(t, tt.status.RiichiSticks*RiichiBet, sum(s.Sticks))
		})
	}
}

func TestWinSettlementIsZeroSum(t *testing.T) {
	t.Parallel()

	fus := []int{20, 25, 30, 40, 50, 60, 70, 80, 90, 100, 110}
	for _, numPlayers := range []int{3, 4} {
		for round := 1; round <= numPlayers; round++ {
			for honba := 0; honba <= 2; honba++ {
				status := Status{Round: round, Honba: honba, Riichi: make([]bool, numPlayers), NumPlayers: numPlayers}
				for fan := 1; fan <= 13; fan++ {
					for _, fu := range fus {
						for winner := 0; winner < numPlayers; winner++ {
							s, err := WinSettlement(status, Tsumo(winner, fan, fu), Rules{})
							require.NoError(t, err)
							require.Zero(t, sum(s.Payments), "tsumo fan=%d fu=%d winner=%d", fan, fu, winner)

							for dealIn := 0; dealIn < numPlayers; dealIn++ {
								if dealIn == winner {
									continue
								}
								s, err := WinSettlement(status, Ron(winner, dealIn, fan, fu), Rules{})
								require.NoError(t, err)
								require.Zero(t, sum(s.Payments), "ron fan=%d fu=%d winner=%d dealIn=%d", fan, fu, winner, dealIn)
							}
						}
					}
				}
			}
		}
	}
}

func TestWinSettlementValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		win   Win
		field string
	}{
		{"no hands", Win{}, "winner"},
		{"winner out of range", Ron(4, 1, 1, 30), "winner"},
		{"negative winner", Ron(-1, 1, 1, 30), "winner"},
		{"deal in to self", Ron(2, 2, 1, 30), "dealIn"},
		{"deal in out of range", Ron(2, 7, 1, 30), "dealIn"},
		{"bad fan", Ron(1, 2, 0, 30), "fan"},
		{"bad fu", Ron(1, 2, 2, 15), "fu"},
		{
			"duplicate winner",
			Win{Hands: []WinHand{{Winner: 1, DealIn: 0, Fan: 1, Fu: 30}, {Winner: 1, DealIn: 0, Fan: 2, Fu: 30}}},
			"winner",
		},
		{
			"different discarders",
			Win{Hands: []WinHand{{Winner: 1, DealIn: 0, Fan: 1, Fu: 30}, {Winner: 2, DealIn: 3, Fan: 1, Fu: 30}}},
			"dealIn",
		},
		{
			"tsumo alongside ron",
			Win{Hands: []WinHand{{Winner: 1, DealIn: SelfDraw, Fan: 1, Fu: 30}, {Winner: 2, DealIn: 3, Fan: 1, Fu: 30}}},
			"dealIn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WinSettlement(NewStatus(4), tt.win, Rules{})
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDrawSettlement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tenpai []bool
		rules  Rules
		want   []int
	}{
		{"all noten", []bool{false, false, false, false}, Rules{}, []int{0, 0, 0, 0}},
		{"all tenpai", []bool{true, true, true, true}, Rules{}, []int{0, 0, 0, 0}},
		{"one tenpai", []bool{true, false, false, false}, Rules{}, []int{3000, -1000, -1000, -1000}},
		{"two tenpai", []bool{true, false, true, false}, Rules{}, []int{1500, -1500, 1500, -1500}},
		{"three tenpai", []bool{true, true, true, false}, Rules{}, []int{1000, 1000, 1000, -3000}},
		{"three players one tenpai", []bool{false, true, false}, Rules{}, []int{-1500, 3000, -1500}},
		{"three players two tenpai", []bool{true, true, false}, Rules{}, []int{1500, 1500, -3000}},
		{"remainder to first tenpai seat", []bool{false, true, true, true}, Rules{NotenTotal: 1000}, []int{-1000, 334, 333, 333}},
		{"uneven noten share", []bool{false, false, true, false}, Rules{NotenTotal: 1000}, []int{-333, -333, 999, -333}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DrawSettlement(Draw{Tenpai: tt.tenpai}, tt.rules)
			assert.Equal(t, tt.want, s.Payments)
			assert.Zero(t, sum(s.Payments))
			assert.Zero(t, sum(s.Sticks))
		})
	}
}

func TestDrawSettlementIsZeroSumForEveryPartition(t *testing.T) {
	t.Parallel()

	for _, numPlayers := range []int{3, 4} {
		for mask := 0; mask < 1<<numPlayers; mask++ {
			tenpai := make([]bool, numPlayers)
			for seat := range tenpai {
				tenpai[seat] = mask&(1<<seat) != 0
			}
			for _, total := range []int{1000, 3000, 4000} {
				s := DrawSettlement(Draw{Tenpai: tenpai}, Rules{NotenTotal: total})
				assert.Zero(t, sum(s.Payments), "tenpai=%v total=%d", tenpai, total)
			}
		}
	}
}

func TestSettleRejectsBadDraw(t *testing.T) {
	t.Parallel()

	_, err := Settle(NewStatus(4), Draw{Tenpai: []bool{true}}, Rules{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "tenpai", verr.Field)

	_, err = Settle(NewStatus(4), nil, Rules{})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "outcome", verr.Field)
}

func TestApplyScoreChange(t *testing.T) {
	t.Parallel()

	players := NewPlayers([]string{"A", "B", "C", "D"}, 25000)

	t.Run("adds deltas without touching input", func(t *testing.T) {
		out, err := ApplyScoreChange(players, []int{-3900, 3900, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, []int{21100, 28900, 25000, 25000}, scores(out))
		assert.Equal(t, []int{25000, 25000, 25000, 25000}, scores(players))
	})

	t.Run("length mismatch is an invariant violation", func(t *testing.T) {
		_, err := ApplyScoreChange(players, []int{1, 2, 3})
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})
}

func TestSettlementDeltasIncludeSticks(t *testing.T) {
	t.Parallel()

	s := Settlement{Payments: []int{-1000, 1000, 0, 0}, Sticks: []int{0, 2000, 0, 0}}
	assert.Equal(t, []int{-1000, 3000, 0, 0}, s.Deltas())
}
