package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// TestManagerOption configures test manager creation
type TestManagerOption func(*testManagerBuilder)

type testManagerBuilder struct {
	config  ManagerConfig
	options []ManagerOption
}

// Test manager options
func WithNames(names ...string) TestManagerOption {
	return func(b *testManagerBuilder) { b.config.Names = names }
}

func WithStartingScore(score int) TestManagerOption {
	return func(b *testManagerBuilder) { b.config.StartingScore = score }
}

func WithRules(rules Rules) TestManagerOption {
	return func(b *testManagerBuilder) { b.config.Rules = rules }
}

func WithManagerOptions(opts ...ManagerOption) TestManagerOption {
	return func(b *testManagerBuilder) { b.options = append(b.options, opts...) }
}

// NewTestManager creates a four player manager with a quiet logger. It
// panics on configuration errors, which only a broken test can cause.
func NewTestManager(opts ...TestManagerOption) *Manager {
	builder := &testManagerBuilder{
		config: ManagerConfig{
			Names:         []string{"Alice", "Bob", "Carol", "Dave"},
			StartingScore: DefaultStartingScore,
		},
		options: []ManagerOption{WithLogger(log.New(io.Discard))},
	}
	for _, opt := range opts {
		opt(builder)
	}

	m, err := NewManager(builder.config, builder.options...)
	if err != nil {
		panic(err)
	}
	return m
}

// Ron builds a single-winner ron outcome.
func Ron(winner, dealIn, fan, fu int) Win {
	return Win{Hands: []WinHand{{Winner: winner, DealIn: dealIn, Fan: fan, Fu: fu}}}
}

// Tsumo builds a self-draw outcome.
func Tsumo(winner, fan, fu int) Win {
	return Win{Hands: []WinHand{{Winner: winner, DealIn: SelfDraw, Fan: fan, Fu: fu}}}
}

// Tenpai builds a draw with the given seats ready on a four player table.
func Tenpai(seats ...int) Draw {
	tenpai := make([]bool, 4)
	for _, s := range seats {
		tenpai[s] = true
	}
	return Draw{Tenpai: tenpai}
}
