package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/mjcalc/internal/game"
	"golang.org/x/sync/errgroup"
)

// ErrExpectation is returned when an expect step does not match the state.
var ErrExpectation = errors.New("expectation failed")

// Options configures a replay
type Options struct {
	Logger     *log.Logger
	Clock      quartz.Clock
	Formatting game.FormattingOptions
	// Parallel bounds the number of scripts RunFiles replays at once; zero
	// means no limit.
	Parallel int
}

func (o Options) managerOptions(logger *log.Logger, bus game.EventBus) []game.ManagerOption {
	opts := []game.ManagerOption{game.WithLogger(logger), game.WithEventBus(bus)}
	if o.Clock != nil {
		opts = append(opts, game.WithClock(o.Clock))
	}
	return opts
}

// Result is the state a script finished in
type Result struct {
	Name       string
	Players    []game.Player
	Status     game.Status
	Records    []game.Record
	Transcript []string
}

// Run replays s on a fresh manager. It stops at the first step that fails.
func Run(ctx context.Context, s *Script, opts Options) (*Result, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix(s.Name)

	bus := game.NewEventBus()
	transcript := game.NewTranscript(nil, opts.Formatting)
	bus.Subscribe(transcript)

	m, err := game.NewManager(cfg.ManagerConfig(), opts.managerOptions(logger, bus)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := apply(m, step); err != nil {
			return nil, fmt.Errorf("%s: step %d (%s): %w", s.Name, i+1, step.Kind, err)
		}
		logger.Debug("Step applied", "step", i+1, "kind", step.Kind)
	}

	return &Result{
		Name:       s.Name,
		Players:    m.Players(),
		Status:     m.Status(),
		Records:    m.Records(),
		Transcript: transcript.Entries(),
	}, nil
}

func apply(m *game.Manager, step Step) error {
	switch step.Kind {
	case StepRiichi:
		return m.ToggleRiichi(*step.Seat)
	case StepWin, StepDraw:
		outcome, err := step.outcome(m.Status().NumPlayers)
		if err != nil {
			return err
		}
		_, err = m.Commit(outcome)
		return err
	case StepUndo:
		m.Undo()
		return nil
	case StepExpect:
		return expect(m, step)
	default:
		return fmt.Errorf("unknown step kind")
	}
}

func expect(m *game.Manager, step Step) error {
	status := m.Status()
	var scores []int
	for _, p := range m.Players() {
		scores = append(scores, p.Score)
	}

	if step.Scores != nil && !slices.Equal(step.Scores, scores) {
		return fmt.Errorf("%w: scores are %v, want %v", ErrExpectation, scores, step.Scores)
	}
	checks := []struct {
		name string
		want *int
		got  int
	}{
		{"wind", step.Wind, status.Wind},
		{"round", step.Round, status.Round},
		{"honba", step.Honba, status.Honba},
		{"sticks", step.Sticks, status.RiichiSticks},
		{"dealer", step.Dealer, status.Dealer()},
		{"records", step.Records, len(m.Records())},
	}
	for _, c := range checks {
		if c.want != nil && *c.want != c.got {
			return fmt.Errorf("%w: %s is %d, want %d", ErrExpectation, c.name, c.got, *c.want)
		}
	}
	return nil
}

// RunFiles loads and replays every file concurrently, each on its own
// manager. Results are returned in the order of files. The first failure
// cancels the scripts still running.
func RunFiles(ctx context.Context, files []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i, file := range files {
		g.Go(func() error {
			s, err := Load(file)
			if err != nil {
				return err
			}
			result, err := Run(ctx, s, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
