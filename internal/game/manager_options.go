package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// ManagerOption configures a Manager during creation.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) ManagerOption {
	return func(o *managerOptions) { o.logger = logger }
}

// WithClock sets the clock used to stamp records and events.
//
// Example usage:
//
//	// Testing - frozen time
//	clock := quartz.NewMock(t)
//	m, _ := NewManager(cfg, WithClock(clock))
func WithClock(clock quartz.Clock) ManagerOption {
	return func(o *managerOptions) { o.clock = clock }
}

// WithEventBus publishes manager events on bus instead of a private one.
func WithEventBus(bus EventBus) ManagerOption {
	return func(o *managerOptions) { o.bus = bus }
}

func defaultManagerOptions() *managerOptions {
	return &managerOptions{
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
		bus:    NewEventBus(),
	}
}
