package game

import "time"

// GameEvent represents anything the Manager announces after a state change
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandSettledEvent is published after a hand is committed. Players and Status
// describe the table after the hand.
type HandSettledEvent struct {
	Record    Record
	Players   []Player
	Status    Status
	timestamp time.Time
}

func (e HandSettledEvent) EventType() EventType { return EventTypeHandSettled }
func (e HandSettledEvent) Timestamp() time.Time { return e.timestamp }

// NewHandSettledEvent creates a new hand settled event
func NewHandSettledEvent(record Record, players []Player, status Status, at time.Time) HandSettledEvent {
	return HandSettledEvent{
		Record:    record,
		Players:   clonePlayers(players),
		Status:    status.Clone(),
		timestamp: at,
	}
}

// HandRewoundEvent is published after the latest hand is undone. Players and
// Status describe the restored table.
type HandRewoundEvent struct {
	Record    Record
	Players   []Player
	Status    Status
	timestamp time.Time
}

func (e HandRewoundEvent) EventType() EventType { return EventTypeHandRewound }
func (e HandRewoundEvent) Timestamp() time.Time { return e.timestamp }

// NewHandRewoundEvent creates a new hand rewound event
func NewHandRewoundEvent(record Record, players []Player, status Status, at time.Time) HandRewoundEvent {
	return HandRewoundEvent{
		Record:    record,
		Players:   clonePlayers(players),
		Status:    status.Clone(),
		timestamp: at,
	}
}

// RiichiEvent is published when a riichi declaration is placed or withdrawn
type RiichiEvent struct {
	Player    Player
	Declared  bool
	Sticks    int // sticks on the table afterwards
	timestamp time.Time
}

func (e RiichiEvent) EventType() EventType { return EventTypeRiichi }
func (e RiichiEvent) Timestamp() time.Time { return e.timestamp }

// NewRiichiEvent creates a new riichi event
func NewRiichiEvent(player Player, declared bool, sticks int, at time.Time) RiichiEvent {
	return RiichiEvent{
		Player:    player,
		Declared:  declared,
		Sticks:    sticks,
		timestamp: at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Func subscribers
// are not comparable and cannot be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, isFunc := subscriber.(EventSubscriberFunc); isFunc {
		return
	}
	for i, sub := range bus.subscribers {
		if _, isFunc := sub.(EventSubscriberFunc); isFunc {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers, synchronously and in order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
