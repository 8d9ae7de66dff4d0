package game

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeHandSettled EventType = "hand_settled"
	EventTypeHandRewound EventType = "hand_rewound"
	EventTypeRiichi      EventType = "riichi"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}
