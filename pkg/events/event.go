package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PLAYER_REGISTERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by the game publisher.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Game lifecycle event codes consumed by external services (leaderboards,
// monitoring). Payloads carry the player id plus event-specific fields.
const (
	TypePlayerRegistered  = "PLAYER_REGISTERED"
	TypeStepAdvanced      = "STEP_ADVANCED"
	TypeAdventureFinished = "ADVENTURE_FINISHED"
)

func NewPlayerRegistered(playerID int64, displayName string) Event {
	return BaseEvent{
		Type: TypePlayerRegistered,
		Data: map[string]interface{}{
			"player_id":    playerID,
			"display_name": displayName,
		},
		OccurredAt: time.Now(),
	}
}

func NewStepAdvanced(playerID int64, stepID int) Event {
	return BaseEvent{
		Type: TypeStepAdvanced,
		Data: map[string]interface{}{
			"player_id": playerID,
			"step_id":   stepID,
		},
		OccurredAt: time.Now(),
	}
}

func NewAdventureFinished(playerID int64, displayName string, totalTimeSeconds int64) Event {
	return BaseEvent{
		Type: TypeAdventureFinished,
		Data: map[string]interface{}{
			"player_id":          playerID,
			"display_name":       displayName,
			"total_time_seconds": totalTimeSeconds,
		},
		OccurredAt: time.Now(),
	}
}
