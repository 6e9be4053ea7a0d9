// FILE: internal/entity/player_session_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionPhase string

const (
	// Registration flow
	PhaseNamePending SessionPhase = "name_pending"
	PhaseNameConfirm SessionPhase = "name_confirm"

	// One-time live-location setup after registration
	PhaseLocationSetup SessionPhase = "location_setup"

	// Advancing through steps
	PhasePlaying SessionPhase = "playing"

	// Last step reached, total time recorded
	PhaseFinished SessionPhase = "finished"
)

// PlayerSession is the durable record of one player's progress through the
// adventure, keyed by the stable chat/player id.
type PlayerSession struct {
	Id       uuid.UUID
	PlayerID int64
	Phase    SessionPhase

	// Name chosen during registration. PendingDisplayName holds the
	// candidate between the prompt and the yes/no confirmation.
	DisplayName        string
	PendingDisplayName string

	CurrentStepID int
	// Index into the active step's question ladder; nil when no question
	// is pending.
	CurrentQuestionID *int
	// True while the player is in the navigation phase of the current step.
	Navigating bool

	HelpsUsed int
	StartTime *time.Time
	TotalTime *time.Duration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Registered reports whether the player completed the name flow.
func (s *PlayerSession) Registered() bool {
	return s.Phase != PhaseNamePending && s.Phase != PhaseNameConfirm
}
