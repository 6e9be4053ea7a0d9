// FILE: internal/dto/transition_dto.go
package dto

import (
	"fmt"
	"strconv"

	"geocache-bot/internal/entity"
)

type TransitionKind int

const (
	TransitionHelp TransitionKind = iota
	TransitionReturnToQuestions
	TransitionGoToStep
)

// TransitionRequest is the decoded form of a button tap. The raw callback
// integer is resolved into a variant at the controller boundary so the state
// machine never sees sentinel codes.
type TransitionRequest struct {
	Kind   TransitionKind
	StepID int // valid only when Kind == TransitionGoToStep
}

// ParseCallbackData decodes the callback_data integer carried by a tapped
// button into a TransitionRequest.
func ParseCallbackData(data string) (TransitionRequest, error) {
	code, err := strconv.Atoi(data)
	if err != nil {
		return TransitionRequest{}, fmt.Errorf("malformed callback data %q: %w", data, err)
	}

	switch {
	case code == entity.ButtonTargetHelp:
		return TransitionRequest{Kind: TransitionHelp}, nil
	case code == entity.ButtonTargetReturnToQuestions:
		return TransitionRequest{Kind: TransitionReturnToQuestions}, nil
	case code >= 0:
		return TransitionRequest{Kind: TransitionGoToStep, StepID: code}, nil
	default:
		return TransitionRequest{}, fmt.Errorf("unknown callback code %d", code)
	}
}
