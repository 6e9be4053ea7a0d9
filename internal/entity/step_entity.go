// FILE: internal/entity/step_entity.go
package entity

import "geocache-bot/pkg/geo"

// Reserved button target codes. Non-negative targets are step ids.
const (
	ButtonTargetHelp              = -1
	ButtonTargetReturnToQuestions = -2
)

// Question is one rung of a step's question ladder. Ids start at 0 and
// ascend contiguously within the step.
type Question struct {
	Id           int    `json:"id"`
	QuestionText string `json:"question_text" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
}

// Button is one inline control under a step's narrative message.
type Button struct {
	Label      string `json:"label" validate:"required"`
	TargetStep int    `json:"target_step" validate:"gte=-2"`
}

// StepDefinition is a node of the content graph, read-only at runtime.
type StepDefinition struct {
	Id    int    `json:"id" validate:"gte=0"`
	Title string `json:"title" validate:"required"`
	Text  string `json:"text" validate:"required"`

	Audio string `json:"audio,omitempty"`
	Image string `json:"image,omitempty"`

	Questions []Question `json:"questions,omitempty" validate:"dive"`
	Buttons   []Button   `json:"buttons,omitempty" validate:"dive"`

	// Geofence target for the navigation phase that follows this step's
	// narration and questions. SkipNavigation suppresses the phase even
	// when coordinates are present.
	NextCoordinates *geo.Point `json:"next_coordinates,omitempty"`
	SkipNavigation  bool       `json:"skip_navigation,omitempty"`

	// Optional custom hint text prepended to the derived map link.
	Help string `json:"help,omitempty"`
}

// HasNavigation reports whether the step ends in a navigation phase.
func (s *StepDefinition) HasNavigation() bool {
	return s.NextCoordinates != nil && !s.SkipNavigation
}

// QuestionByID returns the ladder entry with the given id, or nil.
func (s *StepDefinition) QuestionByID(id int) *Question {
	for i := range s.Questions {
		if s.Questions[i].Id == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// FirstQuestion returns the ladder entry with id 0, or nil when the step
// has no questions.
func (s *StepDefinition) FirstQuestion() *Question {
	return s.QuestionByID(0)
}
