package mapper

import (
	"time"

	"geocache-bot/internal/entity"
	"geocache-bot/internal/model"
)

type PlayerSessionMapper struct{}

func NewPlayerSessionMapper() *PlayerSessionMapper {
	return &PlayerSessionMapper{}
}

func (m *PlayerSessionMapper) ToEntity(s *model.PlayerSession) *entity.PlayerSession {
	if s == nil {
		return nil
	}

	e := &entity.PlayerSession{
		Id:                s.Id,
		PlayerID:          s.PlayerID,
		Phase:             entity.SessionPhase(s.Phase),
		CurrentStepID:     s.CurrentStepID,
		CurrentQuestionID: s.CurrentQuestionID,
		Navigating:        s.Navigating,
		HelpsUsed:         s.HelpsUsed,
		StartTime:         s.StartTime,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.DisplayName != nil {
		e.DisplayName = *s.DisplayName
	}
	if s.PendingDisplayName != nil {
		e.PendingDisplayName = *s.PendingDisplayName
	}
	if s.TotalTimeSeconds != nil {
		total := time.Duration(*s.TotalTimeSeconds) * time.Second
		e.TotalTime = &total
	}
	return e
}

func (m *PlayerSessionMapper) ToModel(e *entity.PlayerSession) *model.PlayerSession {
	if e == nil {
		return nil
	}

	s := &model.PlayerSession{
		Id:                e.Id,
		PlayerID:          e.PlayerID,
		Phase:             string(e.Phase),
		CurrentStepID:     e.CurrentStepID,
		CurrentQuestionID: e.CurrentQuestionID,
		Navigating:        e.Navigating,
		HelpsUsed:         e.HelpsUsed,
		StartTime:         e.StartTime,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	// Empty names map to NULL so the unique index ignores unregistered rows.
	if e.DisplayName != "" {
		name := e.DisplayName
		s.DisplayName = &name
	}
	if e.PendingDisplayName != "" {
		pending := e.PendingDisplayName
		s.PendingDisplayName = &pending
	}
	if e.TotalTime != nil {
		seconds := int64(e.TotalTime.Seconds())
		s.TotalTimeSeconds = &seconds
	}
	return s
}

func (m *PlayerSessionMapper) ToEntities(sessions []*model.PlayerSession) []*entity.PlayerSession {
	entities := make([]*entity.PlayerSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
