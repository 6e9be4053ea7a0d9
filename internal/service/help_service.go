// FILE: internal/service/help_service.go
package service

import (
	"context"
	"fmt"

	"geocache-bot/internal/constant"
	"geocache-bot/internal/entity"
	"geocache-bot/internal/pkg/logger"
)

type IHelpService interface {
	// Dispense sends a hint for the step's navigation target. Returns true
	// when a help was consumed (the caller persists the session).
	Dispense(ctx context.Context, session *entity.PlayerSession, step *entity.StepDefinition) (bool, error)
}

type helpService struct {
	messenger      Messenger
	penaltyMinutes int
	log            logger.ILogger
}

func NewHelpService(messenger Messenger, penaltyMinutes int, log logger.ILogger) IHelpService {
	return &helpService{
		messenger:      messenger,
		penaltyMinutes: penaltyMinutes,
		log:            log,
	}
}

func (s *helpService) Dispense(ctx context.Context, session *entity.PlayerSession, step *entity.StepDefinition) (bool, error) {
	if step.NextCoordinates == nil {
		// No target to reveal, the counter stays untouched
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgNoHelpAvailable, nil)
		return false, err
	}

	session.HelpsUsed++

	hint := fmt.Sprintf(constant.MsgHelpMapLink, step.NextCoordinates.Latitude, step.NextCoordinates.Longitude)
	if step.Help != "" {
		hint = step.Help + "\n" + hint
	}

	s.log.Info("help", "help dispensed", map[string]interface{}{
		"player_id": session.PlayerID, "step_id": step.Id, "helps_used": session.HelpsUsed,
	})

	_, err := s.messenger.SendMessage(ctx, session.PlayerID,
		fmt.Sprintf(constant.MsgHelpHint, s.penaltyMinutes, hint), nil)
	return true, err
}
