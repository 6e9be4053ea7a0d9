// FILE: internal/service/game_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"geocache-bot/internal/constant"
	"geocache-bot/internal/content"
	"geocache-bot/internal/dto"
	"geocache-bot/internal/entity"
	"geocache-bot/internal/pkg/logger"
	"geocache-bot/internal/pkg/playerlock"
	"geocache-bot/internal/repository/contract"
	"geocache-bot/internal/repository/specification"
	"geocache-bot/internal/repository/unitofwork"
	"geocache-bot/pkg/events"
	"geocache-bot/pkg/geo"
	"geocache-bot/pkg/media"
	"geocache-bot/pkg/scoring"
	"geocache-bot/pkg/telegram"

	"github.com/google/uuid"
)

// Messenger is the outbound transport contract. *telegram.Client satisfies it;
// tests substitute a fake.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) (int, error)
	SendPhoto(ctx context.Context, chatID int64, name string, data []byte) error
	SendAudio(ctx context.Context, chatID int64, name string, data []byte) error
	ClearButtons(ctx context.Context, chatID int64, messageID int) error
	AnswerCallback(ctx context.Context, callbackQueryID string) error
}

// EventPublisher is the best-effort lifecycle event sink (NATS). May be nil.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IGameService interface {
	HandleStart(ctx context.Context, playerID int64) error
	HandleText(ctx context.Context, playerID int64, text string) error
	HandleButton(ctx context.Context, playerID int64, req dto.TransitionRequest) error
	HandleLocationUpdate(ctx context.Context, playerID int64, position geo.Point, isLive bool, editedAt time.Time) error
	HandleRadar(ctx context.Context, playerID int64) error
}

type GameSettings struct {
	ArrivalThresholdKm float64
	PositionMaxAge     time.Duration
}

type gameService struct {
	uowFactory unitofwork.RepositoryFactory
	contents   *content.Store
	positions  contract.PositionRepository
	messenger  Messenger
	media      *media.Resolver
	helps      IHelpService
	scorer     *scoring.Calculator
	publisher  EventPublisher
	locks      *playerlock.Arena
	settings   GameSettings
	log        logger.ILogger
}

func NewGameService(
	uowFactory unitofwork.RepositoryFactory,
	contents *content.Store,
	positions contract.PositionRepository,
	messenger Messenger,
	mediaResolver *media.Resolver,
	helps IHelpService,
	scorer *scoring.Calculator,
	publisher EventPublisher,
	settings GameSettings,
	log logger.ILogger,
) IGameService {
	return &gameService{
		uowFactory: uowFactory,
		contents:   contents,
		positions:  positions,
		messenger:  messenger,
		media:      mediaResolver,
		helps:      helps,
		scorer:     scorer,
		publisher:  publisher,
		locks:      playerlock.NewArena(),
		settings:   settings,
		log:        log,
	}
}

func (s *gameService) HandleStart(ctx context.Context, playerID int64) error {
	s.locks.Lock(playerID)
	defer s.locks.Unlock(playerID)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.PlayerSessionRepository().FindOne(ctx, specification.ByPlayerID{PlayerID: playerID})
	if err != nil {
		return err
	}

	if session == nil {
		session = &entity.PlayerSession{
			Id:       uuid.New(),
			PlayerID: playerID,
			Phase:    entity.PhaseNamePending,
		}
		if err := uow.PlayerSessionRepository().Create(ctx, session); err != nil {
			return err
		}
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgAskName, nil)
		return err
	}

	switch {
	case !session.Registered():
		// Lost chat before finishing registration, restart the name flow so a
		// half-confirmed name does not swallow the next message
		session.PendingDisplayName = ""
		session.Phase = entity.PhaseNamePending
		if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
			return err
		}
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgAskName, nil)
		return err
	case session.Phase == entity.PhaseLocationSetup:
		_, err := s.messenger.SendMessage(ctx, playerID,
			fmt.Sprintf(constant.MsgAskLiveLocation, session.DisplayName), nil)
		return err
	case session.CurrentStepID == 0 && session.Phase == entity.PhasePlaying:
		// Idempotent recovery: resend the intro without touching the record
		return s.presentStep(ctx, playerID, 0)
	default:
		return nil
	}
}

func (s *gameService) HandleText(ctx context.Context, playerID int64, text string) error {
	s.locks.Lock(playerID)
	defer s.locks.Unlock(playerID)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.PlayerSessionRepository().FindOne(ctx, specification.ByPlayerID{PlayerID: playerID})
	if err != nil {
		return err
	}
	if session == nil {
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgDefaultIntro, nil)
		return err
	}

	if !session.Registered() {
		return s.handleNameSubmission(ctx, uow, session, text)
	}
	return s.handleTextAnswer(ctx, uow, session, text)
}

func (s *gameService) handleNameSubmission(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.PlayerSession, text string) error {
	candidate := strings.TrimSpace(text)

	switch session.Phase {
	case entity.PhaseNamePending:
		if candidate == "" {
			_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgAskName, nil)
			return err
		}
		if err := s.reserveDisplayName(ctx, uow, session, candidate); err != nil {
			if errors.Is(err, ErrNameTaken) {
				s.log.Info("game", "display name collision", map[string]interface{}{"player_id": session.PlayerID, "name": candidate})
				_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgNameTaken, nil)
				return err
			}
			return err
		}
		_, err := s.messenger.SendMessage(ctx, session.PlayerID,
			fmt.Sprintf(constant.MsgConfirmName, candidate), nil)
		return err

	case entity.PhaseNameConfirm:
		switch strings.ToLower(candidate) {
		case "sí", "si", "yes":
			session.DisplayName = session.PendingDisplayName
			session.PendingDisplayName = ""
			session.Phase = entity.PhaseLocationSetup
			session.CurrentStepID = 0
			session.CurrentQuestionID = nil
			session.HelpsUsed = 0
			if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
				return err
			}
			s.publishEvent(ctx, events.NewPlayerRegistered(session.PlayerID, session.DisplayName))
			_, err := s.messenger.SendMessage(ctx, session.PlayerID,
				fmt.Sprintf(constant.MsgAskLiveLocation, session.DisplayName), nil)
			return err
		case "no":
			session.PendingDisplayName = ""
			session.Phase = entity.PhaseNamePending
			if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
				return err
			}
			_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgNameRejected, nil)
			return err
		default:
			_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgConfirmYesOrNo, nil)
			return err
		}
	}
	return nil
}

// reserveDisplayName parks a candidate name on the session pending
// confirmation. Returns ErrNameTaken when another player already holds it,
// confirmed or not.
func (s *gameService) reserveDisplayName(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.PlayerSession, candidate string) error {
	taken, err := uow.PlayerSessionRepository().ExistsByDisplayName(ctx, candidate)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %s", ErrNameTaken, candidate)
	}

	session.PendingDisplayName = candidate
	session.Phase = entity.PhaseNameConfirm
	return uow.PlayerSessionRepository().Update(ctx, session)
}

func (s *gameService) handleTextAnswer(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.PlayerSession, text string) error {
	if session.Phase == entity.PhaseFinished {
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgDefaultFinished, nil)
		return err
	}
	if session.Phase == entity.PhaseLocationSetup {
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgLiveLocationOnly, nil)
		return err
	}

	if session.CurrentQuestionID == nil {
		// No question pending, answer with per-step flavor text
		var reply string
		switch session.CurrentStepID {
		case 0:
			reply = constant.MsgDefaultIntro
		case 1:
			reply = constant.MsgDefaultFirst
		default:
			reply = constant.MsgDefaultFlavor
		}
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, reply, nil)
		return err
	}

	step, err := s.stepByID(session.CurrentStepID)
	if err != nil {
		return s.recoverContentError(session.PlayerID, session.CurrentStepID, err)
	}

	question := step.QuestionByID(*session.CurrentQuestionID)
	if question == nil {
		// Record points at a question the content no longer has, drop the pointer
		s.log.Warn("game", "pending question missing from ladder", map[string]interface{}{
			"player_id": session.PlayerID, "step_id": step.Id, "question_id": *session.CurrentQuestionID,
		})
		session.CurrentQuestionID = nil
		return uow.PlayerSessionRepository().Update(ctx, session)
	}

	if !strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(question.Answer)) {
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgWrongAnswer, nil)
		return err
	}

	if _, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgCorrectAnswer, nil); err != nil {
		return err
	}

	if next := step.QuestionByID(*session.CurrentQuestionID + 1); next != nil {
		nextID := next.Id
		session.CurrentQuestionID = &nextID
		if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
			return err
		}
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, next.QuestionText, nil)
		return err
	}

	// Ladder exhausted
	if step.HasNavigation() {
		session.CurrentQuestionID = nil
		session.Navigating = true
		if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
			return err
		}
		_, err := s.messenger.SendMessage(ctx, session.PlayerID, constant.MsgStartNavigation, nil)
		return err
	}
	return s.goToStep(ctx, uow, session, step.Id+1)
}

func (s *gameService) HandleButton(ctx context.Context, playerID int64, req dto.TransitionRequest) error {
	s.locks.Lock(playerID)
	defer s.locks.Unlock(playerID)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.PlayerSessionRepository().FindOne(ctx, specification.ByPlayerID{PlayerID: playerID})
	if err != nil {
		return err
	}
	if session == nil || !session.Registered() {
		s.log.Warn("game", "button tap without active session", map[string]interface{}{"player_id": playerID})
		return nil
	}

	switch req.Kind {
	case dto.TransitionHelp:
		step, err := s.stepByID(session.CurrentStepID)
		if err != nil {
			return s.recoverContentError(playerID, session.CurrentStepID, err)
		}
		dispensed, err := s.helps.Dispense(ctx, session, step)
		if err != nil {
			return err
		}
		if dispensed {
			return uow.PlayerSessionRepository().Update(ctx, session)
		}
		return nil

	case dto.TransitionReturnToQuestions:
		step, err := s.stepByID(session.CurrentStepID)
		if err != nil {
			return s.recoverContentError(playerID, session.CurrentStepID, err)
		}
		first := step.FirstQuestion()
		if first == nil {
			s.log.Warn("game", "return-to-questions on step without ladder", map[string]interface{}{
				"player_id": playerID, "step_id": step.Id,
			})
			return nil
		}
		firstID := first.Id
		session.CurrentQuestionID = &firstID
		session.Navigating = false
		if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
			return err
		}
		_, err = s.messenger.SendMessage(ctx, playerID, first.QuestionText, nil)
		return err

	case dto.TransitionGoToStep:
		return s.goToStep(ctx, uow, session, req.StepID)
	}
	return nil
}

func (s *gameService) HandleLocationUpdate(ctx context.Context, playerID int64, position geo.Point, isLive bool, editedAt time.Time) error {
	s.locks.Lock(playerID)
	defer s.locks.Unlock(playerID)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.PlayerSessionRepository().FindOne(ctx, specification.ByPlayerID{PlayerID: playerID})
	if err != nil {
		return err
	}
	if session == nil || !session.Registered() {
		return nil
	}

	if session.Phase == entity.PhaseLocationSetup {
		if !isLive {
			_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgLiveLocationOnly, nil)
			return err
		}
		if err := s.positions.Save(ctx, playerID, contract.PlayerPosition{Point: position, RecordedAt: editedAt}); err != nil {
			return err
		}
		session.Phase = entity.PhasePlaying
		if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
			return err
		}
		return s.goToStep(ctx, uow, session, 0)
	}

	// Outside setup only live pings feed the arena; one-shot pins are ignored.
	if !isLive {
		return nil
	}
	return s.positions.Save(ctx, playerID, contract.PlayerPosition{Point: position, RecordedAt: editedAt})
}

func (s *gameService) HandleRadar(ctx context.Context, playerID int64) error {
	s.locks.Lock(playerID)
	defer s.locks.Unlock(playerID)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.PlayerSessionRepository().FindOne(ctx, specification.ByPlayerID{PlayerID: playerID})
	if err != nil {
		return err
	}
	if session == nil || !session.Registered() {
		return nil
	}
	if !session.Navigating {
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgNoNavigation, nil)
		return err
	}

	step, err := s.stepByID(session.CurrentStepID)
	if err != nil {
		return s.recoverContentError(playerID, session.CurrentStepID, err)
	}

	pos, err := s.navigationFix(ctx, playerID, step)
	switch {
	case errors.Is(err, ErrNoGeofenceTarget):
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgNoNavigation, nil)
		return err
	case errors.Is(err, ErrStalePosition):
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgStalePosition, nil)
		return err
	case err != nil:
		return err
	case pos == nil:
		_, err := s.messenger.SendMessage(ctx, playerID, constant.MsgNoPosition, nil)
		return err
	}

	target := *step.NextCoordinates
	if geo.WithinRadius(pos.Point, target, s.settings.ArrivalThresholdKm) {
		if _, err := s.messenger.SendMessage(ctx, playerID, constant.MsgArrival, nil); err != nil {
			return err
		}
		return s.goToStep(ctx, uow, session, step.Id+1)
	}

	distanceM := geo.Distance(pos.Point, target) * 1000
	bearing := geo.Bearing(pos.Point, target)
	_, err = s.messenger.SendMessage(ctx, playerID,
		fmt.Sprintf(constant.MsgRadarHint, distanceM, geo.Cardinal(bearing), bearing), nil)
	return err
}

// navigationFix returns the freshest usable position for the geofence check.
// Returns ErrNoGeofenceTarget when the step has no target, ErrStalePosition
// when the last ping fell out of the freshness window, and (nil, nil) when no
// ping was ever stored.
func (s *gameService) navigationFix(ctx context.Context, playerID int64, step *entity.StepDefinition) (*contract.PlayerPosition, error) {
	if !step.HasNavigation() {
		return nil, fmt.Errorf("%w: step %d", ErrNoGeofenceTarget, step.Id)
	}

	pos, err := s.positions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, nil
	}
	if !geo.IsFresh(pos.RecordedAt, time.Now(), s.settings.PositionMaxAge) {
		return nil, fmt.Errorf("%w: recorded at %s", ErrStalePosition, pos.RecordedAt.Format(time.RFC3339))
	}
	return pos, nil
}

// goToStep applies the step transition rules and presents the new step. An
// unknown target step is logged and leaves the session untouched.
func (s *gameService) goToStep(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.PlayerSession, stepID int) error {
	step, err := s.stepByID(stepID)
	if err != nil {
		return s.recoverContentError(session.PlayerID, stepID, err)
	}

	session.CurrentStepID = stepID
	session.CurrentQuestionID = nil
	session.Navigating = false
	session.Phase = entity.PhasePlaying

	if stepID == 0 {
		// Explicit reset target
		session.HelpsUsed = 0
		session.StartTime = nil
		session.TotalTime = nil
	}
	if stepID == 1 {
		now := time.Now()
		session.StartTime = &now
	}

	if first := step.FirstQuestion(); first != nil {
		firstID := first.Id
		session.CurrentQuestionID = &firstID
	}

	lastStep, err := s.contents.LastStepID()
	if err != nil {
		return err
	}
	finished := stepID == lastStep && stepID != 0
	if finished && session.StartTime != nil {
		elapsed := s.scorer.Elapsed(*session.StartTime, time.Now())
		total := s.scorer.TotalTime(elapsed, session.HelpsUsed)
		session.TotalTime = &total
		session.Phase = entity.PhaseFinished
	}

	if err := uow.PlayerSessionRepository().Update(ctx, session); err != nil {
		return err
	}

	if finished && session.TotalTime != nil {
		s.publishEvent(ctx, events.NewAdventureFinished(session.PlayerID, session.DisplayName, int64(session.TotalTime.Seconds())))
	} else {
		s.publishEvent(ctx, events.NewStepAdvanced(session.PlayerID, stepID))
	}

	if err := s.presentStep(ctx, session.PlayerID, stepID); err != nil {
		return err
	}

	if finished && session.TotalTime != nil {
		_, err := s.messenger.SendMessage(ctx, session.PlayerID,
			fmt.Sprintf(constant.MsgFinishSummary, scoring.FormatDuration(*session.TotalTime), session.HelpsUsed, session.DisplayName), nil)
		return err
	}
	return nil
}

// presentStep sends the narrative message, the first ladder question, and any
// media attachments for the given step.
func (s *gameService) presentStep(ctx context.Context, playerID int64, stepID int) error {
	step, err := s.stepByID(stepID)
	if err != nil {
		return s.recoverContentError(playerID, stepID, err)
	}

	text := "<b>" + step.Title + "</b>\n\n" + step.Text
	if _, err := s.messenger.SendMessage(ctx, playerID, text, buildButtonsMarkup(step.Buttons)); err != nil {
		return err
	}

	if first := step.FirstQuestion(); first != nil {
		if _, err := s.messenger.SendMessage(ctx, playerID, first.QuestionText, nil); err != nil {
			return err
		}
	}

	if step.Audio != "" {
		s.sendMedia(ctx, playerID, media.KindAudio, step.Audio)
	}
	if step.Image != "" {
		s.sendMedia(ctx, playerID, media.KindImage, step.Image)
	}
	return nil
}

// sendMedia resolves and sends an attachment. A missing file is logged and
// skipped, the step flow continues.
func (s *gameService) sendMedia(ctx context.Context, playerID int64, kind media.Kind, name string) {
	data, err := s.media.Resolve(kind, name)
	if err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			s.log.Warn("game", "media file missing, skipping attachment", map[string]interface{}{
				"player_id": playerID, "kind": string(kind), "name": name,
			})
			return
		}
		s.log.Error("game", "media resolve failed", map[string]interface{}{
			"player_id": playerID, "kind": string(kind), "name": name, "error": err.Error(),
		})
		return
	}

	switch kind {
	case media.KindAudio:
		err = s.messenger.SendAudio(ctx, playerID, name, data)
	case media.KindImage:
		err = s.messenger.SendPhoto(ctx, playerID, name, data)
	}
	if err != nil {
		s.log.Error("game", "media send failed", map[string]interface{}{
			"player_id": playerID, "kind": string(kind), "name": name, "error": err.Error(),
		})
	}
}

// stepByID folds a missing step into the service error taxonomy, so callers
// can tell broken content apart from store failures.
func (s *gameService) stepByID(stepID int) (*entity.StepDefinition, error) {
	step, err := s.contents.Step(stepID)
	if err != nil {
		if errors.Is(err, content.ErrStepNotFound) {
			return nil, fmt.Errorf("%w: step %d", ErrContentNotFound, stepID)
		}
		return nil, err
	}
	return step, nil
}

func (s *gameService) recoverContentError(playerID int64, stepID int, err error) error {
	if errors.Is(err, ErrContentNotFound) {
		s.log.Error("game", "step missing from content graph", map[string]interface{}{
			"player_id": playerID, "step_id": stepID,
		})
		return nil
	}
	return err
}

func (s *gameService) publishEvent(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("game", "failed to publish lifecycle event", map[string]interface{}{
			"event": event.EventType(), "error": err.Error(),
		})
	}
}

func buildButtonsMarkup(buttons []entity.Button) *telegram.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}
	row := make([]telegram.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         b.Label,
			CallbackData: fmt.Sprintf("%d", b.TargetStep),
		})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
}
