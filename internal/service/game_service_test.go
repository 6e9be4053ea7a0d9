package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"geocache-bot/internal/constant"
	"geocache-bot/internal/content"
	"geocache-bot/internal/dto"
	"geocache-bot/internal/entity"
	"geocache-bot/internal/repository/contract"
	"geocache-bot/internal/repository/specification"
	"geocache-bot/internal/repository/unitofwork"
	"geocache-bot/pkg/geo"
	"geocache-bot/pkg/media"
	"geocache-bot/pkg/scoring"
	"geocache-bot/pkg/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[int64]*entity.PlayerSession
	creates  int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int64]*entity.PlayerSession)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.PlayerSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.PlayerID] = &copied
	r.creates++
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.PlayerSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.PlayerID] = &copied
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlayerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByPlayerID); ok {
			if session, found := r.sessions[byID.PlayerID]; found {
				copied := *session
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlayerSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.PlayerSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sessions)), nil
}

func (r *fakeSessionRepo) ExistsByDisplayName(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.DisplayName == name || s.PendingDisplayName == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeUow struct {
	repo *fakeSessionRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }
func (u *fakeUow) PlayerSessionRepository() contract.PlayerSessionRepository {
	return u.repo
}

type fakeFactory struct {
	repo *fakeSessionRepo
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{repo: f.repo}
}

type sentMessage struct {
	ChatID int64
	Text   string
	Markup *telegram.InlineKeyboardMarkup
}

type fakeMessenger struct {
	mu       sync.Mutex
	messages []sentMessage
}

func (m *fakeMessenger) SendMessage(ctx context.Context, chatID int64, text string, markup *telegram.InlineKeyboardMarkup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, sentMessage{ChatID: chatID, Text: text, Markup: markup})
	return len(m.messages), nil
}

func (m *fakeMessenger) SendPhoto(ctx context.Context, chatID int64, name string, data []byte) error {
	return nil
}

func (m *fakeMessenger) SendAudio(ctx context.Context, chatID int64, name string, data []byte) error {
	return nil
}

func (m *fakeMessenger) ClearButtons(ctx context.Context, chatID int64, messageID int) error {
	return nil
}

func (m *fakeMessenger) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	return nil
}

func (m *fakeMessenger) texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.messages))
	for i, msg := range m.messages {
		out[i] = msg.Text
	}
	return out
}

func (m *fakeMessenger) lastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1].Text
}

type fakePositions struct {
	mu        sync.Mutex
	positions map[int64]contract.PlayerPosition
}

func newFakePositions() *fakePositions {
	return &fakePositions{positions: make(map[int64]contract.PlayerPosition)}
}

func (p *fakePositions) Save(ctx context.Context, playerID int64, position contract.PlayerPosition) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.positions[playerID] = position
	return nil
}

func (p *fakePositions) Get(ctx context.Context, playerID int64) (*contract.PlayerPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pos, ok := p.positions[playerID]; ok {
		return &pos, nil
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// --- Fixture ---

const testContent = `[
	{
		"id": 0,
		"title": "Bienvenida",
		"text": "El Anthony ha desaparecido.",
		"buttons": [{"label": "Empezar", "target_step": 1}]
	},
	{
		"id": 1,
		"title": "Primera pista",
		"text": "Busca la estatua.",
		"questions": [
			{"id": 0, "question_text": "¿En qué año?", "answer": "1293"},
			{"id": 1, "question_text": "¿Quién la fundó?", "answer": "Cisneros"}
		],
		"next_coordinates": {"latitude": 40.0, "longitude": -3.0}
	},
	{
		"id": 2,
		"title": "Segunda pista",
		"text": "Sigue adelante."
	},
	{
		"id": 3,
		"title": "Final",
		"text": "Lo conseguiste."
	}
]`

type fixture struct {
	game      IGameService
	repo      *fakeSessionRepo
	messenger *fakeMessenger
	positions *fakePositions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	contentPath := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(contentPath, []byte(testContent), 0644))

	repo := newFakeSessionRepo()
	messenger := &fakeMessenger{}
	positions := newFakePositions()
	contents := content.NewStore(contentPath, 0)
	helps := NewHelpService(messenger, 5, noopLogger{})

	game := NewGameService(
		&fakeFactory{repo: repo},
		contents,
		positions,
		messenger,
		media.NewResolver(t.TempDir()),
		helps,
		scoring.NewCalculator(5),
		nil,
		GameSettings{
			ArrivalThresholdKm: 0.01,
			PositionMaxAge:     40 * time.Second,
		},
		noopLogger{},
	)

	return &fixture{game: game, repo: repo, messenger: messenger, positions: positions}
}

func (f *fixture) session(playerID int64) *entity.PlayerSession {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	return f.repo.sessions[playerID]
}

func (f *fixture) seedSession(s entity.PlayerSession) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	copied := s
	f.repo.sessions[s.PlayerID] = &copied
}

func intPtr(v int) *int { return &v }

// --- Tests ---

func TestStartCreatesSessionAndAsksName(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.game.HandleStart(context.Background(), 100))

	session := f.session(100)
	require.NotNil(t, session)
	assert.Equal(t, entity.PhaseNamePending, session.Phase)
	assert.Equal(t, constant.MsgAskName, f.messenger.lastText())
}

func TestStartIsIdempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.game.HandleStart(context.Background(), 100))
	require.NoError(t, f.game.HandleStart(context.Background(), 100))

	assert.Equal(t, 1, f.repo.creates)
	texts := f.messenger.texts()
	assert.Equal(t, []string{constant.MsgAskName, constant.MsgAskName}, texts)
}

func TestStartAtStepZeroResendsIntro(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana", CurrentStepID: 0,
	})

	require.NoError(t, f.game.HandleStart(context.Background(), 100))
	require.NoError(t, f.game.HandleStart(context.Background(), 100))

	texts := f.messenger.texts()
	require.Len(t, texts, 2)
	assert.Equal(t, texts[0], texts[1])
	assert.Contains(t, texts[0], "Bienvenida")
}

func TestNameFlowConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.game.HandleStart(ctx, 100))
	require.NoError(t, f.game.HandleText(ctx, 100, "  Ana  "))

	session := f.session(100)
	assert.Equal(t, entity.PhaseNameConfirm, session.Phase)
	assert.Equal(t, "Ana", session.PendingDisplayName)

	require.NoError(t, f.game.HandleText(ctx, 100, "sí"))

	session = f.session(100)
	assert.Equal(t, entity.PhaseLocationSetup, session.Phase)
	assert.Equal(t, "Ana", session.DisplayName)
	assert.Empty(t, session.PendingDisplayName)
	assert.Zero(t, session.HelpsUsed)
}

func TestStartDuringNameConfirmRestartsNameFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.game.HandleStart(ctx, 100))
	require.NoError(t, f.game.HandleText(ctx, 100, "Ana"))
	require.NoError(t, f.game.HandleStart(ctx, 100))

	session := f.session(100)
	assert.Equal(t, entity.PhaseNamePending, session.Phase)
	assert.Empty(t, session.PendingDisplayName)
	assert.Equal(t, constant.MsgAskName, f.messenger.lastText())

	// The next message is taken as a fresh name, not as a yes/no answer
	require.NoError(t, f.game.HandleText(ctx, 100, "Berta"))
	session = f.session(100)
	assert.Equal(t, entity.PhaseNameConfirm, session.Phase)
	assert.Equal(t, "Berta", session.PendingDisplayName)
}

func TestNameFlowRejectionReprompts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.game.HandleStart(ctx, 100))
	require.NoError(t, f.game.HandleText(ctx, 100, "Ana"))
	require.NoError(t, f.game.HandleText(ctx, 100, "no"))

	session := f.session(100)
	assert.Equal(t, entity.PhaseNamePending, session.Phase)
	assert.Empty(t, session.PendingDisplayName)
	assert.Equal(t, constant.MsgNameRejected, f.messenger.lastText())
}

func TestNameTakenReprompts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 200, Phase: entity.PhasePlaying, DisplayName: "Ana",
	})

	require.NoError(t, f.game.HandleStart(ctx, 100))
	require.NoError(t, f.game.HandleText(ctx, 100, "Ana"))

	session := f.session(100)
	assert.Equal(t, entity.PhaseNamePending, session.Phase)
	assert.Equal(t, constant.MsgNameTaken, f.messenger.lastText())
}

func TestLocationSetupRequiresLivePosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhaseLocationSetup, DisplayName: "Ana",
	})

	require.NoError(t, f.game.HandleLocationUpdate(ctx, 100, geo.Point{Latitude: 40, Longitude: -3}, false, time.Now()))
	assert.Equal(t, constant.MsgLiveLocationOnly, f.messenger.lastText())
	assert.Equal(t, entity.PhaseLocationSetup, f.session(100).Phase)

	require.NoError(t, f.game.HandleLocationUpdate(ctx, 100, geo.Point{Latitude: 40, Longitude: -3}, true, time.Now()))
	session := f.session(100)
	assert.Equal(t, entity.PhasePlaying, session.Phase)
	assert.Equal(t, 0, session.CurrentStepID)
}

func TestWrongAnswerLeavesQuestionUnchanged(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, CurrentQuestionID: intPtr(0),
	})

	require.NoError(t, f.game.HandleText(context.Background(), 100, "1500"))

	session := f.session(100)
	require.NotNil(t, session.CurrentQuestionID)
	assert.Equal(t, 0, *session.CurrentQuestionID)
	assert.Equal(t, constant.MsgWrongAnswer, f.messenger.lastText())
}

func TestCorrectAnswerAdvancesLadder(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, CurrentQuestionID: intPtr(0),
	})

	// Case-insensitive with surrounding whitespace trimmed
	require.NoError(t, f.game.HandleText(context.Background(), 100, " 1293 "))

	session := f.session(100)
	require.NotNil(t, session.CurrentQuestionID)
	assert.Equal(t, 1, *session.CurrentQuestionID)
	assert.Equal(t, "¿Quién la fundó?", f.messenger.lastText())
}

func TestLadderExhaustionEntersNavigation(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, CurrentQuestionID: intPtr(1),
	})

	require.NoError(t, f.game.HandleText(context.Background(), 100, "CISNEROS"))

	session := f.session(100)
	assert.Nil(t, session.CurrentQuestionID)
	assert.True(t, session.Navigating)
	assert.Equal(t, constant.MsgStartNavigation, f.messenger.lastText())
}

func TestRadarArrivalAdvancesStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, Navigating: true,
	})
	// ~9 m north of the target, threshold is 10 m
	f.positions.Save(ctx, 100, contract.PlayerPosition{
		Point:      geo.Point{Latitude: 40.000081, Longitude: -3.0},
		RecordedAt: time.Now(),
	})

	require.NoError(t, f.game.HandleRadar(ctx, 100))

	session := f.session(100)
	assert.Equal(t, 2, session.CurrentStepID)
	assert.False(t, session.Navigating)
	assert.Contains(t, f.messenger.texts(), constant.MsgArrival)
}

func TestRadarOutsideThresholdGivesHint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, Navigating: true,
	})
	// ~11 m north of the target
	f.positions.Save(ctx, 100, contract.PlayerPosition{
		Point:      geo.Point{Latitude: 40.000099, Longitude: -3.0},
		RecordedAt: time.Now(),
	})

	require.NoError(t, f.game.HandleRadar(ctx, 100))

	session := f.session(100)
	assert.Equal(t, 1, session.CurrentStepID)
	assert.True(t, session.Navigating)
	// The target is due south of the player
	assert.Contains(t, f.messenger.lastText(), "Sur")
}

func TestRadarRejectsStalePosition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, Navigating: true,
	})
	// Last ping 50 s ago, window is 40 s
	f.positions.Save(ctx, 100, contract.PlayerPosition{
		Point:      geo.Point{Latitude: 40.000081, Longitude: -3.0},
		RecordedAt: time.Now().Add(-50 * time.Second),
	})

	require.NoError(t, f.game.HandleRadar(ctx, 100))

	assert.Equal(t, constant.MsgStalePosition, f.messenger.lastText())
	assert.Equal(t, 1, f.session(100).CurrentStepID)
}

func TestRadarWithoutPositionAsksForShare(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, Navigating: true,
	})

	require.NoError(t, f.game.HandleRadar(context.Background(), 100))

	assert.Equal(t, constant.MsgNoPosition, f.messenger.lastText())
}

func TestHelpIncrementsCounter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, Navigating: true,
	})

	require.NoError(t, f.game.HandleButton(ctx, 100, dto.TransitionRequest{Kind: dto.TransitionHelp}))
	require.NoError(t, f.game.HandleButton(ctx, 100, dto.TransitionRequest{Kind: dto.TransitionHelp}))

	assert.Equal(t, 2, f.session(100).HelpsUsed)
	assert.Contains(t, f.messenger.lastText(), "maps")
}

func TestHelpWithoutTargetDoesNotIncrement(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 2,
	})

	require.NoError(t, f.game.HandleButton(context.Background(), 100, dto.TransitionRequest{Kind: dto.TransitionHelp}))

	assert.Zero(t, f.session(100).HelpsUsed)
	assert.Equal(t, constant.MsgNoHelpAvailable, f.messenger.lastText())
}

func TestButtonToUnknownStepIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1,
	})

	require.NoError(t, f.game.HandleButton(context.Background(), 100,
		dto.TransitionRequest{Kind: dto.TransitionGoToStep, StepID: 99}))

	assert.Equal(t, 1, f.session(100).CurrentStepID)
	assert.Empty(t, f.messenger.texts())
}

func TestReachingStepOneStartsClock(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 0,
	})

	require.NoError(t, f.game.HandleButton(context.Background(), 100,
		dto.TransitionRequest{Kind: dto.TransitionGoToStep, StepID: 1}))

	session := f.session(100)
	assert.Equal(t, 1, session.CurrentStepID)
	require.NotNil(t, session.StartTime)
	require.NotNil(t, session.CurrentQuestionID)
	assert.Equal(t, 0, *session.CurrentQuestionID)
}

func TestResetToStepZeroClearsRun(t *testing.T) {
	f := newFixture(t)
	start := time.Now().Add(-time.Hour)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 2, HelpsUsed: 3, StartTime: &start,
	})

	require.NoError(t, f.game.HandleButton(context.Background(), 100,
		dto.TransitionRequest{Kind: dto.TransitionGoToStep, StepID: 0}))

	session := f.session(100)
	assert.Equal(t, 0, session.CurrentStepID)
	assert.Zero(t, session.HelpsUsed)
	assert.Nil(t, session.StartTime)
	assert.Nil(t, session.TotalTime)
}

func TestFinishComputesPenalizedTotal(t *testing.T) {
	f := newFixture(t)
	start := time.Now().Add(-90 * time.Minute)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 2, HelpsUsed: 2, StartTime: &start,
	})

	require.NoError(t, f.game.HandleButton(context.Background(), 100,
		dto.TransitionRequest{Kind: dto.TransitionGoToStep, StepID: 3}))

	session := f.session(100)
	assert.Equal(t, entity.PhaseFinished, session.Phase)
	require.NotNil(t, session.TotalTime)
	// 1h30m elapsed + 2 helps x 5 min
	assert.Equal(t, "1h 40m", scoring.FormatDuration(*session.TotalTime))
}

func TestFlavorMessagesWithoutPendingQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 2,
	})

	require.NoError(t, f.game.HandleText(ctx, 100, "hola"))
	assert.Equal(t, constant.MsgDefaultFlavor, f.messenger.lastText())

	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhaseFinished, DisplayName: "Ana",
		CurrentStepID: 3,
	})
	require.NoError(t, f.game.HandleText(ctx, 100, "hola"))
	assert.Equal(t, constant.MsgDefaultFinished, f.messenger.lastText())
}

func TestReserveDisplayNameReportsCollision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSession(entity.PlayerSession{
		PlayerID: 200, Phase: entity.PhasePlaying, DisplayName: "Ana",
	})
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhaseNamePending,
	})

	svc := f.game.(*gameService)
	err := svc.reserveDisplayName(ctx, &fakeUow{repo: f.repo}, f.session(100), "Ana")
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestStepLookupWrapsMissingStep(t *testing.T) {
	f := newFixture(t)
	svc := f.game.(*gameService)

	_, err := svc.stepByID(99)
	assert.ErrorIs(t, err, ErrContentNotFound)

	step, err := svc.stepByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, step.Id)
}

func TestNavigationFixDistinguishesFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.game.(*gameService)

	withTarget, err := svc.stepByID(1)
	require.NoError(t, err)
	noTarget, err := svc.stepByID(2)
	require.NoError(t, err)

	_, err = svc.navigationFix(ctx, 100, noTarget)
	assert.ErrorIs(t, err, ErrNoGeofenceTarget)

	// No stored ping yet
	pos, err := svc.navigationFix(ctx, 100, withTarget)
	require.NoError(t, err)
	assert.Nil(t, pos)

	f.positions.Save(ctx, 100, contract.PlayerPosition{
		Point:      geo.Point{Latitude: 40.0, Longitude: -3.0},
		RecordedAt: time.Now().Add(-50 * time.Second),
	})
	_, err = svc.navigationFix(ctx, 100, withTarget)
	assert.ErrorIs(t, err, ErrStalePosition)
}

func TestReturnToQuestionsRestartsLadder(t *testing.T) {
	f := newFixture(t)
	f.seedSession(entity.PlayerSession{
		PlayerID: 100, Phase: entity.PhasePlaying, DisplayName: "Ana",
		CurrentStepID: 1, Navigating: true,
	})

	require.NoError(t, f.game.HandleButton(context.Background(), 100,
		dto.TransitionRequest{Kind: dto.TransitionReturnToQuestions}))

	session := f.session(100)
	require.NotNil(t, session.CurrentQuestionID)
	assert.Equal(t, 0, *session.CurrentQuestionID)
	assert.False(t, session.Navigating)
	assert.Equal(t, "¿En qué año?", f.messenger.lastText())
}
