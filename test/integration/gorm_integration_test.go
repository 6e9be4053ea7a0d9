package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"geocache-bot/internal/entity"
	"geocache-bot/internal/repository/specification"
	"geocache-bot/internal/repository/unitofwork"
	"geocache-bot/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.PlayerSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check PlayerSession Repository", func(t *testing.T) {
		count, err := uow.PlayerSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("PlayerSession count: %d", count)
	})

	t.Run("Create and Find Session in Transaction", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		playerID := int64(uuid.New().ID()) // unique enough for a rolled-back row
		pendingName := "pending-" + uuid.NewString()
		session := &entity.PlayerSession{
			Id:                 uuid.New(),
			PlayerID:           playerID,
			Phase:              entity.PhaseNameConfirm,
			PendingDisplayName: pendingName,
		}

		err = uow.PlayerSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		found, err := uow.PlayerSessionRepository().FindOne(ctx,
			specification.ByPlayerID{PlayerID: playerID})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, entity.PhaseNameConfirm, found.Phase)
		}

		// A name pending confirmation already counts as taken
		count, err := uow.PlayerSessionRepository().Count(ctx,
			specification.NameInUse{Name: pendingName})
		assert.NoError(t, err)
		assert.EqualValues(t, 1, count)

		taken, err := uow.PlayerSessionRepository().ExistsByDisplayName(ctx, pendingName)
		assert.NoError(t, err)
		assert.True(t, taken)

		// Rolled back by the deferred Rollback, the row never persists
	})
}
