package unitofwork

import (
	"context"

	"geocache-bot/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlayerSessionRepository() contract.PlayerSessionRepository
}
