package contract

import (
	"context"

	"geocache-bot/internal/entity"
	"geocache-bot/internal/repository/specification"
)

type PlayerSessionRepository interface {
	Create(ctx context.Context, session *entity.PlayerSession) error
	Update(ctx context.Context, session *entity.PlayerSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlayerSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlayerSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	ExistsByDisplayName(ctx context.Context, name string) (bool, error)
}
