package contract

import (
	"context"
	"time"

	"geocache-bot/pkg/geo"
)

// PlayerPosition is the last live position reported by a player, stamped
// with the time the transport produced it.
type PlayerPosition struct {
	Point      geo.Point `json:"point"`
	RecordedAt time.Time `json:"recorded_at"`
}

// PositionRepository is the shared arena of last-known live positions,
// written by the position-update path and read by the navigation path.
// Last write wins per player id.
type PositionRepository interface {
	Save(ctx context.Context, playerID int64, position PlayerPosition) error
	Get(ctx context.Context, playerID int64) (*PlayerPosition, error)
}
