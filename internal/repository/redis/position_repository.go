package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"geocache-bot/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// PositionRepository keeps last-known live positions in Redis so multiple
// bot instances can share one arena. Last write wins per player id.
type PositionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPositionRepository(rdb *redis.Client) *PositionRepository {
	return &PositionRepository{
		rdb: rdb,
		ttl: 1 * time.Hour,
	}
}

func key(playerID int64) string {
	return fmt.Sprintf("position:%d", playerID)
}

func (r *PositionRepository) Save(ctx context.Context, playerID int64, position contract.PlayerPosition) error {
	data, err := json.Marshal(position)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key(playerID), data, r.ttl).Err()
}

func (r *PositionRepository) Get(ctx context.Context, playerID int64) (*contract.PlayerPosition, error) {
	data, err := r.rdb.Get(ctx, key(playerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var position contract.PlayerPosition
	if err := json.Unmarshal(data, &position); err != nil {
		return nil, err
	}
	return &position, nil
}
