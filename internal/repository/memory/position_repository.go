package memory

import (
	"context"
	"strconv"
	"time"

	"geocache-bot/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// PositionRepository keeps last-known live positions in process memory.
// Entries expire on their own well after the staleness window, so the
// arena never grows past the set of recently active players.
type PositionRepository struct {
	cache *cache.Cache
}

func NewPositionRepository() *PositionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &PositionRepository{
		cache: c,
	}
}

func (r *PositionRepository) Save(_ context.Context, playerID int64, position contract.PlayerPosition) error {
	r.cache.Set(key(playerID), position, cache.DefaultExpiration)
	return nil
}

func (r *PositionRepository) Get(_ context.Context, playerID int64) (*contract.PlayerPosition, error) {
	if x, found := r.cache.Get(key(playerID)); found {
		pos := x.(contract.PlayerPosition)
		return &pos, nil
	}
	return nil, nil
}

func key(playerID int64) string {
	return strconv.FormatInt(playerID, 10)
}
