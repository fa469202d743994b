package service

import (
	"MoodMastery/internal/analytics"
	"MoodMastery/internal/pkg/consts"
	"MoodMastery/internal/pkg/redis"
	"context"

	"github.com/goccy/go-json"
)

// StreakStore 多实例共享的连续天数状态，只在持有写锁时写入
type StreakStore interface {
	// Load 尚未写入时返回 nil
	Load(ctx context.Context) (*analytics.StreakState, error)
	Save(ctx context.Context, state analytics.StreakState) error
}

type redisStreakStore struct{}

func NewRedisStreakStore() StreakStore {
	return &redisStreakStore{}
}

func (s *redisStreakStore) Load(ctx context.Context) (*analytics.StreakState, error) {
	raw, err := redis.GetValue(ctx, consts.StreakStateKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var state analytics.StreakState
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *redisStreakStore) Save(ctx context.Context, state analytics.StreakState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.StreakStateKey, data, 0)
}
