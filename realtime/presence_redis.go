package realtime

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-redis/redis/v8"

	"taskhub/config"
)

const presenceKey = "taskhub:online_users"

// RedisRegistry keeps the presence table in a Redis hash so multiple
// processes can share one view of who is online.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(cfg config.RedisConfig) *RedisRegistry {
	return &RedisRegistry{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (r *RedisRegistry) Add(ctx context.Context, user OnlineUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.HSet(ctx, presenceKey, strconv.FormatUint(uint64(user.ID), 10), data).Err()
}

func (r *RedisRegistry) Remove(ctx context.Context, userID uint) error {
	return r.client.HDel(ctx, presenceKey, strconv.FormatUint(uint64(userID), 10)).Err()
}

func (r *RedisRegistry) List(ctx context.Context) ([]OnlineUser, error) {
	entries, err := r.client.HGetAll(ctx, presenceKey).Result()
	if err != nil {
		return nil, err
	}

	users := make([]OnlineUser, 0, len(entries))
	for _, raw := range entries {
		var u OnlineUser
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
