package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/repository"
)

const keyPrefix = "drivetest:"

type RedisI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Data          json.RawMessage `json:"data"`
}

// RedisStore keeps records in Redis with a TTL, wrapped in a versioned
// envelope. It serves the same Load/Save/Delete contract as the SQL store.
type RedisStore struct {
	rdb RedisI
	ttl time.Duration
}

func NewRedisStore(rdb RedisI, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, key)
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode %s envelope: %w", key, err)
	}
	if env.SchemaVersion != repository.SchemaVersion {
		return nil, fmt.Errorf("%w: %s has version %d, want %d",
			repository.ErrUnsupportedSchema, key, env.SchemaVersion, repository.SchemaVersion)
	}

	return env.Data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, payload []byte) error {
	data, err := json.Marshal(envelope{SchemaVersion: repository.SchemaVersion, Data: payload})
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", key, err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}
