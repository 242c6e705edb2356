package rediskv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/unirepo/core"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	Origin   string
}

// Storage keeps every item under the Redis key "<origin>:<key>".
type Storage struct {
	rdb    *redis.Client
	prefix string
}

var _ core.Storage = (*Storage)(nil) // interface compliance check

// Open connects to Redis and pings it.
func Open(ctx context.Context, opts Options) (*Storage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &Storage{rdb: rdb, prefix: opts.Origin + ":"}, nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}

func (s *Storage) Close() error {
	return s.rdb.Close()
}
