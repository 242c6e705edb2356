// Package kv opens the key-value storage selected by the configuration.
package kv

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
	boltkv "github.com/trezcool/unirepo/storage/kv/bolt"
	memkv "github.com/trezcool/unirepo/storage/kv/memory"
	mongokv "github.com/trezcool/unirepo/storage/kv/mongo"
	pgkv "github.com/trezcool/unirepo/storage/kv/postgres"
	rediskv "github.com/trezcool/unirepo/storage/kv/redis"
)

// Open returns the storage for conf.Engine. The postgres schema is migrated on open.
func Open(ctx context.Context, conf core.StorageConfig) (core.Storage, error) {
	switch conf.Engine {
	case "", core.EngineMemory:
		return memkv.New(conf.Origin), nil
	case core.EngineBolt:
		return boltkv.Open(conf.BoltPath, conf.Origin)
	case core.EngineRedis:
		return rediskv.Open(ctx, rediskv.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
			Origin:   conf.Origin,
		})
	case core.EnginePostgres:
		s, err := pgkv.Open(ctx, conf.PostgresDSN, conf.Origin)
		if err != nil {
			return nil, err
		}
		if err = pgkv.Migrate(s.DB()); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	case core.EngineMongo:
		return mongokv.Open(ctx, conf.MongoURI, conf.MongoDatabase, conf.Origin)
	default:
		return nil, errors.New(fmt.Sprintf("unknown storage engine %q", conf.Engine))
	}
}
