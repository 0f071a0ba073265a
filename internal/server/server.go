// Package server assembles the resume store and HTTP router from config.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/resumeeditor/resume-editor/backend/go-services/handlers"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/config"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/database"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/repository"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/service"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/storage"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
)

const (
	mongoAttempts = 5
	mongoBackoff  = time.Second
)

// Deps holds everything opened for the configured backends. Close releases
// them.
type Deps struct {
	Service service.Service
	Redis   *redis.Client
	Checks  map[string]handlers.Check

	closers []func()
}

// Close releases connections opened by Open.
func (d *Deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// Open connects the durable tier and cache tier selected in cfg. Redis is
// also connected when only the rate limiter wants it; in that case a failed
// ping is logged and the client is left nil.
func Open(ctx context.Context, cfg *config.Config) (*Deps, error) {
	d := &Deps{Checks: map[string]handlers.Check{}}

	if cfg.Storage.Cache == config.CacheRedis || (cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis && cfg.Redis.Host != "") {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			if cfg.Storage.Cache == config.CacheRedis {
				return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr(), err)
			}
			logger.Warnf("failed to connect to Redis (%s): %v; rate limiter falls back to memory", cfg.Redis.Addr(), err)
		} else {
			logger.Infof("connected to Redis: %s", cfg.Redis.Addr())
			d.Redis = client
			d.closers = append(d.closers, func() { _ = client.Close() })
			d.Checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		}
	}

	durable, err := openDurable(ctx, cfg, d)
	if err != nil {
		d.Close()
		return nil, err
	}

	var cache repository.Cache
	switch cfg.Storage.Cache {
	case config.CacheRedis:
		cache = repository.NewRedisCache(d.Redis, "")
	default:
		cache = repository.NewMemoryCache()
	}

	d.Service = service.NewService(durable, cache)
	d.Checks["storage"] = d.Service.Ping
	logger.Infof("resume store: backend=%s cache=%s", cfg.Storage.Backend, cfg.Storage.Cache)
	return d, nil
}

func openDurable(ctx context.Context, cfg *config.Config, d *Deps) (repository.Repository, error) {
	switch cfg.Storage.Backend {
	case config.BackendMongo:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoAttempts, mongoBackoff)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, func() { _ = client.Disconnect(context.Background()) })
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		return repository.NewMongoRepo(ctx, col), nil
	case config.BackendMinIO:
		store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return repository.NewObjectRepo(store, cfg.MinIO.Prefix), nil
	default:
		return repository.NewFileRepo(cfg.Storage.DataDir)
	}
}
