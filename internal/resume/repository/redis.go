package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
)

// RedisCache implements Cache with Redis. Resumes are stored as JSON under
// "<prefix><id>" without a TTL, matching the never-evicted in-process cache.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis cache tier. Prefix may be empty.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "resume:"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) key(id string) string {
	return r.prefix + id
}

func (r *RedisCache) Get(ctx context.Context, id string) (*resume.StoredResume, bool, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var s resume.StoredResume
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func (r *RedisCache) Put(ctx context.Context, s *resume.StoredResume) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(s.ID), b, 0).Err()
}

func (r *RedisCache) Delete(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
