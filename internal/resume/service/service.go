package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/repository"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/metrics"
)

var (
	ErrNotFound = errors.New("resume not found")
)

// Service defines the resume store operations used by the handler layer.
type Service interface {
	// Save always inserts: every call returns a fresh id.
	Save(ctx context.Context, r resume.Resume) (string, error)
	Get(ctx context.Context, id string) (*resume.StoredResume, error)
	// List enumerates the durable tier, never the cache.
	List(ctx context.Context) (map[string]resume.Summary, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Option customizes a Service.
type Option func(*store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *store) { s.now = now }
}

// WithIDGenerator overrides resume id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *store) { s.newID = gen }
}

// NewService returns a two-tier Service: reads go through cache, falling back
// to durable and repopulating cache on a hit. durable is authoritative.
func NewService(durable repository.Repository, cache repository.Cache, opts ...Option) Service {
	s := &store{
		durable: durable,
		cache:   cache,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewFileService returns a Service backed by one file per resume under dir
// with an in-process cache.
func NewFileService(dir string) (Service, error) {
	repo, err := repository.NewFileRepo(dir)
	if err != nil {
		return nil, err
	}
	return NewService(repo, repository.NewMemoryCache()), nil
}

type store struct {
	durable repository.Repository
	cache   repository.Cache
	now     func() time.Time
	newID   func() string
}

func (s *store) Save(ctx context.Context, r resume.Resume) (id string, err error) {
	defer func() { observe("save", err) }()
	r.Normalize()
	now := s.now()
	rec := &resume.StoredResume{
		ID:        s.newID(),
		Data:      r,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// durable first: a cached entry must always have a durable record behind it
	if err := s.durable.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("persist resume: %w", err)
	}
	if err := s.cache.Put(ctx, rec); err != nil {
		logger.Warnf("resume %s saved but not cached: %v", rec.ID, err)
	}
	return rec.ID, nil
}

func (s *store) Get(ctx context.Context, id string) (rec *resume.StoredResume, err error) {
	defer func() { observe("get", err) }()
	cached, ok, cerr := s.cache.Get(ctx, id)
	if cerr != nil {
		logger.Warnf("cache lookup for resume %s failed, reading durable store: %v", id, cerr)
	} else if ok {
		return cached, nil
	}

	rec, err = s.durable.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load resume: %w", err)
	}
	if err := s.cache.Put(ctx, rec); err != nil {
		logger.Warnf("failed to cache resume %s: %v", id, err)
	}
	return rec, nil
}

func (s *store) List(ctx context.Context) (out map[string]resume.Summary, err error) {
	defer func() { observe("list", err) }()
	recs, err := s.durable.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	out = make(map[string]resume.Summary, len(recs))
	for _, r := range recs {
		out[r.ID] = r.Summarize()
	}
	return out, nil
}

func (s *store) Delete(ctx context.Context, id string) (err error) {
	defer func() { observe("delete", err) }()
	cached, cerr := s.cache.Delete(ctx, id)
	if cerr != nil {
		logger.Warnf("failed to evict resume %s from cache: %v", id, cerr)
	}
	if err := s.durable.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if cached {
				return nil
			}
			return ErrNotFound
		}
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}

func (s *store) Ping(ctx context.Context) error {
	return s.durable.Ping(ctx)
}

func observe(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.StoreOperations.WithLabelValues(op, result).Inc()
}
