package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
)

var (
	ErrNotFound = errors.New("resume not found")
)

// Repository is the durable tier. It is the source of truth across restarts.
type Repository interface {
	Create(ctx context.Context, r *resume.StoredResume) error
	Get(ctx context.Context, id string) (*resume.StoredResume, error)
	// List enumerates every readable record. Records that cannot be read or
	// decoded are logged and skipped.
	List(ctx context.Context) ([]*resume.StoredResume, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Cache is the read-through tier in front of a Repository. Entries are never
// evicted.
type Cache interface {
	Get(ctx context.Context, id string) (*resume.StoredResume, bool, error)
	Put(ctx context.Context, r *resume.StoredResume) error
	// Delete reports whether an entry was present.
	Delete(ctx context.Context, id string) (bool, error)
}

// ValidID reports whether id is a canonical lowercase UUID. Only such ids are
// mapped to file names or object keys.
func ValidID(id string) bool {
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.String() == id
}

// RecordName is the deterministic durable name for a resume id.
func RecordName(id string) string {
	return "resume_" + id + ".json"
}

// IDFromRecordName is the inverse of RecordName. ok is false for names that
// are not resume records.
func IDFromRecordName(name string) (id string, ok bool) {
	const prefix, suffix = "resume_", ".json"
	if len(name) <= len(prefix)+len(suffix) {
		return "", false
	}
	if name[:len(prefix)] != prefix || name[len(name)-len(suffix):] != suffix {
		return "", false
	}
	return name[len(prefix) : len(name)-len(suffix)], true
}
