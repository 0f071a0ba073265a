package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/storage"
)

// ObjectStore is the subset of storage.MinIOStorage the object repository
// needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	RemoveFile(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}

// ObjectRepo keeps one JSON object per resume under prefix, using the same
// record format as FileRepo.
type ObjectRepo struct {
	store  ObjectStore
	prefix string
}

func NewObjectRepo(store ObjectStore, prefix string) *ObjectRepo {
	if prefix == "" {
		prefix = "resumes/"
	}
	return &ObjectRepo{store: store, prefix: prefix}
}

func (o *ObjectRepo) key(id string) string {
	return o.prefix + RecordName(id)
}

func (o *ObjectRepo) Create(ctx context.Context, r *resume.StoredResume) error {
	if !ValidID(r.ID) {
		return fmt.Errorf("invalid resume id %q", r.ID)
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	if err := o.store.UploadFile(ctx, o.key(r.ID), bytes.NewReader(b), int64(len(b)), "application/json"); err != nil {
		return fmt.Errorf("upload resume %s: %w", r.ID, err)
	}
	return nil
}

func (o *ObjectRepo) Get(ctx context.Context, id string) (*resume.StoredResume, error) {
	if !ValidID(id) {
		return nil, ErrNotFound
	}
	r, err := o.read(ctx, o.key(id))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if r.ID == "" {
		r.ID = id
	}
	return r, nil
}

func (o *ObjectRepo) read(ctx context.Context, key string) (*resume.StoredResume, error) {
	rc, err := o.store.DownloadFile(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var r resume.StoredResume
	if err := json.NewDecoder(rc).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &r, nil
}

func (o *ObjectRepo) List(ctx context.Context) ([]*resume.StoredResume, error) {
	keys, err := o.store.ListKeys(ctx, o.prefix)
	if err != nil {
		return nil, fmt.Errorf("list resume objects: %w", err)
	}
	out := make([]*resume.StoredResume, 0, len(keys))
	for _, k := range keys {
		id, ok := IDFromRecordName(path.Base(k))
		if !ok {
			continue
		}
		r, err := o.read(ctx, k)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			skipRecord("minio", k, err)
			continue
		}
		r.ID = id
		out = append(out, r)
	}
	return out, nil
}

func (o *ObjectRepo) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return ErrNotFound
	}
	key := o.key(id)
	// object stores treat removal of a missing key as success
	ok, err := o.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("stat resume %s: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	if err := o.store.RemoveFile(ctx, key); err != nil {
		return fmt.Errorf("remove resume %s: %w", id, err)
	}
	return nil
}

func (o *ObjectRepo) Ping(ctx context.Context) error {
	return o.store.Ping(ctx)
}
