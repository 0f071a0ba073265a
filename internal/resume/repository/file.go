package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/metrics"
)

// FileRepo stores one indented JSON file per resume under dir, named
// resume_<id>.json.
type FileRepo struct {
	dir string
}

// NewFileRepo creates dir when missing.
func NewFileRepo(dir string) (*FileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileRepo{dir: dir}, nil
}

func (f *FileRepo) Dir() string { return f.dir }

func (f *FileRepo) path(id string) string {
	return filepath.Join(f.dir, RecordName(id))
}

func (f *FileRepo) Create(ctx context.Context, r *resume.StoredResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidID(r.ID) {
		return fmt.Errorf("invalid resume id %q", r.ID)
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	// write to a temp file in the same dir and rename so readers never see a
	// partially written record
	tmp, err := os.CreateTemp(f.dir, ".resume_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	// CreateTemp uses 0600; records are meant to be readable by other tools
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write resume: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path(r.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename resume file: %w", err)
	}
	return nil
}

func (f *FileRepo) Get(ctx context.Context, id string) (*resume.StoredResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ValidID(id) {
		return nil, ErrNotFound
	}
	b, err := os.ReadFile(f.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read resume %s: %w", id, err)
	}
	var r resume.StoredResume
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode resume %s: %w", id, err)
	}
	if r.ID == "" {
		r.ID = id
	}
	return &r, nil
}

func (f *FileRepo) List(ctx context.Context) ([]*resume.StoredResume, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*resume.StoredResume{}, nil
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	out := make([]*resume.StoredResume, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}
		id, ok := IDFromRecordName(e.Name())
		if !ok {
			continue
		}
		b, err := os.ReadFile(filepath.Join(f.dir, e.Name()))
		if err != nil {
			skipRecord("file", e.Name(), err)
			continue
		}
		var r resume.StoredResume
		if err := json.Unmarshal(b, &r); err != nil {
			skipRecord("file", e.Name(), err)
			continue
		}
		// the file name is authoritative for the id
		r.ID = id
		out = append(out, &r)
	}
	return out, nil
}

func (f *FileRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidID(id) {
		return ErrNotFound
	}
	if err := os.Remove(f.path(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("remove resume %s: %w", id, err)
	}
	return nil
}

func (f *FileRepo) Ping(ctx context.Context) error {
	fi, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", f.dir)
	}
	return nil
}

func skipRecord(backend, name string, err error) {
	logger.Warnf("skipping unreadable resume record %s (%s): %v", name, backend, err)
	metrics.SkippedRecords.WithLabelValues(backend).Inc()
}
