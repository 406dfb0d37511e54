package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/alexanderramin/eduplan/internal/importer"
)

// SnapshotStore keeps the course list in a JSON snapshot file, in the same
// format as the JSON export.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

func (s *SnapshotStore) Path() string { return s.path }

// Load returns an empty list when the file does not exist yet.
func (s *SnapshotStore) Load(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	courses, err := importer.LoadSnapshot(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Course{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	return courses, nil
}

// Save replaces the file atomically.
func (s *SnapshotStore) Save(ctx context.Context, courses []domain.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := export.Snapshot(courses)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
