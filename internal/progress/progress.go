// Package progress persists the participant list. The default backend dumps
// the whole list to a JSON file; an SQLite table can be used instead.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gulur101/quran-toolkit/internal/model"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Backend loads and saves the whole participant list.
type Backend interface {
	Load(ctx context.Context) ([]model.Participant, error)
	Save(ctx context.Context, participants []model.Participant) error
	Close() error
}

// Open returns the backend for driver, storing data at path.
func Open(driver, path string) (Backend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	switch driver {
	case DriverJSON, "":
		return NewFile(path), nil
	case DriverSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q (valid: %s, %s)", driver, DriverJSON, DriverSQLite)
	}
}

// File keeps the list as an indented JSON array in a single file.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Load reads the list. A missing file is an empty list.
func (f *File) Load(ctx context.Context) ([]model.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Participant{}, nil
		}
		return nil, fmt.Errorf("error reading progress file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []model.Participant{}, nil
	}

	var participants []model.Participant
	if err := json.Unmarshal(data, &participants); err != nil {
		return nil, fmt.Errorf("error parsing progress file: %w", err)
	}
	if participants == nil {
		participants = []model.Participant{}
	}
	return participants, nil
}

// Save replaces the file atomically.
func (f *File) Save(ctx context.Context, participants []model.Participant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if participants == nil {
		participants = []model.Participant{}
	}
	data, err := json.MarshalIndent(participants, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling progress data: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating progress directory: %w", err)
	}
	if err := writeFileAtomic(f.path, data, 0644); err != nil {
		return fmt.Errorf("error writing progress file: %w", err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}

// writeFileAtomic writes to a temp file in the target directory, syncs it
// and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
