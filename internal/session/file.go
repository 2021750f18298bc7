package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore persists each record as a JSON document <dir>/<id>.json. Writes
// go through a temp file and rename so a crash never leaves a half-written
// save behind.
type FileStore[T any] struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore[T any](dir string) (*FileStore[T], error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create save dir %s: %w", dir, err)
	}
	return &FileStore[T]{dir: dir}, nil
}

func (s *FileStore[T]) path(id string) (string, error) {
	// IDs come from NewID or a cookie; reject anything that could escape
	// the save directory.
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("invalid save id %q", id)
	}
	return filepath.Join(s.dir, id+".json"), nil
}

func (s *FileStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	var v T
	p, err := s.path(id)
	if err != nil {
		return v, false, err
	}
	b, err := os.ReadFile(p) //nolint:gosec // path is validated against traversal
	if os.IsNotExist(err) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("read save %s: %w", id, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, false, fmt.Errorf("decode save %s: %w", id, err)
	}
	return v, true, nil
}

func (s *FileStore[T]) Put(_ context.Context, id string, v T) error {
	p, err := s.path(id)
	if err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode save %s: %w", id, err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write save %s: %w", id, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("commit save %s: %w", id, err)
	}
	return nil
}

func (s *FileStore[T]) Delete(_ context.Context, id string) error {
	p, err := s.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete save %s: %w", id, err)
	}
	return nil
}

func (s *FileStore[T]) NewID() string {
	return uuid.NewString()
}
