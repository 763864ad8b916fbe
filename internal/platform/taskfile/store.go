package taskfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/teamcal/teamcal-api/internal/domain"
)

const tmpSuffix = ".tmp"

// Store is a file-backed task book. Load and Save operate on the whole
// document; callers own the load-mutate-save cycle.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store persisting to path. The file does not need to
// exist yet; Load treats a missing file as an empty book.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("component", "task_store"),
	}
}

// Path returns the location of the durable document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full task book from disk. A missing file yields an empty
// book; a present but unparseable file yields domain.ErrStorageCorrupt.
func (s *Store) Load() (domain.TaskBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewTaskBook(), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrStorageCorrupt, s.path, err)
	}

	book := domain.NewTaskBook()
	if err := json.Unmarshal(data, &book); err != nil {
		s.logger.Error("task document is not well-formed JSON",
			"path", s.path,
			"error", err)
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrStorageCorrupt, s.path, err)
	}
	return book, nil
}

// Save serializes the full book and replaces the durable document. The
// bytes are written to a temp file first and renamed over the target, so a
// concurrent Load never observes a partial write. On error the durable
// copy may be the old document; it is never a torn one.
func (s *Store) Save(book domain.TaskBook) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(book); err != nil {
		return fmt.Errorf("%w: encoding task book: %v", domain.ErrStorageWrite, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", domain.ErrStorageWrite, dir, err)
		}
	}

	tmp := s.path + tmpSuffix
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrStorageWrite, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", domain.ErrStorageWrite, s.path, err)
	}
	return nil
}
