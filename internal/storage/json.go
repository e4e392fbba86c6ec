// Package storage persists the journal as a single JSON array file.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xolan/devjournal/internal/entry"
	"go.uber.org/zap"
)

// Store owns the journal file. Every save rewrites the whole file.
type Store struct {
	path    string
	backups int
	logger  *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithBackups keeps n rotating backups (<path>.bak.1 ... .bak.n) written before each save.
// n <= 0 disables backups.
func WithBackups(n int) Option {
	return func(s *Store) {
		if n < 0 {
			n = 0
		}
		s.backups = n
	}
}

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store for the journal file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("path", path))
	return s
}

// Path returns the journal file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every entry from the journal file.
// A missing, empty, unreadable or malformed file yields an empty journal;
// Load never fails. There is no partial recovery of individual records.
func (s *Store) Load() []entry.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("journal file does not exist yet")
		} else {
			s.logger.Warn("journal file unreadable, starting empty", zap.Error(err))
		}
		return []entry.Entry{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("journal file is empty")
		return []entry.Entry{}
	}

	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("journal file is malformed, treating it as empty", zap.Error(err))
		return []entry.Entry{}
	}
	if entries == nil {
		entries = []entry.Entry{}
	}

	s.logger.Debug("loaded journal", zap.Int("entries", len(entries)))
	return entries
}

// Save overwrites the journal file with entries.
// The previous file is rotated into the backups first when backups are enabled
// and the content changes.
func (s *Store) Save(entries []entry.Entry) error {
	if entries == nil {
		entries = []entry.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if s.backups > 0 {
		current, err := os.ReadFile(s.path)
		if err == nil && !bytes.Equal(current, data) {
			if err := s.CreateBackup(); err != nil {
				return fmt.Errorf("failed to back up journal: %w", err)
			}
		}
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	s.logger.Debug("saved journal", zap.Int("entries", len(entries)))
	return nil
}

// Session loads the journal, hands it to fn for in-place mutation and saves
// the result. The save runs even when fn fails, so fn must leave the slice
// consistent; both errors are returned.
func (s *Store) Session(fn func(entries *[]entry.Entry) error) error {
	entries := s.Load()
	fnErr := fn(&entries)

	if err := s.Save(entries); err != nil {
		return errors.Join(fnErr, fmt.Errorf("failed to save journal: %w", err))
	}
	return fnErr
}

// writeFileAtomic writes data to a temp file next to path and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}
